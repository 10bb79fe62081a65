package domain

import (
	"fmt"
	"strings"
	"time"
)

// Priority levels as sent to the API (4 is the most urgent, shown as p1).
const (
	PriorityLowest  = 1
	PriorityHighest = 4
)

// Due describes a task's due date.
type Due struct {
	Date        string
	String      string
	IsRecurring bool
	Timezone    string
}

// Task is a single item in a project.
type Task struct {
	ID           string
	Content      string
	Description  string
	ProjectID    string
	SectionID    string
	ParentID     string
	Labels       []string
	Priority     int
	Due          *Due
	AssigneeID   string
	AssignedByID string
	Checked      bool
	ChildOrder   int
	URL          string
	AddedAt      time.Time
}

// HasAssignee reports whether the task has a responsible user.
func (t *Task) HasAssignee() bool {
	return t.AssigneeID != ""
}

// Validate checks the fields required to create a task.
// Returns a *ValidationError (wrapping ErrValidation) with per-field details,
// or nil if all rules pass.
func (t *Task) Validate() error {
	fields := make(map[string]string)

	if strings.TrimSpace(t.Content) == "" {
		fields["content"] = MsgRequired
	}
	if t.Priority != 0 && (t.Priority < PriorityLowest || t.Priority > PriorityHighest) {
		fields["priority"] = fmt.Sprintf("must be %d-%d, got %d", PriorityLowest, PriorityHighest, t.Priority)
	}
	if t.SectionID != "" && t.ProjectID == "" {
		fields["project_id"] = "is required when section_id is set"
	}

	if len(fields) > 0 {
		return &ValidationError{Fields: fields}
	}
	return nil
}
