// Package task implements the Anti-Corruption Layer translators for the
// task API's task resources.
package task

// DueDTO matches the API's due object.
type DueDTO struct {
	Date        string `json:"date"`
	String      string `json:"string"`
	IsRecurring bool   `json:"is_recurring"`
	Timezone    string `json:"timezone,omitempty"`
	Lang        string `json:"lang,omitempty"`
}

// TaskDTO matches the API's task schema. Nullable references are pointers.
type TaskDTO struct {
	ID             string   `json:"id"`
	UserID         string   `json:"user_id"`
	ProjectID      string   `json:"project_id"`
	SectionID      *string  `json:"section_id"`
	ParentID       *string  `json:"parent_id"`
	AddedByUID     string   `json:"added_by_uid"`
	AssignedByUID  *string  `json:"assigned_by_uid"`
	ResponsibleUID *string  `json:"responsible_uid"`
	Labels         []string `json:"labels"`
	Checked        bool     `json:"checked"`
	IsDeleted      bool     `json:"is_deleted"`
	AddedAt        string   `json:"added_at"`
	Due            *DueDTO  `json:"due"`
	Priority       int      `json:"priority"`
	ChildOrder     int      `json:"child_order"`
	Content        string   `json:"content"`
	Description    string   `json:"description"`
}

// CreateTaskRequestDTO matches the API's task creation body. Empty optional
// fields are omitted so the API applies its defaults.
type CreateTaskRequestDTO struct {
	Content     string   `json:"content"`
	Description string   `json:"description,omitempty"`
	ProjectID   string   `json:"project_id,omitempty"`
	SectionID   string   `json:"section_id,omitempty"`
	ParentID    string   `json:"parent_id,omitempty"`
	Labels      []string `json:"labels,omitempty"`
	Priority    int      `json:"priority,omitempty"`
	DueString   string   `json:"due_string,omitempty"`
	DueDate     string   `json:"due_date,omitempty"`
	AssigneeID  string   `json:"assignee_id,omitempty"`
}
