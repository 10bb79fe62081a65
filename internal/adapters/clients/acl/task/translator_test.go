package task

import (
	"slices"
	"testing"
	"time"

	"github.com/jsamuelsen11/todo-cli/internal/domain"
)

func ptr(s string) *string { return &s }

func TestToDomainTask_FieldMapping(t *testing.T) {
	t.Parallel()

	dto := &TaskDTO{
		ID:             "6Jf8VQXxpwv56VQ7",
		ProjectID:      "p1",
		SectionID:      ptr("s1"),
		ParentID:       ptr("t0"),
		AssignedByUID:  ptr("u2"),
		ResponsibleUID: ptr("u1"),
		Labels:         []string{"errand"},
		AddedAt:        "2026-02-12T15:04:05.123456Z",
		Due:            &DueDTO{Date: "2026-02-13", String: "tomorrow", IsRecurring: true, Timezone: "Europe/Paris"},
		Priority:       4,
		ChildOrder:     3,
		Content:        "Buy milk",
		Description:    "2% milk",
	}

	got := ToDomainTask(dto)

	if got.ID != "6Jf8VQXxpwv56VQ7" {
		t.Errorf("ID = %q, want %q", got.ID, "6Jf8VQXxpwv56VQ7")
	}
	if got.Content != "Buy milk" || got.Description != "2% milk" {
		t.Errorf("Content/Description = %q/%q", got.Content, got.Description)
	}
	if got.SectionID != "s1" || got.ParentID != "t0" {
		t.Errorf("SectionID/ParentID = %q/%q, want s1/t0", got.SectionID, got.ParentID)
	}
	if got.AssigneeID != "u1" {
		t.Errorf("AssigneeID = %q, want u1", got.AssigneeID)
	}
	if got.AssignedByID != "u2" {
		t.Errorf("AssignedByID = %q, want u2", got.AssignedByID)
	}
	if !slices.Equal(got.Labels, []string{"errand"}) {
		t.Errorf("Labels = %v, want [errand]", got.Labels)
	}
	if got.Priority != 4 || got.ChildOrder != 3 {
		t.Errorf("Priority/ChildOrder = %d/%d, want 4/3", got.Priority, got.ChildOrder)
	}
	if got.URL != WebURL+"6Jf8VQXxpwv56VQ7" {
		t.Errorf("URL = %q", got.URL)
	}
	want := time.Date(2026, 2, 12, 15, 4, 5, 123456000, time.UTC)
	if !got.AddedAt.Equal(want) {
		t.Errorf("AddedAt = %v, want %v", got.AddedAt, want)
	}
	if got.Due == nil {
		t.Fatal("Due = nil, want non-nil")
	}
	if got.Due.Date != "2026-02-13" || got.Due.String != "tomorrow" || !got.Due.IsRecurring {
		t.Errorf("Due = %+v", *got.Due)
	}
}

func TestToDomainTask_NullReferences(t *testing.T) {
	t.Parallel()

	got := ToDomainTask(&TaskDTO{ID: "t1", ProjectID: "p1", Content: "x", AddedAt: "garbage"})

	if got.SectionID != "" || got.ParentID != "" || got.AssigneeID != "" {
		t.Errorf("null references = %q/%q/%q, want empty", got.SectionID, got.ParentID, got.AssigneeID)
	}
	if got.HasAssignee() {
		t.Error("HasAssignee() = true, want false")
	}
	if got.Due != nil {
		t.Errorf("Due = %+v, want nil", got.Due)
	}
	if !got.AddedAt.IsZero() {
		t.Errorf("AddedAt = %v, want zero for unparsable input", got.AddedAt)
	}
}

func TestToDomainTasks(t *testing.T) {
	t.Parallel()

	got := ToDomainTasks([]TaskDTO{{ID: "a"}, {ID: "b"}})
	if len(got) != 2 || got[0].ID != "a" || got[1].ID != "b" {
		t.Errorf("ToDomainTasks() = %+v", got)
	}
	if got := ToDomainTasks(nil); len(got) != 0 {
		t.Errorf("ToDomainTasks(nil) len = %d, want 0", len(got))
	}
}

func TestToCreateTaskRequest(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name          string
		due           *domain.Due
		wantDueString string
		wantDueDate   string
	}{
		{name: "no due", due: nil},
		{name: "natural language", due: &domain.Due{String: "every monday"}, wantDueString: "every monday"},
		{name: "explicit date wins", due: &domain.Due{Date: "2026-03-01", String: "soon"}, wantDueDate: "2026-03-01"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got := ToCreateTaskRequest(&domain.Task{
				Content:    "Write report",
				ProjectID:  "p1",
				SectionID:  "s1",
				Labels:     []string{"work"},
				Priority:   2,
				AssigneeID: "u1",
				Due:        tt.due,
			})

			if got.Content != "Write report" || got.ProjectID != "p1" || got.SectionID != "s1" {
				t.Errorf("request = %+v", got)
			}
			if got.AssigneeID != "u1" || got.Priority != 2 {
				t.Errorf("AssigneeID/Priority = %q/%d", got.AssigneeID, got.Priority)
			}
			if got.DueString != tt.wantDueString {
				t.Errorf("DueString = %q, want %q", got.DueString, tt.wantDueString)
			}
			if got.DueDate != tt.wantDueDate {
				t.Errorf("DueDate = %q, want %q", got.DueDate, tt.wantDueDate)
			}
		})
	}
}
