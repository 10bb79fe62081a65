package task

import (
	"time"

	"github.com/jsamuelsen11/todo-cli/internal/domain"
)

// WebURL is the web-app location of task pages.
const WebURL = "https://app.todoist.com/app/task/"

// ToDomainTask converts a TaskDTO to a domain Task. Null references become
// empty strings and an unparsable added_at leaves AddedAt zero.
func ToDomainTask(dto *TaskDTO) domain.Task {
	addedAt, _ := time.Parse(time.RFC3339Nano, dto.AddedAt)

	t := domain.Task{
		ID:           dto.ID,
		Content:      dto.Content,
		Description:  dto.Description,
		ProjectID:    dto.ProjectID,
		SectionID:    deref(dto.SectionID),
		ParentID:     deref(dto.ParentID),
		Labels:       dto.Labels,
		Priority:     dto.Priority,
		AssigneeID:   deref(dto.ResponsibleUID),
		AssignedByID: deref(dto.AssignedByUID),
		Checked:      dto.Checked,
		ChildOrder:   dto.ChildOrder,
		URL:          WebURL + dto.ID,
		AddedAt:      addedAt,
	}
	if dto.Due != nil {
		t.Due = &domain.Due{
			Date:        dto.Due.Date,
			String:      dto.Due.String,
			IsRecurring: dto.Due.IsRecurring,
			Timezone:    dto.Due.Timezone,
		}
	}
	return t
}

// ToDomainTasks converts a slice of TaskDTOs.
func ToDomainTasks(dtos []TaskDTO) []domain.Task {
	tasks := make([]domain.Task, len(dtos))
	for i := range dtos {
		tasks[i] = ToDomainTask(&dtos[i])
	}
	return tasks
}

// ToCreateTaskRequest converts a domain Task into a creation body. A due
// with a Date is sent as due_date, otherwise its String is sent as
// natural-language due_string.
func ToCreateTaskRequest(t *domain.Task) CreateTaskRequestDTO {
	req := CreateTaskRequestDTO{
		Content:     t.Content,
		Description: t.Description,
		ProjectID:   t.ProjectID,
		SectionID:   t.SectionID,
		ParentID:    t.ParentID,
		Labels:      t.Labels,
		Priority:    t.Priority,
		AssigneeID:  t.AssigneeID,
	}
	if t.Due != nil {
		if t.Due.Date != "" {
			req.DueDate = t.Due.Date
		} else {
			req.DueString = t.Due.String
		}
	}
	return req
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
