package ports

import (
	"context"

	"github.com/jsamuelsen11/todo-cli/internal/domain"
)

// TaskService defines the service port for the CLI's task use cases.
// Implemented by the application layer; called by the cobra commands.
// Every method resolves user-typed references before touching the backend
// and returns *domain.ResolveError for user-recoverable failures.
type TaskService interface {
	// ListTasks lists tasks scoped by an optional project, section, label or
	// filter, paginated to the requested limit, with assignees resolved.
	ListTasks(ctx context.Context, in ListTasksInput) (*TaskList, error)

	// ViewTask resolves a single task reference and returns it with its
	// assignee resolved.
	ViewTask(ctx context.Context, ref string) (*TaskRow, error)

	// AddTask resolves the project, section, parent and assignee references
	// and creates the task.
	// Returns domain.ErrValidation if the task fails validation.
	AddTask(ctx context.Context, in AddTaskInput) (*domain.Task, error)

	// CompleteTask resolves a task reference and closes the task. When
	// RequireID is set the reference must be in id: form.
	CompleteTask(ctx context.Context, ref string, requireID bool) (*domain.Task, error)

	// ListProjects lists projects paginated to the requested limit.
	ListProjects(ctx context.Context, limit int, cursor string) (*ProjectList, error)
}

// ListTasksInput holds the user-supplied arguments of a task listing.
// Limit uses paginate.All to request every task.
type ListTasksInput struct {
	ProjectRef string
	SectionRef string
	LabelRef   string
	FilterRef  string
	Query      string
	Limit      int
	Cursor     string
}

// AddTaskInput holds the user-supplied arguments for creating a task.
type AddTaskInput struct {
	Content     string
	Description string
	ProjectRef  string
	SectionRef  string
	ParentRef   string
	AssigneeRef string
	Labels      []string
	Priority    int
	DueString   string
}

// TaskRow is a task ready for rendering.
type TaskRow struct {
	Task        domain.Task
	ProjectName string
	Assignee    string
}

// TaskList is one rendered page of tasks. NextCursor is non-empty when more
// tasks exist and can be fetched by passing it back as the cursor.
type TaskList struct {
	Rows       []TaskRow
	NextCursor string
}

// ProjectList is one page of projects.
type ProjectList struct {
	Projects   []domain.Project
	NextCursor string
}
