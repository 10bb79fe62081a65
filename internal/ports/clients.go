package ports

import (
	"context"

	"github.com/jsamuelsen11/todo-cli/internal/domain"
)

// CollaboratorClient is the subset of the backend used to resolve assignee
// identities. Kept separate so the collaborator cache can be tested against
// a small fake.
type CollaboratorClient interface {
	// ListWorkspaceUsers returns one page of a workspace's members. An empty
	// cursor requests the first page.
	ListWorkspaceUsers(ctx context.Context, workspaceID, cursor string) (domain.WorkspaceUserPage, error)

	// ListProjectCollaborators returns one page of a shared project's
	// collaborators. An empty NextCursor means the listing is exhausted.
	ListProjectCollaborators(ctx context.Context, projectID, cursor string) (domain.Page[domain.Collaborator], error)
}

// TodoistClient defines the client port for the hosted task service.
// Implemented by the ACL adapter; called by the application layer.
// Listing methods return a single page; callers drive pagination with
// paginate.Paginate. A zero limit lets the backend choose its default.
type TodoistClient interface {
	CollaboratorClient

	// GetTask returns a single task by ID.
	// Returns domain.ErrNotFound if the task does not exist.
	GetTask(ctx context.Context, id string) (*domain.Task, error)

	// ListTasks returns one page of active tasks matching the query.
	ListTasks(ctx context.Context, query domain.TaskQuery, cursor string, limit int) (domain.Page[domain.Task], error)

	// FilterTasks returns one page of tasks matching a filter-language query.
	// Returns domain.ErrValidation if the backend rejects the query.
	FilterTasks(ctx context.Context, query, cursor string, limit int) (domain.Page[domain.Task], error)

	// CreateTask creates a task and returns the created entity.
	CreateTask(ctx context.Context, task *domain.Task) (*domain.Task, error)

	// CloseTask marks a task as completed.
	// Returns domain.ErrNotFound if the task does not exist.
	CloseTask(ctx context.Context, id string) error

	// GetProject returns a single project by ID.
	// Returns domain.ErrNotFound if the project does not exist.
	GetProject(ctx context.Context, id string) (*domain.Project, error)

	// ListProjects returns one page of projects.
	ListProjects(ctx context.Context, cursor string, limit int) (domain.Page[domain.Project], error)

	// GetSection returns a single section by ID.
	// Returns domain.ErrNotFound if the section does not exist.
	GetSection(ctx context.Context, id string) (*domain.Section, error)

	// ListSections returns one page of a project's sections.
	ListSections(ctx context.Context, projectID, cursor string, limit int) (domain.Page[domain.Section], error)

	// ListLabels returns one page of personal labels.
	ListLabels(ctx context.Context, cursor string, limit int) (domain.Page[domain.Label], error)

	// ListFilters returns one page of saved filters.
	ListFilters(ctx context.Context, cursor string, limit int) (domain.Page[domain.Filter], error)

	// ListWorkspaces returns every workspace the user belongs to.
	ListWorkspaces(ctx context.Context) ([]domain.Workspace, error)

	// CurrentUser returns the authenticated user.
	CurrentUser(ctx context.Context) (*domain.User, error)
}
