package acl

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"net/url"

	"github.com/jsamuelsen11/todo-cli/internal/adapters/clients/acl/account"
	"github.com/jsamuelsen11/todo-cli/internal/adapters/clients/acl/label"
	"github.com/jsamuelsen11/todo-cli/internal/adapters/clients/acl/project"
	"github.com/jsamuelsen11/todo-cli/internal/adapters/clients/acl/task"
	"github.com/jsamuelsen11/todo-cli/internal/domain"
	"github.com/jsamuelsen11/todo-cli/internal/platform/httpclient"
	"github.com/jsamuelsen11/todo-cli/internal/ports"
)

// Compile-time interface check.
var _ ports.TodoistClient = (*TodoistClient)(nil)

const apiPrefix = "/api/v1"

// TodoistClient is the outbound adapter for the hosted task API. It
// implements [ports.TodoistClient].
//
// Listing methods fetch exactly one page and hand the opaque cursor back to
// the caller. HTTP errors are mapped to domain errors (ErrNotFound,
// ErrValidation, etc.) by [TranslateHTTPError].
//
// The underlying [httpclient.Client] provides authentication, rate limiting,
// circuit breaking, retry with backoff, and OpenTelemetry tracing for every
// outbound call.
type TodoistClient struct {
	req    *Requester
	logger *slog.Logger
}

// NewTodoistClient creates a TodoistClient that sends requests through the
// given [httpclient.Client], whose BaseURL points at the API root
// (e.g. "https://api.todoist.com").
func NewTodoistClient(client *httpclient.Client, logger *slog.Logger) *TodoistClient {
	return &TodoistClient{
		req:    NewRequester(client, logger),
		logger: logger,
	}
}

// --- Tasks ---

// GetTask fetches GET /api/v1/tasks/{id}.
func (c *TodoistClient) GetTask(ctx context.Context, id string) (*domain.Task, error) {
	var dto task.TaskDTO
	if err := c.req.Do(ctx, http.MethodGet, apiPrefix+"/tasks/"+url.PathEscape(id), http.StatusOK, nil, &dto); err != nil {
		return nil, err
	}
	t := task.ToDomainTask(&dto)
	return &t, nil
}

// ListTasks fetches one page of GET /api/v1/tasks narrowed by query.
func (c *TodoistClient) ListTasks(ctx context.Context, query domain.TaskQuery, cursor string, limit int) (domain.Page[domain.Task], error) {
	v := url.Values{}
	setIfNotEmpty(v, "project_id", query.ProjectID)
	setIfNotEmpty(v, "section_id", query.SectionID)
	setIfNotEmpty(v, "parent_id", query.ParentID)
	setIfNotEmpty(v, "label", query.Label)
	path := withQuery(apiPrefix+"/tasks", pageQuery(v, cursor, limit))

	var resp listResponse[task.TaskDTO]
	if err := c.req.Do(ctx, http.MethodGet, path, http.StatusOK, nil, &resp); err != nil {
		return domain.Page[domain.Task]{}, err
	}
	return toPage(resp, task.ToDomainTasks), nil
}

// FilterTasks fetches one page of GET /api/v1/tasks/filter. A rejected query
// surfaces as [domain.ErrValidation].
func (c *TodoistClient) FilterTasks(ctx context.Context, query, cursor string, limit int) (domain.Page[domain.Task], error) {
	v := url.Values{}
	v.Set("query", query)
	path := withQuery(apiPrefix+"/tasks/filter", pageQuery(v, cursor, limit))

	var resp listResponse[task.TaskDTO]
	if err := c.req.Do(ctx, http.MethodGet, path, http.StatusOK, nil, &resp); err != nil {
		return domain.Page[domain.Task]{}, err
	}
	return toPage(resp, task.ToDomainTasks), nil
}

// CreateTask sends POST /api/v1/tasks and returns the created task.
func (c *TodoistClient) CreateTask(ctx context.Context, t *domain.Task) (*domain.Task, error) {
	body := task.ToCreateTaskRequest(t)

	var dto task.TaskDTO
	if err := c.req.Do(ctx, http.MethodPost, apiPrefix+"/tasks", http.StatusOK, body, &dto); err != nil {
		return nil, err
	}
	created := task.ToDomainTask(&dto)
	return &created, nil
}

// CloseTask sends POST /api/v1/tasks/{id}/close.
func (c *TodoistClient) CloseTask(ctx context.Context, id string) error {
	path := fmt.Sprintf("%s/tasks/%s/close", apiPrefix, url.PathEscape(id))
	return c.req.Do(ctx, http.MethodPost, path, http.StatusNoContent, nil, nil)
}

// --- Projects and sections ---

// GetProject fetches GET /api/v1/projects/{id}.
func (c *TodoistClient) GetProject(ctx context.Context, id string) (*domain.Project, error) {
	var dto project.ProjectDTO
	if err := c.req.Do(ctx, http.MethodGet, apiPrefix+"/projects/"+url.PathEscape(id), http.StatusOK, nil, &dto); err != nil {
		return nil, err
	}
	p := project.ToDomainProject(&dto)
	return &p, nil
}

// ListProjects fetches one page of GET /api/v1/projects.
func (c *TodoistClient) ListProjects(ctx context.Context, cursor string, limit int) (domain.Page[domain.Project], error) {
	path := withQuery(apiPrefix+"/projects", pageQuery(nil, cursor, limit))

	var resp listResponse[project.ProjectDTO]
	if err := c.req.Do(ctx, http.MethodGet, path, http.StatusOK, nil, &resp); err != nil {
		return domain.Page[domain.Project]{}, err
	}
	return toPage(resp, project.ToDomainProjects), nil
}

// GetSection fetches GET /api/v1/sections/{id}.
func (c *TodoistClient) GetSection(ctx context.Context, id string) (*domain.Section, error) {
	var dto project.SectionDTO
	if err := c.req.Do(ctx, http.MethodGet, apiPrefix+"/sections/"+url.PathEscape(id), http.StatusOK, nil, &dto); err != nil {
		return nil, err
	}
	s := project.ToDomainSection(&dto)
	return &s, nil
}

// ListSections fetches one page of GET /api/v1/sections for a project.
func (c *TodoistClient) ListSections(ctx context.Context, projectID, cursor string, limit int) (domain.Page[domain.Section], error) {
	v := url.Values{}
	setIfNotEmpty(v, "project_id", projectID)
	path := withQuery(apiPrefix+"/sections", pageQuery(v, cursor, limit))

	var resp listResponse[project.SectionDTO]
	if err := c.req.Do(ctx, http.MethodGet, path, http.StatusOK, nil, &resp); err != nil {
		return domain.Page[domain.Section]{}, err
	}
	return toPage(resp, project.ToDomainSections), nil
}

// --- Labels and filters ---

// ListLabels fetches one page of GET /api/v1/labels.
func (c *TodoistClient) ListLabels(ctx context.Context, cursor string, limit int) (domain.Page[domain.Label], error) {
	path := withQuery(apiPrefix+"/labels", pageQuery(nil, cursor, limit))

	var resp listResponse[label.LabelDTO]
	if err := c.req.Do(ctx, http.MethodGet, path, http.StatusOK, nil, &resp); err != nil {
		return domain.Page[domain.Label]{}, err
	}
	return toPage(resp, label.ToDomainLabels), nil
}

// ListFilters fetches one page of GET /api/v1/filters.
func (c *TodoistClient) ListFilters(ctx context.Context, cursor string, limit int) (domain.Page[domain.Filter], error) {
	path := withQuery(apiPrefix+"/filters", pageQuery(nil, cursor, limit))

	var resp listResponse[label.FilterDTO]
	if err := c.req.Do(ctx, http.MethodGet, path, http.StatusOK, nil, &resp); err != nil {
		return domain.Page[domain.Filter]{}, err
	}
	return toPage(resp, label.ToDomainFilters), nil
}

// --- Account ---

// ListWorkspaces fetches GET /api/v1/workspaces. The endpoint is not paged.
func (c *TodoistClient) ListWorkspaces(ctx context.Context) ([]domain.Workspace, error) {
	var dtos []account.WorkspaceDTO
	if err := c.req.Do(ctx, http.MethodGet, apiPrefix+"/workspaces", http.StatusOK, nil, &dtos); err != nil {
		return nil, err
	}
	return account.ToDomainWorkspaces(dtos), nil
}

// ListWorkspaceUsers fetches one page of GET /api/v1/workspaces/users.
func (c *TodoistClient) ListWorkspaceUsers(ctx context.Context, workspaceID, cursor string) (domain.WorkspaceUserPage, error) {
	v := url.Values{}
	v.Set("workspace_id", workspaceID)
	path := withQuery(apiPrefix+"/workspaces/users", pageQuery(v, cursor, 0))

	var resp account.WorkspaceUsersResponseDTO
	if err := c.req.Do(ctx, http.MethodGet, path, http.StatusOK, nil, &resp); err != nil {
		return domain.WorkspaceUserPage{}, err
	}
	return account.ToWorkspaceUserPage(&resp), nil
}

// ListProjectCollaborators fetches one page of
// GET /api/v1/projects/{id}/collaborators.
func (c *TodoistClient) ListProjectCollaborators(ctx context.Context, projectID, cursor string) (domain.Page[domain.Collaborator], error) {
	base := fmt.Sprintf("%s/projects/%s/collaborators", apiPrefix, url.PathEscape(projectID))
	path := withQuery(base, pageQuery(nil, cursor, 0))

	var resp listResponse[account.CollaboratorDTO]
	if err := c.req.Do(ctx, http.MethodGet, path, http.StatusOK, nil, &resp); err != nil {
		return domain.Page[domain.Collaborator]{}, err
	}
	return toPage(resp, account.ToDomainCollaborators), nil
}

// CurrentUser fetches GET /api/v1/user.
func (c *TodoistClient) CurrentUser(ctx context.Context) (*domain.User, error) {
	var dto account.UserDTO
	if err := c.req.Do(ctx, http.MethodGet, apiPrefix+"/user", http.StatusOK, nil, &dto); err != nil {
		return nil, err
	}
	u := account.ToDomainUser(&dto)
	return &u, nil
}

func setIfNotEmpty(v url.Values, key, value string) {
	if value != "" {
		v.Set(key, value)
	}
}
