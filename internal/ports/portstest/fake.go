// Package portstest provides an in-memory ports.TodoistClient for tests.
// Listings are served in cursor pages of at most MaxPageSize items, every
// call is counted, and any method can be made to fail.
package portstest

import (
	"context"
	"fmt"
	"slices"
	"strconv"
	"strings"
	"sync"

	"github.com/jsamuelsen11/todo-cli/internal/domain"
	"github.com/jsamuelsen11/todo-cli/internal/ports"
)

// Compile-time interface check.
var _ ports.TodoistClient = (*Fake)(nil)

// Method names used as keys in Calls and Errs.
const (
	MethodGetTask                  = "GetTask"
	MethodListTasks                = "ListTasks"
	MethodFilterTasks              = "FilterTasks"
	MethodCreateTask               = "CreateTask"
	MethodCloseTask                = "CloseTask"
	MethodGetProject               = "GetProject"
	MethodListProjects             = "ListProjects"
	MethodGetSection               = "GetSection"
	MethodListSections             = "ListSections"
	MethodListLabels               = "ListLabels"
	MethodListFilters              = "ListFilters"
	MethodListWorkspaces           = "ListWorkspaces"
	MethodListWorkspaceUsers       = "ListWorkspaceUsers"
	MethodListProjectCollaborators = "ListProjectCollaborators"
	MethodCurrentUser              = "CurrentUser"
)

// Fake is an in-memory backend. Populate the exported slices and maps before
// use; it is safe for concurrent calls.
type Fake struct {
	Tasks                []domain.Task
	Projects             []domain.Project
	Sections             []domain.Section
	Labels               []domain.Label
	Filters              []domain.Filter
	Workspaces           []domain.Workspace
	WorkspaceUsers       map[string][]domain.Collaborator
	ProjectCollaborators map[string][]domain.Collaborator
	User                 domain.User

	// MaxPageSize caps every page regardless of the requested limit.
	// Zero means no cap.
	MaxPageSize int

	// Errs makes the named method fail with the given error.
	Errs map[string]error

	mu      sync.Mutex
	calls   map[string]int
	args    map[string][]string
	created []domain.Task
	closed  []string
}

// Calls returns how many times method was called.
func (f *Fake) Calls(method string) int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.calls[method]
}

// Args returns the primary argument (id, query, or cursor) of each call to
// method, in call order.
func (f *Fake) Args(method string) []string {
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([]string(nil), f.args[method]...)
}

// Created returns the tasks passed to CreateTask.
func (f *Fake) Created() []domain.Task {
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([]domain.Task(nil), f.created...)
}

// Closed returns the ids passed to CloseTask.
func (f *Fake) Closed() []string {
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([]string(nil), f.closed...)
}

func (f *Fake) record(method, arg string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.calls == nil {
		f.calls = make(map[string]int)
		f.args = make(map[string][]string)
	}
	f.calls[method]++
	f.args[method] = append(f.args[method], arg)
	return f.Errs[method]
}

// GetTask implements ports.TodoistClient.
func (f *Fake) GetTask(_ context.Context, id string) (*domain.Task, error) {
	if err := f.record(MethodGetTask, id); err != nil {
		return nil, err
	}
	return find(f.Tasks, id, func(t domain.Task) string { return t.ID })
}

// ListTasks implements ports.TodoistClient.
func (f *Fake) ListTasks(_ context.Context, q domain.TaskQuery, cursor string, limit int) (domain.Page[domain.Task], error) {
	if err := f.record(MethodListTasks, cursor); err != nil {
		return domain.Page[domain.Task]{}, err
	}
	var out []domain.Task
	for _, t := range f.Tasks {
		if q.ProjectID != "" && t.ProjectID != q.ProjectID {
			continue
		}
		if q.SectionID != "" && t.SectionID != q.SectionID {
			continue
		}
		if q.ParentID != "" && t.ParentID != q.ParentID {
			continue
		}
		if q.Label != "" && !slices.Contains(t.Labels, q.Label) {
			continue
		}
		out = append(out, t)
	}
	return pageOf(out, cursor, limit, f.MaxPageSize)
}

// FilterTasks implements ports.TodoistClient. It understands "search: <text>"
// (case-insensitive substring on content) and "#<project name>"; any other
// query matches every task.
func (f *Fake) FilterTasks(_ context.Context, query, cursor string, limit int) (domain.Page[domain.Task], error) {
	if err := f.record(MethodFilterTasks, query); err != nil {
		return domain.Page[domain.Task]{}, err
	}
	var out []domain.Task
	for _, t := range f.Tasks {
		if f.matchesFilter(t, query) {
			out = append(out, t)
		}
	}
	return pageOf(out, cursor, limit, f.MaxPageSize)
}

func (f *Fake) matchesFilter(t domain.Task, query string) bool {
	switch {
	case strings.HasPrefix(query, "search: "):
		needle := strings.ToLower(strings.TrimPrefix(query, "search: "))
		return strings.Contains(strings.ToLower(t.Content), needle)
	case strings.HasPrefix(query, "#"):
		name := strings.TrimPrefix(query, "#")
		for _, p := range f.Projects {
			if p.ID == t.ProjectID {
				return strings.EqualFold(p.Name, name)
			}
		}
		return false
	default:
		return true
	}
}

// CreateTask implements ports.TodoistClient.
func (f *Fake) CreateTask(_ context.Context, task *domain.Task) (*domain.Task, error) {
	if err := f.record(MethodCreateTask, task.Content); err != nil {
		return nil, err
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	created := *task
	created.ID = fmt.Sprintf("new-%d", len(f.created)+1)
	f.created = append(f.created, created)
	return &created, nil
}

// CloseTask implements ports.TodoistClient.
func (f *Fake) CloseTask(_ context.Context, id string) error {
	if err := f.record(MethodCloseTask, id); err != nil {
		return err
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	f.closed = append(f.closed, id)
	return nil
}

// GetProject implements ports.TodoistClient.
func (f *Fake) GetProject(_ context.Context, id string) (*domain.Project, error) {
	if err := f.record(MethodGetProject, id); err != nil {
		return nil, err
	}
	return find(f.Projects, id, func(p domain.Project) string { return p.ID })
}

// ListProjects implements ports.TodoistClient.
func (f *Fake) ListProjects(_ context.Context, cursor string, limit int) (domain.Page[domain.Project], error) {
	if err := f.record(MethodListProjects, cursor); err != nil {
		return domain.Page[domain.Project]{}, err
	}
	return pageOf(f.Projects, cursor, limit, f.MaxPageSize)
}

// GetSection implements ports.TodoistClient.
func (f *Fake) GetSection(_ context.Context, id string) (*domain.Section, error) {
	if err := f.record(MethodGetSection, id); err != nil {
		return nil, err
	}
	return find(f.Sections, id, func(s domain.Section) string { return s.ID })
}

// ListSections implements ports.TodoistClient.
func (f *Fake) ListSections(_ context.Context, projectID, cursor string, limit int) (domain.Page[domain.Section], error) {
	if err := f.record(MethodListSections, projectID); err != nil {
		return domain.Page[domain.Section]{}, err
	}
	var out []domain.Section
	for _, s := range f.Sections {
		if s.ProjectID == projectID {
			out = append(out, s)
		}
	}
	return pageOf(out, cursor, limit, f.MaxPageSize)
}

// ListLabels implements ports.TodoistClient.
func (f *Fake) ListLabels(_ context.Context, cursor string, limit int) (domain.Page[domain.Label], error) {
	if err := f.record(MethodListLabels, cursor); err != nil {
		return domain.Page[domain.Label]{}, err
	}
	return pageOf(f.Labels, cursor, limit, f.MaxPageSize)
}

// ListFilters implements ports.TodoistClient.
func (f *Fake) ListFilters(_ context.Context, cursor string, limit int) (domain.Page[domain.Filter], error) {
	if err := f.record(MethodListFilters, cursor); err != nil {
		return domain.Page[domain.Filter]{}, err
	}
	return pageOf(f.Filters, cursor, limit, f.MaxPageSize)
}

// ListWorkspaces implements ports.TodoistClient.
func (f *Fake) ListWorkspaces(_ context.Context) ([]domain.Workspace, error) {
	if err := f.record(MethodListWorkspaces, ""); err != nil {
		return nil, err
	}
	return f.Workspaces, nil
}

// ListWorkspaceUsers implements ports.TodoistClient.
func (f *Fake) ListWorkspaceUsers(_ context.Context, workspaceID, cursor string) (domain.WorkspaceUserPage, error) {
	if err := f.record(MethodListWorkspaceUsers, workspaceID); err != nil {
		return domain.WorkspaceUserPage{}, err
	}
	page, err := pageOf(f.WorkspaceUsers[workspaceID], cursor, 0, f.MaxPageSize)
	if err != nil {
		return domain.WorkspaceUserPage{}, err
	}
	return domain.WorkspaceUserPage{
		Users:      page.Items,
		HasMore:    page.NextCursor != "",
		NextCursor: page.NextCursor,
	}, nil
}

// ListProjectCollaborators implements ports.TodoistClient.
func (f *Fake) ListProjectCollaborators(_ context.Context, projectID, cursor string) (domain.Page[domain.Collaborator], error) {
	if err := f.record(MethodListProjectCollaborators, projectID); err != nil {
		return domain.Page[domain.Collaborator]{}, err
	}
	return pageOf(f.ProjectCollaborators[projectID], cursor, 0, f.MaxPageSize)
}

// CurrentUser implements ports.TodoistClient.
func (f *Fake) CurrentUser(_ context.Context) (*domain.User, error) {
	if err := f.record(MethodCurrentUser, ""); err != nil {
		return nil, err
	}
	u := f.User
	return &u, nil
}

func find[T any](items []T, id string, idOf func(T) string) (*T, error) {
	for i := range items {
		if idOf(items[i]) == id {
			it := items[i]
			return &it, nil
		}
	}
	return nil, fmt.Errorf("%s: %w", id, domain.ErrNotFound)
}

// pageOf slices items starting at the offset encoded in cursor.
func pageOf[T any](items []T, cursor string, limit, maxPage int) (domain.Page[T], error) {
	offset := 0
	if cursor != "" {
		n, err := strconv.Atoi(cursor)
		if err != nil || n < 0 || n > len(items) {
			return domain.Page[T]{}, fmt.Errorf("invalid cursor %q: %w", cursor, domain.ErrValidation)
		}
		offset = n
	}

	size := len(items) - offset
	if limit > 0 {
		size = min(size, limit)
	}
	if maxPage > 0 {
		size = min(size, maxPage)
	}

	end := offset + size
	page := domain.Page[T]{Items: append([]T(nil), items[offset:end]...)}
	if end < len(items) {
		page.NextCursor = strconv.Itoa(end)
	}
	return page, nil
}
