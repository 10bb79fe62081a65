// Package app provides application services that orchestrate use cases by
// coordinating between domain logic and infrastructure through port interfaces.
package app

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/jsamuelsen11/todo-cli/internal/app/collaborators"
	appctx "github.com/jsamuelsen11/todo-cli/internal/app/context"
	"github.com/jsamuelsen11/todo-cli/internal/app/paginate"
	"github.com/jsamuelsen11/todo-cli/internal/app/resolve"
	"github.com/jsamuelsen11/todo-cli/internal/domain"
	"github.com/jsamuelsen11/todo-cli/internal/ports"
)

// Compile-time check that TaskService implements ports.TaskService.
var _ ports.TaskService = (*TaskService)(nil)

// Settings tunes how the service talks to the backend.
type Settings struct {
	// PageSize caps each listing request. Zero uses paginate.DefaultPageSize.
	PageSize int
	// CollaboratorConcurrency bounds concurrent collaborator fetches. Zero
	// uses collaborators.DefaultMaxConcurrency.
	CollaboratorConcurrency int
}

// TaskService implements ports.TaskService. Every call builds its own
// resolver, listing memo and collaborator cache, so nothing fetched for one
// command leaks into the next.
type TaskService struct {
	client   ports.TodoistClient
	settings Settings
	logger   *slog.Logger
}

// NewTaskService creates a TaskService backed by client. A nil logger
// discards output.
func NewTaskService(client ports.TodoistClient, settings Settings, logger *slog.Logger) *TaskService {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	return &TaskService{
		client:   client,
		settings: settings,
		logger:   logger,
	}
}

func (s *TaskService) resolver(ctx context.Context) *resolve.Resolver {
	return resolve.NewResolver(s.client, appctx.New(ctx), s.settings.PageSize, s.logger)
}

func (s *TaskService) newCache() *collaborators.Cache {
	return collaborators.New(s.client,
		collaborators.WithMaxConcurrency(s.settings.CollaboratorConcurrency),
		collaborators.WithLogger(s.logger),
	)
}

// ListTasks lists tasks in one of three modes: a saved filter, a raw filter
// query, or a structured project/section/label scope.
func (s *TaskService) ListTasks(ctx context.Context, in ports.ListTasksInput) (*ports.TaskList, error) {
	s.logger.InfoContext(ctx, "listing tasks",
		slog.String("project", in.ProjectRef),
		slog.String("section", in.SectionRef),
		slog.String("label", in.LabelRef),
		slog.String("filter", in.FilterRef),
		slog.Int("limit", in.Limit),
	)

	if err := validateListInput(in); err != nil {
		return nil, err
	}

	r := s.resolver(ctx)

	fetch, err := s.taskFetcher(ctx, r, in)
	if err != nil {
		s.logError(ctx, "failed to resolve task scope", "ListTasks", err)
		return nil, err
	}

	res, err := paginate.Paginate(ctx, fetch, paginate.Options{
		Limit:       in.Limit,
		StartCursor: in.Cursor,
		PageSize:    s.settings.PageSize,
	})
	if err != nil {
		s.logError(ctx, "failed to list tasks", "ListTasks", err)
		return nil, err
	}

	rows, err := s.rows(ctx, r, res.Items)
	if err != nil {
		s.logError(ctx, "failed to resolve assignees", "ListTasks", err)
		return nil, err
	}

	return &ports.TaskList{Rows: rows, NextCursor: res.NextCursor}, nil
}

func validateListInput(in ports.ListTasksInput) error {
	fields := make(map[string]string)

	structured := in.ProjectRef != "" || in.SectionRef != "" || in.LabelRef != ""
	if in.FilterRef != "" && (in.Query != "" || structured) {
		fields["filter"] = "cannot be combined with other scopes"
	}
	if in.Query != "" && structured {
		fields["query"] = "cannot be combined with project, section or label"
	}
	if in.SectionRef != "" && in.ProjectRef == "" {
		fields["project"] = "is required when section is set"
	}

	if len(fields) > 0 {
		return &domain.ValidationError{Fields: fields}
	}
	return nil
}

// taskFetcher resolves the listing scope and returns the page fetcher for it.
func (s *TaskService) taskFetcher(ctx context.Context, r *resolve.Resolver, in ports.ListTasksInput) (paginate.FetchFunc[domain.Task], error) {
	switch {
	case in.FilterRef != "":
		f, err := r.Filter(ctx, in.FilterRef)
		if err != nil {
			return nil, err
		}
		return s.filterFetcher(f.Query), nil

	case in.Query != "":
		return s.filterFetcher(in.Query), nil
	}

	var q domain.TaskQuery
	if in.ProjectRef != "" {
		p, err := r.Project(ctx, in.ProjectRef)
		if err != nil {
			return nil, err
		}
		q.ProjectID = p.ID

		if in.SectionRef != "" {
			sec, err := r.Section(ctx, in.SectionRef, p.ID)
			if err != nil {
				return nil, err
			}
			q.SectionID = sec.ID
		}
	}
	if in.LabelRef != "" {
		l, err := r.Label(ctx, in.LabelRef)
		if err != nil {
			return nil, err
		}
		q.Label = l.Name
	}

	return func(ctx context.Context, cursor string, limit int) (domain.Page[domain.Task], error) {
		return s.client.ListTasks(ctx, q, cursor, limit)
	}, nil
}

// filterFetcher pages a filter query. A backend validation failure means the
// query itself is malformed and is reported as INVALID_FILTER.
func (s *TaskService) filterFetcher(query string) paginate.FetchFunc[domain.Task] {
	return func(ctx context.Context, cursor string, limit int) (domain.Page[domain.Task], error) {
		page, err := s.client.FilterTasks(ctx, query, cursor, limit)
		if errors.Is(err, domain.ErrValidation) {
			return page, domain.NewInvalidFilterError(query)
		}
		return page, err
	}
}

// rows attaches project names and assignee display names to tasks.
func (s *TaskService) rows(ctx context.Context, r *resolve.Resolver, tasks []domain.Task) ([]ports.TaskRow, error) {
	rows := make([]ports.TaskRow, 0, len(tasks))
	if len(tasks) == 0 {
		return rows, nil
	}

	projects, err := r.Projects()
	if err != nil {
		return nil, err
	}
	idx := collaborators.IndexProjects(projects)

	cache := s.newCache()
	if err := cache.Preload(ctx, tasks, idx); err != nil {
		return nil, err
	}

	for _, t := range tasks {
		rows = append(rows, ports.TaskRow{
			Task:        t,
			ProjectName: idx[t.ProjectID].Name,
			Assignee:    cache.Assignee(t, idx),
		})
	}
	return rows, nil
}

// ViewTask resolves a single task and its assignee.
func (s *TaskService) ViewTask(ctx context.Context, ref string) (*ports.TaskRow, error) {
	s.logger.InfoContext(ctx, "viewing task", slog.String("ref", ref))

	r := s.resolver(ctx)

	t, err := r.Task(ctx, ref)
	if err != nil {
		s.logError(ctx, "failed to resolve task", "ViewTask", err)
		return nil, err
	}

	p, err := r.Project(ctx, resolve.IDPrefix+t.ProjectID)
	if err != nil {
		s.logError(ctx, "failed to fetch task project", "ViewTask", err, slog.String("project_id", t.ProjectID))
		return nil, fmt.Errorf("fetching project of task %s: %w", t.ID, err)
	}
	idx := collaborators.IndexProjects([]domain.Project{p})

	cache := s.newCache()
	if err := cache.Preload(ctx, []domain.Task{t}, idx); err != nil {
		s.logError(ctx, "failed to resolve assignee", "ViewTask", err, slog.String("task_id", t.ID))
		return nil, err
	}

	return &ports.TaskRow{
		Task:        t,
		ProjectName: p.Name,
		Assignee:    cache.Assignee(t, idx),
	}, nil
}

// AddTask resolves every reference in the input and creates the task. The
// parent task is searched in the target section first, then the project.
func (s *TaskService) AddTask(ctx context.Context, in ports.AddTaskInput) (*domain.Task, error) {
	s.logger.InfoContext(ctx, "adding task",
		slog.String("project", in.ProjectRef),
		slog.String("section", in.SectionRef),
		slog.String("parent", in.ParentRef),
	)

	if in.SectionRef != "" && in.ProjectRef == "" {
		return nil, &domain.ValidationError{Fields: map[string]string{"project": "is required when section is set"}}
	}
	if in.AssigneeRef != "" && in.ProjectRef == "" && !selfOrCanonical(in.AssigneeRef) {
		return nil, &domain.ValidationError{Fields: map[string]string{"project": "is required to match an assignee by name"}}
	}

	task := &domain.Task{
		Content:     in.Content,
		Description: in.Description,
		Priority:    in.Priority,
	}
	if in.DueString != "" {
		task.Due = &domain.Due{String: in.DueString}
	}
	if err := task.Validate(); err != nil {
		return nil, err
	}

	r := s.resolver(ctx)

	var project domain.Project
	if in.ProjectRef != "" {
		p, err := r.Project(ctx, in.ProjectRef)
		if err != nil {
			s.logError(ctx, "failed to resolve project", "AddTask", err)
			return nil, err
		}
		project = p
		task.ProjectID = p.ID
	}

	if in.SectionRef != "" {
		sec, err := r.Section(ctx, in.SectionRef, project.ID)
		if err != nil {
			s.logError(ctx, "failed to resolve section", "AddTask", err)
			return nil, err
		}
		task.SectionID = sec.ID
	}

	if in.ParentRef != "" {
		parent, err := s.parent(ctx, r, in.ParentRef, task.ProjectID, task.SectionID)
		if err != nil {
			s.logError(ctx, "failed to resolve parent task", "AddTask", err)
			return nil, err
		}
		task.ParentID = parent.ID
		if task.ProjectID == "" {
			task.ProjectID = parent.ProjectID
		}
	}

	for _, ref := range in.Labels {
		l, err := r.Label(ctx, ref)
		if err != nil {
			s.logError(ctx, "failed to resolve label", "AddTask", err)
			return nil, err
		}
		task.Labels = append(task.Labels, l.Name)
	}

	if in.AssigneeRef != "" {
		id, err := s.newCache().ResolveAssignee(ctx, in.AssigneeRef, project, s.client.CurrentUser)
		if err != nil {
			s.logError(ctx, "failed to resolve assignee", "AddTask", err)
			return nil, err
		}
		task.AssigneeID = id
	}

	created, err := s.client.CreateTask(ctx, task)
	if err != nil {
		s.logError(ctx, "failed to create task", "AddTask", err)
		return nil, fmt.Errorf("creating task: %w", err)
	}

	return created, nil
}

func selfOrCanonical(ref string) bool {
	if strings.EqualFold(ref, collaborators.RefMe) {
		return true
	}
	_, ok := resolve.ParseRef(ref)
	return ok
}

func (s *TaskService) parent(ctx context.Context, r *resolve.Resolver, ref, projectID, sectionID string) (domain.Task, error) {
	if projectID == "" {
		return r.Task(ctx, ref)
	}
	return r.ParentTask(ctx, ref, projectID, sectionID)
}

// CompleteTask resolves a task and closes it. With requireID set, free text
// is refused with INVALID_REF instead of being matched.
func (s *TaskService) CompleteTask(ctx context.Context, ref string, requireID bool) (*domain.Task, error) {
	s.logger.InfoContext(ctx, "completing task",
		slog.String("ref", ref),
		slog.Bool("require_id", requireID),
	)

	if requireID {
		if _, err := resolve.RequireIDRef(domain.KindTask, ref); err != nil {
			return nil, err
		}
	}

	t, err := s.resolver(ctx).Task(ctx, ref)
	if err != nil {
		s.logError(ctx, "failed to resolve task", "CompleteTask", err)
		return nil, err
	}

	if err := s.client.CloseTask(ctx, t.ID); err != nil {
		s.logError(ctx, "failed to close task", "CompleteTask", err, slog.String("task_id", t.ID))
		return nil, fmt.Errorf("closing task %s: %w", t.ID, err)
	}

	t.Checked = true
	return &t, nil
}

// ListProjects returns one page of projects.
func (s *TaskService) ListProjects(ctx context.Context, limit int, cursor string) (*ports.ProjectList, error) {
	s.logger.InfoContext(ctx, "listing projects", slog.Int("limit", limit))

	res, err := paginate.Paginate(ctx, s.client.ListProjects, paginate.Options{
		Limit:       limit,
		StartCursor: cursor,
		PageSize:    s.settings.PageSize,
	})
	if err != nil {
		s.logError(ctx, "failed to list projects", "ListProjects", err)
		return nil, err
	}

	return &ports.ProjectList{Projects: res.Items, NextCursor: res.NextCursor}, nil
}

func (s *TaskService) logError(ctx context.Context, msg, operation string, err error, attrs ...slog.Attr) {
	args := make([]any, 0, len(attrs)+2)
	args = append(args, slog.String("operation", operation), slog.Any("error", err))
	for _, a := range attrs {
		args = append(args, a)
	}
	s.logger.ErrorContext(ctx, msg, args...)
}
