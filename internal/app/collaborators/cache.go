// Package collaborators caches the people tasks can be assigned to, so a
// listing of tasks can show assignee names instead of raw user ids.
//
// Assignees of workspace projects are workspace members; assignees of shared
// personal projects are that project's collaborators. Preload fetches each
// workspace and each shared project at most once per Cache, running the
// independent fetches concurrently. A key whose fetch failed is not retried
// by the same Cache.
package collaborators

import (
	"context"
	"fmt"
	"log/slog"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"

	"github.com/jsamuelsen11/todo-cli/internal/app/fanout"
	"github.com/jsamuelsen11/todo-cli/internal/domain"
	"github.com/jsamuelsen11/todo-cli/internal/ports"
)

// DefaultMaxConcurrency bounds the number of fetches in flight during Preload.
const DefaultMaxConcurrency = 8

// ProjectIndex maps project id to project.
type ProjectIndex map[string]domain.Project

// IndexProjects builds a ProjectIndex from a listing.
func IndexProjects(projects []domain.Project) ProjectIndex {
	idx := make(ProjectIndex, len(projects))
	for _, p := range projects {
		idx[p.ID] = p
	}
	return idx
}

// users maps user id to collaborator.
type users map[string]domain.Collaborator

// Option configures a Cache.
type Option func(*Cache)

// WithMaxConcurrency sets how many fetches Preload runs at once. Values below
// one are ignored.
func WithMaxConcurrency(n int) Option {
	return func(c *Cache) {
		if n >= 1 {
			c.maxConcurrency = n
		}
	}
}

// WithLogger sets the logger used for debug output.
func WithLogger(logger *slog.Logger) Option {
	return func(c *Cache) {
		if logger != nil {
			c.logger = logger
		}
	}
}

// Cache holds workspace members and shared-project collaborators keyed by
// workspace id and project id. A Cache belongs to one command invocation and
// is not safe for concurrent use; Preload is its only writer and does all
// inserts on the calling goroutine.
type Cache struct {
	client         ports.CollaboratorClient
	maxConcurrency int
	logger         *slog.Logger

	workspaces map[string]users
	projects   map[string]users
	failed     map[fetchJob]error
}

// New creates an empty Cache backed by client.
func New(client ports.CollaboratorClient, opts ...Option) *Cache {
	c := &Cache{
		client:         client,
		maxConcurrency: DefaultMaxConcurrency,
		logger:         slog.New(slog.DiscardHandler),
		workspaces:     make(map[string]users),
		projects:       make(map[string]users),
		failed:         make(map[fetchJob]error),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// fetchJob is one independent fetch scheduled by Preload.
type fetchJob struct {
	scope domain.Scope
	key   string
}

// Preload fetches the collaborators needed to name the assignees of tasks.
//
// Only projects owning at least one assigned task are considered. Workspace
// projects are deduplicated by workspace id, shared personal projects by
// project id, and private projects are skipped. Keys already cached are not
// fetched again. Errors from the fetches are returned as-is (joined when more
// than one fails); successful fetches are still cached.
//
// A failed key is remembered and skipped by later calls, which then return
// nil for it; assignees in that scope render as raw user ids.
func (c *Cache) Preload(ctx context.Context, tasks []domain.Task, projects ProjectIndex) error {
	jobs := c.plan(tasks, projects)
	if len(jobs) == 0 {
		return nil
	}

	ctx, span := otel.GetTracerProvider().Tracer("collaborators").Start(ctx, "collaborators.preload")
	defer span.End()
	span.SetAttributes(attribute.Int("collaborators.fetches", len(jobs)))

	c.logger.DebugContext(ctx, "preloading collaborators", slog.Int("fetches", len(jobs)))

	results := fanout.Run(ctx, c.maxConcurrency, jobs, c.fetch)
	for i, r := range results {
		if r.Err != nil {
			c.failed[jobs[i]] = r.Err
			continue
		}
		c.store(jobs[i], r.Value)
	}

	if err := fanout.Err(results); err != nil {
		span.RecordError(err)
		return err
	}
	return nil
}

// plan returns the deduplicated fetches needed for tasks, in first-seen order.
func (c *Cache) plan(tasks []domain.Task, projects ProjectIndex) []fetchJob {
	seenProjects := make(map[string]bool)
	seenKeys := make(map[fetchJob]bool)
	var jobs []fetchJob

	for _, t := range tasks {
		if !t.HasAssignee() || seenProjects[t.ProjectID] {
			continue
		}
		seenProjects[t.ProjectID] = true

		p, ok := projects[t.ProjectID]
		if !ok {
			continue
		}
		job, ok := jobFor(p)
		if !ok {
			continue
		}

		if seenKeys[job] || c.has(job) {
			continue
		}
		seenKeys[job] = true
		jobs = append(jobs, job)
	}
	return jobs
}

// jobFor returns the fetch that covers p's assignees. Private projects have
// none.
func jobFor(p domain.Project) (fetchJob, bool) {
	switch p.Scope() {
	case domain.ScopeWorkspace:
		return fetchJob{scope: domain.ScopeWorkspace, key: p.WorkspaceID}, true
	case domain.ScopeSharedPersonal:
		return fetchJob{scope: domain.ScopeSharedPersonal, key: p.ID}, true
	default:
		return fetchJob{}, false
	}
}

// has reports whether job was already fetched, successfully or not.
func (c *Cache) has(job fetchJob) bool {
	if _, ok := c.failed[job]; ok {
		return true
	}
	if job.scope == domain.ScopeWorkspace {
		_, ok := c.workspaces[job.key]
		return ok
	}
	_, ok := c.projects[job.key]
	return ok
}

func (c *Cache) store(job fetchJob, u users) {
	if job.scope == domain.ScopeWorkspace {
		c.workspaces[job.key] = u
		return
	}
	c.projects[job.key] = u
}

func (c *Cache) fetch(ctx context.Context, job fetchJob) (users, error) {
	if job.scope == domain.ScopeWorkspace {
		return c.fetchWorkspace(ctx, job.key)
	}
	return c.fetchProject(ctx, job.key)
}

// fetchWorkspace pages workspace members while the backend reports more.
func (c *Cache) fetchWorkspace(ctx context.Context, workspaceID string) (users, error) {
	out := make(users)
	cursor := ""
	for {
		page, err := c.client.ListWorkspaceUsers(ctx, workspaceID, cursor)
		if err != nil {
			return nil, err
		}
		for _, u := range page.Users {
			out[u.ID] = u
		}
		if !page.HasMore || page.NextCursor == "" {
			return out, nil
		}
		cursor = page.NextCursor
	}
}

// fetchProject pages a shared project's collaborators until the cursor runs out.
func (c *Cache) fetchProject(ctx context.Context, projectID string) (users, error) {
	out := make(users)
	cursor := ""
	for {
		page, err := c.client.ListProjectCollaborators(ctx, projectID, cursor)
		if err != nil {
			return nil, err
		}
		for _, u := range page.Items {
			out[u.ID] = u
		}
		if !page.HasMore() {
			return out, nil
		}
		cursor = page.NextCursor
	}
}

// UserName returns the display name of userID as seen from projectID. It
// reports false when the project is unknown, private, not preloaded, or has
// no such user.
func (c *Cache) UserName(userID, projectID string, projects ProjectIndex) (string, bool) {
	u, ok := c.lookup(userID, projectID, projects)
	if !ok {
		return "", false
	}
	return u.Name, true
}

func (c *Cache) lookup(userID, projectID string, projects ProjectIndex) (domain.Collaborator, bool) {
	p, ok := projects[projectID]
	if !ok {
		return domain.Collaborator{}, false
	}

	var set users
	switch p.Scope() {
	case domain.ScopeWorkspace:
		set = c.workspaces[p.WorkspaceID]
	case domain.ScopeSharedPersonal:
		set = c.projects[p.ID]
	default:
		return domain.Collaborator{}, false
	}

	u, ok := set[userID]
	return u, ok
}

// Assignee renders the task's assignee for display: "+First L." when the
// name is known, "+<user id>" otherwise, and "" for an unassigned task.
func (c *Cache) Assignee(task domain.Task, projects ProjectIndex) string {
	if !task.HasAssignee() {
		return ""
	}
	if name, ok := c.UserName(task.AssigneeID, task.ProjectID, projects); ok && name != "" {
		return FormatName(name)
	}
	return "+" + task.AssigneeID
}

// members returns the cached assignable users for a project, fetching them
// if needed. Private projects have none.
func (c *Cache) members(ctx context.Context, project domain.Project) ([]domain.Collaborator, error) {
	job, ok := jobFor(project)
	if !ok {
		return sortedUsers(nil), nil
	}

	placeholder := domain.Task{ProjectID: project.ID, AssigneeID: "-"}
	if err := c.Preload(ctx, []domain.Task{placeholder}, ProjectIndex{project.ID: project}); err != nil {
		return nil, fmt.Errorf("loading collaborators of project %s: %w", project.ID, err)
	}
	if err, ok := c.failed[job]; ok {
		return nil, fmt.Errorf("loading collaborators of project %s: %w", project.ID, err)
	}

	if job.scope == domain.ScopeWorkspace {
		return sortedUsers(c.workspaces[job.key]), nil
	}
	return sortedUsers(c.projects[job.key]), nil
}
