package resolve

import (
	"context"
	"log/slog"

	appctx "github.com/jsamuelsen11/todo-cli/internal/app/context"
	"github.com/jsamuelsen11/todo-cli/internal/app/paginate"
	"github.com/jsamuelsen11/todo-cli/internal/domain"
	"github.com/jsamuelsen11/todo-cli/internal/ports"
)

// Memo keys for listings shared across resolutions within one command.
const (
	keyProjects   = "projects"
	keyLabels     = "labels"
	keyFilters    = "filters"
	keyWorkspaces = "workspaces"
	keySections   = "sections:"
	keyTasks      = "tasks:"
)

// Resolver resolves references for every entity kind against the backend.
// Listings fetched for matching are memoized in the command's
// appctx.CommandContext, so resolving a project and then a section of it
// lists projects once.
type Resolver struct {
	client   ports.TodoistClient
	cc       *appctx.CommandContext
	pageSize int
	logger   *slog.Logger

	projects   *appctx.DataProvider[[]domain.Project]
	labels     *appctx.DataProvider[[]domain.Label]
	filters    *appctx.DataProvider[[]domain.Filter]
	workspaces *appctx.DataProvider[[]domain.Workspace]
}

// NewResolver creates a Resolver bound to one command's context. pageSize
// caps each listing request; zero uses paginate.DefaultPageSize.
func NewResolver(client ports.TodoistClient, cc *appctx.CommandContext, pageSize int, logger *slog.Logger) *Resolver {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	return &Resolver{
		client:   client,
		cc:       cc,
		pageSize: pageSize,
		logger:   logger,

		projects: appctx.NewDataProvider(keyProjects, func(ctx context.Context) ([]domain.Project, error) {
			return paginate.Collect(ctx, client.ListProjects, pageSize)
		}),
		labels: appctx.NewDataProvider(keyLabels, func(ctx context.Context) ([]domain.Label, error) {
			return paginate.Collect(ctx, client.ListLabels, pageSize)
		}),
		filters: appctx.NewDataProvider(keyFilters, func(ctx context.Context) ([]domain.Filter, error) {
			return paginate.Collect(ctx, client.ListFilters, pageSize)
		}),
		workspaces: appctx.NewDataProvider(keyWorkspaces, client.ListWorkspaces),
	}
}

// Projects returns every project, fetched at most once per command.
func (r *Resolver) Projects() ([]domain.Project, error) {
	return r.projects.Get(r.cc)
}

// Project resolves a project reference.
func (r *Resolver) Project(ctx context.Context, ref string) (domain.Project, error) {
	r.logger.DebugContext(ctx, "resolving project", slog.String("ref", ref))

	return Resolve(ctx, domain.KindProject, ref, Funcs[domain.Project]{
		Fetch: func(ctx context.Context, id string) (domain.Project, error) {
			return deref(r.client.GetProject(ctx, id))
		},
		List: func(context.Context) ([]domain.Project, error) { return r.Projects() },
		Name: func(p domain.Project) string { return p.Name },
		ID:   func(p domain.Project) string { return p.ID },
	})
}

// Sections returns a project's sections, fetched at most once per command.
func (r *Resolver) Sections(projectID string) ([]domain.Section, error) {
	return appctx.GetOrFetch(r.cc, keySections+projectID, func(ctx context.Context) ([]domain.Section, error) {
		return paginate.Collect(ctx, func(ctx context.Context, cursor string, limit int) (domain.Page[domain.Section], error) {
			return r.client.ListSections(ctx, projectID, cursor, limit)
		}, r.pageSize)
	})
}

// Section resolves a section reference within a project. Free text is only
// matched against that project's sections. A canonical reference to a real
// section of another project fails with SECTION_NOT_IN_PROJECT.
func (r *Resolver) Section(ctx context.Context, ref, projectID string) (domain.Section, error) {
	r.logger.DebugContext(ctx, "resolving section",
		slog.String("ref", ref),
		slog.String("project_id", projectID),
	)

	return Resolve(ctx, domain.KindSection, ref, Funcs[domain.Section]{
		Fetch: func(ctx context.Context, id string) (domain.Section, error) {
			s, err := deref(r.client.GetSection(ctx, id))
			if err != nil {
				return s, err
			}
			if s.ProjectID != projectID {
				return domain.Section{}, domain.NewSectionNotInProjectError(id, projectID)
			}
			return s, nil
		},
		List: func(context.Context) ([]domain.Section, error) { return r.Sections(projectID) },
		Name: func(s domain.Section) string { return s.Name },
		ID:   func(s domain.Section) string { return s.ID },
	})
}

// Task resolves a task reference. Free text is matched against the tasks a
// server-side search for the text returns.
func (r *Resolver) Task(ctx context.Context, ref string) (domain.Task, error) {
	r.logger.DebugContext(ctx, "resolving task", slog.String("ref", ref))

	return Resolve(ctx, domain.KindTask, ref, Funcs[domain.Task]{
		Fetch: func(ctx context.Context, id string) (domain.Task, error) {
			return deref(r.client.GetTask(ctx, id))
		},
		List: func(ctx context.Context) ([]domain.Task, error) {
			query := "search: " + ref
			return paginate.Collect(ctx, func(ctx context.Context, cursor string, limit int) (domain.Page[domain.Task], error) {
				return r.client.FilterTasks(ctx, query, cursor, limit)
			}, r.pageSize)
		},
		Name: taskName,
		ID:   taskID,
	})
}

// ProjectTasks returns a project's active tasks, fetched at most once per
// command.
func (r *Resolver) ProjectTasks(projectID string) ([]domain.Task, error) {
	return appctx.GetOrFetch(r.cc, keyTasks+projectID, func(ctx context.Context) ([]domain.Task, error) {
		q := domain.TaskQuery{ProjectID: projectID}
		return paginate.Collect(ctx, func(ctx context.Context, cursor string, limit int) (domain.Page[domain.Task], error) {
			return r.client.ListTasks(ctx, q, cursor, limit)
		}, r.pageSize)
	})
}

// ParentTask resolves a parent-task reference for a task being placed in
// projectID (and sectionID, when known).
//
// Free text is first matched among the tasks of the section. A unique hit
// there wins and an ambiguous hit is an error; when nothing in the section
// matches, the whole project is searched with the same rules.
func (r *Resolver) ParentTask(ctx context.Context, ref, projectID, sectionID string) (domain.Task, error) {
	r.logger.DebugContext(ctx, "resolving parent task",
		slog.String("ref", ref),
		slog.String("project_id", projectID),
		slog.String("section_id", sectionID),
	)

	if id, ok := ParseRef(ref); ok {
		if id == "" {
			return domain.Task{}, domain.NewInvalidRefError(domain.KindTask, ref)
		}
		return deref(r.client.GetTask(ctx, id))
	}

	tasks, err := r.ProjectTasks(projectID)
	if err != nil {
		return domain.Task{}, err
	}

	if sectionID != "" {
		inSection := make([]domain.Task, 0, len(tasks))
		for _, t := range tasks {
			if t.SectionID == sectionID {
				inSection = append(inSection, t)
			}
		}
		if m := match(ref, inSection, taskName); !m.empty() {
			return m.result(domain.KindTask, ref, taskName, taskID)
		}
	}

	return Match(domain.KindTask, ref, tasks, taskName, taskID)
}

// Labels returns every personal label, fetched at most once per command.
func (r *Resolver) Labels() ([]domain.Label, error) {
	return r.labels.Get(r.cc)
}

// Label resolves a label reference. Labels have no fetch-by-id endpoint, so
// canonical references are looked up in the listing.
func (r *Resolver) Label(ctx context.Context, ref string) (domain.Label, error) {
	return Resolve(ctx, domain.KindLabel, ref, listed(domain.KindLabel, r.Labels,
		func(l domain.Label) string { return l.Name },
		func(l domain.Label) string { return l.ID },
	))
}

// Filters returns every saved filter, fetched at most once per command.
func (r *Resolver) Filters() ([]domain.Filter, error) {
	return r.filters.Get(r.cc)
}

// Filter resolves a saved-filter reference.
func (r *Resolver) Filter(ctx context.Context, ref string) (domain.Filter, error) {
	return Resolve(ctx, domain.KindFilter, ref, listed(domain.KindFilter, r.Filters,
		func(f domain.Filter) string { return f.Name },
		func(f domain.Filter) string { return f.ID },
	))
}

// Workspaces returns every workspace, fetched at most once per command.
func (r *Resolver) Workspaces() ([]domain.Workspace, error) {
	return r.workspaces.Get(r.cc)
}

// Workspace resolves a workspace reference.
func (r *Resolver) Workspace(ctx context.Context, ref string) (domain.Workspace, error) {
	return Resolve(ctx, domain.KindWorkspace, ref, listed(domain.KindWorkspace, r.Workspaces,
		func(w domain.Workspace) string { return w.Name },
		func(w domain.Workspace) string { return w.ID },
	))
}

// listed builds a Source for kinds whose canonical references are checked
// against the memoized listing instead of a fetch-by-id endpoint.
func listed[T any](kind domain.Kind, list func() ([]T, error), nameOf, idOf func(T) string) Funcs[T] {
	return Funcs[T]{
		Fetch: func(_ context.Context, id string) (T, error) {
			var zero T
			items, err := list()
			if err != nil {
				return zero, err
			}
			for _, it := range items {
				if idOf(it) == id {
					return it, nil
				}
			}
			return zero, domain.NewNotFoundError(kind, IDPrefix+id)
		},
		List: func(context.Context) ([]T, error) { return list() },
		Name: nameOf,
		ID:   idOf,
	}
}

func taskName(t domain.Task) string { return t.Content }
func taskID(t domain.Task) string   { return t.ID }

// deref adapts the client's pointer returns to the value-typed resolver.
func deref[T any](v *T, err error) (T, error) {
	if err != nil || v == nil {
		var zero T
		return zero, err
	}
	return *v, nil
}
