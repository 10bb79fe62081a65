package domain

// Project is a container of tasks. A project either belongs to a workspace
// (WorkspaceID set) or is a personal project that may be shared with named
// collaborators.
type Project struct {
	ID          string
	Name        string
	Color       string
	ParentID    string
	WorkspaceID string
	IsShared    bool
	IsInbox     bool
	IsArchived  bool
	IsFavorite  bool
	ViewStyle   string
	URL         string
}

// Scope classifies who can be assigned tasks in a project.
type Scope int

const (
	// ScopePrivate is an unshared personal project; its tasks have no
	// meaningful external assignees.
	ScopePrivate Scope = iota
	// ScopeWorkspace is a project owned by a workspace; assignees are
	// workspace members.
	ScopeWorkspace
	// ScopeSharedPersonal is a personal project shared with collaborators.
	ScopeSharedPersonal
)

// String implements fmt.Stringer.
func (s Scope) String() string {
	switch s {
	case ScopeWorkspace:
		return "workspace"
	case ScopeSharedPersonal:
		return "shared"
	default:
		return "private"
	}
}

// Scope reports whether the project is workspace-owned, a shared personal
// project, or private.
func (p *Project) Scope() Scope {
	switch {
	case p.WorkspaceID != "":
		return ScopeWorkspace
	case p.IsShared:
		return ScopeSharedPersonal
	default:
		return ScopePrivate
	}
}
