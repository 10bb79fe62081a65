package domain

// Workspace is a multi-user container that owns projects.
type Workspace struct {
	ID   string
	Name string
	Plan string
	Role string
}
