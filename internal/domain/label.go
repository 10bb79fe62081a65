package domain

// Label is a personal tag attached to tasks by name.
type Label struct {
	ID         string
	Name       string
	Color      string
	IsFavorite bool
}
