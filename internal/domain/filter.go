package domain

// Filter is a saved task query.
type Filter struct {
	ID         string
	Name       string
	Query      string
	Color      string
	IsFavorite bool
}

// TaskQuery narrows a task listing. Zero-value fields mean "no filter" for
// that dimension.
type TaskQuery struct {
	ProjectID string
	SectionID string
	ParentID  string
	Label     string
}
