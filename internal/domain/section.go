package domain

// Section groups tasks inside a single project.
type Section struct {
	ID           string
	Name         string
	ProjectID    string
	SectionOrder int
	IsArchived   bool
}
