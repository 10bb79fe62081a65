// Package project implements the Anti-Corruption Layer translators for the
// task API's project and section resources.
package project

// ProjectDTO matches the API's project schema. Workspace projects carry a
// workspace_id; personal projects leave it null.
type ProjectDTO struct {
	ID           string  `json:"id"`
	Name         string  `json:"name"`
	Color        string  `json:"color"`
	ParentID     *string `json:"parent_id"`
	WorkspaceID  *string `json:"workspace_id"`
	ChildOrder   int     `json:"child_order"`
	IsShared     bool    `json:"is_shared"`
	InboxProject bool    `json:"inbox_project"`
	IsArchived   bool    `json:"is_archived"`
	IsFavorite   bool    `json:"is_favorite"`
	IsDeleted    bool    `json:"is_deleted"`
	ViewStyle    string  `json:"view_style"`
}

// SectionDTO matches the API's section schema.
type SectionDTO struct {
	ID           string `json:"id"`
	ProjectID    string `json:"project_id"`
	Name         string `json:"name"`
	SectionOrder int    `json:"section_order"`
	IsArchived   bool   `json:"is_archived"`
	IsDeleted    bool   `json:"is_deleted"`
}
