// Package label implements the Anti-Corruption Layer translators for the
// task API's label and saved filter resources.
package label

// LabelDTO matches the API's personal label schema.
type LabelDTO struct {
	ID         string `json:"id"`
	Name       string `json:"name"`
	Color      string `json:"color"`
	Order      int    `json:"order"`
	IsFavorite bool   `json:"is_favorite"`
}

// FilterDTO matches the API's saved filter schema.
type FilterDTO struct {
	ID         string `json:"id"`
	Name       string `json:"name"`
	Query      string `json:"query"`
	Color      string `json:"color"`
	ItemOrder  int    `json:"item_order"`
	IsFavorite bool   `json:"is_favorite"`
	IsDeleted  bool   `json:"is_deleted"`
}
