package label

import "github.com/jsamuelsen11/todo-cli/internal/domain"

// ToDomainLabels converts a slice of LabelDTOs.
func ToDomainLabels(dtos []LabelDTO) []domain.Label {
	labels := make([]domain.Label, len(dtos))
	for i, d := range dtos {
		labels[i] = domain.Label{ID: d.ID, Name: d.Name, Color: d.Color, IsFavorite: d.IsFavorite}
	}
	return labels
}

// ToDomainFilters converts a slice of FilterDTOs, dropping deleted filters.
func ToDomainFilters(dtos []FilterDTO) []domain.Filter {
	filters := make([]domain.Filter, 0, len(dtos))
	for _, d := range dtos {
		if d.IsDeleted {
			continue
		}
		filters = append(filters, domain.Filter{
			ID:         d.ID,
			Name:       d.Name,
			Query:      d.Query,
			Color:      d.Color,
			IsFavorite: d.IsFavorite,
		})
	}
	return filters
}
