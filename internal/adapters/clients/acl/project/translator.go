package project

import "github.com/jsamuelsen11/todo-cli/internal/domain"

// WebURL is the web-app location of project pages.
const WebURL = "https://app.todoist.com/app/project/"

// ToDomainProject converts a ProjectDTO to a domain Project.
func ToDomainProject(dto *ProjectDTO) domain.Project {
	return domain.Project{
		ID:          dto.ID,
		Name:        dto.Name,
		Color:       dto.Color,
		ParentID:    deref(dto.ParentID),
		WorkspaceID: deref(dto.WorkspaceID),
		IsShared:    dto.IsShared,
		IsInbox:     dto.InboxProject,
		IsArchived:  dto.IsArchived,
		IsFavorite:  dto.IsFavorite,
		ViewStyle:   dto.ViewStyle,
		URL:         WebURL + dto.ID,
	}
}

// ToDomainProjects converts a slice of ProjectDTOs.
func ToDomainProjects(dtos []ProjectDTO) []domain.Project {
	projects := make([]domain.Project, len(dtos))
	for i := range dtos {
		projects[i] = ToDomainProject(&dtos[i])
	}
	return projects
}

// ToDomainSection converts a SectionDTO to a domain Section.
func ToDomainSection(dto *SectionDTO) domain.Section {
	return domain.Section{
		ID:           dto.ID,
		Name:         dto.Name,
		ProjectID:    dto.ProjectID,
		SectionOrder: dto.SectionOrder,
		IsArchived:   dto.IsArchived,
	}
}

// ToDomainSections converts a slice of SectionDTOs.
func ToDomainSections(dtos []SectionDTO) []domain.Section {
	sections := make([]domain.Section, len(dtos))
	for i := range dtos {
		sections[i] = ToDomainSection(&dtos[i])
	}
	return sections
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
