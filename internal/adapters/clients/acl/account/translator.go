package account

import "github.com/jsamuelsen11/todo-cli/internal/domain"

// ToDomainUser converts a UserDTO to a domain User.
func ToDomainUser(dto *UserDTO) domain.User {
	return domain.User{
		ID:       dto.ID,
		FullName: dto.FullName,
		Email:    dto.Email,
		Timezone: dto.TZInfo.Timezone,
	}
}

// ToDomainWorkspaces converts a slice of WorkspaceDTOs.
func ToDomainWorkspaces(dtos []WorkspaceDTO) []domain.Workspace {
	workspaces := make([]domain.Workspace, len(dtos))
	for i, d := range dtos {
		workspaces[i] = domain.Workspace{ID: d.ID, Name: d.Name, Plan: d.Plan, Role: d.Role}
	}
	return workspaces
}

// ToWorkspaceUserPage converts a workspace members listing. Deleted members
// are dropped; they can no longer be assigned.
func ToWorkspaceUserPage(dto *WorkspaceUsersResponseDTO) domain.WorkspaceUserPage {
	users := make([]domain.Collaborator, 0, len(dto.WorkspaceUsers))
	for _, u := range dto.WorkspaceUsers {
		if u.IsDeleted {
			continue
		}
		users = append(users, domain.Collaborator{ID: u.UserID, Name: u.FullName, Email: u.UserEmail})
	}

	page := domain.WorkspaceUserPage{Users: users, HasMore: dto.HasMore}
	if dto.NextCursor != nil {
		page.NextCursor = *dto.NextCursor
	}
	return page
}

// ToDomainCollaborators converts a slice of CollaboratorDTOs.
func ToDomainCollaborators(dtos []CollaboratorDTO) []domain.Collaborator {
	out := make([]domain.Collaborator, len(dtos))
	for i, d := range dtos {
		out[i] = domain.Collaborator{ID: d.ID, Name: d.Name, Email: d.Email}
	}
	return out
}
