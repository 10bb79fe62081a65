// Package account implements the Anti-Corruption Layer translators for the
// task API's user, workspace, and collaborator resources.
package account

// TZInfoDTO matches the timezone block of the user schema.
type TZInfoDTO struct {
	Timezone string `json:"timezone"`
}

// UserDTO matches the API's authenticated user schema.
type UserDTO struct {
	ID       string    `json:"id"`
	FullName string    `json:"full_name"`
	Email    string    `json:"email"`
	TZInfo   TZInfoDTO `json:"tz_info"`
}

// WorkspaceDTO matches the API's workspace schema.
type WorkspaceDTO struct {
	ID   string `json:"id"`
	Name string `json:"name"`
	Plan string `json:"plan"`
	Role string `json:"role"`
}

// WorkspaceUserDTO matches one entry of the workspace members listing.
type WorkspaceUserDTO struct {
	UserID      string `json:"user_id"`
	WorkspaceID string `json:"workspace_id"`
	UserEmail   string `json:"user_email"`
	FullName    string `json:"full_name"`
	Role        string `json:"role"`
	IsDeleted   bool   `json:"is_deleted"`
}

// WorkspaceUsersResponseDTO matches the workspace members listing, which
// signals continuation with has_more.
type WorkspaceUsersResponseDTO struct {
	WorkspaceUsers []WorkspaceUserDTO `json:"workspace_users"`
	HasMore        bool               `json:"has_more"`
	NextCursor     *string            `json:"next_cursor"`
}

// CollaboratorDTO matches one collaborator of a shared project.
type CollaboratorDTO struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
}
