package domain

// Collaborator is a user visible as a potential assignee, either as a
// workspace member or as a collaborator on a shared personal project.
type Collaborator struct {
	ID    string
	Name  string
	Email string
}

// User is the account the CLI is authenticated as.
type User struct {
	ID       string
	FullName string
	Email    string
	Timezone string
}

// WorkspaceUserPage is one page of workspace members. The members endpoint
// signals continuation with HasMore rather than a bare cursor.
type WorkspaceUserPage struct {
	Users      []Collaborator
	HasMore    bool
	NextCursor string
}
