// Package domain contains the entities exchanged with the hosted task service
// (tasks, projects, sections, filters, workspaces, labels, collaborators), the
// generic page shape returned by its listings, and the error taxonomy shared
// by the resolver, the paginator, and the collaborator cache.
package domain
