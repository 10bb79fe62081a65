package collaborators

import (
	"cmp"
	"context"
	"slices"
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/jsamuelsen11/todo-cli/internal/app/resolve"
	"github.com/jsamuelsen11/todo-cli/internal/domain"
)

// RefMe designates the authenticated user.
const RefMe = "me"

// CurrentUserFunc returns the authenticated user. It is only called for the
// "me" reference.
type CurrentUserFunc func(ctx context.Context) (*domain.User, error)

// FormatName renders a full name as "+First L.". Single-word names render as
// "+Name".
func FormatName(name string) string {
	parts := strings.Fields(name)
	switch len(parts) {
	case 0:
		return ""
	case 1:
		return "+" + parts[0]
	}
	last, _ := utf8.DecodeRuneInString(parts[len(parts)-1])
	return "+" + parts[0] + " " + string(unicode.ToUpper(last)) + "."
}

// ResolveAssignee turns an assignee reference into a user id for a task in
// project. "me" is the current user and "id:<id>" is taken literally. Any
// other reference is matched by name against the project's assignable users.
func (c *Cache) ResolveAssignee(ctx context.Context, ref string, project domain.Project, currentUser CurrentUserFunc) (string, error) {
	if strings.EqualFold(ref, RefMe) {
		u, err := currentUser(ctx)
		if err != nil {
			return "", err
		}
		return u.ID, nil
	}

	u, err := resolve.Resolve(ctx, domain.KindAssignee, ref, resolve.Funcs[domain.Collaborator]{
		Fetch: func(_ context.Context, id string) (domain.Collaborator, error) {
			return domain.Collaborator{ID: id}, nil
		},
		List: func(ctx context.Context) ([]domain.Collaborator, error) {
			return c.members(ctx, project)
		},
		Name: func(u domain.Collaborator) string { return u.Name },
		ID:   func(u domain.Collaborator) string { return u.ID },
	})
	if err != nil {
		return "", err
	}
	return u.ID, nil
}

// sortedUsers orders a user set by name then id so hints are stable.
func sortedUsers(set users) []domain.Collaborator {
	out := make([]domain.Collaborator, 0, len(set))
	for _, u := range set {
		out = append(out, u)
	}
	slices.SortFunc(out, func(a, b domain.Collaborator) int {
		return cmp.Or(cmp.Compare(a.Name, b.Name), cmp.Compare(a.ID, b.ID))
	})
	return out
}
