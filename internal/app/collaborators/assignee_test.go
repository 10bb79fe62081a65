package collaborators_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jsamuelsen11/todo-cli/internal/app/collaborators"
	"github.com/jsamuelsen11/todo-cli/internal/domain"
	"github.com/jsamuelsen11/todo-cli/internal/ports/portstest"
)

func currentUser(id string) collaborators.CurrentUserFunc {
	return func(context.Context) (*domain.User, error) {
		return &domain.User{ID: id, FullName: "Me Myself"}, nil
	}
}

func TestResolveAssignee_Me(t *testing.T) {
	t.Parallel()

	fake := backend()
	cache := collaborators.New(fake)

	id, err := cache.ResolveAssignee(context.Background(), "me", projects()["p1"], currentUser("u7"))
	require.NoError(t, err)
	assert.Equal(t, "u7", id)
	assert.Zero(t, fake.Calls(portstest.MethodListWorkspaceUsers))
}

func TestResolveAssignee_MeError(t *testing.T) {
	t.Parallel()

	errAuth := errors.New("unauthorized")
	cache := collaborators.New(backend())

	_, err := cache.ResolveAssignee(context.Background(), "me", projects()["p1"],
		func(context.Context) (*domain.User, error) { return nil, errAuth })
	assert.ErrorIs(t, err, errAuth)
}

func TestResolveAssignee_IDIsLiteral(t *testing.T) {
	t.Parallel()

	fake := backend()
	cache := collaborators.New(fake)

	id, err := cache.ResolveAssignee(context.Background(), "id:u999", projects()["p1"], currentUser("u7"))
	require.NoError(t, err)
	assert.Equal(t, "u999", id)
	assert.Zero(t, fake.Calls(portstest.MethodListWorkspaceUsers))
}

func TestResolveAssignee_ByNameInWorkspace(t *testing.T) {
	t.Parallel()

	fake := backend()
	cache := collaborators.New(fake)

	id, err := cache.ResolveAssignee(context.Background(), "grace", projects()["p2"], currentUser("u7"))
	require.NoError(t, err)
	assert.Equal(t, "u2", id)

	// Members fetched for resolution are reused for display.
	_, ok := cache.UserName("u1", "p1", projects())
	assert.True(t, ok)
	assert.Equal(t, 1, fake.Calls(portstest.MethodListWorkspaceUsers))
}

func TestResolveAssignee_ByNameInSharedProject(t *testing.T) {
	t.Parallel()

	cache := collaborators.New(backend())

	id, err := cache.ResolveAssignee(context.Background(), "Linus", projects()["p3"], currentUser("u7"))
	require.NoError(t, err)
	assert.Equal(t, "u3", id)
}

func TestResolveAssignee_Ambiguous(t *testing.T) {
	t.Parallel()

	fake := backend()
	fake.WorkspaceUsers["w1"] = append(fake.WorkspaceUsers["w1"],
		domain.Collaborator{ID: "u4", Name: "Ada Byron"})
	cache := collaborators.New(fake)

	_, err := cache.ResolveAssignee(context.Background(), "ada", projects()["p1"], currentUser("u7"))

	var rerr *domain.ResolveError
	require.ErrorAs(t, err, &rerr)
	assert.Equal(t, "AMBIGUOUS_ASSIGNEE", rerr.Code)
	assert.Equal(t, []string{`"Ada Byron" (id:u4)`, `"Ada Lovelace" (id:u1)`}, rerr.Hints)
}

func TestResolveAssignee_PrivateProjectHasNoCandidates(t *testing.T) {
	t.Parallel()

	cache := collaborators.New(backend())

	_, err := cache.ResolveAssignee(context.Background(), "ada", projects()["p4"], currentUser("u7"))

	var rerr *domain.ResolveError
	require.ErrorAs(t, err, &rerr)
	assert.Equal(t, "ASSIGNEE_NOT_FOUND", rerr.Code)
}

func TestResolveAssignee_FetchErrorIsWrapped(t *testing.T) {
	t.Parallel()

	errDown := errors.New("down")
	fake := backend()
	fake.Errs = map[string]error{portstest.MethodListWorkspaceUsers: errDown}
	cache := collaborators.New(fake)

	_, err := cache.ResolveAssignee(context.Background(), "ada", projects()["p1"], currentUser("u7"))
	assert.ErrorIs(t, err, errDown)
}
