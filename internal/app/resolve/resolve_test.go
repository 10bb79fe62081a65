package resolve_test

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jsamuelsen11/todo-cli/internal/app/resolve"
	"github.com/jsamuelsen11/todo-cli/internal/domain"
)

type item struct {
	id   string
	name string
}

// recordingSource is a Source over a fixed candidate list that records calls.
type recordingSource struct {
	items     []item
	fetchIDs  []string
	listCalls int
	listErr   error
}

func (s *recordingSource) FetchByID(_ context.Context, id string) (item, error) {
	s.fetchIDs = append(s.fetchIDs, id)
	return item{id: id, name: "fetched"}, nil
}

func (s *recordingSource) ListAll(_ context.Context) ([]item, error) {
	s.listCalls++
	return s.items, s.listErr
}

func (s *recordingSource) NameOf(it item) string { return it.name }
func (s *recordingSource) IDOf(it item) string   { return it.id }

func names(ns ...string) []item {
	out := make([]item, len(ns))
	for i, n := range ns {
		out[i] = item{id: fmt.Sprintf("%d", i+1), name: n}
	}
	return out
}

func TestResolve_IDRefBypassesListing(t *testing.T) {
	t.Parallel()

	src := &recordingSource{items: names("Work")}
	got, err := resolve.Resolve(context.Background(), domain.KindProject, "id:6Jf8VQXxpwv56VQ7", src)
	require.NoError(t, err)

	assert.Equal(t, []string{"6Jf8VQXxpwv56VQ7"}, src.fetchIDs)
	assert.Equal(t, 0, src.listCalls)
	assert.Equal(t, "6Jf8VQXxpwv56VQ7", got.id)
}

func TestResolve_EmptyIDRefIsInvalid(t *testing.T) {
	t.Parallel()

	src := &recordingSource{items: names("id:")}
	_, err := resolve.Resolve(context.Background(), domain.KindTask, "id:", src)
	require.ErrorIs(t, err, domain.ErrInvalidRef)

	var rerr *domain.ResolveError
	require.ErrorAs(t, err, &rerr)
	assert.Equal(t, domain.CodeInvalidRef, rerr.Code)
	assert.Empty(t, src.fetchIDs)
	assert.Equal(t, 0, src.listCalls)
}

func TestResolve_IDRefIsNotMatchedByName(t *testing.T) {
	t.Parallel()

	// A name that happens to look like an id reference is never consulted.
	src := &recordingSource{items: names("id:42")}
	_, err := resolve.Resolve(context.Background(), domain.KindProject, "id:42", src)
	require.NoError(t, err)

	assert.Equal(t, 0, src.listCalls)
}

func TestResolve_URLRef(t *testing.T) {
	t.Parallel()

	src := &recordingSource{}
	_, err := resolve.Resolve(context.Background(), domain.KindTask,
		"https://app.todoist.com/app/task/buy-milk-6X7rM8997g3RQmvh", src)
	require.NoError(t, err)

	assert.Equal(t, []string{"6X7rM8997g3RQmvh"}, src.fetchIDs)
	assert.Equal(t, 0, src.listCalls)
}

func TestResolve_ExactMatchBeatsPartial(t *testing.T) {
	t.Parallel()

	src := &recordingSource{items: names("Work Tasks", "Work")}
	got, err := resolve.Resolve(context.Background(), domain.KindProject, "Work", src)
	require.NoError(t, err)

	assert.Equal(t, "Work", got.name)
	assert.Equal(t, 1, src.listCalls)
}

func TestResolve_ExactMatchIsCaseInsensitive(t *testing.T) {
	t.Parallel()

	src := &recordingSource{items: names("Work Tasks", "WORK")}
	got, err := resolve.Resolve(context.Background(), domain.KindProject, "work", src)
	require.NoError(t, err)

	assert.Equal(t, "WORK", got.name)
}

func TestResolve_SinglePartialMatch(t *testing.T) {
	t.Parallel()

	src := &recordingSource{items: names("Groceries", "Home Renovation")}
	got, err := resolve.Resolve(context.Background(), domain.KindProject, "reno", src)
	require.NoError(t, err)

	assert.Equal(t, "Home Renovation", got.name)
}

func TestResolve_NoCandidates(t *testing.T) {
	t.Parallel()

	for _, kind := range []domain.Kind{domain.KindTask, domain.KindProject, domain.KindLabel} {
		src := &recordingSource{}
		_, err := resolve.Resolve(context.Background(), kind, "anything", src)

		var rerr *domain.ResolveError
		require.ErrorAs(t, err, &rerr)
		assert.Equal(t, domain.NotFoundCode(kind), rerr.Code)
		assert.ErrorIs(t, err, domain.ErrNotFound)
	}
}

func TestResolve_NotFoundEchoesReference(t *testing.T) {
	t.Parallel()

	src := &recordingSource{items: names("Work", "Home")}
	_, err := resolve.Resolve(context.Background(), domain.KindProject, "nonexistent", src)

	var rerr *domain.ResolveError
	require.ErrorAs(t, err, &rerr)
	assert.Equal(t, "PROJECT_NOT_FOUND", rerr.Code)
	assert.Contains(t, rerr.Message, "nonexistent")
	assert.Empty(t, rerr.Hints)
}

func TestResolve_Ambiguous(t *testing.T) {
	t.Parallel()

	src := &recordingSource{items: names("Work Tasks", "Work Projects")}
	_, err := resolve.Resolve(context.Background(), domain.KindProject, "work", src)

	var rerr *domain.ResolveError
	require.ErrorAs(t, err, &rerr)
	assert.Equal(t, "AMBIGUOUS_PROJECT", rerr.Code)
	assert.ErrorIs(t, err, domain.ErrAmbiguous)
	require.Len(t, rerr.Hints, 2)
	assert.Contains(t, rerr.Hints[0], "Work Tasks")
	assert.Contains(t, rerr.Hints[0], "id:1")
	assert.Contains(t, rerr.Hints[1], "Work Projects")
	assert.Contains(t, rerr.Hints[1], "id:2")
}

func TestResolve_AmbiguousHintsAreCapped(t *testing.T) {
	t.Parallel()

	src := &recordingSource{items: names("a-1", "a-2", "a-3", "a-4", "a-5", "a-6", "a-7")}
	_, err := resolve.Resolve(context.Background(), domain.KindLabel, "a-", src)

	var rerr *domain.ResolveError
	require.ErrorAs(t, err, &rerr)
	assert.Len(t, rerr.Hints, resolve.MaxHints)
	assert.Contains(t, rerr.Hints[0], "a-1", "hints keep listing order")
}

func TestResolve_DuplicateExactNamesAreAmbiguous(t *testing.T) {
	t.Parallel()

	src := &recordingSource{items: names("Inbox", "inbox", "Inbox archive")}
	_, err := resolve.Resolve(context.Background(), domain.KindProject, "Inbox", src)

	var rerr *domain.ResolveError
	require.ErrorAs(t, err, &rerr)
	assert.Equal(t, "AMBIGUOUS_PROJECT", rerr.Code)
	assert.Len(t, rerr.Hints, 2, "only the exact matches are offered")
}

func TestResolve_ListErrorPropagates(t *testing.T) {
	t.Parallel()

	errBoom := errors.New("boom")
	src := &recordingSource{listErr: errBoom}
	_, err := resolve.Resolve(context.Background(), domain.KindProject, "x", src)

	assert.Same(t, errBoom, err)
}

func TestResolve_Funcs(t *testing.T) {
	t.Parallel()

	src := resolve.Funcs[string]{
		Fetch: func(_ context.Context, id string) (string, error) { return "by-id:" + id, nil },
		List:  func(context.Context) ([]string, error) { return []string{"alpha", "beta"}, nil },
		Name:  func(s string) string { return s },
		ID:    func(s string) string { return s },
	}

	got, err := resolve.Resolve(context.Background(), domain.KindLabel, "BET", src)
	require.NoError(t, err)
	assert.Equal(t, "beta", got)

	got, err = resolve.Resolve(context.Background(), domain.KindLabel, "id:7", src)
	require.NoError(t, err)
	assert.Equal(t, "by-id:7", got)
}

func TestParseRef(t *testing.T) {
	t.Parallel()

	tests := []struct {
		ref    string
		wantID string
		wantOK bool
	}{
		{"id:abc", "abc", true},
		{"id:", "", true},
		{"Work", "", false},
		{"ID:abc", "", false},
		{"https://app.todoist.com/app/project/home-2203306141", "2203306141", true},
		{"https://app.todoist.com/app/task/6X7rM8997g3RQmvh", "6X7rM8997g3RQmvh", true},
		{"https://example.com/some/page", "", false},
		{"http://", "", false},
	}

	for _, tt := range tests {
		id, ok := resolve.ParseRef(tt.ref)
		assert.Equal(t, tt.wantOK, ok, tt.ref)
		assert.Equal(t, tt.wantID, id, tt.ref)
	}
}

func TestRequireIDRef(t *testing.T) {
	t.Parallel()

	id, err := resolve.RequireIDRef(domain.KindTask, "id:123")
	require.NoError(t, err)
	assert.Equal(t, "123", id)

	for _, ref := range []string{"Buy milk", "id:"} {
		_, err = resolve.RequireIDRef(domain.KindTask, ref)

		var rerr *domain.ResolveError
		require.ErrorAs(t, err, &rerr, ref)
		assert.Equal(t, domain.CodeInvalidRef, rerr.Code)
	}
}
