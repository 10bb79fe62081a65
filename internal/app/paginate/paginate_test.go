package paginate_test

import (
	"context"
	"errors"
	"strconv"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jsamuelsen11/todo-cli/internal/app/paginate"
	"github.com/jsamuelsen11/todo-cli/internal/domain"
)

// fakeListing serves total items with cursors that encode the next offset.
type fakeListing struct {
	total   int
	calls   int
	cursors []string
	sizes   []int
}

func (f *fakeListing) fetch(_ context.Context, cursor string, pageSize int) (domain.Page[int], error) {
	f.calls++
	f.cursors = append(f.cursors, cursor)
	f.sizes = append(f.sizes, pageSize)

	offset := 0
	if cursor != "" {
		n, err := strconv.Atoi(cursor)
		if err != nil {
			return domain.Page[int]{}, err
		}
		offset = n
	}

	end := min(offset+pageSize, f.total)
	items := make([]int, 0, end-offset)
	for i := offset; i < end; i++ {
		items = append(items, i)
	}

	next := ""
	if end < f.total {
		next = strconv.Itoa(end)
	}
	return domain.Page[int]{Items: items, NextCursor: next}, nil
}

func TestPaginate_Limit(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name      string
		total     int
		limit     int
		pageSize  int
		wantItems int
		wantCalls int
		wantMore  bool
	}{
		{name: "limit spans several pages", total: 100, limit: 25, pageSize: 10, wantItems: 25, wantCalls: 3, wantMore: true},
		{name: "limit is an exact multiple", total: 100, limit: 30, pageSize: 10, wantItems: 30, wantCalls: 3, wantMore: true},
		{name: "limit within one page", total: 100, limit: 5, pageSize: 10, wantItems: 5, wantCalls: 1, wantMore: true},
		{name: "limit above total", total: 12, limit: 50, pageSize: 10, wantItems: 12, wantCalls: 2, wantMore: false},
		{name: "limit equals total", total: 20, limit: 20, pageSize: 10, wantItems: 20, wantCalls: 2, wantMore: false},
		{name: "empty listing", total: 0, limit: 10, pageSize: 10, wantItems: 0, wantCalls: 1, wantMore: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			f := &fakeListing{total: tt.total}
			res, err := paginate.Paginate(context.Background(), f.fetch, paginate.Options{
				Limit:    tt.limit,
				PageSize: tt.pageSize,
			})
			require.NoError(t, err)

			assert.Len(t, res.Items, tt.wantItems)
			assert.Equal(t, tt.wantCalls, f.calls)
			assert.Equal(t, tt.wantMore, res.NextCursor != "")
		})
	}
}

func TestPaginate_RequestsOnlyWhatIsNeeded(t *testing.T) {
	t.Parallel()

	f := &fakeListing{total: 100}
	_, err := paginate.Paginate(context.Background(), f.fetch, paginate.Options{Limit: 25, PageSize: 10})
	require.NoError(t, err)

	assert.Equal(t, []int{10, 10, 5}, f.sizes)
}

func TestPaginate_CursorsAreChained(t *testing.T) {
	t.Parallel()

	f := &fakeListing{total: 35}
	res, err := paginate.Paginate(context.Background(), f.fetch, paginate.Options{Limit: paginate.All, PageSize: 10})
	require.NoError(t, err)

	assert.Equal(t, []string{"", "10", "20", "30"}, f.cursors)
	assert.Len(t, res.Items, 35)
	assert.Empty(t, res.NextCursor)
}

func TestPaginate_All(t *testing.T) {
	t.Parallel()

	f := &fakeListing{total: 450}
	res, err := paginate.Paginate(context.Background(), f.fetch, paginate.Options{Limit: paginate.All})
	require.NoError(t, err)

	assert.Len(t, res.Items, 450)
	assert.Equal(t, 3, f.calls, "default page size is 200")
	assert.Empty(t, res.NextCursor)
}

func TestPaginate_StartCursor(t *testing.T) {
	t.Parallel()

	f := &fakeListing{total: 30}
	res, err := paginate.Paginate(context.Background(), f.fetch, paginate.Options{
		Limit:       5,
		PageSize:    10,
		StartCursor: "20",
	})
	require.NoError(t, err)

	assert.Equal(t, "20", f.cursors[0])
	assert.Equal(t, []int{20, 21, 22, 23, 24}, res.Items)
	assert.Equal(t, "25", res.NextCursor)
}

func TestPaginate_ResumeFromReturnedCursor(t *testing.T) {
	t.Parallel()

	f := &fakeListing{total: 30}
	first, err := paginate.Paginate(context.Background(), f.fetch, paginate.Options{Limit: 10, PageSize: 10})
	require.NoError(t, err)
	require.NotEmpty(t, first.NextCursor)

	second, err := paginate.Paginate(context.Background(), f.fetch, paginate.Options{
		Limit:       10,
		PageSize:    10,
		StartCursor: first.NextCursor,
	})
	require.NoError(t, err)

	assert.Equal(t, 10, second.Items[0])
}

func TestPaginate_PropagatesError(t *testing.T) {
	t.Parallel()

	errBoom := errors.New("boom")
	calls := 0
	fetch := func(_ context.Context, cursor string, _ int) (domain.Page[int], error) {
		calls++
		if cursor == "" {
			return domain.Page[int]{Items: []int{1}, NextCursor: "next"}, nil
		}
		return domain.Page[int]{}, errBoom
	}

	_, err := paginate.Paginate(context.Background(), fetch, paginate.Options{Limit: paginate.All})
	require.ErrorIs(t, err, errBoom)
	assert.Same(t, errBoom, err, "errors are not wrapped")
	assert.Equal(t, 2, calls, "no retries")
}

func TestPaginate_OversizedPage(t *testing.T) {
	t.Parallel()

	fetch := func(_ context.Context, _ string, _ int) (domain.Page[int], error) {
		return domain.Page[int]{Items: []int{1, 2, 3, 4}, NextCursor: "after-4"}, nil
	}

	t.Run("bounded run fails", func(t *testing.T) {
		t.Parallel()

		res, err := paginate.Paginate(context.Background(), fetch, paginate.Options{Limit: 2})
		require.ErrorIs(t, err, paginate.ErrPageOverflow)
		assert.Empty(t, res.Items)
		assert.Empty(t, res.NextCursor)
	})

	t.Run("exact fit is accepted", func(t *testing.T) {
		t.Parallel()

		res, err := paginate.Paginate(context.Background(), fetch, paginate.Options{Limit: 4})
		require.NoError(t, err)
		assert.Equal(t, []int{1, 2, 3, 4}, res.Items)
		assert.Equal(t, "after-4", res.NextCursor)
	})

	t.Run("unbounded run keeps every item", func(t *testing.T) {
		t.Parallel()

		calls := 0
		oversized := func(_ context.Context, cursor string, _ int) (domain.Page[int], error) {
			calls++
			if cursor == "" {
				return domain.Page[int]{Items: []int{1, 2, 3}, NextCursor: "next"}, nil
			}
			return domain.Page[int]{Items: []int{4}}, nil
		}

		items, err := paginate.Collect(context.Background(), oversized, 2)
		require.NoError(t, err)
		assert.Equal(t, []int{1, 2, 3, 4}, items)
		assert.Equal(t, 2, calls)
	})
}

func TestPaginate_InvalidLimit(t *testing.T) {
	t.Parallel()

	for _, limit := range []int{0, -5} {
		_, err := paginate.Paginate(context.Background(), (&fakeListing{total: 1}).fetch, paginate.Options{Limit: limit})
		assert.ErrorIs(t, err, paginate.ErrInvalidLimit)
	}
}

func TestCollect(t *testing.T) {
	t.Parallel()

	f := &fakeListing{total: 7}
	items, err := paginate.Collect(context.Background(), f.fetch, 3)
	require.NoError(t, err)

	assert.Len(t, items, 7)
	assert.Equal(t, 3, f.calls)
}
