package domain

// Page is one page of a cursor-paginated listing. An empty NextCursor means
// the listing is exhausted. Cursors are opaque and only threaded through.
type Page[T any] struct {
	Items      []T
	NextCursor string
}

// HasMore reports whether another page can be requested.
func (p Page[T]) HasMore() bool {
	return p.NextCursor != ""
}
