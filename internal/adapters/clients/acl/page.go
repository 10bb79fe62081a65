package acl

import (
	"net/url"
	"strconv"

	"github.com/jsamuelsen11/todo-cli/internal/domain"
)

// listResponse is the envelope shared by the API's cursor-paginated
// listings.
type listResponse[D any] struct {
	Results    []D     `json:"results"`
	NextCursor *string `json:"next_cursor"`
}

// toPage converts a listing envelope with the given per-slice translator.
// A null next_cursor becomes an empty cursor, meaning exhausted.
func toPage[D, T any](resp listResponse[D], convert func([]D) []T) domain.Page[T] {
	page := domain.Page[T]{Items: convert(resp.Results)}
	if resp.NextCursor != nil {
		page.NextCursor = *resp.NextCursor
	}
	return page
}

// pageQuery builds the cursor and limit parameters of a listing request.
// Empty cursors and non-positive limits are left out.
func pageQuery(v url.Values, cursor string, limit int) url.Values {
	if v == nil {
		v = url.Values{}
	}
	if cursor != "" {
		v.Set("cursor", cursor)
	}
	if limit > 0 {
		v.Set("limit", strconv.Itoa(limit))
	}
	return v
}

// withQuery appends an encoded query string to path when v is non-empty.
func withQuery(path string, v url.Values) string {
	if len(v) == 0 {
		return path
	}
	return path + "?" + v.Encode()
}
