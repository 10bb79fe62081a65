// Package paginate drives a cursor-paginated listing until a requested number
// of items has been collected or the backend reports exhaustion.
//
// Pages are fetched strictly one after another: each request carries the
// cursor returned by the previous one, so a single chain is never fetched
// concurrently.
//
//	res, err := paginate.Paginate(ctx, fetchTasks, paginate.Options{Limit: 50})
//	if res.NextCursor != "" {
//	    // more items exist; pass res.NextCursor as StartCursor to continue
//	}
package paginate

import (
	"context"
	"errors"
	"fmt"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"

	"github.com/jsamuelsen11/todo-cli/internal/domain"
)

// All is the sentinel Limit that pages until the listing is exhausted.
const All = -1

// DefaultPageSize is the largest page the backend serves per request.
const DefaultPageSize = 200

// ErrInvalidLimit is returned for a non-positive Limit other than All.
var ErrInvalidLimit = errors.New("paginate: limit must be positive or All")

// ErrPageOverflow is returned when a bounded run receives a page larger than
// it asked for. Truncating it would lose the surplus items, since the page's
// cursor already points past them.
var ErrPageOverflow = errors.New("paginate: page exceeds requested size")

// FetchFunc fetches one page starting at cursor (empty for the first page).
// It must return at most pageSize items.
type FetchFunc[T any] func(ctx context.Context, cursor string, pageSize int) (domain.Page[T], error)

// Options controls a pagination run.
type Options struct {
	// Limit is the number of items wanted, or All.
	Limit int
	// StartCursor resumes a previous traversal. Empty starts from the top.
	StartCursor string
	// PageSize caps each request. Zero means DefaultPageSize.
	PageSize int
}

// Result holds the accumulated items and the cursor to resume from. An empty
// NextCursor means the listing was exhausted.
type Result[T any] struct {
	Items      []T
	NextCursor string
}

// Paginate calls fetch repeatedly until Limit items are collected or a page
// comes back with an empty cursor, whichever happens first. Errors from fetch
// are returned unmodified. With a bounded Limit, a page holding more items
// than requested fails with ErrPageOverflow.
func Paginate[T any](ctx context.Context, fetch FetchFunc[T], opts Options) (Result[T], error) {
	if opts.Limit != All && opts.Limit <= 0 {
		return Result[T]{}, fmt.Errorf("%w, got %d", ErrInvalidLimit, opts.Limit)
	}

	pageSize := opts.PageSize
	if pageSize <= 0 {
		pageSize = DefaultPageSize
	}

	tracer := otel.GetTracerProvider().Tracer("paginate")

	var items []T
	cursor := opts.StartCursor
	for pageNum := 1; ; pageNum++ {
		size := pageSize
		if opts.Limit != All {
			size = min(pageSize, opts.Limit-len(items))
		}

		page, err := fetchPage(ctx, tracer, fetch, cursor, size, pageNum)
		if err != nil {
			return Result[T]{}, err
		}

		if opts.Limit != All && len(page.Items) > size {
			return Result[T]{}, fmt.Errorf("%w: got %d items, asked for %d", ErrPageOverflow, len(page.Items), size)
		}

		items = append(items, page.Items...)
		cursor = page.NextCursor

		if opts.Limit != All && len(items) >= opts.Limit {
			return Result[T]{Items: items, NextCursor: cursor}, nil
		}
		if cursor == "" {
			return Result[T]{Items: items, NextCursor: ""}, nil
		}
	}
}

// Collect pages through the whole listing with the given page size.
func Collect[T any](ctx context.Context, fetch FetchFunc[T], pageSize int) ([]T, error) {
	res, err := Paginate(ctx, fetch, Options{Limit: All, PageSize: pageSize})
	if err != nil {
		return nil, err
	}
	return res.Items, nil
}

func fetchPage[T any](ctx context.Context, tracer trace.Tracer, fetch FetchFunc[T], cursor string, size, pageNum int) (domain.Page[T], error) {
	ctx, span := tracer.Start(ctx, "paginate.page",
		trace.WithAttributes(
			attribute.Int("page.number", pageNum),
			attribute.Int("page.size", size),
			attribute.Bool("page.resumed", cursor != ""),
		),
	)
	defer span.End()

	page, err := fetch(ctx, cursor, size)
	if err != nil {
		span.RecordError(err)
		return domain.Page[T]{}, err
	}
	span.SetAttributes(attribute.Int("page.items", len(page.Items)))
	return page, nil
}
