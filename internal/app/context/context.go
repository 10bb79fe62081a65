// Package appctx provides command-scoped context for the application services.
//
// CommandContext extends Go's context.Context with an in-memory cache so that
// listings fetched while resolving one reference (all projects, a project's
// sections, all labels) are reused by later resolutions in the same command
// instead of being fetched again.
//
// A new CommandContext is created per command execution and discarded when
// the command returns; nothing is shared across invocations:
//
//	cc := appctx.New(ctx)
//	projects, err := appctx.GetOrFetch(cc, "projects", listProjects)
package appctx

import (
	"context"
	"errors"
	"fmt"
)

// ErrTypeMismatch is returned by GetOrFetch when a cached value's type does
// not match the requested type T. This indicates a programming error where
// the same cache key is used with different types.
var ErrTypeMismatch = errors.New("appctx: cached value type mismatch")

// CommandContext is a command-scoped context wrapper providing in-memory
// memoization via GetOrFetch.
//
// It is NOT safe for concurrent use from multiple goroutines.
type CommandContext struct {
	context.Context
	cache map[string]cacheEntry
}

// cacheEntry stores the result of a GetOrFetch call, including any error.
// Both successful results and errors are cached to prevent redundant calls
// within the same command.
type cacheEntry struct {
	value any
	err   error
}

// New creates a CommandContext wrapping the given context.Context.
func New(ctx context.Context) *CommandContext {
	return &CommandContext{
		Context: ctx,
		cache:   make(map[string]cacheEntry),
	}
}

// GetOrFetch returns a cached value for the given key, or calls fetchFn to
// fetch and cache it. Both successful results and errors are cached.
//
// The same key must always be used with the same type T. If a cached value
// exists but its type does not match T, GetOrFetch returns ErrTypeMismatch.
func GetOrFetch[T any](cc *CommandContext, key string, fetchFn func(ctx context.Context) (T, error)) (T, error) {
	if entry, ok := cc.cache[key]; ok {
		if entry.err != nil {
			var zero T
			return zero, entry.err
		}
		v, ok := entry.value.(T)
		if !ok {
			var zero T
			return zero, fmt.Errorf("%w: key %q holds %T, requested %T", ErrTypeMismatch, key, entry.value, zero)
		}
		return v, nil
	}

	val, err := fetchFn(cc.Context)
	cc.cache[key] = cacheEntry{value: val, err: err}
	return val, err
}

// DataProvider is a type-safe wrapper around GetOrFetch for a specific data
// type. It binds a cache key and fetch function together.
type DataProvider[T any] struct {
	key     string
	fetchFn func(ctx context.Context) (T, error)
}

// NewDataProvider creates a DataProvider with the given cache key and fetch
// function.
func NewDataProvider[T any](key string, fetchFn func(ctx context.Context) (T, error)) *DataProvider[T] {
	return &DataProvider[T]{key: key, fetchFn: fetchFn}
}

// Get returns the cached value or fetches it using the provider's fetch
// function.
func (p *DataProvider[T]) Get(cc *CommandContext) (T, error) {
	return GetOrFetch(cc, p.key, p.fetchFn)
}
