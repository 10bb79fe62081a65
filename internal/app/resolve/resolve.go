// Package resolve turns a user-supplied reference into exactly one entity.
//
// A reference is either canonical ("id:<id>", or a web-app URL ending in the
// id) and fetched directly, or free text matched case-insensitively against
// display names: an exact match wins, otherwise a single substring match
// wins, otherwise the reference is not found or ambiguous.
//
// The algorithm is generic over a Source; Resolver instantiates it once per
// entity kind against the backend port.
package resolve

import (
	"context"
	"net/url"
	"strings"

	"github.com/jsamuelsen11/todo-cli/internal/domain"
)

// IDPrefix marks a canonical reference.
const IDPrefix = "id:"

// MaxHints caps the candidates listed in an ambiguity error.
const MaxHints = 5

// Source supplies the three capabilities resolution needs for one kind of
// entity, plus the id used when formatting hints.
type Source[T any] interface {
	FetchByID(ctx context.Context, id string) (T, error)
	ListAll(ctx context.Context) ([]T, error)
	NameOf(item T) string
	IDOf(item T) string
}

// Funcs adapts plain functions to a Source.
type Funcs[T any] struct {
	Fetch func(ctx context.Context, id string) (T, error)
	List  func(ctx context.Context) ([]T, error)
	Name  func(item T) string
	ID    func(item T) string
}

// FetchByID calls f.Fetch.
func (f Funcs[T]) FetchByID(ctx context.Context, id string) (T, error) { return f.Fetch(ctx, id) }

// ListAll calls f.List.
func (f Funcs[T]) ListAll(ctx context.Context) ([]T, error) { return f.List(ctx) }

// NameOf calls f.Name.
func (f Funcs[T]) NameOf(item T) string { return f.Name(item) }

// IDOf calls f.ID.
func (f Funcs[T]) IDOf(item T) string { return f.ID(item) }

// Resolve returns the single entity ref designates.
//
// Canonical references are handed to FetchByID untouched; existence is the
// fetch's concern and ListAll is never called. A canonical reference with an
// empty id is INVALID_REF. Free text calls ListAll once
// and matches names. Failures are *domain.ResolveError values, except errors
// from FetchByID or ListAll, which are returned as-is.
func Resolve[T any](ctx context.Context, kind domain.Kind, ref string, src Source[T]) (T, error) {
	if id, ok := ParseRef(ref); ok {
		if id == "" {
			var zero T
			return zero, domain.NewInvalidRefError(kind, ref)
		}
		return src.FetchByID(ctx, id)
	}

	candidates, err := src.ListAll(ctx)
	if err != nil {
		var zero T
		return zero, err
	}
	return Match(kind, ref, candidates, src.NameOf, src.IDOf)
}

// Match picks the single candidate whose name matches ref by the free-text
// rules. It performs no I/O.
func Match[T any](kind domain.Kind, ref string, candidates []T, nameOf, idOf func(T) string) (T, error) {
	m := match(ref, candidates, nameOf)
	return m.result(kind, ref, nameOf, idOf)
}

// matches splits candidates into exact and substring matches, in input order.
type matches[T any] struct {
	exact   []T
	partial []T
}

func match[T any](ref string, candidates []T, nameOf func(T) string) matches[T] {
	needle := strings.ToLower(ref)

	var m matches[T]
	for _, c := range candidates {
		name := strings.ToLower(nameOf(c))
		switch {
		case name == needle:
			m.exact = append(m.exact, c)
		case strings.Contains(name, needle):
			m.partial = append(m.partial, c)
		}
	}
	return m
}

// empty reports whether nothing matched at all.
func (m matches[T]) empty() bool {
	return len(m.exact) == 0 && len(m.partial) == 0
}

func (m matches[T]) result(kind domain.Kind, ref string, nameOf, idOf func(T) string) (T, error) {
	var zero T

	switch {
	case len(m.exact) == 1:
		return m.exact[0], nil
	case len(m.exact) > 1:
		// Identical names cannot be told apart by text; make the user pick an id.
		return zero, domain.NewAmbiguousError(kind, ref, hints(m.exact, nameOf, idOf))
	case len(m.partial) == 1:
		return m.partial[0], nil
	case len(m.partial) > 1:
		return zero, domain.NewAmbiguousError(kind, ref, hints(m.partial, nameOf, idOf))
	default:
		return zero, domain.NewNotFoundError(kind, ref)
	}
}

func hints[T any](items []T, nameOf, idOf func(T) string) []string {
	n := min(len(items), MaxHints)
	out := make([]string, 0, n)
	for _, it := range items[:n] {
		out = append(out, domain.FormatHint(nameOf(it), idOf(it)))
	}
	return out
}

// IsIDRef reports whether ref uses the id: prefix.
func IsIDRef(ref string) bool {
	return strings.HasPrefix(ref, IDPrefix)
}

// ParseRef extracts the id from a canonical reference: "id:<id>" or a web-app
// URL such as https://app.example.com/app/task/buy-milk-6Jf8VQXx. Free text
// returns ok == false.
func ParseRef(ref string) (id string, ok bool) {
	if IsIDRef(ref) {
		return strings.TrimPrefix(ref, IDPrefix), true
	}
	return idFromURL(ref)
}

// RequireIDRef returns the id of a canonical reference, or an INVALID_REF
// error for free text. Commands that must not guess (destructive ones) use it.
func RequireIDRef(kind domain.Kind, ref string) (string, error) {
	id, ok := ParseRef(ref)
	if !ok || id == "" {
		return "", domain.NewInvalidRefError(kind, ref)
	}
	return id, nil
}

// appPathKinds are the path segments that precede an entity slug in web-app
// URLs.
var appPathKinds = map[string]bool{
	"task":    true,
	"project": true,
	"section": true,
	"filter":  true,
	"label":   true,
}

func idFromURL(ref string) (string, bool) {
	if !strings.HasPrefix(ref, "https://") && !strings.HasPrefix(ref, "http://") {
		return "", false
	}
	u, err := url.Parse(ref)
	if err != nil || u.Host == "" {
		return "", false
	}

	segments := strings.Split(strings.Trim(u.Path, "/"), "/")
	for i := 0; i+1 < len(segments); i++ {
		if !appPathKinds[segments[i]] {
			continue
		}
		slug := segments[i+1]
		if idx := strings.LastIndex(slug, "-"); idx >= 0 {
			slug = slug[idx+1:]
		}
		if slug == "" {
			return "", false
		}
		return slug, true
	}
	return "", false
}
