package domain

import (
	"errors"
	"fmt"
	"strings"
)

// Sentinel errors for errors.Is() checking.
var (
	ErrNotFound    = errors.New("not found")
	ErrValidation  = errors.New("validation error")
	ErrConflict    = errors.New("conflict")
	ErrForbidden   = errors.New("forbidden")
	ErrUnavailable = errors.New("unavailable")

	ErrAmbiguous           = errors.New("ambiguous reference")
	ErrInvalidRef          = errors.New("invalid reference")
	ErrSectionNotInProject = errors.New("section not in project")
	ErrInvalidFilter       = errors.New("invalid filter")
)

// MsgRequired is the field-level message for missing required values.
const MsgRequired = "is required"

// Error codes carried by ResolveError. Kind-specific codes are built with
// NotFoundCode and AmbiguousCode.
const (
	CodeInvalidRef          = "INVALID_REF"
	CodeSectionNotInProject = "SECTION_NOT_IN_PROJECT"
	CodeInvalidFilter       = "INVALID_FILTER"
)

// ValidationError provides programmatic access to field-level validation failures.
// Use errors.Is(err, ErrValidation) for simple checks, or errors.As(err, &verr) to
// access verr.Fields for per-field error details.
type ValidationError struct {
	Fields map[string]string
}

func (e *ValidationError) Error() string {
	parts := make([]string, 0, len(e.Fields))
	for field, msg := range e.Fields {
		parts = append(parts, field+": "+msg)
	}
	return fmt.Sprintf("%s: %s", ErrValidation.Error(), strings.Join(parts, "; "))
}

func (e *ValidationError) Unwrap() error {
	return ErrValidation
}

// ResolveError is a user-recoverable failure raised while turning a reference
// into an entity. Code is machine readable (e.g. "PROJECT_NOT_FOUND"), Message
// is shown to the user, and Hints carry candidate references in id: form.
//
// Use errors.Is against ErrNotFound, ErrAmbiguous, ErrInvalidRef or
// ErrSectionNotInProject to classify, or errors.As to read the code and hints.
type ResolveError struct {
	Code    string
	Message string
	Hints   []string

	kind error
}

func (e *ResolveError) Error() string {
	if len(e.Hints) == 0 {
		return e.Message
	}
	return e.Message + " (" + strings.Join(e.Hints, ", ") + ")"
}

func (e *ResolveError) Unwrap() error {
	return e.kind
}

// NotFoundCode returns "<KIND>_NOT_FOUND".
func NotFoundCode(kind Kind) string {
	return kind.code() + "_NOT_FOUND"
}

// AmbiguousCode returns "AMBIGUOUS_<KIND>".
func AmbiguousCode(kind Kind) string {
	return "AMBIGUOUS_" + kind.code()
}

// NewNotFoundError reports that no candidate of the given kind matched ref.
// The searched string is echoed verbatim in the message.
func NewNotFoundError(kind Kind, ref string) *ResolveError {
	return &ResolveError{
		Code:    NotFoundCode(kind),
		Message: fmt.Sprintf("%s %q not found", kind.title(), ref),
		kind:    ErrNotFound,
	}
}

// NewAmbiguousError reports that several candidates matched ref. Hints are
// expected to be pre-formatted with FormatHint and already capped.
func NewAmbiguousError(kind Kind, ref string, hints []string) *ResolveError {
	return &ResolveError{
		Code:    AmbiguousCode(kind),
		Message: fmt.Sprintf("multiple %ss match %q", kind, ref),
		Hints:   hints,
		kind:    ErrAmbiguous,
	}
}

// NewInvalidRefError reports that a command required an id: reference.
func NewInvalidRefError(kind Kind, ref string) *ResolveError {
	return &ResolveError{
		Code:    CodeInvalidRef,
		Message: fmt.Sprintf("%s reference %q must use the id:<id> form", kind, ref),
		kind:    ErrInvalidRef,
	}
}

// NewSectionNotInProjectError reports an id: section reference that exists
// but belongs to a different project than the one in scope.
func NewSectionNotInProjectError(sectionID, projectID string) *ResolveError {
	return &ResolveError{
		Code:    CodeSectionNotInProject,
		Message: fmt.Sprintf("section %q does not belong to project %q", sectionID, projectID),
		Hints:   []string{"list the project's sections to pick one of them"},
		kind:    ErrSectionNotInProject,
	}
}

// NewInvalidFilterError wraps a backend rejection of a filter query.
func NewInvalidFilterError(query string) *ResolveError {
	return &ResolveError{
		Code:    CodeInvalidFilter,
		Message: fmt.Sprintf("invalid filter syntax: %q", query),
		kind:    ErrInvalidFilter,
	}
}

// FormatHint renders a candidate as `"<name>" (id:<id>)`.
func FormatHint(name, id string) string {
	return fmt.Sprintf("%q (id:%s)", name, id)
}
