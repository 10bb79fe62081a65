package cli

import (
	"errors"
	"slices"

	"github.com/jsamuelsen11/todo-cli/internal/app/paginate"
	"github.com/jsamuelsen11/todo-cli/internal/domain"
)

// Error codes for failures that are not a *domain.ResolveError. Resolution
// failures carry their own codes (PROJECT_NOT_FOUND, AMBIGUOUS_TASK, ...).
const (
	CodeValidation   = "VALIDATION_FAILED"
	CodeInvalidLimit = "INVALID_LIMIT"
	CodeUnauthorized = "UNAUTHORIZED"
	CodeNotFound     = "NOT_FOUND"
	CodeConflict     = "CONFLICT"
	CodeUnavailable  = "API_UNAVAILABLE"
	CodeUnhealthy    = "UNHEALTHY"
	CodeInternal     = "INTERNAL_ERROR"
)

var (
	// errUnhealthy is returned by doctor when a check fails.
	errUnhealthy = errors.New("one or more checks failed")

	// errSilent fails the command after it printed its own error output.
	errSilent = errors.New("error already reported")
)

// describe classifies err for display. The first matching rule wins, so a
// ResolveError wrapping ErrNotFound keeps its kind-specific code.
func describe(err error) ErrorInfo {
	var rerr *domain.ResolveError
	if errors.As(err, &rerr) {
		return ErrorInfo{Code: rerr.Code, Message: rerr.Message, Hints: rerr.Hints}
	}

	var verr *domain.ValidationError
	if errors.As(err, &verr) {
		hints := make([]string, 0, len(verr.Fields))
		for field, msg := range verr.Fields {
			hints = append(hints, field+": "+msg)
		}
		slices.Sort(hints)
		return ErrorInfo{Code: CodeValidation, Message: "invalid input", Hints: hints}
	}

	switch {
	case errors.Is(err, paginate.ErrInvalidLimit):
		return ErrorInfo{Code: CodeInvalidLimit, Message: err.Error(), Hints: []string{"use --limit N with N > 0, or --all"}}
	case errors.Is(err, domain.ErrValidation):
		return ErrorInfo{Code: CodeValidation, Message: err.Error()}
	case errors.Is(err, domain.ErrForbidden):
		return ErrorInfo{Code: CodeUnauthorized, Message: err.Error(), Hints: []string{"check the API token (TODO_TOKEN or client.token)"}}
	case errors.Is(err, domain.ErrNotFound):
		return ErrorInfo{Code: CodeNotFound, Message: err.Error()}
	case errors.Is(err, domain.ErrConflict):
		return ErrorInfo{Code: CodeConflict, Message: err.Error()}
	case errors.Is(err, domain.ErrUnavailable):
		return ErrorInfo{Code: CodeUnavailable, Message: err.Error(), Hints: []string{"retry later"}}
	case errors.Is(err, errUnhealthy):
		return ErrorInfo{Code: CodeUnhealthy, Message: err.Error()}
	default:
		return ErrorInfo{Code: CodeInternal, Message: err.Error()}
	}
}
