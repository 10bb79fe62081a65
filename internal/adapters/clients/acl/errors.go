// Package acl implements the Anti-Corruption Layer that translates between
// the hosted task API's wire representations and domain types. Per-resource
// DTOs and translators live in subpackages (acl/task, acl/project,
// acl/account, acl/label); shared error mapping and paging live here.
package acl

import (
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"

	"github.com/jsamuelsen11/todo-cli/internal/domain"
)

// maxErrorBodySize limits how much of an error response body we read.
const maxErrorBodySize = 1 << 20 // 1 MB

// apiError is the JSON error body returned by the task API.
type apiError struct {
	Error      string         `json:"error"`
	ErrorTag   string         `json:"error_tag"`
	ErrorCode  int            `json:"error_code"`
	ErrorExtra map[string]any `json:"error_extra"`
}

// TranslateHTTPError maps an HTTP error response to a domain error.
// JSON bodies contribute their "error" message; plain-text bodies are used
// verbatim. A 400 whose error_extra names the offending argument becomes a
// *domain.ValidationError keyed by that argument.
func TranslateHTTPError(resp *http.Response) error {
	ae, text := parseErrorBody(resp)

	detail := ae.Error
	if detail == "" {
		detail = text
	}
	if detail == "" {
		detail = http.StatusText(resp.StatusCode)
	}

	switch {
	case resp.StatusCode == http.StatusNotFound:
		return fmt.Errorf("%s: %w", detail, domain.ErrNotFound)

	case resp.StatusCode == http.StatusBadRequest || resp.StatusCode == http.StatusUnprocessableEntity:
		if arg, ok := ae.ErrorExtra["argument"].(string); ok && arg != "" {
			return &domain.ValidationError{Fields: map[string]string{arg: detail}}
		}
		return fmt.Errorf("%s: %w", detail, domain.ErrValidation)

	case resp.StatusCode == http.StatusConflict:
		return fmt.Errorf("%s: %w", detail, domain.ErrConflict)

	case resp.StatusCode == http.StatusUnauthorized || resp.StatusCode == http.StatusForbidden:
		return fmt.Errorf("%s: %w", detail, domain.ErrForbidden)

	case resp.StatusCode == http.StatusTooManyRequests || resp.StatusCode >= http.StatusInternalServerError:
		return fmt.Errorf("%s: %w", detail, domain.ErrUnavailable)

	default:
		return fmt.Errorf("unexpected status %d: %s", resp.StatusCode, detail)
	}
}

// parseErrorBody reads the response body once. JSON bodies are decoded into
// apiError; anything else is returned trimmed as text.
func parseErrorBody(resp *http.Response) (apiError, string) {
	if resp.Body == nil {
		return apiError{}, ""
	}

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxErrorBodySize))
	if err != nil {
		return apiError{}, ""
	}

	if strings.HasPrefix(resp.Header.Get("Content-Type"), "application/json") {
		var ae apiError
		if err := json.Unmarshal(body, &ae); err == nil {
			return ae, ""
		}
	}
	return apiError{}, strings.TrimSpace(string(body))
}
