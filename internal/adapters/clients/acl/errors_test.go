package acl

import (
	"errors"
	"io"
	"net/http"
	"strings"
	"testing"

	"github.com/jsamuelsen11/todo-cli/internal/domain"
)

func TestTranslateHTTPError_StatusMapping(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name       string
		statusCode int
		wantErr    error
	}{
		{
			name:       "404 maps to ErrNotFound",
			statusCode: http.StatusNotFound,
			wantErr:    domain.ErrNotFound,
		},
		{
			name:       "400 maps to ErrValidation",
			statusCode: http.StatusBadRequest,
			wantErr:    domain.ErrValidation,
		},
		{
			name:       "422 maps to ErrValidation",
			statusCode: http.StatusUnprocessableEntity,
			wantErr:    domain.ErrValidation,
		},
		{
			name:       "409 maps to ErrConflict",
			statusCode: http.StatusConflict,
			wantErr:    domain.ErrConflict,
		},
		{
			name:       "401 maps to ErrForbidden",
			statusCode: http.StatusUnauthorized,
			wantErr:    domain.ErrForbidden,
		},
		{
			name:       "403 maps to ErrForbidden",
			statusCode: http.StatusForbidden,
			wantErr:    domain.ErrForbidden,
		},
		{
			name:       "500 maps to ErrUnavailable",
			statusCode: http.StatusInternalServerError,
			wantErr:    domain.ErrUnavailable,
		},
		{
			name:       "502 maps to ErrUnavailable",
			statusCode: http.StatusBadGateway,
			wantErr:    domain.ErrUnavailable,
		},
		{
			name:       "429 maps to ErrUnavailable",
			statusCode: http.StatusTooManyRequests,
			wantErr:    domain.ErrUnavailable,
		},
		{
			name:       "503 maps to ErrUnavailable",
			statusCode: http.StatusServiceUnavailable,
			wantErr:    domain.ErrUnavailable,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			resp := &http.Response{
				StatusCode: tt.statusCode,
				Header:     http.Header{},
				Body:       http.NoBody,
			}

			got := TranslateHTTPError(resp)

			if !errors.Is(got, tt.wantErr) {
				t.Errorf("TranslateHTTPError() = %v, want errors.Is %v", got, tt.wantErr)
			}
		})
	}
}

func TestTranslateHTTPError_BodyParsing(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name        string
		statusCode  int
		contentType string
		body        string
		wantSubstr  string
	}{
		{
			name:        "extracts error from JSON body",
			statusCode:  http.StatusNotFound,
			contentType: "application/json",
			body:        `{"error":"Task not found","error_tag":"NOT_FOUND","error_code":478,"http_code":404}`,
			wantSubstr:  "Task not found",
		},
		{
			name:        "uses plain text body verbatim",
			statusCode:  http.StatusForbidden,
			contentType: "text/plain; charset=utf-8",
			body:        "Forbidden\n",
			wantSubstr:  "Forbidden",
		},
		{
			name:        "falls back to status text for empty body",
			statusCode:  http.StatusConflict,
			contentType: "",
			body:        "",
			wantSubstr:  "Conflict",
		},
		{
			name:        "malformed JSON is used as text",
			statusCode:  http.StatusBadGateway,
			contentType: "application/json",
			body:        "upstream hiccup",
			wantSubstr:  "upstream hiccup",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			header := http.Header{}
			if tt.contentType != "" {
				header.Set("Content-Type", tt.contentType)
			}

			resp := &http.Response{
				StatusCode: tt.statusCode,
				Header:     header,
				Body:       io.NopCloser(strings.NewReader(tt.body)),
			}

			got := TranslateHTTPError(resp)

			if !strings.Contains(got.Error(), tt.wantSubstr) {
				t.Errorf("error = %q, want substring %q", got.Error(), tt.wantSubstr)
			}
		})
	}
}

func TestTranslateHTTPError_ValidationErrorWithArgument(t *testing.T) {
	t.Parallel()

	body := `{
		"error": "Invalid argument value",
		"error_tag": "INVALID_ARGUMENT_VALUE",
		"error_code": 20,
		"error_extra": {"argument": "priority"}
	}`

	resp := &http.Response{
		StatusCode: http.StatusBadRequest,
		Header:     http.Header{"Content-Type": []string{"application/json"}},
		Body:       io.NopCloser(strings.NewReader(body)),
	}

	got := TranslateHTTPError(resp)

	if !errors.Is(got, domain.ErrValidation) {
		t.Fatalf("error is not ErrValidation: %v", got)
	}

	var verr *domain.ValidationError
	if !errors.As(got, &verr) {
		t.Fatalf("error is not *ValidationError: %v", got)
	}
	if verr.Fields["priority"] != "Invalid argument value" {
		t.Errorf("Fields[priority] = %q, want %q", verr.Fields["priority"], "Invalid argument value")
	}
}

func TestTranslateHTTPError_ValidationWithoutArgument(t *testing.T) {
	t.Parallel()

	resp := &http.Response{
		StatusCode: http.StatusBadRequest,
		Header:     http.Header{"Content-Type": []string{"application/json"}},
		Body:       io.NopCloser(strings.NewReader(`{"error":"Invalid filter query"}`)),
	}

	got := TranslateHTTPError(resp)

	if !errors.Is(got, domain.ErrValidation) {
		t.Fatalf("error is not ErrValidation: %v", got)
	}
	var verr *domain.ValidationError
	if errors.As(got, &verr) {
		t.Errorf("error = %v, want a plain ErrValidation without fields", got)
	}
}

func TestTranslateHTTPError_UnexpectedStatus(t *testing.T) {
	t.Parallel()

	resp := &http.Response{
		StatusCode: http.StatusTeapot,
		Header:     http.Header{},
		Body:       http.NoBody,
	}

	got := TranslateHTTPError(resp)

	if !strings.Contains(got.Error(), "unexpected status 418") {
		t.Errorf("error = %q, want unexpected status", got.Error())
	}
	for _, sentinel := range []error{domain.ErrNotFound, domain.ErrValidation, domain.ErrUnavailable} {
		if errors.Is(got, sentinel) {
			t.Errorf("error unexpectedly matches %v", sentinel)
		}
	}
}
