package cli

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/jsamuelsen11/todo-cli/internal/app/paginate"
	"github.com/jsamuelsen11/todo-cli/internal/domain"
)

func TestDescribe(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name      string
		err       error
		wantCode  string
		wantHints []string
	}{
		{
			name:      "resolve error keeps its code and hints",
			err:       fmt.Errorf("resolving project: %w", domain.NewAmbiguousError(domain.KindProject, "wo", []string{`"Work" (id:1)`})),
			wantCode:  "AMBIGUOUS_PROJECT",
			wantHints: []string{`"Work" (id:1)`},
		},
		{
			name:     "resolve not found is not the generic code",
			err:      domain.NewNotFoundError(domain.KindLabel, "x"),
			wantCode: "LABEL_NOT_FOUND",
		},
		{
			name:      "validation fields become sorted hints",
			err:       &domain.ValidationError{Fields: map[string]string{"priority": "bad", "content": domain.MsgRequired}},
			wantCode:  CodeValidation,
			wantHints: []string{"content: is required", "priority: bad"},
		},
		{
			name:     "invalid limit",
			err:      paginate.ErrInvalidLimit,
			wantCode: CodeInvalidLimit,
		},
		{
			name:     "forbidden",
			err:      fmt.Errorf("Unauthorized: %w", domain.ErrForbidden),
			wantCode: CodeUnauthorized,
		},
		{
			name:     "unavailable",
			err:      fmt.Errorf("Bad Gateway: %w", domain.ErrUnavailable),
			wantCode: CodeUnavailable,
		},
		{
			name:     "plain not found",
			err:      fmt.Errorf("Task not found: %w", domain.ErrNotFound),
			wantCode: CodeNotFound,
		},
		{
			name:     "unknown",
			err:      errors.New("boom"),
			wantCode: CodeInternal,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got := describe(tt.err)
			assert.Equal(t, tt.wantCode, got.Code)
			if tt.wantHints != nil {
				assert.Equal(t, tt.wantHints, got.Hints)
			}
			assert.NotEmpty(t, got.Message)
		})
	}
}

func TestPriorityLabel(t *testing.T) {
	t.Parallel()

	assert.Empty(t, priorityLabel(0))
	assert.Empty(t, priorityLabel(1))
	assert.Equal(t, "p3", priorityLabel(2))
	assert.Equal(t, "p1", priorityLabel(4))
	assert.Empty(t, priorityLabel(9))
}
