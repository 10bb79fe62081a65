package logging_test

import (
	"bytes"
	"context"
	"encoding/json"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jsamuelsen11/todo-cli/internal/platform/logging"
)

func TestNew_Formats(t *testing.T) {
	t.Parallel()

	tests := []struct {
		format string
		want   string
	}{
		{"json", `"level":"WARN"`},
		{"JSON", `"level":"WARN"`},
		{"text", "level=WARN"},
		{"", "level=WARN"},
		{"xml", "level=WARN"},
	}

	for _, tt := range tests {
		t.Run(tt.format, func(t *testing.T) {
			t.Parallel()

			var buf bytes.Buffer
			logging.New("warn", tt.format, &buf).Warn("hello")
			assert.Contains(t, buf.String(), tt.want)
			assert.Contains(t, buf.String(), "hello")
		})
	}
}

func TestParseLevel(t *testing.T) {
	t.Parallel()

	tests := map[string]slog.Level{
		"debug":   slog.LevelDebug,
		"DEBUG":   slog.LevelDebug,
		" info ":  slog.LevelInfo,
		"warn":    slog.LevelWarn,
		"error":   slog.LevelError,
		"verbose": slog.LevelWarn,
		"":        slog.LevelWarn,
	}
	for in, want := range tests {
		assert.Equal(t, want, logging.ParseLevel(in), "level %q", in)
	}
}

func TestNew_LevelFiltering(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	logger := logging.New("warn", "text", &buf)

	logger.Info("quiet by default")
	assert.Zero(t, buf.Len())

	logger.Warn("shown")
	assert.Contains(t, buf.String(), "shown")
}

func TestNew_SourceOnlyAtDebug(t *testing.T) {
	t.Parallel()

	var debug, warn bytes.Buffer
	logging.New("debug", "json", &debug).Debug("with source")
	logging.New("warn", "json", &warn).Warn("without source")

	assert.Contains(t, debug.String(), `"source"`)
	assert.NotContains(t, warn.String(), `"source"`)
}

func TestFromContext(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	logger := logging.New("warn", "json", &buf)

	ctx := logging.WithLogger(context.Background(), logger)
	assert.Same(t, logger, logging.FromContext(ctx))
}

func TestFromContext_NoLoggerDiscards(t *testing.T) {
	t.Parallel()

	got := logging.FromContext(context.Background())

	require.NotNil(t, got)
	assert.NotSame(t, slog.Default(), got)
	assert.False(t, got.Enabled(context.Background(), slog.LevelError))
}

func TestWithInvocation_TagsRecords(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	base := logging.New("warn", "json", &buf)

	ctx := logging.WithInvocation(context.Background(), base, "req-123", "todo tasks list")
	logging.FromContext(ctx).Warn("slow page")

	var rec map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &rec))
	assert.Equal(t, "req-123", rec["request_id"])
	assert.Equal(t, "todo tasks list", rec["command"])
}

func TestNew_Redaction(t *testing.T) {
	t.Parallel()

	const apiToken = "0123456789abcdef0123456789abcdef01234567"

	tests := []struct {
		name   string
		attr   slog.Attr
		secret string
	}{
		{"authorization field", slog.String("authorization", "Bearer supersecret"), "supersecret"},
		{"token field", slog.String("token", apiToken), apiToken},
		{"api_token field", slog.String("api_token", "abc"), "abc"},
		{"secret prefix", slog.String("secret_key", "s3cr3t"), "s3cr3t"},
		{"bearer in value", slog.String("header", "Bearer eyJhbGciOiJSUzI1NiJ9"), "eyJhbGciOiJSUzI1NiJ9"},
		{"hex token in error", slog.String("error", "GET /api/v1/user?t="+apiToken+": 401"), apiToken},
		{"inline token", slog.String("detail", "retrying with token=abc123"), "abc123"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			var buf bytes.Buffer
			logging.New("warn", "json", &buf).Warn("event", tt.attr)

			assert.NotContains(t, buf.String(), tt.secret)
			assert.Contains(t, buf.String(), "[REDACTED]")
		})
	}
}

func TestNew_KeepsOrdinaryFields(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	logging.New("warn", "json", &buf).Warn("event",
		slog.String("task_id", "6X7rM8997g3RQmvh"),
		slog.String("path", "/api/v1/projects"),
	)

	assert.Contains(t, buf.String(), "6X7rM8997g3RQmvh")
	assert.Contains(t, buf.String(), "/api/v1/projects")
}
