// Package logging builds the CLI's slog loggers and carries them through a
// command's context.
//
// Logs never go to stdout, which belongs to command output. main builds one
// logger writing to stderr:
//
//	logger := logging.New("warn", "text", os.Stderr)
//
// and the root command stores a copy tagged with the invocation in the
// context, which adapters read back:
//
//	ctx = logging.WithInvocation(ctx, logger, requestID, cmd.CommandPath())
//	logging.FromContext(ctx).DebugContext(ctx, "request failed", ...)
//
// Application services log failures with the operation name, entity ids and
// the full error chain:
//
//	logger.ErrorContext(ctx, "failed to resolve task",
//	    slog.String("operation", "ViewTask"),
//	    slog.String("task_ref", ref),
//	    slog.Any("error", err),
//	)
package logging

import (
	"context"
	"io"
	"log/slog"
	"strings"
)

type contextKey struct{}

// discard is returned by FromContext when no logger was stored.
var discard = slog.New(slog.DiscardHandler)

// New creates a configured *slog.Logger.
//
// level is one of "debug", "info", "warn" or "error" (case-insensitive);
// anything else means warn. format "json" selects the JSON handler and
// anything else the text handler. Debug output includes the source location.
func New(level, format string, w io.Writer) *slog.Logger {
	lvl := ParseLevel(level)

	opts := &slog.HandlerOptions{
		Level:       lvl,
		AddSource:   lvl == slog.LevelDebug,
		ReplaceAttr: newRedactAttr(),
	}

	var handler slog.Handler
	if strings.EqualFold(format, "json") {
		handler = slog.NewJSONHandler(w, opts)
	} else {
		handler = slog.NewTextHandler(w, opts)
	}

	return slog.New(handler)
}

// WithLogger returns a new context with the given logger stored in it.
func WithLogger(ctx context.Context, logger *slog.Logger) context.Context {
	return context.WithValue(ctx, contextKey{}, logger)
}

// WithInvocation stores logger in ctx tagged with the invocation's request id
// and command path.
func WithInvocation(ctx context.Context, logger *slog.Logger, requestID, command string) context.Context {
	return WithLogger(ctx, logger.With(
		slog.String("request_id", requestID),
		slog.String("command", command),
	))
}

// FromContext returns the logger stored in ctx. Without one it returns a
// logger that discards everything, so library code never writes to a stream
// the user did not configure.
func FromContext(ctx context.Context) *slog.Logger {
	if logger, ok := ctx.Value(contextKey{}).(*slog.Logger); ok {
		return logger
	}
	return discard
}

// ParseLevel converts a level name to slog.Level. Unrecognized names map to
// warn, the CLI's quiet default.
func ParseLevel(level string) slog.Level {
	switch strings.ToLower(strings.TrimSpace(level)) {
	case "debug":
		return slog.LevelDebug
	case "info":
		return slog.LevelInfo
	case "error":
		return slog.LevelError
	default:
		return slog.LevelWarn
	}
}
