// Package cli implements the todo command-line interface on top of
// ports.TaskService. Commands are built per invocation by Execute, which
// bootstraps dependencies after flag parsing, renders results as text or a
// JSON envelope, and maps errors to an exit code.
package cli

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"time"

	"github.com/spf13/cobra"

	"github.com/jsamuelsen11/todo-cli/internal/platform/telemetry"
	"github.com/jsamuelsen11/todo-cli/internal/ports"
)

// Exit codes returned by Execute.
const (
	ExitOK    = 0
	ExitError = 1
)

// ProfileEnv names the environment variable read when --profile is unset.
const ProfileEnv = "TODO_PROFILE"

// Options are the global flags, available to Bootstrap before any
// dependency exists.
type Options struct {
	Profile string
	Verbose bool
	JSON    bool
}

// Env is the set of dependencies a command runs against.
type Env struct {
	Tasks   ports.TaskService
	Health  ports.HealthRegistry
	Logger  *slog.Logger
	Metrics *telemetry.Metrics

	// Close flushes telemetry and releases resources. Optional.
	Close func(ctx context.Context) error
}

// Bootstrap builds the Env once global flags are parsed.
type Bootstrap func(ctx context.Context, opts Options) (*Env, error)

// Execute runs the command line args and returns the process exit code.
// Command output goes to stdout; errors are printed to stdout as a JSON
// envelope under --json and to stderr otherwise.
func Execute(ctx context.Context, args []string, boot Bootstrap, stdout, stderr io.Writer) int {
	r := &runner{boot: boot, stdout: stdout, stderr: stderr}

	root := r.rootCommand()
	root.SetArgs(args)
	root.SetOut(stdout)
	root.SetErr(stderr)

	start := time.Now()
	cmd, err := root.ExecuteContextC(ctx)
	r.record(ctx, cmd, start, err)
	r.close(ctx)

	if err != nil {
		if !errors.Is(err, errSilent) {
			r.printer().Error(err)
		}
		return ExitError
	}
	return ExitOK
}

// runner carries per-invocation state shared by the command tree.
type runner struct {
	boot   Bootstrap
	opts   Options
	env    *Env
	stdout io.Writer
	stderr io.Writer
}

func (r *runner) printer() *printer {
	return newPrinter(r.stdout, r.stderr, r.opts.JSON)
}

// record emits the command duration and outcome when telemetry is enabled.
func (r *runner) record(ctx context.Context, cmd *cobra.Command, start time.Time, err error) {
	if r.env == nil || cmd == nil {
		return
	}
	r.env.Metrics.RecordCommand(ctx, cmd.CommandPath(), time.Since(start), err)
}

func (r *runner) close(ctx context.Context) {
	if r.env == nil || r.env.Close == nil {
		return
	}
	if err := r.env.Close(ctx); err != nil && r.env.Logger != nil {
		r.env.Logger.WarnContext(ctx, "shutdown failed", slog.Any("error", err))
	}
}
