// Package main is the entry point for the todo CLI. It parses global flags,
// wires dependencies using samber/do v2 once the profile is known, and runs
// the requested command.
package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/samber/do/v2"

	"github.com/jsamuelsen11/todo-cli/internal/adapters/cli"
	"github.com/jsamuelsen11/todo-cli/internal/adapters/clients/acl"
	"github.com/jsamuelsen11/todo-cli/internal/app"
	"github.com/jsamuelsen11/todo-cli/internal/platform/config"
	"github.com/jsamuelsen11/todo-cli/internal/platform/health"
	"github.com/jsamuelsen11/todo-cli/internal/platform/httpclient"
	"github.com/jsamuelsen11/todo-cli/internal/platform/logging"
	"github.com/jsamuelsen11/todo-cli/internal/platform/telemetry"
	"github.com/jsamuelsen11/todo-cli/internal/ports"

	sdkmetric "go.opentelemetry.io/otel/sdk/metric"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
)

const (
	otelShutdownTimeout = 5 * time.Second

	// serviceName identifies the task API in traces, metrics and the
	// breaker.
	serviceName = "todoist-api"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	code := cli.Execute(ctx, os.Args[1:], bootstrap, os.Stdout, os.Stderr)
	stop()
	os.Exit(code)
}

// bootstrap loads configuration for the selected profile, then builds the
// dependency graph a command runs against.
func bootstrap(ctx context.Context, opts cli.Options) (*cli.Env, error) {
	cfg, err := config.Load(opts.Profile)
	if err != nil {
		return nil, fmt.Errorf("loading config: %w", err)
	}

	level := cfg.Log.Level
	if opts.Verbose {
		level = "debug"
	}
	logger := logging.New(level, cfg.Log.Format, os.Stderr)

	otel, err := initTelemetry(ctx, cfg)
	if err != nil {
		return nil, fmt.Errorf("initializing telemetry: %w", err)
	}

	// DI container.
	injector := do.New()

	do.ProvideValue(injector, cfg)
	do.ProvideValue(injector, logger)
	do.ProvideValue(injector, otel.metrics)

	registerDependencies(injector, cfg, logger)

	// Resolve the service (eagerly wires the full graph).
	tasks, err := do.Invoke[ports.TaskService](injector)
	if err != nil {
		_ = otel.Shutdown(ctx)
		return nil, fmt.Errorf("resolving task service: %w", err)
	}

	// Register health checkers after the graph is wired.
	registry := do.MustInvoke[ports.HealthRegistry](injector)
	registry.Register(do.MustInvoke[*acl.TodoistClient](injector))

	return &cli.Env{
		Tasks:   tasks,
		Health:  registry,
		Logger:  logger,
		Metrics: otel.metrics,
		Close: func(context.Context) error {
			// Flush telemetry even when the command context was canceled.
			otelCtx, cancel := context.WithTimeout(context.Background(), otelShutdownTimeout)
			defer cancel()
			return otel.Shutdown(otelCtx)
		},
	}, nil
}

// otelProviders bundles OpenTelemetry provider lifecycle. All fields are nil
// when telemetry is disabled.
type otelProviders struct {
	tracer  *sdktrace.TracerProvider
	meter   *sdkmetric.MeterProvider
	metrics *telemetry.Metrics
}

// Shutdown flushes both providers. Nil-safe.
func (o *otelProviders) Shutdown(ctx context.Context) error {
	var errs []error
	if o.tracer != nil {
		if err := o.tracer.Shutdown(ctx); err != nil {
			errs = append(errs, fmt.Errorf("tracer shutdown: %w", err))
		}
	}
	if o.meter != nil {
		if err := o.meter.Shutdown(ctx); err != nil {
			errs = append(errs, fmt.Errorf("meter shutdown: %w", err))
		}
	}
	return errors.Join(errs...)
}

func initTelemetry(ctx context.Context, cfg *config.Config) (*otelProviders, error) {
	if !cfg.Telemetry.Enabled {
		return &otelProviders{}, nil
	}

	tp, err := telemetry.InitTracer(ctx,
		cfg.Telemetry.ServiceName,
		cfg.Telemetry.Exporter,
		cfg.Telemetry.Endpoint,
	)
	if err != nil {
		return nil, fmt.Errorf("init tracer: %w", err)
	}

	mp, err := telemetry.InitMeter(ctx,
		cfg.Telemetry.ServiceName,
		cfg.Telemetry.Exporter,
		cfg.Telemetry.Endpoint,
	)
	if err != nil {
		_ = tp.Shutdown(ctx)
		return nil, fmt.Errorf("init meter: %w", err)
	}

	metrics, err := telemetry.NewMetrics(mp)
	if err != nil {
		_ = tp.Shutdown(ctx)
		_ = mp.Shutdown(ctx)
		return nil, fmt.Errorf("creating metrics: %w", err)
	}

	return &otelProviders{
		tracer:  tp,
		meter:   mp,
		metrics: metrics,
	}, nil
}

func registerDependencies(injector *do.RootScope, cfg *config.Config, logger *slog.Logger) {
	do.Provide(injector, func(i do.Injector) (*httpclient.Client, error) {
		metrics := do.MustInvoke[*telemetry.Metrics](i)
		return httpclient.New(&cfg.Client, serviceName, metrics, logger), nil
	})

	do.Provide(injector, func(i do.Injector) (*acl.TodoistClient, error) {
		client := do.MustInvoke[*httpclient.Client](i)
		return acl.NewTodoistClient(client, logger), nil
	})

	do.Provide(injector, func(i do.Injector) (ports.TodoistClient, error) {
		return do.MustInvoke[*acl.TodoistClient](i), nil
	})

	do.Provide(injector, func(i do.Injector) (ports.TaskService, error) {
		client := do.MustInvoke[ports.TodoistClient](i)
		return app.NewTaskService(client, app.Settings{
			PageSize:                cfg.Pagination.PageSize,
			CollaboratorConcurrency: cfg.Collaborators.MaxConcurrency,
		}, logger), nil
	})

	do.Provide(injector, func(_ do.Injector) (ports.HealthRegistry, error) {
		return health.New(health.WithCheckTimeout(cfg.Client.Timeout)), nil
	})
}
