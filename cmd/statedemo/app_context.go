package main

import (
	"context"
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/alexisbeaulieu97/statedemo/internal/config"
	"github.com/alexisbeaulieu97/statedemo/internal/infrastructure/events"
	"github.com/alexisbeaulieu97/statedemo/internal/infrastructure/logging"
	"github.com/alexisbeaulieu97/statedemo/internal/infrastructure/metrics"
	"github.com/alexisbeaulieu97/statedemo/internal/ports"
)

// AppContext bundles long-lived services created once flags are parsed.
type AppContext struct {
	Config  *config.Config
	Logger  ports.Logger
	Events  *events.LoggingPublisher
	Metrics *metrics.Collector
}

func (a *AppContext) init(flags *rootFlags, stderr io.Writer) error {
	cfg, err := config.LoadConfig(flags.configPath)
	if err != nil {
		return err
	}

	level := cfg.Log.Level
	if flags.verbose {
		level = "debug"
	}
	format := cfg.Log.Format
	if flags.logFormat != "" {
		format = flags.logFormat
	}

	logger, err := logging.New(logging.Options{
		Writer:    stderr,
		Level:     level,
		Format:    format,
		Layer:     "cli",
		Component: "statedemo",
	})
	if err != nil {
		return fmt.Errorf("create logger: %w", err)
	}

	collector := metrics.NewCollector(metrics.WithNamespace(cfg.Metrics.Namespace))
	publisher := events.NewLoggingPublisher(logger.With("component", "events"))
	if _, err := collector.Observe(publisher); err != nil {
		return fmt.Errorf("observe events: %w", err)
	}

	a.Config = cfg
	a.Logger = logger
	a.Events = publisher
	a.Metrics = collector
	return nil
}

// CommandContext derives a context carrying a fresh correlation id and a
// logger scoped to component.
func (a *AppContext) CommandContext(cmd *cobra.Command, component string) (context.Context, ports.Logger) {
	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}
	ctx = ports.WithCorrelationID(ctx, ports.GenerateCorrelationID())

	logger := a.Logger
	if logger == nil {
		logger = logging.NewNoOpLogger()
	}
	return ctx, logger.With("component", component)
}
