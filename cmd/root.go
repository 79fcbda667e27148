package cmd

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/spf13/cobra"

	"github.com/kilianp07/creational/app"
	"github.com/kilianp07/creational/config"
	"github.com/kilianp07/creational/infra/logger"
	"github.com/kilianp07/creational/metrics"
)

type options struct {
	cfgPath     string
	dumpMetrics bool
}

// NewRootCmd builds the command tree.
func NewRootCmd() *cobra.Command {
	opts := &options{}
	root := &cobra.Command{
		Use:          "creational",
		Short:        "Demonstrates the prototype, builder, factory method and abstract factory patterns",
		SilenceUsage: true,
		Args:         cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return run(cmd, opts, nil, "")
		},
	}
	root.PersistentFlags().StringVarP(&opts.cfgPath, "config", "c", "", "optional configuration file (yaml or json)")
	root.PersistentFlags().BoolVar(&opts.dumpMetrics, "metrics", false, "print creation counters to stderr after the run (same as metrics.enabled)")
	root.AddCommand(patternCommands(opts)...)
	return root
}

// Execute runs the CLI.
func Execute() error { return NewRootCmd().Execute() }

// run loads the configuration, lets override adjust it and executes either
// every configured pattern or only the named one.
func run(cmd *cobra.Command, opts *options, override func(*config.Config), pattern string) error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	cfg, err := config.Load(opts.cfgPath)
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}
	if override != nil {
		override(cfg)
	}
	log := logger.NewZerologLogger("cli", logger.Options{
		Level:  cfg.Logging.Level,
		Format: cfg.Logging.Format,
		Out:    cmd.ErrOrStderr(),
	})

	runnerOpts := []app.Option{app.WithOutput(cmd.OutOrStdout()), app.WithLogger(log)}
	var reg *prometheus.Registry
	if cfg.Metrics.Enabled || opts.dumpMetrics {
		cfg.Metrics.Enabled = true
		reg = prometheus.NewRegistry()
		rec, err := metrics.NewPromRecorder(reg)
		if err != nil {
			return fmt.Errorf("metrics: %w", err)
		}
		runnerOpts = append(runnerOpts, app.WithRecorder(rec))
	}

	r, err := app.New(cfg, runnerOpts...)
	if err != nil {
		return err
	}
	if pattern == "" {
		err = r.Run(ctx)
	} else {
		err = r.RunPattern(ctx, pattern)
	}
	if err != nil {
		return err
	}
	if cfg.Metrics.Enabled {
		return metrics.WriteText(cmd.ErrOrStderr(), reg)
	}
	return nil
}
