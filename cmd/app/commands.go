package main

import (
	"context"
	"log/slog"
	"os"

	"github.com/urfave/cli/v3"

	"github.com/allisson/cryptokaro/cmd/app/commands"
	"github.com/allisson/cryptokaro/internal/app"
	"github.com/allisson/cryptokaro/internal/config"
)

func getGlobalFlags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:    "settings",
			Aliases: []string{"s"},
			Usage:   "Path of the JSON or YAML settings document (overrides SETTINGS_FILE)",
		},
		&cli.BoolFlag{
			Name:  "metrics",
			Usage: "Collect operation metrics and print them to stderr on exit",
		},
	}
}

func getCommands() []*cli.Command {
	cmds := []*cli.Command{}
	cmds = append(cmds, getDispatchCommands()...)
	return cmds
}

// withContainer loads configuration, applies the global flags and runs fn with a
// container that is shut down afterwards.
func withContainer(
	ctx context.Context,
	cmd *cli.Command,
	fn func(container *app.Container) error,
) error {
	cfg := config.Load()
	if cmd.IsSet("settings") {
		cfg.SettingsFile = cmd.String("settings")
	}
	if cmd.Bool("metrics") {
		cfg.MetricsEnabled = true
	}

	container := app.NewContainer(cfg)
	logger := container.Logger()
	defer func() {
		if err := container.Shutdown(context.WithoutCancel(ctx)); err != nil {
			logger.Error("failed to shutdown container", slog.Any("error", err))
		}
	}()

	runErr := fn(container)

	if cfg.MetricsEnabled {
		provider, err := container.MetricsProvider()
		if err != nil {
			logger.Error("failed to get metrics provider", slog.Any("error", err))
		} else if provider != nil {
			if err := provider.WriteText(os.Stderr); err != nil {
				logger.Error("failed to write metrics", slog.Any("error", err))
			}
		}
	}

	return runErr
}

// openIO resolves the optional --input and --output file flags.
func openIO(cmd *cli.Command) (commands.IOTuple, func(), error) {
	streams := commands.DefaultIO()
	var closers []func() error

	if path := cmd.String("input"); path != "" && path != "-" {
		f, err := os.Open(path) //nolint:gosec // path supplied by the operator
		if err != nil {
			return streams, func() {}, err
		}
		streams.Reader = f
		closers = append(closers, f.Close)
	}

	if path := cmd.String("output"); path != "" && path != "-" {
		f, err := os.Create(path) //nolint:gosec // path supplied by the operator
		if err != nil {
			for _, c := range closers {
				_ = c()
			}
			return streams, func() {}, err
		}
		streams.Writer = f
		closers = append(closers, f.Close)
	}

	return streams, func() {
		for _, c := range closers {
			_ = c()
		}
	}, nil
}
