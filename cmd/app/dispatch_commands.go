package main

import (
	"context"

	"github.com/urfave/cli/v3"

	"github.com/allisson/cryptokaro/cmd/app/commands"
	"github.com/allisson/cryptokaro/internal/app"
)

func getDispatchCommands() []*cli.Command {
	return []*cli.Command{
		{
			Name:  "invoke",
			Usage: "Dispatch one request and print the response",
			Flags: []cli.Flag{
				&cli.StringFlag{
					Name:    "request",
					Aliases: []string{"r"},
					Usage:   `Request document, e.g. '[{"operation":"sha256","payload":{"textInput":"abc"}}]' (default: read stdin)`,
				},
			},
			Action: func(ctx context.Context, cmd *cli.Command) error {
				return withContainer(ctx, cmd, func(container *app.Container) error {
					dispatcher, err := container.Dispatcher()
					if err != nil {
						return err
					}

					return commands.RunInvoke(
						ctx,
						dispatcher,
						container.Logger(),
						commands.DefaultIO(),
						cmd.String("request"),
						container.Config().MaxRequestBytes,
					)
				})
			},
		},
		{
			Name:  "stdio",
			Usage: "Serve line-delimited requests from stdin until EOF",
			Action: func(ctx context.Context, cmd *cli.Command) error {
				return withContainer(ctx, cmd, func(container *app.Container) error {
					dispatcher, err := container.Dispatcher()
					if err != nil {
						return err
					}

					return commands.RunStdio(
						ctx,
						dispatcher,
						container.Logger(),
						commands.DefaultIO(),
						container.Config().MaxRequestBytes,
					)
				})
			},
		},
		{
			Name:  "batch",
			Usage: "Dispatch line-delimited requests concurrently, printing responses in input order",
			Flags: []cli.Flag{
				&cli.StringFlag{
					Name:    "input",
					Aliases: []string{"i"},
					Usage:   "File with one request per line (default: stdin)",
				},
				&cli.StringFlag{
					Name:    "output",
					Aliases: []string{"o"},
					Usage:   "File receiving one response per line (default: stdout)",
				},
				&cli.IntFlag{
					Name:    "concurrency",
					Aliases: []string{"c"},
					Usage:   "Requests in flight at once (default: BATCH_CONCURRENCY)",
				},
			},
			Action: func(ctx context.Context, cmd *cli.Command) error {
				return withContainer(ctx, cmd, func(container *app.Container) error {
					dispatcher, err := container.Dispatcher()
					if err != nil {
						return err
					}

					streams, closeIO, err := openIO(cmd)
					if err != nil {
						return err
					}
					defer closeIO()

					concurrency := container.Config().BatchConcurrency
					if cmd.IsSet("concurrency") {
						concurrency = int(cmd.Int("concurrency"))
					}

					return commands.RunBatch(
						ctx,
						dispatcher,
						container.Logger(),
						streams,
						concurrency,
						container.Config().MaxRequestBytes,
					)
				})
			},
		},
	}
}
