package cli

import (
	"context"

	"github.com/urfave/cli/v3"
	"golang.org/x/time/rate"

	"github.com/Alrightsc/gtnh-flow/pkg/api"
	"github.com/Alrightsc/gtnh-flow/pkg/server"
)

func serveCmd() *cli.Command {
	return &cli.Command{
		Name:  "serve",
		Usage: "Run the overclock HTTP API",
		Description: `Serve the overclock engine over HTTP until interrupted.

Routes: POST /v1/overclock, POST /v1/overclock/batch, GET /v1/machines,
GET /v1/tiers, plus /health, /ready and /metrics.`,
		Flags: []cli.Flag{
			&cli.IntFlag{
				Name:    "port",
				Aliases: []string{"p"},
				Usage:   "Listen port (default 8080)",
				Sources: cli.EnvVars(envVar("PORT"), server.EnvPort),
			},
			&cli.FloatFlag{
				Name:    "rate-limit",
				Usage:   "Requests per second across all API routes (default 100)",
				Sources: cli.EnvVars(envVar("RATE_LIMIT")),
			},
		},
		Action: func(ctx context.Context, cmd *cli.Command) error {
			return api.ServeContext(ctx, serveOptions(cmd)...)
		},
	}
}

func serveOptions(cmd *cli.Command) []server.Option {
	var opts []server.Option
	if cmd.IsSet("port") {
		opts = append(opts, server.WithPort(cmd.Int("port")))
	}
	if cmd.IsSet("rate-limit") {
		limit := cmd.Float("rate-limit")
		opts = append(opts, server.WithRateLimit(rate.Limit(limit), int(limit*2)))
	}
	return opts
}
