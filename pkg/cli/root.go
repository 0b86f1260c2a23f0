/*
Copyright © 2025 NVIDIA Corporation
SPDX-License-Identifier: Apache-2.0
*/
package cli

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"github.com/urfave/cli/v3"

	"github.com/Alrightsc/gtnh-flow/pkg/logging"
	"github.com/Alrightsc/gtnh-flow/pkg/serializer"
)

const (
	name           = "gtoc"
	versionDefault = "dev"

	envPrefix = "GTOC_"
)

var (
	// overridden during build with ldflags
	version = versionDefault
	commit  = "unknown"
	date    = "unknown"
)

func outputFlag() cli.Flag {
	return &cli.StringFlag{
		Name:    "output",
		Aliases: []string{"o"},
		Usage:   "Output file path (default: stdout)",
	}
}

// formatFlag returns the --format flag with the given default.
func formatFlag(def serializer.Format) cli.Flag {
	return &cli.StringFlag{
		Name:    "format",
		Aliases: []string{"t"},
		Value:   string(def),
		Usage: fmt.Sprintf("Output format (supported values: %s)",
			strings.Join(serializer.SupportedFormats(), ", ")),
	}
}

func envVar(suffix string) string {
	return envPrefix + suffix
}

// newRootCmd builds the gtoc command tree.
func newRootCmd() *cli.Command {
	return &cli.Command{
		Name:                  name,
		Usage:                 "GregTech recipe overclock calculator",
		Version:               fmt.Sprintf("%s (commit: %s, built: %s)", version, commit, date),
		EnableShellCompletion: true,
		Description: `gtoc applies GregTech: New Horizons overclocking rules to recipes.

Recipes are read from a YAML or JSON recipe book or described with flags,
overclocked for the selected voltage tier according to the rules of their
machine, and written as YAML, JSON or a table.`,
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "log-level",
				Value:   "info",
				Usage:   "Log level (debug, info, warn, error)",
				Sources: cli.EnvVars(envVar("LOG_LEVEL"), logging.EnvLogLevel),
			},
			&cli.StringFlag{
				Name:    "log-format",
				Value:   logging.FormatText,
				Usage:   fmt.Sprintf("Log format (supported values: %s, %s)", logging.FormatText, logging.FormatJSON),
				Sources: cli.EnvVars(envVar("LOG_FORMAT")),
			},
		},
		Before: initLogger,
		Commands: []*cli.Command{
			overclockCmd(),
			machinesCmd(),
			tiersCmd(),
			serveCmd(),
		},
	}
}

// initLogger configures slog after flags are parsed so --log-level applies
// before any command runs.
func initLogger(ctx context.Context, cmd *cli.Command) (context.Context, error) {
	level := cmd.String("log-level")
	if err := logging.SetDefaultLogger(cmd.String("log-format"), name, version, level); err != nil {
		return ctx, err
	}
	slog.Debug("starting",
		"name", name,
		"version", version,
		"commit", commit,
		"date", date,
		"logLevel", level)
	return ctx, nil
}

// Execute runs the CLI with the process arguments and exits non-zero on failure.
func Execute() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := newRootCmd().Run(ctx, os.Args); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(exitCode(err))
	}
}

func exitCode(err error) int {
	if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
		return 2
	}
	return 1
}

// parseOutputFormat reads and validates the --format flag.
func parseOutputFormat(cmd *cli.Command) (serializer.Format, error) {
	f := serializer.Format(strings.ToLower(strings.TrimSpace(cmd.String("format"))))
	if f.IsUnknown() {
		return "", fmt.Errorf("unknown output format: %q (supported values: %s)",
			cmd.String("format"), strings.Join(serializer.SupportedFormats(), ", "))
	}
	return f, nil
}

// writeOutput serializes data to --output, or stdout when unset.
func writeOutput(ctx context.Context, cmd *cli.Command, format serializer.Format, data any) error {
	w := serializer.NewFileWriterOrStdout(format, cmd.String("output"))
	defer func() {
		if err := w.Close(); err != nil {
			slog.Warn("failed to close output", "error", err)
		}
	}()
	if err := w.Serialize(ctx, data); err != nil {
		return fmt.Errorf("failed to write output: %w", err)
	}
	return nil
}
