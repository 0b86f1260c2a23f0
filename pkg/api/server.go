package api

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/Alrightsc/gtnh-flow/pkg/logging"
	"github.com/Alrightsc/gtnh-flow/pkg/overclock"
	"github.com/Alrightsc/gtnh-flow/pkg/server"
)

const (
	name           = "gtocd"
	versionDefault = "dev"
)

var (
	// overridden during build with ldflags to reflect actual version info
	// e.g., -X "github.com/Alrightsc/gtnh-flow/pkg/api.version=1.0.0"
	version = versionDefault
	commit  = "unknown"
	date    = "unknown"
)

// Serve configures structured logging and runs the API server until the
// process is interrupted.
func Serve() error {
	logging.SetDefaultStructuredLogger(name, version)
	return ServeContext(context.Background())
}

// ServeContext runs the API server with the current default logger until ctx
// is canceled or the process is interrupted. Options are applied after the
// built-in ones.
func ServeContext(ctx context.Context, opts ...server.Option) error {
	slog.Info("starting",
		"name", name,
		"version", version,
		"commit", commit,
		"date", date,
	)

	s, err := NewServer(opts...)
	if err != nil {
		return err
	}

	if err := s.Run(ctx); err != nil {
		slog.Error("server exited with error", "error", err)
		return err
	}

	return nil
}

// NewServer wires an overclock engine into a server without starting it.
func NewServer(opts ...server.Option) (*server.Server, error) {
	e, err := overclock.NewEngine(
		overclock.WithLogger(slog.Default()),
		overclock.WithVersion(version),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to create overclock engine: %w", err)
	}

	base := []server.Option{
		server.WithName(name),
		server.WithVersion(version),
		server.WithHandler(e.Handlers()),
	}

	return server.New(append(base, opts...)...), nil
}

// Version returns the build version of the API server.
func Version() string {
	return version
}
