// Package logging configures slog for gtoc components.
//
// # Overview
//
// Two handlers are supported:
//
//   - JSON to stderr (default), with module and version attributes on every record
//   - Colored console output via github.com/lmittmann/tint, for interactive CLI use
//
// # Log Levels
//
// Supported levels (case-insensitive): debug, info (default), warn/warning, error.
// Debug loggers include source locations. The LOG_LEVEL environment variable
// sets the level when none is passed explicitly.
//
// # Usage
//
//	func main() {
//	    logging.SetDefaultStructuredLogger("gtocd", version)
//	    slog.Info("server starting", "port", 8080)
//	}
//
// Interactive CLI runs:
//
//	if err := logging.SetDefaultLogger("text", "gtoc", version, "debug"); err != nil {
//	    return err
//	}
//
// The overclock engine logs GT++ overclock steps at debug level, so
//
//	LOG_LEVEL=debug gtoc overclock --file book.yaml
//
// shows each intermediate EU/t, duration and parallel count.
//
// # Output Format
//
//	{
//	    "time": "2025-01-15T10:30:00.123Z",
//	    "level": "INFO",
//	    "msg": "server started",
//	    "module": "gtocd",
//	    "version": "v1.0.0",
//	    "port": 8080
//	}
package logging
