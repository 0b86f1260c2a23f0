// Copyright (c) 2025, NVIDIA CORPORATION.  All rights reserved.
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package logging

import (
	"fmt"
	"io"
	"log"
	"log/slog"
	"os"
	"strings"

	"github.com/lmittmann/tint"
	"golang.org/x/term"
)

const (
	// EnvLogLevel names the environment variable that sets the default level.
	EnvLogLevel = "LOG_LEVEL"

	// FormatJSON writes one JSON object per record.
	FormatJSON = "json"
	// FormatText writes colored, human-oriented lines.
	FormatText = "text"

	consoleTimeFormat = "15:04:05"
)

// ParseLogLevel converts a level name into a slog.Level.
// Unknown or empty names yield slog.LevelInfo.
func ParseLogLevel(level string) slog.Level {
	switch strings.ToLower(strings.TrimSpace(level)) {
	case "debug":
		return slog.LevelDebug
	case "warn", "warning":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

// levelFromEnv reads LOG_LEVEL, falling back to info.
func levelFromEnv() string {
	return os.Getenv(EnvLogLevel)
}

// NewStructuredLogger returns a JSON logger writing to stderr with module and
// version attributes on every record. Debug loggers include source locations.
func NewStructuredLogger(module, version, level string) *slog.Logger {
	return newJSONLogger(os.Stderr, module, version, ParseLogLevel(level))
}

func newJSONLogger(w io.Writer, module, version string, lvl slog.Level) *slog.Logger {
	h := slog.NewJSONHandler(w, &slog.HandlerOptions{
		Level:     lvl,
		AddSource: lvl <= slog.LevelDebug,
	})
	return slog.New(h).With(
		slog.String("module", module),
		slog.String("version", version),
	)
}

// NewConsoleLogger returns a colored logger for interactive use.
func NewConsoleLogger(w io.Writer, level string) *slog.Logger {
	lvl := ParseLogLevel(level)
	return slog.New(tint.NewHandler(w, &tint.Options{
		Level:      lvl,
		TimeFormat: consoleTimeFormat,
		AddSource:  lvl <= slog.LevelDebug,
		NoColor:    !isTerminal(w),
	}))
}

// NewLogger builds a logger in the requested format ("json" or "text").
func NewLogger(format, module, version, level string) (*slog.Logger, error) {
	switch strings.ToLower(strings.TrimSpace(format)) {
	case "", FormatJSON:
		return NewStructuredLogger(module, version, level), nil
	case FormatText:
		return NewConsoleLogger(os.Stderr, level), nil
	default:
		return nil, fmt.Errorf("invalid log format: %q (supported values: %s, %s)", format, FormatJSON, FormatText)
	}
}

// SetDefaultStructuredLogger installs a JSON logger as the slog default,
// taking the level from LOG_LEVEL.
func SetDefaultStructuredLogger(module, version string) {
	SetDefaultStructuredLoggerWithLevel(module, version, levelFromEnv())
}

// SetDefaultStructuredLoggerWithLevel installs a JSON logger with an explicit level.
func SetDefaultStructuredLoggerWithLevel(module, version, level string) {
	slog.SetDefault(NewStructuredLogger(module, version, level))
}

// SetDefaultLogger installs a logger of the given format as the slog default.
func SetDefaultLogger(format, module, version, level string) error {
	logger, err := NewLogger(format, module, version, level)
	if err != nil {
		return err
	}
	slog.SetDefault(logger)
	return nil
}

// NewLogLogger adapts slog to a standard library *log.Logger, for APIs such as
// http.Server.ErrorLog that still require one.
func NewLogLogger(level slog.Level, addSource bool) *log.Logger {
	h := slog.NewJSONHandler(os.Stderr, &slog.HandlerOptions{
		Level:     level,
		AddSource: addSource,
	})
	return slog.NewLogLogger(h, level)
}

func isTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	return ok && term.IsTerminal(int(f.Fd()))
}
