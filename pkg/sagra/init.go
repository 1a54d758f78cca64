// Package sagra provides the navigation core for a conference companion app:
// a typed route model, a persisted back-stack, an exhaustive screen registry
// and an out-of-band notification bridge.
//
// The subpackages do the actual work; this package only hosts process-level
// setup (logging) shared by all of them.
package sagra

import (
	"log/slog"

	"github.com/BrandonKowalski/sagra/pkg/sagra/internal"
)

// Options configures process-level setup.
type Options struct {
	LogPath  string // Full path for the log file including filename (creates parent directories)
	LogLevel string // Minimum level for the application logger: debug, info, warn, error
	Verbose  bool   // Enable framework-level diagnostics (listener lifecycle, dropped requests)
}

// Init applies process-level setup. Call once, before creating a host.
func Init(options Options) {
	if options.LogPath != "" {
		internal.SetLogPath(options.LogPath)
	}
	if options.LogLevel != "" {
		internal.SetRawLogLevel(options.LogLevel)
	}

	if options.Verbose {
		internal.SetInternalLogLevel(slog.LevelDebug)
	} else {
		internal.SetInternalLogLevel(slog.LevelError)
	}
}

// Close releases process-level resources. Call before program exit.
func Close() {
	internal.CloseLogger()
}

// GetLogger returns the application logger for structured logging.
func GetLogger() *slog.Logger {
	return internal.GetLogger()
}

// SetLogLevel sets the minimum log level for the application logger.
func SetLogLevel(level slog.Level) {
	internal.SetLogLevel(level)
}
