package fontreach

import (
	"log/slog"

	"github.com/fontreach/fontreach/internal/logging"
)

// SetLogger configures the logger for fontreach and all its sub-packages.
// By default, fontreach produces no log output. Call SetLogger to enable
// logging.
//
// SetLogger is safe for concurrent use: it stores the new logger atomically.
// Pass nil to disable logging (restore default silent behavior).
//
// Log levels used by fontreach:
//   - [slog.LevelDebug]: per-unit progress (word lists loaded, instances
//     checked)
//   - [slog.LevelInfo]: lifecycle events (locations enumerated)
//   - [slog.LevelWarn]: advisories (workloads that will be slow)
//
// Example:
//
//	// Enable info-level logging to stderr:
//	fontreach.SetLogger(slog.Default())
func SetLogger(l *slog.Logger) {
	logging.Set(l)
}

// Logger returns the current logger used by fontreach. Sub-packages
// (wordlists, cmd/fontreach) call this to share the same logger
// configuration without introducing import cycles.
//
// Logger is safe for concurrent use.
func Logger() *slog.Logger {
	return logging.Logger()
}
