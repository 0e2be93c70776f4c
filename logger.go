package richtext

import (
	"log/slog"

	"github.com/gogpu/richtext/internal/logging"
)

// SetLogger configures the logger for richtext and all its sub-packages.
// By default, richtext produces no log output. Call SetLogger to enable
// logging.
//
// SetLogger is safe for concurrent use: it stores the new logger atomically.
// Pass nil to disable logging (restore default silent behavior).
//
// Log levels used by richtext:
//   - [slog.LevelDebug]: cache hits and misses, font fallback
//   - [slog.LevelInfo]: font loads
//   - [slog.LevelWarn]: invalid colors in markup, textures over the size limit
//
// Example:
//
//	// Enable debug-level logging for full diagnostics:
//	richtext.SetLogger(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
//	    Level: slog.LevelDebug,
//	})))
func SetLogger(l *slog.Logger) {
	logging.Set(l)
}

// Logger returns the current logger used by richtext.
// Sub-packages (markup, layout, integration/gputex) share the same logger.
//
// Logger is safe for concurrent use.
func Logger() *slog.Logger {
	return logging.Logger()
}
