package pixelhover

import (
	"context"
	"log/slog"
	"sync/atomic"
)

// nopHandler is a slog.Handler that silently discards all log records.
// Enabled reports false so callers skip message formatting entirely.
type nopHandler struct{}

func (nopHandler) Enabled(context.Context, slog.Level) bool  { return false }
func (nopHandler) Handle(context.Context, slog.Record) error { return nil }
func (nopHandler) WithAttrs([]slog.Attr) slog.Handler        { return nopHandler{} }
func (nopHandler) WithGroup(string) slog.Handler             { return nopHandler{} }

func newNopLogger() *slog.Logger { return slog.New(nopHandler{}) }

// loggerPtr stores the active logger. Accessed atomically so that
// SetLogger can be called while animators are running on a host loop.
var loggerPtr atomic.Pointer[slog.Logger]

func init() {
	loggerPtr.Store(newNopLogger())
}

// SetLogger configures the logger for pixelhover and its sub-packages.
// By default, pixelhover produces no log output.
//
// Pass nil to restore the silent default.
//
// Log levels used by pixelhover:
//   - [slog.LevelDebug]: animator lifecycle (attach, relayout, loop start/stop)
//   - [slog.LevelWarn]: non-fatal issues (invalid palette entries, surface errors)
//
// Example:
//
//	pixelhover.SetLogger(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
//	    Level: slog.LevelDebug,
//	})))
func SetLogger(l *slog.Logger) {
	if l == nil {
		l = newNopLogger()
	}
	loggerPtr.Store(l)
}

// Logger returns the current logger used by pixelhover.
// Hosts under integration/ call this to share the same configuration.
func Logger() *slog.Logger {
	return loggerPtr.Load()
}
