package poxel

import (
	"context"
	"log/slog"
	"sync/atomic"
)

// nopHandler drops every record. Enabled reports false, so the Debug calls
// on the query path return before building their attributes.
type nopHandler struct{}

func (nopHandler) Enabled(context.Context, slog.Level) bool  { return false }
func (nopHandler) Handle(context.Context, slog.Record) error { return nil }
func (nopHandler) WithAttrs([]slog.Attr) slog.Handler        { return nopHandler{} }
func (nopHandler) WithGroup(string) slog.Handler             { return nopHandler{} }

func newNopLogger() *slog.Logger { return slog.New(nopHandler{}) }

// loggerPtr holds the package logger. Detectors without WithLogger read it
// on every query, possibly from several goroutines.
var loggerPtr atomic.Pointer[slog.Logger]

func init() {
	loggerPtr.Store(newNopLogger())
}

// SetLogger installs l as the package logger. Passing nil silences
// poxel again, which is also the initial state.
//
// Collision queries log at [slog.LevelDebug]: which pruning stage decided
// the answer, and for pixel tests the subsample count and walk step.
// CollideAll logs the batch size and worker count at [slog.LevelInfo].
// Nothing is logged above Info.
//
// SetLogger may be called while queries are running.
//
//	poxel.SetLogger(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
//	    Level: slog.LevelDebug,
//	})))
func SetLogger(l *slog.Logger) {
	if l == nil {
		l = newNopLogger()
	}
	loggerPtr.Store(l)
}

// Logger returns the package logger. A Detector created with WithLogger
// uses its own logger instead.
func Logger() *slog.Logger {
	return loggerPtr.Load()
}
