package painter

import (
	"context"
	"log/slog"
	"sync/atomic"
)

// discard drops every record, and reports every level as
// disabled so attributes are never built.
type discard struct{}

func (discard) Enabled(context.Context, slog.Level) bool  { return false }
func (discard) Handle(context.Context, slog.Record) error { return nil }
func (d discard) WithAttrs([]slog.Attr) slog.Handler      { return d }
func (d discard) WithGroup(string) slog.Handler           { return d }

var (
	silent = slog.New(discard{})
	logger atomic.Pointer[slog.Logger] // nil means silent
)

// SetLogger sets the logger shared by all painters; nil silences them,
// which is the initial state.
//
// Debug records surface replacement and scaling, Warn the errors
// recorded by chained calls (see Painter.Err).
func SetLogger(l *slog.Logger) {
	logger.Store(l)
}

// Logger returns the logger set by SetLogger, or a silent one.
func Logger() *slog.Logger {
	if l := logger.Load(); l != nil {
		return l
	}
	return silent
}
