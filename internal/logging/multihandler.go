package logging

import (
	"context"
	"log/slog"
)

// fanoutHandler duplicates every record to a set of sinks, typically the
// session log file plus the OTel bridge. A failing sink never blocks the
// others.
type fanoutHandler struct {
	sinks []slog.Handler
}

// NewMultiHandler builds a handler writing to every non-nil sink.
func NewMultiHandler(sinks ...slog.Handler) slog.Handler {
	out := fanoutHandler{}
	for _, s := range sinks {
		if s != nil {
			out.sinks = append(out.sinks, s)
		}
	}
	return out
}

func (f fanoutHandler) Enabled(ctx context.Context, level slog.Level) bool {
	for _, s := range f.sinks {
		if s.Enabled(ctx, level) {
			return true
		}
	}
	return false
}

func (f fanoutHandler) Handle(ctx context.Context, r slog.Record) error {
	for _, s := range f.sinks {
		if !s.Enabled(ctx, r.Level) {
			continue
		}
		_ = s.Handle(ctx, r.Clone())
	}
	return nil
}

func (f fanoutHandler) WithAttrs(attrs []slog.Attr) slog.Handler {
	sinks := make([]slog.Handler, len(f.sinks))
	for i, s := range f.sinks {
		sinks[i] = s.WithAttrs(attrs)
	}
	return fanoutHandler{sinks: sinks}
}

func (f fanoutHandler) WithGroup(name string) slog.Handler {
	if name == "" {
		return f
	}
	sinks := make([]slog.Handler, len(f.sinks))
	for i, s := range f.sinks {
		sinks[i] = s.WithGroup(name)
	}
	return fanoutHandler{sinks: sinks}
}
