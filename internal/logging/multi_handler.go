package logging

import (
	"context"
	"errors"
	"log/slog"
)

// MultiHandler delivers each record to every enabled sink. It is used
// to pair the stdout JSON handler with the Postgres ERROR+ handler; a
// sink that fails does not stop delivery to the others.
type MultiHandler struct {
	sinks []slog.Handler
}

func NewMultiHandler(sinks ...slog.Handler) *MultiHandler {
	return &MultiHandler{sinks: sinks}
}

func (m *MultiHandler) Enabled(ctx context.Context, level slog.Level) bool {
	for _, s := range m.sinks {
		if s.Enabled(ctx, level) {
			return true
		}
	}
	return false
}

func (m *MultiHandler) Handle(ctx context.Context, record slog.Record) error {
	var errs []error
	for _, s := range m.sinks {
		if !s.Enabled(ctx, record.Level) {
			continue
		}
		if err := s.Handle(ctx, record); err != nil {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}

func (m *MultiHandler) WithAttrs(attrs []slog.Attr) slog.Handler {
	sinks := make([]slog.Handler, len(m.sinks))
	for i, s := range m.sinks {
		sinks[i] = s.WithAttrs(attrs)
	}
	return &MultiHandler{sinks: sinks}
}

func (m *MultiHandler) WithGroup(name string) slog.Handler {
	sinks := make([]slog.Handler, len(m.sinks))
	for i, s := range m.sinks {
		sinks[i] = s.WithGroup(name)
	}
	return &MultiHandler{sinks: sinks}
}
