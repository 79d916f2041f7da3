package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"strings"
	"sync"
	"time"

	"github.com/lmittmann/tint"
)

const (
	terminalLogHandler = "terminal"
	uiLogHandler       = "ui"
)

// SlogManager is a [slog.Handler] fanning records out to named handlers,
// which can be swapped while logging is in use.
type SlogManager struct {
	mu       *sync.RWMutex
	handlers map[string]slog.Handler
	derive   []func(slog.Handler) slog.Handler
}

// NewSlogManager returns a pointer to a new [SlogManager] without handlers.
func NewSlogManager() *SlogManager {
	return &SlogManager{
		mu:       &sync.RWMutex{},
		handlers: make(map[string]slog.Handler),
	}
}

func (m *SlogManager) Enabled(ctx context.Context, level slog.Level) bool {
	m.mu.RLock()
	defer m.mu.RUnlock()

	for _, h := range m.handlers {
		if m.apply(h).Enabled(ctx, level) {
			return true
		}
	}

	return false
}

func (m *SlogManager) Handle(ctx context.Context, r slog.Record) error {
	m.mu.RLock()
	defer m.mu.RUnlock()

	for _, h := range m.handlers {
		h = m.apply(h)
		if h.Enabled(ctx, r.Level) {
			_ = h.Handle(ctx, r.Clone())
		}
	}

	return nil
}

// WithAttrs returns a view of the manager adding attrs to every handler,
// including handlers added to the manager later on.
func (m *SlogManager) WithAttrs(attrs []slog.Attr) slog.Handler {
	return m.with(func(h slog.Handler) slog.Handler { return h.WithAttrs(attrs) })
}

// WithGroup returns a view of the manager opening group name on every
// handler, including handlers added to the manager later on.
func (m *SlogManager) WithGroup(name string) slog.Handler {
	return m.with(func(h slog.Handler) slog.Handler { return h.WithGroup(name) })
}

func (m *SlogManager) with(fn func(slog.Handler) slog.Handler) *SlogManager {
	derive := make([]func(slog.Handler) slog.Handler, 0, len(m.derive)+1)
	derive = append(derive, m.derive...)
	derive = append(derive, fn)

	return &SlogManager{
		mu:       m.mu,
		handlers: m.handlers,
		derive:   derive,
	}
}

func (m *SlogManager) apply(h slog.Handler) slog.Handler {
	for _, fn := range m.derive {
		h = fn(h)
	}

	return h
}

// AddHandler adds (or replaces) the handler registered as name.
func (m *SlogManager) AddHandler(name string, handler slog.Handler) {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.handlers[name] = handler
}

// RemoveHandler removes the handler registered as name.
func (m *SlogManager) RemoveHandler(name string) {
	m.mu.Lock()
	defer m.mu.Unlock()

	delete(m.handlers, name)
}

func newTintHandler(w io.Writer, level slog.Level, noColor bool) slog.Handler {
	return tint.NewHandler(w, &tint.Options{
		Level:      level,
		TimeFormat: time.Kitchen,
		NoColor:    noColor,
	})
}

func setupLogging(manager *SlogManager, w io.Writer, level slog.Level) {
	manager.AddHandler(terminalLogHandler, newTintHandler(w, level, false))
}

// parseLogLevel parses one of debug, info, warn or error, in any case.
func parseLogLevel(level string) (slog.Level, error) {
	switch strings.ToLower(strings.TrimSpace(level)) {
	case "debug":
		return slog.LevelDebug, nil
	case "info":
		return slog.LevelInfo, nil
	case "", "warn", "warning":
		return slog.LevelWarn, nil
	case "error":
		return slog.LevelError, nil
	default:
		return slog.LevelWarn, fmt.Errorf("%w: %q", ErrInvalidLogLevel, level)
	}
}
