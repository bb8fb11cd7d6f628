package app

import (
	"log/slog"
	"time"

	"github.com/thenoetrevino/kanban/internal/events"
	"github.com/thenoetrevino/kanban/internal/storage"
	"github.com/thenoetrevino/kanban/internal/theme"
)

// Option is a functional option for configuring App initialization
type Option func(*appConfig)

// appConfig holds the configuration for App initialization
type appConfig struct {
	store     storage.Store
	publisher events.Publisher
	applier   func(theme.Theme)
	logger    *slog.Logger
	now       func() time.Time
}

// WithStore uses s instead of opening the configured backend.
// The App takes ownership and closes it in Close.
func WithStore(s storage.Store) Option {
	return func(cfg *appConfig) {
		cfg.store = s
	}
}

// WithPublisher receives every event in addition to the App's own bus
func WithPublisher(p events.Publisher) Option {
	return func(cfg *appConfig) {
		cfg.publisher = p
	}
}

// WithThemeApplier sets the hook that restyles the presentation on theme changes
func WithThemeApplier(fn func(theme.Theme)) Option {
	return func(cfg *appConfig) {
		cfg.applier = fn
	}
}

// WithLogger sets the logger for the application
func WithLogger(logger *slog.Logger) Option {
	return func(cfg *appConfig) {
		if logger != nil {
			cfg.logger = logger
		}
	}
}

// WithClock overrides the timestamp source for card changes
func WithClock(now func() time.Time) Option {
	return func(cfg *appConfig) {
		cfg.now = now
	}
}
