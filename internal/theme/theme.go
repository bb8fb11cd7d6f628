// Package theme holds the light/dark preference. Changes are persisted
// immediately and pushed to an applier that restyles the presentation.
package theme

import (
	"errors"
	"fmt"
	"log/slog"
	"sync"

	"github.com/thenoetrevino/kanban/internal/events"
)

// Theme is the colour mode
type Theme string

const (
	Light Theme = "light"
	Dark  Theme = "dark"
)

// ErrInvalidTheme is returned by Parse for anything but "light" or "dark"
var ErrInvalidTheme = errors.New("invalid theme")

// Parse accepts exactly "light" and "dark"
func Parse(s string) (Theme, error) {
	switch Theme(s) {
	case Light, Dark:
		return Theme(s), nil
	default:
		return "", fmt.Errorf("%w: %q", ErrInvalidTheme, s)
	}
}

// Valid reports whether t is Light or Dark
func (t Theme) Valid() bool {
	return t == Light || t == Dark
}

// Opposite returns the other theme
func (t Theme) Opposite() Theme {
	if t == Dark {
		return Light
	}
	return Dark
}

func (t Theme) String() string {
	return string(t)
}

// Repository persists the raw preference. *persistence.Repository satisfies it.
type Repository interface {
	LoadTheme() (string, bool)
	SaveTheme(value string) error
}

// Store owns the current theme
type Store struct {
	mu        sync.Mutex
	ready     bool
	current   Theme
	repo      Repository
	apply     func(Theme)
	publisher events.Publisher
	logger    *slog.Logger
}

// Option configures a Store
type Option func(*Store)

// WithApplier registers the presentation hook, called on construction and
// after every change
func WithApplier(fn func(Theme)) Option {
	return func(s *Store) {
		s.apply = fn
	}
}

// WithLogger sets the logger
func WithLogger(logger *slog.Logger) Option {
	return func(s *Store) {
		if logger != nil {
			s.logger = logger
		}
	}
}

// WithPublisher sends a theme_changed event after every change
func WithPublisher(p events.Publisher) Option {
	return func(s *Store) {
		s.publisher = p
	}
}

// NewStore loads the persisted theme, defaulting to Light when it is missing
// or invalid
func NewStore(repo Repository, opts ...Option) *Store {
	if repo == nil {
		panic("theme.NewStore: repository is nil")
	}
	s := &Store{
		ready:   true,
		current: Light,
		repo:    repo,
		logger:  slog.Default(),
	}
	for _, opt := range opts {
		opt(s)
	}

	if raw, ok := repo.LoadTheme(); ok {
		if t, err := Parse(raw); err == nil {
			s.current = t
		} else {
			s.logger.Debug("ignoring stored theme", "error", err)
		}
	}
	if s.apply != nil {
		s.apply(s.current)
	}
	return s
}

func (s *Store) mustReady() {
	if s == nil || !s.ready {
		panic("theme: Store used before NewStore")
	}
}

// Theme returns the current theme
func (s *Store) Theme() Theme {
	s.mustReady()
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.current
}

// Toggle flips between light and dark and returns the new theme
func (s *Store) Toggle() Theme {
	s.mustReady()
	s.mu.Lock()
	next := s.current.Opposite()
	s.mu.Unlock()

	s.Set(next)
	return next
}

// Set changes the theme. Invalid values are ignored.
func (s *Store) Set(t Theme) {
	s.mustReady()
	if !t.Valid() {
		s.logger.Debug("ignoring invalid theme", "theme", string(t))
		return
	}

	s.mu.Lock()
	s.current = t
	if err := s.repo.SaveTheme(string(t)); err != nil {
		s.logger.Warn("Failed to persist theme", "theme", string(t), "error", err)
	}
	s.mu.Unlock()

	if s.apply != nil {
		s.apply(t)
	}
	if s.publisher != nil {
		s.publisher.Publish(events.Event{Type: events.EventThemeChanged, Action: string(t)})
	}
}
