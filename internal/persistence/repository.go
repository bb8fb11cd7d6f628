// Package persistence saves and restores the board and theme snapshots
// through a key-value storage.Store. Loads never fail: missing or corrupt
// data falls back to a caller-supplied default.
package persistence

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/thenoetrevino/kanban/internal/models"
	"github.com/thenoetrevino/kanban/internal/storage"
)

// Default keys, compatible with the browser build's localStorage layout
const (
	DefaultBoardKey = "kanban-board"
	DefaultThemeKey = "kanban-theme"
)

// Repository reads and writes snapshots under two fixed keys
type Repository struct {
	store    storage.Store
	boardKey string
	themeKey string
	timeout  time.Duration
	logger   *slog.Logger
	stats    *Stats
}

// Option configures a Repository
type Option func(*Repository)

// WithKeys overrides the board and theme keys; empty values keep the defaults
func WithKeys(boardKey, themeKey string) Option {
	return func(r *Repository) {
		if boardKey != "" {
			r.boardKey = boardKey
		}
		if themeKey != "" {
			r.themeKey = themeKey
		}
	}
}

// WithTimeout bounds every storage call
func WithTimeout(d time.Duration) Option {
	return func(r *Repository) {
		if d > 0 {
			r.timeout = d
		}
	}
}

// WithLogger sets the logger used for load fallbacks
func WithLogger(logger *slog.Logger) Option {
	return func(r *Repository) {
		if logger != nil {
			r.logger = logger
		}
	}
}

// NewRepository wraps store
func NewRepository(store storage.Store, opts ...Option) *Repository {
	if store == nil {
		panic("persistence.NewRepository: store is nil")
	}
	r := &Repository{
		store:    store,
		boardKey: DefaultBoardKey,
		themeKey: DefaultThemeKey,
		timeout:  2 * time.Second,
		logger:   slog.Default(),
		stats:    NewStats(),
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Stats returns the repository counters
func (r *Repository) Stats() *Stats {
	return r.stats
}

func (r *Repository) context() (context.Context, context.CancelFunc) {
	return context.WithTimeout(context.Background(), r.timeout)
}

// LoadBoard restores the persisted board. Dangling ids, repeated references,
// orphan cards and unknown priorities are repaired and logged. An absent
// snapshot, unparsable JSON or damage Repair cannot fix yields fallback().
func (r *Repository) LoadBoard(fallback func() models.Board) models.Board {
	r.stats.IncLoads()

	board, fixes, err := r.readBoard()
	if err == nil {
		if len(fixes) > 0 {
			r.stats.IncLoadRepairs()
			for _, fix := range fixes {
				r.logger.Warn("Repaired stored board", "key", r.boardKey, "fix", fix)
			}
		}
		return board
	}

	r.stats.IncLoadFallbacks()
	if errors.Is(err, storage.ErrNotFound) {
		r.logger.Debug("no stored board, seeding default", "key", r.boardKey)
	} else {
		r.logger.Warn("Failed to load board from storage", "key", r.boardKey, "error", err)
	}
	return fallback()
}

func (r *Repository) readBoard() (models.Board, []string, error) {
	ctx, cancel := r.context()
	defer cancel()

	raw, err := r.store.Get(ctx, r.boardKey)
	if err != nil {
		return models.Board{}, nil, err
	}
	return RepairBoard([]byte(raw))
}

// SaveBoard writes the board snapshot
func (r *Repository) SaveBoard(board models.Board) error {
	data, err := EncodeBoard(board)
	if err != nil {
		r.stats.IncSaveFailures()
		return err
	}

	ctx, cancel := r.context()
	defer cancel()

	if err := r.store.Set(ctx, r.boardKey, string(data)); err != nil {
		r.stats.IncSaveFailures()
		return fmt.Errorf("save board: %w", err)
	}
	r.stats.IncSaves()
	return nil
}

// LoadTheme returns the stored theme string. ok is false when nothing is
// stored or the read failed; validating the value is up to the caller.
func (r *Repository) LoadTheme() (value string, ok bool) {
	ctx, cancel := r.context()
	defer cancel()

	v, err := r.store.Get(ctx, r.themeKey)
	if err != nil {
		if !errors.Is(err, storage.ErrNotFound) {
			r.logger.Warn("Failed to load theme from storage", "key", r.themeKey, "error", err)
		}
		return "", false
	}
	return v, true
}

// SaveTheme writes the theme string
func (r *Repository) SaveTheme(value string) error {
	ctx, cancel := r.context()
	defer cancel()

	if err := r.store.Set(ctx, r.themeKey, value); err != nil {
		r.stats.IncSaveFailures()
		return fmt.Errorf("save theme: %w", err)
	}
	r.stats.IncSaves()
	return nil
}
