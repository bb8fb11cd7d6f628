package app

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/thenoetrevino/kanban/internal/board"
	"github.com/thenoetrevino/kanban/internal/config"
	"github.com/thenoetrevino/kanban/internal/events"
	"github.com/thenoetrevino/kanban/internal/models"
	"github.com/thenoetrevino/kanban/internal/persistence"
	"github.com/thenoetrevino/kanban/internal/storage"
	"github.com/thenoetrevino/kanban/internal/theme"
)

// App holds all application stores and provides dependency injection.
// This is the main application container that manages their lifecycles.
type App struct {
	Config *config.Config

	// Storage layer (key-value backend)
	storage storage.Store

	// Persistence adapter over storage
	Repo *persistence.Repository

	// Change notifications
	Events *events.Bus

	// State
	Board *board.Store
	Theme *theme.Store

	logger *slog.Logger
}

// New creates a new App with all stores initialized.
// This is the single entry point for creating the application container.
// The board is restored from storage, or seeded from cfg.Board when absent.
func New(ctx context.Context, cfg *config.Config, opts ...Option) (*App, error) {
	if cfg == nil {
		cfg = config.Default()
	}

	o := &appConfig{logger: slog.Default()}
	for _, opt := range opts {
		opt(o)
	}

	store := o.store
	if store == nil {
		var err error
		store, err = storage.Open(ctx, cfg.Storage)
		if err != nil {
			return nil, fmt.Errorf("open storage: %w", err)
		}
	}

	bus := events.NewBus()
	var publisher events.Publisher = bus
	if o.publisher != nil {
		publisher = fanout{bus, o.publisher}
	}

	repo := persistence.NewRepository(store,
		persistence.WithKeys(cfg.Storage.BoardKey, cfg.Storage.ThemeKey),
		persistence.WithTimeout(cfg.Storage.Timeout),
		persistence.WithLogger(o.logger),
	)

	initial := repo.LoadBoard(func() models.Board {
		return models.DefaultBoard(cfg.Board.Title, cfg.Board.Columns...)
	})

	boardOpts := []board.Option{
		board.WithSaver(repo),
		board.WithLogger(o.logger),
		board.WithPublisher(publisher),
	}
	if o.now != nil {
		boardOpts = append(boardOpts, board.WithClock(o.now))
	}

	themeOpts := []theme.Option{
		theme.WithLogger(o.logger),
		theme.WithPublisher(publisher),
	}
	if o.applier != nil {
		themeOpts = append(themeOpts, theme.WithApplier(o.applier))
	}

	a := &App{
		Config:  cfg,
		storage: store,
		Repo:    repo,
		Events:  bus,
		Board:   board.NewStore(initial, boardOpts...),
		Theme:   theme.NewStore(repo, themeOpts...),
		logger:  o.logger,
	}
	a.logger.Debug("app initialized",
		"backend", cfg.Storage.Backend,
		"columns", len(initial.Columns),
		"cards", initial.CardCount(),
	)
	return a, nil
}

// Context returns ctx carrying the board store
func (a *App) Context(ctx context.Context) context.Context {
	return board.NewContext(ctx, a.Board)
}

// Close releases the storage backend
func (a *App) Close() error {
	if err := a.storage.Close(); err != nil {
		return fmt.Errorf("close storage: %w", err)
	}
	return nil
}

// fanout delivers every event to several publishers in order
type fanout []events.Publisher

func (f fanout) Publish(e events.Event) {
	for _, p := range f {
		p.Publish(e)
	}
}
