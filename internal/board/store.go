// Package board holds the single source of truth for the kanban board: a pure
// reducer over a closed set of actions, and a Store that applies them,
// persists the result and notifies subscribers.
package board

import (
	"log/slog"
	"sync"
	"time"

	"github.com/thenoetrevino/kanban/internal/events"
	"github.com/thenoetrevino/kanban/internal/models"
	"github.com/thenoetrevino/kanban/internal/types"
)

// Saver persists a board snapshot. *persistence.Repository satisfies it.
type Saver interface {
	SaveBoard(board models.Board) error
}

// Store owns the current board. All mutations go through Dispatch, directly
// or via the convenience methods.
type Store struct {
	mu        sync.Mutex
	ready     bool
	board     models.Board
	env       Env
	saver     Saver
	publisher events.Publisher
	logger    *slog.Logger

	subMu   sync.Mutex
	nextSub int
	subs    map[int]func(models.Board)
}

// Option configures a Store
type Option func(*Store)

// WithSaver persists every applied change through s
func WithSaver(s Saver) Option {
	return func(st *Store) {
		st.saver = s
	}
}

// WithLogger sets the logger for persistence warnings
func WithLogger(logger *slog.Logger) Option {
	return func(st *Store) {
		if logger != nil {
			st.logger = logger
		}
	}
}

// WithClock overrides the timestamp source
func WithClock(now func() time.Time) Option {
	return func(st *Store) {
		if now != nil {
			st.env.Now = now
		}
	}
}

// WithIDGenerator overrides the id source for new columns and cards
func WithIDGenerator(gen func() string) Option {
	return func(st *Store) {
		if gen != nil {
			st.env.NewID = gen
		}
	}
}

// WithPublisher sends a board_changed event after every applied change
func WithPublisher(p events.Publisher) Option {
	return func(st *Store) {
		st.publisher = p
	}
}

// NewStore creates a store seeded with a copy of initial
func NewStore(initial models.Board, opts ...Option) *Store {
	s := &Store{
		ready:  true,
		board:  initial.Clone(),
		env:    DefaultEnv(),
		logger: slog.Default(),
		subs:   make(map[int]func(models.Board)),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

func (s *Store) mustReady() {
	if s == nil || !s.ready {
		panic("board: Store used before NewStore")
	}
}

// Board returns a copy of the current board
func (s *Store) Board() models.Board {
	s.mustReady()
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.board.Clone()
}

// Dispatch applies a. When the action changed the board the new snapshot is
// saved, subscribers are notified and a change event is published. A failed
// save is logged; the in-memory state still advances.
func (s *Store) Dispatch(a Action) {
	s.apply(a)
}

func (s *Store) apply(a Action) (models.Board, bool) {
	s.mustReady()

	s.mu.Lock()
	next, changed := Reduce(s.board, a, s.env)
	if !changed {
		s.mu.Unlock()
		s.logger.Debug("board action had no effect", "action", a.Kind())
		return models.Board{}, false
	}
	s.board = next
	if s.saver != nil {
		if err := s.saver.SaveBoard(next); err != nil {
			s.logger.Warn("Failed to persist board", "action", a.Kind(), "error", err)
		}
	}
	snapshot := next.Clone()
	s.mu.Unlock()

	s.notify(snapshot)
	if s.publisher != nil {
		s.publisher.Publish(events.Event{Type: events.EventBoardChanged, Action: a.Kind()})
	}
	return snapshot, true
}

// Subscribe registers fn to receive a copy of the board after every applied
// change. The returned function removes the subscription.
func (s *Store) Subscribe(fn func(models.Board)) (unsubscribe func()) {
	s.mustReady()
	s.subMu.Lock()
	defer s.subMu.Unlock()

	id := s.nextSub
	s.nextSub++
	s.subs[id] = fn

	return func() {
		s.subMu.Lock()
		defer s.subMu.Unlock()
		delete(s.subs, id)
	}
}

func (s *Store) notify(b models.Board) {
	s.subMu.Lock()
	fns := make([]func(models.Board), 0, len(s.subs))
	for _, fn := range s.subs {
		fns = append(fns, fn)
	}
	s.subMu.Unlock()

	for _, fn := range fns {
		fn(b)
	}
}

// AddColumn appends an empty column and returns its id
func (s *Store) AddColumn(title string) types.ColumnID {
	next, _ := s.apply(AddColumn{Title: title})
	return next.Columns[len(next.Columns)-1].ID
}

// UpdateColumn renames a column; unknown ids are ignored
func (s *Store) UpdateColumn(id types.ColumnID, title string) {
	s.Dispatch(UpdateColumn{ColumnID: id, Title: title})
}

// DeleteColumn removes a column and its cards; unknown ids are ignored
func (s *Store) DeleteColumn(id types.ColumnID) {
	s.Dispatch(DeleteColumn{ColumnID: id})
}

// AddCard appends a card to columnID. ok is false when the column does not exist.
func (s *Store) AddCard(columnID types.ColumnID, title, description string) (id types.CardID, ok bool) {
	next, changed := s.apply(AddCard{ColumnID: columnID, Title: title, Description: description})
	if !changed {
		return "", false
	}
	col, _ := next.Column(columnID)
	return col.CardIDs[len(col.CardIDs)-1], true
}

// UpdateCard merges update into a card and bumps its UpdatedAt
func (s *Store) UpdateCard(id types.CardID, update models.CardUpdate) {
	s.Dispatch(UpdateCard{CardID: id, Update: update})
}

// DeleteCard removes a card
func (s *Store) DeleteCard(id types.CardID, columnID types.ColumnID) {
	s.Dispatch(DeleteCard{CardID: id, ColumnID: columnID})
}

// MoveCard moves a card to index in column to; index is clamped
func (s *Store) MoveCard(id types.CardID, from, to types.ColumnID, index int) {
	s.Dispatch(MoveCard{CardID: id, From: from, To: to, Index: index})
}

// ReorderCards replaces a column's card order
func (s *Store) ReorderCards(columnID types.ColumnID, ids []types.CardID) {
	s.Dispatch(ReorderCards{ColumnID: columnID, CardIDs: ids})
}

// ReorderColumns replaces the column collection
func (s *Store) ReorderColumns(columns []models.Column) {
	s.Dispatch(ReorderColumns{Columns: columns})
}

// SetBoard replaces the whole board
func (s *Store) SetBoard(b models.Board) {
	s.Dispatch(SetBoard{Board: b})
}
