package board

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"sync"
	"testing"
	"time"

	"github.com/thenoetrevino/kanban/internal/models"
	"github.com/thenoetrevino/kanban/internal/types"
)

var testEpoch = time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)

// testEnv returns an Env with sequential ids and a clock that advances one
// second per call
func testEnv() Env {
	var (
		mu   sync.Mutex
		next int
		tick int
	)
	return Env{
		Now: func() time.Time {
			mu.Lock()
			defer mu.Unlock()
			tick++
			return testEpoch.Add(time.Duration(tick) * time.Second)
		},
		NewID: func() string {
			mu.Lock()
			defer mu.Unlock()
			next++
			return fmt.Sprintf("id-%d", next)
		},
	}
}

// fixtureBoard has columns todo, doing and done; todo holds c1, c2, c3
func fixtureBoard() models.Board {
	b := models.Board{
		ID:    "b1",
		Title: "Test Board",
		Columns: []models.Column{
			{ID: "todo", Title: "To Do", CardIDs: []types.CardID{"c1", "c2", "c3"}},
			{ID: "doing", Title: "In Progress", CardIDs: []types.CardID{}},
			{ID: "done", Title: "Done", CardIDs: []types.CardID{}},
		},
		Cards: map[types.CardID]models.Card{},
	}
	for _, id := range []types.CardID{"c1", "c2", "c3"} {
		b.Cards[id] = models.Card{ID: id, Title: "Card " + string(id), CreatedAt: testEpoch, UpdatedAt: testEpoch}
	}
	return b
}

func quietLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func newTestStore(t *testing.T, initial models.Board, opts ...Option) *Store {
	t.Helper()
	env := testEnv()
	base := []Option{WithLogger(quietLogger()), WithClock(env.Now), WithIDGenerator(env.NewID)}
	return NewStore(initial, append(base, opts...)...)
}

func mustValidate(t *testing.T, b models.Board) {
	t.Helper()
	if err := models.Validate(b); err != nil {
		t.Fatalf("board invariants violated: %v", err)
	}
}

func cardIDs(t *testing.T, b models.Board, columnID types.ColumnID) []types.CardID {
	t.Helper()
	col, ok := b.Column(columnID)
	if !ok {
		t.Fatalf("column %s not found", columnID)
	}
	return col.CardIDs
}

// recordingSaver captures saved snapshots and can be told to fail
type recordingSaver struct {
	mu    sync.Mutex
	saved []models.Board
	err   error
}

func (r *recordingSaver) SaveBoard(b models.Board) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.err != nil {
		return r.err
	}
	r.saved = append(r.saved, b)
	return nil
}

func (r *recordingSaver) count() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.saved)
}

func (r *recordingSaver) last() models.Board {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.saved[len(r.saved)-1]
}

var errQuota = errors.New("quota exceeded")
