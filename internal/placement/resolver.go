// Package placement turns the hover events of a drag gesture into board
// mutations. Every hover is applied immediately, so dropping or cancelling a
// gesture never needs a rollback.
package placement

import (
	"slices"
	"sync"

	"github.com/thenoetrevino/kanban/internal/models"
	"github.com/thenoetrevino/kanban/internal/types"
)

// TargetType is the kind of element under the pointer
type TargetType int

const (
	TargetNone TargetType = iota
	TargetCard
	TargetColumn
)

// ParseTargetType maps "card" and "column" to their TargetType; anything else
// is TargetNone
func ParseTargetType(s string) TargetType {
	switch s {
	case "card":
		return TargetCard
	case "column":
		return TargetColumn
	default:
		return TargetNone
	}
}

func (t TargetType) String() string {
	switch t {
	case TargetCard:
		return "card"
	case TargetColumn:
		return "column"
	default:
		return "none"
	}
}

// Hover describes the element currently under the dragged card. For card
// targets ColumnID is the hovered card's column as the UI saw it; the board
// is consulted for the authoritative owner.
type Hover struct {
	ID       string
	Type     TargetType
	ColumnID types.ColumnID
}

// Outcome reports what a hover did to the board
type Outcome int

const (
	OutcomeNone Outcome = iota
	OutcomeReorder
	OutcomeMove
)

func (o Outcome) String() string {
	switch o {
	case OutcomeReorder:
		return "reorder"
	case OutcomeMove:
		return "move"
	default:
		return "none"
	}
}

// BoardMutator is the part of the board store the resolver drives
type BoardMutator interface {
	Board() models.Board
	MoveCard(id types.CardID, from, to types.ColumnID, index int)
	ReorderCards(columnID types.ColumnID, ids []types.CardID)
}

// Resolver tracks one drag gesture at a time
type Resolver struct {
	board BoardMutator

	mu     sync.Mutex
	active types.CardID
	column types.ColumnID
}

// NewResolver creates a resolver that applies mutations to b
func NewResolver(b BoardMutator) *Resolver {
	if b == nil {
		panic("placement.NewResolver: board is nil")
	}
	return &Resolver{board: b}
}

// Start begins a gesture for cardID. Unknown cards are ignored.
func (r *Resolver) Start(cardID types.CardID, columnID types.ColumnID) {
	b := r.board.Board()
	if _, ok := b.Card(cardID); !ok {
		return
	}
	if owner, ok := b.ColumnOf(cardID); ok {
		columnID = owner
	}

	r.mu.Lock()
	defer r.mu.Unlock()
	r.active = cardID
	r.column = columnID
}

// Active returns the dragged card and the column it currently sits in
func (r *Resolver) Active() (types.CardID, types.ColumnID, bool) {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.active, r.column, r.active != ""
}

// End finishes the gesture. The board is left as the last hover made it.
func (r *Resolver) End() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.active = ""
	r.column = ""
}

// Over applies a hover event. A nil hover, an unknown target type, or a
// target that is no longer on the board does nothing.
func (r *Resolver) Over(h *Hover) Outcome {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.active == "" || h == nil {
		return OutcomeNone
	}

	b := r.board.Board()
	current, ok := b.ColumnOf(r.active)
	if !ok {
		r.active, r.column = "", ""
		return OutcomeNone
	}
	r.column = current

	switch h.Type {
	case TargetColumn:
		return r.overColumn(b, types.ColumnID(h.ID))
	case TargetCard:
		return r.overCard(b, types.CardID(h.ID))
	default:
		return OutcomeNone
	}
}

func (r *Resolver) overColumn(b models.Board, target types.ColumnID) Outcome {
	if target == r.column {
		return OutcomeNone
	}
	col, ok := b.Column(target)
	if !ok {
		return OutcomeNone
	}
	r.board.MoveCard(r.active, r.column, target, len(col.CardIDs))
	r.column = target
	return OutcomeMove
}

func (r *Resolver) overCard(b models.Board, target types.CardID) Outcome {
	if target == r.active {
		return OutcomeNone
	}
	targetColumn, ok := b.ColumnOf(target)
	if !ok {
		return OutcomeNone
	}
	col, _ := b.Column(targetColumn)
	to := col.IndexOf(target)

	if targetColumn == r.column {
		from := col.IndexOf(r.active)
		r.board.ReorderCards(targetColumn, MoveIndex(col.CardIDs, from, to))
		return OutcomeReorder
	}

	r.board.MoveCard(r.active, r.column, targetColumn, to)
	r.column = targetColumn
	return OutcomeMove
}

// MoveIndex returns a copy of ids with the element at from moved to to.
// Out-of-range indexes are clamped.
func MoveIndex[T any](ids []T, from, to int) []T {
	out := slices.Clone(ids)
	if len(out) == 0 {
		return out
	}
	from = max(0, min(from, len(out)-1))
	to = max(0, min(to, len(out)-1))
	if from == to {
		return out
	}
	item := out[from]
	out = slices.Delete(out, from, from+1)
	return slices.Insert(out, to, item)
}
