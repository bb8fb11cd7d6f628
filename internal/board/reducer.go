package board

import (
	"fmt"
	"slices"
	"time"

	"github.com/google/uuid"
	"github.com/thenoetrevino/kanban/internal/models"
	"github.com/thenoetrevino/kanban/internal/types"
)

// Env supplies the non-deterministic inputs of the reducer
type Env struct {
	Now   func() time.Time
	NewID func() string
}

// DefaultEnv uses the wall clock and random UUIDs
func DefaultEnv() Env {
	return Env{Now: time.Now, NewID: uuid.NewString}
}

func (e Env) now() time.Time {
	if e.Now == nil {
		return time.Now()
	}
	return e.Now()
}

func (e Env) newID() string {
	if e.NewID == nil {
		return uuid.NewString()
	}
	return e.NewID()
}

// Reduce applies a to b and returns the next board. changed is false when the
// action referenced something that does not exist; the returned board is then
// b itself. b is never modified.
func Reduce(b models.Board, a Action, env Env) (next models.Board, changed bool) {
	switch a := a.(type) {
	case AddColumn:
		next = b.Clone()
		next.Columns = append(next.Columns, models.Column{
			ID:      types.ColumnID(env.newID()),
			Title:   a.Title,
			CardIDs: []types.CardID{},
		})
		return next, true

	case UpdateColumn:
		i := b.ColumnIndex(a.ColumnID)
		if i < 0 {
			return b, false
		}
		next = b.Clone()
		next.Columns[i].Title = a.Title
		return next, true

	case DeleteColumn:
		i := b.ColumnIndex(a.ColumnID)
		if i < 0 {
			return b, false
		}
		next = b.Clone()
		for _, id := range next.Columns[i].CardIDs {
			delete(next.Cards, id)
		}
		next.Columns = slices.Delete(next.Columns, i, i+1)
		return next, true

	case AddCard:
		i := b.ColumnIndex(a.ColumnID)
		if i < 0 {
			return b, false
		}
		next = b.Clone()
		now := env.now()
		id := types.CardID(env.newID())
		next.Cards[id] = models.Card{
			ID:          id,
			Title:       a.Title,
			Description: a.Description,
			CreatedAt:   now,
			UpdatedAt:   now,
		}
		next.Columns[i].CardIDs = append(next.Columns[i].CardIDs, id)
		return next, true

	case UpdateCard:
		card, ok := b.Cards[a.CardID]
		if !ok {
			return b, false
		}
		next = b.Clone()
		card = a.Update.Apply(card.Clone())
		card.UpdatedAt = env.now()
		next.Cards[a.CardID] = card
		return next, true

	case DeleteCard:
		return deleteCard(b, a)

	case MoveCard:
		return moveCard(b, a)

	case ReorderCards:
		i := b.ColumnIndex(a.ColumnID)
		if i < 0 {
			return b, false
		}
		next = b.Clone()
		next.Columns[i].CardIDs = slices.Clone(a.CardIDs)
		if next.Columns[i].CardIDs == nil {
			next.Columns[i].CardIDs = []types.CardID{}
		}
		return next, true

	case ReorderColumns:
		next = b.Clone()
		next.Columns = make([]models.Column, len(a.Columns))
		for i, c := range a.Columns {
			next.Columns[i] = c.Clone()
		}
		return next, true

	case SetBoard:
		return a.Board.Clone(), true

	default:
		panic(fmt.Sprintf("board: unknown action %T", a))
	}
}

func deleteCard(b models.Board, a DeleteCard) (models.Board, bool) {
	if _, ok := b.Cards[a.CardID]; !ok {
		return b, false
	}
	next := b.Clone()
	delete(next.Cards, a.CardID)

	for i := range next.Columns {
		if next.Columns[i].ID != a.ColumnID && !next.Columns[i].Contains(a.CardID) {
			continue
		}
		next.Columns[i].CardIDs = slices.DeleteFunc(next.Columns[i].CardIDs, func(id types.CardID) bool {
			return id == a.CardID
		})
	}
	return next, true
}

func moveCard(b models.Board, a MoveCard) (models.Board, bool) {
	if _, ok := b.Cards[a.CardID]; !ok {
		return b, false
	}
	from, to := b.ColumnIndex(a.From), b.ColumnIndex(a.To)
	if from < 0 || to < 0 {
		return b, false
	}
	pos := b.Columns[from].IndexOf(a.CardID)
	if pos < 0 {
		return b, false
	}

	next := b.Clone()
	next.Columns[from].CardIDs = slices.Delete(next.Columns[from].CardIDs, pos, pos+1)

	dest := next.Columns[to].CardIDs
	index := max(0, min(a.Index, len(dest)))
	next.Columns[to].CardIDs = slices.Insert(dest, index, a.CardID)
	return next, true
}
