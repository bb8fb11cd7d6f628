package models

import (
	"errors"
	"fmt"

	"github.com/thenoetrevino/kanban/internal/types"
)

// Invariant violations reported by Validate
var (
	ErrNilCards        = errors.New("board has no card table")
	ErrDuplicateColumn = errors.New("duplicate column id")
	ErrDanglingCard    = errors.New("column references a card that does not exist")
	ErrDuplicateCard   = errors.New("card referenced more than once")
	ErrOrphanCard      = errors.New("card not referenced by any column")
	ErrCardIDMismatch  = errors.New("card stored under a different id")
)

// Validate checks the structural invariants of a board: every referenced card
// exists, every card is referenced by exactly one column exactly once, column
// ids are unique and priorities are known levels. All violations are joined
// into the returned error.
func Validate(b Board) error {
	if b.Cards == nil {
		return ErrNilCards
	}

	var errs []error
	columns := make(map[types.ColumnID]struct{}, len(b.Columns))
	seen := make(map[types.CardID]types.ColumnID, len(b.Cards))

	for _, col := range b.Columns {
		if _, dup := columns[col.ID]; dup {
			errs = append(errs, fmt.Errorf("%w: %s", ErrDuplicateColumn, col.ID))
		}
		columns[col.ID] = struct{}{}

		for _, id := range col.CardIDs {
			if _, ok := b.Cards[id]; !ok {
				errs = append(errs, fmt.Errorf("%w: %s in column %s", ErrDanglingCard, id, col.ID))
			}
			if prev, dup := seen[id]; dup {
				errs = append(errs, fmt.Errorf("%w: %s in columns %s and %s", ErrDuplicateCard, id, prev, col.ID))
			}
			seen[id] = col.ID
		}
	}

	for id, card := range b.Cards {
		if card.ID != id {
			errs = append(errs, fmt.Errorf("%w: key %s, card %s", ErrCardIDMismatch, id, card.ID))
		}
		if _, ok := seen[id]; !ok {
			errs = append(errs, fmt.Errorf("%w: %s", ErrOrphanCard, id))
		}
		if !card.Priority.Valid() {
			errs = append(errs, fmt.Errorf("%w: card %s has %q", types.ErrInvalidPriority, id, card.Priority))
		}
	}

	return errors.Join(errs...)
}
