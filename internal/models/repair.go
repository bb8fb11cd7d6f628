package models

import (
	"fmt"

	"github.com/thenoetrevino/kanban/internal/types"
)

// Repair fixes the card-level damage a stored board can carry: ids that point
// at missing cards, repeated references, cards no column shows, cards keyed
// under a different id and unknown priorities. It returns the fixed copy and
// one description per fix. Column-level damage such as duplicate column ids is
// left for Validate to report.
func Repair(b Board) (Board, []string) {
	out := b.Clone()
	var fixes []string

	seen := make(map[types.CardID]types.ColumnID, len(out.Cards))
	for i := range out.Columns {
		col := &out.Columns[i]
		kept := col.CardIDs[:0]
		for _, id := range col.CardIDs {
			if _, ok := out.Cards[id]; !ok {
				fixes = append(fixes, fmt.Sprintf("dropped dangling card id %s from column %s", id, col.ID))
				continue
			}
			if prev, dup := seen[id]; dup {
				fixes = append(fixes, fmt.Sprintf("dropped repeated card id %s from column %s (kept in %s)", id, col.ID, prev))
				continue
			}
			seen[id] = col.ID
			kept = append(kept, id)
		}
		col.CardIDs = kept
	}

	for id, card := range out.Cards {
		if _, ok := seen[id]; !ok {
			delete(out.Cards, id)
			fixes = append(fixes, fmt.Sprintf("dropped card %s not shown in any column", id))
			continue
		}
		if card.ID != id {
			fixes = append(fixes, fmt.Sprintf("card stored under %s had id %s", id, card.ID))
			card.ID = id
		}
		if !card.Priority.Valid() {
			fixes = append(fixes, fmt.Sprintf("cleared unknown priority %q on card %s", card.Priority, id))
			card.Priority = types.PriorityNone
		}
		out.Cards[id] = card
	}

	return out, fixes
}
