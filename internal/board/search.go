package board

import (
	"github.com/sahilm/fuzzy"
	"github.com/thenoetrevino/kanban/internal/models"
)

// boardCards lists the cards of a board in column order
type boardCards []models.Card

func (c boardCards) String(i int) string { return c[i].Title }
func (c boardCards) Len() int            { return len(c) }

func orderedCards(b models.Board) boardCards {
	out := make(boardCards, 0, len(b.Cards))
	for _, col := range b.Columns {
		out = append(out, b.CardsIn(col.ID)...)
	}
	return out
}

// Search returns the cards of b whose titles fuzzy-match query, best first.
// A limit of zero or less returns every match.
func Search(b models.Board, query string, limit int) []models.Card {
	cards := orderedCards(b)
	matches := fuzzy.FindFrom(query, cards)
	if limit > 0 && len(matches) > limit {
		matches = matches[:limit]
	}
	out := make([]models.Card, len(matches))
	for i, m := range matches {
		out[i] = cards[m.Index]
	}
	return out
}
