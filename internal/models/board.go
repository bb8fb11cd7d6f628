package models

import (
	"maps"

	"github.com/google/uuid"
	"github.com/thenoetrevino/kanban/internal/types"
)

// DefaultBoardTitle is the title of a freshly seeded board
const DefaultBoardTitle = "My Kanban Board"

// DefaultColumnTitles are the columns seeded into a fresh board
var DefaultColumnTitles = []string{"To Do", "In Progress", "Done"}

// Board is the whole kanban document.
// Columns are ordered left to right; Cards is the single source of truth for
// card content, keyed by card id.
type Board struct {
	ID      types.BoardID         `json:"id"`
	Title   string                `json:"title"`
	Columns []Column              `json:"columns"`
	Cards   map[types.CardID]Card `json:"cards"`
}

// DefaultBoard builds a fresh board with new ids and empty columns.
// With no column titles the DefaultColumnTitles are used.
func DefaultBoard(title string, columnTitles ...string) Board {
	if title == "" {
		title = DefaultBoardTitle
	}
	if len(columnTitles) == 0 {
		columnTitles = DefaultColumnTitles
	}

	b := Board{
		ID:      types.BoardID(uuid.NewString()),
		Title:   title,
		Columns: make([]Column, 0, len(columnTitles)),
		Cards:   map[types.CardID]Card{},
	}
	for _, t := range columnTitles {
		b.Columns = append(b.Columns, Column{
			ID:      types.ColumnID(uuid.NewString()),
			Title:   t,
			CardIDs: []types.CardID{},
		})
	}
	return b
}

// Clone deep-copies the board so the copy can be changed without affecting b
func (b Board) Clone() Board {
	out := Board{
		ID:      b.ID,
		Title:   b.Title,
		Columns: make([]Column, len(b.Columns)),
		Cards:   make(map[types.CardID]Card, len(b.Cards)),
	}
	for i, c := range b.Columns {
		out.Columns[i] = c.Clone()
	}
	for id, card := range b.Cards {
		out.Cards[id] = card.Clone()
	}
	return out
}

// ColumnIndex returns the position of the column with id, or -1
func (b Board) ColumnIndex(id types.ColumnID) int {
	for i, c := range b.Columns {
		if c.ID == id {
			return i
		}
	}
	return -1
}

// Column looks up a column by id
func (b Board) Column(id types.ColumnID) (Column, bool) {
	i := b.ColumnIndex(id)
	if i < 0 {
		return Column{}, false
	}
	return b.Columns[i], true
}

// ColumnOf returns the id of the column referencing cardID
func (b Board) ColumnOf(cardID types.CardID) (types.ColumnID, bool) {
	for _, c := range b.Columns {
		if c.Contains(cardID) {
			return c.ID, true
		}
	}
	return "", false
}

// Card looks up a card by id
func (b Board) Card(id types.CardID) (Card, bool) {
	c, ok := b.Cards[id]
	return c, ok
}

// CardCount is the total number of card references across all columns
func (b Board) CardCount() int {
	n := 0
	for _, c := range b.Columns {
		n += len(c.CardIDs)
	}
	return n
}

// CardsIn returns the cards of a column in display order
func (b Board) CardsIn(columnID types.ColumnID) []Card {
	col, ok := b.Column(columnID)
	if !ok {
		return nil
	}
	out := make([]Card, 0, len(col.CardIDs))
	for _, id := range col.CardIDs {
		if card, ok := b.Cards[id]; ok {
			out = append(out, card)
		}
	}
	return out
}

// Equal reports deep equality of two boards, ignoring nil-vs-empty slices
func (b Board) Equal(other Board) bool {
	if b.ID != other.ID || b.Title != other.Title || len(b.Columns) != len(other.Columns) {
		return false
	}
	for i := range b.Columns {
		x, y := b.Columns[i], other.Columns[i]
		if x.ID != y.ID || x.Title != y.Title || len(x.CardIDs) != len(y.CardIDs) {
			return false
		}
		for j := range x.CardIDs {
			if x.CardIDs[j] != y.CardIDs[j] {
				return false
			}
		}
	}
	return maps.EqualFunc(b.Cards, other.Cards, cardsEqual)
}

func cardsEqual(x, y Card) bool {
	if x.ID != y.ID || x.Title != y.Title || x.Description != y.Description || x.Priority != y.Priority {
		return false
	}
	if !x.CreatedAt.Equal(y.CreatedAt) || !x.UpdatedAt.Equal(y.UpdatedAt) {
		return false
	}
	if len(x.Tags) != len(y.Tags) {
		return false
	}
	for i := range x.Tags {
		if x.Tags[i] != y.Tags[i] {
			return false
		}
	}
	return true
}
