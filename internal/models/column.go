package models

import (
	"encoding/json"
	"slices"

	"github.com/thenoetrevino/kanban/internal/types"
)

// Column is a named, ordered bucket of card ids.
// The order of CardIDs is the display (and priority) order of the column.
type Column struct {
	ID      types.ColumnID `json:"id"`
	Title   string         `json:"title"`
	CardIDs []types.CardID `json:"cardIds"`
}

// IndexOf returns the position of id in the column, or -1
func (c Column) IndexOf(id types.CardID) int {
	return slices.Index(c.CardIDs, id)
}

// Contains reports whether the column references id
func (c Column) Contains(id types.CardID) bool {
	return c.IndexOf(id) >= 0
}

// Clone returns a copy that does not share the CardIDs backing array
func (c Column) Clone() Column {
	c.CardIDs = slices.Clone(c.CardIDs)
	if c.CardIDs == nil {
		c.CardIDs = []types.CardID{}
	}
	return c
}

// MarshalJSON always writes cardIds as an array, never null
func (c Column) MarshalJSON() ([]byte, error) {
	type alias Column
	if c.CardIDs == nil {
		c.CardIDs = []types.CardID{}
	}
	return json.Marshal(alias(c))
}
