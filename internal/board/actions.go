package board

import (
	"github.com/thenoetrevino/kanban/internal/models"
	"github.com/thenoetrevino/kanban/internal/types"
)

// Action kinds, used in logs and change events
const (
	KindAddColumn      = "add_column"
	KindUpdateColumn   = "update_column"
	KindDeleteColumn   = "delete_column"
	KindAddCard        = "add_card"
	KindUpdateCard     = "update_card"
	KindDeleteCard     = "delete_card"
	KindMoveCard       = "move_card"
	KindReorderCards   = "reorder_cards"
	KindReorderColumns = "reorder_columns"
	KindSetBoard       = "set_board"
)

// Action is a board mutation. The set of actions is closed; only the types in
// this file implement it.
type Action interface {
	Kind() string
	action()
}

// AddColumn appends an empty column
type AddColumn struct {
	Title string
}

// UpdateColumn renames a column
type UpdateColumn struct {
	ColumnID types.ColumnID
	Title    string
}

// DeleteColumn removes a column and every card in it
type DeleteColumn struct {
	ColumnID types.ColumnID
}

// AddCard appends a new card to the end of a column
type AddCard struct {
	ColumnID    types.ColumnID
	Title       string
	Description string
}

// UpdateCard merges the non-nil fields of Update into a card
type UpdateCard struct {
	CardID types.CardID
	Update models.CardUpdate
}

// DeleteCard removes a card from the board
type DeleteCard struct {
	CardID   types.CardID
	ColumnID types.ColumnID
}

// MoveCard moves a card to Index within the destination column
type MoveCard struct {
	CardID types.CardID
	From   types.ColumnID
	To     types.ColumnID
	Index  int
}

// ReorderCards replaces a column's card order
type ReorderCards struct {
	ColumnID types.ColumnID
	CardIDs  []types.CardID
}

// ReorderColumns replaces the column collection
type ReorderColumns struct {
	Columns []models.Column
}

// SetBoard replaces the whole board
type SetBoard struct {
	Board models.Board
}

func (AddColumn) Kind() string      { return KindAddColumn }
func (UpdateColumn) Kind() string   { return KindUpdateColumn }
func (DeleteColumn) Kind() string   { return KindDeleteColumn }
func (AddCard) Kind() string        { return KindAddCard }
func (UpdateCard) Kind() string     { return KindUpdateCard }
func (DeleteCard) Kind() string     { return KindDeleteCard }
func (MoveCard) Kind() string       { return KindMoveCard }
func (ReorderCards) Kind() string   { return KindReorderCards }
func (ReorderColumns) Kind() string { return KindReorderColumns }
func (SetBoard) Kind() string       { return KindSetBoard }

func (AddColumn) action()      {}
func (UpdateColumn) action()   {}
func (DeleteColumn) action()   {}
func (AddCard) action()        {}
func (UpdateCard) action()     {}
func (DeleteCard) action()     {}
func (MoveCard) action()       {}
func (ReorderCards) action()   {}
func (ReorderColumns) action() {}
func (SetBoard) action()       {}
