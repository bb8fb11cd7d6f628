package persistence

import (
	"encoding/json"
	"errors"
	"fmt"

	"github.com/thenoetrevino/kanban/internal/models"
	"github.com/thenoetrevino/kanban/internal/types"
)

// ErrInvalidSnapshot wraps every reason a stored board is rejected
var ErrInvalidSnapshot = errors.New("invalid board snapshot")

// EncodeBoard serializes a board as JSON with ISO-8601 timestamps
func EncodeBoard(board models.Board) ([]byte, error) {
	data, err := json.Marshal(board)
	if err != nil {
		return nil, fmt.Errorf("encode board: %w", err)
	}
	return data, nil
}

// DecodeBoard parses a JSON snapshot and checks it against the board
// invariants. Timestamps are parsed back into time values.
func DecodeBoard(data []byte) (models.Board, error) {
	board, err := parseBoard(data)
	if err != nil {
		return models.Board{}, err
	}
	if err := models.Validate(board); err != nil {
		return models.Board{}, fmt.Errorf("%w: %w", ErrInvalidSnapshot, err)
	}
	return board, nil
}

// RepairBoard parses a JSON snapshot, fixes card-level damage with
// models.Repair and validates the result. fixes describes each repair.
func RepairBoard(data []byte) (board models.Board, fixes []string, err error) {
	board, err = parseBoard(data)
	if err != nil {
		return models.Board{}, nil, err
	}
	board, fixes = models.Repair(board)
	if err := models.Validate(board); err != nil {
		return models.Board{}, fixes, fmt.Errorf("%w: %w", ErrInvalidSnapshot, err)
	}
	return board, fixes, nil
}

func parseBoard(data []byte) (models.Board, error) {
	var board models.Board
	if err := json.Unmarshal(data, &board); err != nil {
		return models.Board{}, fmt.Errorf("%w: %w", ErrInvalidSnapshot, err)
	}
	if board.Cards == nil {
		return models.Board{}, fmt.Errorf("%w: missing cards", ErrInvalidSnapshot)
	}
	for i := range board.Columns {
		if board.Columns[i].CardIDs == nil {
			board.Columns[i].CardIDs = []types.CardID{}
		}
	}
	return board, nil
}
