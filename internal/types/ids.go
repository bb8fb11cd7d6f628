package types

import (
	"errors"
	"strings"
)

// ID types give the string identifiers of the board model distinct types so a
// card id cannot be passed where a column id is expected.

// BoardID identifies the board document
type BoardID string

// ColumnID identifies a column within the board
type ColumnID string

// CardID identifies a card within the board
type CardID string

func (id BoardID) String() string {
	return string(id)
}

func (id ColumnID) String() string {
	return string(id)
}

func (id CardID) String() string {
	return string(id)
}

// Priority is the optional urgency of a card. The zero value means unset.
type Priority string

const (
	PriorityNone   Priority = ""
	PriorityLow    Priority = "low"
	PriorityMedium Priority = "medium"
	PriorityHigh   Priority = "high"
)

// ErrInvalidPriority is returned by ParsePriority for unknown values
var ErrInvalidPriority = errors.New("priority must be one of: low, medium, high")

// ParsePriority maps user input to a Priority. An empty string clears it.
func ParsePriority(s string) (Priority, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "":
		return PriorityNone, nil
	case "low":
		return PriorityLow, nil
	case "medium":
		return PriorityMedium, nil
	case "high":
		return PriorityHigh, nil
	}
	return PriorityNone, ErrInvalidPriority
}

// Valid reports whether p is unset or one of the known levels
func (p Priority) Valid() bool {
	switch p {
	case PriorityNone, PriorityLow, PriorityMedium, PriorityHigh:
		return true
	}
	return false
}
