package events

import "time"

// EventType indicates what kind of change occurred
type EventType string

const (
	EventBoardChanged EventType = "board_changed"
	EventThemeChanged EventType = "theme_changed"
)

// Event is a change notification emitted after a mutation has been applied
// and persisted.
type Event struct {
	Type       EventType
	Action     string    // Action kind for board events, new theme for theme events
	Timestamp  time.Time // When the event occurred
	SequenceID int64     // Monotonically increasing sequence number for ordering
}
