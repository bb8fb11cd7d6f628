package tui

import (
	tea "charm.land/bubbletea/v2"
	"github.com/thenoetrevino/kanban/internal/models"
	"github.com/thenoetrevino/kanban/internal/placement"
	"github.com/thenoetrevino/kanban/internal/tui/state"
	"github.com/thenoetrevino/kanban/internal/types"
)

// handleDragMode carries the grabbed card. Every step is a hover event for
// the placement resolver, which moves or reorders as the pointer would.
func (m Model) handleDragMode(msg tea.KeyPressMsg) {
	cardID, columnID, ok := m.Resolver.Active()
	if !ok {
		m.UIState.SetMode(state.NormalMode)
		return
	}
	km := m.Keys
	b := m.snapshot()

	var hover *placement.Hover
	switch msg.String() {
	case "enter", "esc", km.GrabCard:
		m.Resolver.End()
		m.UIState.SetMode(state.NormalMode)
		m.followCard(b, cardID)
		return
	case km.PrevColumn, "left":
		hover = m.hoverAcross(b, columnID, -1)
	case km.NextColumn, "right":
		hover = m.hoverAcross(b, columnID, 1)
	case km.PrevCard, "up":
		hover = hoverWithin(b, cardID, columnID, -1)
	case km.NextCard, "down":
		hover = hoverWithin(b, cardID, columnID, 1)
	}
	if hover == nil {
		return
	}

	m.Resolver.Over(hover)
	m.followCard(m.snapshot(), cardID)
}

// hoverAcross targets the neighbouring column at the cursor's row, or the
// column itself when it has fewer cards.
func (m Model) hoverAcross(b models.Board, from types.ColumnID, delta int) *placement.Hover {
	i := b.ColumnIndex(from) + delta
	if i < 0 || i >= len(b.Columns) {
		return nil
	}
	target := b.Columns[i]
	row := m.UIState.SelectedCard()
	if row < len(target.CardIDs) {
		return &placement.Hover{ID: string(target.CardIDs[row]), Type: placement.TargetCard, ColumnID: target.ID}
	}
	return &placement.Hover{ID: string(target.ID), Type: placement.TargetColumn}
}

// hoverWithin targets the card above or below the dragged one
func hoverWithin(b models.Board, cardID types.CardID, columnID types.ColumnID, delta int) *placement.Hover {
	col, ok := b.Column(columnID)
	if !ok {
		return nil
	}
	from := col.IndexOf(cardID)
	pos := from + delta
	if from < 0 || pos < 0 || pos >= len(col.CardIDs) {
		return nil
	}
	return &placement.Hover{ID: string(col.CardIDs[pos]), Type: placement.TargetCard, ColumnID: col.ID}
}
