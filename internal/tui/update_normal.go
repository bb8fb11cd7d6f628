package tui

import (
	tea "charm.land/bubbletea/v2"
	"github.com/thenoetrevino/kanban/internal/tui/state"
)

// handleNormalMode handles navigation and the commands that open other modes
func (m Model) handleNormalMode(msg tea.KeyPressMsg) tea.Cmd {
	km := m.Keys
	b := m.snapshot()

	switch msg.String() {
	case km.Quit:
		return tea.Quit

	case km.PrevColumn, "left":
		m.selectColumn(b, m.UIState.SelectedColumn()-1)
	case km.NextColumn, "right":
		m.selectColumn(b, m.UIState.SelectedColumn()+1)
	case km.PrevCard, "up":
		m.UIState.SetSelectedCard(m.UIState.SelectedCard() - 1)
		m.clampSelection(b)
	case km.NextCard, "down":
		m.UIState.SetSelectedCard(m.UIState.SelectedCard() + 1)
		m.clampSelection(b)

	case km.AddCard:
		if _, ok := m.currentColumn(b); !ok {
			m.NotificationState.Error("Create a column first")
			return nil
		}
		m.UIState.SetMode(state.AddCardMode)
		return m.InputState.Begin("New card title", "")

	case km.CreateColumn:
		m.UIState.SetMode(state.AddColumnMode)
		return m.InputState.Begin("New column name", "")

	case km.RenameColumn:
		col, ok := m.currentColumn(b)
		if !ok {
			return nil
		}
		m.UIState.SetMode(state.RenameColumnMode)
		return m.InputState.Begin("Rename column", col.Title)

	case km.DeleteCard:
		if _, _, ok := m.currentCard(b); ok {
			m.UIState.SetMode(state.DeleteCardConfirmMode)
		}

	case km.DeleteColumn:
		if _, ok := m.currentColumn(b); ok {
			m.UIState.SetMode(state.DeleteColumnConfirmMode)
		}

	case km.GrabCard:
		card, col, ok := m.currentCard(b)
		if !ok {
			return nil
		}
		m.Resolver.Start(card.ID, col.ID)
		m.UIState.SetMode(state.DragMode)
		m.NotificationState.Info("Moving " + card.Title)

	case km.ViewCard, "enter":
		if _, _, ok := m.currentCard(b); ok {
			m.UIState.SetMode(state.DetailMode)
		}

	case km.FindCard:
		m.SearchState.Clear()
		m.UIState.SetMode(state.SearchMode)
		return m.InputState.Begin("Find card", "")

	case km.ToggleTheme:
		m.App.Theme.Toggle()

	case km.ShowHelp:
		m.UIState.SetMode(state.HelpMode)
	}
	return nil
}

// handleDetailMode closes the card view
func (m Model) handleDetailMode(msg tea.KeyPressMsg) {
	switch msg.String() {
	case "esc", "enter", m.Keys.ViewCard, m.Keys.Quit:
		m.UIState.SetMode(state.NormalMode)
	}
}

// handleHelpMode closes the help overlay
func (m Model) handleHelpMode(msg tea.KeyPressMsg) {
	switch msg.String() {
	case "esc", m.Keys.ShowHelp, m.Keys.Quit:
		m.UIState.SetMode(state.NormalMode)
	}
}

// handleDeleteConfirm deletes the selected card or column on "y"
func (m Model) handleDeleteConfirm(msg tea.KeyPressMsg) {
	switch msg.String() {
	case "y", "Y":
		b := m.snapshot()
		if m.UIState.Mode() == state.DeleteCardConfirmMode {
			if card, col, ok := m.currentCard(b); ok {
				m.App.Board.DeleteCard(card.ID, col.ID)
				m.NotificationState.Info("Deleted " + card.Title)
			}
		} else if col, ok := m.currentColumn(b); ok {
			m.App.Board.DeleteColumn(col.ID)
			m.NotificationState.Info("Deleted column " + col.Title)
		}
		m.UIState.SetMode(state.NormalMode)
		m.clampSelection(m.snapshot())
	case "n", "N", "esc":
		m.UIState.SetMode(state.NormalMode)
	}
}
