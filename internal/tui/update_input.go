package tui

import (
	tea "charm.land/bubbletea/v2"
	"github.com/thenoetrevino/kanban/internal/board"
	"github.com/thenoetrevino/kanban/internal/tui/state"
)

// handleInputMode edits and submits the title prompts
func (m Model) handleInputMode(msg tea.KeyPressMsg) tea.Cmd {
	switch msg.String() {
	case "esc":
		m.closeInput()
		return nil
	case "enter":
		m.submitInput()
		return nil
	}
	return m.InputState.Update(msg)
}

// submitInput applies the prompt. Empty titles keep the prompt open.
func (m Model) submitInput() {
	if m.InputState.IsEmpty() {
		m.NotificationState.Error("Title cannot be empty")
		return
	}
	title := m.InputState.TrimmedValue()
	b := m.snapshot()

	switch m.UIState.Mode() {
	case state.AddCardMode:
		col, ok := m.currentColumn(b)
		if !ok {
			break
		}
		if id, ok := m.App.Board.AddCard(col.ID, title, ""); ok {
			m.followCard(m.snapshot(), id)
		}

	case state.AddColumnMode:
		id := m.App.Board.AddColumn(title)
		after := m.snapshot()
		m.selectColumn(after, after.ColumnIndex(id))

	case state.RenameColumnMode:
		col, ok := m.currentColumn(b)
		if ok && m.InputState.HasChanges() {
			m.App.Board.UpdateColumn(col.ID, title)
		}
	}
	m.closeInput()
}

func (m Model) closeInput() {
	m.InputState.Clear()
	m.UIState.SetMode(state.NormalMode)
}

// handleSearchMode types a query, moves through matches and jumps to one
func (m Model) handleSearchMode(msg tea.KeyPressMsg) tea.Cmd {
	switch msg.String() {
	case "esc":
		m.SearchState.Clear()
		m.closeInput()
		return nil
	case "enter":
		if card, ok := m.SearchState.Current(); ok {
			m.followCard(m.snapshot(), card.ID)
		}
		m.SearchState.Clear()
		m.closeInput()
		return nil
	case "up", "ctrl+p":
		m.SearchState.Prev()
		return nil
	case "down", "ctrl+n":
		m.SearchState.Next()
		return nil
	}

	cmd := m.InputState.Update(msg)
	m.SearchState.SetResults(board.Search(m.snapshot(), m.InputState.TrimmedValue(), state.MaxSearchResults))
	return cmd
}
