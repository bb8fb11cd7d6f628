package tui

import (
	"log/slog"

	tea "charm.land/bubbletea/v2"
	"github.com/thenoetrevino/kanban/internal/events"
	"github.com/thenoetrevino/kanban/internal/tui/state"
)

// Update is the main update dispatcher that handles all messages and updates the model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	select {
	case <-m.Ctx.Done():
		return m, tea.Quit
	default:
	}

	switch msg := msg.(type) {
	case RefreshMsg:
		m.handleRefresh(msg.Event)
		return m, m.listenForEvents()

	case tea.KeyPressMsg:
		return m, m.handleKey(msg)

	case tea.WindowSizeMsg:
		m.UIState.SetWidth(msg.Width)
		m.UIState.SetHeight(msg.Height)
		m.clampSelection(m.snapshot())
		return m, nil
	}

	// Cursor blinks and similar belong to the text input
	if m.UIState.Mode().IsInput() {
		return m, m.InputState.Update(msg)
	}
	return m, nil
}

// handleRefresh reacts to a change made anywhere in the process
func (m Model) handleRefresh(e events.Event) {
	slog.Debug("tui refresh", "type", e.Type, "action", e.Action, "seq", e.SequenceID)
	if e.Type == events.EventThemeChanged {
		m.NotificationState.Info("Theme: " + e.Action)
	}
	if m.UIState.Mode() != state.DragMode {
		m.clampSelection(m.snapshot())
	}
}

// handleKey dispatches key messages to the appropriate mode handler.
func (m Model) handleKey(msg tea.KeyPressMsg) tea.Cmd {
	if msg.String() == "ctrl+c" {
		return tea.Quit
	}
	m.NotificationState.Clear()

	switch m.UIState.Mode() {
	case state.NormalMode:
		return m.handleNormalMode(msg)
	case state.AddCardMode, state.AddColumnMode, state.RenameColumnMode:
		return m.handleInputMode(msg)
	case state.SearchMode:
		return m.handleSearchMode(msg)
	case state.DeleteCardConfirmMode, state.DeleteColumnConfirmMode:
		m.handleDeleteConfirm(msg)
	case state.DragMode:
		m.handleDragMode(msg)
	case state.DetailMode:
		m.handleDetailMode(msg)
	case state.HelpMode:
		m.handleHelpMode(msg)
	}
	return nil
}
