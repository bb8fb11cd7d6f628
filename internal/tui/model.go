// Package tui is the interactive terminal board built on Bubble Tea.
package tui

import (
	"context"

	tea "charm.land/bubbletea/v2"
	"github.com/thenoetrevino/kanban/internal/app"
	"github.com/thenoetrevino/kanban/internal/config"
	"github.com/thenoetrevino/kanban/internal/events"
	"github.com/thenoetrevino/kanban/internal/models"
	"github.com/thenoetrevino/kanban/internal/placement"
	"github.com/thenoetrevino/kanban/internal/theme"
	"github.com/thenoetrevino/kanban/internal/tui/components"
	"github.com/thenoetrevino/kanban/internal/tui/state"
	"github.com/thenoetrevino/kanban/internal/types"
)

// eventBuffer is how many change events may queue before older ones are dropped
const eventBuffer = 16

// RefreshMsg is sent when the board or theme changed
type RefreshMsg struct {
	Event events.Event
}

// Model represents the application state for the TUI
type Model struct {
	Ctx      context.Context
	App      *app.App
	Resolver *placement.Resolver
	Keys     config.KeyMappings

	UIState           *state.UIState
	InputState        *state.InputState
	SearchState       *state.SearchState
	NotificationState *state.NotificationState

	EventChan   chan events.Event
	unsubscribe []func()
}

// InitialModel creates the TUI model over an initialized App
func InitialModel(ctx context.Context, a *app.App) Model {
	m := Model{
		Ctx:               ctx,
		App:               a,
		Resolver:          placement.NewResolver(a.Board),
		Keys:              a.Config.KeyMappings,
		UIState:           state.NewUIState(),
		InputState:        state.NewInputState(),
		SearchState:       state.NewSearchState(),
		NotificationState: state.NewNotificationState(),
		EventChan:         make(chan events.Event, eventBuffer),
	}

	forward := func(e events.Event) {
		select {
		case m.EventChan <- e:
		default:
		}
	}
	m.unsubscribe = []func(){
		a.Events.Subscribe(events.EventBoardChanged, forward),
		a.Events.Subscribe(events.EventThemeChanged, forward),
	}
	return m
}

// ApplyTheme returns the hook that restyles the TUI when the theme changes
func ApplyTheme(cfg *config.Config) func(theme.Theme) {
	return func(t theme.Theme) {
		components.InitStyles(cfg.Colors.ForTheme(t.String()))
	}
}

// Init starts listening for change events
func (m Model) Init() tea.Cmd {
	return m.listenForEvents()
}

// Close stops the event subscriptions
func (m Model) Close() {
	for _, unsub := range m.unsubscribe {
		unsub()
	}
}

// listenForEvents waits for the next change event
func (m Model) listenForEvents() tea.Cmd {
	return func() tea.Msg {
		select {
		case e := <-m.EventChan:
			return RefreshMsg{Event: e}
		case <-m.Ctx.Done():
			return nil
		}
	}
}

// snapshot returns the current board
func (m Model) snapshot() models.Board {
	return m.App.Board.Board()
}

// currentColumn returns the column under the cursor
func (m Model) currentColumn(b models.Board) (models.Column, bool) {
	i := m.UIState.SelectedColumn()
	if i < 0 || i >= len(b.Columns) {
		return models.Column{}, false
	}
	return b.Columns[i], true
}

// currentCard returns the card under the cursor and its column
func (m Model) currentCard(b models.Board) (models.Card, models.Column, bool) {
	col, ok := m.currentColumn(b)
	if !ok {
		return models.Card{}, models.Column{}, false
	}
	i := m.UIState.SelectedCard()
	if i < 0 || i >= len(col.CardIDs) {
		return models.Card{}, col, false
	}
	card, ok := b.Card(col.CardIDs[i])
	return card, col, ok
}

// clampSelection keeps the cursor on the board after a change
func (m Model) clampSelection(b models.Board) {
	m.UIState.Clamp(len(b.Columns), func(i int) int { return len(b.Columns[i].CardIDs) })
	if col, ok := m.currentColumn(b); ok {
		m.UIState.EnsureCardVisible(col.ID, m.UIState.SelectedCard(), m.UIState.VisibleCards())
	}
}

// followCard moves the cursor to wherever cardID sits on b
func (m Model) followCard(b models.Board, cardID types.CardID) {
	for ci, col := range b.Columns {
		for pos, id := range col.CardIDs {
			if id != cardID {
				continue
			}
			m.UIState.SetSelectedColumn(ci)
			m.UIState.SetSelectedCard(pos)
			m.UIState.EnsureSelectionVisible(ci)
			m.UIState.EnsureCardVisible(col.ID, pos, m.UIState.VisibleCards())
			return
		}
	}
	m.clampSelection(b)
}

// selectColumn moves the cursor to column i, keeping the card row when possible
func (m Model) selectColumn(b models.Board, i int) {
	if i < 0 || i >= len(b.Columns) {
		return
	}
	m.UIState.SetSelectedColumn(i)
	m.UIState.EnsureSelectionVisible(i)
	m.clampSelection(b)
}
