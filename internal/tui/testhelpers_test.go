package tui

import (
	"context"
	"testing"

	tea "charm.land/bubbletea/v2"
	"github.com/thenoetrevino/kanban/internal/storage"
	"github.com/thenoetrevino/kanban/internal/testutil"
	"github.com/thenoetrevino/kanban/internal/types"
)

// SetupTestModel returns a sized model over a fresh default board
func SetupTestModel(t *testing.T) (Model, *storage.Memory) {
	t.Helper()

	a, mem := testutil.SetupTestApp(t)
	m := InitialModel(context.Background(), a)
	t.Cleanup(m.Close)

	m = update(t, m, tea.WindowSizeMsg{Width: 160, Height: 40})
	return m, mem
}

// seedCards adds cards to column index col and returns their ids
func seedCards(t *testing.T, m Model, col int, titles ...string) []types.CardID {
	t.Helper()

	colID := m.App.Board.Board().Columns[col].ID
	ids := make([]types.CardID, len(titles))
	for i, title := range titles {
		id, ok := m.App.Board.AddCard(colID, title, "")
		if !ok {
			t.Fatalf("AddCard(%q) failed", title)
		}
		ids[i] = id
	}
	return ids
}

func update(t *testing.T, m Model, msg tea.Msg) Model {
	t.Helper()
	updated, _ := m.Update(msg)
	model, ok := updated.(Model)
	if !ok {
		t.Fatalf("Update returned %T, want Model", updated)
	}
	return model
}

// press sends one key per argument. Named keys are "enter", "esc", arrows
// and "ctrl+c"; anything else is typed as text.
func press(t *testing.T, m Model, keys ...string) Model {
	t.Helper()
	for _, k := range keys {
		m = update(t, m, keyPress(k))
	}
	return m
}

// typeText types s one rune at a time
func typeText(t *testing.T, m Model, s string) Model {
	t.Helper()
	for _, r := range s {
		m = update(t, m, tea.KeyPressMsg(tea.Key{Text: string(r), Code: r}))
	}
	return m
}

func keyPress(k string) tea.KeyPressMsg {
	switch k {
	case "enter":
		return tea.KeyPressMsg(tea.Key{Code: tea.KeyEnter})
	case "esc":
		return tea.KeyPressMsg(tea.Key{Code: tea.KeyEsc})
	case "up":
		return tea.KeyPressMsg(tea.Key{Code: tea.KeyUp})
	case "down":
		return tea.KeyPressMsg(tea.Key{Code: tea.KeyDown})
	case "left":
		return tea.KeyPressMsg(tea.Key{Code: tea.KeyLeft})
	case "right":
		return tea.KeyPressMsg(tea.Key{Code: tea.KeyRight})
	case "ctrl+c":
		return tea.KeyPressMsg(tea.Key{Code: 'c', Mod: tea.ModCtrl})
	}
	r := []rune(k)[0]
	return tea.KeyPressMsg(tea.Key{Text: k, Code: r})
}

func columnCards(m Model, col int) []types.CardID {
	return m.App.Board.Board().Columns[col].CardIDs
}
