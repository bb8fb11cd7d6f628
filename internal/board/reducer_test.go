package board

import (
	"slices"
	"testing"

	"github.com/thenoetrevino/kanban/internal/models"
	"github.com/thenoetrevino/kanban/internal/types"
)

func strPtr(s string) *string { return &s }

// ============================================================================
// Columns
// ============================================================================

func TestReduce_AddColumn(t *testing.T) {
	t.Parallel()

	b := fixtureBoard()
	next, changed := Reduce(b, AddColumn{Title: "Blocked"}, testEnv())

	if !changed {
		t.Fatal("Expected AddColumn to change the board")
	}
	if len(next.Columns) != 4 {
		t.Fatalf("Expected 4 columns, got %d", len(next.Columns))
	}
	added := next.Columns[3]
	if added.Title != "Blocked" || added.ID != "id-1" {
		t.Errorf("Expected Blocked/id-1, got %s/%s", added.Title, added.ID)
	}
	if added.CardIDs == nil || len(added.CardIDs) != 0 {
		t.Errorf("Expected empty non-nil card list, got %v", added.CardIDs)
	}
	if len(b.Columns) != 3 {
		t.Error("Input board was modified")
	}
	mustValidate(t, next)
}

func TestReduce_UpdateColumn(t *testing.T) {
	t.Parallel()

	b := fixtureBoard()
	next, changed := Reduce(b, UpdateColumn{ColumnID: "doing", Title: "Doing"}, testEnv())
	if !changed {
		t.Fatal("Expected UpdateColumn to change the board")
	}
	if next.Columns[1].Title != "Doing" {
		t.Errorf("Expected title Doing, got %s", next.Columns[1].Title)
	}
	if b.Columns[1].Title != "In Progress" {
		t.Error("Input board was modified")
	}
}

func TestReduce_DeleteColumnCascades(t *testing.T) {
	t.Parallel()

	b := fixtureBoard()
	next, changed := Reduce(b, DeleteColumn{ColumnID: "todo"}, testEnv())

	if !changed {
		t.Fatal("Expected DeleteColumn to change the board")
	}
	if len(next.Columns) != 2 {
		t.Fatalf("Expected 2 columns, got %d", len(next.Columns))
	}
	if len(next.Cards) != 0 {
		t.Errorf("Expected cards of the deleted column to be removed, got %d", len(next.Cards))
	}
	if len(b.Cards) != 3 {
		t.Error("Input board was modified")
	}
	mustValidate(t, next)
}

func TestReduce_ReorderColumns(t *testing.T) {
	t.Parallel()

	b := fixtureBoard()
	cols := []models.Column{b.Columns[2], b.Columns[0], b.Columns[1]}
	next, _ := Reduce(b, ReorderColumns{Columns: cols}, testEnv())

	got := []types.ColumnID{next.Columns[0].ID, next.Columns[1].ID, next.Columns[2].ID}
	want := []types.ColumnID{"done", "todo", "doing"}
	if !slices.Equal(got, want) {
		t.Errorf("Expected %v, got %v", want, got)
	}
	mustValidate(t, next)
}

// ============================================================================
// Cards
// ============================================================================

func TestReduce_AddCard(t *testing.T) {
	t.Parallel()

	b := fixtureBoard()
	next, changed := Reduce(b, AddCard{ColumnID: "doing", Title: "New", Description: "desc"}, testEnv())

	if !changed {
		t.Fatal("Expected AddCard to change the board")
	}
	ids := cardIDs(t, next, "doing")
	if len(ids) != 1 {
		t.Fatalf("Expected 1 card in doing, got %d", len(ids))
	}
	card := next.Cards[ids[0]]
	if card.Title != "New" || card.Description != "desc" {
		t.Errorf("Unexpected card content: %+v", card)
	}
	if card.CreatedAt.IsZero() || !card.CreatedAt.Equal(card.UpdatedAt) {
		t.Errorf("Expected createdAt == updatedAt, got %v and %v", card.CreatedAt, card.UpdatedAt)
	}
	mustValidate(t, next)
}

func TestReduce_AddCardUnknownColumnIsNoOp(t *testing.T) {
	t.Parallel()

	b := fixtureBoard()
	next, changed := Reduce(b, AddCard{ColumnID: "missing", Title: "Lost"}, testEnv())

	if changed {
		t.Error("Expected no change for unknown column")
	}
	if len(next.Cards) != 3 {
		t.Errorf("Expected no orphan card, got %d cards", len(next.Cards))
	}
	mustValidate(t, next)
}

func TestReduce_UpdateCardBumpsUpdatedAt(t *testing.T) {
	t.Parallel()

	b := fixtureBoard()
	high := types.PriorityHigh
	next, changed := Reduce(b, UpdateCard{
		CardID: "c2",
		Update: models.CardUpdate{Title: strPtr("Renamed"), Priority: &high},
	}, testEnv())

	if !changed {
		t.Fatal("Expected UpdateCard to change the board")
	}
	card := next.Cards["c2"]
	if card.Title != "Renamed" || card.Priority != types.PriorityHigh {
		t.Errorf("Unexpected card: %+v", card)
	}
	if !card.UpdatedAt.After(card.CreatedAt) {
		t.Errorf("Expected updatedAt after createdAt, got %v <= %v", card.UpdatedAt, card.CreatedAt)
	}
	if !card.CreatedAt.Equal(testEpoch) {
		t.Error("createdAt should not change")
	}
	if b.Cards["c2"].Title != "Card c2" {
		t.Error("Input board was modified")
	}
}

func TestReduce_DeleteCard(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		columnID types.ColumnID
	}{
		{"owning column", "todo"},
		{"stale column", "done"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			next, changed := Reduce(fixtureBoard(), DeleteCard{CardID: "c2", ColumnID: tt.columnID}, testEnv())
			if !changed {
				t.Fatal("Expected DeleteCard to change the board")
			}
			if _, ok := next.Cards["c2"]; ok {
				t.Error("Expected c2 removed from cards")
			}
			if got := cardIDs(t, next, "todo"); !slices.Equal(got, []types.CardID{"c1", "c3"}) {
				t.Errorf("Expected [c1 c3], got %v", got)
			}
			mustValidate(t, next)
		})
	}
}

// ============================================================================
// MoveCard
// ============================================================================

func TestReduce_MoveCard(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		action   MoveCard
		wantTodo []types.CardID
		wantDone []types.CardID
	}{
		{
			name:     "cross column to front",
			action:   MoveCard{CardID: "c2", From: "todo", To: "done", Index: 0},
			wantTodo: []types.CardID{"c1", "c3"},
			wantDone: []types.CardID{"c2"},
		},
		{
			name:     "cross column index clamped high",
			action:   MoveCard{CardID: "c1", From: "todo", To: "done", Index: 99},
			wantTodo: []types.CardID{"c2", "c3"},
			wantDone: []types.CardID{"c1"},
		},
		{
			name:     "negative index clamped to zero",
			action:   MoveCard{CardID: "c3", From: "todo", To: "done", Index: -4},
			wantTodo: []types.CardID{"c1", "c2"},
			wantDone: []types.CardID{"c3"},
		},
		{
			name:     "same column forward",
			action:   MoveCard{CardID: "c1", From: "todo", To: "todo", Index: 2},
			wantTodo: []types.CardID{"c2", "c3", "c1"},
			wantDone: []types.CardID{},
		},
		{
			name:     "same column backward",
			action:   MoveCard{CardID: "c3", From: "todo", To: "todo", Index: 0},
			wantTodo: []types.CardID{"c3", "c1", "c2"},
			wantDone: []types.CardID{},
		},
		{
			name:     "same column clamped to length after removal",
			action:   MoveCard{CardID: "c1", From: "todo", To: "todo", Index: 10},
			wantTodo: []types.CardID{"c2", "c3", "c1"},
			wantDone: []types.CardID{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			next, changed := Reduce(fixtureBoard(), tt.action, testEnv())
			if !changed {
				t.Fatal("Expected MoveCard to change the board")
			}
			if got := cardIDs(t, next, "todo"); !slices.Equal(got, tt.wantTodo) {
				t.Errorf("todo: expected %v, got %v", tt.wantTodo, got)
			}
			if got := cardIDs(t, next, "done"); !slices.Equal(got, tt.wantDone) {
				t.Errorf("done: expected %v, got %v", tt.wantDone, got)
			}
			mustValidate(t, next)
		})
	}
}

func TestReduce_SameColumnMoveIsPermutation(t *testing.T) {
	t.Parallel()

	for index := -1; index <= 4; index++ {
		for _, id := range []types.CardID{"c1", "c2", "c3"} {
			next, _ := Reduce(fixtureBoard(), MoveCard{CardID: id, From: "todo", To: "todo", Index: index}, testEnv())
			got := slices.Clone(cardIDs(t, next, "todo"))
			slices.Sort(got)
			if !slices.Equal(got, []types.CardID{"c1", "c2", "c3"}) {
				t.Errorf("move %s to %d: expected a permutation, got %v", id, index, cardIDs(t, next, "todo"))
			}
		}
	}
}

// ============================================================================
// No-ops
// ============================================================================

func TestReduce_UnknownIDsAreNoOps(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		action Action
	}{
		{"update unknown column", UpdateColumn{ColumnID: "nope", Title: "x"}},
		{"delete unknown column", DeleteColumn{ColumnID: "nope"}},
		{"add card to unknown column", AddCard{ColumnID: "nope", Title: "x"}},
		{"update unknown card", UpdateCard{CardID: "nope", Update: models.CardUpdate{Title: strPtr("x")}}},
		{"delete unknown card", DeleteCard{CardID: "nope", ColumnID: "todo"}},
		{"move unknown card", MoveCard{CardID: "nope", From: "todo", To: "done"}},
		{"move from wrong column", MoveCard{CardID: "c1", From: "doing", To: "done"}},
		{"move to unknown column", MoveCard{CardID: "c1", From: "todo", To: "nope"}},
		{"reorder unknown column", ReorderCards{ColumnID: "nope", CardIDs: []types.CardID{"c1"}}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			b := fixtureBoard()
			next, changed := Reduce(b, tt.action, testEnv())
			if changed {
				t.Error("Expected no change")
			}
			if !next.Equal(fixtureBoard()) {
				t.Error("Expected board to equal the input")
			}
		})
	}
}

func TestReduce_ReorderCardsReplacesWholesale(t *testing.T) {
	t.Parallel()

	b := fixtureBoard()
	next, _ := Reduce(b, ReorderCards{ColumnID: "todo", CardIDs: []types.CardID{"c3", "c1", "c2"}}, testEnv())

	if got := cardIDs(t, next, "todo"); !slices.Equal(got, []types.CardID{"c3", "c1", "c2"}) {
		t.Errorf("Expected [c3 c1 c2], got %v", got)
	}
	if got := cardIDs(t, b, "todo"); !slices.Equal(got, []types.CardID{"c1", "c2", "c3"}) {
		t.Errorf("Input board was modified: %v", got)
	}
}

func TestReduce_SetBoardClones(t *testing.T) {
	t.Parallel()

	replacement := models.DefaultBoard("Other")
	next, changed := Reduce(fixtureBoard(), SetBoard{Board: replacement}, testEnv())
	if !changed || !next.Equal(replacement) {
		t.Fatal("Expected board replaced")
	}
	next.Columns[0].Title = "mutated"
	if replacement.Columns[0].Title == "mutated" {
		t.Error("SetBoard result aliases its argument")
	}
}

func TestReduce_InvariantsHoldAcrossSequence(t *testing.T) {
	t.Parallel()

	env := testEnv()
	b := fixtureBoard()
	steps := []Action{
		AddColumn{Title: "Blocked"},
		AddCard{ColumnID: "doing", Title: "d1"},
		AddCard{ColumnID: "doing", Title: "d2"},
		MoveCard{CardID: "c1", From: "todo", To: "doing", Index: 1},
		MoveCard{CardID: "c1", From: "doing", To: "doing", Index: 0},
		DeleteCard{CardID: "c2", ColumnID: "todo"},
		UpdateCard{CardID: "c3", Update: models.CardUpdate{Description: strPtr("later")}},
		DeleteColumn{ColumnID: "done"},
		MoveCard{CardID: "c3", From: "todo", To: "id-1", Index: 5},
		DeleteColumn{ColumnID: "todo"},
	}
	for _, a := range steps {
		b, _ = Reduce(b, a, env)
		mustValidate(t, b)
	}
	if b.CardCount() != 4 {
		t.Errorf("Expected 4 cards, got %d", b.CardCount())
	}
}
