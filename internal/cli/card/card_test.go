package card

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/thenoetrevino/kanban/internal/app"
	"github.com/thenoetrevino/kanban/internal/cli"
	"github.com/thenoetrevino/kanban/internal/models"
	"github.com/thenoetrevino/kanban/internal/testutil"
	"github.com/thenoetrevino/kanban/internal/types"
)

// seedCards adds cards to the first column and returns their ids in order
func seedCards(t *testing.T, a *app.App, titles ...string) []types.CardID {
	t.Helper()
	todo := a.Board.Board().Columns[0].ID
	ids := make([]types.CardID, len(titles))
	for i, title := range titles {
		id, ok := a.Board.AddCard(todo, title, "")
		require.True(t, ok)
		ids[i] = id
	}
	return ids
}

// ============================================================================
// card add
// ============================================================================

func TestAddCard(t *testing.T) {
	tests := []struct {
		name       string
		flags      []string
		wantColumn int
	}{
		{"default column", []string{"--title", "Write docs"}, 0},
		{"column by title", []string{"--title", "Write docs", "--column", "done"}, 2},
		{"column by position", []string{"--title", "Write docs", "--column", "2"}, 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			a, mem := testutil.SetupCLITest(t)

			output, err := testutil.ExecuteCLICommand(t, a, AddCmd(), tt.flags)
			require.NoError(t, err)
			assert.Contains(t, output, "Card 'Write docs' added")

			b := a.Board.Board()
			col := b.Columns[tt.wantColumn]
			require.Len(t, col.CardIDs, 1)
			card := b.Cards[col.CardIDs[0]]
			assert.Equal(t, "Write docs", card.Title)
			assert.Equal(t, testutil.Epoch, card.CreatedAt)
			assert.Equal(t, card.CreatedAt, card.UpdatedAt)
			assert.Equal(t, 1, mem.Sets())
			assert.NoError(t, models.Validate(b))
		})
	}
}

func TestAddCard_JSON(t *testing.T) {
	a, _ := testutil.SetupCLITest(t)

	output, err := testutil.ExecuteCLICommand(t, a, AddCmd(),
		[]string{"--title", "Fix login", "--description", "Repro in staging", "--json"})
	require.NoError(t, err)

	result := testutil.ParseJSON(t, output)
	assert.True(t, result["success"].(bool))
	data := result["data"].(map[string]interface{})
	assert.Equal(t, "Fix login", data["title"])
	assert.Equal(t, "Repro in staging", data["description"])
	assert.Equal(t, "To Do", data["column_title"])
	assert.Equal(t, float64(1), data["position"])
}

func TestAddCard_Errors(t *testing.T) {
	tests := []struct {
		name     string
		flags    []string
		wantCode int
	}{
		{"empty title", []string{"--title", "  "}, cli.ExitValidation},
		{"unknown column", []string{"--title", "x", "--column", "Archive"}, cli.ExitNotFound},
		{"position out of range", []string{"--title", "x", "--column", "7"}, cli.ExitNotFound},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			a, _ := testutil.SetupCLITest(t)

			_, err := testutil.ExecuteCLICommand(t, a, AddCmd(), tt.flags)
			require.Error(t, err)
			assert.Equal(t, tt.wantCode, cli.ExitCode(err))
			assert.Equal(t, 0, a.Board.Board().CardCount())
		})
	}
}

// ============================================================================
// card update
// ============================================================================

func TestUpdateCard(t *testing.T) {
	a, _ := testutil.SetupCLITest(t)
	ids := seedCards(t, a, "Draft")

	_, err := testutil.ExecuteCLICommand(t, a, UpdateCmd(), []string{
		string(ids[0])[:6],
		"--title", "Final",
		"--priority", "HIGH",
		"--tag", "docs", "--tag", "release",
	})
	require.NoError(t, err)

	card, ok := a.Board.Board().Card(ids[0])
	require.True(t, ok)
	assert.Equal(t, "Final", card.Title)
	assert.Equal(t, types.PriorityHigh, card.Priority)
	assert.Equal(t, []string{"docs", "release"}, card.Tags)
	assert.Empty(t, card.Description)
}

func TestUpdateCard_ClearFields(t *testing.T) {
	a, _ := testutil.SetupCLITest(t)
	ids := seedCards(t, a, "Draft")
	high := types.PriorityHigh
	tags := []string{"x"}
	a.Board.UpdateCard(ids[0], models.CardUpdate{Priority: &high, Tags: &tags})

	_, err := testutil.ExecuteCLICommand(t, a, UpdateCmd(), []string{string(ids[0]), "--priority", "", "--clear-tags"})
	require.NoError(t, err)

	card, _ := a.Board.Board().Card(ids[0])
	assert.Equal(t, types.PriorityNone, card.Priority)
	assert.Empty(t, card.Tags)
}

func TestUpdateCard_Errors(t *testing.T) {
	tests := []struct {
		name     string
		args     func(id string) []string
		wantCode int
	}{
		{"no fields", func(id string) []string { return []string{id} }, cli.ExitUsage},
		{"bad priority", func(id string) []string { return []string{id, "--priority", "urgent"} }, cli.ExitValidation},
		{"empty title", func(id string) []string { return []string{id, "--title", ""} }, cli.ExitValidation},
		{"unknown card", func(string) []string { return []string{"nope", "--title", "x"} }, cli.ExitNotFound},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			a, _ := testutil.SetupCLITest(t)
			ids := seedCards(t, a, "Draft")

			_, err := testutil.ExecuteCLICommand(t, a, UpdateCmd(), tt.args(string(ids[0])))
			require.Error(t, err)
			assert.Equal(t, tt.wantCode, cli.ExitCode(err))

			card, _ := a.Board.Board().Card(ids[0])
			assert.Equal(t, "Draft", card.Title)
		})
	}
}

// ============================================================================
// card delete
// ============================================================================

func TestDeleteCard(t *testing.T) {
	a, _ := testutil.SetupCLITest(t)
	ids := seedCards(t, a, "one", "two")

	output, err := testutil.ExecuteCLICommand(t, a, DeleteCmd(), []string{string(ids[0])}, "yes")
	require.NoError(t, err)
	assert.Contains(t, output, "Card 'one' deleted")

	b := a.Board.Board()
	assert.Equal(t, []types.CardID{ids[1]}, b.Columns[0].CardIDs)
	assert.NoError(t, models.Validate(b))
}

func TestDeleteCard_Declined(t *testing.T) {
	a, _ := testutil.SetupCLITest(t)
	ids := seedCards(t, a, "one")

	output, err := testutil.ExecuteCLICommand(t, a, DeleteCmd(), []string{string(ids[0])}, "n")
	require.NoError(t, err)
	assert.Contains(t, output, "Cancelled")
	assert.Equal(t, 1, a.Board.Board().CardCount())
}

// ============================================================================
// card move
// ============================================================================

func TestMoveCard(t *testing.T) {
	tests := []struct {
		name     string
		card     int
		flags    []string
		wantTodo []int
		wantDone []int
	}{
		{"to another column", 0, []string{"--to", "Done"}, []int{1, 2}, []int{0}},
		{"within column to top", 2, []string{"--to", "To Do", "--position", "1"}, []int{2, 0, 1}, nil},
		{"within column to bottom", 0, []string{"--to", "1"}, []int{1, 2, 0}, nil},
		{"position clamped", 1, []string{"--to", "To Do", "--position", "50"}, []int{0, 2, 1}, nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			a, _ := testutil.SetupCLITest(t)
			ids := seedCards(t, a, "a", "b", "c")

			args := append([]string{string(ids[tt.card])}, tt.flags...)
			_, err := testutil.ExecuteCLICommand(t, a, MoveCmd(), args)
			require.NoError(t, err)

			pick := func(idx []int) []types.CardID {
				out := []types.CardID{}
				for _, i := range idx {
					out = append(out, ids[i])
				}
				return out
			}
			b := a.Board.Board()
			assert.Equal(t, pick(tt.wantTodo), b.Columns[0].CardIDs)
			assert.Equal(t, pick(tt.wantDone), b.Columns[2].CardIDs)
			assert.NoError(t, models.Validate(b))
		})
	}
}

func TestMoveCard_UnknownColumn(t *testing.T) {
	a, _ := testutil.SetupCLITest(t)
	ids := seedCards(t, a, "a")

	_, err := testutil.ExecuteCLICommand(t, a, MoveCmd(), []string{string(ids[0]), "--to", "Archive"})
	require.Error(t, err)
	assert.Equal(t, cli.ExitNotFound, cli.ExitCode(err))
}

// ============================================================================
// card show / find
// ============================================================================

func TestShowCard(t *testing.T) {
	a, _ := testutil.SetupCLITest(t)
	todo := a.Board.Board().Columns[0].ID
	id, _ := a.Board.AddCard(todo, "Release", "Ship the **notes**")

	output, err := testutil.ExecuteCLICommand(t, a, ShowCmd(), []string{string(id)})
	require.NoError(t, err)
	assert.Contains(t, output, "Release")
	assert.Contains(t, output, "To Do")
	assert.Contains(t, output, "notes")
	assert.NotContains(t, output, "**notes**")
}

func TestShowCard_JSON(t *testing.T) {
	a, _ := testutil.SetupCLITest(t)
	ids := seedCards(t, a, "Release")

	output, err := testutil.ExecuteCLICommand(t, a, ShowCmd(), []string{string(ids[0]), "--json"})
	require.NoError(t, err)

	data := testutil.ParseJSON(t, output)["data"].(map[string]interface{})
	assert.Equal(t, string(ids[0]), data["id"])
	assert.Equal(t, "2024-06-01T09:00:00Z", data["created_at"])
}

func TestFindCard_Quiet(t *testing.T) {
	a, _ := testutil.SetupCLITest(t)
	ids := seedCards(t, a, "Fix login redirect", "Write docs")

	output, err := testutil.ExecuteCLICommand(t, a, FindCmd(), []string{"login", "--quiet"})
	require.NoError(t, err)
	assert.Equal(t, string(ids[0]), strings.TrimSpace(output))
}

func TestFindCard_TagFilter(t *testing.T) {
	a, _ := testutil.SetupCLITest(t)
	ids := seedCards(t, a, "Write api docs", "Write user docs")
	tags := []string{"backend"}
	a.Board.UpdateCard(ids[0], models.CardUpdate{Tags: &tags})

	output, err := testutil.ExecuteCLICommand(t, a, FindCmd(), []string{"docs", "--tag", "backend", "--quiet"})
	require.NoError(t, err)
	assert.Equal(t, string(ids[0]), strings.TrimSpace(output))

	output, err = testutil.ExecuteCLICommand(t, a, FindCmd(), []string{"docs", "--tag", "frontend"})
	require.NoError(t, err)
	assert.Contains(t, output, "No cards match 'docs'")
}
