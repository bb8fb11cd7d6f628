package components

import (
	"strings"
	"testing"
	"time"

	"github.com/thenoetrevino/kanban/internal/config"
	"github.com/thenoetrevino/kanban/internal/models"
	"github.com/thenoetrevino/kanban/internal/types"
)

func testCards(titles ...string) []models.Card {
	out := make([]models.Card, len(titles))
	for i, t := range titles {
		out[i] = models.Card{ID: types.CardID(t), Title: t, CreatedAt: time.Now()}
	}
	return out
}

func TestTruncateTitle(t *testing.T) {
	short := "Write docs"
	if got := TruncateTitle(short); got != short {
		t.Errorf("TruncateTitle(%q) = %q", short, got)
	}

	long := strings.Repeat("x", cardTitleMaxLength+10)
	got := TruncateTitle(long)
	if len([]rune(got)) != cardTitleMaxLength || !strings.HasSuffix(got, "…") {
		t.Errorf("TruncateTitle(long) = %q", got)
	}
}

func TestRenderCard_ShowsContent(t *testing.T) {
	card := models.Card{ID: "c1", Title: "Fix login", Priority: types.PriorityHigh, Tags: []string{"bug"}}

	out := RenderCard(card, false, false)

	for _, want := range []string{"Fix login", "[high]", "#bug"} {
		if !strings.Contains(out, want) {
			t.Errorf("RenderCard output missing %q:\n%s", want, out)
		}
	}
}

func TestRenderColumn_Empty(t *testing.T) {
	out := RenderColumn(ColumnProps{Column: models.Column{ID: "todo", Title: "To Do"}, SelectedCard: -1})

	if !strings.Contains(out, "To Do (0)") || !strings.Contains(out, "No cards") {
		t.Errorf("empty column rendered as:\n%s", out)
	}
}

func TestRenderColumn_ScrollIndicators(t *testing.T) {
	cards := testCards("one", "two", "three", "four")
	out := RenderColumn(ColumnProps{
		Column:       models.Column{ID: "todo", Title: "To Do"},
		Cards:        cards,
		SelectedCard: -1,
		ScrollOffset: 1,
		VisibleCards: 2,
	})

	if !strings.Contains(out, "▲ more above") || !strings.Contains(out, "▼ more below") {
		t.Errorf("missing scroll indicators:\n%s", out)
	}
	if strings.Contains(out, "one") || strings.Contains(out, "four") {
		t.Errorf("cards outside the window were rendered:\n%s", out)
	}
	if !strings.Contains(out, "two") || !strings.Contains(out, "three") {
		t.Errorf("visible cards missing:\n%s", out)
	}
}

func TestRenderStatusBar(t *testing.T) {
	out := RenderStatusBar(StatusBarProps{Width: 100, Mode: "NORMAL", Theme: "dark"})
	if !strings.Contains(out, "NORMAL") || !strings.Contains(out, "dark") {
		t.Errorf("status bar = %q", out)
	}
}

func TestRenderHelp_UsesKeyMappings(t *testing.T) {
	km := config.DefaultKeyMappings()
	km.AddCard = "n"

	out := RenderHelp(km)
	if !strings.Contains(out, "n              add card") {
		t.Errorf("help does not show remapped key:\n%s", out)
	}
}

func TestInitStyles_SwitchesPalette(t *testing.T) {
	t.Cleanup(func() { InitStyles(config.DefaultColors().Light) })

	dark := config.DefaultColors().Dark
	InitStyles(dark)

	if PriorityColor(types.PriorityHigh) != dark.PriorityHigh {
		t.Errorf("PriorityColor(high) = %q, want %q", PriorityColor(types.PriorityHigh), dark.PriorityHigh)
	}
	if PriorityColor(types.PriorityNone) != dark.Subtle {
		t.Errorf("PriorityColor(none) = %q, want subtle", PriorityColor(types.PriorityNone))
	}
}
