package markdown

import (
	"strings"
	"testing"
)

func TestRender_Empty(t *testing.T) {
	t.Parallel()

	if got := Render("   ", 40, "light"); got != "" {
		t.Errorf("Expected empty output, got %q", got)
	}
}

func TestRender_KeepsText(t *testing.T) {
	t.Parallel()

	for _, theme := range []string{"light", "dark", "unknown"} {
		got := Render("Ship the **release** notes", 60, theme)
		if !strings.Contains(got, "release") {
			t.Errorf("theme %s: expected rendered text to contain the word, got %q", theme, got)
		}
		if strings.Contains(got, "**") {
			t.Errorf("theme %s: expected markdown emphasis to be rendered, got %q", theme, got)
		}
	}
}

func TestRender_CachesRenderers(t *testing.T) {
	t.Parallel()

	Render("a", 33, "dark")
	Render("b", 33, "dark")

	if _, ok := rendererCache.Load(rendererKey{width: 33, style: "dark"}); !ok {
		t.Error("Expected renderer cached for width 33/dark")
	}
}
