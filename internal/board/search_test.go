package board

import (
	"strings"
	"testing"
)

func TestSearch(t *testing.T) {
	s := newTestStore(t, fixtureBoard())
	todo := s.Board().Columns[0].ID
	for _, title := range []string{"Write release notes", "Fix login redirect", "Review release checklist"} {
		if _, ok := s.AddCard(todo, title, ""); !ok {
			t.Fatalf("AddCard(%q) failed", title)
		}
	}

	found := Search(s.Board(), "release", 0)
	if len(found) != 2 {
		t.Fatalf("Search(release) = %d cards, want 2", len(found))
	}
	for _, c := range found {
		if !strings.Contains(strings.ToLower(c.Title), "release") {
			t.Errorf("unexpected match %q", c.Title)
		}
	}

	if got := len(Search(s.Board(), "release", 1)); got != 1 {
		t.Errorf("Search with limit 1 = %d cards, want 1", got)
	}
	if got := Search(s.Board(), "zzzz", 0); len(got) != 0 {
		t.Errorf("Search(zzzz) = %v, want none", got)
	}
}

func TestSearch_EmptyQuery(t *testing.T) {
	found := Search(fixtureBoard(), "", 0)
	if len(found) != 0 {
		t.Errorf("empty query matched %d cards", len(found))
	}
}
