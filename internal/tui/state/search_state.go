package state

import "github.com/thenoetrevino/kanban/internal/models"

// MaxSearchResults is how many matches the find overlay lists
const MaxSearchResults = 8

// SearchState holds the results of the fuzzy card finder and the highlighted one.
// The query itself is typed into an InputState.
type SearchState struct {
	Results  []models.Card
	Selected int
}

// NewSearchState creates an empty SearchState.
func NewSearchState() *SearchState {
	return &SearchState{}
}

// SetResults replaces the results and keeps the highlight in range.
func (s *SearchState) SetResults(results []models.Card) {
	s.Results = results
	s.Selected = max(0, min(s.Selected, len(results)-1))
}

// Next highlights the following result, if any.
func (s *SearchState) Next() {
	if s.Selected < len(s.Results)-1 {
		s.Selected++
	}
}

// Prev highlights the preceding result, if any.
func (s *SearchState) Prev() {
	if s.Selected > 0 {
		s.Selected--
	}
}

// Current returns the highlighted result.
func (s *SearchState) Current() (models.Card, bool) {
	if len(s.Results) == 0 {
		return models.Card{}, false
	}
	return s.Results[s.Selected], true
}

// Clear drops results and highlight.
func (s *SearchState) Clear() {
	s.Results = nil
	s.Selected = 0
}
