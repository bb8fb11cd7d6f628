package state

import (
	"strings"

	"charm.land/bubbles/v2/textinput"
	tea "charm.land/bubbletea/v2"
)

// MaxInputLength caps titles typed into the TUI
const MaxInputLength = 100

// InputState manages the single-line text input used by the title prompts.
type InputState struct {
	// Prompt is the text displayed above the input (e.g., "New column name")
	Prompt string

	// Initial is the value the input was opened with, for change detection
	Initial string

	input textinput.Model
}

// NewInputState creates an InputState with an unfocused input.
func NewInputState() *InputState {
	ti := textinput.New()
	ti.CharLimit = MaxInputLength
	return &InputState{input: ti}
}

// Begin opens the input with prompt and an initial value and focuses it.
func (s *InputState) Begin(prompt, initial string) tea.Cmd {
	s.Prompt = prompt
	s.Initial = initial
	s.input.SetValue(initial)
	s.input.CursorEnd()
	return s.input.Focus()
}

// Update feeds a message to the underlying input.
func (s *InputState) Update(msg tea.Msg) tea.Cmd {
	var cmd tea.Cmd
	s.input, cmd = s.input.Update(msg)
	return cmd
}

// Value returns the raw text typed so far.
func (s *InputState) Value() string {
	return s.input.Value()
}

// TrimmedValue returns the input with leading and trailing whitespace removed.
func (s *InputState) TrimmedValue() string {
	return strings.TrimSpace(s.input.Value())
}

// IsEmpty returns true if the input is empty or contains only whitespace.
func (s *InputState) IsEmpty() bool {
	return s.TrimmedValue() == ""
}

// HasChanges returns true if the input differs from the value it was opened with.
func (s *InputState) HasChanges() bool {
	return s.TrimmedValue() != strings.TrimSpace(s.Initial)
}

// Clear blurs the input and resets it.
func (s *InputState) Clear() {
	s.Prompt = ""
	s.Initial = ""
	s.input.SetValue("")
	s.input.Blur()
}

// View renders the input line.
func (s *InputState) View() string {
	return s.input.View()
}
