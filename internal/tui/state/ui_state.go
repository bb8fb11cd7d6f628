package state

import "github.com/thenoetrevino/kanban/internal/types"

// Mode represents the current interaction mode of the TUI.
// Each mode determines which keyboard shortcuts are active and what UI is displayed.
type Mode int

const (
	NormalMode              Mode = iota // Default navigation mode
	AddCardMode                         // Typing the title of a new card
	AddColumnMode                       // Creating a new column
	RenameColumnMode                    // Renaming an existing column
	DeleteCardConfirmMode               // Confirming card deletion
	DeleteColumnConfirmMode             // Confirming column deletion
	DragMode                            // Carrying a card with the keyboard
	DetailMode                          // Showing the selected card
	SearchMode                          // Fuzzy-finding a card (/)
	HelpMode                            // Displaying help screen
)

// String names the mode for the status bar
func (m Mode) String() string {
	switch m {
	case AddCardMode:
		return "ADD CARD"
	case AddColumnMode:
		return "ADD COLUMN"
	case RenameColumnMode:
		return "RENAME"
	case DeleteCardConfirmMode, DeleteColumnConfirmMode:
		return "CONFIRM"
	case DragMode:
		return "DRAG"
	case DetailMode:
		return "CARD"
	case SearchMode:
		return "FIND"
	case HelpMode:
		return "HELP"
	default:
		return "NORMAL"
	}
}

// IsInput reports whether the mode reads free text
func (m Mode) IsInput() bool {
	return m == AddCardMode || m == AddColumnMode || m == RenameColumnMode || m == SearchMode
}

// Layout of a rendered column, in terminal cells
const (
	ColumnWidth    = 34 // content + padding + border + spacing
	CardHeight     = 5  // border + title + meta + tags
	columnOverhead = 5  // border, header and scroll indicators
	reservedWidth  = 4  // margins and scroll indicators
	chromeHeight   = 4  // header and status bar with their gaps
)

// UIState manages the user interface state.
// This includes navigation (column/card selection), viewport scrolling,
// terminal dimensions, and the current interaction mode.
type UIState struct {
	selectedColumn int
	selectedCard   int

	width  int
	height int

	mode Mode

	// viewportOffset is the index of the leftmost visible column
	viewportOffset int

	// viewportSize is the number of columns that fit on the screen
	viewportSize int

	// cardScrollOffsets is the index of the first visible card per column
	cardScrollOffsets map[types.ColumnID]int
}

// NewUIState creates a new UIState with default values.
func NewUIState() *UIState {
	return &UIState{
		mode:              NormalMode,
		viewportSize:      1, // recalculated when width is set
		cardScrollOffsets: make(map[types.ColumnID]int),
	}
}

// SelectedColumn returns the index of the currently selected column.
func (s *UIState) SelectedColumn() int {
	return s.selectedColumn
}

// SetSelectedColumn updates the selected column index.
func (s *UIState) SetSelectedColumn(index int) {
	s.selectedColumn = max(0, index)
}

// SelectedCard returns the index of the selected card within the selected column.
func (s *UIState) SelectedCard() int {
	return s.selectedCard
}

// SetSelectedCard updates the selected card index.
func (s *UIState) SetSelectedCard(index int) {
	s.selectedCard = max(0, index)
}

// Clamp keeps the selection inside a board with the given column count.
// cardsIn reports the number of cards of a column by index.
func (s *UIState) Clamp(columns int, cardsIn func(int) int) {
	if columns == 0 {
		s.selectedColumn, s.selectedCard = 0, 0
		s.viewportOffset = 0
		return
	}
	s.selectedColumn = min(s.selectedColumn, columns-1)
	n := cardsIn(s.selectedColumn)
	s.selectedCard = max(0, min(s.selectedCard, n-1))
	s.AdjustViewportAfterColumnRemoval(s.selectedColumn, columns)
}

// Width returns the current terminal width.
func (s *UIState) Width() int {
	return s.width
}

// SetWidth updates the terminal width and recalculates viewport size.
func (s *UIState) SetWidth(width int) {
	s.width = width
	s.calculateViewportSize()
}

// Height returns the current terminal height.
func (s *UIState) Height() int {
	return s.height
}

// SetHeight updates the terminal height.
func (s *UIState) SetHeight(height int) {
	s.height = height
}

// ContentHeight returns the height available to columns, at least 5.
func (s *UIState) ContentHeight() int {
	return max(s.height-chromeHeight, 5)
}

// VisibleCards is how many cards fit in one column at the current height.
func (s *UIState) VisibleCards() int {
	return max((s.ContentHeight()-columnOverhead)/CardHeight, 1)
}

// Mode returns the current interaction mode.
func (s *UIState) Mode() Mode {
	return s.mode
}

// SetMode updates the current interaction mode.
func (s *UIState) SetMode(mode Mode) {
	s.mode = mode
}

// ViewportOffset returns the index of the leftmost visible column.
func (s *UIState) ViewportOffset() int {
	return s.viewportOffset
}

// SetViewportOffset updates the viewport offset.
func (s *UIState) SetViewportOffset(offset int) {
	s.viewportOffset = max(0, offset)
}

// ViewportSize returns the number of columns that fit on screen.
func (s *UIState) ViewportSize() int {
	return s.viewportSize
}

// calculateViewportSize works out how many columns fit in the terminal width,
// always at least one.
func (s *UIState) calculateViewportSize() {
	if s.width == 0 {
		s.viewportSize = 1
		return
	}
	s.viewportSize = max(1, (s.width-reservedWidth)/ColumnWidth)
}

// AdjustViewportAfterColumnRemoval keeps the viewport within bounds and the
// selection visible once the column count has shrunk.
func (s *UIState) AdjustViewportAfterColumnRemoval(selectedColumn, columnsLen int) {
	if columnsLen == 0 {
		s.viewportOffset = 0
		return
	}

	if selectedColumn < s.viewportOffset {
		s.viewportOffset = selectedColumn
	}

	if s.viewportOffset+s.viewportSize > columnsLen {
		s.viewportOffset = max(0, columnsLen-s.viewportSize)
	}
}

// EnsureSelectionVisible adjusts the viewport so the selected column is on screen.
func (s *UIState) EnsureSelectionVisible(selectedColumn int) {
	if selectedColumn < s.viewportOffset {
		s.viewportOffset = selectedColumn
	}
	if selectedColumn >= s.viewportOffset+s.viewportSize {
		s.viewportOffset = selectedColumn - s.viewportSize + 1
	}
}

// ResetSelection resets both column and card selection to zero.
func (s *UIState) ResetSelection() {
	s.selectedColumn = 0
	s.selectedCard = 0
	s.viewportOffset = 0
}

// CardScrollOffset returns the index of the first visible card of a column.
func (s *UIState) CardScrollOffset(columnID types.ColumnID) int {
	return s.cardScrollOffsets[columnID]
}

// SetCardScrollOffset updates the vertical scroll offset for a column.
func (s *UIState) SetCardScrollOffset(columnID types.ColumnID, offset int) {
	s.cardScrollOffsets[columnID] = max(0, offset)
}

// EnsureCardVisible adjusts the scroll offset so the selected card is visible.
func (s *UIState) EnsureCardVisible(columnID types.ColumnID, selectedIdx int, visibleCount int) {
	offset := s.CardScrollOffset(columnID)

	if selectedIdx < offset {
		s.cardScrollOffsets[columnID] = selectedIdx
	}
	if selectedIdx >= offset+visibleCount {
		s.cardScrollOffsets[columnID] = selectedIdx - visibleCount + 1
	}
}
