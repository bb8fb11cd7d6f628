package colors

// Monochrome returns a black and white color scheme
func Monochrome() *ColorScheme {
	return &ColorScheme{
		Preset: "monochrome",

		Accent: "#FFFFFF",

		Background:       "#121212",
		ColumnBackground: "#1C1C1C",

		ColumnBorder:   "#FFFFFF",
		CardBorder:     "#585858",
		CardBackground: "#1C1C1C",
		SelectedBorder: "#FFFFFF",
		SelectedBg:     "#3A3A3A",
		DragBorder:     "#D0D0D0",

		Title:  "#FFFFFF",
		Subtle: "#585858",
		Normal: "#D0D0D0",

		PriorityLow:    "#D0D0D0",
		PriorityMedium: "#D0D0D0",
		PriorityHigh:   "#FFFFFF",

		InfoFg:  "#FFFFFF",
		ErrorFg: "#FFFFFF",
	}
}
