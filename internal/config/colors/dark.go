package colors

// Dark returns the dark color scheme (purple accent)
func Dark() *ColorScheme {
	return &ColorScheme{
		Preset: "dark",

		Accent: "#874BFD",

		Background:       "#1C1C1C",
		ColumnBackground: "#262626",

		ColumnBorder:   "#5F87D7",
		CardBorder:     "#585858",
		CardBackground: "#262626",
		SelectedBorder: "#D75FD7",
		SelectedBg:     "#3A3A3A",
		DragBorder:     "#FFD700",

		Title:  "#D75FD7",
		Subtle: "#585858",
		Normal: "#D0D0D0",

		PriorityLow:    "#5FD75F",
		PriorityMedium: "#FFD700",
		PriorityHigh:   "#FF5F5F",

		InfoFg:  "#00AFFF",
		ErrorFg: "#FF0000",
	}
}
