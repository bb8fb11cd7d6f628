package colors

// Light returns the light color scheme (paper background, violet accent)
func Light() *ColorScheme {
	return &ColorScheme{
		Preset: "light",

		Accent: "#624C83",

		Background:       "#F2ECBC",
		ColumnBackground: "#E5DDB0",

		ColumnBorder:   "#A09CAC",
		CardBorder:     "#C7BFA0",
		CardBackground: "#DCD5AC",
		SelectedBorder: "#597B75",
		SelectedBg:     "#C9CBD1",
		DragBorder:     "#CC6D00",

		Title:  "#4D699B",
		Subtle: "#8A8980",
		Normal: "#545464",

		PriorityLow:    "#6F894E",
		PriorityMedium: "#77713F",
		PriorityHigh:   "#C84053",

		InfoFg:  "#597B75",
		ErrorFg: "#D7474B",
	}
}
