package colors

// ColorScheme defines all configurable color values
type ColorScheme struct {
	// Preset name (e.g., "light", "dark", "monochrome")
	Preset string `yaml:"preset"`

	// Primary accent color (used for selections, titles, highlights)
	Accent string `yaml:"accent"`

	// Backgrounds
	Background       string `yaml:"background"`
	ColumnBackground string `yaml:"column_background"`

	// UI element colors
	ColumnBorder   string `yaml:"column_border"`
	CardBorder     string `yaml:"card_border"`
	CardBackground string `yaml:"card_background"`
	SelectedBorder string `yaml:"selected_border"`
	SelectedBg     string `yaml:"selected_bg"`
	DragBorder     string `yaml:"drag_border"` // Card being dragged

	// Text colors
	Title  string `yaml:"title"`
	Subtle string `yaml:"subtle"` // Muted/placeholder text
	Normal string `yaml:"normal"`

	// Priority colors
	PriorityLow    string `yaml:"priority_low"`
	PriorityMedium string `yaml:"priority_medium"`
	PriorityHigh   string `yaml:"priority_high"`

	// Notifications
	InfoFg  string `yaml:"info_fg"`
	ErrorFg string `yaml:"error_fg"`
}

// GetPreset returns a preset color scheme by name. Unknown names fall back
// to fallback's preset.
func GetPreset(name, fallback string) *ColorScheme {
	switch name {
	case "light":
		return Light()
	case "dark":
		return Dark()
	case "monochrome":
		return Monochrome()
	}
	if fallback != "" && fallback != name {
		return GetPreset(fallback, "")
	}
	return Light()
}

// ApplyDefaults fills in missing color values using the preset as base.
// fallback names the preset used when c.Preset is empty or unknown.
func (c *ColorScheme) ApplyDefaults(fallback string) {
	preset := GetPreset(c.Preset, fallback)
	if c.Preset == "" {
		c.Preset = preset.Preset
	}

	fill := func(dst *string, src string) {
		if *dst == "" {
			*dst = src
		}
	}

	fill(&c.Accent, preset.Accent)
	fill(&c.Background, preset.Background)
	fill(&c.ColumnBackground, preset.ColumnBackground)
	fill(&c.ColumnBorder, preset.ColumnBorder)
	fill(&c.CardBorder, preset.CardBorder)
	fill(&c.CardBackground, preset.CardBackground)
	fill(&c.SelectedBorder, preset.SelectedBorder)
	fill(&c.SelectedBg, preset.SelectedBg)
	fill(&c.DragBorder, preset.DragBorder)
	fill(&c.Title, preset.Title)
	fill(&c.Subtle, preset.Subtle)
	fill(&c.Normal, preset.Normal)
	fill(&c.PriorityLow, preset.PriorityLow)
	fill(&c.PriorityMedium, preset.PriorityMedium)
	fill(&c.PriorityHigh, preset.PriorityHigh)
	fill(&c.InfoFg, preset.InfoFg)
	fill(&c.ErrorFg, preset.ErrorFg)
}

// MergeFrom overrides colors with the non-empty values of other
func (c *ColorScheme) MergeFrom(other ColorScheme) {
	merge := func(dst *string, src string) {
		if src != "" {
			*dst = src
		}
	}

	merge(&c.Preset, other.Preset)
	merge(&c.Accent, other.Accent)
	merge(&c.Background, other.Background)
	merge(&c.ColumnBackground, other.ColumnBackground)
	merge(&c.ColumnBorder, other.ColumnBorder)
	merge(&c.CardBorder, other.CardBorder)
	merge(&c.CardBackground, other.CardBackground)
	merge(&c.SelectedBorder, other.SelectedBorder)
	merge(&c.SelectedBg, other.SelectedBg)
	merge(&c.DragBorder, other.DragBorder)
	merge(&c.Title, other.Title)
	merge(&c.Subtle, other.Subtle)
	merge(&c.Normal, other.Normal)
	merge(&c.PriorityLow, other.PriorityLow)
	merge(&c.PriorityMedium, other.PriorityMedium)
	merge(&c.PriorityHigh, other.PriorityHigh)
	merge(&c.InfoFg, other.InfoFg)
	merge(&c.ErrorFg, other.ErrorFg)
}
