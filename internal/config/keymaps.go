package config

// KeyMappings defines all configurable key bindings
type KeyMappings struct {
	// Cards
	AddCard    string `yaml:"add_card"`
	DeleteCard string `yaml:"delete_card"`
	ViewCard   string `yaml:"view_card"`
	GrabCard   string `yaml:"grab_card"` // Start a keyboard drag; press again to drop

	// Columns
	CreateColumn string `yaml:"create_column"`
	RenameColumn string `yaml:"rename_column"`
	DeleteColumn string `yaml:"delete_column"`

	// Navigation
	PrevColumn string `yaml:"prev_column"`
	NextColumn string `yaml:"next_column"`
	PrevCard   string `yaml:"prev_card"`
	NextCard   string `yaml:"next_card"`
	FindCard   string `yaml:"find_card"`

	// Other
	ToggleTheme string `yaml:"toggle_theme"`
	ShowHelp    string `yaml:"show_help"`
	Quit        string `yaml:"quit"`
}

// DefaultKeyMappings returns the default key mappings
func DefaultKeyMappings() KeyMappings {
	return KeyMappings{
		// Cards
		AddCard:    "a",
		DeleteCard: "d",
		ViewCard:   "v",
		GrabCard:   "m",

		// Columns
		CreateColumn: "C",
		RenameColumn: "R",
		DeleteColumn: "X",

		// Navigation
		PrevColumn: "h",
		NextColumn: "l",
		PrevCard:   "k",
		NextCard:   "j",
		FindCard:   "/",

		// Other
		ToggleTheme: "t",
		ShowHelp:    "?",
		Quit:        "q",
	}
}

// applyDefaults fills in missing key mappings with defaults
func (k *KeyMappings) applyDefaults() {
	defaults := DefaultKeyMappings()

	fill := func(dst *string, src string) {
		if *dst == "" {
			*dst = src
		}
	}

	fill(&k.AddCard, defaults.AddCard)
	fill(&k.DeleteCard, defaults.DeleteCard)
	fill(&k.ViewCard, defaults.ViewCard)
	fill(&k.GrabCard, defaults.GrabCard)
	fill(&k.CreateColumn, defaults.CreateColumn)
	fill(&k.RenameColumn, defaults.RenameColumn)
	fill(&k.DeleteColumn, defaults.DeleteColumn)
	fill(&k.PrevColumn, defaults.PrevColumn)
	fill(&k.NextColumn, defaults.NextColumn)
	fill(&k.PrevCard, defaults.PrevCard)
	fill(&k.NextCard, defaults.NextCard)
	fill(&k.FindCard, defaults.FindCard)
	fill(&k.ToggleTheme, defaults.ToggleTheme)
	fill(&k.ShowHelp, defaults.ShowHelp)
	fill(&k.Quit, defaults.Quit)
}
