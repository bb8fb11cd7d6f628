package config

import "github.com/thenoetrevino/kanban/internal/config/colors"

// ColorScheme is re-exported so callers only import config
type ColorScheme = colors.ColorScheme

// Colors holds one scheme per theme
type Colors struct {
	Light ColorScheme `yaml:"light"`
	Dark  ColorScheme `yaml:"dark"`
}

// DefaultColors returns the built-in light and dark schemes
func DefaultColors() Colors {
	return Colors{
		Light: *colors.Light(),
		Dark:  *colors.Dark(),
	}
}

// ForTheme returns the scheme for a theme name ("light" or "dark")
func (c Colors) ForTheme(name string) ColorScheme {
	if name == "dark" {
		return c.Dark
	}
	return c.Light
}

func (c *Colors) applyDefaults() {
	c.Light.ApplyDefaults("light")
	c.Dark.ApplyDefaults("dark")
}
