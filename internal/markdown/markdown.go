// Package markdown renders card descriptions for the terminal with glamour.
package markdown

import (
	"fmt"
	"strings"
	"sync"

	"github.com/charmbracelet/glamour"
)

type rendererKey struct {
	width int
	style string
}

// Cache Glamour renderers by width and style to avoid expensive re-creation
var rendererCache sync.Map // map[rendererKey]*glamour.TermRenderer

// getRenderer returns a cached renderer for the given width and style
func getRenderer(width int, style string) (*glamour.TermRenderer, error) {
	key := rendererKey{width: width, style: style}
	if cached, ok := rendererCache.Load(key); ok {
		return cached.(*glamour.TermRenderer), nil
	}

	renderer, err := glamour.NewTermRenderer(
		glamour.WithStandardStyle(style),
		glamour.WithWordWrap(width),
	)
	if err != nil {
		return nil, fmt.Errorf("create markdown renderer: %w", err)
	}

	rendererCache.Store(key, renderer)
	return renderer, nil
}

// Render renders text as markdown for a "light" or "dark" terminal. If
// rendering fails the raw text is returned.
func Render(text string, width int, theme string) string {
	if strings.TrimSpace(text) == "" {
		return ""
	}
	if width <= 0 {
		width = 80
	}
	style := "light"
	if theme == "dark" {
		style = "dark"
	}

	renderer, err := getRenderer(width, style)
	if err != nil {
		return text
	}
	out, err := renderer.Render(text)
	if err != nil {
		return text
	}
	return strings.TrimSpace(out)
}
