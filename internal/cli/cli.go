package cli

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/thenoetrevino/kanban/internal/app"
	"github.com/thenoetrevino/kanban/internal/cli/styles"
	"github.com/thenoetrevino/kanban/internal/config"
)

// CLI represents the CLI application context
type CLI struct {
	App   *app.App // Application container with the board and theme stores
	owned bool
}

type appKey struct{}
type configPathKey struct{}

// WithApp returns a context carrying an already constructed App. Commands run
// against it instead of opening the configured storage.
func WithApp(ctx context.Context, a *app.App) context.Context {
	return context.WithValue(ctx, appKey{}, a)
}

// WithConfigPath returns a context carrying an explicit config file path
func WithConfigPath(ctx context.Context, path string) context.Context {
	return context.WithValue(ctx, configPathKey{}, path)
}

// NewCLI loads the configuration and opens the configured storage backend
func NewCLI(ctx context.Context) (*CLI, error) {
	var (
		cfg *config.Config
		err error
	)
	if path, _ := ctx.Value(configPathKey{}).(string); path != "" {
		cfg, err = config.LoadFile(path)
	} else {
		cfg, err = config.Load()
	}
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}

	application, err := app.New(ctx, cfg, app.WithLogger(slog.Default()))
	if err != nil {
		return nil, fmt.Errorf("failed to initialize storage: %w", err)
	}

	return &CLI{App: application, owned: true}, nil
}

// GetCLIFromContext returns a CLI over the App carried by ctx, or a freshly
// initialized one when ctx carries none
func GetCLIFromContext(ctx context.Context) (*CLI, error) {
	if a, ok := ctx.Value(appKey{}).(*app.App); ok && a != nil {
		return &CLI{App: a}, nil
	}
	return NewCLI(ctx)
}

// Close cleans up CLI resources. An App injected through the context is left
// open for its owner.
func (c *CLI) Close() error {
	if !c.owned {
		return nil
	}
	return c.App.Close()
}

// ThemeName returns the persisted theme as a string, for styling output
func (c *CLI) ThemeName() string {
	return c.App.Theme.Theme().String()
}

// InitStyles applies the color scheme of the persisted theme to CLI output
func (c *CLI) InitStyles() {
	styles.Init(c.App.Config.Colors.ForTheme(c.ThemeName()))
}
