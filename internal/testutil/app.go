package testutil

import (
	"context"
	"io"
	"log/slog"
	"testing"
	"time"

	"github.com/thenoetrevino/kanban/internal/app"
	"github.com/thenoetrevino/kanban/internal/config"
	"github.com/thenoetrevino/kanban/internal/storage"
)

// Epoch is the fixed clock used by SetupTestApp
var Epoch = time.Date(2024, 6, 1, 9, 0, 0, 0, time.UTC)

// SetupTestApp creates an App over in-memory storage with the default board,
// a silent logger and a clock fixed at Epoch. Extra options are applied last.
func SetupTestApp(t *testing.T, opts ...app.Option) (*app.App, *storage.Memory) {
	t.Helper()

	cfg := config.Default()
	cfg.Storage.Backend = config.BackendMemory
	mem := storage.NewMemory(nil)

	base := []app.Option{
		app.WithStore(mem),
		app.WithLogger(slog.New(slog.NewTextHandler(io.Discard, nil))),
		app.WithClock(func() time.Time { return Epoch }),
	}
	application, err := app.New(context.Background(), cfg, append(base, opts...)...)
	if err != nil {
		t.Fatalf("Failed to create test app: %v", err)
	}
	t.Cleanup(func() { _ = application.Close() })

	return application, mem
}
