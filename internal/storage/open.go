package storage

import (
	"context"
	"fmt"

	"github.com/thenoetrevino/kanban/internal/config"
)

// Open creates the backend selected by cfg
func Open(ctx context.Context, cfg config.StorageConfig) (Store, error) {
	switch cfg.Backend {
	case config.BackendSQLite, "":
		return OpenSQLite(ctx, cfg.SQLitePath)
	case config.BackendRedis:
		return DialRedis(ctx, cfg.RedisAddr, cfg.RedisPass, cfg.RedisDB, cfg.RedisPrefix)
	case config.BackendMemory:
		return NewMemory(nil), nil
	}
	return nil, fmt.Errorf("%w: %q", ErrUnknownBackend, cfg.Backend)
}
