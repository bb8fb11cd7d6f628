package storage

import (
	"context"
	"errors"
	"path/filepath"
	"testing"

	miniredis "github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"

	"github.com/thenoetrevino/kanban/internal/config"
)

// ============================================================================
// TEST HELPERS
// ============================================================================

// backends returns one fresh instance of every Store implementation
func backends(t *testing.T) map[string]Store {
	t.Helper()
	ctx := context.Background()

	sqliteStore, err := OpenSQLite(ctx, MemoryDSN)
	if err != nil {
		t.Fatalf("Failed to open sqlite: %v", err)
	}
	t.Cleanup(func() { _ = sqliteStore.Close() })

	mr, err := miniredis.Run()
	if err != nil {
		t.Fatalf("start miniredis: %v", err)
	}
	t.Cleanup(mr.Close)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	redisStore := NewRedis(client, "test:")
	t.Cleanup(func() { _ = redisStore.Close() })

	return map[string]Store{
		"sqlite": sqliteStore,
		"redis":  redisStore,
		"memory": NewMemory(nil),
	}
}

// ============================================================================
// CONTRACT TESTS
// ============================================================================

func TestStore_GetMissingKey(t *testing.T) {
	for name, s := range backends(t) {
		t.Run(name, func(t *testing.T) {
			_, err := s.Get(context.Background(), "absent")
			if !errors.Is(err, ErrNotFound) {
				t.Errorf("Expected ErrNotFound, got %v", err)
			}
		})
	}
}

func TestStore_SetThenGet(t *testing.T) {
	for name, s := range backends(t) {
		t.Run(name, func(t *testing.T) {
			ctx := context.Background()
			if err := s.Set(ctx, "kanban-theme", "dark"); err != nil {
				t.Fatalf("Set failed: %v", err)
			}
			got, err := s.Get(ctx, "kanban-theme")
			if err != nil {
				t.Fatalf("Get failed: %v", err)
			}
			if got != "dark" {
				t.Errorf("Expected dark, got %q", got)
			}
		})
	}
}

func TestStore_SetOverwrites(t *testing.T) {
	for name, s := range backends(t) {
		t.Run(name, func(t *testing.T) {
			ctx := context.Background()
			for _, v := range []string{"light", "dark", "light"} {
				if err := s.Set(ctx, "k", v); err != nil {
					t.Fatalf("Set(%s) failed: %v", v, err)
				}
			}
			got, err := s.Get(ctx, "k")
			if err != nil || got != "light" {
				t.Errorf("Expected light, got %q (%v)", got, err)
			}
		})
	}
}

// ============================================================================
// BACKEND SPECIFICS
// ============================================================================

func TestSQLite_PersistsAcrossReopen(t *testing.T) {
	ctx := context.Background()
	path := filepath.Join(t.TempDir(), "nested", "board.db")

	s, err := OpenSQLite(ctx, path)
	if err != nil {
		t.Fatalf("OpenSQLite failed: %v", err)
	}
	if err := s.Set(ctx, "kanban-board", `{"id":"b"}`); err != nil {
		t.Fatalf("Set failed: %v", err)
	}
	if err := s.Close(); err != nil {
		t.Fatalf("Close failed: %v", err)
	}

	reopened, err := OpenSQLite(ctx, path)
	if err != nil {
		t.Fatalf("Reopen failed: %v", err)
	}
	defer func() { _ = reopened.Close() }()

	got, err := reopened.Get(ctx, "kanban-board")
	if err != nil || got != `{"id":"b"}` {
		t.Errorf("Expected stored board, got %q (%v)", got, err)
	}
}

func TestRedis_UsesPrefix(t *testing.T) {
	mr, err := miniredis.Run()
	if err != nil {
		t.Fatalf("start miniredis: %v", err)
	}
	t.Cleanup(mr.Close)

	s := NewRedis(redis.NewClient(&redis.Options{Addr: mr.Addr()}), "kanban:")
	t.Cleanup(func() { _ = s.Close() })

	if err := s.Set(context.Background(), "kanban-theme", "dark"); err != nil {
		t.Fatalf("Set failed: %v", err)
	}
	got, err := mr.Get("kanban:kanban-theme")
	if err != nil || got != "dark" {
		t.Errorf("Expected prefixed key in redis, got %q (%v)", got, err)
	}
}

func TestDialRedis_Unreachable(t *testing.T) {
	mr, err := miniredis.Run()
	if err != nil {
		t.Fatalf("start miniredis: %v", err)
	}
	addr := mr.Addr()
	mr.Close()

	if _, err := DialRedis(context.Background(), addr, "", 0, ""); err == nil {
		t.Fatal("Expected error dialing a closed server")
	}
}

func TestMemory_FaultInjection(t *testing.T) {
	t.Parallel()

	m := NewMemory(map[string]string{"a": "1"})
	boom := errors.New("disk full")
	m.FailSets = boom

	if err := m.Set(context.Background(), "a", "2"); !errors.Is(err, boom) {
		t.Errorf("Expected injected error, got %v", err)
	}
	got, _ := m.Get(context.Background(), "a")
	if got != "1" {
		t.Errorf("Failed Set should not change value, got %q", got)
	}
	if m.Sets() != 0 {
		t.Errorf("Expected 0 successful sets, got %d", m.Sets())
	}

	m.FailGets = boom
	if _, err := m.Get(context.Background(), "a"); !errors.Is(err, boom) {
		t.Errorf("Expected injected get error, got %v", err)
	}
}

func TestOpen(t *testing.T) {
	ctx := context.Background()

	s, err := Open(ctx, config.StorageConfig{Backend: config.BackendMemory})
	if err != nil {
		t.Fatalf("Open(memory) failed: %v", err)
	}
	if _, ok := s.(*Memory); !ok {
		t.Errorf("Expected *Memory, got %T", s)
	}

	s, err = Open(ctx, config.StorageConfig{Backend: config.BackendSQLite, SQLitePath: MemoryDSN})
	if err != nil {
		t.Fatalf("Open(sqlite) failed: %v", err)
	}
	_ = s.Close()

	if _, err := Open(ctx, config.StorageConfig{Backend: "etcd"}); !errors.Is(err, ErrUnknownBackend) {
		t.Errorf("Expected ErrUnknownBackend, got %v", err)
	}
}
