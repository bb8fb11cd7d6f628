package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestDefaultKeyMappings(t *testing.T) {
	defaults := DefaultKeyMappings()

	if defaults.Quit != "q" {
		t.Errorf("Default Quit key = %s, want q", defaults.Quit)
	}
	if defaults.AddCard != "a" {
		t.Errorf("Default AddCard key = %s, want a", defaults.AddCard)
	}
	if defaults.ToggleTheme != "t" {
		t.Errorf("Default ToggleTheme key = %s, want t", defaults.ToggleTheme)
	}
}

func TestLoadConfigWithoutFile(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())
	t.Setenv("KANBAN_DATA_DIR", "/tmp/kanban-data")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load() without config file failed: %v", err)
	}

	if cfg.KeyMappings.Quit != "q" {
		t.Errorf("Loaded config Quit key = %s, want q (default)", cfg.KeyMappings.Quit)
	}
	if cfg.Storage.Backend != BackendSQLite {
		t.Errorf("Backend = %s, want sqlite", cfg.Storage.Backend)
	}
	if cfg.Storage.SQLitePath != filepath.Join("/tmp/kanban-data", "board.db") {
		t.Errorf("SQLitePath = %s", cfg.Storage.SQLitePath)
	}
	if cfg.Storage.BoardKey != "kanban-board" || cfg.Storage.ThemeKey != "kanban-theme" {
		t.Errorf("Unexpected keys: %s, %s", cfg.Storage.BoardKey, cfg.Storage.ThemeKey)
	}
	if cfg.Storage.Timeout != 2*time.Second {
		t.Errorf("Timeout = %v, want 2s", cfg.Storage.Timeout)
	}
	if len(cfg.Board.Columns) != 3 || cfg.Board.Columns[0] != "To Do" {
		t.Errorf("Board columns = %v", cfg.Board.Columns)
	}
	if cfg.Colors.Light.Preset != "light" || cfg.Colors.Dark.Preset != "dark" {
		t.Errorf("Presets = %s / %s", cfg.Colors.Light.Preset, cfg.Colors.Dark.Preset)
	}
}

func TestLoadConfigWithFile(t *testing.T) {
	tempDir := t.TempDir()
	t.Setenv("XDG_CONFIG_HOME", tempDir)

	configDir := filepath.Join(tempDir, "kanban")
	if err := os.MkdirAll(configDir, 0o755); err != nil {
		t.Fatalf("Failed to create config dir: %v", err)
	}

	configContent := `storage:
  backend: redis
  redis_addr: "cache:6379"
  timeout: 500ms
board:
  title: "Sprint 12"
  columns: ["Backlog", "Doing"]
key_mappings:
  quit: "x"
  add_card: "n"
colors:
  dark:
    accent: "#123456"
`
	configPath := filepath.Join(configDir, "config.yaml")
	if err := os.WriteFile(configPath, []byte(configContent), 0o644); err != nil {
		t.Fatalf("Failed to write config: %v", err)
	}

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load() with config file failed: %v", err)
	}

	if cfg.Storage.Backend != BackendRedis || cfg.Storage.RedisAddr != "cache:6379" {
		t.Errorf("Storage = %+v", cfg.Storage)
	}
	if cfg.Storage.Timeout != 500*time.Millisecond {
		t.Errorf("Timeout = %v, want 500ms", cfg.Storage.Timeout)
	}
	if cfg.Board.Title != "Sprint 12" || len(cfg.Board.Columns) != 2 {
		t.Errorf("Board = %+v", cfg.Board)
	}
	if cfg.KeyMappings.Quit != "x" || cfg.KeyMappings.AddCard != "n" {
		t.Errorf("KeyMappings = %+v", cfg.KeyMappings)
	}

	// Unspecified values should use defaults
	if cfg.KeyMappings.DeleteCard != "d" {
		t.Errorf("Loaded DeleteCard key = %s, want d (default)", cfg.KeyMappings.DeleteCard)
	}
	if cfg.Colors.Dark.Accent != "#123456" {
		t.Errorf("Dark accent = %s", cfg.Colors.Dark.Accent)
	}
	if cfg.Colors.Dark.Normal == "" || cfg.Colors.Dark.Preset != "dark" {
		t.Error("Dark scheme should be completed from the dark preset")
	}
}

func TestLoadConfigInvalidYAML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	if err := os.WriteFile(path, []byte("storage: [unclosed"), 0o644); err != nil {
		t.Fatalf("Failed to write config: %v", err)
	}

	if _, err := LoadFile(path); err == nil {
		t.Fatal("Expected error for invalid YAML")
	}
}

func TestSaveConfig(t *testing.T) {
	tempDir := t.TempDir()
	t.Setenv("XDG_CONFIG_HOME", tempDir)

	cfg := &Config{
		KeyMappings: KeyMappings{Quit: "x", AddCard: "n"},
		Storage:     StorageConfig{Backend: BackendMemory, Timeout: time.Second},
	}
	cfg.applyDefaults()

	if err := cfg.Save(); err != nil {
		t.Fatalf("Save() failed: %v", err)
	}

	configPath := filepath.Join(tempDir, "kanban", "config.yaml")
	if _, err := os.Stat(configPath); os.IsNotExist(err) {
		t.Fatalf("Config file not created at %s", configPath)
	}

	cfg2, err := Load()
	if err != nil {
		t.Fatalf("Load() after Save() failed: %v", err)
	}

	if cfg2.KeyMappings.Quit != "x" || cfg2.KeyMappings.AddCard != "n" {
		t.Errorf("Reloaded key mappings = %+v", cfg2.KeyMappings)
	}
	if cfg2.Storage.Backend != BackendMemory || cfg2.Storage.Timeout != time.Second {
		t.Errorf("Reloaded storage = %+v", cfg2.Storage)
	}
}

func TestColorsForTheme(t *testing.T) {
	c := DefaultColors()
	if c.ForTheme("dark").Preset != "dark" {
		t.Error("ForTheme(dark) should return the dark scheme")
	}
	if c.ForTheme("light").Preset != "light" {
		t.Error("ForTheme(light) should return the light scheme")
	}
	if c.ForTheme("bogus").Preset != "light" {
		t.Error("Unknown theme should fall back to light")
	}
}
