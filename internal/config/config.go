package config

import (
	"os"
	"path/filepath"
	"time"

	"gopkg.in/yaml.v3"
)

// Storage backends
const (
	BackendSQLite = "sqlite"
	BackendRedis  = "redis"
	BackendMemory = "memory"
)

// Default storage keys, shared with the browser build of the board
const (
	DefaultBoardKey = "kanban-board"
	DefaultThemeKey = "kanban-theme"
)

// Config represents the application configuration
type Config struct {
	Storage     StorageConfig `yaml:"storage"`
	Board       BoardConfig   `yaml:"board"`
	KeyMappings KeyMappings   `yaml:"key_mappings"`
	Colors      Colors        `yaml:"colors"`
}

// StorageConfig selects and configures the key-value backend
type StorageConfig struct {
	Backend     string        `yaml:"backend"`
	SQLitePath  string        `yaml:"sqlite_path"`
	RedisAddr   string        `yaml:"redis_addr"`
	RedisDB     int           `yaml:"redis_db"`
	RedisPass   string        `yaml:"redis_password"`
	RedisPrefix string        `yaml:"redis_prefix"`
	BoardKey    string        `yaml:"board_key"`
	ThemeKey    string        `yaml:"theme_key"`
	Timeout     time.Duration `yaml:"timeout"`
}

// BoardConfig controls how a fresh board is seeded
type BoardConfig struct {
	Title   string   `yaml:"title"`
	Columns []string `yaml:"columns"`
}

// Default returns a fully populated default config
func Default() *Config {
	cfg := &Config{}
	cfg.applyDefaults()
	return cfg
}

// loadThemeFile loads and merges colors from the KANBAN_THEME_FILE environment variable
func loadThemeFile(config *Config) {
	themeFile := os.Getenv("KANBAN_THEME_FILE")
	if themeFile == "" {
		return
	}

	themeData, err := os.ReadFile(themeFile)
	if err != nil {
		return
	}

	var themeConfig struct {
		Colors Colors `yaml:"colors"`
	}

	if yaml.Unmarshal(themeData, &themeConfig) == nil {
		config.Colors.Light.MergeFrom(themeConfig.Colors.Light)
		config.Colors.Dark.MergeFrom(themeConfig.Colors.Dark)
	}
}

// Load loads config from the user's config directory
// Returns default config if file doesn't exist
func Load() (*Config, error) {
	configPath, err := ConfigPath()
	if err != nil {
		config := &Config{}
		loadThemeFile(config)
		config.applyDefaults()
		return config, nil
	}

	if _, err := os.Stat(configPath); os.IsNotExist(err) {
		config := &Config{}
		loadThemeFile(config)
		config.applyDefaults()
		return config, nil
	}

	return LoadFile(configPath)
}

// LoadFile loads config from an explicit path
func LoadFile(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	var config Config
	if err := yaml.Unmarshal(data, &config); err != nil {
		return nil, err
	}

	loadThemeFile(&config)

	// Fill in any missing values with defaults
	config.applyDefaults()

	return &config, nil
}

// Save saves the config to the user's config directory
func (c *Config) Save() error {
	configPath, err := ConfigPath()
	if err != nil {
		return err
	}

	configDir := filepath.Dir(configPath)
	if err := os.MkdirAll(configDir, 0o755); err != nil {
		return err
	}

	data, err := yaml.Marshal(c)
	if err != nil {
		return err
	}

	return os.WriteFile(configPath, data, 0o644)
}

// ConfigPath returns the path to the config file
func ConfigPath() (string, error) {
	// Try XDG_CONFIG_HOME first
	if configHome := os.Getenv("XDG_CONFIG_HOME"); configHome != "" {
		return filepath.Join(configHome, "kanban", "config.yaml"), nil
	}

	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}

	return filepath.Join(homeDir, ".config", "kanban", "config.yaml"), nil
}

// DataDir returns the directory for the database and logs.
// KANBAN_DATA_DIR overrides the default ~/.kanban.
func DataDir() (string, error) {
	if dir := os.Getenv("KANBAN_DATA_DIR"); dir != "" {
		return dir, nil
	}
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(homeDir, ".kanban"), nil
}

// applyDefaults fills in missing configuration with defaults
func (c *Config) applyDefaults() {
	c.Storage.applyDefaults()
	c.Board.applyDefaults()
	c.KeyMappings.applyDefaults()
	c.Colors.applyDefaults()
}

func (s *StorageConfig) applyDefaults() {
	if s.Backend == "" {
		s.Backend = BackendSQLite
	}
	if s.SQLitePath == "" {
		if dir, err := DataDir(); err == nil {
			s.SQLitePath = filepath.Join(dir, "board.db")
		}
	}
	if s.RedisAddr == "" {
		s.RedisAddr = "localhost:6379"
	}
	if s.BoardKey == "" {
		s.BoardKey = DefaultBoardKey
	}
	if s.ThemeKey == "" {
		s.ThemeKey = DefaultThemeKey
	}
	if s.Timeout <= 0 {
		s.Timeout = 2 * time.Second
	}
}

func (b *BoardConfig) applyDefaults() {
	if b.Title == "" {
		b.Title = "My Kanban Board"
	}
	if len(b.Columns) == 0 {
		b.Columns = []string{"To Do", "In Progress", "Done"}
	}
}
