// Package config loads the TOML configuration file and applies
// defaults.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	toml "github.com/pelletier/go-toml/v2"
)

// Config is the full configuration tree.
type Config struct {
	Board   BoardConfig   `toml:"board"`
	History HistoryConfig `toml:"history"`
	Keys    KeyConfig     `toml:"keys"`
	Logging LoggingConfig `toml:"logging"`
}

// BoardConfig locates the persisted board.
type BoardConfig struct {
	Path string `toml:"path"`
}

// HistoryConfig bounds the undo and redo stacks.
type HistoryConfig struct {
	MaxEntries int `toml:"max_entries"`
}

// KeyConfig overrides the default key bindings.
type KeyConfig struct {
	Undo string `toml:"undo"`
	Redo string `toml:"redo"`
	Save string `toml:"save"`
	Help string `toml:"help"`
}

// LoggingConfig controls the structured log sinks.
type LoggingConfig struct {
	Level   string        `toml:"level"`
	DevFile DevFileConfig `toml:"dev_file"`
}

// DevFileConfig enables the file sink used during development.
type DevFileConfig struct {
	Enabled bool   `toml:"enabled"`
	Dir     string `toml:"dir"`
}

// Default returns the configuration used when no file overrides it.
func Default(boardPath string) Config {
	return Config{
		Board: BoardConfig{
			Path: boardPath,
		},
		History: HistoryConfig{
			MaxEntries: 50,
		},
		Keys: KeyConfig{
			Undo: "u",
			Redo: "ctrl+r",
			Save: "w",
			Help: "?",
		},
		Logging: LoggingConfig{
			Level: "info",
		},
	}
}

// Load reads path over defaults. A missing or empty file leaves the
// defaults untouched.
func Load(path string, defaults Config) (Config, error) {
	cfg := defaults
	if strings.TrimSpace(path) == "" {
		return cfg, nil
	}

	content, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return cfg, nil
		}
		return Config{}, fmt.Errorf("read config: %w", err)
	}
	if len(content) == 0 {
		return cfg, nil
	}

	if err := toml.Unmarshal(content, &cfg); err != nil {
		return Config{}, fmt.Errorf("decode toml: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}

	return cfg, nil
}

// Validate rejects configurations the rest of the program cannot act
// on.
func (c Config) Validate() error {
	if strings.TrimSpace(c.Board.Path) == "" {
		return errors.New("board path is required")
	}

	if c.History.MaxEntries <= 0 {
		return fmt.Errorf("history.max_entries must be > 0, got %d", c.History.MaxEntries)
	}

	switch strings.TrimSpace(strings.ToLower(c.Logging.Level)) {
	case "debug", "info", "warn", "error", "fatal":
	default:
		return fmt.Errorf("invalid logging.level: %q", c.Logging.Level)
	}

	keys := map[string]string{
		"keys.undo": c.Keys.Undo,
		"keys.redo": c.Keys.Redo,
		"keys.save": c.Keys.Save,
		"keys.help": c.Keys.Help,
	}
	for name, key := range keys {
		if strings.TrimSpace(key) == "" {
			return fmt.Errorf("%s must not be empty", name)
		}
	}

	return nil
}

// EnsureConfigDir creates the directory that will hold path.
func EnsureConfigDir(path string) error {
	dir := filepath.Dir(path)
	if dir == "." || dir == "" {
		return nil
	}
	return os.MkdirAll(dir, 0o755)
}
