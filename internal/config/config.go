package config

import (
	"errors"
	"os"
	"path/filepath"

	toml "github.com/pelletier/go-toml/v2"
)

const (
	// DefaultJournalDir is used when neither the config file nor the
	// DAYBOOK_DIR environment variable names a journal directory.
	DefaultJournalDir = "~/Documents/journal"

	configDirName  = "daybook"
	configFileName = "config.toml"
)

// SyncConfig selects and configures the remote-sync provider.
type SyncConfig struct {
	Provider string `toml:"provider"` // "dir" or "kv", empty disables sync
	Path     string `toml:"path"`     // target directory / store base path
}

// AssistantConfig configures the AI question-answering side-mode.
type AssistantConfig struct {
	Model          string `toml:"model"`
	ContextEntries int    `toml:"context_entries"`
}

// Config is the application configuration. The journal directory is an
// explicit value handed to every constructor; nothing discovers it by
// walking the filesystem.
type Config struct {
	JournalDir string          `toml:"journal_dir"`
	Sync       SyncConfig      `toml:"sync"`
	Assistant  AssistantConfig `toml:"assistant"`
}

// DefaultPath returns the standard config file location
// (e.g. ~/.config/daybook/config.toml).
func DefaultPath() string {
	base, err := os.UserConfigDir()
	if err != nil {
		return configFileName
	}
	return filepath.Join(base, configDirName, configFileName)
}

// LoadOrCreate reads the config file at path, writing a default one first
// if it does not exist. A DAYBOOK_DIR environment variable overrides the
// configured journal directory.
func LoadOrCreate(path string) (Config, error) {
	cfg := defaultConfig()
	if _, err := os.Stat(path); errors.Is(err, os.ErrNotExist) {
		if err := write(path, cfg); err != nil {
			return cfg, err
		}
		return applyEnv(cfg), nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, err
	}
	if err := toml.Unmarshal(data, &cfg); err != nil {
		return cfg, err
	}
	if cfg.JournalDir == "" {
		cfg.JournalDir = DefaultJournalDir
	}
	return applyEnv(cfg), nil
}

func applyEnv(cfg Config) Config {
	if env := os.Getenv("DAYBOOK_DIR"); env != "" {
		cfg.JournalDir = env
	}
	return cfg
}

func write(path string, cfg Config) error {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return err
	}
	data, err := toml.Marshal(cfg)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0o644)
}

func defaultConfig() Config {
	return Config{
		JournalDir: DefaultJournalDir,
		Assistant: AssistantConfig{
			Model:          "haiku",
			ContextEntries: 14,
		},
	}
}
