package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoadOrCreate_WritesDefault(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")

	cfg, err := LoadOrCreate(path)
	if err != nil {
		t.Fatalf("LoadOrCreate failed: %v", err)
	}
	if cfg.JournalDir != DefaultJournalDir {
		t.Errorf("JournalDir = %q, want default", cfg.JournalDir)
	}
	if _, err := os.Stat(path); err != nil {
		t.Errorf("default config file was not written: %v", err)
	}
}

func TestLoadOrCreate_ReadsExisting(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	content := `journal_dir = "/tmp/journal"

[sync]
provider = "dir"
path = "/tmp/mirror"

[assistant]
model = "sonnet"
context_entries = 7
`
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}

	cfg, err := LoadOrCreate(path)
	if err != nil {
		t.Fatalf("LoadOrCreate failed: %v", err)
	}
	if cfg.JournalDir != "/tmp/journal" {
		t.Errorf("JournalDir = %q", cfg.JournalDir)
	}
	if cfg.Sync.Provider != "dir" || cfg.Sync.Path != "/tmp/mirror" {
		t.Errorf("Sync = %+v", cfg.Sync)
	}
	if cfg.Assistant.Model != "sonnet" || cfg.Assistant.ContextEntries != 7 {
		t.Errorf("Assistant = %+v", cfg.Assistant)
	}
}

func TestLoadOrCreate_EnvOverride(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	t.Setenv("DAYBOOK_DIR", "/override/journal")

	cfg, err := LoadOrCreate(path)
	if err != nil {
		t.Fatalf("LoadOrCreate failed: %v", err)
	}
	if cfg.JournalDir != "/override/journal" {
		t.Errorf("JournalDir = %q, want env override", cfg.JournalDir)
	}
}
