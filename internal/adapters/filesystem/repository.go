package filesystem

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"daybook/internal/domain"
	"daybook/internal/ports"
)

// Repository implements ports.Journal over a flat directory holding one
// <8-digit-date>.md file per calendar day.
type Repository struct {
	dir string
}

var _ ports.Journal = (*Repository)(nil)

// NewRepository creates a journal repository rooted at dir.
func NewRepository(dir string) *Repository {
	// Expand ~ to home directory
	if strings.HasPrefix(dir, "~") {
		home, _ := os.UserHomeDir()
		dir = filepath.Join(home, dir[1:])
	}
	return &Repository{dir: dir}
}

// Dir returns the journal directory.
func (r *Repository) Dir() string { return r.dir }

// Path returns the absolute path of an entry file.
func (r *Repository) Path(filename string) string {
	return filepath.Join(r.dir, filename)
}

// ListEntries returns the filenames of all valid entries, sorted ascending
// so lexical order matches chronological order. Files that do not follow
// the naming convention are skipped.
func (r *Repository) ListEntries() ([]string, error) {
	entries, err := os.ReadDir(r.dir)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to read journal directory: %w", err)
	}

	var names []string
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		if _, ok := domain.DateFromFilename(entry.Name()); !ok {
			continue
		}
		names = append(names, entry.Name())
	}
	sort.Strings(names)
	return names, nil
}

// Read returns the content of an entry.
func (r *Repository) Read(filename string) (string, error) {
	data, err := os.ReadFile(r.Path(filename))
	if err != nil {
		return "", fmt.Errorf("failed to read entry %s: %w", filename, err)
	}
	return string(data), nil
}

// Write replaces the content of an entry.
func (r *Repository) Write(filename, content string) error {
	if err := os.MkdirAll(r.dir, 0755); err != nil {
		return fmt.Errorf("failed to create journal directory: %w", err)
	}
	if err := os.WriteFile(r.Path(filename), []byte(content), 0o644); err != nil {
		return fmt.Errorf("failed to write entry %s: %w", filename, err)
	}
	return nil
}

// Exists reports whether an entry file is present.
func (r *Repository) Exists(filename string) (bool, error) {
	_, err := os.Stat(r.Path(filename))
	if err == nil {
		return true, nil
	}
	if os.IsNotExist(err) {
		return false, nil
	}
	return false, err
}

// Create creates an empty entry file. Creating an entry that already
// exists is a no-op.
func (r *Repository) Create(filename string) error {
	exists, err := r.Exists(filename)
	if err != nil {
		return err
	}
	if exists {
		return nil
	}
	return r.Write(filename, "")
}
