package syncdir

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"daybook/internal/domain"
	"daybook/internal/ports"
)

// Target implements ports.SyncTarget over a plain directory, typically a
// mounted network share or a folder watched by a file-sync daemon.
type Target struct {
	dir string
}

var _ ports.SyncTarget = (*Target)(nil)

// NewTarget creates a sync target rooted at dir.
func NewTarget(dir string) *Target {
	if strings.HasPrefix(dir, "~") {
		home, _ := os.UserHomeDir()
		dir = filepath.Join(home, dir[1:])
	}
	return &Target{dir: dir}
}

// Upload stores an entry in the target directory.
func (t *Target) Upload(filename, content string) error {
	if err := os.MkdirAll(t.dir, 0755); err != nil {
		return fmt.Errorf("failed to create sync directory: %w", err)
	}
	if err := os.WriteFile(filepath.Join(t.dir, filename), []byte(content), 0o644); err != nil {
		return fmt.Errorf("failed to upload %s: %w", filename, err)
	}
	return nil
}

// Download retrieves an entry from the target directory.
func (t *Target) Download(filename string) (string, error) {
	data, err := os.ReadFile(filepath.Join(t.dir, filename))
	if err != nil {
		return "", fmt.Errorf("failed to download %s: %w", filename, err)
	}
	return string(data), nil
}

// List returns the entry filenames present in the target directory,
// sorted ascending. Files that do not follow the entry naming convention
// are skipped.
func (t *Target) List() ([]string, error) {
	dirents, err := os.ReadDir(t.dir)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to read sync directory: %w", err)
	}

	var names []string
	for _, d := range dirents {
		if d.IsDir() {
			continue
		}
		if _, ok := domain.DateFromFilename(d.Name()); !ok {
			continue
		}
		names = append(names, d.Name())
	}
	sort.Strings(names)
	return names, nil
}
