package kvstore

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/peterbourgon/diskv/v3"

	"daybook/internal/domain"
	"daybook/internal/ports"
)

// Target implements ports.SyncTarget on a diskv key/value store. Entries
// are keyed by filename and sharded into year directories so a long-lived
// journal does not pile thousands of files into one directory.
type Target struct {
	d *diskv.Diskv
}

var _ ports.SyncTarget = (*Target)(nil)

// NewTarget creates a key/value sync target rooted at basePath.
func NewTarget(basePath string) *Target {
	if strings.HasPrefix(basePath, "~") {
		home, _ := os.UserHomeDir()
		basePath = filepath.Join(home, basePath[1:])
	}
	return &Target{d: diskv.New(diskv.Options{
		BasePath:          basePath,
		AdvancedTransform: keyTransform,
		InverseTransform:  inverseTransform,
		CacheSizeMax:      1024 * 1024, // 1MB
	})}
}

// keyTransform shards entry keys by year: 20250315.md -> 2025/20250315.md.
func keyTransform(key string) *diskv.PathKey {
	if _, ok := domain.DateFromFilename(key); ok {
		return &diskv.PathKey{Path: []string{key[:4]}, FileName: key}
	}
	return &diskv.PathKey{FileName: key}
}

func inverseTransform(pk *diskv.PathKey) string {
	return pk.FileName
}

// Upload stores an entry under its filename key.
func (t *Target) Upload(filename, content string) error {
	if err := t.d.Write(filename, []byte(content)); err != nil {
		return fmt.Errorf("failed to upload %s: %w", filename, err)
	}
	return nil
}

// Download retrieves an entry by filename key.
func (t *Target) Download(filename string) (string, error) {
	data, err := t.d.Read(filename)
	if err != nil {
		return "", fmt.Errorf("failed to download %s: %w", filename, err)
	}
	return string(data), nil
}

// List returns the entry filenames present in the store, sorted ascending.
func (t *Target) List() ([]string, error) {
	var names []string
	for key := range t.d.Keys(nil) {
		if _, ok := domain.DateFromFilename(key); !ok {
			continue
		}
		names = append(names, key)
	}
	sort.Strings(names)
	return names, nil
}
