package syncdir

import (
	"os"
	"path/filepath"
	"reflect"
	"testing"
)

func TestTarget_UploadDownload(t *testing.T) {
	target := NewTarget(t.TempDir())

	if err := target.Upload("20250315.md", "entry body"); err != nil {
		t.Fatalf("Upload failed: %v", err)
	}
	got, err := target.Download("20250315.md")
	if err != nil {
		t.Fatalf("Download failed: %v", err)
	}
	if got != "entry body" {
		t.Errorf("Download = %q, want %q", got, "entry body")
	}

	// Upload overwrites.
	if err := target.Upload("20250315.md", "revised"); err != nil {
		t.Fatal(err)
	}
	if got, _ := target.Download("20250315.md"); got != "revised" {
		t.Errorf("after overwrite = %q, want %q", got, "revised")
	}
}

func TestTarget_UploadCreatesDir(t *testing.T) {
	target := NewTarget(filepath.Join(t.TempDir(), "nested", "sync"))
	if err := target.Upload("20250315.md", "x"); err != nil {
		t.Fatalf("Upload into missing directory failed: %v", err)
	}
}

func TestTarget_List(t *testing.T) {
	dir := t.TempDir()
	for _, name := range []string{"20250316.md", "20250315.md", "notes.txt", ".hidden"} {
		if err := os.WriteFile(filepath.Join(dir, name), []byte("x"), 0o644); err != nil {
			t.Fatal(err)
		}
	}

	target := NewTarget(dir)
	names, err := target.List()
	if err != nil {
		t.Fatalf("List failed: %v", err)
	}
	want := []string{"20250315.md", "20250316.md"}
	if !reflect.DeepEqual(names, want) {
		t.Errorf("List = %v, want %v", names, want)
	}
}

func TestTarget_ListMissingDir(t *testing.T) {
	target := NewTarget(filepath.Join(t.TempDir(), "absent"))
	names, err := target.List()
	if err != nil {
		t.Fatalf("List failed: %v", err)
	}
	if len(names) != 0 {
		t.Errorf("List = %v, want empty", names)
	}
}

func TestTarget_DownloadMissing(t *testing.T) {
	target := NewTarget(t.TempDir())
	if _, err := target.Download("20250315.md"); err == nil {
		t.Error("expected error downloading missing entry")
	}
}
