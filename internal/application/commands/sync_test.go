package commands

import (
	"context"
	"testing"
)

func TestSyncCommand_Push(t *testing.T) {
	journal := newMemJournal(map[string]string{
		"20250315.md": "local one",
		"20250316.md": "local two",
	})
	target := newMemTarget(nil)

	result, err := NewSyncCommand(journal, target, SyncPush).Execute(context.Background())
	if err != nil {
		t.Fatalf("Execute failed: %v", err)
	}
	if result.Transferred != 2 {
		t.Errorf("Transferred = %d, want 2", result.Transferred)
	}
	if got := target.files["20250315.md"]; got != "local one" {
		t.Errorf("target content = %q", got)
	}
}

func TestSyncCommand_PushReportsFailures(t *testing.T) {
	journal := newMemJournal(map[string]string{"20250315.md": "x"})
	target := newMemTarget(nil)
	target.failUpload = true

	result, err := NewSyncCommand(journal, target, SyncPush).Execute(context.Background())
	if err == nil {
		t.Fatal("expected error")
	}
	if result == nil || result.Transferred != 0 {
		t.Errorf("result = %+v", result)
	}
}

func TestSyncCommand_Pull(t *testing.T) {
	journal := newMemJournal(map[string]string{
		"20250315.md": "local wins",
	})
	target := newMemTarget(map[string]string{
		"20250315.md": "remote version",
		"20250316.md": "only remote",
	})

	result, err := NewSyncCommand(journal, target, SyncPull).Execute(context.Background())
	if err != nil {
		t.Fatalf("Execute failed: %v", err)
	}
	if result.Transferred != 1 || result.Skipped != 1 {
		t.Errorf("Transferred = %d, Skipped = %d; want 1, 1", result.Transferred, result.Skipped)
	}

	// The local copy of an entry present on both sides is untouched.
	if got, _ := journal.Read("20250315.md"); got != "local wins" {
		t.Errorf("local entry overwritten: %q", got)
	}
	if got, _ := journal.Read("20250316.md"); got != "only remote" {
		t.Errorf("pulled entry = %q", got)
	}
}

func TestSyncCommand_PullIntoFullJournal(t *testing.T) {
	journal := newMemJournal(map[string]string{"20250315.md": "x"})
	target := newMemTarget(map[string]string{"20250315.md": "x"})

	result, err := NewSyncCommand(journal, target, SyncPull).Execute(context.Background())
	if err != nil {
		t.Fatalf("Execute failed: %v", err)
	}
	if result.Transferred != 0 || result.Skipped != 1 {
		t.Errorf("Transferred = %d, Skipped = %d; want 0, 1", result.Transferred, result.Skipped)
	}
}
