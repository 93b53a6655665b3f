package commands

import (
	"context"
	"strings"
	"testing"
)

func TestCreateEntryCommand(t *testing.T) {
	tests := []struct {
		name        string
		date        string
		existing    map[string]string
		wantErr     bool
		errContains string
		wantExisted bool
	}{
		{
			name: "creates new entry",
			date: "20250315",
		},
		{
			name:        "existing entry is not an error",
			date:        "20250315",
			existing:    map[string]string{"20250315.md": "already here"},
			wantExisted: true,
		},
		{
			name:        "empty date",
			date:        "",
			wantErr:     true,
			errContains: "date is required",
		},
		{
			name:        "malformed date",
			date:        "2025-03-15",
			wantErr:     true,
			errContains: "date",
		},
		{
			name:        "impossible date",
			date:        "20250230",
			wantErr:     true,
			errContains: "date",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			journal := newMemJournal(tt.existing)
			cmd := NewCreateEntryCommand(journal, tt.date)

			result, err := cmd.Execute(context.Background())
			if tt.wantErr {
				if err == nil {
					t.Fatal("expected error, got nil")
				}
				if !strings.Contains(err.Error(), tt.errContains) {
					t.Errorf("error %q does not contain %q", err, tt.errContains)
				}
				return
			}
			if err != nil {
				t.Fatalf("Execute failed: %v", err)
			}

			if result.Filename != "20250315.md" {
				t.Errorf("Filename = %q", result.Filename)
			}
			if result.Existed != tt.wantExisted {
				t.Errorf("Existed = %v, want %v", result.Existed, tt.wantExisted)
			}

			// Content of an existing entry must survive.
			got, _ := journal.Read("20250315.md")
			if tt.wantExisted && got != "already here" {
				t.Errorf("existing content clobbered: %q", got)
			}
			if !tt.wantExisted && got != "" {
				t.Errorf("new entry not empty: %q", got)
			}
		})
	}
}

func TestShowEntryCommand(t *testing.T) {
	journal := newMemJournal(map[string]string{"20250315.md": "the content"})

	content, err := NewShowEntryCommand(journal, "20250315").Execute(context.Background())
	if err != nil {
		t.Fatalf("Execute failed: %v", err)
	}
	if content != "the content" {
		t.Errorf("content = %q", content)
	}

	if _, err := NewShowEntryCommand(journal, "20250316").Execute(context.Background()); err == nil {
		t.Error("expected error for missing entry")
	}
	if _, err := NewShowEntryCommand(journal, "bogus").Execute(context.Background()); err == nil {
		t.Error("expected error for malformed date")
	}
}

func TestListEntriesCommand(t *testing.T) {
	journal := newMemJournal(map[string]string{
		"20250315.md": "a",
		"20240101.md": "b",
		"stray.txt":   "ignored",
	})

	infos, err := NewListEntriesCommand(journal).Execute(context.Background())
	if err != nil {
		t.Fatalf("Execute failed: %v", err)
	}
	if len(infos) != 2 {
		t.Fatalf("got %d entries, want 2", len(infos))
	}
	if infos[0].Date != "2024-01-01" || infos[1].Date != "2025-03-15" {
		t.Errorf("dates = %s, %s", infos[0].Date, infos[1].Date)
	}
}
