package domain

import (
	"errors"
	"testing"
)

func TestParseEntryDate(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		wantErr error
	}{
		{
			name:  "valid date",
			input: "20250131",
		},
		{
			name:  "leap day",
			input: "20240229",
		},
		{
			name:    "too short",
			input:   "2025131",
			wantErr: ErrDateFormat,
		},
		{
			name:    "too long",
			input:   "202501311",
			wantErr: ErrDateFormat,
		},
		{
			name:    "non-digit",
			input:   "2025013a",
			wantErr: ErrDateFormat,
		},
		{
			name:    "empty",
			input:   "",
			wantErr: ErrDateFormat,
		},
		{
			name:    "february 30th",
			input:   "20250230",
			wantErr: ErrDateInvalid,
		},
		{
			name:    "month 13",
			input:   "20251301",
			wantErr: ErrDateInvalid,
		},
		{
			name:    "leap day in non-leap year",
			input:   "20250229",
			wantErr: ErrDateInvalid,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ParseEntryDate(tt.input)
			if tt.wantErr == nil {
				if err != nil {
					t.Fatalf("ParseEntryDate(%q) failed: %v", tt.input, err)
				}
				return
			}
			if !errors.Is(err, tt.wantErr) {
				t.Errorf("ParseEntryDate(%q) = %v, want %v", tt.input, err, tt.wantErr)
			}
		})
	}
}

func TestDateFromFilename(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		want     string
		wantOK   bool
	}{
		{name: "valid entry", input: "20250315.md", want: "20250315", wantOK: true},
		{name: "wrong extension", input: "20250315.txt"},
		{name: "no extension", input: "20250315"},
		{name: "short date", input: "2025031.md"},
		{name: "impossible date", input: "20250230.md"},
		{name: "unrelated file", input: "notes.md"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := DateFromFilename(tt.input)
			if ok != tt.wantOK {
				t.Fatalf("DateFromFilename(%q) ok = %v, want %v", tt.input, ok, tt.wantOK)
			}
			if got != tt.want {
				t.Errorf("DateFromFilename(%q) = %q, want %q", tt.input, got, tt.want)
			}
		})
	}
}

func TestLabels(t *testing.T) {
	date := "20250315"
	if got := YearLabel(date); got != "2025" {
		t.Errorf("YearLabel = %q", got)
	}
	if got := MonthLabel(date); got != "2025-03" {
		t.Errorf("MonthLabel = %q", got)
	}
	if got := DayLabel(date); got != "2025-03-15" {
		t.Errorf("DayLabel = %q", got)
	}
	if got := EntryFilename(date); got != "20250315.md" {
		t.Errorf("EntryFilename = %q", got)
	}
}
