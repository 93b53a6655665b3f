package domain

import (
	"errors"
	"fmt"
	"strings"
	"time"
)

// EntryExt is the extension every journal entry file carries.
const EntryExt = ".md"

// dateLayout is the 8-digit date format used in entry filenames.
const dateLayout = "20060102"

var (
	// ErrDateFormat is returned when a date string is not exactly
	// 8 ASCII digits.
	ErrDateFormat = errors.New("date must be 8 digits (YYYYMMDD)")

	// ErrDateInvalid is returned when an 8-digit string does not name
	// a real calendar date.
	ErrDateInvalid = errors.New("not a valid calendar date")
)

// ParseEntryDate validates an 8-digit date string and returns the date it
// names. The two failure modes are distinguishable with errors.Is: a string
// that is not 8 ASCII digits fails with ErrDateFormat, a well-formed string
// that names an impossible date (e.g. "20250230") fails with ErrDateInvalid.
func ParseEntryDate(s string) (time.Time, error) {
	if len(s) != 8 {
		return time.Time{}, ErrDateFormat
	}
	for _, c := range []byte(s) {
		if c < '0' || c > '9' {
			return time.Time{}, ErrDateFormat
		}
	}
	t, err := time.Parse(dateLayout, s)
	if err != nil {
		return time.Time{}, fmt.Errorf("%q: %w", s, ErrDateInvalid)
	}
	return t, nil
}

// EntryFilename returns the filename for an 8-digit date string.
func EntryFilename(date string) string {
	return date + EntryExt
}

// DateFromFilename extracts the 8-digit date from an entry filename.
// It returns false for names that do not follow the <date>.md convention.
func DateFromFilename(name string) (string, bool) {
	base, ok := strings.CutSuffix(name, EntryExt)
	if !ok {
		return "", false
	}
	if _, err := ParseEntryDate(base); err != nil {
		return "", false
	}
	return base, true
}

// Today returns the current date as an 8-digit string, used as the
// default value of the new-entry prompt.
func Today() string {
	return time.Now().Format(dateLayout)
}

// YearLabel, MonthLabel and DayLabel format the tree labels for an
// 8-digit date string ("2025", "2025-03", "2025-03-15").
func YearLabel(date string) string  { return date[:4] }
func MonthLabel(date string) string { return date[:4] + "-" + date[4:6] }
func DayLabel(date string) string   { return date[:4] + "-" + date[4:6] + "-" + date[6:] }
