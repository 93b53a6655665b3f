package commands

import (
	"context"
	"fmt"

	"daybook/internal/domain"
	"daybook/internal/ports"
)

// EntryInfo is one journal entry in a listing.
type EntryInfo struct {
	Filename string
	Date     string // formatted, e.g. "2025-03-15"
}

// ListEntriesCommand lists all journal entries
type ListEntriesCommand struct {
	journal ports.Journal
}

// NewListEntriesCommand creates a new ListEntriesCommand
func NewListEntriesCommand(journal ports.Journal) *ListEntriesCommand {
	return &ListEntriesCommand{journal: journal}
}

// Execute returns all entries, oldest first.
func (c *ListEntriesCommand) Execute(ctx context.Context) ([]EntryInfo, error) {
	names, err := c.journal.ListEntries()
	if err != nil {
		return nil, fmt.Errorf("failed to list entries: %w", err)
	}

	infos := make([]EntryInfo, 0, len(names))
	for _, name := range names {
		date, ok := domain.DateFromFilename(name)
		if !ok {
			continue
		}
		infos = append(infos, EntryInfo{
			Filename: name,
			Date:     domain.DayLabel(date),
		})
	}
	return infos, nil
}
