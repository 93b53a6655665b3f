package commands

import (
	"context"
	"fmt"

	"daybook/internal/application"
	"daybook/internal/domain"
	"daybook/internal/ports"
)

// ShowEntryCommand reads the content of one entry by date
type ShowEntryCommand struct {
	journal ports.Journal
	Date    string
}

// NewShowEntryCommand creates a new ShowEntryCommand
func NewShowEntryCommand(journal ports.Journal, date string) *ShowEntryCommand {
	return &ShowEntryCommand{
		journal: journal,
		Date:    date,
	}
}

// Validate checks if the show operation is valid
func (c *ShowEntryCommand) Validate() error {
	if err := application.ValidateRequired("date", c.Date); err != nil {
		return err
	}
	return application.ValidateDate("date", c.Date)
}

// Execute returns the entry content, or ErrNotFound if no entry exists
// for the date.
func (c *ShowEntryCommand) Execute(ctx context.Context) (string, error) {
	if err := c.Validate(); err != nil {
		return "", err
	}

	filename := domain.EntryFilename(c.Date)
	exists, err := c.journal.Exists(filename)
	if err != nil {
		return "", fmt.Errorf("failed to check entry: %w", err)
	}
	if !exists {
		return "", fmt.Errorf("no entry for %s: %w", domain.DayLabel(c.Date), application.ErrNotFound)
	}

	return c.journal.Read(filename)
}
