package commands

import (
	"context"
	"fmt"

	"daybook/internal/application"
	"daybook/internal/domain"
	"daybook/internal/ports"
)

// CreateEntryResult contains the result of creating an entry
type CreateEntryResult struct {
	Filename string
	Path     string
	Existed  bool
	Message  string
}

// CreateEntryCommand creates the entry file for a date
type CreateEntryCommand struct {
	journal ports.Journal
	Date    string
}

// NewCreateEntryCommand creates a new CreateEntryCommand
func NewCreateEntryCommand(journal ports.Journal, date string) *CreateEntryCommand {
	return &CreateEntryCommand{
		journal: journal,
		Date:    date,
	}
}

// Validate checks if the create operation is valid
func (c *CreateEntryCommand) Validate() error {
	if err := application.ValidateRequired("date", c.Date); err != nil {
		return err
	}
	return application.ValidateDate("date", c.Date)
}

// Execute runs the create entry command. Creating a date that already has
// an entry is not an error; the result says so instead.
func (c *CreateEntryCommand) Execute(ctx context.Context) (*CreateEntryResult, error) {
	if err := c.Validate(); err != nil {
		return nil, err
	}

	filename := domain.EntryFilename(c.Date)

	existed, err := c.journal.Exists(filename)
	if err != nil {
		return nil, fmt.Errorf("failed to check entry: %w", err)
	}

	if err := c.journal.Create(filename); err != nil {
		return nil, fmt.Errorf("failed to create entry: %w", err)
	}

	message := fmt.Sprintf("Created entry %s", domain.DayLabel(c.Date))
	if existed {
		message = fmt.Sprintf("Entry %s already exists", domain.DayLabel(c.Date))
	}

	return &CreateEntryResult{
		Filename: filename,
		Path:     c.journal.Path(filename),
		Existed:  existed,
		Message:  message,
	}, nil
}
