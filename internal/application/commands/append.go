package commands

import (
	"context"
	"fmt"
	"strings"
	"time"

	"daybook/internal/application"
	"daybook/internal/domain"
	"daybook/internal/ports"
)

// AppendEntryResult contains the result of appending to an entry
type AppendEntryResult struct {
	Filename string
	Created  bool
	Message  string
}

// AppendEntryCommand appends a timestamped line to an entry, creating the
// entry if the date has none yet
type AppendEntryCommand struct {
	journal ports.Journal
	Date    string
	Text    string

	// now is injectable for tests.
	now func() time.Time
}

// NewAppendEntryCommand creates a new AppendEntryCommand
func NewAppendEntryCommand(journal ports.Journal, date, text string) *AppendEntryCommand {
	return &AppendEntryCommand{
		journal: journal,
		Date:    date,
		Text:    text,
		now:     time.Now,
	}
}

// Validate checks if the append operation is valid
func (c *AppendEntryCommand) Validate() error {
	if err := application.ValidateRequired("text", c.Text); err != nil {
		return err
	}
	if err := application.ValidateRequired("date", c.Date); err != nil {
		return err
	}
	return application.ValidateDate("date", c.Date)
}

// Execute appends the text as "HH:MM  text" on its own line.
func (c *AppendEntryCommand) Execute(ctx context.Context) (*AppendEntryResult, error) {
	if err := c.Validate(); err != nil {
		return nil, err
	}

	filename := domain.EntryFilename(c.Date)

	exists, err := c.journal.Exists(filename)
	if err != nil {
		return nil, fmt.Errorf("failed to check entry: %w", err)
	}

	content := ""
	if exists {
		content, err = c.journal.Read(filename)
		if err != nil {
			return nil, fmt.Errorf("failed to read entry: %w", err)
		}
	}

	line := fmt.Sprintf("%s  %s", c.now().Format("15:04"), strings.TrimRight(c.Text, "\n"))
	if content != "" && !strings.HasSuffix(content, "\n") {
		content += "\n"
	}
	content += line + "\n"

	if err := c.journal.Write(filename, content); err != nil {
		return nil, fmt.Errorf("failed to write entry: %w", err)
	}

	return &AppendEntryResult{
		Filename: filename,
		Created:  !exists,
		Message:  fmt.Sprintf("Appended to %s", domain.DayLabel(c.Date)),
	}, nil
}
