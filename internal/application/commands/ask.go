package commands

import (
	"context"
	"fmt"

	"daybook/internal/application"
	"daybook/internal/domain"
	"daybook/internal/ports"
)

// DefaultContextEntries is how many recent entries the assistant sees when
// the caller does not say otherwise.
const DefaultContextEntries = 14

// AskCommand answers a free-form question about recent journal entries
type AskCommand struct {
	journal   ports.Journal
	assistant ports.Assistant
	Question  string
	// ContextEntries caps how many of the most recent entries are handed
	// to the assistant. Zero means DefaultContextEntries.
	ContextEntries int
}

// NewAskCommand creates a new AskCommand
func NewAskCommand(journal ports.Journal, assistant ports.Assistant, question string) *AskCommand {
	return &AskCommand{
		journal:   journal,
		assistant: assistant,
		Question:  question,
	}
}

// Validate checks if the ask operation is valid
func (c *AskCommand) Validate() error {
	if err := application.ValidateRequired("question", c.Question); err != nil {
		return err
	}
	if !c.assistant.IsAvailable() {
		return application.ErrAssistantUnavailable
	}
	return nil
}

// Execute gathers the most recent entries and asks the assistant.
func (c *AskCommand) Execute(ctx context.Context) (string, error) {
	if err := c.Validate(); err != nil {
		return "", err
	}

	entries, err := c.gatherContext()
	if err != nil {
		return "", err
	}
	if len(entries) == 0 {
		return "", fmt.Errorf("journal is empty: %w", application.ErrNotFound)
	}

	return c.assistant.Ask(c.Question, entries)
}

// gatherContext reads the last N entries, returned oldest first so the
// assistant sees them in chronological order.
func (c *AskCommand) gatherContext() ([]ports.EntryContext, error) {
	names, err := c.journal.ListEntries()
	if err != nil {
		return nil, fmt.Errorf("failed to list entries: %w", err)
	}

	limit := c.ContextEntries
	if limit <= 0 {
		limit = DefaultContextEntries
	}
	if len(names) > limit {
		names = names[len(names)-limit:]
	}

	var entries []ports.EntryContext
	for _, name := range names {
		date, ok := domain.DateFromFilename(name)
		if !ok {
			continue
		}
		content, err := c.journal.Read(name)
		if err != nil {
			return nil, fmt.Errorf("failed to read %s: %w", name, err)
		}
		entries = append(entries, ports.EntryContext{
			Date:    domain.DayLabel(date),
			Content: content,
		})
	}
	return entries, nil
}
