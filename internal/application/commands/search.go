package commands

import (
	"context"

	"daybook/internal/application"
	"daybook/internal/ports"
)

// SearchCommand searches entry content through the full-text index
type SearchCommand struct {
	index ports.EntryIndex
	Query string
}

// NewSearchCommand creates a new SearchCommand
func NewSearchCommand(index ports.EntryIndex, query string) *SearchCommand {
	return &SearchCommand{
		index: index,
		Query: query,
	}
}

// Validate checks if the search operation is valid
func (c *SearchCommand) Validate() error {
	return application.ValidateRequired("query", c.Query)
}

// Execute refreshes the index and returns matching entries, newest first.
func (c *SearchCommand) Execute(ctx context.Context) ([]ports.SearchMatch, error) {
	if err := c.Validate(); err != nil {
		return nil, err
	}
	if err := c.index.Sync(); err != nil {
		return nil, err
	}
	return c.index.Search(c.Query)
}
