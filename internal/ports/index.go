package ports

// SearchMatch is a single match returned by the entry index.
type SearchMatch struct {
	Filename string // entry filename
	Date     string // 8-digit date
	LineNo   int    // 1-based line of the first match
	Line     string // the matching line, trimmed
}

// EntryIndex provides full-text search over journal entries. The index is
// a rebuildable cache; the entry files stay the single source of truth.
type EntryIndex interface {
	// Sync brings the index up to date with the journal directory,
	// adding new entries, refreshing modified ones, and dropping rows
	// for deleted files.
	Sync() error

	// Search returns entries whose content matches the query,
	// newest first.
	Search(query string) ([]SearchMatch, error)

	Close() error
}
