package ports

// EntryContext is one journal entry handed to the assistant as context.
type EntryContext struct {
	Date    string // formatted date label, e.g. "2025-03-15"
	Content string
}

// Assistant defines the interface for the AI question-answering side-mode.
type Assistant interface {
	// Ask answers a free-form question about the given entries.
	Ask(question string, entries []EntryContext) (string, error)

	// IsAvailable returns true if the assistant backend (e.g. the claude
	// CLI) is installed and usable.
	IsAvailable() bool
}
