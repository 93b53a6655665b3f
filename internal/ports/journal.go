package ports

// Journal defines the interface for entry storage. Entries are identified
// by filename (<8-digit-date>.md); exactly one file exists per calendar day.
type Journal interface {
	// ListEntries returns the filenames of all valid entries in the
	// journal directory, sorted ascending (chronological order).
	ListEntries() ([]string, error)

	// Read returns the content of an entry.
	Read(filename string) (string, error)

	// Write replaces the content of an entry.
	Write(filename, content string) error

	// Exists reports whether an entry file is present.
	Exists(filename string) (bool, error)

	// Create creates an empty entry file. Creating an entry that already
	// exists is a no-op.
	Create(filename string) error

	// Path returns the absolute path of an entry file.
	Path(filename string) string

	// Dir returns the journal directory.
	Dir() string
}
