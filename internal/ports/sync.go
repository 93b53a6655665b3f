package ports

// SyncTarget defines the capability set of a remote-sync provider. The
// provider is selected once at startup from configuration and passed in
// as a dependency.
type SyncTarget interface {
	// Upload stores an entry on the target, overwriting any previous copy.
	Upload(filename, content string) error

	// Download retrieves an entry from the target.
	Download(filename string) (string, error)

	// List returns the entry filenames present on the target.
	List() ([]string, error)
}
