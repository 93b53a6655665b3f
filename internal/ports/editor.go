package ports

import "os/exec"

// EditorOpener opens an entry file in an external editor for people who
// prefer their own editor over the built-in one.
type EditorOpener interface {
	// OpenFile blocks until the editor exits.
	OpenFile(path string) error

	// Command returns the exec.Cmd that OpenFile would run, for callers
	// that manage the process themselves.
	Command(path string) (*exec.Cmd, error)
}
