package commands

import (
	"context"
	"errors"
	"fmt"

	"daybook/internal/application"
	"daybook/internal/ports"
)

// SyncDirection selects which way entries flow
type SyncDirection int

const (
	// SyncPush copies local entries to the target.
	SyncPush SyncDirection = iota
	// SyncPull copies entries the journal is missing from the target.
	// Entries present on both sides are left alone; local files win.
	SyncPull
)

// SyncResult contains the outcome of a sync run
type SyncResult struct {
	Transferred int
	Skipped     int
	Message     string
}

// SyncCommand copies entries between the journal and a sync target
type SyncCommand struct {
	journal   ports.Journal
	target    ports.SyncTarget
	Direction SyncDirection
}

// NewSyncCommand creates a new SyncCommand
func NewSyncCommand(journal ports.Journal, target ports.SyncTarget, direction SyncDirection) *SyncCommand {
	return &SyncCommand{
		journal:   journal,
		target:    target,
		Direction: direction,
	}
}

// Execute runs the sync. Per-entry failures do not stop the run; they are
// collected and returned joined after every entry has been attempted.
func (c *SyncCommand) Execute(ctx context.Context) (*SyncResult, error) {
	switch c.Direction {
	case SyncPush:
		return c.push()
	case SyncPull:
		return c.pull()
	default:
		return nil, fmt.Errorf("unknown sync direction: %d", c.Direction)
	}
}

func (c *SyncCommand) push() (*SyncResult, error) {
	names, err := c.journal.ListEntries()
	if err != nil {
		return nil, fmt.Errorf("failed to list entries: %w", err)
	}

	var errs []error
	transferred := 0
	for _, name := range names {
		content, err := c.journal.Read(name)
		if err != nil {
			errs = append(errs, &application.SyncError{Filename: name, Err: err})
			continue
		}
		if err := c.target.Upload(name, content); err != nil {
			errs = append(errs, &application.SyncError{Filename: name, Err: err})
			continue
		}
		transferred++
	}

	return &SyncResult{
		Transferred: transferred,
		Message:     fmt.Sprintf("Pushed %d entries", transferred),
	}, errors.Join(errs...)
}

func (c *SyncCommand) pull() (*SyncResult, error) {
	remote, err := c.target.List()
	if err != nil {
		return nil, fmt.Errorf("failed to list target entries: %w", err)
	}

	var errs []error
	transferred, skipped := 0, 0
	for _, name := range remote {
		exists, err := c.journal.Exists(name)
		if err != nil {
			errs = append(errs, &application.SyncError{Filename: name, Err: err})
			continue
		}
		if exists {
			skipped++
			continue
		}

		content, err := c.target.Download(name)
		if err != nil {
			errs = append(errs, &application.SyncError{Filename: name, Err: err})
			continue
		}
		if err := c.journal.Write(name, content); err != nil {
			errs = append(errs, &application.SyncError{Filename: name, Err: err})
			continue
		}
		transferred++
	}

	return &SyncResult{
		Transferred: transferred,
		Skipped:     skipped,
		Message:     fmt.Sprintf("Pulled %d entries, %d already present", transferred, skipped),
	}, errors.Join(errs...)
}
