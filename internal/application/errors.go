package application

import (
	"errors"
	"fmt"
)

// Sentinel errors for common conditions
var (
	ErrNotFound             = errors.New("not found")
	ErrAssistantUnavailable = errors.New("assistant unavailable")
)

// ValidationError represents a validation failure with details
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

// SyncError represents a per-entry failure during a sync run. The run
// continues past individual failures and reports them together.
type SyncError struct {
	Filename string
	Err      error
}

func (e *SyncError) Error() string {
	return fmt.Sprintf("sync %s: %v", e.Filename, e.Err)
}

func (e *SyncError) Unwrap() error { return e.Err }
