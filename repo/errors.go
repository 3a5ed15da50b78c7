package repo

import "errors"

// Sentinel errors for repository index fetches.
var (
	// ErrInvalidLocation is returned when a repository location is malformed
	// or does not exist.
	ErrInvalidLocation = errors.New("repo: invalid repository location")

	// ErrNotFound is returned when the index archive does not exist at a
	// local repository location.
	ErrNotFound = errors.New("repo: index archive not found")

	// ErrTransfer is returned when a remote index fetch fails.
	ErrTransfer = errors.New("repo: index transfer failed")
)
