package depviz

import (
	"github.com/rolikAsher/depviz/apkindex"
	"github.com/rolikAsher/depviz/repo"
)

// Errors re-exported from repo.
var (
	// ErrInvalidLocation is returned when a repository location is malformed
	// or does not exist.
	ErrInvalidLocation = repo.ErrInvalidLocation

	// ErrNotFound is returned when the index archive does not exist at a
	// local repository location.
	ErrNotFound = repo.ErrNotFound

	// ErrTransfer is returned when a remote index fetch fails.
	ErrTransfer = repo.ErrTransfer
)

// Errors re-exported from apkindex.
var (
	// ErrCorrupt is returned when a fetched archive cannot be decompressed
	// or is not a valid tar container.
	ErrCorrupt = apkindex.ErrCorrupt
)
