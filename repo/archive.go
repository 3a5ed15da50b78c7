package repo

import (
	"io"
	"os"

	"github.com/opencontainers/go-digest"
)

// Archive is a handle to a fetched index archive.
//
// The handle owns any temporary file backing the bytes; Close must run on
// every path once the archive has been consumed, typically via defer.
// An Archive is consumed by a single lookup and never reused.
type Archive struct {
	path   string
	temp   bool
	size   int64
	digest digest.Digest
	closed bool
}

// Size returns the archive size in bytes.
func (a *Archive) Size() int64 {
	return a.size
}

// Digest returns the sha256 digest of the archive bytes.
func (a *Archive) Digest() digest.Digest {
	return a.digest
}

// Open returns a reader over the raw archive bytes.
func (a *Archive) Open() (io.ReadCloser, error) {
	return os.Open(a.path)
}

// Close releases the archive, deleting its temporary file if one exists.
// Close is idempotent.
func (a *Archive) Close() error {
	if a.closed {
		return nil
	}
	a.closed = true
	if !a.temp {
		return nil
	}
	return os.Remove(a.path)
}
