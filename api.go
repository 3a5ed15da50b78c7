package depviz

import (
	"github.com/rolikAsher/depviz/apkindex"
	"github.com/rolikAsher/depviz/repo"
)

// Re-export core types from the subpackages for the public API.
type (
	// Location identifies a package repository, local path or remote URL.
	Location = repo.Location

	// Archive is a handle to a fetched index archive.
	Archive = repo.Archive

	// Record is one package's metadata block from an APKINDEX.
	Record = apkindex.Record
)

// IndexName is the well-known index archive filename appended to a
// repository's base location.
const IndexName = repo.IndexName

// ParseLocation validates raw as a repository location: an existing local
// path, a file:// URI resolving to one, or an http, https, git or ssh URL
// with a non-empty host.
func ParseLocation(raw string) (Location, error) {
	return repo.ParseLocation(raw)
}
