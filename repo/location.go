package repo

import (
	"fmt"
	"net/url"
	"os"
	"path/filepath"
)

// remoteSchemes are the URL schemes accepted for remote repositories.
var remoteSchemes = map[string]bool{
	"http":  true,
	"https": true,
	"git":   true,
	"ssh":   true,
}

// Location identifies a package repository, either a directory (or index
// file) on the local filesystem or a remote base URL.
//
// Locations are only constructed by ParseLocation and are immutable after
// construction.
type Location struct {
	path string // absolute filesystem path, local locations only
	url  string // base URL, remote locations only
}

// ParseLocation validates raw as a repository location.
//
// Accepted forms, tried in order:
//   - an existing filesystem path
//   - a file:// URI whose path exists
//   - an http, https, git or ssh URL with a non-empty host
//
// Anything else fails with [ErrInvalidLocation].
func ParseLocation(raw string) (Location, error) {
	if raw == "" {
		return Location{}, fmt.Errorf("%w: empty location", ErrInvalidLocation)
	}

	if _, err := os.Stat(raw); err == nil {
		abs, err := filepath.Abs(raw)
		if err != nil {
			return Location{}, fmt.Errorf("%w: %v", ErrInvalidLocation, err)
		}
		return Location{path: abs}, nil
	}

	u, err := url.Parse(raw)
	if err != nil {
		return Location{}, fmt.Errorf("%w: %q", ErrInvalidLocation, raw)
	}

	if u.Scheme == "file" && u.Path != "" {
		if _, err := os.Stat(u.Path); err != nil {
			return Location{}, fmt.Errorf("%w: file:// path does not exist: %s", ErrInvalidLocation, u.Path)
		}
		abs, err := filepath.Abs(u.Path)
		if err != nil {
			return Location{}, fmt.Errorf("%w: %v", ErrInvalidLocation, err)
		}
		return Location{path: abs}, nil
	}

	if remoteSchemes[u.Scheme] && u.Host != "" {
		return Location{url: raw}, nil
	}

	return Location{}, fmt.Errorf("%w: %q is neither an existing path nor a supported URL", ErrInvalidLocation, raw)
}

// IsRemote reports whether the location is a remote URL.
func (l Location) IsRemote() bool {
	return l.url != ""
}

// Path returns the absolute filesystem path for local locations, or ""
// for remote ones.
func (l Location) Path() string {
	return l.path
}

// URL returns the base URL for remote locations, or "" for local ones.
func (l Location) URL() string {
	return l.url
}

// String returns the path or URL the location resolved to.
func (l Location) String() string {
	if l.IsRemote() {
		return l.url
	}
	return l.path
}
