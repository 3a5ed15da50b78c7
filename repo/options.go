package repo

import (
	"log/slog"
	"net/http"
)

// IndexName is the well-known index archive filename published by
// Alpine-style repositories.
const IndexName = "APKINDEX.tar.gz"

// Option configures a Fetcher.
type Option func(*Fetcher)

// WithHTTPClient sets the HTTP client used for remote fetches.
func WithHTTPClient(client *http.Client) Option {
	return func(f *Fetcher) {
		f.client = client
	}
}

// WithIndexName overrides the archive filename appended to the repository
// base location.
func WithIndexName(name string) Option {
	return func(f *Fetcher) {
		if name == "" {
			return
		}
		f.indexName = name
	}
}

// WithTempDir sets the directory used to stage downloaded archives.
// An empty value means the system default.
func WithTempDir(dir string) Option {
	return func(f *Fetcher) {
		f.tempDir = dir
	}
}

// WithLogger sets the logger for fetch operations. Fetches are silent
// without one.
func WithLogger(logger *slog.Logger) Option {
	return func(f *Fetcher) {
		f.logger = logger
	}
}
