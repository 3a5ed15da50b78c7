package depviz

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/rolikAsher/depviz/repo"
)

// Option configures a Client.
type Option func(*Client) error

// WithHTTPClient sets the HTTP client used for remote index fetches.
func WithHTTPClient(client *http.Client) Option {
	return func(c *Client) error {
		if client == nil {
			return errors.New("http client must not be nil")
		}
		c.fetchOpts = append(c.fetchOpts, repo.WithHTTPClient(client))
		return nil
	}
}

// WithIndexName overrides the index archive filename appended to the
// repository base location. The default is [IndexName].
func WithIndexName(name string) Option {
	return func(c *Client) error {
		if name == "" {
			return errors.New("index name must not be empty")
		}
		c.fetchOpts = append(c.fetchOpts, repo.WithIndexName(name))
		return nil
	}
}

// WithTempDir sets the directory used to stage downloaded archives.
func WithTempDir(dir string) Option {
	return func(c *Client) error {
		c.fetchOpts = append(c.fetchOpts, repo.WithTempDir(dir))
		return nil
	}
}

// WithLogger sets the logger for client and fetch operations.
// Operations are silent without one.
func WithLogger(logger *slog.Logger) Option {
	return func(c *Client) error {
		c.logger = logger
		return nil
	}
}
