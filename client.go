package depviz

import (
	"io"
	"log/slog"

	"github.com/rolikAsher/depviz/repo"
)

// Client provides high-level dependency lookups against a package
// repository.
//
// Client wraps a repo.Fetcher and the apkindex scanner behind single-call
// operations with guaranteed cleanup of the fetched archive. A Client is
// cheap to construct and holds no state between lookups.
type Client struct {
	// fetchOpts are options passed through to the fetcher.
	fetchOpts []repo.Option

	logger *slog.Logger
}

// NewClient creates a client with the given options.
func NewClient(opts ...Option) (*Client, error) {
	c := &Client{}
	for _, opt := range opts {
		if err := opt(c); err != nil {
			return nil, err
		}
	}
	return c, nil
}

// log returns the logger, falling back to a discard logger if nil.
func (c *Client) log() *slog.Logger {
	if c.logger == nil {
		return slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	return c.logger
}

// fetcher builds the fetcher for one lookup, propagating the logger.
func (c *Client) fetcher() *repo.Fetcher {
	opts := c.fetchOpts
	if c.logger != nil {
		opts = append(opts, repo.WithLogger(c.logger))
	}
	return repo.New(opts...)
}
