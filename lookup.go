package depviz

import (
	"context"
	"io"
	"strings"

	"github.com/rolikAsher/depviz/apkindex"
)

// Dependencies fetches the repository index at loc and returns the direct
// dependencies of pkg in declaration order.
//
// The second return reports whether pkg was present in the index: an
// absent package is a normal result, not an error, and a present package
// without dependencies yields an empty list with ok true. Any archive
// staged during the fetch is released before Dependencies returns,
// whether the lookup succeeds or fails.
func (c *Client) Dependencies(ctx context.Context, loc Location, pkg string) (deps []string, ok bool, err error) {
	archive, err := c.fetcher().Fetch(ctx, loc)
	if err != nil {
		return nil, false, err
	}
	defer func() {
		if cerr := archive.Close(); cerr != nil && err == nil {
			err = cerr
		}
	}()

	c.log().Debug("scanning index", "digest", archive.Digest(), "size", archive.Size(), "package", pkg)

	rc, err := archive.Open()
	if err != nil {
		return nil, false, err
	}
	defer rc.Close()

	return apkindex.Find(rc, pkg)
}

// Packages fetches the repository index at loc and lists the package
// names containing substr, in scan order. An empty substr lists every
// package. Duplicate blocks are reported as often as they occur.
func (c *Client) Packages(ctx context.Context, loc Location, substr string) (names []string, err error) {
	archive, err := c.fetcher().Fetch(ctx, loc)
	if err != nil {
		return nil, err
	}
	defer func() {
		if cerr := archive.Close(); cerr != nil && err == nil {
			err = cerr
		}
	}()

	rc, err := archive.Open()
	if err != nil {
		return nil, err
	}
	defer rc.Close()

	sc, err := apkindex.NewScanner(rc)
	if err != nil {
		return nil, err
	}
	defer sc.Close()

	for {
		rec, err := sc.Next()
		if err == io.EOF {
			return names, nil
		}
		if err != nil {
			return nil, err
		}
		if substr == "" || strings.Contains(rec.Name, substr) {
			names = append(names, rec.Name)
		}
	}
}
