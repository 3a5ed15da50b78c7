package repo

import (
	"context"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"log/slog"
	"net/http"
	"os"
	"path/filepath"
	"strings"

	"github.com/opencontainers/go-digest"
)

// Fetcher retrieves repository index archives.
type Fetcher struct {
	client    *http.Client
	indexName string
	tempDir   string
	logger    *slog.Logger
}

// New creates a Fetcher with the given options.
func New(opts ...Option) *Fetcher {
	f := &Fetcher{
		indexName: IndexName,
	}
	for _, opt := range opts {
		opt(f)
	}
	return f
}

// log returns the logger, falling back to a discard logger if nil.
func (f *Fetcher) log() *slog.Logger {
	if f.logger == nil {
		return slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	return f.logger
}

func (f *Fetcher) httpClient() *http.Client {
	if f.client == nil {
		return http.DefaultClient
	}
	return f.client
}

// Fetch retrieves the index archive at loc.
//
// The location must come from ParseLocation; Fetch performs the transfer
// only and does not re-validate schemes or path existence. On success the
// returned Archive holds exactly the transferred bytes; the caller owns
// the handle and must Close it.
func (f *Fetcher) Fetch(ctx context.Context, loc Location) (*Archive, error) {
	if loc.IsRemote() {
		return f.fetchRemote(ctx, loc)
	}
	return f.openLocal(loc)
}

// openLocal resolves the index archive under a local repository path.
// A path that already names a file is used as the archive itself, so test
// repositories can point straight at an APKINDEX.tar.gz.
func (f *Fetcher) openLocal(loc Location) (*Archive, error) {
	path := loc.Path()
	info, err := os.Stat(path)
	if err != nil {
		return nil, fmt.Errorf("stat %s: %w", path, err)
	}
	if info.IsDir() {
		path = filepath.Join(path, f.indexName)
	}

	fh, err := os.Open(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("%w: %s", ErrNotFound, path)
		}
		return nil, fmt.Errorf("open index %s: %w", path, err)
	}
	defer fh.Close()

	dgst, err := digest.Canonical.FromReader(fh)
	if err != nil {
		return nil, fmt.Errorf("read index %s: %w", path, err)
	}
	size, err := fh.Seek(0, io.SeekCurrent)
	if err != nil {
		return nil, fmt.Errorf("read index %s: %w", path, err)
	}

	f.log().Debug("opened local index", "path", path, "size", size, "digest", dgst)
	return &Archive{path: path, size: size, digest: dgst}, nil
}

// fetchRemote downloads the index archive into a uniquely named temporary
// file owned by the returned Archive. The temp file is removed here on
// every failure after creation; on success its removal is the Archive's
// Close.
func (f *Fetcher) fetchRemote(ctx context.Context, loc Location) (*Archive, error) {
	indexURL := strings.TrimRight(loc.URL(), "/") + "/" + f.indexName
	f.log().Debug("downloading index", "url", indexURL)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, indexURL, nil)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrTransfer, err)
	}
	resp, err := f.httpClient().Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrTransfer, err)
	}
	defer func() {
		_, _ = io.Copy(io.Discard, resp.Body)
		_ = resp.Body.Close()
	}()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("%w: %s returned %s", ErrTransfer, indexURL, resp.Status)
	}

	tmp, err := os.CreateTemp(f.tempDir, "depviz-index-*.tar.gz")
	if err != nil {
		return nil, fmt.Errorf("create temp file: %w", err)
	}

	digester := digest.Canonical.Digester()
	size, err := io.Copy(io.MultiWriter(tmp, digester.Hash()), resp.Body)
	if cerr := tmp.Close(); err == nil {
		err = cerr
	}
	if err != nil {
		_ = os.Remove(tmp.Name())
		return nil, fmt.Errorf("%w: %v", ErrTransfer, err)
	}

	f.log().Debug("downloaded index", "url", indexURL, "size", size, "digest", digester.Digest())
	return &Archive{
		path:   tmp.Name(),
		temp:   true,
		size:   size,
		digest: digester.Digest(),
	}, nil
}
