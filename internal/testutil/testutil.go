// Package testutil builds APKINDEX archive fixtures for tests.
package testutil

import (
	"archive/tar"
	"bytes"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/klauspost/compress/gzip"
)

// Member is one file inside a fixture archive.
type Member struct {
	Name string
	Body string
}

// BuildIndex returns a gzip-compressed tar archive containing the given
// members in order.
func BuildIndex(t testing.TB, members ...Member) []byte {
	t.Helper()

	var buf bytes.Buffer
	gz := gzip.NewWriter(&buf)
	tw := tar.NewWriter(gz)
	for _, m := range members {
		hdr := &tar.Header{
			Name:    m.Name,
			Mode:    0o644,
			Size:    int64(len(m.Body)),
			ModTime: time.Unix(0, 0),
		}
		if err := tw.WriteHeader(hdr); err != nil {
			t.Fatalf("write tar header: %v", err)
		}
		if _, err := tw.Write([]byte(m.Body)); err != nil {
			t.Fatalf("write tar body: %v", err)
		}
	}
	if err := tw.Close(); err != nil {
		t.Fatalf("close tar writer: %v", err)
	}
	if err := gz.Close(); err != nil {
		t.Fatalf("close gzip writer: %v", err)
	}
	return buf.Bytes()
}

// WriteIndex writes a fixture archive named APKINDEX.tar.gz into dir and
// returns its path.
func WriteIndex(t testing.TB, dir string, members ...Member) string {
	t.Helper()

	path := filepath.Join(dir, "APKINDEX.tar.gz")
	if err := os.WriteFile(path, BuildIndex(t, members...), 0o644); err != nil {
		t.Fatalf("write index fixture: %v", err)
	}
	return path
}
