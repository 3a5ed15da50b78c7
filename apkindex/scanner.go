package apkindex

import (
	"archive/tar"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/klauspost/compress/gzip"
)

// ErrCorrupt is returned when an archive cannot be decompressed or is not
// a valid tar container.
var ErrCorrupt = errors.New("apkindex: corrupt archive")

// Record is one package's metadata block from an APKINDEX.
type Record struct {
	// Name is the package name from the block's P: line.
	Name string

	// Depends holds the whitespace-separated tokens of the D: line in the
	// order they appear. Nil when the block has no D: line.
	Depends []string
}

// Scanner iterates the package records of an APKINDEX archive.
//
// Records are yielded lazily in container order: every file inside the
// tar is scanned, each split into blank-line-separated blocks. Blocks
// without a P: line are skipped.
type Scanner struct {
	gz     *gzip.Reader
	tr     *tar.Reader
	blocks []string
}

// NewScanner opens r as a gzip-compressed tar archive.
func NewScanner(r io.Reader) (*Scanner, error) {
	gz, err := gzip.NewReader(r)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrCorrupt, err)
	}
	return &Scanner{
		gz: gz,
		tr: tar.NewReader(gz),
	}, nil
}

// Next returns the next package record, or io.EOF after the last one.
func (s *Scanner) Next() (*Record, error) {
	for {
		for len(s.blocks) > 0 {
			block := s.blocks[0]
			s.blocks = s.blocks[1:]
			if rec, ok := parseBlock(block); ok {
				return rec, nil
			}
		}

		hdr, err := s.tr.Next()
		if err == io.EOF {
			return nil, io.EOF
		}
		if err != nil {
			return nil, fmt.Errorf("%w: %v", ErrCorrupt, err)
		}
		if hdr.Typeflag != tar.TypeReg {
			continue
		}

		data, err := io.ReadAll(s.tr)
		if err != nil {
			return nil, fmt.Errorf("%w: %v", ErrCorrupt, err)
		}
		// Lenient decode: invalid byte sequences are replaced, never fatal.
		text := strings.ToValidUTF8(string(data), "�")
		s.blocks = strings.Split(text, "\n\n")
	}
}

// Close releases the decompressor. It does not close the underlying reader.
func (s *Scanner) Close() error {
	return s.gz.Close()
}

// parseBlock decodes one blank-line-delimited block. The second return is
// false for blocks without a P: line, which can never match a lookup.
func parseBlock(block string) (*Record, bool) {
	block = strings.TrimSpace(block)
	if block == "" {
		return nil, false
	}
	rec := &Record{}
	named := false
	for _, line := range strings.Split(block, "\n") {
		switch {
		case strings.HasPrefix(line, "P:"):
			rec.Name = strings.TrimSpace(line[2:])
			named = true
		case strings.HasPrefix(line, "D:"):
			rec.Depends = strings.Fields(line[2:])
		}
	}
	if !named {
		return nil, false
	}
	return rec, true
}
