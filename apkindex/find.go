package apkindex

import "io"

// Find scans the archive in r for the first record named pkg and returns
// its dependency tokens in declaration order.
//
// The second return reports whether the package was present at all: a
// package with no D: line yields an empty dependency list with ok true,
// which is distinct from the package being absent. Matching is exact and
// case-sensitive, and the scan stops at the first matching block.
func Find(r io.Reader, pkg string) (deps []string, ok bool, err error) {
	sc, err := NewScanner(r)
	if err != nil {
		return nil, false, err
	}
	defer sc.Close()

	for {
		rec, err := sc.Next()
		if err == io.EOF {
			return nil, false, nil
		}
		if err != nil {
			return nil, false, err
		}
		if rec.Name == pkg {
			return rec.Depends, true, nil
		}
	}
}
