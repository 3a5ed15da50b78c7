// Package depviz inspects a package repository's index to resolve the
// direct dependencies of a named package. It is the data-collection core
// of a dependency graph visualizer.
//
// A repository is either a local directory or a remote base URL; both are
// expected to publish an APKINDEX.tar.gz index archive. Every lookup
// fetches the index, scans its records and releases the fetched archive
// before returning: nothing is cached between lookups.
//
// # Quick Start
//
// Resolve the dependencies of a package from a remote repository:
//
//	loc, err := depviz.ParseLocation("http://dl-cdn.alpinelinux.org/alpine/v3.18/main/x86_64")
//	if err != nil {
//	    return err
//	}
//	c, err := depviz.NewClient()
//	if err != nil {
//	    return err
//	}
//	deps, ok, err := c.Dependencies(ctx, loc, "bash")
//	if err != nil {
//	    return err
//	}
//	if !ok {
//	    fmt.Println("package not in index")
//	}
//
// For lower-level access use the [repo] fetcher and [apkindex] scanner
// subpackages directly.
package depviz
