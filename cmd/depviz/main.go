// Command depviz resolves the direct dependencies of a package from an
// Alpine-style repository index.
//
// Usage:
//
//	depviz -p bash -r http://dl-cdn.alpinelinux.org/alpine/v3.18/main/x86_64/
//	depviz -p mypkg -r ./test_repo -t readonly -f util
//
// The repository may also come from the DEPVIZ_REPO environment variable
// (a .env file is honored). Setting DEPVIZ_DEBUG enables debug logging.
//
// Exit codes: 0 on success, 1 on validation or runtime errors, 2 on flag
// parsing failure.
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/joho/godotenv"

	"github.com/rolikAsher/depviz"
)

const version = "0.2"

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}

func run(args []string, stdout, stderr *os.File) int {
	_ = godotenv.Load()

	opts, err := parseFlags(args, stderr)
	if err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return 0
		}
		return 2
	}
	if opts.version {
		fmt.Fprintln(stdout, version)
		return 0
	}

	params, errs := validate(opts)
	if len(errs) > 0 {
		fmt.Fprintln(stderr, "invalid parameters:")
		for _, err := range errs {
			fmt.Fprintln(stderr, "  -", err)
		}
		return 1
	}

	fmt.Fprintf(stdout, "package=%s\n", params.pkg)
	fmt.Fprintf(stdout, "repo=%s\n", params.loc)
	fmt.Fprintf(stdout, "test_mode=%s\n", params.testMode)
	fmt.Fprintf(stdout, "filter=%s\n", params.filter)

	var clientOpts []depviz.Option
	if os.Getenv("DEPVIZ_DEBUG") != "" {
		handler := slog.NewTextHandler(stderr, &slog.HandlerOptions{Level: slog.LevelDebug})
		clientOpts = append(clientOpts, depviz.WithLogger(slog.New(handler)))
	}
	client, err := depviz.NewClient(clientOpts...)
	if err != nil {
		fmt.Fprintln(stderr, "error:", err)
		return 1
	}

	ctx := context.Background()

	deps, ok, err := client.Dependencies(ctx, params.loc, params.pkg)
	if err != nil {
		fmt.Fprintln(stderr, "error:", err)
		return 1
	}
	switch {
	case !ok:
		fmt.Fprintf(stdout, "package %q not found in repository index\n", params.pkg)
	case len(deps) == 0:
		fmt.Fprintf(stdout, "package %q has no dependencies\n", params.pkg)
	default:
		fmt.Fprintf(stdout, "direct dependencies of %q:\n", params.pkg)
		for _, dep := range deps {
			fmt.Fprintln(stdout, " -", dep)
		}
	}

	if params.filter != "" {
		names, err := client.Packages(ctx, params.loc, params.filter)
		if err != nil {
			fmt.Fprintln(stderr, "error:", err)
			return 1
		}
		fmt.Fprintf(stdout, "packages matching %q:\n", params.filter)
		for _, name := range names {
			fmt.Fprintln(stdout, " -", name)
		}
	}

	return 0
}

type options struct {
	pkg      string
	repo     string
	testMode string
	filter   string
	version  bool
}

func parseFlags(args []string, stderr io.Writer) (*options, error) {
	fs := flag.NewFlagSet("depviz", flag.ContinueOnError)
	fs.SetOutput(stderr)

	o := &options{}
	repoDefault := os.Getenv("DEPVIZ_REPO")
	fs.StringVar(&o.pkg, "package", "", "package name to analyze")
	fs.StringVar(&o.pkg, "p", "", "shorthand for -package")
	fs.StringVar(&o.repo, "repo", repoDefault, "repository URL or local test repository path")
	fs.StringVar(&o.repo, "r", repoDefault, "shorthand for -repo")
	fs.StringVar(&o.testMode, "test-mode", "none", "test repository mode: none, readonly or simulate")
	fs.StringVar(&o.testMode, "t", "none", "shorthand for -test-mode")
	fs.StringVar(&o.filter, "filter", "", "substring to filter the package listing (optional)")
	fs.StringVar(&o.filter, "f", "", "shorthand for -filter")
	fs.BoolVar(&o.version, "version", false, "print version and exit")

	if err := fs.Parse(args); err != nil {
		return nil, err
	}
	return o, nil
}
