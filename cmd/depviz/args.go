package main

import (
	"errors"
	"fmt"
	"regexp"
	"strings"

	"github.com/rolikAsher/depviz"
)

// packageRe limits package names to the characters Alpine allows.
var packageRe = regexp.MustCompile(`^[A-Za-z0-9_.-]+$`)

var testModes = map[string]bool{
	"none":     true,
	"readonly": true,
	"simulate": true,
}

// params holds the validated invocation parameters.
type params struct {
	pkg      string
	loc      depviz.Location
	testMode string
	filter   string
}

// validate checks every option and collects all failures rather than
// stopping at the first, so a bad invocation reports everything at once.
func validate(o *options) (*params, []error) {
	var errs []error
	p := &params{}

	switch {
	case o.pkg == "":
		errs = append(errs, errors.New("package: name must not be empty"))
	case !packageRe.MatchString(o.pkg):
		errs = append(errs, fmt.Errorf("package: invalid name %q: letters, digits, '_', '-' and '.' only", o.pkg))
	default:
		p.pkg = o.pkg
	}

	loc, locErr := depviz.ParseLocation(o.repo)
	if locErr != nil {
		errs = append(errs, fmt.Errorf("repo: %v", locErr))
	} else {
		p.loc = loc
	}

	if !testModes[o.testMode] {
		errs = append(errs, fmt.Errorf("test_mode: invalid mode %q: valid modes are none, readonly, simulate", o.testMode))
	} else {
		p.testMode = o.testMode
		if o.testMode != "none" && locErr == nil && loc.IsRemote() {
			errs = append(errs, errors.New("test_mode: test modes require a local repository path, not a URL"))
		}
	}

	if o.filter != "" && strings.TrimSpace(o.filter) == "" {
		errs = append(errs, errors.New("filter: blank filter substring"))
	} else {
		p.filter = o.filter
	}

	return p, errs
}
