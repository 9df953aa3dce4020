package hooks

import (
	"context"
	"fmt"
	"regexp"
	"strings"

	"github.com/commitgate/commitgate/internal/domain"
)

// changelogFragment is the organization-local naming/placement policy for
// changelog fragment files. It needs no external tool: it is a
// deterministic validator over (path, is-newly-added).
//
// A fragment must be named
//
//	docs/changes/<sub-package>/<ticket>.(bugfix|feature|api).rst
//
// or, for changes with no owning sub-package,
//
//	docs/changes/<ticket>.other.rst
//
// Only newly added files are evaluated; fragments already in history are
// grandfathered.

const changelogDir = "docs/changes/"

var (
	subPackageFragmentRe = regexp.MustCompile(`^docs/changes/[a-z0-9_]+(\.[a-z0-9_]+)*/\d+\.(bugfix|feature|api)\.rst$`)
	rootFragmentRe       = regexp.MustCompile(`^docs/changes/\d+\.other\.rst$`)

	// Directory scaffolding the policy does not apply to.
	exemptFragments = map[string]bool{
		"docs/changes/README.rst":   true,
		"docs/changes/TEMPLATE.rst": true,
	}
)

func changelogFragment(ctx context.Context, req Request) Result {
	var res Result
	for _, f := range req.Files {
		if r, done := cancelled(ctx); done {
			return r
		}
		if !f.Added {
			continue
		}
		if !strings.HasPrefix(f.Path, changelogDir) || strings.HasSuffix(f.Path, "/") {
			continue
		}
		if exemptFragments[f.Path] {
			continue
		}
		if subPackageFragmentRe.MatchString(f.Path) || rootFragmentRe.MatchString(f.Path) {
			continue
		}
		res.Diagnostics = append(res.Diagnostics, domain.Diagnostic{
			File: f.Path,
			Code: "N100",
			Message: fmt.Sprintf(
				"changelog fragment %q does not follow the naming convention: "+
					"use <sub-package>/<ticket>.(bugfix|feature|api).rst, or <ticket>.other.rst "+
					"in docs/changes/ itself for changes with no owning sub-package",
				f.Path),
		})
	}
	return res
}
