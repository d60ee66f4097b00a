// Package nix implements input pinning and shell materialization against
// the Nix toolchain and the GitHub commits API.
package nix

import (
	"regexp"
	"strings"

	"go.iioon.dev/iioon/internal/core/domain"
	"go.trai.ch/zerr"
)

// Locator is a parsed github flake reference.
type Locator struct {
	Owner string
	Repo  string
	// Ref is a branch, tag or revision. Empty means the repository's
	// default branch.
	Ref string
}

var revisionPattern = regexp.MustCompile(`^[0-9a-f]{40}$`)

// ParseLocator parses a "github:owner/repo[/ref]" reference.
func ParseLocator(locator string) (Locator, error) {
	rest, ok := strings.CutPrefix(locator, "github:")
	if !ok {
		return Locator{}, zerr.With(domain.ErrInvalidLocator, "locator", locator)
	}

	// Refs may contain slashes (e.g. "release/1.2"), so only the first
	// two segments are structural.
	parts := strings.SplitN(rest, "/", 3)
	if len(parts) < 2 || parts[0] == "" || parts[1] == "" {
		return Locator{}, zerr.With(domain.ErrInvalidLocator, "locator", locator)
	}

	loc := Locator{Owner: parts[0], Repo: parts[1]}
	if len(parts) == 3 {
		if parts[2] == "" {
			return Locator{}, zerr.With(domain.ErrInvalidLocator, "locator", locator)
		}
		loc.Ref = parts[2]
	}

	return loc, nil
}

// IsRevision reports whether ref is already a full 40-character commit
// revision. Resolution of such refs is the identity.
func IsRevision(ref string) bool {
	return revisionPattern.MatchString(strings.ToLower(ref))
}
