// Package domain contains the core types for iioon: the project manifest,
// platform and shell model, and the locale catalog.
package domain

import (
	"runtime"
	"slices"
	"strings"

	"go.trai.ch/zerr"
)

// Platform is an opaque token naming a target architecture/OS pair,
// e.g. "x86_64-linux" or "aarch64-darwin".
type Platform string

// SupportedPlatforms is the set of platforms the package collection
// supports. Enumeration intersects the manifest's declared systems with
// this set; it never fails on unsupported tokens.
var SupportedPlatforms = []Platform{
	"aarch64-darwin",
	"aarch64-linux",
	"x86_64-darwin",
	"x86_64-linux",
}

// ParsePlatform validates that a token has the arch-os shape.
func ParsePlatform(s string) (Platform, error) {
	arch, os, ok := strings.Cut(s, "-")
	if !ok || arch == "" || os == "" {
		return "", zerr.With(ErrInvalidPlatform, "token", s)
	}
	return Platform(s), nil
}

// CurrentPlatform returns the platform token for the running host.
func CurrentPlatform() Platform {
	arch := runtime.GOARCH
	switch arch {
	case "amd64":
		arch = "x86_64"
	case "arm64":
		arch = "aarch64"
	}
	return Platform(arch + "-" + runtime.GOOS)
}

// IntersectPlatforms returns the sorted, de-duplicated intersection of the
// exposed and supported platform sets. An empty result is a valid output,
// not an error.
func IntersectPlatforms(exposed, supported []Platform) []Platform {
	supportedSet := make(map[Platform]struct{}, len(supported))
	for _, p := range supported {
		supportedSet[p] = struct{}{}
	}

	var result []Platform
	seen := make(map[Platform]struct{}, len(exposed))
	for _, p := range exposed {
		if _, ok := supportedSet[p]; !ok {
			continue
		}
		if _, dup := seen[p]; dup {
			continue
		}
		seen[p] = struct{}{}
		result = append(result, p)
	}

	slices.Sort(result)
	return result
}
