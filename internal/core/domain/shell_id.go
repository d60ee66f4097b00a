package domain

import (
	"crypto/sha256"
	"encoding/hex"
	"slices"
	"strings"
)

// GenerateShellID creates a deterministic hash for a shell descriptor,
// used as the environment cache key. Two descriptors with the same pin,
// packages and env always produce the same ID regardless of map ordering.
func GenerateShellID(desc ShellDescriptor) string {
	var builder strings.Builder
	builder.WriteString(string(desc.Platform))
	builder.WriteString("|")
	builder.WriteString(desc.PackagePin.Revision)
	builder.WriteString("|")

	packages := slices.Clone(desc.Packages)
	slices.Sort(packages)
	for _, pkg := range packages {
		builder.WriteString(pkg)
		builder.WriteString(";")
	}
	builder.WriteString("|")

	keys := make([]string, 0, len(desc.Env))
	for k := range desc.Env {
		keys = append(keys, k)
	}
	slices.Sort(keys)
	for _, k := range keys {
		builder.WriteString(k)
		builder.WriteString("=")
		builder.WriteString(desc.Env[k])
		builder.WriteString(";")
	}

	hash := sha256.Sum256([]byte(builder.String()))
	return hex.EncodeToString(hash[:])
}
