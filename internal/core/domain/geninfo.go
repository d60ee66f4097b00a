package domain

import "time"

// GenInfo records one completed accessor generation for a locale folder.
// The store keeps it across invocations so an unchanged folder skips
// regeneration.
type GenInfo struct {
	// Folder is the locale folder the generation read from.
	Folder string `json:"folder"`

	// Fingerprint is the folder's content fingerprint at generation time.
	Fingerprint string `json:"fingerprint"`

	// Output is the path the generated file was written to.
	Output string `json:"output"`

	// Package is the package name the file was generated with.
	Package string `json:"package"`

	GeneratedAt time.Time `json:"generatedAt"`
}

// Matches reports whether a stored record covers the same generation:
// identical folder content and identical output target.
func (g *GenInfo) Matches(fingerprint, output, pkg string) bool {
	return g != nil &&
		g.Fingerprint == fingerprint &&
		g.Output == output &&
		g.Package == pkg
}
