package domain

import "slices"

// DefaultShellName is the name under which the per-platform shell entry is
// exposed. Every enumerated platform gets exactly one entry with this name.
const DefaultShellName = "default"

// ShellDescriptor describes one development shell for one platform. The
// actual environment is materialized lazily by a ShellFactory; the
// descriptor itself is pure data.
type ShellDescriptor struct {
	Platform Platform
	Name     string

	// PackagePin is the package collection input pinned for this shell.
	PackagePin Pin

	Packages []string
	Env      map[string]string
	MOTD     string
}

// ShellSet maps platforms to their named shell descriptors.
type ShellSet struct {
	entries map[Platform]map[string]ShellDescriptor
}

// NewShellSet creates an empty ShellSet.
func NewShellSet() *ShellSet {
	return &ShellSet{entries: make(map[Platform]map[string]ShellDescriptor)}
}

// Add inserts a descriptor, replacing any previous entry with the same
// platform and name.
func (s *ShellSet) Add(desc ShellDescriptor) {
	byName, ok := s.entries[desc.Platform]
	if !ok {
		byName = make(map[string]ShellDescriptor)
		s.entries[desc.Platform] = byName
	}
	byName[desc.Name] = desc
}

// Platforms returns the sorted platforms that have at least one entry.
func (s *ShellSet) Platforms() []Platform {
	platforms := make([]Platform, 0, len(s.entries))
	for p := range s.entries {
		platforms = append(platforms, p)
	}
	slices.Sort(platforms)
	return platforms
}

// Default returns the default shell for the given platform.
func (s *ShellSet) Default(p Platform) (ShellDescriptor, bool) {
	return s.Shell(p, DefaultShellName)
}

// Shell returns the named shell for the given platform.
func (s *ShellSet) Shell(p Platform, name string) (ShellDescriptor, bool) {
	byName, ok := s.entries[p]
	if !ok {
		return ShellDescriptor{}, false
	}
	desc, ok := byName[name]
	return desc, ok
}

// Names returns the sorted shell names available for the given platform.
func (s *ShellSet) Names(p Platform) []string {
	byName, ok := s.entries[p]
	if !ok {
		return nil
	}
	names := make([]string, 0, len(byName))
	for name := range byName {
		names = append(names, name)
	}
	slices.Sort(names)
	return names
}

// Len returns the number of platforms with entries.
func (s *ShellSet) Len() int {
	return len(s.entries)
}
