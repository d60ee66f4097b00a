package logger

import (
	"errors"
	"fmt"
	"maps"
	"slices"
	"strings"
)

// messager matches the Message() method on zerr.Error (v0.3.0+), which
// reports the message of one link without the rest of the chain.
type messager interface {
	Message() string
}

// metadataCarrier matches the Metadata() accessor on zerr.Error.
type metadataCarrier interface {
	Metadata() map[string]any
}

// ErrorEntry is one link of an error chain prepared for rendering.
type ErrorEntry struct {
	Message  string
	Metadata map[string]any
}

// collectErrorEntries flattens an error chain into renderable entries.
// zerr links contribute their own message and metadata and the walk
// continues; the first non-zerr error contributes its full Error() text
// and ends the walk.
func collectErrorEntries(err error) []ErrorEntry {
	var entries []ErrorEntry

	current := err
	for current != nil {
		m, ok := current.(messager)
		if !ok {
			entries = append(entries, ErrorEntry{Message: current.Error()})
			break
		}

		entry := ErrorEntry{Message: m.Message()}
		if mc, hasMeta := current.(metadataCarrier); hasMeta {
			entry.Metadata = mc.Metadata()
		}
		entries = append(entries, entry)
		current = errors.Unwrap(current)
	}

	return entries
}

// formatErrorEntries renders entries as a human-readable block:
//
//	Error: <main message>
//	       <metadata>
//
//	  Caused by:
//	    → <cause>
//	      <metadata>
func formatErrorEntries(entries []ErrorEntry) string {
	if len(entries) == 0 {
		return ""
	}

	var lines []string
	for i, entry := range entries {
		msgLines := strings.Split(entry.Message, "\n")

		if i == 0 {
			lines = append(lines, "Error: "+msgLines[0])
			for _, l := range msgLines[1:] {
				lines = append(lines, "       "+l)
			}
			lines = append(lines, metadataLines(entry.Metadata, "       ")...)
			continue
		}

		if i == 1 {
			lines = append(lines, "", "  Caused by:")
		}
		lines = append(lines, "    → "+msgLines[0])
		for _, l := range msgLines[1:] {
			lines = append(lines, "      "+l)
		}
		lines = append(lines, metadataLines(entry.Metadata, "      ")...)
	}

	return strings.Join(lines, "\n")
}

// metadataLines renders metadata as sorted "key: value" lines.
func metadataLines(md map[string]any, indent string) []string {
	if len(md) == 0 {
		return nil
	}

	keys := slices.Sorted(maps.Keys(md))
	out := make([]string, 0, len(keys))
	for _, k := range keys {
		out = append(out, fmt.Sprintf("%s%s: %v", indent, k, md[k]))
	}
	return out
}
