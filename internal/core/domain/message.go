package domain

import (
	"regexp"
	"slices"
)

// argumentPattern matches {name} placeholders inside message strings.
var argumentPattern = regexp.MustCompile(`\{([a-zA-Z0-9_]+)\}`)

// MessageArgs returns the placeholder names of a message in order of first
// appearance, without duplicates.
func MessageArgs(text string) []string {
	var args []string
	for _, match := range argumentPattern.FindAllStringSubmatch(text, -1) {
		name := match[1]
		if slices.Contains(args, name) {
			continue
		}
		args = append(args, name)
	}
	return args
}

// FormatMessage replaces {name} placeholders with values from args.
// Placeholders without a value are left intact so that missing arguments
// stay visible in the output.
func FormatMessage(text string, args map[string]string) string {
	if len(args) == 0 {
		return text
	}
	return argumentPattern.ReplaceAllStringFunc(text, func(match string) string {
		name := match[1 : len(match)-1]
		if val, ok := args[name]; ok {
			return val
		}
		return match
	})
}
