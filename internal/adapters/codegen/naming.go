package codegen

import (
	"strings"
	"unicode"
)

var goKeywords = map[string]struct{}{
	"break": {}, "case": {}, "chan": {}, "const": {}, "continue": {},
	"default": {}, "defer": {}, "else": {}, "fallthrough": {}, "for": {},
	"func": {}, "go": {}, "goto": {}, "if": {}, "import": {},
	"interface": {}, "map": {}, "package": {}, "range": {}, "return": {},
	"select": {}, "struct": {}, "switch": {}, "type": {}, "var": {},
}

// exportedName turns a locale key into an exported Go identifier:
// "open_file" becomes "OpenFile". Keys starting with a digit get an "N"
// prefix.
func exportedName(key string) string {
	var b strings.Builder
	upperNext := true
	for _, r := range key {
		switch {
		case r == '_' || r == '-' || r == '.':
			upperNext = true
		case upperNext:
			b.WriteRune(unicode.ToUpper(r))
			upperNext = false
		default:
			b.WriteRune(r)
		}
	}

	name := b.String()
	if name == "" {
		return "X"
	}
	if unicode.IsDigit(rune(name[0])) {
		name = "N" + name
	}
	return name
}

// paramName turns a placeholder name into an unexported Go identifier:
// "user_name" becomes "userName". Keywords and digit-leading names are
// made safe with a suffix or prefix.
func paramName(arg string) string {
	name := exportedName(arg)
	name = strings.ToLower(name[:1]) + name[1:]

	if _, reserved := goKeywords[name]; reserved {
		name += "Arg"
	}
	if unicode.IsDigit(rune(name[0])) {
		name = "n" + name
	}
	return name
}

// receiverName derives the receiver identifier from a type name.
func receiverName(typeName string) string {
	return strings.ToLower(typeName[:1])
}
