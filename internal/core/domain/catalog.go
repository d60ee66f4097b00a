package domain

import (
	"slices"
	"strings"

	"go.trai.ch/zerr"
)

// MessageTree is an immutable, nested table of messages for one language.
// Keys at each level map to either a message string or a sub-table.
type MessageTree struct {
	messages map[string]string
	tables   map[string]*MessageTree
}

// TreeFromMap builds a MessageTree from a decoded locale file. String
// values become messages, maps become sub-tables, and values of any other
// type are ignored.
func TreeFromMap(m map[string]any) *MessageTree {
	tree := &MessageTree{
		messages: make(map[string]string),
		tables:   make(map[string]*MessageTree),
	}
	for key, val := range m {
		switch v := val.(type) {
		case string:
			tree.messages[key] = v
		case map[string]any:
			tree.tables[key] = TreeFromMap(v)
		}
	}
	return tree
}

// Message returns the message string stored directly under key.
func (t *MessageTree) Message(key string) (string, bool) {
	msg, ok := t.messages[key]
	return msg, ok
}

// Table returns the sub-table stored directly under key.
func (t *MessageTree) Table(key string) (*MessageTree, bool) {
	sub, ok := t.tables[key]
	return sub, ok
}

// Keys returns the sorted keys at this level, messages and tables alike.
func (t *MessageTree) Keys() []string {
	keys := make([]string, 0, len(t.messages)+len(t.tables))
	for k := range t.messages {
		keys = append(keys, k)
	}
	for k := range t.tables {
		keys = append(keys, k)
	}
	slices.Sort(keys)
	return keys
}

// Resolve follows a dotted key path to a message string.
func (t *MessageTree) Resolve(path string) (string, bool) {
	current := t
	segments := strings.Split(path, ".")
	for i, seg := range segments {
		if i == len(segments)-1 {
			msg, ok := current.messages[seg]
			return msg, ok
		}
		sub, ok := current.tables[seg]
		if !ok {
			return "", false
		}
		current = sub
	}
	return "", false
}

// Walk visits every message in the tree in sorted key order. The path
// passed to fn is the dotted key path of the message.
func (t *MessageTree) Walk(fn func(path string, msg string)) {
	t.walk("", fn)
}

func (t *MessageTree) walk(prefix string, fn func(path, msg string)) {
	for _, key := range t.Keys() {
		path := key
		if prefix != "" {
			path = prefix + "." + key
		}
		if msg, ok := t.messages[key]; ok {
			fn(path, msg)
			continue
		}
		t.tables[key].walk(path, fn)
	}
}

// Len returns the number of messages in the tree, including sub-tables.
func (t *MessageTree) Len() int {
	n := len(t.messages)
	for _, sub := range t.tables {
		n += sub.Len()
	}
	return n
}

// Catalog is the immutable set of all loaded languages.
type Catalog struct {
	// languages is keyed by lower-cased tag for case-insensitive lookup.
	languages map[string]languageEntry
	fallback  string
}

type languageEntry struct {
	tag  string
	tree *MessageTree
}

// NewCatalog creates a catalog from per-language trees. The map is keyed
// by language tag as spelled in the locale folder. A non-empty fallback
// must name one of the languages, compared case-insensitively.
func NewCatalog(trees map[string]*MessageTree, fallback string) (*Catalog, error) {
	c := &Catalog{languages: make(map[string]languageEntry, len(trees))}
	for tag, tree := range trees {
		c.languages[strings.ToLower(tag)] = languageEntry{tag: tag, tree: tree}
	}

	if fallback != "" {
		key := strings.ToLower(fallback)
		if _, ok := c.languages[key]; !ok {
			return nil, zerr.With(ErrUnknownFallback, "fallback", fallback)
		}
		c.fallback = key
	}

	return c, nil
}

// Languages returns the sorted language tags as spelled in the folder.
func (c *Catalog) Languages() []string {
	tags := make([]string, 0, len(c.languages))
	for _, entry := range c.languages {
		tags = append(tags, entry.tag)
	}
	slices.Sort(tags)
	return tags
}

// Language returns the language with the given tag. Lookup is
// case-insensitive: "eN" finds the language loaded from en.toml.
func (c *Catalog) Language(tag string) (Language, bool) {
	entry, ok := c.languages[strings.ToLower(tag)]
	if !ok {
		return Language{}, false
	}
	return c.language(entry), true
}

// Fallback returns the configured fallback language.
func (c *Catalog) Fallback() (Language, bool) {
	if c.fallback == "" {
		return Language{}, false
	}
	return c.language(c.languages[c.fallback]), true
}

// FallbackTag returns the fallback tag as spelled in the folder, or "".
func (c *Catalog) FallbackTag() string {
	if c.fallback == "" {
		return ""
	}
	return c.languages[c.fallback].tag
}

func (c *Catalog) language(entry languageEntry) Language {
	lang := Language{tag: entry.tag, tree: entry.tree}
	if c.fallback != "" && strings.ToLower(entry.tag) != c.fallback {
		lang.fallback = c.languages[c.fallback].tree
	}
	return lang
}

// Language is a view over one language's messages with fallback resolution.
type Language struct {
	tag      string
	tree     *MessageTree
	fallback *MessageTree
}

// Tag returns the language tag.
func (l Language) Tag() string {
	return l.tag
}

// Tree returns the language's message tree.
func (l Language) Tree() *MessageTree {
	return l.tree
}

// Len returns the number of messages in the language.
func (l Language) Len() int {
	return l.tree.Len()
}

// Message resolves a dotted key path and interpolates the given arguments.
// A miss in this language falls back to the catalog's fallback language
// before failing.
func (l Language) Message(path string, args map[string]string) (string, error) {
	text, ok := l.tree.Resolve(path)
	if !ok && l.fallback != nil {
		text, ok = l.fallback.Resolve(path)
	}
	if !ok {
		notFound := zerr.With(ErrMessageNotFound, "key", path)
		return "", zerr.With(notFound, "language", l.tag)
	}
	return FormatMessage(text, args), nil
}
