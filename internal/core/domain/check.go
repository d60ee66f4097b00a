package domain

import "slices"

// Severity classifies a catalog diagnostic.
type Severity uint8

const (
	// SeverityWarning marks findings that runtime fallback papers over.
	SeverityWarning Severity = iota
	// SeverityError marks findings that make the catalog unusable.
	SeverityError
)

// String returns the lower-case name of the severity.
func (s Severity) String() string {
	if s == SeverityError {
		return "error"
	}
	return "warning"
}

// Diagnostic is one finding from a catalog consistency check.
type Diagnostic struct {
	Severity Severity
	Language string
	Key      string
	Detail   string
}

// CheckCatalog compares every language against the reference language (the
// fallback when configured, the first language otherwise) and reports
// missing keys, extra keys, shape conflicts and placeholder mismatches.
// Diagnostics are ordered by language, then key.
func CheckCatalog(c *Catalog) []Diagnostic {
	tags := c.Languages()
	if len(tags) < 2 {
		return nil
	}

	refTag := c.FallbackTag()
	if refTag == "" {
		refTag = tags[0]
	}
	ref, _ := c.Language(refTag)

	var diags []Diagnostic
	for _, tag := range tags {
		if tag == refTag {
			continue
		}
		lang, _ := c.Language(tag)
		diags = append(diags, compareTrees(tag, "", ref.Tree(), lang.Tree())...)
	}
	return diags
}

// HasErrors reports whether any diagnostic has error severity.
func HasErrors(diags []Diagnostic) bool {
	for _, d := range diags {
		if d.Severity == SeverityError {
			return true
		}
	}
	return false
}

func compareTrees(tag, prefix string, ref, got *MessageTree) []Diagnostic {
	var diags []Diagnostic

	for _, key := range ref.Keys() {
		path := joinKey(prefix, key)

		refMsg, refIsMsg := ref.Message(key)
		if refIsMsg {
			gotMsg, ok := got.Message(key)
			if !ok {
				if _, isTable := got.Table(key); isTable {
					diags = append(diags, Diagnostic{
						Severity: SeverityError,
						Language: tag,
						Key:      path,
						Detail:   "is a table here but a message in the reference language",
					})
					continue
				}
				diags = append(diags, Diagnostic{
					Severity: SeverityWarning,
					Language: tag,
					Key:      path,
					Detail:   "missing key, runtime will fall back",
				})
				continue
			}
			if !slices.Equal(sortedArgs(refMsg), sortedArgs(gotMsg)) {
				diags = append(diags, Diagnostic{
					Severity: SeverityError,
					Language: tag,
					Key:      path,
					Detail:   "placeholders differ from the reference language",
				})
			}
			continue
		}

		refTable, _ := ref.Table(key)
		gotTable, ok := got.Table(key)
		if !ok {
			if _, isMsg := got.Message(key); isMsg {
				diags = append(diags, Diagnostic{
					Severity: SeverityError,
					Language: tag,
					Key:      path,
					Detail:   "is a message here but a table in the reference language",
				})
				continue
			}
			diags = append(diags, Diagnostic{
				Severity: SeverityWarning,
				Language: tag,
				Key:      path,
				Detail:   "missing table, runtime will fall back",
			})
			continue
		}
		diags = append(diags, compareTrees(tag, path, refTable, gotTable)...)
	}

	// Keys present here but absent from the reference language.
	for _, key := range got.Keys() {
		path := joinKey(prefix, key)
		_, inRefMsg := ref.Message(key)
		_, inRefTable := ref.Table(key)
		if !inRefMsg && !inRefTable {
			diags = append(diags, Diagnostic{
				Severity: SeverityWarning,
				Language: tag,
				Key:      path,
				Detail:   "key does not exist in the reference language",
			})
		}
	}

	return diags
}

func sortedArgs(text string) []string {
	args := MessageArgs(text)
	slices.Sort(args)
	return args
}

func joinKey(prefix, key string) string {
	if prefix == "" {
		return key
	}
	return prefix + "." + key
}
