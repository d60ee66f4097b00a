package codegen

import (
	"fmt"
	"go/format"
	"regexp"
	"strings"

	"go.iioon.dev/iioon/internal/core/domain"
	"go.iioon.dev/iioon/internal/core/ports"
	"go.trai.ch/zerr"
)

// DefaultPackage is the package name used when none is configured.
const DefaultPackage = "locales"

// rootTypeName is the type giving access to root-level messages.
const rootTypeName = "Locale"

var placeholderPattern = regexp.MustCompile(`\{([a-zA-Z0-9_]+)\}`)

// Generator implements ports.CodeGenerator.
type Generator struct{}

// NewGenerator creates a Generator.
func NewGenerator() *Generator {
	return &Generator{}
}

// Generate renders the catalog as a Go source file. Output is
// deterministic: the same catalog always produces the same bytes.
func (g *Generator) Generate(catalog *domain.Catalog, opts ports.GenerateOptions) ([]byte, error) {
	pkg := opts.Package
	if pkg == "" {
		pkg = DefaultPackage
	}

	tags := catalog.Languages()
	if len(tags) == 0 {
		return nil, zerr.With(domain.ErrGenerateFailed, "reason", "catalog has no languages")
	}

	defaultTag := catalog.FallbackTag()
	if defaultTag == "" {
		defaultTag = tags[0]
	}

	root, err := mergeCatalog(catalog, defaultTag)
	if err != nil {
		return nil, err
	}

	e := &emitter{
		tags:       tags,
		defaultTag: defaultTag,
		typeNames:  map[string]string{},
	}

	body, err := e.render(pkg, root)
	if err != nil {
		return nil, err
	}

	formatted, err := format.Source(body)
	if err != nil {
		return nil, zerr.Wrap(err, domain.ErrGenerateFailed.Error())
	}

	return formatted, nil
}

type emitter struct {
	tags       []string
	defaultTag string
	// typeNames maps generated type name to the dotted path that claimed
	// it, for collision reporting.
	typeNames map[string]string
	usesFmt   bool
}

func (e *emitter) render(pkg string, root *groupNode) ([]byte, error) {
	var body strings.Builder
	if err := e.emitGroup(&body, root, rootTypeName, ""); err != nil {
		return nil, err
	}

	var out strings.Builder
	out.WriteString("// Code generated by iioon gen. DO NOT EDIT.\n\n")
	out.WriteString("package " + pkg + "\n\n")
	out.WriteString("import (\n")
	if e.usesFmt {
		out.WriteString("\t\"fmt\"\n")
	}
	out.WriteString("\t\"strings\"\n")
	out.WriteString(")\n\n")

	e.emitPreamble(&out)
	out.WriteString(body.String())

	return []byte(out.String()), nil
}

// emitPreamble writes the Locale type and its package-level companions.
func (e *emitter) emitPreamble(b *strings.Builder) {
	fmt.Fprintf(b, "// %s provides typed access to the messages of one language.\n", rootTypeName)
	fmt.Fprintf(b, "type %s struct {\n\tlang string\n}\n\n", rootTypeName)

	fmt.Fprintf(b, "// New returns the %s for tag, falling back to %q when the tag is\n", rootTypeName, e.defaultTag)
	b.WriteString("// unknown. Lookup is case-insensitive.\n")
	fmt.Fprintf(b, "func New(tag string) %s {\n", rootTypeName)
	b.WriteString("\tswitch strings.ToLower(tag) {\n")
	for _, tag := range e.tags {
		fmt.Fprintf(b, "\tcase %q:\n\t\treturn %s{lang: %q}\n", strings.ToLower(tag), rootTypeName, tag)
	}
	b.WriteString("\t}\n")
	fmt.Fprintf(b, "\treturn %s{lang: %q}\n}\n\n", rootTypeName, e.defaultTag)

	b.WriteString("// Tag returns the language tag of the locale.\n")
	fmt.Fprintf(b, "func (l %s) Tag() string {\n\treturn l.lang\n}\n\n", rootTypeName)

	b.WriteString("// Tags lists the available language tags.\n")
	b.WriteString("func Tags() []string {\n\treturn []string{")
	for i, tag := range e.tags {
		if i > 0 {
			b.WriteString(", ")
		}
		fmt.Fprintf(b, "%q", tag)
	}
	b.WriteString("}\n}\n\n")
}

// emitGroup writes one table level: the type itself (except for the
// root, which the preamble owns), its message methods, then its
// sub-groups depth-first.
func (e *emitter) emitGroup(b *strings.Builder, node *groupNode, typeName, path string) error {
	if prev, taken := e.typeNames[typeName]; taken {
		err := zerr.With(domain.ErrGenerateFailed, "type", typeName)
		err = zerr.With(err, "key", path)
		return zerr.With(err, "conflicts_with", prev)
	}
	e.typeNames[typeName] = displayPath(path)

	recv := receiverName(typeName)

	if typeName != rootTypeName {
		fmt.Fprintf(b, "// %s groups the %q messages.\n", typeName, path)
		fmt.Fprintf(b, "type %s struct {\n\tlang string\n}\n\n", typeName)
	}

	methods := map[string]string{}
	if typeName == rootTypeName {
		// Claimed by the preamble.
		methods["Tag"] = "Tag"
	}

	for _, key := range node.messageKeys() {
		name := exportedName(key)
		if prev, taken := methods[name]; taken {
			err := zerr.With(domain.ErrGenerateFailed, "method", name)
			err = zerr.With(err, "key", joinPath(path, key))
			return zerr.With(err, "conflicts_with", prev)
		}
		methods[name] = joinPath(path, key)

		e.emitMessage(b, node.messages[key], typeName, recv, name, joinPath(path, key))
	}

	for _, key := range node.tableKeys() {
		name := exportedName(key)
		if prev, taken := methods[name]; taken {
			err := zerr.With(domain.ErrGenerateFailed, "method", name)
			err = zerr.With(err, "key", joinPath(path, key))
			return zerr.With(err, "conflicts_with", prev)
		}
		methods[name] = joinPath(path, key)

		childType := name
		if typeName != rootTypeName {
			childType = typeName + name
		}

		fmt.Fprintf(b, "// %s returns the %q message group.\n", name, joinPath(path, key))
		fmt.Fprintf(b, "func (%s %s) %s() %s {\n\treturn %s{lang: %s.lang}\n}\n\n",
			recv, typeName, name, childType, childType, recv)

		if err := e.emitGroup(b, node.tables[key], childType, joinPath(path, key)); err != nil {
			return err
		}
	}

	return nil
}

// emitMessage writes one message method. Languages without their own
// text fall through to the default language's text.
func (e *emitter) emitMessage(b *strings.Builder, spec *messageSpec, typeName, recv, name, path string) {
	params := make([]string, len(spec.args))
	for i, arg := range spec.args {
		params[i] = paramName(arg) + " string"
	}

	fmt.Fprintf(b, "// %s renders the %q message.\n", name, path)
	fmt.Fprintf(b, "func (%s %s) %s(%s) string {\n", recv, typeName, name, strings.Join(params, ", "))

	defaultText, hasDefault := spec.texts[e.defaultTag]

	cases := make([]string, 0, len(spec.texts))
	for _, tag := range e.tags {
		if tag == e.defaultTag && hasDefault {
			continue
		}
		if _, ok := spec.texts[tag]; ok {
			cases = append(cases, tag)
		}
	}

	if !hasDefault {
		// The default language misses this key: the first language that
		// has it serves as the final fallback.
		defaultText = spec.texts[cases[0]]
		cases = cases[1:]
	}

	if len(cases) > 0 {
		fmt.Fprintf(b, "\tswitch %s.lang {\n", recv)
		for _, tag := range cases {
			fmt.Fprintf(b, "\tcase %q:\n\t\treturn %s\n", tag, e.renderText(spec, spec.texts[tag]))
		}
		b.WriteString("\t}\n")
	}

	fmt.Fprintf(b, "\treturn %s\n}\n\n", e.renderText(spec, defaultText))
}

// renderText converts a raw message into the Go expression returning it:
// a plain literal when the text has no placeholders, otherwise a
// fmt.Sprintf call with indexed verbs.
func (e *emitter) renderText(spec *messageSpec, text string) string {
	if !placeholderPattern.MatchString(text) {
		return fmt.Sprintf("%q", text)
	}

	escaped := strings.ReplaceAll(text, "%", "%%")
	converted := placeholderPattern.ReplaceAllStringFunc(escaped, func(match string) string {
		arg := match[1 : len(match)-1]
		for i, known := range spec.args {
			if known == arg {
				return fmt.Sprintf("%%[%d]v", i+1)
			}
		}
		return match
	})

	e.usesFmt = true

	callArgs := make([]string, 0, len(spec.args)+1)
	callArgs = append(callArgs, fmt.Sprintf("%q", converted))
	for _, arg := range spec.args {
		callArgs = append(callArgs, paramName(arg))
	}

	return "fmt.Sprintf(" + strings.Join(callArgs, ", ") + ")"
}

func joinPath(prefix, key string) string {
	if prefix == "" {
		return key
	}
	return prefix + "." + key
}

func displayPath(path string) string {
	if path == "" {
		return "<root>"
	}
	return path
}
