package codegen

import (
	"testing"

	"github.com/sebdah/goldie/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.iioon.dev/iioon/internal/core/domain"
	"go.iioon.dev/iioon/internal/core/ports"
)

func newCatalog(t *testing.T, fallback string, langs map[string]map[string]any) *domain.Catalog {
	t.Helper()

	trees := make(map[string]*domain.MessageTree, len(langs))
	for tag, raw := range langs {
		trees[tag] = domain.TreeFromMap(raw)
	}

	catalog, err := domain.NewCatalog(trees, fallback)
	require.NoError(t, err)
	return catalog
}

func TestGenerator_Generate_Golden(t *testing.T) {
	catalog := newCatalog(t, "en", map[string]map[string]any{
		"en": {
			"greeting": "Hello {name}!",
			"farewell": "Goodbye",
			"menu": map[string]any{
				"open": "Open",
				"file": map[string]any{"save": "Save"},
			},
		},
		"de": {
			"greeting": "Hallo {name}!",
			"menu":     map[string]any{"open": "Öffnen"},
		},
	})

	out, err := NewGenerator().Generate(catalog, ports.GenerateOptions{})
	require.NoError(t, err)

	g := goldie.New(t)
	g.Assert(t, "basic", out)
}

func TestGenerator_Generate_Deterministic(t *testing.T) {
	catalog := newCatalog(t, "en", map[string]map[string]any{
		"en": {"b": "B", "a": "A {x} {y}", "sub": map[string]any{"c": "C"}},
		"fr": {"a": "A {y} {x}"},
		"de": {"b": "B!"},
	})

	gen := NewGenerator()
	first, err := gen.Generate(catalog, ports.GenerateOptions{})
	require.NoError(t, err)
	second, err := gen.Generate(catalog, ports.GenerateOptions{})
	require.NoError(t, err)

	assert.Equal(t, first, second)
}

func TestGenerator_Generate_CustomPackage(t *testing.T) {
	catalog := newCatalog(t, "en", map[string]map[string]any{
		"en": {"hello": "Hello"},
	})

	out, err := NewGenerator().Generate(catalog, ports.GenerateOptions{Package: "msgs"})
	require.NoError(t, err)
	assert.Contains(t, string(out), "package msgs\n")
}

func TestGenerator_Generate_NoFallbackUsesFirstLanguage(t *testing.T) {
	catalog := newCatalog(t, "", map[string]map[string]any{
		"fr": {"hello": "Bonjour"},
		"de": {"hello": "Hallo"},
	})

	out, err := NewGenerator().Generate(catalog, ports.GenerateOptions{})
	require.NoError(t, err)

	// "de" sorts first, so it is the final fallback and "fr" gets a case.
	src := string(out)
	assert.Contains(t, src, `case "fr":`)
	assert.NotContains(t, src, `case "de":
		return "Hallo"`)
	assert.Contains(t, src, "\treturn \"Hallo\"\n}")
}

func TestGenerator_Generate_MissingInDefaultFallsBack(t *testing.T) {
	catalog := newCatalog(t, "en", map[string]map[string]any{
		"en": {"hello": "Hello"},
		"de": {"hello": "Hallo", "only_de": "Nur hier"},
	})

	out, err := NewGenerator().Generate(catalog, ports.GenerateOptions{})
	require.NoError(t, err)

	// only_de has no English text, so the German text is returned
	// unconditionally instead of behind a language switch.
	src := string(out)
	assert.Contains(t, src, "func (l Locale) OnlyDe() string {\n\treturn \"Nur hier\"\n}")
}

func TestGenerator_Generate_ArgsFromAllLanguages(t *testing.T) {
	// A placeholder used only by a non-default language still becomes a
	// parameter of the shared method.
	catalog := newCatalog(t, "en", map[string]map[string]any{
		"en": {"hello": "Hello {name}"},
		"de": {"hello": "Hallo {name} ({city})"},
	})

	out, err := NewGenerator().Generate(catalog, ports.GenerateOptions{})
	require.NoError(t, err)
	assert.Contains(t, string(out), "func (l Locale) Hello(name string, city string) string {")
}

func TestGenerator_Generate_EmptyCatalog(t *testing.T) {
	catalog := newCatalog(t, "", map[string]map[string]any{})

	_, err := NewGenerator().Generate(catalog, ports.GenerateOptions{})
	require.ErrorContains(t, err, domain.ErrGenerateFailed.Error())
}

func TestGenerator_Generate_ShapeConflict(t *testing.T) {
	// "menu" is a message in English but a table in German.
	catalog := newCatalog(t, "en", map[string]map[string]any{
		"en": {"menu": "Menu"},
		"de": {"menu": map[string]any{"open": "Öffnen"}},
	})

	_, err := NewGenerator().Generate(catalog, ports.GenerateOptions{})
	require.ErrorContains(t, err, domain.ErrGenerateFailed.Error())
}

func TestGenerator_Generate_MethodCollision(t *testing.T) {
	// Both keys map to the method name OpenFile.
	catalog := newCatalog(t, "en", map[string]map[string]any{
		"en": {"open_file": "Open", "openFile": "Also open"},
	})

	_, err := NewGenerator().Generate(catalog, ports.GenerateOptions{})
	require.ErrorContains(t, err, domain.ErrGenerateFailed.Error())
}

func TestGenerator_Generate_TagIsReserved(t *testing.T) {
	// Tag is claimed by the language accessor on the root type.
	catalog := newCatalog(t, "en", map[string]map[string]any{
		"en": {"tag": "collides"},
	})

	_, err := NewGenerator().Generate(catalog, ports.GenerateOptions{})
	require.ErrorContains(t, err, domain.ErrGenerateFailed.Error())
}

func TestGenerator_Generate_TypeCollision(t *testing.T) {
	// Both tables map to the type name MenuFile.
	catalog := newCatalog(t, "en", map[string]map[string]any{
		"en": {
			"menu":      map[string]any{"file": map[string]any{"a": "A"}},
			"menu_file": map[string]any{"b": "B"},
		},
	})

	_, err := NewGenerator().Generate(catalog, ports.GenerateOptions{})
	require.ErrorContains(t, err, domain.ErrGenerateFailed.Error())
}

func TestGenerator_Generate_PercentEscaping(t *testing.T) {
	catalog := newCatalog(t, "en", map[string]map[string]any{
		"en": {"progress": "{pct}% done"},
	})

	out, err := NewGenerator().Generate(catalog, ports.GenerateOptions{})
	require.NoError(t, err)
	assert.Contains(t, string(out), `fmt.Sprintf("%[1]v%% done", pct)`)
}

func TestExportedName(t *testing.T) {
	tests := []struct {
		key  string
		want string
	}{
		{key: "open", want: "Open"},
		{key: "open_file", want: "OpenFile"},
		{key: "open-file", want: "OpenFile"},
		{key: "openFile", want: "OpenFile"},
		{key: "404_error", want: "N404Error"},
		{key: "_", want: "X"},
	}

	for _, tt := range tests {
		t.Run(tt.key, func(t *testing.T) {
			assert.Equal(t, tt.want, exportedName(tt.key))
		})
	}
}

func TestParamName(t *testing.T) {
	tests := []struct {
		arg  string
		want string
	}{
		{arg: "name", want: "name"},
		{arg: "user_name", want: "userName"},
		{arg: "type", want: "typeArg"},
		{arg: "404", want: "n404"},
	}

	for _, tt := range tests {
		t.Run(tt.arg, func(t *testing.T) {
			assert.Equal(t, tt.want, paramName(tt.arg))
		})
	}
}
