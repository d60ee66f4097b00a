package domain

// InputSource is a named external dependency declared by locator.
// Instances are immutable once the manifest is loaded.
type InputSource struct {
	Name    string
	Locator string
}

// PackageInputName is the input that provides the package collection.
// The shell builder specializes this input per platform.
const PackageInputName = "nixpkgs"

// LocaleConfig describes where locale files live and which language acts
// as the fallback.
type LocaleConfig struct {
	Folder   string
	Fallback string
}

// Manifest is the loaded, validated project configuration.
type Manifest struct {
	Version string
	Root    string
	Locales LocaleConfig
	Inputs  []InputSource
	Systems []Platform

	// ShellFile is the path to the shell definition file, relative to Root.
	ShellFile string
}

// PackageInput returns the input source providing the package collection.
func (m *Manifest) PackageInput() (InputSource, bool) {
	for _, in := range m.Inputs {
		if in.Name == PackageInputName {
			return in, true
		}
	}
	return InputSource{}, false
}

// Input returns the input source with the given name.
func (m *Manifest) Input(name string) (InputSource, bool) {
	for _, in := range m.Inputs {
		if in.Name == name {
			return in, true
		}
	}
	return InputSource{}, false
}

// ShellDef is the parsed shell definition file. It is treated as
// declarative data: the evaluator passes it through into descriptors and
// never interprets it beyond that.
type ShellDef struct {
	Packages []string
	Env      map[string]string
	MOTD     string
}

// Pin is a resolved input: the locator pinned to an immutable revision.
type Pin struct {
	Input    string `json:"input"`
	Locator  string `json:"locator"`
	Revision string `json:"revision"`
}
