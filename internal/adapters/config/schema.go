package config

// manifestFile mirrors the YAML structure of iioon.yaml.
type manifestFile struct {
	Version string            `yaml:"version"`
	Root    string            `yaml:"root"`
	Locales localesSection    `yaml:"locales"`
	Inputs  map[string]string `yaml:"inputs"`
	Systems []string          `yaml:"systems"`
	Shell   string            `yaml:"shell"`
}

// localesSection mirrors the locales block of iioon.yaml.
type localesSection struct {
	Folder   string `yaml:"folder"`
	Fallback string `yaml:"fallback"`
}

// shellFile mirrors the YAML structure of the shell definition file.
type shellFile struct {
	Packages []string          `yaml:"packages"`
	Env      map[string]string `yaml:"env"`
	MOTD     string            `yaml:"motd"`
}
