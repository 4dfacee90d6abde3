package config

import (
	"errors"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// FileConfig is the on-disk YAML configuration shape for envgrade. All
// fields are pointers so the CLI can distinguish "unset" from zero values
// when resolving CLI > local > global precedence.
type FileConfig struct {
	Include   *string `yaml:"include"`
	Exclude   *string `yaml:"exclude"`
	MaxBytes  *int64  `yaml:"max_bytes"`
	FailGrade *string `yaml:"fail_grade"`
	Strict    *bool   `yaml:"strict"`
	NoColor   *bool   `yaml:"no_color"`
	NoCache   *bool   `yaml:"no_cache"`

	// Weights overrides the per-severity penalties of the selected
	// calibration.
	Weights *Weights `yaml:"weights"`
}

// Weights mirrors grade.Weighting with optional fields.
type Weights struct {
	Critical *int `yaml:"critical"`
	Warning  *int `yaml:"warning"`
	Info     *int `yaml:"info"`
}

// LoadFile reads a YAML config file from the provided path.
func LoadFile(path string) (FileConfig, error) {
	var cfg FileConfig
	b, err := os.ReadFile(path)
	if err != nil {
		return cfg, err
	}
	if err := yaml.Unmarshal(b, &cfg); err != nil {
		return cfg, err
	}
	return cfg, nil
}

// LoadLocal searches for a repo-local config file in the given root.
// It supports .envgrade.yml/.yaml and envgrade.yml/.yaml.
func LoadLocal(root string) (FileConfig, error) {
	var cfg FileConfig
	for _, name := range []string{".envgrade.yml", ".envgrade.yaml", "envgrade.yml", "envgrade.yaml"} {
		p := filepath.Join(root, name)
		if _, err := os.Stat(p); err == nil {
			return LoadFile(p)
		}
	}
	return cfg, errors.New("no local config")
}

// LoadGlobal loads the global config from XDG base directory or ~/.config.
func LoadGlobal() (FileConfig, error) {
	var cfg FileConfig
	base := os.Getenv("XDG_CONFIG_HOME")
	if base == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return cfg, err
		}
		base = filepath.Join(home, ".config")
	}
	for _, name := range []string{"config.yml", "config.yaml"} {
		p := filepath.Join(base, "envgrade", name)
		if _, err := os.Stat(p); err == nil {
			return LoadFile(p)
		}
	}
	return cfg, errors.New("no global config")
}
