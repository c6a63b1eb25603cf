// Package config loads the CLI's .cclex.yaml project file.
package config

import (
	"errors"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// Config is the project-level configuration consulted by the CLI
// subcommands. It lives at <directory>/.cclex.yaml.
type Config struct {
	// GNUExtensions turns off the GNU keyword alternates and marker
	// tokens (__attribute__ and friends) when false, tightening the
	// lexer to strict C11.
	GNUExtensions bool `yaml:"gnu_extensions"`

	// IncludeDirs are searched, in order, by the CLI's multi-file
	// commands when a path argument is not found directly.
	IncludeDirs []string `yaml:"include_dirs"`

	// Format selects the CLI's token dump rendering: "repr" or "plain".
	Format string `yaml:"format"`
}

// Default is the configuration used when no .cclex.yaml is present.
func Default() Config {
	return Config{GNUExtensions: true, Format: "plain"}
}

// Load reads <directory>/.cclex.yaml. A missing file is not an error:
// it yields Default().
func Load(directory string) (Config, error) {
	path := filepath.Join(directory, ".cclex.yaml")
	data, err := os.ReadFile(path)
	if errors.Is(err, os.ErrNotExist) {
		return Default(), nil
	}
	if err != nil {
		return Config{}, err
	}

	cfg := Default()
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// ResolvePath searches directory followed by each of IncludeDirs for
// name, returning the first path that exists.
func (c Config) ResolvePath(directory, name string) (string, error) {
	candidates := append([]string{directory}, c.IncludeDirs...)
	for _, dir := range candidates {
		p := filepath.Join(dir, name)
		if _, err := os.Stat(p); err == nil {
			return p, nil
		}
	}
	return "", errors.New("cclex: " + name + " not found in directory or include_dirs")
}
