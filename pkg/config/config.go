// Package config loads the optional promptgen.config.yml that sits next to
// a project description file.
package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

const ConfigFileName = "promptgen.config.yml"

// Config defines per-project build settings. Every field is optional; an
// absent config file means built-in defaults throughout.
type Config struct {
	Output   OutputConfig   `yaml:"output,omitempty"`
	Template TemplateConfig `yaml:"template,omitempty"`
}

// OutputConfig selects where `promptgen build` sends the prompt document.
type OutputConfig struct {
	Sink string `yaml:"sink,omitempty"` // "stdout" (default), "file", or "clipboard"
	Path string `yaml:"path,omitempty"` // output file path when sink is "file"
}

// TemplateConfig overrides the static text around the content block.
type TemplateConfig struct {
	PreambleFile string `yaml:"preamble_file,omitempty"` // custom preamble, relative to the project file
	FooterFile   string `yaml:"footer_file,omitempty"`   // custom footer, relative to the project file
	Fence        string `yaml:"fence,omitempty"`         // fence string for the content block
}

// Load attempts to load a promptgen.config.yml from the given directory.
// Returns os.ErrNotExist when no config file is present.
func Load(dir string) (*Config, error) {
	configPath := filepath.Join(dir, ConfigFileName)
	if _, err := os.Stat(configPath); os.IsNotExist(err) {
		return nil, os.ErrNotExist
	}

	data, err := os.ReadFile(configPath)
	if err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", configPath, err)
	}

	var config Config
	if err := yaml.Unmarshal(data, &config); err != nil {
		return nil, fmt.Errorf("failed to parse %s: %w", configPath, err)
	}

	return &config, nil
}

// ReadTemplateFile reads a template override file, resolving relative paths
// against dir.
func ReadTemplateFile(dir, path string) (string, error) {
	if path == "" {
		return "", nil
	}
	if !filepath.IsAbs(path) {
		path = filepath.Join(dir, path)
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return "", fmt.Errorf("failed to read template file %s: %w", path, err)
	}
	return string(data), nil
}
