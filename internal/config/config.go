// Copyright (C) 2023 Michael J. Fromberger. All Rights Reserved.

// Package config defines the settings file for the rijson command-line tool.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/creachadair/rijson"
	"gopkg.in/yaml.v3"
)

// Config represents the complete configuration for the rijson tool.
type Config struct {
	// MaxDepth bounds the nesting depth of parsed values; 0 means unlimited.
	MaxDepth int `yaml:"max_depth"`

	// AllowComments enables JWCC input: comments and trailing commas are
	// removed before lexing.
	AllowComments bool `yaml:"allow_comments"`

	Debug  bool         `yaml:"debug"`
	Output OutputConfig `yaml:"output"`
}

// OutputConfig controls how parsed values are printed.
type OutputConfig struct {
	// Select is a dotted path applied to each value before printing.
	Select string `yaml:"select"`

	// Pretty selects multi-line indented output.
	Pretty bool `yaml:"pretty"`
}

// FileNames are the names searched for by FindConfigFile, in order.
var FileNames = []string{".rijson.yml", ".rijson.yaml", "rijson.yml", "rijson.yaml"}

// NewConfig creates a new Config with default values.
func NewConfig() *Config {
	return &Config{MaxDepth: rijson.DefaultMaxDepth}
}

// Load loads configuration from a YAML file. Settings the file does not
// mention keep their default values.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}
	cfg := NewConfig()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config file: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config file %q: %w", path, err)
	}
	return cfg, nil
}

// Validate reports an error if c has settings that cannot be used.
func (c *Config) Validate() error {
	if c.MaxDepth < 0 {
		return fmt.Errorf("max_depth must not be negative (got %d)", c.MaxDepth)
	}
	if s := c.Output.Select; s != "" && (s[0] == '.' || s[len(s)-1] == '.') {
		return errors.New("output.select must not begin or end with a dot")
	}
	return nil
}

// FindConfigFile searches dir and its parents for a config file, and returns
// its path. It returns "" if none is found.
func FindConfigFile(dir string) string {
	for {
		for _, name := range FileNames {
			path := filepath.Join(dir, name)
			if _, err := os.Stat(path); err == nil {
				return path
			}
		}
		parent := filepath.Dir(dir)
		if parent == dir {
			return ""
		}
		dir = parent
	}
}
