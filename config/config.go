// Package config loads the sdx project configuration.
package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// Config represents the sdx project configuration
type Config struct {
	// Source is the shape document or directory the schema is compiled from
	Source string `yaml:"source"`
	// Ignore lists entry names skipped while walking Source
	Ignore []string `yaml:"ignore,omitempty"`
	// IgnorePatterns lists doublestar patterns relative to Source
	IgnorePatterns []string `yaml:"ignore_patterns,omitempty"`
	// Schema is the path the printed schema is written to
	Schema string `yaml:"schema"`
	// Documents is the directory holding GraphQL query documents
	Documents string `yaml:"documents"`
	// GQLGen is the gqlgen configuration file used for SDK generation
	GQLGen string `yaml:"gqlgen"`
	// LogLevel is one of debug, info, warn, error
	LogLevel string `yaml:"log_level"`
	// PluralCollections names collection queries with the plural of the type
	PluralCollections bool `yaml:"plural_collections,omitempty"`
	// Datatypes maps additional datatype IRIs to built-in scalars
	Datatypes map[string]string `yaml:"datatypes,omitempty"`
	// FieldOrder lists the field names printed first
	FieldOrder []string `yaml:"field_order,omitempty"`
	// Autobind lists Go packages gqlgen binds models from
	Autobind []string `yaml:"autobind,omitempty"`
	// Models maps GraphQL type names to the Go types gqlgen binds to them
	Models map[string][]string `yaml:"models,omitempty"`
}

// Default returns a Config with the conventional project layout
func Default() *Config {
	return &Config{
		Source:    "src/.sdx-gen/shacl",
		Ignore:    []string{"index.json"},
		Schema:    "src/.sdx-gen/graphql/schema.graphqls",
		Documents: "src/gql",
		GQLGen:    "gqlgen.yml",
		LogLevel:  "info",
	}
}

// Validate checks that the configuration is valid
func (c *Config) Validate() error {
	if c.Source == "" {
		return errors.New("source is required")
	}
	if c.Schema == "" {
		return errors.New("schema is required")
	}
	if _, err := c.Level(); err != nil {
		return err
	}
	return nil
}

// Level parses LogLevel.
func (c *Config) Level() (slog.Level, error) {
	var level slog.Level
	if c.LogLevel == "" {
		return slog.LevelInfo, nil
	}
	if err := level.UnmarshalText([]byte(c.LogLevel)); err != nil {
		return 0, fmt.Errorf("invalid log_level %q", c.LogLevel)
	}
	return level, nil
}

// Resolve makes the relative paths of c relative to dir.
func (c *Config) Resolve(dir string) {
	for _, p := range []*string{&c.Source, &c.Schema, &c.Documents, &c.GQLGen} {
		if *p != "" && !filepath.IsAbs(*p) {
			*p = filepath.Join(dir, *p)
		}
	}
}

// LoadFromFile loads configuration from a YAML file. Unknown keys are
// rejected. Fields missing from the file are left empty.
func LoadFromFile(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read config file: %w", err)
	}

	config := &Config{}
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(config); err != nil && !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("parse config file %s: %w", path, err)
	}
	return config, nil
}

// SaveToFile saves configuration to a YAML file
func (c *Config) SaveToFile(path string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("create config directory: %w", err)
	}
	data, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("marshal config: %w", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("write config file: %w", err)
	}
	return nil
}

// Merge merges another config into this one (other takes precedence for non-zero values)
func (c *Config) Merge(other *Config) {
	if other == nil {
		return
	}
	if other.Source != "" {
		c.Source = other.Source
	}
	if other.Ignore != nil {
		c.Ignore = other.Ignore
	}
	if other.IgnorePatterns != nil {
		c.IgnorePatterns = other.IgnorePatterns
	}
	if other.Schema != "" {
		c.Schema = other.Schema
	}
	if other.Documents != "" {
		c.Documents = other.Documents
	}
	if other.GQLGen != "" {
		c.GQLGen = other.GQLGen
	}
	if other.LogLevel != "" {
		c.LogLevel = other.LogLevel
	}
	if other.PluralCollections {
		c.PluralCollections = true
	}
	if len(other.Datatypes) > 0 {
		if c.Datatypes == nil {
			c.Datatypes = make(map[string]string, len(other.Datatypes))
		}
		for k, v := range other.Datatypes {
			c.Datatypes[k] = v
		}
	}
	if len(other.FieldOrder) > 0 {
		c.FieldOrder = other.FieldOrder
	}
	if len(other.Autobind) > 0 {
		c.Autobind = other.Autobind
	}
	if len(other.Models) > 0 {
		if c.Models == nil {
			c.Models = make(map[string][]string, len(other.Models))
		}
		for k, v := range other.Models {
			c.Models[k] = v
		}
	}
}
