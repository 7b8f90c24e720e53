// Package config loads declarative schema definitions and materializes them
// into attrx Schemas. Definitions are plain data files in YAML or TOML:
//
//	name: car
//	properties:
//	  - name: brand
//	    read_only: true
//	  - name: speed
//	    listener: _on_acceleration
//	    default: 0
//
// Listeners are still registered in code (Schema.On / Object.On); the file
// only names them.
package config

import (
	"errors"
	"fmt"
	"os"

	"github.com/BurntSushi/toml"
	"gopkg.in/yaml.v3"

	"github.com/comalice/attrx"
)

// SchemaConfig defines a complete property schema.
type SchemaConfig struct {
	Name       string           `json:"name,omitempty" yaml:"name,omitempty" toml:"name,omitempty"`
	AutoDirty  bool             `json:"auto_dirty,omitempty" yaml:"auto_dirty,omitempty" toml:"auto_dirty,omitempty"`
	Properties []PropertyConfig `json:"properties" yaml:"properties" toml:"properties"`
}

// PropertyConfig defines one declared property. Listener names the
// change-notification listener explicitly; Observed selects the conventional
// default name instead. Default is a literal fallback value returned while
// the backing field is unset.
type PropertyConfig struct {
	Name      string `json:"name" yaml:"name" toml:"name"`
	ReadOnly  bool   `json:"read_only,omitempty" yaml:"read_only,omitempty" toml:"read_only,omitempty"`
	Listener  string `json:"listener,omitempty" yaml:"listener,omitempty" toml:"listener,omitempty"`
	Observed  bool   `json:"observed,omitempty" yaml:"observed,omitempty" toml:"observed,omitempty"`
	AutoDirty bool   `json:"auto_dirty,omitempty" yaml:"auto_dirty,omitempty" toml:"auto_dirty,omitempty"`
	Default   any    `json:"default,omitempty" yaml:"default,omitempty" toml:"default,omitempty"`
}

// Validate validates the schema configuration:
// - At least one property
// - Non-empty, unique property names
// - No property both read-only and observable
func (c *SchemaConfig) Validate() error {
	if len(c.Properties) == 0 {
		return errors.New("at least one property is required")
	}
	seen := make(map[string]bool, len(c.Properties))
	for i, p := range c.Properties {
		if p.Name == "" {
			return fmt.Errorf("property %d: %w", i, attrx.ErrEmptyName)
		}
		if seen[p.Name] {
			return fmt.Errorf("property %q: %w", p.Name, attrx.ErrDuplicateProperty)
		}
		seen[p.Name] = true
		if p.ReadOnly && (p.Listener != "" || p.Observed) {
			return fmt.Errorf("property %q: %w", p.Name, attrx.ErrReadOnlyObservable)
		}
	}
	return nil
}

// Build validates the configuration and materializes it through a Builder.
func (c *SchemaConfig) Build() (*attrx.Schema, error) {
	if err := c.Validate(); err != nil {
		return nil, fmt.Errorf("schema %q: %w", c.Name, err)
	}

	var opts []attrx.BuilderOption
	if c.AutoDirty {
		opts = append(opts, attrx.WithAutoDirty())
	}
	b := attrx.NewBuilder(opts...)
	for _, p := range c.Properties {
		pb := b.Prop(p.Name)
		if p.ReadOnly {
			pb.ReadOnly()
		}
		switch {
		case p.Listener != "":
			pb.Listener(p.Listener)
		case p.Observed:
			pb.Observed()
		}
		if p.AutoDirty {
			pb.AutoDirty()
		}
		if p.Default != nil {
			def := p.Default
			pb.Default(func(*attrx.Object) any { return def })
		}
	}
	return b.Build()
}

// ParseYAML decodes a YAML schema definition and validates it.
func ParseYAML(data []byte) (*SchemaConfig, error) {
	var cfg SchemaConfig
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("yaml unmarshal: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("schema %q: %w", cfg.Name, err)
	}
	return &cfg, nil
}

// ParseTOML decodes a TOML schema definition and validates it.
func ParseTOML(data []byte) (*SchemaConfig, error) {
	var cfg SchemaConfig
	if err := toml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("toml unmarshal: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("schema %q: %w", cfg.Name, err)
	}
	return &cfg, nil
}

// LoadYAML reads and parses a YAML schema definition file.
func LoadYAML(path string) (*SchemaConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", path, err)
	}
	return ParseYAML(data)
}

// LoadTOML reads and parses a TOML schema definition file.
func LoadTOML(path string) (*SchemaConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", path, err)
	}
	return ParseTOML(data)
}
