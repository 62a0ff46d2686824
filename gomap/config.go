package gomap

import (
	"fmt"
	"os"

	"github.com/goccy/go-yaml"
)

// Config is the file form of a Mapper's declarative configuration.
// It covers the marker surface that needs no Go code: type name
// overrides, field renames, builder selection, exclusion, and
// expression transformers. Adapters and custom builders are code and
// stay at the composition root.
//
// Example:
//
//	types:
//	  - type: Item
//	    name: item
//	    fields:
//	      - field: Weight
//	        builder: attr
//	        expr: 'string(value) + "%"'
//	      - field: Secret
//	        exclude: true
type Config struct {
	Types []TypeConfig `yaml:"types"`
}

type TypeConfig struct {
	// Type is the Go type name the entry applies to.
	Type string `yaml:"type"`
	// Name overrides the node name for values of the type.
	Name   string        `yaml:"name,omitempty"`
	Fields []FieldConfig `yaml:"fields,omitempty"`
}

type FieldConfig struct {
	// Field is the struct field name the entry applies to.
	Field string `yaml:"field"`
	// Name overrides the field's resolved node/attribute name.
	Name string `yaml:"name,omitempty"`
	// Builder selects a named attach strategy ("attr", "child", or a
	// builder registered via WithBuilder).
	Builder string `yaml:"builder,omitempty"`
	// Transform selects a named transformer registered via
	// WithTransformer.
	Transform string `yaml:"transform,omitempty"`
	// Expr is an inline expression transformer; the field's value is
	// bound to "value".
	Expr string `yaml:"expr,omitempty"`
	// Exclude skips the field entirely regardless of value.
	Exclude bool `yaml:"exclude,omitempty"`
}

// LoadConfig reads a YAML mapper configuration from path.
func LoadConfig(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	return ParseConfig(data)
}

// ParseConfig parses a YAML mapper configuration.
func ParseConfig(data []byte) (*Config, error) {
	cfg := &Config{}
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, &ConfigError{Message: "invalid yaml", Err: err}
	}
	for _, tc := range cfg.Types {
		if tc.Type == "" {
			return nil, &ConfigError{Message: "type entry without type name"}
		}
		for _, fc := range tc.Fields {
			if fc.Field == "" {
				return nil, &ConfigError{Type: tc.Type, Message: "field entry without field name"}
			}
		}
	}
	return cfg, nil
}

// Options converts the config into Mapper options. Expression
// transformers are compiled here; a program that does not compile is
// the one configuration error that cannot fall back to a default.
func (c *Config) Options() ([]Option, error) {
	var opts []Option
	for _, tc := range c.Types {
		if tc.Name != "" {
			opts = append(opts, WithTypeName(tc.Type, tc.Name))
		}
		for _, fc := range tc.Fields {
			if fc.Exclude {
				opts = append(opts, WithFieldExcluded(tc.Type, fc.Field))
				continue
			}
			if fc.Name != "" {
				opts = append(opts, WithFieldName(tc.Type, fc.Field, fc.Name))
			}
			if fc.Builder != "" {
				opts = append(opts, WithFieldBuilder(tc.Type, fc.Field, fc.Builder))
			}
			if fc.Transform != "" {
				// named transformers resolve through the registry at
				// map time; record the name, not a closure
				opts = append(opts, withFieldTransformName(tc.Type, fc.Field, fc.Transform))
			}
			if fc.Expr != "" {
				t, err := ExprTransformer(fc.Expr)
				if err != nil {
					return nil, &ConfigError{
						Type:    tc.Type,
						Field:   fc.Field,
						Message: fmt.Sprintf("bad expr %q", fc.Expr),
						Err:     err,
					}
				}
				opts = append(opts, WithFieldTransformer(tc.Type, fc.Field, t))
			}
		}
	}
	return opts, nil
}

func withFieldTransformName(typeName, fieldName, transform string) Option {
	return func(c *mapConfig) {
		c.typeOf(typeName).fieldOf(fieldName).transform = transform
	}
}
