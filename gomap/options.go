package gomap

import "github.com/markfmt/go-markup/ir"

// Adapter is invoked exactly once against a type's fully mapped node
// and may perform arbitrary further structural mutation: reordering,
// removing or renaming children and attributes.
type Adapter func(n *ir.Node)

// Option configures a Mapper. Options populate the registries the
// mapping algorithm consults; everything left unset resolves to a
// default, never to an error.
type Option func(*mapConfig)

type mapConfig struct {
	builders     map[string]Builder
	transformers map[string]Transformer

	// types is keyed by Go type name (reflect.Type.Name()).
	types map[string]*typeConfig
}

type typeConfig struct {
	name    string
	adapter Adapter
	fields  map[string]*fieldConfig
}

// fieldConfig overrides, keyed by struct field name. Overrides set
// here win over the field's own tag markers: the composition root has
// the last word.
type fieldConfig struct {
	name        string
	builder     string
	transform   string
	transformer Transformer
	exclude     bool
}

func newMapConfig() *mapConfig {
	return &mapConfig{
		builders: map[string]Builder{
			BuilderAttr:  buildAttr,
			BuilderChild: buildChild,
		},
		transformers: map[string]Transformer{},
		types:        map[string]*typeConfig{},
	}
}

func (c *mapConfig) typeOf(typeName string) *typeConfig {
	tc := c.types[typeName]
	if tc == nil {
		tc = &typeConfig{fields: map[string]*fieldConfig{}}
		c.types[typeName] = tc
	}
	return tc
}

func (tc *typeConfig) fieldOf(fieldName string) *fieldConfig {
	fc := tc.fields[fieldName]
	if fc == nil {
		fc = &fieldConfig{}
		tc.fields[fieldName] = fc
	}
	return fc
}

// builder resolves a builder by registry name. An unknown or empty
// name resolves to the child-with-content default.
func (c *mapConfig) builder(name string) Builder {
	if b := c.builders[name]; b != nil {
		return b
	}
	return buildChild
}

// transformer resolves a transformer by registry name; nil means the
// default natural text form applies.
func (c *mapConfig) transformer(name string) Transformer {
	if name == "" {
		return nil
	}
	return c.transformers[name]
}

// WithTypeName overrides the node name used for values of the named
// Go type.
func WithTypeName(typeName, nodeName string) Option {
	return func(c *mapConfig) {
		c.typeOf(typeName).name = nodeName
	}
}

// WithAdapter registers the post-build adapter for the named Go type.
func WithAdapter(typeName string, a Adapter) Option {
	return func(c *mapConfig) {
		c.typeOf(typeName).adapter = a
	}
}

// WithBuilder registers a named attach strategy for use by
// builder= field markers.
func WithBuilder(name string, b Builder) Option {
	return func(c *mapConfig) {
		c.builders[name] = b
	}
}

// WithTransformer registers a named value→text conversion for use by
// transform= field markers.
func WithTransformer(name string, t Transformer) Option {
	return func(c *mapConfig) {
		c.transformers[name] = t
	}
}

// WithFieldName overrides the resolved name of a field.
func WithFieldName(typeName, fieldName, name string) Option {
	return func(c *mapConfig) {
		c.typeOf(typeName).fieldOf(fieldName).name = name
	}
}

// WithFieldBuilder selects the named builder for a field.
func WithFieldBuilder(typeName, fieldName, builder string) Option {
	return func(c *mapConfig) {
		c.typeOf(typeName).fieldOf(fieldName).builder = builder
	}
}

// WithFieldTransformer installs a transformer directly on a field,
// bypassing the named registry.
func WithFieldTransformer(typeName, fieldName string, t Transformer) Option {
	return func(c *mapConfig) {
		c.typeOf(typeName).fieldOf(fieldName).transformer = t
	}
}

// WithFieldExcluded skips the field entirely regardless of value.
func WithFieldExcluded(typeName, fieldName string) Option {
	return func(c *mapConfig) {
		c.typeOf(typeName).fieldOf(fieldName).exclude = true
	}
}
