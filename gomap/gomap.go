package gomap

import (
	"fmt"
	"reflect"
	"slices"

	"github.com/markfmt/go-markup/debug"
	"github.com/markfmt/go-markup/ir"
)

// NodeAdapter is the interface a mapped type may implement to
// customize its fully assembled node. A registry adapter installed via
// WithAdapter takes precedence over the interface.
type NodeAdapter interface {
	AdaptNode(n *ir.Node)
}

// Mapper converts Go values into markup subtrees. Assemble one at a
// composition root with New and reuse it; a Mapper is read-only after
// construction.
type Mapper struct {
	cfg *mapConfig
}

func New(opts ...Option) *Mapper {
	cfg := newMapConfig()
	for _, opt := range opts {
		opt(cfg)
	}
	return &Mapper{cfg: cfg}
}

// Map converts v into a subtree whose root node is named after v's
// type, or after the configured type name override.
func (m *Mapper) Map(v any) (*ir.Node, error) {
	return m.MapNamed("", v)
}

// MapNamed is Map with an explicit node name for the subtree root,
// for callers ingesting unnamed composite data (maps, slices). An
// empty name derives the name from v's type.
func (m *Mapper) MapNamed(name string, v any) (*ir.Node, error) {
	if v == nil {
		return nil, &MarshalError{Message: "cannot map nil value"}
	}
	visited := make(map[uintptr]string)
	node, err := m.mapValue(name, reflect.ValueOf(v), "", visited)
	if err != nil {
		return nil, err
	}
	if debug.Map() {
		debug.Logf("mapped %T to %s\n", v, node.Path())
	}
	return node, nil
}

// mapValue converts val into a node named name (derived from the type
// when empty). fieldPath is used for error reporting. visited tracks
// pointer, map and slice addresses to detect circular references.
func (m *Mapper) mapValue(name string, val reflect.Value, fieldPath string, visited map[uintptr]string) (*ir.Node, error) {
	if !val.IsValid() {
		return nil, &MarshalError{FieldPath: fieldPath, Message: "cannot map invalid value"}
	}
	typ := val.Type()
	kind := typ.Kind()

	switch kind {
	case reflect.Ptr:
		if val.IsNil() {
			return nil, &MarshalError{FieldPath: fieldPath, Message: "cannot map nil pointer"}
		}
		ptrAddr := val.Pointer()
		if prevPath, seen := visited[ptrAddr]; seen {
			return nil, &MarshalError{
				FieldPath: fieldPath,
				Message:   fmt.Sprintf("circular reference detected: %s -> %s", prevPath, fieldPath),
			}
		}
		visited[ptrAddr] = fieldPath
		node, err := m.mapValue(name, val.Elem(), fieldPath, visited)
		delete(visited, ptrAddr)
		return node, err

	case reflect.Interface:
		if val.IsNil() {
			return nil, &MarshalError{FieldPath: fieldPath, Message: "cannot map nil interface"}
		}
		return m.mapValue(name, val.Elem(), fieldPath, visited)

	case reflect.Struct:
		return m.mapStruct(name, val, fieldPath, visited)

	case reflect.Map:
		return m.mapMap(name, val, fieldPath, visited)

	case reflect.Slice, reflect.Array:
		return m.mapSlice(name, val, fieldPath, visited)

	case reflect.String, reflect.Bool,
		reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
		reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64,
		reflect.Float32, reflect.Float64:
		node := ir.NewNode(m.resolveName(name, typ))
		node.SetContent(defaultTransform(val))
		m.adapt(node, val)
		return node, nil

	default:
		return nil, &MarshalError{
			FieldPath: fieldPath,
			Message:   fmt.Sprintf("unsupported type: %s", typ),
		}
	}
}

// mapStruct assembles a node from a struct value: fields in declared
// order, empty and excluded fields skipped, collection fields wrapped,
// builder-marked fields attached by their builder, and everything else
// attached as a child with transformed text content. The type's
// adapter, if any, runs exactly once afterwards.
func (m *Mapper) mapStruct(name string, val reflect.Value, fieldPath string, visited map[uintptr]string) (*ir.Node, error) {
	typ := val.Type()
	node := ir.NewNode(m.resolveName(name, typ))

	for i := 0; i < typ.NumField(); i++ {
		field := typ.Field(i)
		if !field.IsExported() {
			continue
		}
		fieldVal := val.Field(i)

		ft, err := parseFieldTag(field.Tag.Get("markup"))
		if err != nil {
			// malformed tags fall back to no markers
			ft = &fieldTag{}
		}
		fc := m.fieldConfig(typ.Name(), field.Name)

		if ft.Omit || fc.exclude {
			continue
		}
		if isEmptyValue(fieldVal) {
			continue
		}

		fieldName := field.Name
		if ft.Name != "" {
			fieldName = ft.Name
		}
		if fc.name != "" {
			fieldName = fc.name
		}

		nextPath := fieldName
		if fieldPath != "" {
			nextPath = fieldPath + "." + fieldName
		}

		elemVal := indirect(fieldVal)
		builderName := ft.Builder
		if fc.builder != "" {
			builderName = fc.builder
		}

		switch {
		case isCollection(elemVal):
			wrapper := ir.NewNode(fieldName)
			if err := m.mapElements(wrapper, elemVal, nextPath, visited); err != nil {
				return nil, err
			}
			node.Attach(wrapper)

		case builderName == "" && (elemVal.Kind() == reflect.Struct || elemVal.Kind() == reflect.Map):
			child, err := m.mapValue(fieldName, fieldVal, nextPath, visited)
			if err != nil {
				return nil, err
			}
			node.Attach(child)

		default:
			text, err := m.transformField(fieldVal, ft, fc)
			if err != nil {
				return nil, &MarshalError{FieldPath: nextPath, Message: "transformer failed", Err: err}
			}
			m.cfg.builder(builderName)(node, fieldName, text)
		}
	}

	m.adapt(node, val)
	return node, nil
}

// mapMap assembles a node with one child per map entry, children in
// sorted key order. Keys must be strings.
func (m *Mapper) mapMap(name string, val reflect.Value, fieldPath string, visited map[uintptr]string) (*ir.Node, error) {
	if val.Type().Key().Kind() != reflect.String {
		return nil, &MarshalError{
			FieldPath: fieldPath,
			Message:   fmt.Sprintf("map keys must be strings, got %s", val.Type().Key()),
		}
	}
	mapPtr := val.Pointer()
	if prevPath, seen := visited[mapPtr]; seen {
		return nil, &MarshalError{
			FieldPath: fieldPath,
			Message:   fmt.Sprintf("circular reference detected: %s -> %s", prevPath, fieldPath),
		}
	}
	visited[mapPtr] = fieldPath
	defer delete(visited, mapPtr)

	node := ir.NewNode(m.resolveName(name, val.Type()))
	keys := make([]string, 0, val.Len())
	for _, k := range val.MapKeys() {
		keys = append(keys, k.String())
	}
	slices.Sort(keys)
	for _, key := range keys {
		entryVal := val.MapIndex(reflect.ValueOf(key))
		entryPath := key
		if fieldPath != "" {
			entryPath = fieldPath + "." + key
		}
		child, err := m.mapValue(key, entryVal, entryPath, visited)
		if err != nil {
			return nil, err
		}
		node.Attach(child)
	}
	m.adapt(node, val)
	return node, nil
}

// mapSlice assembles a node with one child per element, each named by
// its own type and mapped through the whole algorithm.
func (m *Mapper) mapSlice(name string, val reflect.Value, fieldPath string, visited map[uintptr]string) (*ir.Node, error) {
	node := ir.NewNode(m.resolveName(name, val.Type()))
	if err := m.mapElements(node, val, fieldPath, visited); err != nil {
		return nil, err
	}
	m.adapt(node, val)
	return node, nil
}

func (m *Mapper) mapElements(wrapper *ir.Node, val reflect.Value, fieldPath string, visited map[uintptr]string) error {
	if val.Kind() == reflect.Slice && !val.IsNil() {
		slicePtr := val.Pointer()
		if prevPath, seen := visited[slicePtr]; seen {
			return &MarshalError{
				FieldPath: fieldPath,
				Message:   fmt.Sprintf("circular reference detected: %s -> %s", prevPath, fieldPath),
			}
		}
		visited[slicePtr] = fieldPath
		defer delete(visited, slicePtr)
	}
	for i := 0; i < val.Len(); i++ {
		elemPath := fmt.Sprintf("%s[%d]", fieldPath, i)
		child, err := m.mapValue("", val.Index(i), elemPath, visited)
		if err != nil {
			return err
		}
		wrapper.Attach(child)
	}
	return nil
}

// transformField resolves the text form of a field's value: a direct
// field transformer wins, then a named registry transformer, then the
// natural text form.
func (m *Mapper) transformField(val reflect.Value, ft *fieldTag, fc *fieldConfig) (string, error) {
	t := fc.transformer
	if t == nil {
		transformName := ft.Transform
		if fc.transform != "" {
			transformName = fc.transform
		}
		t = m.cfg.transformer(transformName)
	}
	if t == nil {
		return defaultTransform(indirect(val)), nil
	}
	return t(indirect(val).Interface())
}

// adapt runs the type's post-build adapter, if any, exactly once: the
// registry adapter when installed, otherwise the NodeAdapter
// interface when implemented.
func (m *Mapper) adapt(node *ir.Node, val reflect.Value) {
	typeName := val.Type().Name()
	if typeName != "" {
		if tc := m.cfg.types[typeName]; tc != nil && tc.adapter != nil {
			tc.adapter(node)
			return
		}
	}
	if a, ok := val.Interface().(NodeAdapter); ok {
		a.AdaptNode(node)
		return
	}
	if val.CanAddr() {
		if a, ok := val.Addr().Interface().(NodeAdapter); ok {
			a.AdaptNode(node)
		}
		return
	}
	if _, ok := reflect.PtrTo(val.Type()).MethodByName("AdaptNode"); ok {
		ptrVal := reflect.New(val.Type())
		ptrVal.Elem().Set(val)
		if a, ok := ptrVal.Interface().(NodeAdapter); ok {
			a.AdaptNode(node)
		}
	}
}

// resolveName picks the node name: explicit name, then the configured
// per-type override, then the type's own identifier, then its kind.
func (m *Mapper) resolveName(name string, typ reflect.Type) string {
	if name != "" {
		return name
	}
	typeName := typ.Name()
	if typeName != "" {
		if tc := m.cfg.types[typeName]; tc != nil && tc.name != "" {
			return tc.name
		}
		return typeName
	}
	return typ.Kind().String()
}

func (m *Mapper) fieldConfig(typeName, fieldName string) *fieldConfig {
	if typeName != "" {
		if tc := m.cfg.types[typeName]; tc != nil {
			if fc := tc.fields[fieldName]; fc != nil {
				return fc
			}
		}
	}
	return &fieldConfig{}
}

func indirect(val reflect.Value) reflect.Value {
	for val.Kind() == reflect.Ptr || val.Kind() == reflect.Interface {
		if val.IsNil() {
			return val
		}
		val = val.Elem()
	}
	return val
}

func isCollection(val reflect.Value) bool {
	switch val.Kind() {
	case reflect.Slice, reflect.Array:
		return true
	default:
		return false
	}
}

// isEmptyValue reports whether a field's current value is empty or
// absent; such fields contribute nothing to the mapped node.
func isEmptyValue(val reflect.Value) bool {
	switch val.Kind() {
	case reflect.Slice, reflect.Map:
		return val.Len() == 0
	case reflect.Ptr, reflect.Interface:
		return val.IsNil()
	default:
		return val.IsZero()
	}
}
