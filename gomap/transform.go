package gomap

import (
	"fmt"
	"reflect"
	"strconv"

	"github.com/expr-lang/expr"
)

// Transformer is a pure value→text conversion applied to a field
// before its builder runs.
type Transformer func(v any) (string, error)

// defaultTransform is the natural text form of a scalar value. It is
// used whenever no transformer override is configured.
func defaultTransform(val reflect.Value) string {
	switch val.Kind() {
	case reflect.String:
		return val.String()
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return strconv.FormatInt(val.Int(), 10)
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		return strconv.FormatUint(val.Uint(), 10)
	case reflect.Float32, reflect.Float64:
		return strconv.FormatFloat(val.Float(), 'f', -1, 64)
	case reflect.Bool:
		return strconv.FormatBool(val.Bool())
	default:
		return fmt.Sprintf("%v", val.Interface())
	}
}

// ExprTransformer compiles src into a transformer. The program is
// evaluated with the field's value bound to "value"; a non-string
// result is rendered with its natural text form.
//
// Example: ExprTransformer(`string(value) + "%"`).
func ExprTransformer(src string) (Transformer, error) {
	prog, err := expr.Compile(src, expr.AllowUndefinedVariables())
	if err != nil {
		return nil, err
	}
	return func(v any) (string, error) {
		out, err := expr.Run(prog, map[string]any{"value": v})
		if err != nil {
			return "", err
		}
		if s, ok := out.(string); ok {
			return s, nil
		}
		return defaultTransform(reflect.ValueOf(out)), nil
	}, nil
}
