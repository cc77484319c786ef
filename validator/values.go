package validator

import (
	"fmt"
	"strings"

	"github.com/lumengraph/graphql/ast"
	"github.com/lumengraph/graphql/schema"
)

// isValidLiteralValue reports whether a value literal from a document can
// coerce to the given input type. Variables in value position are accepted
// here; their types are checked by the variable rules.
func isValidLiteralValue(t schema.Type, value ast.Value) bool {
	if nonNull, ok := t.(*schema.NonNull); ok {
		if value == nil {
			return false
		}
		return isValidLiteralValue(nonNull.OfType, value)
	}
	if value == nil {
		return true
	}
	if _, ok := value.(*ast.Variable); ok {
		return true
	}

	switch tt := t.(type) {
	case *schema.List:
		if list, ok := value.(*ast.ListValue); ok {
			for _, item := range list.Values {
				if !isValidLiteralValue(tt.OfType, item) {
					return false
				}
			}
			return true
		}
		return isValidLiteralValue(tt.OfType, value)

	case *schema.InputObject:
		obj, ok := value.(*ast.ObjectValue)
		if !ok {
			return false
		}
		provided := make(map[string]ast.Value, len(obj.Fields))
		for _, field := range obj.Fields {
			def, known := tt.Fields[field.Name.Value]
			if !known {
				return false
			}
			provided[field.Name.Value] = field.Value
			if !isValidLiteralValue(def.Type, field.Value) {
				return false
			}
		}
		for name, def := range tt.Fields {
			if _, ok := provided[name]; ok {
				continue
			}
			if _, required := def.Type.(*schema.NonNull); required && def.DefaultValue == nil {
				return false
			}
		}
		return true

	case *schema.Scalar:
		class, text, ok := literalClass(value)
		if !ok {
			return false
		}
		return tt.AcceptsLiteral(class, text)

	case *schema.Enum:
		enumValue, ok := value.(*ast.EnumValue)
		return ok && tt.HasValue(enumValue.Value)
	}
	return false
}

// literalClass maps a scalar-position literal to its lexical class.
func literalClass(value ast.Value) (schema.LiteralClass, string, bool) {
	switch v := value.(type) {
	case *ast.IntValue:
		return schema.LiteralInt, v.Value, true
	case *ast.FloatValue:
		return schema.LiteralFloat, v.Value, true
	case *ast.StringValue:
		return schema.LiteralString, v.Value, true
	case *ast.BooleanValue:
		return schema.LiteralBoolean, fmt.Sprintf("%t", v.Value), true
	case *ast.EnumValue:
		return schema.LiteralEnum, v.Value, true
	}
	return 0, "", false
}

// printValue renders a value literal back to query syntax for error
// messages.
func printValue(value ast.Value) string {
	switch v := value.(type) {
	case *ast.IntValue:
		return v.Value
	case *ast.FloatValue:
		return v.Value
	case *ast.StringValue:
		return fmt.Sprintf("%q", v.Value)
	case *ast.BooleanValue:
		return fmt.Sprintf("%t", v.Value)
	case *ast.EnumValue:
		return v.Value
	case *ast.Variable:
		return "$" + v.Name.Value
	case *ast.ListValue:
		parts := make([]string, len(v.Values))
		for i, item := range v.Values {
			parts[i] = printValue(item)
		}
		return "[" + strings.Join(parts, ", ") + "]"
	case *ast.ObjectValue:
		parts := make([]string, len(v.Fields))
		for i, field := range v.Fields {
			parts[i] = field.Name.Value + ": " + printValue(field.Value)
		}
		return "{" + strings.Join(parts, ", ") + "}"
	}
	return ""
}
