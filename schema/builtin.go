package schema

import "strconv"

// Built-in scalar types.
var (
	IntType = &Scalar{Name: "Int", AcceptsLiteral: func(class LiteralClass, text string) bool {
		if class != LiteralInt {
			return false
		}
		_, err := strconv.ParseInt(text, 10, 64)
		return err == nil
	}}

	FloatType = &Scalar{Name: "Float", AcceptsLiteral: func(class LiteralClass, text string) bool {
		if class != LiteralInt && class != LiteralFloat {
			return false
		}
		_, err := strconv.ParseFloat(text, 64)
		return err == nil
	}}

	StringType = &Scalar{Name: "String", AcceptsLiteral: func(class LiteralClass, text string) bool {
		return class == LiteralString
	}}

	BooleanType = &Scalar{Name: "Boolean", AcceptsLiteral: func(class LiteralClass, text string) bool {
		return class == LiteralBoolean
	}}

	IDType = &Scalar{Name: "ID", AcceptsLiteral: func(class LiteralClass, text string) bool {
		return class == LiteralString || class == LiteralInt
	}}
)

// Built-in directives, applied when a schema declares none of its own.
var (
	IncludeDirective = &Directive{
		Name:       "include",
		Args:       []*InputValue{{Name: "if", Type: &NonNull{OfType: BooleanType}}},
		OnFragment: true,
		OnField:    true,
	}

	SkipDirective = &Directive{
		Name:       "skip",
		Args:       []*InputValue{{Name: "if", Type: &NonNull{OfType: BooleanType}}},
		OnFragment: true,
		OnField:    true,
	}
)
