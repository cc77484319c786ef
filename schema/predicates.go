package schema

import "github.com/lumengraph/graphql/ast"

// GetNamedType unwraps list and non-null wrappers down to the named type.
func GetNamedType(t Type) Type {
	for {
		switch tt := t.(type) {
		case *List:
			t = tt.OfType
		case *NonNull:
			t = tt.OfType
		default:
			return t
		}
	}
}

// GetNullableType strips an outer non-null wrapper, if present.
func GetNullableType(t Type) Type {
	if nn, ok := t.(*NonNull); ok {
		return nn.OfType
	}
	return t
}

// IsInputType reports whether t may be used where input is expected:
// scalars, enums and input objects, possibly wrapped.
func IsInputType(t Type) bool {
	switch GetNamedType(t).(type) {
	case *Scalar, *Enum, *InputObject:
		return true
	}
	return false
}

// IsLeafType reports whether t resolves to a value with no sub-selections.
func IsLeafType(t Type) bool {
	switch t.(type) {
	case *Scalar, *Enum:
		return true
	}
	return false
}

// IsCompositeType reports whether t supports sub-selections.
func IsCompositeType(t Type) bool {
	switch t.(type) {
	case *Object, *Interface, *Union:
		return true
	}
	return false
}

// IsAbstractType reports whether t resolves to one of several object types.
func IsAbstractType(t Type) bool {
	switch t.(type) {
	case *Interface, *Union:
		return true
	}
	return false
}

// TypeFromAST resolves a type reference from a query document against the
// schema, or returns nil when the named type does not exist.
func TypeFromAST(s *Schema, t ast.Type) Type {
	switch tt := t.(type) {
	case *ast.ListType:
		inner := TypeFromAST(s, tt.Type)
		if inner == nil {
			return nil
		}
		return &List{OfType: inner}
	case *ast.NonNullType:
		inner := TypeFromAST(s, tt.Type)
		if inner == nil {
			return nil
		}
		return &NonNull{OfType: inner}
	case *ast.NamedType:
		return s.Type(tt.Name.Value)
	}
	return nil
}

// DoTypesOverlap reports whether two composite types could describe the
// same runtime object, the test behind fragment spread applicability.
func DoTypesOverlap(s *Schema, a, b Type) bool {
	if a == b {
		return true
	}
	if IsAbstractType(a) {
		for _, possible := range s.PossibleTypes(a) {
			if IsAbstractType(b) {
				if isPossibleType(s, b, possible) {
					return true
				}
			} else if Type(possible) == b {
				return true
			}
		}
		return false
	}
	if IsAbstractType(b) {
		if obj, ok := a.(*Object); ok {
			return isPossibleType(s, b, obj)
		}
	}
	return false
}

func isPossibleType(s *Schema, abstract Type, obj *Object) bool {
	for _, possible := range s.PossibleTypes(abstract) {
		if possible == obj {
			return true
		}
	}
	return false
}
