// Package schema is the type-system representation the validator consults:
// named types, list/non-null wrappers, field and argument definitions, and
// directive definitions.
package schema

import "fmt"

// Type is implemented by every schema type, named or wrapping.
type Type interface {
	String() string
	typeMarker()
}

// Named is implemented by types addressable by name in a schema.
type Named interface {
	Type
	TypeName() string
}

// Scalar is a leaf type. AcceptsLiteral reports whether a literal of the
// given lexical class can coerce to it; see the Literal* constants.
type Scalar struct {
	Name           string
	AcceptsLiteral func(class LiteralClass, text string) bool
}

// LiteralClass is the lexical class of a value literal, used by scalars to
// judge coercibility without depending on the AST package.
type LiteralClass int

const (
	LiteralInt LiteralClass = iota + 1
	LiteralFloat
	LiteralString
	LiteralBoolean
	LiteralEnum
)

func (*Scalar) typeMarker() {}
func (s *Scalar) String() string { return s.Name }
func (s *Scalar) TypeName() string { return s.Name }

// Object is a composite output type with named fields.
type Object struct {
	Name       string
	Interfaces []*Interface

	fields   map[string]*FieldDef
	fieldsFn func() map[string]*FieldDef
}

// NewObject creates an object type with eagerly supplied fields.
func NewObject(name string, fields map[string]*FieldDef, interfaces ...*Interface) *Object {
	return &Object{Name: name, Interfaces: interfaces, fields: fields}
}

// NewObjectLazy creates an object type whose fields are resolved on first
// use, allowing self- and mutually-referential types.
func NewObjectLazy(name string, fieldsFn func() map[string]*FieldDef, interfaces ...*Interface) *Object {
	return &Object{Name: name, Interfaces: interfaces, fieldsFn: fieldsFn}
}

func (*Object) typeMarker() {}
func (o *Object) String() string { return o.Name }
func (o *Object) TypeName() string { return o.Name }

// Fields returns the object's field definitions, resolving a lazy thunk
// exactly once.
func (o *Object) Fields() map[string]*FieldDef {
	if o.fields == nil && o.fieldsFn != nil {
		o.fields = o.fieldsFn()
	}
	return o.fields
}

// Interface is an abstract output type implemented by objects.
type Interface struct {
	Name   string
	fields map[string]*FieldDef
}

// NewInterface creates an interface type.
func NewInterface(name string, fields map[string]*FieldDef) *Interface {
	return &Interface{Name: name, fields: fields}
}

func (*Interface) typeMarker() {}
func (i *Interface) String() string { return i.Name }
func (i *Interface) TypeName() string { return i.Name }

// Fields returns the interface's field definitions.
func (i *Interface) Fields() map[string]*FieldDef { return i.fields }

// Union is an abstract output type whose value is one of a fixed set of
// object types.
type Union struct {
	Name  string
	Types []*Object
}

func (*Union) typeMarker() {}
func (u *Union) String() string { return u.Name }
func (u *Union) TypeName() string { return u.Name }

// Enum is a leaf type with a closed set of named values.
type Enum struct {
	Name   string
	Values []string
}

func (*Enum) typeMarker() {}
func (e *Enum) String() string { return e.Name }
func (e *Enum) TypeName() string { return e.Name }

// HasValue reports whether name is one of the enum's values.
func (e *Enum) HasValue(name string) bool {
	for _, v := range e.Values {
		if v == name {
			return true
		}
	}
	return false
}

// InputObject is a composite input type.
type InputObject struct {
	Name   string
	Fields map[string]*InputValue
}

func (*InputObject) typeMarker() {}
func (io *InputObject) String() string { return io.Name }
func (io *InputObject) TypeName() string { return io.Name }

// List wraps an element type.
type List struct {
	OfType Type
}

func (*List) typeMarker() {}
func (l *List) String() string { return fmt.Sprintf("[%s]", l.OfType) }

// NonNull marks its inner type non-nullable. The inner type is never
// itself a NonNull.
type NonNull struct {
	OfType Type
}

func (*NonNull) typeMarker() {}
func (n *NonNull) String() string { return fmt.Sprintf("%s!", n.OfType) }

// FieldDef describes one field of an object or interface.
type FieldDef struct {
	Name string
	Type Type
	Args []*InputValue
}

// InputValue describes an argument or input object field. DefaultValue is
// nil when no default exists.
type InputValue struct {
	Name         string
	Type         Type
	DefaultValue any
}

// Directive describes a directive definition and the locations it may
// appear in.
type Directive struct {
	Name        string
	Args        []*InputValue
	OnOperation bool
	OnFragment  bool
	OnField     bool
}
