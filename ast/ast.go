// Package ast defines the GraphQL query document tree produced by the
// parser and walked by the validator.
package ast

// Loc is the half-open character span [Start, End) a node covers in the
// source it was parsed from.
type Loc struct {
	Start int
	End   int
}

// Node is the base interface for all AST nodes.
type Node interface {
	// Position returns the character offset where the node starts.
	Position() int
}

func (l Loc) Position() int { return l.Start }

// Name is an identifier occurrence.
type Name struct {
	Loc
	Value string
}

// Document is a complete GraphQL document: a list of operation and
// fragment definitions.
type Document struct {
	Loc
	Definitions []Definition
}

// Definition is a top-level definition in a document.
type Definition interface {
	Node
	definitionNode()
}

// OperationDefinition is a query, mutation or subscription.
type OperationDefinition struct {
	Loc
	Operation           string // "query", "mutation" or "subscription"
	Name                *Name  // nil for anonymous operations
	VariableDefinitions []*VariableDefinition
	Directives          []*Directive
	SelectionSet        *SelectionSet
}

func (*OperationDefinition) definitionNode() {}

// FragmentDefinition is a named fragment with its type condition.
type FragmentDefinition struct {
	Loc
	Name          *Name
	TypeCondition *NamedType
	Directives    []*Directive
	SelectionSet  *SelectionSet
}

func (*FragmentDefinition) definitionNode() {}

// VariableDefinition declares an operation variable, its type and an
// optional default value.
type VariableDefinition struct {
	Loc
	Variable     *Variable
	Type         Type
	DefaultValue Value // nil when absent
}

// Variable is a $name usage.
type Variable struct {
	Loc
	Name *Name
}

func (*Variable) valueNode() {}

// SelectionSet is a braced group of selections.
type SelectionSet struct {
	Loc
	Selections []Selection
}

// Selection is a field, fragment spread or inline fragment.
type Selection interface {
	Node
	selectionNode()
}

// Field is a single field selection.
type Field struct {
	Loc
	Alias        *Name // nil when not aliased
	Name         *Name
	Arguments    []*Argument
	Directives   []*Directive
	SelectionSet *SelectionSet // nil for leaf selections
}

func (*Field) selectionNode() {}

// ResponseKey returns the alias when present, else the field name.
func (f *Field) ResponseKey() string {
	if f.Alias != nil {
		return f.Alias.Value
	}
	return f.Name.Value
}

// FragmentSpread is a ...name usage referencing a fragment definition.
type FragmentSpread struct {
	Loc
	Name       *Name
	Directives []*Directive
}

func (*FragmentSpread) selectionNode() {}

// InlineFragment is an anonymous fragment applied in place.
type InlineFragment struct {
	Loc
	TypeCondition *NamedType
	Directives    []*Directive
	SelectionSet  *SelectionSet
}

func (*InlineFragment) selectionNode() {}

// Argument is a name:value pair on a field or directive.
type Argument struct {
	Loc
	Name  *Name
	Value Value
}

// Directive is an @name application with optional arguments.
type Directive struct {
	Loc
	Name      *Name
	Arguments []*Argument
}

// Type is a type reference: named, list or non-null.
type Type interface {
	Node
	typeNode()
	String() string
}

// NamedType references a schema type by name.
type NamedType struct {
	Loc
	Name *Name
}

func (*NamedType) typeNode() {}

func (t *NamedType) String() string { return t.Name.Value }

// ListType wraps an element type in a list.
type ListType struct {
	Loc
	Type Type
}

func (*ListType) typeNode() {}

func (t *ListType) String() string { return "[" + t.Type.String() + "]" }

// NonNullType marks its inner type non-nullable.
type NonNullType struct {
	Loc
	Type Type // NamedType or ListType
}

func (*NonNullType) typeNode() {}

func (t *NonNullType) String() string { return t.Type.String() + "!" }

// Value is a literal or variable in value position.
type Value interface {
	Node
	valueNode()
}

// IntValue holds the exact matched integer text.
type IntValue struct {
	Loc
	Value string
}

func (*IntValue) valueNode() {}

// FloatValue holds the exact matched float text.
type FloatValue struct {
	Loc
	Value string
}

func (*FloatValue) valueNode() {}

// StringValue holds the decoded string literal.
type StringValue struct {
	Loc
	Value string
}

func (*StringValue) valueNode() {}

// BooleanValue is a true/false literal.
type BooleanValue struct {
	Loc
	Value bool
}

func (*BooleanValue) valueNode() {}

// EnumValue is a bare name in value position.
type EnumValue struct {
	Loc
	Value string
}

func (*EnumValue) valueNode() {}

// ListValue is a bracketed list of values.
type ListValue struct {
	Loc
	Values []Value
}

func (*ListValue) valueNode() {}

// ObjectValue is a braced list of object fields.
type ObjectValue struct {
	Loc
	Fields []*ObjectField
}

func (*ObjectValue) valueNode() {}

// ObjectField is one name:value entry of an object value.
type ObjectField struct {
	Loc
	Name  *Name
	Value Value
}
