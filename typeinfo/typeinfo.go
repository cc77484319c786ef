// Package typeinfo tracks the type context active at the current node of
// an AST traversal: the stacks are pushed on Enter and popped on Leave, so
// a balanced walk leaves them empty.
package typeinfo

import (
	"github.com/lumengraph/graphql/ast"
	"github.com/lumengraph/graphql/schema"
)

// typenameMetaFieldDef is the __typename meta field available on every
// composite type.
var typenameMetaFieldDef = &schema.FieldDef{
	Name: "__typename",
	Type: &schema.NonNull{OfType: schema.StringType},
}

// TypeInfo is a traversal-synchronized view of the schema: at any point of
// a walk it exposes the output type, parent type, input type, field
// definition, directive and argument in scope.
type TypeInfo struct {
	schema          *schema.Schema
	typeStack       []schema.Type
	parentTypeStack []schema.Type
	inputTypeStack  []schema.Type
	fieldDefStack   []*schema.FieldDef
	directive       *schema.Directive
	argument        *schema.InputValue
}

// New creates a TypeInfo bound to s.
func New(s *schema.Schema) *TypeInfo {
	return &TypeInfo{schema: s}
}

// Type returns the output type in scope, or nil.
func (ti *TypeInfo) Type() schema.Type {
	if len(ti.typeStack) > 0 {
		return ti.typeStack[len(ti.typeStack)-1]
	}
	return nil
}

// ParentType returns the composite type whose selection set is in scope.
func (ti *TypeInfo) ParentType() schema.Type {
	if len(ti.parentTypeStack) > 0 {
		return ti.parentTypeStack[len(ti.parentTypeStack)-1]
	}
	return nil
}

// InputType returns the input type in scope, or nil.
func (ti *TypeInfo) InputType() schema.Type {
	if len(ti.inputTypeStack) > 0 {
		return ti.inputTypeStack[len(ti.inputTypeStack)-1]
	}
	return nil
}

// FieldDef returns the field definition in scope, or nil.
func (ti *TypeInfo) FieldDef() *schema.FieldDef {
	if len(ti.fieldDefStack) > 0 {
		return ti.fieldDefStack[len(ti.fieldDefStack)-1]
	}
	return nil
}

// Directive returns the directive definition in scope, or nil.
func (ti *TypeInfo) Directive() *schema.Directive { return ti.directive }

// Argument returns the argument definition in scope, or nil.
func (ti *TypeInfo) Argument() *schema.InputValue { return ti.argument }

// Depth returns the total stack depth, zero after any balanced walk.
func (ti *TypeInfo) Depth() int {
	return len(ti.typeStack) + len(ti.parentTypeStack) +
		len(ti.inputTypeStack) + len(ti.fieldDefStack)
}

// Enter pushes the type context contributed by node.
func (ti *TypeInfo) Enter(node ast.Node) {
	switch n := node.(type) {
	case *ast.SelectionSet:
		named := schema.GetNamedType(ti.Type())
		if named != nil && schema.IsCompositeType(named) {
			ti.parentTypeStack = append(ti.parentTypeStack, named)
		} else {
			ti.parentTypeStack = append(ti.parentTypeStack, nil)
		}

	case *ast.Field:
		var fieldDef *schema.FieldDef
		if parent := ti.ParentType(); parent != nil {
			fieldDef = lookupFieldDef(parent, n.Name.Value)
		}
		ti.fieldDefStack = append(ti.fieldDefStack, fieldDef)
		if fieldDef != nil {
			ti.typeStack = append(ti.typeStack, fieldDef.Type)
		} else {
			ti.typeStack = append(ti.typeStack, nil)
		}

	case *ast.Directive:
		ti.directive = ti.schema.Directive(n.Name.Value)

	case *ast.OperationDefinition:
		var root schema.Type
		switch n.Operation {
		case "query":
			root = ti.schema.QueryType()
		case "mutation":
			if mt := ti.schema.MutationType(); mt != nil {
				root = mt
			}
		case "subscription":
			if st := ti.schema.SubscriptionType(); st != nil {
				root = st
			}
		}
		ti.typeStack = append(ti.typeStack, root)

	case *ast.InlineFragment:
		if n.TypeCondition != nil {
			ti.typeStack = append(ti.typeStack, schema.TypeFromAST(ti.schema, n.TypeCondition))
		} else {
			ti.typeStack = append(ti.typeStack, ti.Type())
		}

	case *ast.FragmentDefinition:
		ti.typeStack = append(ti.typeStack, schema.TypeFromAST(ti.schema, n.TypeCondition))

	case *ast.VariableDefinition:
		ti.inputTypeStack = append(ti.inputTypeStack, schema.TypeFromAST(ti.schema, n.Type))

	case *ast.Argument:
		var argDef *schema.InputValue
		var args []*schema.InputValue
		if ti.directive != nil {
			args = ti.directive.Args
		} else if fd := ti.FieldDef(); fd != nil {
			args = fd.Args
		}
		for _, a := range args {
			if a.Name == n.Name.Value {
				argDef = a
				break
			}
		}
		ti.argument = argDef
		if argDef != nil {
			ti.inputTypeStack = append(ti.inputTypeStack, argDef.Type)
		} else {
			ti.inputTypeStack = append(ti.inputTypeStack, nil)
		}

	case *ast.ListValue:
		if list, ok := schema.GetNullableType(ti.InputType()).(*schema.List); ok {
			ti.inputTypeStack = append(ti.inputTypeStack, list.OfType)
		} else {
			ti.inputTypeStack = append(ti.inputTypeStack, nil)
		}

	case *ast.ObjectField:
		var fieldType schema.Type
		if obj, ok := schema.GetNamedType(ti.InputType()).(*schema.InputObject); ok {
			if field, found := obj.Fields[n.Name.Value]; found {
				fieldType = field.Type
			}
		}
		ti.inputTypeStack = append(ti.inputTypeStack, fieldType)
	}
}

// Leave pops the context pushed for node by Enter.
func (ti *TypeInfo) Leave(node ast.Node) {
	switch node.(type) {
	case *ast.SelectionSet:
		ti.parentTypeStack = ti.parentTypeStack[:len(ti.parentTypeStack)-1]

	case *ast.Field:
		ti.fieldDefStack = ti.fieldDefStack[:len(ti.fieldDefStack)-1]
		ti.typeStack = ti.typeStack[:len(ti.typeStack)-1]

	case *ast.Directive:
		ti.directive = nil

	case *ast.OperationDefinition, *ast.InlineFragment, *ast.FragmentDefinition:
		ti.typeStack = ti.typeStack[:len(ti.typeStack)-1]

	case *ast.VariableDefinition, *ast.ListValue, *ast.ObjectField:
		ti.inputTypeStack = ti.inputTypeStack[:len(ti.inputTypeStack)-1]

	case *ast.Argument:
		ti.argument = nil
		ti.inputTypeStack = ti.inputTypeStack[:len(ti.inputTypeStack)-1]
	}
}

// lookupFieldDef resolves a field on a composite type, including the
// __typename meta field.
func lookupFieldDef(parent schema.Type, name string) *schema.FieldDef {
	if name == "__typename" && schema.IsCompositeType(parent) {
		return typenameMetaFieldDef
	}
	switch t := parent.(type) {
	case *schema.Object:
		return t.Fields()[name]
	case *schema.Interface:
		return t.Fields()[name]
	}
	return nil
}
