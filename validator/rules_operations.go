package validator

import (
	"fmt"

	"github.com/lumengraph/graphql/ast"
	"github.com/lumengraph/graphql/schema"
)

// uniqueOperationNames reports documents defining two operations with the
// same name.
type uniqueOperationNames struct {
	Base
	known map[string]*ast.Name
}

// NewUniqueOperationNames builds the UniqueOperationNames rule.
func NewUniqueOperationNames(*Context) Rule {
	return &uniqueOperationNames{known: make(map[string]*ast.Name)}
}

func (r *uniqueOperationNames) Enter(node ast.Node, _ string, _ ast.Node, _ []string, _ []ast.Node) Result {
	op, ok := node.(*ast.OperationDefinition)
	if !ok || op.Name == nil {
		return Continue()
	}
	if previous, seen := r.known[op.Name.Value]; seen {
		return ReportError(
			fmt.Sprintf("There can only be one operation named %q.", op.Name.Value),
			previous, op.Name)
	}
	r.known[op.Name.Value] = op.Name
	return Continue()
}

// loneAnonymousOperation reports anonymous operations in documents that
// define more than one operation.
type loneAnonymousOperation struct {
	Base
	operationCount int
}

// NewLoneAnonymousOperation builds the LoneAnonymousOperation rule.
func NewLoneAnonymousOperation(*Context) Rule {
	return &loneAnonymousOperation{}
}

func (r *loneAnonymousOperation) Enter(node ast.Node, _ string, _ ast.Node, _ []string, _ []ast.Node) Result {
	switch n := node.(type) {
	case *ast.Document:
		r.operationCount = 0
		for _, def := range n.Definitions {
			if _, isOp := def.(*ast.OperationDefinition); isOp {
				r.operationCount++
			}
		}
	case *ast.OperationDefinition:
		if n.Name == nil && r.operationCount > 1 {
			return ReportError("This anonymous operation must be the only defined operation.", n)
		}
	}
	return Continue()
}

// knownTypeNames reports type references that name no schema type.
type knownTypeNames struct {
	Base
	ctx *Context
}

// NewKnownTypeNames builds the KnownTypeNames rule.
func NewKnownTypeNames(ctx *Context) Rule {
	return &knownTypeNames{ctx: ctx}
}

func (r *knownTypeNames) Enter(node ast.Node, _ string, _ ast.Node, _ []string, _ []ast.Node) Result {
	named, ok := node.(*ast.NamedType)
	if !ok {
		return Continue()
	}
	if r.ctx.Schema().Type(named.Name.Value) == nil {
		return ReportError(fmt.Sprintf("Unknown type %q.", named.Name.Value), named)
	}
	return Continue()
}

// scalarLeafs requires sub-selections exactly on composite-typed fields.
type scalarLeafs struct {
	Base
	ctx *Context
}

// NewScalarLeafs builds the ScalarLeafs rule.
func NewScalarLeafs(ctx *Context) Rule {
	return &scalarLeafs{ctx: ctx}
}

func (r *scalarLeafs) Enter(node ast.Node, _ string, _ ast.Node, _ []string, _ []ast.Node) Result {
	field, ok := node.(*ast.Field)
	if !ok {
		return Continue()
	}
	t := r.ctx.Type()
	if t == nil {
		return Continue()
	}
	if schema.IsLeafType(schema.GetNamedType(t)) {
		if field.SelectionSet != nil {
			return ReportError(
				fmt.Sprintf("Field %q of type %q must not have a sub selection.", field.Name.Value, t),
				field.SelectionSet)
		}
	} else if field.SelectionSet == nil {
		return ReportError(
			fmt.Sprintf("Field %q of type %q must have a sub selection.", field.Name.Value, t),
			field)
	}
	return Continue()
}

// fieldsOnCorrectType reports fields that do not exist on their parent
// type.
type fieldsOnCorrectType struct {
	Base
	ctx *Context
}

// NewFieldsOnCorrectType builds the FieldsOnCorrectType rule.
func NewFieldsOnCorrectType(ctx *Context) Rule {
	return &fieldsOnCorrectType{ctx: ctx}
}

func (r *fieldsOnCorrectType) Enter(node ast.Node, _ string, _ ast.Node, _ []string, _ []ast.Node) Result {
	field, ok := node.(*ast.Field)
	if !ok {
		return Continue()
	}
	parent := r.ctx.ParentType()
	if parent != nil && r.ctx.FieldDef() == nil {
		return ReportError(
			fmt.Sprintf("Cannot query field %q on type %q.", field.Name.Value, parent),
			field)
	}
	return Continue()
}
