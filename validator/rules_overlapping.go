package validator

import (
	"fmt"

	"github.com/lumengraph/graphql/ast"
	"github.com/lumengraph/graphql/gqlerrors"
	"github.com/lumengraph/graphql/schema"
)

// overlappingFieldsCanBeMerged reports selections that would produce the
// same response key but cannot be merged: different underlying fields,
// differing arguments, or differing return types. It runs at every
// selection-set leave; a pair set keeps already-compared field pairs from
// being reported twice.
type overlappingFieldsCanBeMerged struct {
	Base
	ctx      *Context
	compared map[fieldPair]bool
}

type fieldPair struct {
	a, b *ast.Field
}

// NewOverlappingFieldsCanBeMerged builds the OverlappingFieldsCanBeMerged
// rule.
func NewOverlappingFieldsCanBeMerged(ctx *Context) Rule {
	return &overlappingFieldsCanBeMerged{ctx: ctx, compared: make(map[fieldPair]bool)}
}

// fieldEntry records one collected field occurrence with the type context
// it was selected in.
type fieldEntry struct {
	parentType schema.Type
	field      *ast.Field
	def        *schema.FieldDef
}

func (r *overlappingFieldsCanBeMerged) Leave(node ast.Node, _ string, _ ast.Node, _ []string, _ []ast.Node) Result {
	selectionSet, ok := node.(*ast.SelectionSet)
	if !ok {
		return Continue()
	}
	fields := make(map[string][]fieldEntry)
	r.collect(r.ctx.ParentType(), selectionSet, make(map[string]bool), fields)
	if errs := r.findConflicts(fields); len(errs) > 0 {
		return ReportErrors(errs...)
	}
	return Continue()
}

// collect gathers the fields a selection set contributes to a response,
// flattening inline fragments and fragment spreads. A visited set keeps
// cyclic spreads from recursing forever.
func (r *overlappingFieldsCanBeMerged) collect(parentType schema.Type, selectionSet *ast.SelectionSet, visited map[string]bool, out map[string][]fieldEntry) {
	for _, selection := range selectionSet.Selections {
		switch sel := selection.(type) {
		case *ast.Field:
			key := sel.ResponseKey()
			out[key] = append(out[key], fieldEntry{
				parentType: parentType,
				field:      sel,
				def:        fieldDefOn(parentType, sel.Name.Value),
			})
		case *ast.InlineFragment:
			inner := parentType
			if sel.TypeCondition != nil {
				inner = schema.TypeFromAST(r.ctx.Schema(), sel.TypeCondition)
			}
			if sel.SelectionSet != nil {
				r.collect(inner, sel.SelectionSet, visited, out)
			}
		case *ast.FragmentSpread:
			if visited[sel.Name.Value] {
				continue
			}
			visited[sel.Name.Value] = true
			fragment := r.ctx.Fragment(sel.Name.Value)
			if fragment == nil {
				continue
			}
			inner := schema.TypeFromAST(r.ctx.Schema(), fragment.TypeCondition)
			r.collect(inner, fragment.SelectionSet, visited, out)
		}
	}
}

func (r *overlappingFieldsCanBeMerged) findConflicts(fields map[string][]fieldEntry) []*gqlerrors.Error {
	var errs []*gqlerrors.Error
	for key, entries := range fields {
		for i := 0; i < len(entries); i++ {
			for j := i + 1; j < len(entries); j++ {
				if err := r.findConflict(key, entries[i], entries[j]); err != nil {
					errs = append(errs, err)
				}
			}
		}
	}
	return errs
}

func (r *overlappingFieldsCanBeMerged) findConflict(key string, a, b fieldEntry) *gqlerrors.Error {
	if a.field == b.field {
		return nil
	}
	pair := fieldPair{a: a.field, b: b.field}
	if r.compared[pair] {
		return nil
	}
	r.compared[pair] = true
	r.compared[fieldPair{a: b.field, b: a.field}] = true

	conflict := func(reason string) *gqlerrors.Error {
		return gqlerrors.NewError(
			fmt.Sprintf("Fields %q conflict because %s.", key, reason),
			a.field, b.field)
	}

	nameA, nameB := a.field.Name.Value, b.field.Name.Value
	if nameA != nameB {
		return conflict(fmt.Sprintf("%q and %q are different fields", nameA, nameB))
	}
	if !sameArguments(a.field.Arguments, b.field.Arguments) {
		return conflict("they have differing arguments")
	}
	if a.def != nil && b.def != nil && a.def.Type.String() != b.def.Type.String() {
		return conflict(fmt.Sprintf("they return differing types %q and %q", a.def.Type, b.def.Type))
	}

	// Merged fields must themselves merge: compare the combined
	// sub-selections under the shared response key.
	if a.field.SelectionSet != nil && b.field.SelectionSet != nil {
		merged := make(map[string][]fieldEntry)
		r.collect(namedTypeOf(a.def), a.field.SelectionSet, make(map[string]bool), merged)
		r.collect(namedTypeOf(b.def), b.field.SelectionSet, make(map[string]bool), merged)
		if subErrs := r.findConflicts(merged); len(subErrs) > 0 {
			return subErrs[0]
		}
	}
	return nil
}

func namedTypeOf(def *schema.FieldDef) schema.Type {
	if def == nil {
		return nil
	}
	return schema.GetNamedType(def.Type)
}

// sameArguments reports whether two argument lists are equivalent by name
// and printed value, order-insensitively.
func sameArguments(a, b []*ast.Argument) bool {
	if len(a) != len(b) {
		return false
	}
	for _, argA := range a {
		found := false
		for _, argB := range b {
			if argA.Name.Value == argB.Name.Value {
				found = printValue(argA.Value) == printValue(argB.Value)
				break
			}
		}
		if !found {
			return false
		}
	}
	return true
}

// fieldDefOn resolves a field definition on a composite type, or nil.
func fieldDefOn(t schema.Type, name string) *schema.FieldDef {
	switch tt := t.(type) {
	case *schema.Object:
		return tt.Fields()[name]
	case *schema.Interface:
		return tt.Fields()[name]
	}
	return nil
}
