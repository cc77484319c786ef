package validator

import (
	"fmt"
	"strings"

	"github.com/lumengraph/graphql/ast"
	"github.com/lumengraph/graphql/gqlerrors"
	"github.com/lumengraph/graphql/schema"
)

// fragmentsOnCompositeTypes requires fragment type conditions to name
// object, interface or union types.
type fragmentsOnCompositeTypes struct {
	Base
	ctx *Context
}

// NewFragmentsOnCompositeTypes builds the FragmentsOnCompositeTypes rule.
func NewFragmentsOnCompositeTypes(ctx *Context) Rule {
	return &fragmentsOnCompositeTypes{ctx: ctx}
}

func (r *fragmentsOnCompositeTypes) Enter(node ast.Node, _ string, _ ast.Node, _ []string, _ []ast.Node) Result {
	switch n := node.(type) {
	case *ast.FragmentDefinition:
		t := schema.TypeFromAST(r.ctx.Schema(), n.TypeCondition)
		if t != nil && !schema.IsCompositeType(t) {
			return ReportError(
				fmt.Sprintf("Fragment %q cannot condition on non composite type %q.", n.Name.Value, t),
				n.TypeCondition)
		}
	case *ast.InlineFragment:
		if n.TypeCondition == nil {
			return Continue()
		}
		t := schema.TypeFromAST(r.ctx.Schema(), n.TypeCondition)
		if t != nil && !schema.IsCompositeType(t) {
			return ReportError(
				fmt.Sprintf("Fragment cannot condition on non composite type %q.", t),
				n.TypeCondition)
		}
	}
	return Continue()
}

// uniqueFragmentNames reports documents defining two fragments with the
// same name.
type uniqueFragmentNames struct {
	Base
	known map[string]*ast.Name
}

// NewUniqueFragmentNames builds the UniqueFragmentNames rule.
func NewUniqueFragmentNames(*Context) Rule {
	return &uniqueFragmentNames{known: make(map[string]*ast.Name)}
}

func (r *uniqueFragmentNames) Enter(node ast.Node, _ string, _ ast.Node, _ []string, _ []ast.Node) Result {
	frag, ok := node.(*ast.FragmentDefinition)
	if !ok {
		return Continue()
	}
	if previous, seen := r.known[frag.Name.Value]; seen {
		return ReportError(
			fmt.Sprintf("There can only be one fragment named %q.", frag.Name.Value),
			previous, frag.Name)
	}
	r.known[frag.Name.Value] = frag.Name
	return Continue()
}

// knownFragmentNames reports spreads of fragments the document does not
// define.
type knownFragmentNames struct {
	Base
	ctx *Context
}

// NewKnownFragmentNames builds the KnownFragmentNames rule.
func NewKnownFragmentNames(ctx *Context) Rule {
	return &knownFragmentNames{ctx: ctx}
}

func (r *knownFragmentNames) Enter(node ast.Node, _ string, _ ast.Node, _ []string, _ []ast.Node) Result {
	spread, ok := node.(*ast.FragmentSpread)
	if !ok {
		return Continue()
	}
	if r.ctx.Fragment(spread.Name.Value) == nil {
		return ReportError(fmt.Sprintf("Unknown fragment %q.", spread.Name.Value), spread.Name)
	}
	return Continue()
}

// noUnusedFragments reports fragment definitions unreachable from any
// operation.
type noUnusedFragments struct {
	Base
	fragments map[string]*ast.FragmentDefinition
	// spread names per definition: operations under "", fragments under
	// their own name.
	operationSpreads []string
	fragmentSpreads  map[string][]string
}

// NewNoUnusedFragments builds the NoUnusedFragments rule.
func NewNoUnusedFragments(*Context) Rule {
	return &noUnusedFragments{
		fragments:       make(map[string]*ast.FragmentDefinition),
		fragmentSpreads: make(map[string][]string),
	}
}

func (r *noUnusedFragments) Enter(node ast.Node, _ string, _ ast.Node, _ []string, _ []ast.Node) Result {
	switch n := node.(type) {
	case *ast.OperationDefinition:
		for _, spread := range gatherSpreads(n) {
			r.operationSpreads = append(r.operationSpreads, spread.Name.Value)
		}
		return Skip()
	case *ast.FragmentDefinition:
		r.fragments[n.Name.Value] = n
		for _, spread := range gatherSpreads(n) {
			r.fragmentSpreads[n.Name.Value] = append(r.fragmentSpreads[n.Name.Value], spread.Name.Value)
		}
		return Skip()
	}
	return Continue()
}

func (r *noUnusedFragments) Leave(node ast.Node, _ string, _ ast.Node, _ []string, _ []ast.Node) Result {
	if _, ok := node.(*ast.Document); !ok {
		return Continue()
	}
	reached := make(map[string]bool)
	queue := append([]string(nil), r.operationSpreads...)
	for len(queue) > 0 {
		name := queue[0]
		queue = queue[1:]
		if reached[name] {
			continue
		}
		reached[name] = true
		queue = append(queue, r.fragmentSpreads[name]...)
	}
	var errs []*gqlerrors.Error
	for name, frag := range r.fragments {
		if !reached[name] {
			errs = append(errs, gqlerrors.NewError(
				fmt.Sprintf("Fragment %q is never used.", name), frag))
		}
	}
	if len(errs) > 0 {
		return ReportErrors(errs...)
	}
	return Continue()
}

// possibleFragmentSpreads reports spreads that can never apply because the
// fragment's type condition and the surrounding type do not overlap.
type possibleFragmentSpreads struct {
	Base
	ctx *Context
}

// NewPossibleFragmentSpreads builds the PossibleFragmentSpreads rule.
func NewPossibleFragmentSpreads(ctx *Context) Rule {
	return &possibleFragmentSpreads{ctx: ctx}
}

func (r *possibleFragmentSpreads) Enter(node ast.Node, _ string, _ ast.Node, _ []string, _ []ast.Node) Result {
	switch n := node.(type) {
	case *ast.InlineFragment:
		fragType := r.ctx.Type()
		parentType := r.ctx.ParentType()
		if fragType != nil && parentType != nil &&
			schema.IsCompositeType(fragType) && schema.IsCompositeType(parentType) &&
			!schema.DoTypesOverlap(r.ctx.Schema(), fragType, parentType) {
			return ReportError(
				fmt.Sprintf("Fragment cannot be spread here as objects of type %q can never be of type %q.",
					parentType, fragType),
				n)
		}
	case *ast.FragmentSpread:
		fragment := r.ctx.Fragment(n.Name.Value)
		if fragment == nil {
			return Continue()
		}
		fragType := schema.TypeFromAST(r.ctx.Schema(), fragment.TypeCondition)
		parentType := r.ctx.ParentType()
		if fragType != nil && parentType != nil &&
			schema.IsCompositeType(fragType) && schema.IsCompositeType(parentType) &&
			!schema.DoTypesOverlap(r.ctx.Schema(), fragType, parentType) {
			return ReportError(
				fmt.Sprintf("Fragment %q cannot be spread here as objects of type %q can never be of type %q.",
					n.Name.Value, parentType, fragType),
				n)
		}
	}
	return Continue()
}

// noFragmentCycles reports fragments that spread themselves, directly or
// transitively.
type noFragmentCycles struct {
	Base
	spreads map[string][]*ast.FragmentSpread
}

// NewNoFragmentCycles builds the NoFragmentCycles rule.
func NewNoFragmentCycles(*Context) Rule {
	return &noFragmentCycles{}
}

func (r *noFragmentCycles) Enter(node ast.Node, _ string, _ ast.Node, _ []string, _ []ast.Node) Result {
	switch n := node.(type) {
	case *ast.Document:
		r.spreads = make(map[string][]*ast.FragmentSpread)
		for _, def := range n.Definitions {
			if frag, ok := def.(*ast.FragmentDefinition); ok {
				r.spreads[frag.Name.Value] = gatherSpreads(frag)
			}
		}
	case *ast.FragmentDefinition:
		initial := n.Name.Value
		var via []string
		visited := map[string]bool{initial: true}

		var detect func(spreads []*ast.FragmentSpread) *gqlerrors.Error
		detect = func(spreads []*ast.FragmentSpread) *gqlerrors.Error {
			for _, spread := range spreads {
				name := spread.Name.Value
				if name == initial {
					message := fmt.Sprintf("Cannot spread fragment %q within itself.", initial)
					if len(via) > 0 {
						message = fmt.Sprintf("Cannot spread fragment %q within itself via %s.",
							initial, quotedList(via))
					}
					return gqlerrors.NewError(message, spread)
				}
				if visited[name] {
					continue
				}
				visited[name] = true
				via = append(via, name)
				if err := detect(r.spreads[name]); err != nil {
					return err
				}
				via = via[:len(via)-1]
			}
			return nil
		}
		if err := detect(r.spreads[initial]); err != nil {
			return ReportErrors(err)
		}
	}
	return Continue()
}

func quotedList(names []string) string {
	quoted := make([]string, len(names))
	for i, name := range names {
		quoted[i] = fmt.Sprintf("%q", name)
	}
	return strings.Join(quoted, ", ")
}
