// Package validator checks a parsed query document against a schema by
// running pluggable rules over independent traversals of the AST.
package validator

import (
	"github.com/lumengraph/graphql/ast"
	"github.com/lumengraph/graphql/gqlerrors"
	"github.com/lumengraph/graphql/schema"
	"github.com/lumengraph/graphql/typeinfo"
	"github.com/lumengraph/graphql/visitor"
)

// Result is the outcome of one rule hook: continue into children, skip the
// subtree, or skip the subtree while recording errors. The zero value
// continues.
type Result struct {
	skip   bool
	errors []*gqlerrors.Error
}

// Continue lets the traversal descend into the node's children.
func Continue() Result { return Result{} }

// Skip stops descent into the node's subtree without reporting anything.
func Skip() Result { return Result{skip: true} }

// ReportError records an error against nodes and stops descent into the
// offending subtree. Sibling subtrees and other rules are unaffected.
func ReportError(message string, nodes ...gqlerrors.Node) Result {
	return Result{skip: true, errors: []*gqlerrors.Error{gqlerrors.NewError(message, nodes...)}}
}

// ReportErrors records several errors at once and stops descent.
func ReportErrors(errs ...*gqlerrors.Error) Result {
	return Result{skip: true, errors: errs}
}

// Rule is one validation check. A fresh instance is constructed per
// Validate call and receives every node of one full document traversal.
type Rule interface {
	Enter(node ast.Node, key string, parent ast.Node, path []string, ancestors []ast.Node) Result
	Leave(node ast.Node, key string, parent ast.Node, path []string, ancestors []ast.Node) Result
}

// RuleFactory builds a rule instance bound to a validation context.
type RuleFactory func(*Context) Rule

// SpreadVisitor is implemented by rules that want fragments inlined at
// their spread sites instead of visited in declaration order. The flag is
// read once when the rule's traversal starts.
type SpreadVisitor interface {
	VisitsSpreadFragments() bool
}

// Base provides no-op hooks for rules that only care about a few node
// kinds; embed it and override what you need.
type Base struct{}

// Enter implements Rule.
func (Base) Enter(ast.Node, string, ast.Node, []string, []ast.Node) Result { return Continue() }

// Leave implements Rule.
func (Base) Leave(ast.Node, string, ast.Node, []string, []ast.Node) Result { return Continue() }

// Validate checks document against s using the given rules, or
// DefaultRules when rules is nil. Each rule runs as one independent full
// traversal sharing a single read-only context and TypeInfo; the returned
// errors are concatenated in rule order. An empty result means the
// document is valid under the given rules.
//
// A nil schema or document is a caller bug and panics rather than
// producing an empty (falsely successful) result.
func Validate(s *schema.Schema, document *ast.Document, rules []RuleFactory) []*gqlerrors.Error {
	if s == nil {
		panic("validator: must provide schema")
	}
	if document == nil {
		panic("validator: must provide document")
	}
	if rules == nil {
		rules = DefaultRules
	}

	ti := typeinfo.New(s)
	ctx := NewContext(s, document, ti)
	var errs []*gqlerrors.Error
	for _, factory := range rules {
		vv := newValidationVisitor(factory(ctx), ctx, ti, &errs)
		visitor.Visit(document, vv)
	}
	return errs
}

// validationVisitor adapts one rule instance to the traversal engine: it
// keeps TypeInfo synchronized with the walk, converts rule results into
// traversal control, collects reported errors, and inlines spread
// fragments for rules that ask for it.
type validationVisitor struct {
	rule                  Rule
	ctx                   *Context
	typeInfo              *typeinfo.TypeInfo
	errors                *[]*gqlerrors.Error
	visitsSpreadFragments bool

	// inlining guards the spread-inlining path against fragment cycles:
	// a fragment already on the inline stack is not re-entered, so every
	// rule's traversal terminates whether or not the cycle rule runs.
	inlining map[string]bool
}

func newValidationVisitor(rule Rule, ctx *Context, ti *typeinfo.TypeInfo, errors *[]*gqlerrors.Error) *validationVisitor {
	v := &validationVisitor{
		rule:     rule,
		ctx:      ctx,
		typeInfo: ti,
		errors:   errors,
		inlining: make(map[string]bool),
	}
	if sv, ok := rule.(SpreadVisitor); ok {
		v.visitsSpreadFragments = sv.VisitsSpreadFragments()
	}
	return v
}

// Enter implements visitor.Visitor.
func (v *validationVisitor) Enter(node ast.Node, key string, parent ast.Node, path []string, ancestors []ast.Node) bool {
	// TypeInfo must track every node, whatever the rule decides below.
	v.typeInfo.Enter(node)

	// Rules that visit fragments at their spread sites must not also see
	// fragment definitions in declaration order.
	if _, isFragment := node.(*ast.FragmentDefinition); isFragment && key != "" && v.visitsSpreadFragments {
		v.typeInfo.Leave(node)
		return false
	}

	result := v.rule.Enter(node, key, parent, path, ancestors)
	if len(result.errors) > 0 {
		*v.errors = append(*v.errors, result.errors...)
	}
	descend := !result.skip

	if descend && v.visitsSpreadFragments {
		if spread, ok := node.(*ast.FragmentSpread); ok {
			if fragment := v.ctx.Fragment(spread.Name.Value); fragment != nil && !v.inlining[spread.Name.Value] {
				v.inlining[spread.Name.Value] = true
				visitor.Visit(fragment, v)
				delete(v.inlining, spread.Name.Value)
			}
		}
	}

	if !descend {
		// No natural leave will fire for a skipped subtree; balance the
		// context stack here.
		v.typeInfo.Leave(node)
	}
	return descend
}

// Leave implements visitor.Visitor.
func (v *validationVisitor) Leave(node ast.Node, key string, parent ast.Node, path []string, ancestors []ast.Node) {
	result := v.rule.Leave(node, key, parent, path, ancestors)
	if len(result.errors) > 0 {
		*v.errors = append(*v.errors, result.errors...)
	}
	v.typeInfo.Leave(node)
}
