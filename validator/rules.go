package validator

import (
	"github.com/lumengraph/graphql/ast"
	"github.com/lumengraph/graphql/visitor"
)

// DefaultRules is the ordered rule set Validate applies when the caller
// supplies none. The order is part of the observable behavior: errors come
// back grouped per rule, in this sequence.
var DefaultRules = []RuleFactory{
	NewUniqueOperationNames,
	NewLoneAnonymousOperation,
	NewKnownTypeNames,
	NewFragmentsOnCompositeTypes,
	NewVariablesAreInputTypes,
	NewScalarLeafs,
	NewFieldsOnCorrectType,
	NewUniqueFragmentNames,
	NewKnownFragmentNames,
	NewNoUnusedFragments,
	NewPossibleFragmentSpreads,
	NewNoFragmentCycles,
	NewNoUndefinedVariables,
	NewNoUnusedVariables,
	NewKnownDirectives,
	NewKnownArgumentNames,
	NewUniqueArgumentNames,
	NewArgumentsOfCorrectType,
	NewProvidedNonNullArguments,
	NewDefaultValuesOfCorrectType,
	NewVariablesInAllowedPosition,
	NewOverlappingFieldsCanBeMerged,
}

// spreadCollector gathers every fragment spread under a node.
type spreadCollector struct {
	spreads []*ast.FragmentSpread
}

func (c *spreadCollector) Enter(node ast.Node, _ string, _ ast.Node, _ []string, _ []ast.Node) bool {
	if spread, ok := node.(*ast.FragmentSpread); ok {
		c.spreads = append(c.spreads, spread)
	}
	return true
}

func (c *spreadCollector) Leave(ast.Node, string, ast.Node, []string, []ast.Node) {}

// gatherSpreads returns the fragment spreads appearing anywhere under node.
func gatherSpreads(node ast.Node) []*ast.FragmentSpread {
	c := &spreadCollector{}
	visitor.Visit(node, c)
	return c.spreads
}
