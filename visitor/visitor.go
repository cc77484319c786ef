// Package visitor implements a generic depth-first walk over a query AST
// with enter/leave hooks, key, path and ancestor tracking.
package visitor

import (
	"strconv"

	"github.com/lumengraph/graphql/ast"
)

// Visitor receives enter and leave callbacks during a walk. Enter returns
// whether the walk should descend into the node's children; when it returns
// false, Leave is not called for that node.
type Visitor interface {
	Enter(node ast.Node, key string, parent ast.Node, path []string, ancestors []ast.Node) bool
	Leave(node ast.Node, key string, parent ast.Node, path []string, ancestors []ast.Node)
}

// Visit walks node depth-first, calling the visitor's Enter before a node's
// children and Leave after them. The root is delivered with an empty key
// and nil parent.
func Visit(node ast.Node, v Visitor) {
	w := &walker{v: v}
	w.walk(node, "", nil)
}

type walker struct {
	v         Visitor
	path      []string
	ancestors []ast.Node
}

func (w *walker) walk(node ast.Node, key string, parent ast.Node) {
	if node == nil {
		return
	}
	if !w.v.Enter(node, key, parent, w.path, w.ancestors) {
		return
	}
	w.ancestors = append(w.ancestors, node)
	w.visitChildren(node)
	w.ancestors = w.ancestors[:len(w.ancestors)-1]
	w.v.Leave(node, key, parent, w.path, w.ancestors)
}

// child walks one named child, keeping the path in sync.
func (w *walker) child(node ast.Node, key string, parent ast.Node) {
	w.path = append(w.path, key)
	w.walk(node, key, parent)
	w.path = w.path[:len(w.path)-1]
}

// item walks one element of a list-valued child.
func (w *walker) item(node ast.Node, key string, index int, parent ast.Node) {
	w.path = append(w.path, key, strconv.Itoa(index))
	w.walk(node, key, parent)
	w.path = w.path[:len(w.path)-2]
}

// visitChildren dispatches to a node's children in document order.
func (w *walker) visitChildren(node ast.Node) {
	switch n := node.(type) {
	case *ast.Document:
		for i, def := range n.Definitions {
			w.item(def, "definitions", i, n)
		}

	case *ast.OperationDefinition:
		if n.Name != nil {
			w.child(n.Name, "name", n)
		}
		for i, vd := range n.VariableDefinitions {
			w.item(vd, "variableDefinitions", i, n)
		}
		for i, d := range n.Directives {
			w.item(d, "directives", i, n)
		}
		if n.SelectionSet != nil {
			w.child(n.SelectionSet, "selectionSet", n)
		}

	case *ast.FragmentDefinition:
		w.child(n.Name, "name", n)
		w.child(n.TypeCondition, "typeCondition", n)
		for i, d := range n.Directives {
			w.item(d, "directives", i, n)
		}
		if n.SelectionSet != nil {
			w.child(n.SelectionSet, "selectionSet", n)
		}

	case *ast.VariableDefinition:
		w.child(n.Variable, "variable", n)
		if n.Type != nil {
			w.child(n.Type, "type", n)
		}
		if n.DefaultValue != nil {
			w.child(n.DefaultValue, "defaultValue", n)
		}

	case *ast.Variable:
		w.child(n.Name, "name", n)

	case *ast.SelectionSet:
		for i, sel := range n.Selections {
			w.item(sel, "selections", i, n)
		}

	case *ast.Field:
		if n.Alias != nil {
			w.child(n.Alias, "alias", n)
		}
		w.child(n.Name, "name", n)
		for i, a := range n.Arguments {
			w.item(a, "arguments", i, n)
		}
		for i, d := range n.Directives {
			w.item(d, "directives", i, n)
		}
		if n.SelectionSet != nil {
			w.child(n.SelectionSet, "selectionSet", n)
		}

	case *ast.FragmentSpread:
		w.child(n.Name, "name", n)
		for i, d := range n.Directives {
			w.item(d, "directives", i, n)
		}

	case *ast.InlineFragment:
		if n.TypeCondition != nil {
			w.child(n.TypeCondition, "typeCondition", n)
		}
		for i, d := range n.Directives {
			w.item(d, "directives", i, n)
		}
		if n.SelectionSet != nil {
			w.child(n.SelectionSet, "selectionSet", n)
		}

	case *ast.Argument:
		w.child(n.Name, "name", n)
		if n.Value != nil {
			w.child(n.Value, "value", n)
		}

	case *ast.Directive:
		w.child(n.Name, "name", n)
		for i, a := range n.Arguments {
			w.item(a, "arguments", i, n)
		}

	case *ast.NamedType:
		w.child(n.Name, "name", n)

	case *ast.ListType:
		w.child(n.Type, "type", n)

	case *ast.NonNullType:
		w.child(n.Type, "type", n)

	case *ast.ListValue:
		for i, v := range n.Values {
			w.item(v, "values", i, n)
		}

	case *ast.ObjectValue:
		for i, f := range n.Fields {
			w.item(f, "fields", i, n)
		}

	case *ast.ObjectField:
		w.child(n.Name, "name", n)
		if n.Value != nil {
			w.child(n.Value, "value", n)
		}
	}
}
