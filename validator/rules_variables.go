package validator

import (
	"fmt"

	"github.com/lumengraph/graphql/ast"
	"github.com/lumengraph/graphql/gqlerrors"
	"github.com/lumengraph/graphql/schema"
)

// variablesAreInputTypes requires declared variables to have input types.
type variablesAreInputTypes struct {
	Base
	ctx *Context
}

// NewVariablesAreInputTypes builds the VariablesAreInputTypes rule.
func NewVariablesAreInputTypes(ctx *Context) Rule {
	return &variablesAreInputTypes{ctx: ctx}
}

func (r *variablesAreInputTypes) Enter(node ast.Node, _ string, _ ast.Node, _ []string, _ []ast.Node) Result {
	def, ok := node.(*ast.VariableDefinition)
	if !ok {
		return Continue()
	}
	t := schema.TypeFromAST(r.ctx.Schema(), def.Type)
	if t != nil && !schema.IsInputType(t) {
		return ReportError(
			fmt.Sprintf("Variable \"$%s\" cannot be non-input type %q.", def.Variable.Name.Value, t),
			def.Type)
	}
	return Continue()
}

// noUndefinedVariables reports variable usages an operation does not
// declare. Fragments are visited at their spread sites so usages inside
// them are checked against the spreading operation's declarations.
type noUndefinedVariables struct {
	Base
	defined     map[string]bool
	inOperation bool
	operation   *ast.OperationDefinition
}

// NewNoUndefinedVariables builds the NoUndefinedVariables rule.
func NewNoUndefinedVariables(*Context) Rule {
	return &noUndefinedVariables{}
}

func (r *noUndefinedVariables) VisitsSpreadFragments() bool { return true }

func (r *noUndefinedVariables) Enter(node ast.Node, _ string, parent ast.Node, _ []string, _ []ast.Node) Result {
	switch n := node.(type) {
	case *ast.OperationDefinition:
		r.defined = make(map[string]bool)
		r.inOperation = true
		r.operation = n
	case *ast.VariableDefinition:
		r.defined[n.Variable.Name.Value] = true
	case *ast.Variable:
		// The variable declared by a definition is not a usage.
		if _, isDefinition := parent.(*ast.VariableDefinition); isDefinition {
			return Continue()
		}
		if r.inOperation && !r.defined[n.Name.Value] {
			message := fmt.Sprintf("Variable \"$%s\" is not defined.", n.Name.Value)
			if r.operation != nil && r.operation.Name != nil {
				message = fmt.Sprintf("Variable \"$%s\" is not defined by operation %q.",
					n.Name.Value, r.operation.Name.Value)
			}
			return ReportError(message, n)
		}
	}
	return Continue()
}

func (r *noUndefinedVariables) Leave(node ast.Node, _ string, _ ast.Node, _ []string, _ []ast.Node) Result {
	if _, ok := node.(*ast.OperationDefinition); ok {
		r.inOperation = false
		r.operation = nil
	}
	return Continue()
}

// noUnusedVariables reports declared variables an operation never uses,
// counting usages inside spread fragments.
type noUnusedVariables struct {
	Base
	definitions []*ast.VariableDefinition
	used        map[string]bool
}

// NewNoUnusedVariables builds the NoUnusedVariables rule.
func NewNoUnusedVariables(*Context) Rule {
	return &noUnusedVariables{}
}

func (r *noUnusedVariables) VisitsSpreadFragments() bool { return true }

func (r *noUnusedVariables) Enter(node ast.Node, _ string, parent ast.Node, _ []string, _ []ast.Node) Result {
	switch n := node.(type) {
	case *ast.OperationDefinition:
		r.definitions = nil
		r.used = make(map[string]bool)
	case *ast.VariableDefinition:
		r.definitions = append(r.definitions, n)
	case *ast.Variable:
		if _, isDefinition := parent.(*ast.VariableDefinition); !isDefinition {
			r.used[n.Name.Value] = true
		}
	}
	return Continue()
}

func (r *noUnusedVariables) Leave(node ast.Node, _ string, _ ast.Node, _ []string, _ []ast.Node) Result {
	if _, ok := node.(*ast.OperationDefinition); !ok {
		return Continue()
	}
	var errs []*gqlerrors.Error
	for _, def := range r.definitions {
		name := def.Variable.Name.Value
		if !r.used[name] {
			errs = append(errs, gqlerrors.NewError(
				fmt.Sprintf("Variable \"$%s\" is never used.", name), def))
		}
	}
	if len(errs) > 0 {
		return ReportErrors(errs...)
	}
	return Continue()
}

// defaultValuesOfCorrectType checks variable default values against the
// declared variable type.
type defaultValuesOfCorrectType struct {
	Base
	ctx *Context
}

// NewDefaultValuesOfCorrectType builds the DefaultValuesOfCorrectType rule.
func NewDefaultValuesOfCorrectType(ctx *Context) Rule {
	return &defaultValuesOfCorrectType{ctx: ctx}
}

func (r *defaultValuesOfCorrectType) Enter(node ast.Node, _ string, _ ast.Node, _ []string, _ []ast.Node) Result {
	def, ok := node.(*ast.VariableDefinition)
	if !ok || def.DefaultValue == nil {
		return Continue()
	}
	name := def.Variable.Name.Value
	t := r.ctx.InputType()
	if nonNull, isNonNull := t.(*schema.NonNull); isNonNull {
		return ReportError(
			fmt.Sprintf("Variable \"$%s\" of type %q is required and will never use the default value. Perhaps you meant to use type %q.",
				name, t, nonNull.OfType),
			def.DefaultValue)
	}
	if t != nil && !isValidLiteralValue(t, def.DefaultValue) {
		return ReportError(
			fmt.Sprintf("Variable \"$%s\" of type %q has invalid default value: %s.",
				name, t, printValue(def.DefaultValue)),
			def.DefaultValue)
	}
	return Continue()
}

// variablesInAllowedPosition checks that each variable usage's declared
// type satisfies the input type expected at that position. Fragments are
// visited at their spread sites so positions inside them are checked per
// spreading operation.
type variablesInAllowedPosition struct {
	Base
	ctx         *Context
	definitions map[string]*ast.VariableDefinition
}

// NewVariablesInAllowedPosition builds the VariablesInAllowedPosition rule.
func NewVariablesInAllowedPosition(ctx *Context) Rule {
	return &variablesInAllowedPosition{ctx: ctx}
}

func (r *variablesInAllowedPosition) VisitsSpreadFragments() bool { return true }

func (r *variablesInAllowedPosition) Enter(node ast.Node, _ string, parent ast.Node, _ []string, _ []ast.Node) Result {
	switch n := node.(type) {
	case *ast.OperationDefinition:
		r.definitions = make(map[string]*ast.VariableDefinition)
	case *ast.VariableDefinition:
		if r.definitions != nil {
			r.definitions[n.Variable.Name.Value] = n
		}
	case *ast.Variable:
		if _, isDefinition := parent.(*ast.VariableDefinition); isDefinition {
			return Continue()
		}
		expected := r.ctx.InputType()
		def := r.definitions[n.Name.Value]
		if expected == nil || def == nil {
			return Continue()
		}
		varType := schema.TypeFromAST(r.ctx.Schema(), def.Type)
		if varType != nil && !varTypeAllowed(varType, expected) {
			return ReportError(
				fmt.Sprintf("Variable \"$%s\" of type %q used in position expecting type %q.",
					n.Name.Value, varType, expected),
				n)
		}
	}
	return Continue()
}

// varTypeAllowed reports whether a variable declared as varType may flow
// into a position expecting expectedType.
func varTypeAllowed(varType, expectedType schema.Type) bool {
	if expectedNonNull, ok := expectedType.(*schema.NonNull); ok {
		varNonNull, ok := varType.(*schema.NonNull)
		if !ok {
			return false
		}
		return varTypeAllowed(varNonNull.OfType, expectedNonNull.OfType)
	}
	if varNonNull, ok := varType.(*schema.NonNull); ok {
		return varTypeAllowed(varNonNull.OfType, expectedType)
	}
	varList, varIsList := varType.(*schema.List)
	expectedList, expectedIsList := expectedType.(*schema.List)
	if varIsList && expectedIsList {
		return varTypeAllowed(varList.OfType, expectedList.OfType)
	}
	if varIsList != expectedIsList {
		return false
	}
	return varType == expectedType
}
