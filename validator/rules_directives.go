package validator

import (
	"fmt"

	"github.com/lumengraph/graphql/ast"
	"github.com/lumengraph/graphql/gqlerrors"
	"github.com/lumengraph/graphql/schema"
)

// knownDirectives reports directives the schema does not define and
// directives applied in locations their definition does not allow.
type knownDirectives struct {
	Base
	ctx *Context
}

// NewKnownDirectives builds the KnownDirectives rule.
func NewKnownDirectives(ctx *Context) Rule {
	return &knownDirectives{ctx: ctx}
}

func (r *knownDirectives) Enter(node ast.Node, _ string, parent ast.Node, _ []string, _ []ast.Node) Result {
	directive, ok := node.(*ast.Directive)
	if !ok {
		return Continue()
	}
	def := r.ctx.Schema().Directive(directive.Name.Value)
	if def == nil {
		return ReportError(fmt.Sprintf("Unknown directive %q.", directive.Name.Value), directive)
	}
	var location string
	switch parent.(type) {
	case *ast.OperationDefinition:
		if !def.OnOperation {
			location = "operation"
		}
	case *ast.Field:
		if !def.OnField {
			location = "field"
		}
	case *ast.FragmentDefinition, *ast.FragmentSpread, *ast.InlineFragment:
		if !def.OnFragment {
			location = "fragment"
		}
	}
	if location != "" {
		return ReportError(
			fmt.Sprintf("Directive %q may not be used on %q.", directive.Name.Value, location),
			directive)
	}
	return Continue()
}

// knownArgumentNames reports arguments missing from the field or directive
// definition they are applied to.
type knownArgumentNames struct {
	Base
	ctx *Context
}

// NewKnownArgumentNames builds the KnownArgumentNames rule.
func NewKnownArgumentNames(ctx *Context) Rule {
	return &knownArgumentNames{ctx: ctx}
}

func (r *knownArgumentNames) Enter(node ast.Node, _ string, parent ast.Node, _ []string, _ []ast.Node) Result {
	argument, ok := node.(*ast.Argument)
	if !ok {
		return Continue()
	}
	switch parent.(type) {
	case *ast.Field:
		fieldDef := r.ctx.FieldDef()
		if fieldDef == nil {
			return Continue()
		}
		for _, argDef := range fieldDef.Args {
			if argDef.Name == argument.Name.Value {
				return Continue()
			}
		}
		return ReportError(
			fmt.Sprintf("Unknown argument %q on field %q of type %q.",
				argument.Name.Value, fieldDef.Name, r.ctx.ParentType()),
			argument)
	case *ast.Directive:
		directiveDef := r.ctx.Directive()
		if directiveDef == nil {
			return Continue()
		}
		for _, argDef := range directiveDef.Args {
			if argDef.Name == argument.Name.Value {
				return Continue()
			}
		}
		return ReportError(
			fmt.Sprintf("Unknown argument %q on directive \"@%s\".",
				argument.Name.Value, directiveDef.Name),
			argument)
	}
	return Continue()
}

// uniqueArgumentNames reports an argument name repeated within one field
// or directive.
type uniqueArgumentNames struct {
	Base
	known map[string]*ast.Name
}

// NewUniqueArgumentNames builds the UniqueArgumentNames rule.
func NewUniqueArgumentNames(*Context) Rule {
	return &uniqueArgumentNames{known: make(map[string]*ast.Name)}
}

func (r *uniqueArgumentNames) Enter(node ast.Node, _ string, _ ast.Node, _ []string, _ []ast.Node) Result {
	switch n := node.(type) {
	case *ast.Field, *ast.Directive:
		r.known = make(map[string]*ast.Name)
	case *ast.Argument:
		if previous, seen := r.known[n.Name.Value]; seen {
			return ReportError(
				fmt.Sprintf("There can be only one argument named %q.", n.Name.Value),
				previous, n.Name)
		}
		r.known[n.Name.Value] = n.Name
	}
	return Continue()
}

// argumentsOfCorrectType checks argument literals against the argument
// definition's type.
type argumentsOfCorrectType struct {
	Base
	ctx *Context
}

// NewArgumentsOfCorrectType builds the ArgumentsOfCorrectType rule.
func NewArgumentsOfCorrectType(ctx *Context) Rule {
	return &argumentsOfCorrectType{ctx: ctx}
}

func (r *argumentsOfCorrectType) Enter(node ast.Node, _ string, _ ast.Node, _ []string, _ []ast.Node) Result {
	argument, ok := node.(*ast.Argument)
	if !ok {
		return Continue()
	}
	argDef := r.ctx.Argument()
	if argDef == nil {
		return Continue()
	}
	if !isValidLiteralValue(argDef.Type, argument.Value) {
		return ReportError(
			fmt.Sprintf("Argument %q expected type %q but got: %s.",
				argument.Name.Value, argDef.Type, printValue(argument.Value)),
			argument.Value)
	}
	return Continue()
}

// providedNonNullArguments reports required arguments (non-null type, no
// default) missing from a field or directive application.
type providedNonNullArguments struct {
	Base
	ctx *Context
}

// NewProvidedNonNullArguments builds the ProvidedNonNullArguments rule.
func NewProvidedNonNullArguments(ctx *Context) Rule {
	return &providedNonNullArguments{ctx: ctx}
}

func (r *providedNonNullArguments) Leave(node ast.Node, _ string, _ ast.Node, _ []string, _ []ast.Node) Result {
	switch n := node.(type) {
	case *ast.Field:
		fieldDef := r.ctx.FieldDef()
		if fieldDef == nil {
			return Continue()
		}
		if errs := missingRequiredArgs(fieldDef.Args, n.Arguments, func(argDef *schema.InputValue) string {
			return fmt.Sprintf("Field %q argument %q of type %q is required but not provided.",
				n.Name.Value, argDef.Name, argDef.Type)
		}, n); len(errs) > 0 {
			return ReportErrors(errs...)
		}
	case *ast.Directive:
		directiveDef := r.ctx.Directive()
		if directiveDef == nil {
			return Continue()
		}
		if errs := missingRequiredArgs(directiveDef.Args, n.Arguments, func(argDef *schema.InputValue) string {
			return fmt.Sprintf("Directive \"@%s\" argument %q of type %q is required but not provided.",
				directiveDef.Name, argDef.Name, argDef.Type)
		}, n); len(errs) > 0 {
			return ReportErrors(errs...)
		}
	}
	return Continue()
}

func missingRequiredArgs(defs []*schema.InputValue, provided []*ast.Argument, message func(*schema.InputValue) string, node ast.Node) []*gqlerrors.Error {
	var errs []*gqlerrors.Error
	for _, argDef := range defs {
		if _, required := argDef.Type.(*schema.NonNull); !required || argDef.DefaultValue != nil {
			continue
		}
		found := false
		for _, arg := range provided {
			if arg.Name.Value == argDef.Name {
				found = true
				break
			}
		}
		if !found {
			errs = append(errs, gqlerrors.NewError(message(argDef), node))
		}
	}
	return errs
}
