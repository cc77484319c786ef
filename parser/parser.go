// Package parser turns GraphQL source text into a query AST.
package parser

import (
	"fmt"

	"github.com/lumengraph/graphql/ast"
	"github.com/lumengraph/graphql/gqlerrors"
	"github.com/lumengraph/graphql/lexer"
	"github.com/lumengraph/graphql/source"
	"github.com/lumengraph/graphql/token"
)

// Parser is a recursive-descent parser over a token stream.
type Parser struct {
	src      *source.Source
	lex      *lexer.Lexer
	curToken token.Token
	prevEnd  int
}

// Parse parses a complete document from src.
func Parse(src *source.Source) (*ast.Document, error) {
	p, err := New(src)
	if err != nil {
		return nil, err
	}
	return p.ParseDocument()
}

// New creates a Parser positioned at the first token of src.
func New(src *source.Source) (*Parser, error) {
	p := &Parser{src: src, lex: lexer.New(src)}
	tok, err := p.lex.NextToken()
	if err != nil {
		return nil, err
	}
	p.curToken = tok
	return p, nil
}

// advance consumes the current token.
func (p *Parser) advance() error {
	p.prevEnd = p.curToken.End
	tok, err := p.lex.NextToken()
	if err != nil {
		return err
	}
	p.curToken = tok
	return nil
}

// loc closes a node span opened at start.
func (p *Parser) loc(start int) ast.Loc {
	return ast.Loc{Start: start, End: p.prevEnd}
}

// expect consumes a token of the given kind or reports what was found.
func (p *Parser) expect(kind token.Kind) (token.Token, error) {
	tok := p.curToken
	if tok.Kind != kind {
		return tok, gqlerrors.Syntax(p.src, tok.Start,
			fmt.Sprintf("Expected %s, found %s", kind, tok.Desc()))
	}
	return tok, p.advance()
}

// expectKeyword consumes a NAME token with the given value.
func (p *Parser) expectKeyword(value string) error {
	tok := p.curToken
	if tok.Kind != token.NAME || tok.Value != value {
		return gqlerrors.Syntax(p.src, tok.Start,
			fmt.Sprintf("Expected %q, found %s", value, tok.Desc()))
	}
	return p.advance()
}

// unexpected reports the current token as unparseable.
func (p *Parser) unexpected() error {
	return gqlerrors.Syntax(p.src, p.curToken.Start,
		fmt.Sprintf("Unexpected %s", p.curToken.Desc()))
}

// skip consumes the current token when it has the given kind.
func (p *Parser) skip(kind token.Kind) (bool, error) {
	if p.curToken.Kind != kind {
		return false, nil
	}
	return true, p.advance()
}

// ParseDocument parses definitions until end of input.
func (p *Parser) ParseDocument() (*ast.Document, error) {
	start := p.curToken.Start
	var definitions []ast.Definition
	for p.curToken.Kind != token.EOF {
		def, err := p.parseDefinition()
		if err != nil {
			return nil, err
		}
		definitions = append(definitions, def)
	}
	return &ast.Document{Loc: p.loc(start), Definitions: definitions}, nil
}

func (p *Parser) parseDefinition() (ast.Definition, error) {
	if p.curToken.Kind == token.BRACE_L {
		return p.parseShorthandQuery()
	}
	if p.curToken.Kind == token.NAME {
		switch p.curToken.Value {
		case "query", "mutation", "subscription":
			return p.parseOperationDefinition()
		case "fragment":
			return p.parseFragmentDefinition()
		}
	}
	return nil, p.unexpected()
}

// parseShorthandQuery parses the query shorthand form `{ ... }`.
func (p *Parser) parseShorthandQuery() (*ast.OperationDefinition, error) {
	start := p.curToken.Start
	selectionSet, err := p.parseSelectionSet()
	if err != nil {
		return nil, err
	}
	return &ast.OperationDefinition{
		Loc:          p.loc(start),
		Operation:    "query",
		SelectionSet: selectionSet,
	}, nil
}

func (p *Parser) parseOperationDefinition() (*ast.OperationDefinition, error) {
	start := p.curToken.Start
	operation := p.curToken.Value
	if err := p.advance(); err != nil {
		return nil, err
	}

	var name *ast.Name
	if p.curToken.Kind == token.NAME {
		n, err := p.parseName()
		if err != nil {
			return nil, err
		}
		name = n
	}

	variableDefinitions, err := p.parseVariableDefinitions()
	if err != nil {
		return nil, err
	}
	directives, err := p.parseDirectives()
	if err != nil {
		return nil, err
	}
	selectionSet, err := p.parseSelectionSet()
	if err != nil {
		return nil, err
	}
	return &ast.OperationDefinition{
		Loc:                 p.loc(start),
		Operation:           operation,
		Name:                name,
		VariableDefinitions: variableDefinitions,
		Directives:          directives,
		SelectionSet:        selectionSet,
	}, nil
}

func (p *Parser) parseVariableDefinitions() ([]*ast.VariableDefinition, error) {
	if p.curToken.Kind != token.PAREN_L {
		return nil, nil
	}
	if err := p.advance(); err != nil {
		return nil, err
	}
	var defs []*ast.VariableDefinition
	for p.curToken.Kind != token.PAREN_R {
		def, err := p.parseVariableDefinition()
		if err != nil {
			return nil, err
		}
		defs = append(defs, def)
	}
	return defs, p.advance()
}

func (p *Parser) parseVariableDefinition() (*ast.VariableDefinition, error) {
	start := p.curToken.Start
	variable, err := p.parseVariable()
	if err != nil {
		return nil, err
	}
	if _, err := p.expect(token.COLON); err != nil {
		return nil, err
	}
	varType, err := p.parseType()
	if err != nil {
		return nil, err
	}
	var defaultValue ast.Value
	if ok, err := p.skip(token.EQUALS); err != nil {
		return nil, err
	} else if ok {
		defaultValue, err = p.parseValue(true)
		if err != nil {
			return nil, err
		}
	}
	return &ast.VariableDefinition{
		Loc:          p.loc(start),
		Variable:     variable,
		Type:         varType,
		DefaultValue: defaultValue,
	}, nil
}

func (p *Parser) parseVariable() (*ast.Variable, error) {
	start := p.curToken.Start
	if _, err := p.expect(token.DOLLAR); err != nil {
		return nil, err
	}
	name, err := p.parseName()
	if err != nil {
		return nil, err
	}
	return &ast.Variable{Loc: p.loc(start), Name: name}, nil
}

func (p *Parser) parseName() (*ast.Name, error) {
	tok, err := p.expect(token.NAME)
	if err != nil {
		return nil, err
	}
	return &ast.Name{Loc: ast.Loc{Start: tok.Start, End: tok.End}, Value: tok.Value}, nil
}

func (p *Parser) parseSelectionSet() (*ast.SelectionSet, error) {
	start := p.curToken.Start
	if _, err := p.expect(token.BRACE_L); err != nil {
		return nil, err
	}
	var selections []ast.Selection
	for p.curToken.Kind != token.BRACE_R {
		sel, err := p.parseSelection()
		if err != nil {
			return nil, err
		}
		selections = append(selections, sel)
	}
	if err := p.advance(); err != nil {
		return nil, err
	}
	return &ast.SelectionSet{Loc: p.loc(start), Selections: selections}, nil
}

func (p *Parser) parseSelection() (ast.Selection, error) {
	if p.curToken.Kind == token.SPREAD {
		return p.parseFragment()
	}
	return p.parseField()
}

// parseFragment parses either a fragment spread (...Name) or an inline
// fragment (... on Type { ... }) after the spread token.
func (p *Parser) parseFragment() (ast.Selection, error) {
	start := p.curToken.Start
	if _, err := p.expect(token.SPREAD); err != nil {
		return nil, err
	}

	if p.curToken.Kind == token.NAME && p.curToken.Value != "on" {
		name, err := p.parseName()
		if err != nil {
			return nil, err
		}
		directives, err := p.parseDirectives()
		if err != nil {
			return nil, err
		}
		return &ast.FragmentSpread{
			Loc:        p.loc(start),
			Name:       name,
			Directives: directives,
		}, nil
	}

	var typeCondition *ast.NamedType
	if p.curToken.Kind == token.NAME && p.curToken.Value == "on" {
		if err := p.advance(); err != nil {
			return nil, err
		}
		named, err := p.parseNamedType()
		if err != nil {
			return nil, err
		}
		typeCondition = named
	}
	directives, err := p.parseDirectives()
	if err != nil {
		return nil, err
	}
	selectionSet, err := p.parseSelectionSet()
	if err != nil {
		return nil, err
	}
	return &ast.InlineFragment{
		Loc:           p.loc(start),
		TypeCondition: typeCondition,
		Directives:    directives,
		SelectionSet:  selectionSet,
	}, nil
}

func (p *Parser) parseFragmentDefinition() (*ast.FragmentDefinition, error) {
	start := p.curToken.Start
	if err := p.expectKeyword("fragment"); err != nil {
		return nil, err
	}
	name, err := p.parseName()
	if err != nil {
		return nil, err
	}
	if err := p.expectKeyword("on"); err != nil {
		return nil, err
	}
	typeCondition, err := p.parseNamedType()
	if err != nil {
		return nil, err
	}
	directives, err := p.parseDirectives()
	if err != nil {
		return nil, err
	}
	selectionSet, err := p.parseSelectionSet()
	if err != nil {
		return nil, err
	}
	return &ast.FragmentDefinition{
		Loc:           p.loc(start),
		Name:          name,
		TypeCondition: typeCondition,
		Directives:    directives,
		SelectionSet:  selectionSet,
	}, nil
}

func (p *Parser) parseField() (*ast.Field, error) {
	start := p.curToken.Start
	nameOrAlias, err := p.parseName()
	if err != nil {
		return nil, err
	}

	var alias, name *ast.Name
	if ok, err := p.skip(token.COLON); err != nil {
		return nil, err
	} else if ok {
		alias = nameOrAlias
		name, err = p.parseName()
		if err != nil {
			return nil, err
		}
	} else {
		name = nameOrAlias
	}

	arguments, err := p.parseArguments()
	if err != nil {
		return nil, err
	}
	directives, err := p.parseDirectives()
	if err != nil {
		return nil, err
	}
	var selectionSet *ast.SelectionSet
	if p.curToken.Kind == token.BRACE_L {
		selectionSet, err = p.parseSelectionSet()
		if err != nil {
			return nil, err
		}
	}
	return &ast.Field{
		Loc:          p.loc(start),
		Alias:        alias,
		Name:         name,
		Arguments:    arguments,
		Directives:   directives,
		SelectionSet: selectionSet,
	}, nil
}

func (p *Parser) parseArguments() ([]*ast.Argument, error) {
	if p.curToken.Kind != token.PAREN_L {
		return nil, nil
	}
	if err := p.advance(); err != nil {
		return nil, err
	}
	var args []*ast.Argument
	for p.curToken.Kind != token.PAREN_R {
		start := p.curToken.Start
		name, err := p.parseName()
		if err != nil {
			return nil, err
		}
		if _, err := p.expect(token.COLON); err != nil {
			return nil, err
		}
		value, err := p.parseValue(false)
		if err != nil {
			return nil, err
		}
		args = append(args, &ast.Argument{Loc: p.loc(start), Name: name, Value: value})
	}
	return args, p.advance()
}

func (p *Parser) parseDirectives() ([]*ast.Directive, error) {
	var directives []*ast.Directive
	for p.curToken.Kind == token.AT {
		start := p.curToken.Start
		if err := p.advance(); err != nil {
			return nil, err
		}
		name, err := p.parseName()
		if err != nil {
			return nil, err
		}
		arguments, err := p.parseArguments()
		if err != nil {
			return nil, err
		}
		directives = append(directives, &ast.Directive{
			Loc:       p.loc(start),
			Name:      name,
			Arguments: arguments,
		})
	}
	return directives, nil
}

// parseValue parses a value literal; variables are rejected when isConst.
func (p *Parser) parseValue(isConst bool) (ast.Value, error) {
	tok := p.curToken
	switch tok.Kind {
	case token.BRACKET_L:
		return p.parseListValue(isConst)
	case token.BRACE_L:
		return p.parseObjectValue(isConst)
	case token.INT:
		if err := p.advance(); err != nil {
			return nil, err
		}
		return &ast.IntValue{Loc: ast.Loc{Start: tok.Start, End: tok.End}, Value: tok.Value}, nil
	case token.FLOAT:
		if err := p.advance(); err != nil {
			return nil, err
		}
		return &ast.FloatValue{Loc: ast.Loc{Start: tok.Start, End: tok.End}, Value: tok.Value}, nil
	case token.STRING:
		if err := p.advance(); err != nil {
			return nil, err
		}
		return &ast.StringValue{Loc: ast.Loc{Start: tok.Start, End: tok.End}, Value: tok.Value}, nil
	case token.NAME:
		if err := p.advance(); err != nil {
			return nil, err
		}
		if tok.Value == "true" || tok.Value == "false" {
			return &ast.BooleanValue{
				Loc:   ast.Loc{Start: tok.Start, End: tok.End},
				Value: tok.Value == "true",
			}, nil
		}
		return &ast.EnumValue{Loc: ast.Loc{Start: tok.Start, End: tok.End}, Value: tok.Value}, nil
	case token.DOLLAR:
		if !isConst {
			return p.parseVariable()
		}
	}
	return nil, p.unexpected()
}

func (p *Parser) parseListValue(isConst bool) (*ast.ListValue, error) {
	start := p.curToken.Start
	if err := p.advance(); err != nil {
		return nil, err
	}
	var values []ast.Value
	for p.curToken.Kind != token.BRACKET_R {
		value, err := p.parseValue(isConst)
		if err != nil {
			return nil, err
		}
		values = append(values, value)
	}
	if err := p.advance(); err != nil {
		return nil, err
	}
	return &ast.ListValue{Loc: p.loc(start), Values: values}, nil
}

func (p *Parser) parseObjectValue(isConst bool) (*ast.ObjectValue, error) {
	start := p.curToken.Start
	if err := p.advance(); err != nil {
		return nil, err
	}
	var fields []*ast.ObjectField
	for p.curToken.Kind != token.BRACE_R {
		fieldStart := p.curToken.Start
		name, err := p.parseName()
		if err != nil {
			return nil, err
		}
		if _, err := p.expect(token.COLON); err != nil {
			return nil, err
		}
		value, err := p.parseValue(isConst)
		if err != nil {
			return nil, err
		}
		fields = append(fields, &ast.ObjectField{Loc: p.loc(fieldStart), Name: name, Value: value})
	}
	if err := p.advance(); err != nil {
		return nil, err
	}
	return &ast.ObjectValue{Loc: p.loc(start), Fields: fields}, nil
}

func (p *Parser) parseType() (ast.Type, error) {
	start := p.curToken.Start
	var parsed ast.Type
	if ok, err := p.skip(token.BRACKET_L); err != nil {
		return nil, err
	} else if ok {
		inner, err := p.parseType()
		if err != nil {
			return nil, err
		}
		if _, err := p.expect(token.BRACKET_R); err != nil {
			return nil, err
		}
		parsed = &ast.ListType{Loc: p.loc(start), Type: inner}
	} else {
		named, err := p.parseNamedType()
		if err != nil {
			return nil, err
		}
		parsed = named
	}
	if ok, err := p.skip(token.BANG); err != nil {
		return nil, err
	} else if ok {
		return &ast.NonNullType{Loc: p.loc(start), Type: parsed}, nil
	}
	return parsed, nil
}

func (p *Parser) parseNamedType() (*ast.NamedType, error) {
	start := p.curToken.Start
	name, err := p.parseName()
	if err != nil {
		return nil, err
	}
	return &ast.NamedType{Loc: p.loc(start), Name: name}, nil
}
