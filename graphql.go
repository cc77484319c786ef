// Package graphql provides the lexical and semantic front end of a GraphQL
// query language implementation for Go: a position-exact lexer and a
// rule-driven validation engine that checks a parsed document against a
// schema before execution.
package graphql

import (
	"github.com/lumengraph/graphql/ast"
	"github.com/lumengraph/graphql/gqlerrors"
	"github.com/lumengraph/graphql/lexer"
	"github.com/lumengraph/graphql/parser"
	"github.com/lumengraph/graphql/schema"
	"github.com/lumengraph/graphql/source"
	"github.com/lumengraph/graphql/token"
	"github.com/lumengraph/graphql/validator"
)

// ===========================
// Re-exported Types
// ===========================

// Lexical types
type (
	TokenKind = token.Kind
	Token     = token.Token
	Source    = source.Source
	Lexer     = lexer.Lexer
)

// Token kinds
const (
	EOF       = token.EOF
	BANG      = token.BANG
	DOLLAR    = token.DOLLAR
	PAREN_L   = token.PAREN_L
	PAREN_R   = token.PAREN_R
	SPREAD    = token.SPREAD
	COLON     = token.COLON
	EQUALS    = token.EQUALS
	AT        = token.AT
	BRACKET_L = token.BRACKET_L
	BRACKET_R = token.BRACKET_R
	BRACE_L   = token.BRACE_L
	PIPE      = token.PIPE
	BRACE_R   = token.BRACE_R
	NAME      = token.NAME
	VARIABLE  = token.VARIABLE
	INT       = token.INT
	FLOAT     = token.FLOAT
	STRING    = token.STRING
)

// AST types
type (
	Node                = ast.Node
	Document            = ast.Document
	Definition          = ast.Definition
	OperationDefinition = ast.OperationDefinition
	FragmentDefinition  = ast.FragmentDefinition
	FragmentSpread      = ast.FragmentSpread
	InlineFragment      = ast.InlineFragment
	SelectionSet        = ast.SelectionSet
	Selection           = ast.Selection
	Field               = ast.Field
	Argument            = ast.Argument
	Directive           = ast.Directive
	Variable            = ast.Variable
	VariableDefinition  = ast.VariableDefinition
)

// Schema types
type (
	Schema       = schema.Schema
	SchemaConfig = schema.Config
	Object       = schema.Object
	FieldDef     = schema.FieldDef
	InputValue   = schema.InputValue
)

// Validation types
type (
	Error             = gqlerrors.Error
	ValidationContext = validator.Context
	Rule              = validator.Rule
	RuleFactory       = validator.RuleFactory
)

// Parser type
type Parser = parser.Parser

// ===========================
// Convenience Functions
// ===========================

// NewSource creates an immutable source buffer for lexing and parsing.
func NewSource(body string) *Source {
	return source.New(body)
}

// NewLexer creates a lexer positioned at the start of src.
func NewLexer(src *Source) *Lexer {
	return lexer.New(src)
}

// Parse parses a query document from GraphQL source text.
func Parse(body string) (*Document, error) {
	return parser.Parse(source.New(body))
}

// NewSchema builds a schema from its root types.
func NewSchema(config SchemaConfig) *Schema {
	return schema.New(config)
}

// Validate checks a parsed document against a schema using the default
// rule set; an empty result means the document is valid.
func Validate(s *Schema, document *Document) []*Error {
	return validator.Validate(s, document, nil)
}

// ValidateWith checks a parsed document using an explicit ordered rule
// list.
func ValidateWith(s *Schema, document *Document, rules []RuleFactory) []*Error {
	return validator.Validate(s, document, rules)
}
