package token

import "fmt"

// Kind identifies the lexical class of a token. The set is closed: every
// token the lexer can produce is one of the constants below.
type Kind int

const (
	EOF Kind = iota + 1
	BANG
	DOLLAR
	PAREN_L
	PAREN_R
	SPREAD
	COLON
	EQUALS
	AT
	BRACKET_L
	BRACKET_R
	BRACE_L
	PIPE
	BRACE_R
	NAME
	VARIABLE
	INT
	FLOAT
	STRING
)

// kindDescriptions holds the display string for each kind. These strings
// appear verbatim in error messages and must not change.
var kindDescriptions = map[Kind]string{
	EOF:       "EOF",
	BANG:      "!",
	DOLLAR:    "$",
	PAREN_L:   "(",
	PAREN_R:   ")",
	SPREAD:    "...",
	COLON:     ":",
	EQUALS:    "=",
	AT:        "@",
	BRACKET_L: "[",
	BRACKET_R: "]",
	BRACE_L:   "{",
	PIPE:      "|",
	BRACE_R:   "}",
	NAME:      "Name",
	VARIABLE:  "Variable",
	INT:       "Int",
	FLOAT:     "Float",
	STRING:    "String",
}

// String returns the display string for the kind.
func (k Kind) String() string {
	return kindDescriptions[k]
}

// Token is a single lexical unit of a GraphQL source. Start and End are
// character offsets into the source forming a half-open span [Start, End).
// Value holds the decoded literal for NAME, VARIABLE, INT, FLOAT and STRING
// tokens and is empty otherwise. Tokens are immutable once produced.
type Token struct {
	Kind  Kind
	Start int
	End   int
	Value string
}

// Desc describes a token for use in error messages, e.g. `Name "query"`.
func (t Token) Desc() string {
	if t.Value != "" {
		return fmt.Sprintf("%s %q", t.Kind, t.Value)
	}
	return t.Kind.String()
}
