// Package gqlerrors defines the error value shared by the lexer, parser and
// validator. A single type covers both taxonomies: syntax errors carry a
// source and character offsets, validation errors carry the AST nodes that
// triggered them.
package gqlerrors

import (
	"fmt"
	"strings"

	"github.com/lumengraph/graphql/source"
)

// Node is the part of an AST node an error needs: where it starts in the
// source. Declared here so this package does not depend on the ast package.
type Node interface {
	Position() int
}

// Error is a located GraphQL diagnostic.
type Error struct {
	Message   string
	Source    *source.Source
	Positions []int
	Nodes     []Node
}

// Syntax reports a lexical or parse error at a character offset.
func Syntax(src *source.Source, position int, message string) *Error {
	return &Error{
		Message:   message,
		Source:    src,
		Positions: []int{position},
	}
}

// NewError reports a validation error against one or more AST nodes.
func NewError(message string, nodes ...Node) *Error {
	return &Error{Message: message, Nodes: nodes}
}

// Error implements the error interface. When a source is attached the
// message is prefixed with its name and 1-based line:column.
func (e *Error) Error() string {
	if e.Source != nil && len(e.Positions) > 0 {
		line, column := e.Source.LineColumn(e.Positions[0])
		return fmt.Sprintf("Syntax Error %s (%d:%d) %s", e.Source.Name, line, column, e.Message)
	}
	return e.Message
}

// Located renders the error with the offending source line and a caret
// pointing at the first position, for human consumption.
func (e *Error) Located() string {
	if e.Source == nil || len(e.Positions) == 0 {
		return e.Message
	}
	line, column := e.Source.LineColumn(e.Positions[0])
	var b strings.Builder
	fmt.Fprintf(&b, "%s\n", e.Error())
	lines := e.Source.Lines()
	if line-1 < len(lines) {
		b.WriteString(lines[line-1] + "\n")
		b.WriteString(strings.Repeat(" ", column-1) + "^\n")
	}
	return b.String()
}
