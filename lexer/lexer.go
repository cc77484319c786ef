// Package lexer tokenizes GraphQL source text. The scan itself is a pure
// function of (source, offset); Lexer is a thin cursor over it for
// sequential consumption.
package lexer

import (
	"fmt"
	"strings"

	"github.com/lumengraph/graphql/gqlerrors"
	"github.com/lumengraph/graphql/source"
	"github.com/lumengraph/graphql/token"
)

// Lexer reads tokens from a source sequentially. Its only mutable state is
// the offset to resume from; it is not safe for concurrent use, but
// independent Lexers over the same Source are.
type Lexer struct {
	src          *source.Source
	prevPosition int
}

// New creates a Lexer positioned at the start of src.
func New(src *source.Source) *Lexer {
	return &Lexer{src: src}
}

// NextToken returns the token after the previously returned one.
func (l *Lexer) NextToken() (token.Token, error) {
	return l.NextTokenAt(l.prevPosition)
}

// NextTokenAt rescans from an explicit offset, supporting backtracking
// probes by the consumer. The resumption cursor moves to the returned
// token's end either way.
func (l *Lexer) NextTokenAt(position int) (token.Token, error) {
	tok, err := ReadToken(l.src, position)
	if err != nil {
		return token.Token{}, err
	}
	l.prevPosition = tok.End
	return tok, nil
}

// punctuatorKinds maps single-character punctuators to their token kind.
var punctuatorKinds = map[rune]token.Kind{
	'!': token.BANG,
	'$': token.DOLLAR,
	'(': token.PAREN_L,
	')': token.PAREN_R,
	':': token.COLON,
	'=': token.EQUALS,
	'@': token.AT,
	'[': token.BRACKET_L,
	']': token.BRACKET_R,
	'{': token.BRACE_L,
	'|': token.PIPE,
	'}': token.BRACE_R,
}

// ReadToken scans the next token from src starting at fromPosition. It
// skips whitespace and comments, then lexes punctuators directly or
// dispatches to the appropriate reader. It holds no state between calls.
func ReadToken(src *source.Source, fromPosition int) (token.Token, error) {
	position := positionAfterWhitespace(src, fromPosition)

	if position >= src.Len() {
		return token.Token{Kind: token.EOF, Start: position, End: position}, nil
	}
	ch := src.CharAt(position)

	if kind, ok := punctuatorKinds[ch]; ok {
		return token.Token{Kind: kind, Start: position, End: position + 1}, nil
	}

	switch {
	case ch == '.':
		// Exactly three dots form a spread; a shorter run is an error at
		// its last dot.
		dots := 1
		for dots < 3 && src.CharAt(position+dots) == '.' {
			dots++
		}
		if dots == 3 {
			return token.Token{Kind: token.SPREAD, Start: position, End: position + 3}, nil
		}
		return token.Token{}, gqlerrors.Syntax(src, position+dots-1,
			fmt.Sprintf("Unexpected character %q", "."))
	case isNameStart(ch):
		return readName(src, position), nil
	case ch == '-' || isDigit(ch):
		return readNumber(src, position)
	case ch == '"':
		return readString(src, position)
	}

	return token.Token{}, gqlerrors.Syntax(src, position,
		fmt.Sprintf("Unexpected character %q", string(ch)))
}

// positionAfterWhitespace advances past insignificant characters: spaces,
// commas, NBSP, line and paragraph separators, control whitespace, and
// #-comments through end of line.
func positionAfterWhitespace(src *source.Source, startPosition int) int {
	bodyLength := src.Len()
	position := startPosition
	for position < bodyLength {
		ch := src.CharAt(position)
		if ch == ' ' || ch == ',' || ch == '\u00a0' ||
			ch == '\u2028' || ch == '\u2029' ||
			(ch > 8 && ch < 14) {
			position++
		} else if ch == '#' {
			position++
			for position < bodyLength {
				ch = src.CharAt(position)
				if ch == 0 || ch == '\n' || ch == '\r' || ch == '\u2028' || ch == '\u2029' {
					break
				}
				position++
			}
		} else {
			break
		}
	}
	return position
}

// readNumber scans an int or float.
//
//	Int:   -?(0|[1-9][0-9]*)
//	Float: with a .[0-9]+ fraction and/or an e-?[0-9]+ exponent
//
// The value is the exact matched substring; no numeric conversion happens
// at this layer.
func readNumber(src *source.Source, start int) (token.Token, error) {
	position := start
	isFloat := false

	ch := src.CharAt(position)
	if ch == '-' {
		position++
		ch = src.CharAt(position)
	}

	if ch == '0' {
		position++
		ch = src.CharAt(position)
		if isDigit(ch) {
			// Leading zeros beyond a lone 0 are invalid.
			return token.Token{}, gqlerrors.Syntax(src, position, "Invalid number")
		}
	} else if ch >= '1' && ch <= '9' {
		position++
		ch = src.CharAt(position)
		for isDigit(ch) {
			position++
			ch = src.CharAt(position)
		}
	} else {
		return token.Token{}, gqlerrors.Syntax(src, position, "Invalid number")
	}

	if ch == '.' {
		isFloat = true
		position++
		ch = src.CharAt(position)
		if !isDigit(ch) {
			return token.Token{}, gqlerrors.Syntax(src, position, "Invalid number")
		}
		for isDigit(ch) {
			position++
			ch = src.CharAt(position)
		}
	}

	if ch == 'e' {
		isFloat = true
		position++
		ch = src.CharAt(position)
		if ch == '-' {
			position++
			ch = src.CharAt(position)
		}
		if !isDigit(ch) {
			return token.Token{}, gqlerrors.Syntax(src, position, "Invalid number")
		}
		for isDigit(ch) {
			position++
			ch = src.CharAt(position)
		}
	}

	kind := token.INT
	if isFloat {
		kind = token.FLOAT
	}
	return token.Token{Kind: kind, Start: start, End: position, Value: src.Slice(start, position)}, nil
}

// escapedChars maps escape characters to their literal values.
var escapedChars = map[rune]rune{
	'"':  '"',
	'/':  '/',
	'\\': '\\',
	'b':  '\b',
	'f':  '\f',
	'n':  '\n',
	'r':  '\r',
	't':  '\t',
}

// readString scans a double-quoted string, decoding escape sequences. The
// token span covers the opening through closing quote inclusive; the value
// is the decoded text between them.
func readString(src *source.Source, start int) (token.Token, error) {
	position := start + 1
	chunkStart := position
	var ch rune
	var value strings.Builder

	for position < src.Len() {
		ch = src.CharAt(position)
		if ch == 0 || ch == '"' || ch == '\n' || ch == '\r' || ch == '\u2028' || ch == '\u2029' {
			break
		}
		position++
		if ch == '\\' {
			value.WriteString(src.Slice(chunkStart, position-1))
			ch = src.CharAt(position)
			if escaped, ok := escapedChars[ch]; ok {
				value.WriteRune(escaped)
			} else if ch == 'u' {
				code := uniCharCode(
					src.CharAt(position+1),
					src.CharAt(position+2),
					src.CharAt(position+3),
					src.CharAt(position+4),
				)
				if code < 0 {
					return token.Token{}, gqlerrors.Syntax(src, position, "Bad character escape sequence")
				}
				value.WriteRune(rune(code))
				position += 4
			} else {
				return token.Token{}, gqlerrors.Syntax(src, position, "Bad character escape sequence")
			}
			position++
			chunkStart = position
		}
	}

	if ch != '"' {
		return token.Token{}, gqlerrors.Syntax(src, position, "Unterminated string")
	}

	value.WriteString(src.Slice(chunkStart, position))
	return token.Token{Kind: token.STRING, Start: start, End: position + 1, Value: value.String()}, nil
}

// uniCharCode converts four hex characters to the code point they spell,
// or a negative number when any character is not a hex digit.
func uniCharCode(a, b, c, d rune) int {
	return char2hex(a)<<12 | char2hex(b)<<8 | char2hex(c)<<4 | char2hex(d)
}

func char2hex(ch rune) int {
	switch {
	case ch >= '0' && ch <= '9':
		return int(ch - '0')
	case ch >= 'A' && ch <= 'F':
		return int(ch - 'A' + 10)
	case ch >= 'a' && ch <= 'f':
		return int(ch - 'a' + 10)
	}
	return -1
}

// readName scans [_A-Za-z][_0-9A-Za-z]*.
func readName(src *source.Source, position int) token.Token {
	bodyLength := src.Len()
	end := position + 1
	for end < bodyLength && isNameContinue(src.CharAt(end)) {
		end++
	}
	return token.Token{Kind: token.NAME, Start: position, End: end, Value: src.Slice(position, end)}
}

func isNameStart(ch rune) bool {
	return ch == '_' || (ch >= 'A' && ch <= 'Z') || (ch >= 'a' && ch <= 'z')
}

func isNameContinue(ch rune) bool {
	return isNameStart(ch) || isDigit(ch)
}

func isDigit(ch rune) bool {
	return ch >= '0' && ch <= '9'
}
