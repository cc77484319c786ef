package source

import "strings"

// Source is an immutable GraphQL text buffer plus an identity used in
// diagnostics. Positions reported against a Source are character offsets,
// not byte offsets, so multi-byte runes count as one position each.
type Source struct {
	Body string
	Name string

	runes []rune
	lines []string
}

// New creates a Source with the default name "GraphQL".
func New(body string) *Source {
	return Named(body, "GraphQL")
}

// Named creates a Source with an explicit display name (e.g. a file path).
func Named(body, name string) *Source {
	return &Source{Body: body, Name: name, runes: []rune(body)}
}

// Len returns the number of characters in the body.
func (s *Source) Len() int {
	return len(s.runes)
}

// CharAt returns the character at offset pos, or 0 when pos is out of range.
func (s *Source) CharAt(pos int) rune {
	if pos >= 0 && pos < len(s.runes) {
		return s.runes[pos]
	}
	return 0
}

// Slice returns the text between character offsets [start, end).
func (s *Source) Slice(start, end int) string {
	return string(s.runes[start:end])
}

// Lines returns the body split into lines (cached).
func (s *Source) Lines() []string {
	if s.lines == nil {
		s.lines = strings.Split(s.Body, "\n")
	}
	return s.lines
}

// LineColumn converts a character offset into a 1-based line and column.
func (s *Source) LineColumn(pos int) (line, column int) {
	line, column = 1, 1
	for i := 0; i < pos && i < len(s.runes); i++ {
		if s.runes[i] == '\n' {
			line++
			column = 1
		} else {
			column++
		}
	}
	return line, column
}
