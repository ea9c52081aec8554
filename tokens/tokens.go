// Package tokens turns CSS value text into a token stream and exposes a
// cursor with the lookahead-and-rollback discipline the value grammars need:
// parse attempts mark the cursor, consume freely and restore the mark when an
// alternative fails. Errors carry the source location of the offending token.
package tokens

import (
	"fmt"
	"strings"

	parse "github.com/tdewolff/parse/v2"
	"github.com/tdewolff/parse/v2/css"
)

// Token is a single CSS token with its byte offset in the source.
type Token struct {
	Type   css.TokenType
	Data   string
	Offset int
}

// Cursor walks a tokenized CSS value. Whitespace and comments are dropped
// during tokenization, so Next always yields a significant token.
type Cursor struct {
	src  string
	toks []Token
	pos  int
}

// NewCursor tokenizes src and returns a cursor positioned at the first token.
func NewCursor(src string) *Cursor {
	input := parse.NewInputString(src)
	lexer := css.NewLexer(input)

	var toks []Token
	offset := 0
	for {
		tt, data := lexer.Next()
		end := input.Offset()
		if tt == css.ErrorToken {
			break
		}
		if tt != css.WhitespaceToken && tt != css.CommentToken {
			toks = append(toks, Token{Type: tt, Data: string(data), Offset: offset})
		}
		offset = end
	}
	return &Cursor{src: src, toks: toks}
}

// Mark returns the current position for a later Restore.
func (c *Cursor) Mark() int {
	return c.pos
}

// Restore rolls the cursor back to a position obtained from Mark.
func (c *Cursor) Restore(mark int) {
	c.pos = mark
}

// Next consumes and returns the next token. At the end of input it returns
// a location-tagged error.
func (c *Cursor) Next() (Token, error) {
	if c.pos >= len(c.toks) {
		return Token{}, c.errorAt(len(c.src), "unexpected end of input")
	}
	t := c.toks[c.pos]
	c.pos++
	return t, nil
}

// Peek returns the next token without consuming it.
func (c *Cursor) Peek() (Token, bool) {
	if c.pos >= len(c.toks) {
		return Token{}, false
	}
	return c.toks[c.pos], true
}

// Done reports whether all tokens have been consumed.
func (c *Cursor) Done() bool {
	return c.pos >= len(c.toks)
}

// ParseError is a parse failure tagged with its source location.
type ParseError struct {
	Msg    string
	Offset int
	Line   int
	Column int
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("%s at %d:%d", e.Msg, e.Line, e.Column)
}

// Unexpected reports that t cannot appear at its position.
func (c *Cursor) Unexpected(t Token) *ParseError {
	return c.errorAt(t.Offset, fmt.Sprintf("unexpected token %s (%q)", t.Type, t.Data))
}

// NoMatch reports that no grammar alternative matched the next token.
func (c *Cursor) NoMatch() *ParseError {
	offset := len(c.src)
	if t, ok := c.Peek(); ok {
		offset = t.Offset
	}
	return c.errorAt(offset, "no match for next token")
}

func (c *Cursor) errorAt(offset int, msg string) *ParseError {
	line, col, _ := parse.Position(strings.NewReader(c.src), offset)
	return &ParseError{Msg: msg, Offset: offset, Line: line, Column: col}
}

// SplitDimension splits a dimension token like "2.5px" into its numeric part
// and lowercased unit suffix. An exponent is only consumed when an actual
// exponent follows, so "1e3px" splits before "px" while "1em" splits
// before "em".
func SplitDimension(s string) (num, unit string) {
	i, n := 0, len(s)
	if i < n && (s[i] == '+' || s[i] == '-') {
		i++
	}
	for i < n && isDigit(s[i]) {
		i++
	}
	if i < n && s[i] == '.' {
		i++
		for i < n && isDigit(s[i]) {
			i++
		}
	}
	if i < n && (s[i] == 'e' || s[i] == 'E') {
		j := i + 1
		if j < n && (s[j] == '+' || s[j] == '-') {
			j++
		}
		if j < n && isDigit(s[j]) {
			for j < n && isDigit(s[j]) {
				j++
			}
			i = j
		}
	}
	return s[:i], strings.ToLower(s[i:])
}

func isDigit(b byte) bool {
	return b >= '0' && b <= '9'
}
