package leptjson

import (
	"errors"
	"fmt"
	"strconv"
)

// cursor is a read position over an immutable input text.
type cursor struct {
	src string // Input text, never modified.
	pos int    // Byte offset of the next unread character.
}

// newCursor creates a cursor positioned at the start of src.
func newCursor(src string) *cursor {
	return &cursor{src: src}
}

// atEnd reports whether all input has been consumed.
func (c *cursor) atEnd() bool {
	return c.pos >= len(c.src)
}

// peek returns the current character without consuming it, or 0 at end of input.
func (c *cursor) peek() byte {
	if c.atEnd() {
		return 0
	}

	return c.src[c.pos]
}

// advance moves the cursor forward by n characters.
func (c *cursor) advance(n int) {
	c.pos += n
}

// rest returns the unread part of the input.
func (c *cursor) rest() string {
	return c.src[c.pos:]
}

// expect consumes ch, which the caller has already checked is the current
// character. Anything else is a programming error.
func (c *cursor) expect(ch byte) {
	if c.peek() != ch {
		panic(fmt.Sprintf("leptjson: expected %q at offset %d, found %q", ch, c.pos, c.peek()))
	}
	c.pos++
}

// skipWhitespace advances past spaces, tabs, newlines and carriage returns.
func (c *cursor) skipWhitespace() {
	for !c.atEnd() && isWhitespace(c.src[c.pos]) {
		c.pos++
	}
}

// syntaxError builds a SyntaxError at the current position.
func (c *cursor) syntaxError(code ErrorCode) error {
	return &SyntaxError{Code: code, Offset: c.pos}
}

// parseLiteral consumes one of the keyword tokens and stores typ in v.
// The dispatcher only routes here after seeing the first character of
// literal, so that character is asserted rather than compared.
func parseLiteral(c *cursor, v *Value, literal string, typ Type) error {
	c.expect(literal[0])
	for i := 1; i < len(literal); i++ {
		if c.peek() != literal[i] {
			return c.syntaxError(InvalidValue)
		}
		c.advance(1)
	}

	v.setLiteral(typ)
	return nil
}

// validNumber reports the length of the number at the start of s, following
//
//	number = [ "-" ] int [ frac ] [ exp ]
//	int    = "0" / ( digit1-9 *digit )
//	frac   = "." 1*digit
//	exp    = ( "e" / "E" ) [ "-" / "+" ] 1*digit
//
// It returns ok == false if s does not start with a valid number. On failure
// n is the offset of the offending character.
func validNumber(s string) (n int, ok bool) {
	i := 0

	if i < len(s) && s[i] == '-' {
		i++
	}

	// Integer part. A leading zero stands alone, so "01" and "0x1" are
	// rejected here rather than read as "0" followed by junk.
	switch {
	case i < len(s) && s[i] == '0':
		i++
		if i < len(s) && (isDigit(s[i]) || s[i] == 'x' || s[i] == 'X') {
			return i, false
		}
	case i < len(s) && isDigit1to9(s[i]):
		for i++; i < len(s) && isDigit(s[i]); i++ {
		}
	default:
		return i, false
	}

	if i < len(s) && s[i] == '.' {
		i++
		if i >= len(s) || !isDigit(s[i]) {
			return i, false
		}
		for i++; i < len(s) && isDigit(s[i]); i++ {
		}
	}

	if i < len(s) && (s[i] == 'e' || s[i] == 'E') {
		i++
		if i < len(s) && (s[i] == '+' || s[i] == '-') {
			i++
		}
		if i >= len(s) || !isDigit(s[i]) {
			return i, false
		}
		for i++; i < len(s) && isDigit(s[i]); i++ {
		}
	}

	return i, true
}

// parseNumber validates and converts the number at the cursor.
func parseNumber(c *cursor, v *Value) error {
	n, ok := validNumber(c.rest())
	if !ok {
		return &SyntaxError{Code: InvalidValue, Offset: c.pos + n}
	}

	f, err := strconv.ParseFloat(c.src[c.pos:c.pos+n], 64)
	if err != nil && !errors.Is(err, strconv.ErrRange) {
		// Unreachable for grammar-valid input.
		return c.syntaxError(InvalidValue)
	}

	// Out-of-range literals keep ParseFloat's result: ±Inf on overflow,
	// ±0 or a subnormal on underflow.
	c.advance(n)
	v.setNumber(f)
	return nil
}

func isWhitespace(c byte) bool {
	return c == ' ' || c == '\t' || c == '\n' || c == '\r'
}

func isDigit(c byte) bool {
	return c >= '0' && c <= '9'
}

func isDigit1to9(c byte) bool {
	return c >= '1' && c <= '9'
}
