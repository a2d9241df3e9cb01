package leptjson

// Parse parses text into v. The text must hold exactly one value (null,
// true, false or a number) surrounded by optional whitespace.
//
// On success v holds the parsed value. On failure Parse returns a
// *SyntaxError and v is null.
func Parse(v *Value, text string) error {
	if v == nil {
		panic("leptjson: Parse called with nil *Value")
	}

	v.Reset()
	c := newCursor(text)
	c.skipWhitespace()

	if err := parseValue(c, v); err != nil {
		v.Reset()
		return err
	}

	c.skipWhitespace()
	if !c.atEnd() {
		v.Reset()
		return c.syntaxError(RootNotSingular)
	}

	return nil
}

// ParseBytes is like Parse but takes a byte slice.
func ParseBytes(v *Value, data []byte) error {
	return Parse(v, string(data))
}

// parseValue dispatches on the current character without consuming it.
func parseValue(c *cursor, v *Value) error {
	if c.atEnd() {
		return c.syntaxError(ExpectValue)
	}

	switch c.peek() {
	case 't':
		return parseLiteral(c, v, "true", TypeTrue)
	case 'f':
		return parseLiteral(c, v, "false", TypeFalse)
	case 'n':
		return parseLiteral(c, v, "null", TypeNull)
	default:
		return parseNumber(c, v)
	}
}
