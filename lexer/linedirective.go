package lexer

import "strconv"

// directiveKind identifies which of the three tolerated preprocessor
// directive lines was just consumed.
type directiveKind int

const (
	directiveNone directiveKind = iota
	directiveLine
	directivePragma
	directiveIdent
)

func isHSpace(b byte) bool { return b == ' ' || b == '\t' }
func isAlphaWord(b byte) bool {
	return (b >= 'a' && b <= 'z') || (b >= 'A' && b <= 'Z') || b == '_'
}

func (c *cursor) skipHSpace() {
	for !c.empty() && isHSpace(c.peekByte()) {
		c.advanceByte()
	}
}

// consumeToEOL advances past everything up to and including the
// terminating \n or \r\n (or to EOF, whichever comes first).
func (c *cursor) consumeToEOL() {
	for !c.empty() && c.peekByte() != '\n' && c.peekByte() != '\r' {
		c.advanceByte()
	}
	if !c.empty() && c.peekByte() == '\r' {
		c.advanceByte()
	}
	if !c.empty() && c.peekByte() == '\n' {
		c.advanceByte()
	}
}

func (c *cursor) readWord() string {
	start := c.pos.Offset
	for !c.empty() && isAlphaWord(c.peekByte()) {
		c.advanceByte()
	}
	return c.substring(start)
}

func (c *cursor) readDigits() string {
	start := c.pos.Offset
	for !c.empty() && isDigit(c.peekByte()) {
		c.advanceByte()
	}
	return c.substring(start)
}

// scanDirectiveLine consumes a full directive line starting at the
// cursor, which must be positioned on '#'. For a #line directive it
// rebases Position: Row is replaced unconditionally; File is replaced
// (by reference, i.e. reusing the existing string value, when the
// parsed name equals it) only if a filename is present. Trailing
// integer fields after the filename are tolerated and ignored, matching
// GCC's preprocessor output; GCC's own linemarker spelling (`# N "F"`,
// no literal "line" word) is accepted alongside `#line N "F"`.
func (c *cursor) scanDirectiveLine() directiveKind {
	c.advanceByte() // '#'
	c.skipHSpace()

	if !c.empty() && isAlphaWord(c.peekByte()) {
		word := c.readWord()
		switch word {
		case "pragma":
			c.consumeToEOL()
			return directivePragma
		case "ident":
			c.consumeToEOL()
			return directiveIdent
		case "line":
			c.skipHSpace()
		default:
			c.consumeToEOL()
			return directiveNone
		}
	}

	if c.empty() || !isDigit(c.peekByte()) {
		c.consumeToEOL()
		return directiveNone
	}
	rowText := c.readDigits()
	row, err := strconv.Atoi(rowText)
	if err != nil {
		c.consumeToEOL()
		return directiveNone
	}
	c.skipHSpace()

	file := c.pos.File
	if !c.empty() && c.peekByte() == '"' {
		c.advanceByte()
		nameStart := c.pos.Offset
		for !c.empty() && c.peekByte() != '"' {
			c.advanceByte()
		}
		name := c.substring(nameStart)
		if !c.empty() {
			c.advanceByte() // closing '"'
		}
		file = name
		c.skipHSpace()
	}

	// Tolerate, and ignore, any further (digits hspace*)* groups.
	for !c.empty() && isDigit(c.peekByte()) {
		c.readDigits()
		c.skipHSpace()
	}

	c.consumeToEOL()
	c.setLine(row, file)
	return directiveLine
}
