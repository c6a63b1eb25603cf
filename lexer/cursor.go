package lexer

import "github.com/clexlang/cclex/token"

// cursor is the read-only input stream plus the current Position. It
// never rewinds: every call to advanceByte or advance moves strictly forward.
// Character extraction is Latin-1 (one byte, one rune) because C source
// is required to be in the basic execution character set once the
// preprocessor has run.
type cursor struct {
	src []byte
	pos token.Position
}

func newCursor(file string, src []byte) *cursor {
	return &cursor{
		src: src,
		pos: token.Position{File: file, Row: 1, Col: 1, Offset: 0},
	}
}

func (c *cursor) empty() bool { return c.pos.Offset >= len(c.src) }

// peekByte returns the byte at the cursor, or 0 at end of input.
func (c *cursor) peekByte() byte {
	if c.empty() {
		return 0
	}
	return c.src[c.pos.Offset]
}

// peekByteAt returns the byte n bytes past the cursor, or 0 past the end.
func (c *cursor) peekByteAt(n int) byte {
	i := c.pos.Offset + n
	if i < 0 || i >= len(c.src) {
		return 0
	}
	return c.src[i]
}

// peekChar is peekByte widened to rune under Latin-1 semantics.
func (c *cursor) peekChar() rune { return rune(c.peekByte()) }

// advanceByte moves the cursor over exactly one byte, updating Position
// per the newline/carriage-return rule: \n bumps Row and resets Col; \r
// advances Offset only (the following \n, if any, does the Row bump);
// any other byte advances Offset and Col by one.
func (c *cursor) advanceByte() {
	if c.empty() {
		return
	}
	b := c.src[c.pos.Offset]
	c.pos.Offset++
	switch b {
	case '\n':
		c.pos.Row++
		c.pos.Col = 1
	case '\r':
		// column intentionally left unchanged; a following \n (if any)
		// performs the row bump and column reset.
	default:
		c.pos.Col++
	}
}

// advance moves the cursor over n bytes.
func (c *cursor) advance(n int) {
	for i := 0; i < n; i++ {
		c.advanceByte()
	}
}

// substring returns the raw bytes from start to the current offset as a
// string; start must be an offset previously observed from c.pos.Offset.
func (c *cursor) substring(start int) string {
	return string(c.src[start:c.pos.Offset])
}

// setLine applies a #line directive: it replaces Row (and, if given, File)
// without touching Offset, and resets Col to 1.
func (c *cursor) setLine(row int, file string) {
	c.pos = c.pos.WithLine(row, file)
}
