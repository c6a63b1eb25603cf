package token

import "github.com/shopspring/decimal"

// IntBase records which of the three integer-constant grammars matched.
type IntBase int

const (
	Decimal IntBase = iota
	Octal
	Hex
)

// IntFlags is a bitmask of the suffix lattice accepted for integer
// constants: u|U, l|L, ll|LL and the GNU i|j imaginary marker, combinable
// in either permitted order.
type IntFlags uint8

const (
	IntUnsigned IntFlags = 1 << iota
	IntLong
	IntLongLong
	IntImaginary
)

// IntLiteral is the decoded payload of an IntLit token. Value holds the
// arbitrary-precision magnitude (shopspring/decimal, backed by math/big)
// so that overflow of any fixed-width target representation can be
// diagnosed downstream without losing the literal's true magnitude.
type IntLiteral struct {
	Value Value
	Base  IntBase
	Flags IntFlags
}

// Value wraps decimal.Decimal so literal payloads stay independent of the
// exact arbitrary-precision library in use.
type Value = decimal.Decimal

// FloatFlags is a bitmask of the float-constant suffix set {f,F,l,L} plus
// the GNU {i,j} imaginary marker, in either order.
type FloatFlags uint8

const (
	FloatSingle FloatFlags = 1 << iota
	FloatLongDouble
	FloatImaginary
)

// FloatLiteral is the decoded payload of a FloatLit token. Raw is the
// exact source text (mantissa, exponent, suffixes) retained because
// parser-side diagnostics quote it verbatim; Value is the decoded
// double-precision-equivalent value used by everything else.
type FloatLiteral struct {
	Raw   string
	Value Value
	Flags FloatFlags
}

// CharLiteral is the decoded payload of a CharLit token. A single-quoted
// constant decodes to one code point; a GNU multi-character constant
// decodes to the full sequence in source order.
type CharLiteral struct {
	CodePoints []rune
	Wide       bool
}

// StringLiteral is the decoded payload of a StringLit token: the escape
// sequences have been resolved to their byte/code-unit values, but
// adjacent string concatenation is left to the (out-of-scope) parser.
type StringLiteral struct {
	Decoded []byte
	Wide    bool
}
