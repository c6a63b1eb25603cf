package lexer

import (
	"fmt"
	"math/big"
	"strconv"

	"github.com/shopspring/decimal"

	"github.com/clexlang/cclex/token"
)

func isDigit(b byte) bool      { return b >= '0' && b <= '9' }
func isOctalDigit(b byte) bool { return b >= '0' && b <= '7' }
func isHexDigit(b byte) bool {
	return isDigit(b) || (b >= 'a' && b <= 'f') || (b >= 'A' && b <= 'F')
}
func isIntSuffixByte(b byte) bool {
	switch b {
	case 'u', 'U', 'l', 'L', 'i', 'j':
		return true
	}
	return false
}
func isFloatSuffixByte(b byte) bool {
	switch b {
	case 'f', 'F', 'l', 'L', 'i', 'j':
		return true
	}
	return false
}

// parseIntSuffix accepts any ordering of an optional u|U element, an
// optional l|L-or-ll|LL element and an optional GNU i|j element, each
// appearing at most once. It rejects any other trailing run, including
// a doubled u/U or a third l.
func parseIntSuffix(suffix string) (token.IntFlags, bool) {
	var flags token.IntFlags
	haveU, haveL, haveImag := false, false, false
	i := 0
	for i < len(suffix) {
		switch c := suffix[i]; c {
		case 'u', 'U':
			if haveU {
				return 0, false
			}
			haveU = true
			flags |= token.IntUnsigned
			i++
		case 'i', 'j':
			if haveImag {
				return 0, false
			}
			haveImag = true
			flags |= token.IntImaginary
			i++
		case 'l', 'L':
			if haveL {
				return 0, false
			}
			haveL = true
			if i+1 < len(suffix) && suffix[i+1] == c {
				flags |= token.IntLongLong
				i += 2
			} else {
				flags |= token.IntLong
				i++
			}
		default:
			return 0, false
		}
	}
	return flags, true
}

// decodeInteger converts the digit run (already separated from its
// suffix by the scanner) plus the matched suffix string into an
// IntLiteral. base tells it which radix the digits were scanned under.
func decodeInteger(digits, suffix string, base token.IntBase) (token.IntLiteral, error) {
	flags, ok := parseIntSuffix(suffix)
	if !ok {
		return token.IntLiteral{}, fmt.Errorf("Invalid integer constant suffix")
	}
	radix := 10
	radixDigits := digits
	switch base {
	case token.Octal:
		radix = 8
		radixDigits = digits[1:] // drop leading 0
		if radixDigits == "" {
			radixDigits = "0"
		}
	case token.Hex:
		radix = 16
		radixDigits = digits[2:] // drop 0x/0X
	}
	bi := new(big.Int)
	if _, ok := bi.SetString(radixDigits, radix); !ok {
		return token.IntLiteral{}, fmt.Errorf("malformed integer digits %q", digits)
	}
	return token.IntLiteral{Value: decimal.NewFromBigInt(bi, 0), Base: base, Flags: flags}, nil
}

// decodeFloat converts a decimal or hex floating-point lexeme (mantissa,
// optional exponent, optional suffix) into a FloatLiteral. Raw retains
// the exact source text; Value holds the double-precision decoding —
// widening an `l`-suffixed constant to extended precision is left to a
// downstream consumer that needs it, since Go has no native extended
// float type (see DESIGN.md).
func decodeFloat(raw, mantissaExp, suffix string) (token.FloatLiteral, error) {
	v, err := strconv.ParseFloat(mantissaExp, 64)
	if err != nil {
		return token.FloatLiteral{}, fmt.Errorf("malformed floating constant %q", raw)
	}
	var flags token.FloatFlags
	for i := 0; i < len(suffix); i++ {
		switch suffix[i] {
		case 'f', 'F':
			flags |= token.FloatSingle
		case 'l', 'L':
			flags |= token.FloatLongDouble
		case 'i', 'j':
			flags |= token.FloatImaginary
		}
	}
	return token.FloatLiteral{Raw: raw, Value: decimal.NewFromFloat(v), Flags: flags}, nil
}
