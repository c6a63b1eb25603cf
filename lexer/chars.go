package lexer

import (
	"fmt"
	"strconv"
	"unicode/utf8"
)

// errUCN is returned internally by decodeEscape when it sees \u or \U;
// decodeCharBody/decodeStringBody turn it into the message appropriate
// to their literal kind — char and string literals get distinct wording.
var errUCN = fmt.Errorf("universal character name")

// decodeEscape decodes one escape sequence, body[i] being the character
// right after the backslash. It returns the decoded code point and how
// many bytes of body (starting at i) the escape consumed.
func decodeEscape(body string, i int) (r rune, n int, err error) {
	if i >= len(body) {
		return 0, 0, fmt.Errorf("Invalid escape sequence")
	}
	switch c := body[i]; c {
	case '\'', '"', '?', '\\':
		return rune(c), 1, nil
	case 'a':
		return 7, 1, nil
	case 'b':
		return 8, 1, nil
	case 'f':
		return 12, 1, nil
	case 'n':
		return 10, 1, nil
	case 'r':
		return 13, 1, nil
	case 't':
		return 9, 1, nil
	case 'v':
		return 11, 1, nil
	case 'x':
		j := i + 1
		for j < len(body) && isHexDigit(body[j]) {
			j++
		}
		if j == i+1 {
			return 0, 0, fmt.Errorf("Invalid escape sequence")
		}
		val, _ := strconv.ParseUint(body[i+1:j], 16, 32)
		return rune(val), j - i, nil
	case 'u', 'U':
		return 0, 0, errUCN
	default:
		if isOctalDigit(c) {
			j := i
			for j < len(body) && j < i+3 && isOctalDigit(body[j]) {
				j++
			}
			val, _ := strconv.ParseUint(body[i:j], 8, 32)
			return rune(val), j - i, nil
		}
		return 0, 0, fmt.Errorf("Invalid escape sequence")
	}
}

// decodeBody walks body (the literal text between its quotes) decoding
// escapes in sequence, under Latin-1 semantics for unescaped bytes.
// ucnMessage names the diagnostic to raise if a \u/\U escape is found,
// since char and string literals are tested against different wording.
func decodeBody(body, ucnMessage string) ([]rune, error) {
	var out []rune
	i := 0
	for i < len(body) {
		if body[i] == '\\' {
			r, n, err := decodeEscape(body, i+1)
			if err != nil {
				if err == errUCN {
					return nil, fmt.Errorf("%s", ucnMessage)
				}
				return nil, err
			}
			out = append(out, r)
			i += 1 + n
		} else {
			out = append(out, rune(body[i]))
			i++
		}
	}
	return out, nil
}

const (
	ucnMessageChar   = "Universal character names are unsupported"
	ucnMessageString = "Universal character names in string literals are unsupported"
)

// decodeCharBody decodes the body of a (possibly multi-character) char
// constant into its sequence of code points.
func decodeCharBody(body string) ([]rune, error) {
	return decodeBody(body, ucnMessageChar)
}

// decodeStringBody decodes a string literal body into its byte/code-unit
// sequence. Narrow strings store one byte per decoded code point
// (Latin-1, masked to the low 8 bits); wide strings store each decoded
// code point UTF-8-encoded so multi-byte wide values survive in a []byte
// payload (see DESIGN.md for this representation choice).
func decodeStringBody(body string, wide bool) ([]byte, error) {
	runes, err := decodeBody(body, ucnMessageString)
	if err != nil {
		return nil, err
	}
	if !wide {
		out := make([]byte, len(runes))
		for i, r := range runes {
			out[i] = byte(r)
		}
		return out, nil
	}
	var out []byte
	buf := make([]byte, utf8.UTFMax)
	for _, r := range runes {
		n := utf8.EncodeRune(buf, r)
		out = append(out, buf[:n]...)
	}
	return out, nil
}
