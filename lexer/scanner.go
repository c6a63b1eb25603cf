package lexer

import (
	"fmt"
	"strconv"
	"unicode/utf8"

	"github.com/smasher164/xid"

	"github.com/clexlang/cclex/token"
)

func isIdentStart(b byte) bool { return isAlphaWord(b) || b == '$' }
func isIdentCont(b byte) bool  { return isAlphaWord(b) || isDigit(b) || b == '$' }

// scanToken dispatches the longest-match rule table from the cursor's
// current byte: identifiers/keywords, numeric literals, char/string
// literals and punctuation. Whitespace, #line and the other skip
// patterns are handled one level up, in lexOne.
func (l *Lexer) scanToken() token.Token {
	start := l.cur.pos
	b := l.cur.peekByte()

	switch {
	case b == '\'':
		return l.scanCharLiteral(start, false)
	case b == '"':
		return l.scanStringLiteral(start, false)
	case b == 'L' && l.cur.peekByteAt(1) == '\'':
		l.cur.advanceByte()
		return l.scanCharLiteral(start, true)
	case b == 'L' && l.cur.peekByteAt(1) == '"':
		l.cur.advanceByte()
		return l.scanStringLiteral(start, true)
	case isIdentStart(b):
		return l.scanIdentOrKeyword(start)
	case isDigit(b):
		return l.scanNumber(start)
	case b == '.' && isDigit(l.cur.peekByteAt(1)):
		return l.scanNumber(start)
	default:
		if tok, ok := l.scanPunct(start); ok {
			return tok
		}
		return l.errorCharacterDoesNotFit(start)
	}
}

// scanIdentOrKeyword scans an identifier lexeme, tries an exact keyword
// match, and on miss interns the lexeme and consults IsTypeIdentifier.
func (l *Lexer) scanIdentOrKeyword(start token.Position) token.Token {
	from := start.Offset
	hasDollar := false
	for !l.cur.empty() && isIdentCont(l.cur.peekByte()) {
		if l.cur.peekByte() == '$' {
			hasDollar = true
		}
		l.cur.advanceByte()
	}
	lexeme := l.cur.substring(from)
	length := l.cur.pos.Offset - from

	// A lexeme containing $ is never a keyword: the grammar accepts $ in
	// identifiers, but keyword matching does not extend to $-bearing
	// spellings.
	if !hasDollar && !(l.strictC11 && gnuOnlySpellings[lexeme]) {
		if tt, ok := lookupKeyword(lexeme); ok {
			return token.Token{Type: tt, Pos: start, Length: length}
		}
	}

	name := l.names.Intern(lexeme)
	tt := token.Identifier
	if l.isType(name) {
		tt = token.TypeIdent
	}
	return token.Token{Type: tt, Pos: start, Length: length, Name: name}
}

// scanNumber dispatches to the hex-prefixed grammar or the
// decimal/octal/clang-version grammar, based on a 0x/0X lookahead.
func (l *Lexer) scanNumber(start token.Position) token.Token {
	if l.cur.peekByte() == '0' && (l.cur.peekByteAt(1) == 'x' || l.cur.peekByteAt(1) == 'X') {
		return l.scanHexNumber(start)
	}
	return l.scanDecimalNumber(start)
}

func (l *Lexer) scanHexNumber(start token.Position) token.Token {
	from := start.Offset
	l.cur.advance(2) // 0x / 0X
	digitsStart := l.cur.pos.Offset
	for !l.cur.empty() && isHexDigit(l.cur.peekByte()) {
		l.cur.advanceByte()
	}
	if l.cur.pos.Offset == digitsStart {
		l.error(start, "Invalid hexadecimal integer constant")
		return l.finishError(start, from)
	}
	digitsEnd := l.cur.pos.Offset

	hasDot := false
	if !l.cur.empty() && l.cur.peekByte() == '.' {
		hasDot = true
		l.cur.advanceByte()
		for !l.cur.empty() && isHexDigit(l.cur.peekByte()) {
			l.cur.advanceByte()
		}
	}
	if !l.cur.empty() && (l.cur.peekByte() == 'p' || l.cur.peekByte() == 'P') {
		l.cur.advanceByte()
		if !l.cur.empty() && (l.cur.peekByte() == '+' || l.cur.peekByte() == '-') {
			l.cur.advanceByte()
		}
		for !l.cur.empty() && isDigit(l.cur.peekByte()) {
			l.cur.advanceByte()
		}
		return l.finishFloat(start)
	}
	if hasDot {
		l.error(start, "Hexadecimal floating constant requires an exponent")
		return l.finishError(start, from)
	}
	return l.finishInteger(start, digitsEnd, token.Hex)
}

func (l *Lexer) scanDecimalNumber(start token.Position) token.Token {
	from := start.Offset
	if lit, n, ok := tryClangVersion(l.cur.src, from); ok {
		l.cur.advance(n)
		return token.Token{Type: token.ClangVersionLit, Pos: start, Length: n, ClangVersion: lit}
	}

	isFloat := false
	for !l.cur.empty() && isDigit(l.cur.peekByte()) {
		l.cur.advanceByte()
	}
	if !l.cur.empty() && l.cur.peekByte() == '.' {
		isFloat = true
		l.cur.advanceByte()
		for !l.cur.empty() && isDigit(l.cur.peekByte()) {
			l.cur.advanceByte()
		}
	}
	if !l.cur.empty() && (l.cur.peekByte() == 'e' || l.cur.peekByte() == 'E') {
		n := 1
		if s := l.cur.peekByteAt(1); s == '+' || s == '-' {
			n = 2
		}
		if isDigit(l.cur.peekByteAt(n)) {
			l.cur.advance(n)
			for !l.cur.empty() && isDigit(l.cur.peekByte()) {
				l.cur.advanceByte()
			}
			isFloat = true
		}
	}

	if isFloat {
		return l.finishFloat(start)
	}
	digitsEnd := l.cur.pos.Offset
	base := token.Decimal
	if l.cur.src[from] == '0' && digitsEnd-from > 1 {
		base = token.Octal
	}
	return l.finishInteger(start, digitsEnd, base)
}

// tryClangVersion attempts to match a clang version literal
// (int.int.int) at src[from:]. It must be tried before ordinary float
// scanning and win whenever it matches, since a three-group version
// string is always longer than the float prefix a second "." would
// otherwise cut the match down to.
func tryClangVersion(src []byte, from int) (v [3]int, n int, ok bool) {
	i := from
	for g := 0; g < 3; g++ {
		start := i
		for i < len(src) && isDigit(src[i]) {
			i++
		}
		if i == start {
			return [3]int{}, 0, false
		}
		val, _ := strconv.Atoi(string(src[start:i]))
		v[g] = val
		if g < 2 {
			if i >= len(src) || src[i] != '.' {
				return [3]int{}, 0, false
			}
			i++
		}
	}
	return v, i - from, true
}

func (l *Lexer) finishInteger(start token.Position, digitsEnd int, base token.IntBase) token.Token {
	from := start.Offset
	suffixStart := digitsEnd
	for !l.cur.empty() && isIntSuffixByte(l.cur.peekByte()) {
		l.cur.advanceByte()
	}
	digits := string(l.cur.src[from:digitsEnd])
	suffix := string(l.cur.src[suffixStart:l.cur.pos.Offset])
	lit, err := decodeInteger(digits, suffix, base)
	length := l.cur.pos.Offset - from
	if err != nil {
		l.error(start, err.Error())
	}
	return token.Token{Type: token.IntLit, Pos: start, Length: length, Int: lit}
}

func (l *Lexer) finishFloat(start token.Position) token.Token {
	from := start.Offset
	mantissaEnd := l.cur.pos.Offset
	suffixStart := mantissaEnd
	for !l.cur.empty() && isFloatSuffixByte(l.cur.peekByte()) {
		l.cur.advanceByte()
	}
	raw := string(l.cur.src[from:l.cur.pos.Offset])
	mantissaExp := string(l.cur.src[from:mantissaEnd])
	suffix := string(l.cur.src[suffixStart:l.cur.pos.Offset])
	lit, err := decodeFloat(raw, mantissaExp, suffix)
	length := l.cur.pos.Offset - from
	if err != nil {
		l.error(start, err.Error())
	}
	return token.Token{Type: token.FloatLit, Pos: start, Length: length, Float: lit}
}

// scanCharLiteral and scanStringLiteral consume body text without fully
// interpreting escapes, so that an escaped quote never ends the literal
// early; decodeCharBody/decodeStringBody reinterpret the captured body
// afterwards.

func (l *Lexer) scanCharLiteral(start token.Position, wide bool) token.Token {
	from := start.Offset
	l.cur.advanceByte() // opening '
	bodyStart := l.cur.pos.Offset
	for {
		if l.cur.empty() || l.cur.peekByte() == '\n' {
			l.error(start, "Invalid escape sequence")
			return l.finishError(start, from)
		}
		b := l.cur.peekByte()
		if b == '\'' {
			break
		}
		if b == '\\' {
			l.cur.advanceByte()
			if !l.cur.empty() {
				l.cur.advanceByte()
			}
			continue
		}
		l.cur.advanceByte()
	}
	body := l.cur.substring(bodyStart)
	l.cur.advanceByte() // closing '
	length := l.cur.pos.Offset - from

	if body == "" {
		l.error(start, "Invalid escape sequence")
		return l.finishError(start, from)
	}
	codepoints, err := decodeCharBody(body)
	if err != nil {
		l.error(start, err.Error())
		return l.finishError(start, from)
	}
	return token.Token{Type: token.CharLit, Pos: start, Length: length, Char: token.CharLiteral{CodePoints: codepoints, Wide: wide}}
}

func (l *Lexer) scanStringLiteral(start token.Position, wide bool) token.Token {
	from := start.Offset
	l.cur.advanceByte() // opening "
	bodyStart := l.cur.pos.Offset
	for {
		if l.cur.empty() || l.cur.peekByte() == '\n' {
			l.error(start, "Invalid escape sequence")
			return l.finishError(start, from)
		}
		b := l.cur.peekByte()
		if b == '"' {
			break
		}
		if b == '\\' {
			l.cur.advanceByte()
			if !l.cur.empty() {
				l.cur.advanceByte()
			}
			continue
		}
		l.cur.advanceByte()
	}
	body := l.cur.substring(bodyStart)
	l.cur.advanceByte() // closing "
	length := l.cur.pos.Offset - from

	decoded, err := decodeStringBody(body, wide)
	if err != nil {
		l.error(start, err.Error())
		return l.finishError(start, from)
	}
	return token.Token{Type: token.StringLit, Pos: start, Length: length, Str: token.StringLiteral{Decoded: decoded, Wide: wide}}
}

// scanPunct matches one of the fixed punctuation/operator lexemes by
// maximal munch. It reports (zero, false) without consuming input when
// b does not start any of them.
func (l *Lexer) scanPunct(start token.Position) (token.Token, bool) {
	from := start.Offset
	b := l.cur.peekByte()
	peek := func() byte { return l.cur.peekByte() }

	var tt token.TokenType
	switch b {
	case '(':
		l.cur.advanceByte()
		tt = token.LParen
	case ')':
		l.cur.advanceByte()
		tt = token.RParen
	case '{':
		l.cur.advanceByte()
		tt = token.LBrace
	case '}':
		l.cur.advanceByte()
		tt = token.RBrace
	case '[':
		l.cur.advanceByte()
		tt = token.LBracket
	case ']':
		l.cur.advanceByte()
		tt = token.RBracket
	case ',':
		l.cur.advanceByte()
		tt = token.Comma
	case ';':
		l.cur.advanceByte()
		tt = token.Semicolon
	case '~':
		l.cur.advanceByte()
		tt = token.Tilde
	case '?':
		l.cur.advanceByte()
		tt = token.Question
	case ':':
		l.cur.advanceByte()
		tt = token.Colon
	case '.':
		l.cur.advanceByte()
		if peek() == '.' && l.cur.peekByteAt(1) == '.' {
			l.cur.advance(2)
			tt = token.Ellipsis
		} else {
			tt = token.Dot
		}
	case '-':
		l.cur.advanceByte()
		switch peek() {
		case '>':
			l.cur.advanceByte()
			tt = token.Arrow
		case '-':
			l.cur.advanceByte()
			tt = token.Dec
		case '=':
			l.cur.advanceByte()
			tt = token.SubAssign
		default:
			tt = token.Minus
		}
	case '+':
		l.cur.advanceByte()
		switch peek() {
		case '+':
			l.cur.advanceByte()
			tt = token.Inc
		case '=':
			l.cur.advanceByte()
			tt = token.AddAssign
		default:
			tt = token.Plus
		}
	case '&':
		l.cur.advanceByte()
		switch peek() {
		case '&':
			l.cur.advanceByte()
			tt = token.AndAnd
		case '=':
			l.cur.advanceByte()
			tt = token.AndAssign
		default:
			tt = token.Amp
		}
	case '|':
		l.cur.advanceByte()
		switch peek() {
		case '|':
			l.cur.advanceByte()
			tt = token.OrOr
		case '=':
			l.cur.advanceByte()
			tt = token.OrAssign
		default:
			tt = token.Pipe
		}
	case '*':
		l.cur.advanceByte()
		if peek() == '=' {
			l.cur.advanceByte()
			tt = token.MulAssign
		} else {
			tt = token.Star
		}
	case '/':
		l.cur.advanceByte()
		if peek() == '=' {
			l.cur.advanceByte()
			tt = token.DivAssign
		} else {
			tt = token.Slash
		}
	case '%':
		l.cur.advanceByte()
		if peek() == '=' {
			l.cur.advanceByte()
			tt = token.ModAssign
		} else {
			tt = token.Percent
		}
	case '^':
		l.cur.advanceByte()
		if peek() == '=' {
			l.cur.advanceByte()
			tt = token.XorAssign
		} else {
			tt = token.Caret
		}
	case '=':
		l.cur.advanceByte()
		if peek() == '=' {
			l.cur.advanceByte()
			tt = token.EqEq
		} else {
			tt = token.Assign
		}
	case '!':
		l.cur.advanceByte()
		if peek() == '=' {
			l.cur.advanceByte()
			tt = token.Ne
		} else {
			tt = token.Bang
		}
	case '<':
		l.cur.advanceByte()
		switch peek() {
		case '<':
			l.cur.advanceByte()
			if peek() == '=' {
				l.cur.advanceByte()
				tt = token.ShlAssign
			} else {
				tt = token.Shl
			}
		case '=':
			l.cur.advanceByte()
			tt = token.Le
		default:
			tt = token.Lt
		}
	case '>':
		l.cur.advanceByte()
		switch peek() {
		case '>':
			l.cur.advanceByte()
			if peek() == '=' {
				l.cur.advanceByte()
				tt = token.ShrAssign
			} else {
				tt = token.Shr
			}
		case '=':
			l.cur.advanceByte()
			tt = token.Ge
		default:
			tt = token.Gt
		}
	default:
		return token.Token{}, false
	}
	return token.Token{Type: tt, Pos: start, Length: l.cur.pos.Offset - from}, true
}

// errorCharacterDoesNotFit is the generic fallback diagnostic. For a
// high byte that begins a valid Unicode identifier-class rune (the kind
// of thing a pasted smart quote or fullwidth underscore produces) it
// names the code point via xid so the message is actionable instead of
// a bare byte dump.
func (l *Lexer) errorCharacterDoesNotFit(start token.Position) token.Token {
	from := start.Offset
	b := l.cur.peekByte()
	desc := fmt.Sprintf("%c", b)
	consumed := 1
	if b >= 0x80 {
		r, size := utf8.DecodeRune(l.cur.src[l.cur.pos.Offset:])
		switch {
		case r == utf8.RuneError:
			desc = fmt.Sprintf("0x%02X", b)
		case xid.Start(r) || xid.Continue(r):
			desc = fmt.Sprintf("%c (U+%04X, a Unicode identifier character, unsupported outside escapes)", r, r)
			consumed = size
		default:
			desc = fmt.Sprintf("%c (U+%04X)", r, r)
			consumed = size
		}
	}
	l.error(start, fmt.Sprintf("The character %s does not fit here.", desc))
	l.cur.advance(consumed)
	return l.finishError(start, from)
}

func (l *Lexer) finishError(start token.Position, from int) token.Token {
	return token.Token{Type: token.EOF, Pos: start, Length: l.cur.pos.Offset - from}
}
