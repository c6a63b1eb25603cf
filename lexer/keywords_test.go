package lexer

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/clexlang/cclex/token"
)

func lexAll(t *testing.T, src string) []token.Token {
	t.Helper()
	l := New("test.c", []byte(src), nil, nil)
	var toks []token.Token
	for {
		tok := l.Next()
		toks = append(toks, tok)
		if tok.Type == token.EOF {
			return toks
		}
	}
}

func lexOne(t *testing.T, src string) token.Token {
	t.Helper()
	toks := lexAll(t, src)
	return toks[0]
}

func TestKeywordSpellings(t *testing.T) {
	cases := []struct {
		src  string
		want token.TokenType
	}{
		{"auto", token.Auto},
		{"while", token.While},
		{"__const", token.Const},
		{"__const__", token.Const},
		{"__inline__", token.Inline},
		{"__restrict", token.Restrict},
		{"__signed__", token.Signed},
		{"__typeof", token.Typeof},
		{"__volatile__", token.Volatile},
		{"_Alignas", token.AlignasKw},
		{"_Atomic", token.AtomicKw},
		{"_Bool", token.BoolKw},
		{"_Thread_local", token.ThreadLocalKw},
		{"__thread", token.ThreadLocalKw},
		{"_Nullable", token.NullableKw},
		{"__int128", token.Int128Kw},
		{"__label__", token.LabelKw},
		{"asm", token.AsmKw},
		{"__asm__", token.AsmKw},
		{"__attribute__", token.AttributeMarker},
		{"__extension__", token.ExtensionMarker},
		{"__builtin_offsetof", token.BuiltinOffsetofMarker},
	}
	for _, c := range cases {
		t.Run(c.src, func(t *testing.T) {
			tok := lexOne(t, c.src+" x")
			assert.Equal(t, c.want, tok.Type)
			assert.Equal(t, len(c.src), tok.Length)
		})
	}
}

func TestKeywordLikeSpellingWithDollarIsIdentifier(t *testing.T) {
	// A $ anywhere in the lexeme takes it out of keyword consideration
	// entirely, even when the rest of the spelling matches a keyword.
	tok := lexOne(t, "auto$ x")
	assert.Equal(t, token.Identifier, tok.Type)
	assert.Equal(t, "auto$", tok.Name.String())
}

func TestIdentifierVsTypeIdent(t *testing.T) {
	isType := func(n token.Name) bool { return n.String() == "T" }
	l := New("test.c", []byte("int x; T y;"), isType, nil)

	tok := l.Next() // int
	assert.Equal(t, token.Int, tok.Type)
	tok = l.Next() // x
	assert.Equal(t, token.Identifier, tok.Type)
	assert.Equal(t, "x", tok.Name.String())

	// skip ; then T
	l.Next() // ;
	tok = l.Next()
	assert.Equal(t, token.TypeIdent, tok.Type)
	assert.Equal(t, "T", tok.Name.String())
}

func TestStrictC11RejectsGNUSpellings(t *testing.T) {
	l := New("test.c", []byte("__const x"), nil, nil, StrictC11())
	tok := l.Next()
	assert.Equal(t, token.Identifier, tok.Type)
	assert.Equal(t, "__const", tok.Name.String())
}

func TestStrictC11StillAcceptsStandardSpelling(t *testing.T) {
	l := New("test.c", []byte("const x"), nil, nil, StrictC11())
	tok := l.Next()
	assert.Equal(t, token.Const, tok.Type)
}

func TestInterningSharesName(t *testing.T) {
	l := New("test.c", []byte("foo foo"), nil, nil)
	a := l.Next()
	b := l.Next()
	assert.Equal(t, a.Name.ID(), b.Name.ID())
}
