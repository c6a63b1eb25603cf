package lexer

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/clexlang/cclex/token"
)

func TestCharLiterals(t *testing.T) {
	t.Run("simple", func(t *testing.T) {
		tok := lexOne(t, "'a'")
		require.Equal(t, token.CharLit, tok.Type)
		assert.Equal(t, []rune{'a'}, tok.Char.CodePoints)
		assert.False(t, tok.Char.Wide)
	})

	t.Run("escaped newline", func(t *testing.T) {
		tok := lexOne(t, `'\n'`)
		assert.Equal(t, []rune{'\n'}, tok.Char.CodePoints)
	})

	t.Run("hex escape", func(t *testing.T) {
		tok := lexOne(t, `'\x41'`)
		assert.Equal(t, []rune{'A'}, tok.Char.CodePoints)
	})

	t.Run("octal escape", func(t *testing.T) {
		tok := lexOne(t, `'\101'`)
		assert.Equal(t, []rune{'A'}, tok.Char.CodePoints)
	})

	t.Run("escaped quote does not end the literal", func(t *testing.T) {
		tok := lexOne(t, `'\''`)
		assert.Equal(t, []rune{'\''}, tok.Char.CodePoints)
	})

	t.Run("multi-character constant", func(t *testing.T) {
		tok := lexOne(t, "'ab'")
		assert.Equal(t, []rune{'a', 'b'}, tok.Char.CodePoints)
	})

	t.Run("wide char literal", func(t *testing.T) {
		tok := lexOne(t, "L'a'")
		assert.True(t, tok.Char.Wide)
		assert.Equal(t, []rune{'a'}, tok.Char.CodePoints)
		assert.Equal(t, 4, tok.Length)
	})

	t.Run("universal character name is a lexical error", func(t *testing.T) {
		var sink testSink
		l := New("test.c", []byte("'\\u0041'"), nil, &sink)
		l.Next()
		require.Len(t, sink.errs, 1)
		assert.Contains(t, sink.errs[0].Message, "Universal character names")
	})

	t.Run("invalid escape", func(t *testing.T) {
		var sink testSink
		l := New("test.c", []byte(`'\q'`), nil, &sink)
		l.Next()
		require.Len(t, sink.errs, 1)
		assert.Equal(t, "Invalid escape sequence", sink.errs[0].Message)
	})
}

func TestStringLiterals(t *testing.T) {
	t.Run("simple", func(t *testing.T) {
		tok := lexOne(t, `"hello"`)
		require.Equal(t, token.StringLit, tok.Type)
		assert.Equal(t, []byte("hello"), tok.Str.Decoded)
	})

	t.Run("escaped quote inside body", func(t *testing.T) {
		tok := lexOne(t, `"a\"b"`)
		assert.Equal(t, []byte("a\"b"), tok.Str.Decoded)
	})

	t.Run("wide string literal", func(t *testing.T) {
		tok := lexOne(t, `L"hi"`)
		assert.True(t, tok.Str.Wide)
		assert.Equal(t, []byte("hi"), tok.Str.Decoded)
	})

	t.Run("universal character name in string is a lexical error", func(t *testing.T) {
		var sink testSink
		l := New("test.c", []byte(`"\U00010000"`), nil, &sink)
		l.Next()
		require.Len(t, sink.errs, 1)
		assert.Contains(t, sink.errs[0].Message, "Universal character names in string literals")
	})

	t.Run("unterminated string is a lexical error", func(t *testing.T) {
		var sink testSink
		l := New("test.c", []byte("\"abc"), nil, &sink)
		l.Next()
		require.Len(t, sink.errs, 1)
	})
}
