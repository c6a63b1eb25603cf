package lexer

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/clexlang/cclex/diag"
	"github.com/clexlang/cclex/token"
)

// testSink is a minimal diag.Sink that just records what it was given,
// for tests that need to assert on reported errors directly.
type testSink struct {
	errs []diag.Error
}

func (s *testSink) Report(e diag.Error) { s.errs = append(s.errs, e) }

func TestNextStopsAfterFatalError(t *testing.T) {
	var sink testSink
	l := New("test.c", []byte("0x \x01"), nil, &sink)
	first := l.Next()
	assert.Equal(t, token.EOF, first.Type)
	require.Len(t, sink.errs, 1)

	second := l.Next()
	assert.Equal(t, token.EOF, second.Type)
	assert.Len(t, sink.errs, 1, "no further diagnostics once lexing has stopped")
}

func TestRecentTrackstLastToken(t *testing.T) {
	l := New("test.c", []byte("foo bar"), nil, nil)
	_, ok := l.Recent()
	assert.False(t, ok)

	first := l.Next()
	recent, ok := l.Recent()
	require.True(t, ok)
	assert.Equal(t, first.Name.ID(), recent.Name.ID())

	l.Next()
	recent, _ = l.Recent()
	assert.Equal(t, "bar", recent.Name.String())
}

func TestLineDirectiveRebasesPositionNotCache(t *testing.T) {
	src := "foo\n#line 42 \"other.c\"\nbar\n"
	l := New("test.c", []byte(src), nil, nil)

	first := l.Next()
	assert.Equal(t, "test.c", first.Pos.File)
	assert.Equal(t, 1, first.Pos.Row)

	second := l.Next()
	assert.Equal(t, "other.c", second.Pos.File)
	assert.Equal(t, 42, second.Pos.Row)

	// The #line directive itself never reached the recent-token cache.
	recent, _ := l.Recent()
	assert.Equal(t, "bar", recent.Name.String())
}

func TestGccStyleLinemarkerWithoutLineWord(t *testing.T) {
	src := "foo\n# 7 \"hdr.h\" 1 2\nbar\n"
	l := New("test.c", []byte(src), nil, nil)
	l.Next()
	second := l.Next()
	assert.Equal(t, "hdr.h", second.Pos.File)
	assert.Equal(t, 7, second.Pos.Row)
}

func TestPragmaAndIdentDirectivesAreSkipped(t *testing.T) {
	src := "#pragma once\nfoo\n#ident \"rcs id\"\nbar\n"
	l := New("test.c", []byte(src), nil, nil)
	first := l.Next()
	assert.Equal(t, "foo", first.Name.String())
	second := l.Next()
	assert.Equal(t, "bar", second.Name.String())
}

func TestPunctuationMaximalMunch(t *testing.T) {
	cases := []struct {
		src  string
		want token.TokenType
	}{
		{"->", token.Arrow},
		{"++", token.Inc},
		{"--", token.Dec},
		{"<<=", token.ShlAssign},
		{">>=", token.ShrAssign},
		{"<=", token.Le},
		{">=", token.Ge},
		{"==", token.EqEq},
		{"!=", token.Ne},
		{"&&", token.AndAnd},
		{"||", token.OrOr},
		{"...", token.Ellipsis},
		{".", token.Dot},
		{"<<", token.Shl},
		{">>", token.Shr},
	}
	for _, c := range cases {
		t.Run(c.src, func(t *testing.T) {
			tok := lexOne(t, c.src+" x")
			assert.Equal(t, c.want, tok.Type)
			assert.Equal(t, len(c.src), tok.Length)
		})
	}
}

func TestUnrecognizedByteReportsCharacterDiagnostic(t *testing.T) {
	var sink testSink
	l := New("test.c", []byte("@"), nil, &sink)
	l.Next()
	require.Len(t, sink.errs, 1)
	assert.Contains(t, sink.errs[0].Message, "does not fit")
}

func TestNoTypedefsAlwaysReturnsFalse(t *testing.T) {
	assert.False(t, NoTypedefs(token.Name{}))
}
