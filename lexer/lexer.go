// Package lexer implements the scanning stage of the cclex toolchain: it
// turns C11-plus-GNU-extensions source text into a stream of token.Token
// values, decoding numeric, character and string literals as it goes and
// classifying identifiers against a parser-supplied typedef predicate.
package lexer

import (
	"github.com/clexlang/cclex/diag"
	"github.com/clexlang/cclex/token"
)

// IsTypeIdentifier is consulted for every identifier the scanner produces
// that isn't an exact keyword spelling; it must answer whether name is
// currently in scope as a typedef name rather than an ordinary
// identifier. A parser maintains the scope and flips the answer as
// typedef declarations come into and go out of view.
type IsTypeIdentifier func(name token.Name) bool

// NoTypedefs is an IsTypeIdentifier that never recognizes a typedef
// name. It lets the lexer run standalone — for tooling that only needs
// a token stream and has no parser driving scope — at the cost of
// lexing every identifier, typedef'd or not, as Identifier.
func NoTypedefs(token.Name) bool { return false }

// Lexer holds the state of a single scan over one input: the cursor,
// the name interner, the typedef predicate, a diagnostic sink, and the
// most recently emitted token. It is not safe for concurrent use; run
// one Lexer per file, per goroutine.
type Lexer struct {
	cur       *cursor
	names     *token.Interner
	isType    IsTypeIdentifier
	sink      diag.Sink
	strictC11 bool

	recent     token.Token
	haveRecent bool
	errored    bool
}

// Option configures a Lexer at construction time.
type Option func(*Lexer)

// StrictC11 disables every GNU-only keyword spelling (the
// double-underscore alternates and the __attribute__-family markers):
// lexemes that would otherwise classify as one of those keywords lex as
// plain identifiers instead. It is driven by the CLI's gnu_extensions
// config setting.
func StrictC11() Option {
	return func(l *Lexer) { l.strictC11 = true }
}

// New creates a Lexer over src, attributed to file for diagnostics and
// positions. isType may be nil, in which case NoTypedefs is used. sink
// may be nil, in which case diagnostics are computed but discarded.
func New(file string, src []byte, isType IsTypeIdentifier, sink diag.Sink, opts ...Option) *Lexer {
	if isType == nil {
		isType = NoTypedefs
	}
	l := &Lexer{
		cur:    newCursor(file, src),
		names:  token.NewInterner(),
		isType: isType,
		sink:   sink,
	}
	for _, opt := range opts {
		opt(l)
	}
	return l
}

// Recent returns the most recently emitted token and whether Next has
// been called at least once. A parser's error reporter uses this to
// describe "near token X" without holding its own copy.
func (l *Lexer) Recent() (token.Token, bool) { return l.recent, l.haveRecent }

// Interner returns the Lexer's Name interner, so a caller can intern or
// look up names outside the scan loop (for example, to seed a typedef
// set before lexing begins).
func (l *Lexer) Interner() *token.Interner { return l.names }

// Next scans and returns the next token, or an EOF token once the input
// is exhausted. It is the only place the recent-token cache is updated;
// #line/#pragma/#ident lines are consumed internally by the scan loop
// without producing a token or touching the cache, so the invariant
// "Recent reflects the last real token" holds across directive lines.
//
// Lexical errors are fatal and unrecovered: once one has been reported
// to the sink, every subsequent call to Next returns EOF immediately
// without scanning further, since resynchronizing a mis-scanned C token
// stream reliably is not attempted.
func (l *Lexer) Next() token.Token {
	tok := l.lexOne()
	l.recent = tok
	l.haveRecent = true
	return tok
}

func (l *Lexer) lexOne() token.Token {
	if l.errored {
		return token.Token{Type: token.EOF, Pos: l.cur.pos}
	}
	for {
		l.skipWhitespace()
		if l.cur.empty() {
			return token.Token{Type: token.EOF, Pos: l.cur.pos}
		}
		if l.cur.peekByte() == '#' {
			l.cur.scanDirectiveLine()
			continue
		}
		return l.scanToken()
	}
}

func (l *Lexer) skipWhitespace() {
	for !l.cur.empty() {
		switch l.cur.peekByte() {
		case ' ', '\t', '\v', '\f', '\n', '\r':
			l.cur.advanceByte()
		default:
			return
		}
	}
}

// All runs a Lexer over src to completion and returns every token
// produced, including the trailing EOF. It is a convenience for callers
// that want the whole stream at once rather than driving Next in a loop.
func All(file string, src []byte, isType IsTypeIdentifier, sink diag.Sink, opts ...Option) []token.Token {
	l := New(file, src, isType, sink, opts...)
	var toks []token.Token
	for {
		tok := l.Next()
		toks = append(toks, tok)
		if tok.Type == token.EOF {
			return toks
		}
	}
}

func (l *Lexer) error(pos token.Position, msg string) {
	l.errored = true
	if l.sink != nil {
		l.sink.Report(diag.Error{Pos: pos, Message: msg})
	}
}
