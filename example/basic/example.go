// Package example demonstrates driving the lexer with no parser
// attached, using lexer.NoTypedefs as the typedef predicate.
package example

import (
	"github.com/clexlang/cclex/lexer"
	"github.com/clexlang/cclex/token"
)

// Source is a small fragment lexed at package init, below.
const Source = `
typedef struct point { int x, y; } point_t;

point_t origin = { .x = 0, .y = 0 };
`

// Tokens is the full token stream for Source. Because NoTypedefs never
// answers yes, point_t lexes as Identifier here even though a real
// parser, tracking the preceding typedef, would classify it TypeIdent.
var Tokens = lexer.All("example.c", []byte(Source), lexer.NoTypedefs, nil)

// CountByType tallies how many tokens of each TokenType occur in Tokens.
func CountByType() map[token.TokenType]int {
	counts := make(map[token.TokenType]int)
	for _, tok := range Tokens {
		counts[tok.Type]++
	}
	return counts
}
