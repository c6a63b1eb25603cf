package example

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/clexlang/cclex/token"
)

func TestTokensIncludeTypedefKeyword(t *testing.T) {
	counts := CountByType()
	assert.Greater(t, counts[token.Typedef], 0)
}

func TestPointTLexesAsPlainIdentifierUnderNoTypedefs(t *testing.T) {
	for _, tok := range Tokens {
		if tok.Type == token.Identifier && tok.Name.String() == "point_t" {
			return
		}
	}
	t.Fatal("expected point_t to lex as Identifier under NoTypedefs")
}

func TestTokensEndInEOF(t *testing.T) {
	assert.Equal(t, token.EOF, Tokens[len(Tokens)-1].Type)
}
