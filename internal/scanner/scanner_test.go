package scanner

import (
	"testing"

	pyloxerrors "github.com/BaLiKfromUA/pylox/internal/errors"
	"github.com/BaLiKfromUA/pylox/internal/token"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func scanAll(t *testing.T, src string) ([]token.Token, *pyloxerrors.Collector) {
	t.Helper()
	c := &pyloxerrors.Collector{}
	toks := New(src, c).ScanTokens()
	return toks, c
}

func kinds(toks []token.Token) []token.Kind {
	out := make([]token.Kind, len(toks))
	for i, tok := range toks {
		out[i] = tok.Kind
	}
	return out
}

func TestScanTokens_Punctuation(t *testing.T) {
	toks, c := scanAll(t, "(){},.-+;*!=<=>=!")
	require.False(t, c.HadError())
	assert.Equal(t, []token.Kind{
		token.LEFT_PAREN, token.RIGHT_PAREN, token.LEFT_BRACE, token.RIGHT_BRACE,
		token.COMMA, token.DOT, token.MINUS, token.PLUS, token.SEMICOLON, token.STAR,
		token.BANG_EQUAL, token.LESS_EQUAL, token.GREATER_EQUAL, token.BANG, token.EOF,
	}, kinds(toks))
}

func TestScanTokens_KeywordsAndIdentifiers(t *testing.T) {
	toks, c := scanAll(t, "class fun var orchid")
	require.False(t, c.HadError())
	assert.Equal(t, []token.Kind{token.CLASS, token.FUN, token.VAR, token.IDENTIFIER, token.EOF}, kinds(toks))
	assert.Equal(t, "orchid", toks[3].Lexeme)
}

func TestScanTokens_NumberLiteral(t *testing.T) {
	toks, c := scanAll(t, "3.14;")
	require.False(t, c.HadError())
	require.Len(t, toks, 3)
	assert.Equal(t, 3.14, toks[0].Literal)
}

func TestScanTokens_StringLiteral(t *testing.T) {
	toks, c := scanAll(t, `"hello\nworld"`)
	require.False(t, c.HadError())
	require.Len(t, toks, 2)
	assert.Equal(t, `hello\nworld`, toks[0].Literal)
}

func TestScanTokens_UnterminatedString(t *testing.T) {
	_, c := scanAll(t, `"unterminated`)
	require.True(t, c.HadError())
	assert.Contains(t, c.Errors[0].Error(), "Unterminated string.")
}

func TestScanTokens_LineComment(t *testing.T) {
	toks, c := scanAll(t, "var x; // a comment\nvar y;")
	require.False(t, c.HadError())
	assert.Equal(t, []token.Kind{
		token.VAR, token.IDENTIFIER, token.SEMICOLON,
		token.VAR, token.IDENTIFIER, token.SEMICOLON, token.EOF,
	}, kinds(toks))
}

func TestScanTokens_NestedBlockComment(t *testing.T) {
	toks, c := scanAll(t, "/* outer /* inner */ still outer */ var x;")
	require.False(t, c.HadError())
	assert.Equal(t, []token.Kind{token.VAR, token.IDENTIFIER, token.SEMICOLON, token.EOF}, kinds(toks))
}

func TestScanTokens_UnexpectedCharacter(t *testing.T) {
	_, c := scanAll(t, "@")
	require.True(t, c.HadError())
	var syn *pyloxerrors.SyntaxError
	require.ErrorAs(t, c.Errors[0], &syn)
	assert.Equal(t, 1, syn.Line)
}

func TestScanTokens_LineTracking(t *testing.T) {
	toks, c := scanAll(t, "var x;\n\nvar y;")
	require.False(t, c.HadError())
	// the second `var` sits on line 3
	var secondVarLine int
	seen := 0
	for _, tok := range toks {
		if tok.Kind == token.VAR {
			seen++
			if seen == 2 {
				secondVarLine = tok.Line
			}
		}
	}
	assert.Equal(t, 3, secondVarLine)
}
