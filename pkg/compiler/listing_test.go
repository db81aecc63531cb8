package compiler

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDump(t *testing.T) {
	tokens, err := Lex("x = 1.5 + \"s\"")
	require.NoError(t, err)

	var buf bytes.Buffer
	require.NoError(t, Dump(&buf, tokens))

	lines := strings.Split(strings.TrimSuffix(buf.String(), "\n"), "\n")
	require.Len(t, lines, len(tokens))
	assert.True(t, strings.HasPrefix(lines[0], "IDENTIFIER"), lines[0])
	assert.Contains(t, lines[0], `"x"`)
	assert.Contains(t, lines[0], "1:1-1:2")
	assert.True(t, strings.HasPrefix(lines[2], "FLOAT"), lines[2])
	assert.Contains(t, lines[2], "1.5")
	assert.Contains(t, lines[4], `"s"`)
}

func TestDump_Empty(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, Dump(&buf, nil))
	assert.Empty(t, buf.String())
}

func TestDumpTable(t *testing.T) {
	tokens, err := Lex("max(1)")
	require.NoError(t, err)

	var buf bytes.Buffer
	require.NoError(t, DumpTable(&buf, tokens))
	out := buf.String()

	for _, want := range []string{"Type", "Lexeme", "IDENTIFIER", "LPAREN", "INTEGER", "RPAREN", "1:4", "1:7"} {
		assert.Contains(t, out, want)
	}
}

func TestFormatRPN(t *testing.T) {
	tokens := []Token{
		{Type: STRING, Lexeme: "a b"},
		{Type: INTEGER, Lexeme: "2", Int: 2},
		{Type: STAR, Lexeme: "*"},
	}
	assert.Equal(t, `"a b" 2 *`, FormatRPN(tokens))
	assert.Equal(t, "", FormatRPN(nil))
}

func TestTokenString(t *testing.T) {
	assert.Equal(t, "SHL_ASSIGN", SHL_ASSIGN.String())
	assert.Equal(t, "TokenType(999)", TokenType(999).String())
	assert.Equal(t, "ILLEGAL", Token{}.Type.String())
	assert.Equal(t, "3:14", Location{Line: 3, Col: 14}.String())
}
