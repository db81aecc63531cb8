package compiler

import (
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSnippet_LexicalError(t *testing.T) {
	src := "x + @"
	_, err := Lex(src)
	require.Error(t, err)

	expected := "line 1:5: unexpected character '@' at 1:5\n" +
		"  |> x + @\n" +
		"  |>     ^"
	assert.Equal(t, expected, Snippet(err, src))
}

func TestSnippet_WrappedStructuralError(t *testing.T) {
	src := "a +\n\t)"
	_, err := Translate(src, nil)
	require.Error(t, err)

	expected := "line 2:2: mismatched parentheses at 2:2\n" +
		"  |> \t)\n" +
		"  |> \t^"
	assert.Equal(t, expected, Snippet(err, src))
}

func TestSnippet_InternalError(t *testing.T) {
	src := "1 + if"
	_, err := Translate(src, nil)
	require.Error(t, err)

	snippet := Snippet(err, src)
	assert.Contains(t, snippet, `unhandled IF token "if" at 1:5`)
	assert.Contains(t, snippet, "  |>     ^")
}

func TestSnippet_NoLocation(t *testing.T) {
	assert.Equal(t, "boom", Snippet(errors.New("boom"), "x"))
	assert.Equal(t, "", Snippet(nil, "x"))
}

func TestSnippet_SourceMismatch(t *testing.T) {
	err := &LexicalError{Loc: Location{Line: 9, Col: 1}, Msg: "unexpected character 'x'"}
	assert.Equal(t, "line 9:1: unexpected character 'x' at 9:1\n  |> <source unavailable>", Snippet(err, "one line"))
}

func TestErrorMessages(t *testing.T) {
	structErr := &StructuralError{Tok: Token{Type: RPAREN, Lexeme: ")", Start: Location{2, 3}}, Err: ErrMismatchedParens}
	assert.Equal(t, "mismatched parentheses at 2:3", structErr.Error())
	assert.True(t, errors.Is(structErr, ErrMismatchedParens))

	internalErr := &InternalError{Tok: Token{Type: DOT, Lexeme: ".", Start: Location{1, 2}}}
	assert.Equal(t, `unhandled DOT token "." at 1:2`, internalErr.Error())

	lexErr := &LexicalError{Loc: Location{1, 1}, Msg: "unterminated string"}
	assert.Equal(t, "unterminated string at 1:1", lexErr.Error())
	assert.Nil(t, lexErr.Unwrap())
}
