package compiler

import (
	"fmt"
	"strings"

	"github.com/pkg/errors"
)

var (
	// ErrMismatchedParens is reported for a ")" with nothing open and for a
	// "(" that is never closed.
	ErrMismatchedParens = errors.New("mismatched parentheses")

	// ErrStrayComma is reported in strict-comma mode for a comma with no
	// enclosing parenthesis.
	ErrStrayComma = errors.New("comma outside an argument list")

	// ErrUncalledFunction is reported when a known function name is closed
	// off by "," or ")" without an argument list of its own.
	ErrUncalledFunction = errors.New("function name not followed by an argument list")
)

// LexicalError is returned by the lexer for the first character sequence it
// cannot turn into a token. Err holds the underlying cause, if any.
type LexicalError struct {
	Loc Location
	Msg string
	Err error
}

func (e *LexicalError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s at %s: %v", e.Msg, e.Loc, e.Err)
	}
	return fmt.Sprintf("%s at %s", e.Msg, e.Loc)
}

func (e *LexicalError) Unwrap() error { return e.Err }

// StructuralError is returned by the parser when the grouping of the input is
// broken. Tok is the token at which the problem was detected.
type StructuralError struct {
	Tok Token
	Err error
}

func (e *StructuralError) Error() string {
	return fmt.Sprintf("%v at %s", e.Err, e.Tok.Start)
}

func (e *StructuralError) Unwrap() error { return e.Err }

// InternalError is returned when a token reaches the parser that has no
// meaning inside an expression.
type InternalError struct {
	Tok Token
}

func (e *InternalError) Error() string {
	return fmt.Sprintf("unhandled %s token %q at %s", e.Tok.Type, e.Tok.Lexeme, e.Tok.Start)
}

// errorLocation extracts the source position from any error produced by this
// package, including wrapped ones.
func errorLocation(err error) (Location, string, bool) {
	var lexErr *LexicalError
	if errors.As(err, &lexErr) {
		return lexErr.Loc, lexErr.Error(), true
	}
	var structErr *StructuralError
	if errors.As(err, &structErr) {
		return structErr.Tok.Start, structErr.Error(), true
	}
	var internalErr *InternalError
	if errors.As(err, &internalErr) {
		return internalErr.Tok.Start, internalErr.Error(), true
	}
	return Location{}, "", false
}

// Snippet renders err with the source line it points at and a caret under
// the offending column:
//
//	line 1:6: unexpected character '@' at 1:6
//	  |> x + (@)
//	  |>      ^
//
// Errors without a location are returned as their plain message.
func Snippet(err error, src string) string {
	if err == nil {
		return ""
	}
	loc, msg, ok := errorLocation(err)
	if !ok {
		return err.Error()
	}

	lines := strings.Split(src, "\n")
	lineIdx := loc.Line - 1
	if lineIdx < 0 || lineIdx >= len(lines) {
		return fmt.Sprintf("line %s: %s\n  |> <source unavailable>", loc, msg)
	}
	line := []rune(strings.TrimRight(lines[lineIdx], "\r"))

	// Keep tabs so the caret lines up under the same column.
	var pad strings.Builder
	for i := 0; i < loc.Col-1; i++ {
		if i < len(line) && line[i] == '\t' {
			pad.WriteByte('\t')
		} else {
			pad.WriteByte(' ')
		}
	}
	return fmt.Sprintf("line %s: %s\n  |> %s\n  |> %s^", loc, msg, string(line), pad.String())
}
