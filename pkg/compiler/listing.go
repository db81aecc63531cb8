package compiler

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/olekukonko/tablewriter"
)

// Dump writes one line per token. The format is for people, not programs.
func Dump(w io.Writer, tokens []Token) error {
	for _, tok := range tokens {
		if _, err := fmt.Fprintln(w, tok); err != nil {
			return err
		}
	}
	return nil
}

// DumpTable writes tokens as an aligned table. tablewriter reports no write
// errors, so the returned error is always nil; it matches Dump's signature.
func DumpTable(w io.Writer, tokens []Token) error {
	table := tablewriter.NewWriter(w)
	table.SetAutoFormatHeaders(false)
	table.SetHeader([]string{"#", "Type", "Lexeme", "Start", "End"})
	for i, tok := range tokens {
		table.Append([]string{
			strconv.Itoa(i),
			tok.Type.String(),
			displayLexeme(tok),
			tok.Start.String(),
			tok.End.String(),
		})
	}
	table.Render()
	return nil
}

// FormatRPN joins the lexemes of tokens with single spaces, e.g. "3 4 2 * +".
// String literals are quoted.
func FormatRPN(tokens []Token) string {
	parts := make([]string, len(tokens))
	for i, tok := range tokens {
		parts[i] = displayLexeme(tok)
	}
	return strings.Join(parts, " ")
}

func displayLexeme(tok Token) string {
	if tok.Type == STRING {
		return strconv.Quote(tok.Lexeme)
	}
	return tok.Lexeme
}
