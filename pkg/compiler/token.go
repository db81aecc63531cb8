package compiler

import "fmt"

// TokenType identifies the category of a lexed token.
type TokenType int

const (
	ILLEGAL TokenType = iota // zero value; never produced by the lexer

	// Literals
	IDENTIFIER // variable / function name
	INTEGER    // decimal integer literal
	FLOAT      // decimal literal with a fractional part
	STRING     // string literal "..."

	// Keywords
	STRUCT // "struct"
	ENUM   // "enum"
	TRAIT  // "trait"
	IMPL   // "impl"
	FN     // "fn"
	LET    // "let"
	MUT    // "mut"
	IF     // "if"
	ELSE   // "else"
	WHILE  // "while"
	FOR    // "for"
	IN     // "in"
	RETURN // "return"
	YIELD  // "yield"
	BREAK  // "break"
	TRUE   // "true"
	FALSE  // "false"
	NULL   // "null"

	// Paired delimiters
	LPAREN // (
	RPAREN // )
	LBRACE // {
	RBRACE // }

	// Punctuation
	COMMA       // ,
	DOT         // .
	COLON       // :
	COLON_COLON // ::
	SEMICOLON   // ;

	// Arithmetic operators
	PLUS    // +
	MINUS   // -
	STAR    // *
	SLASH   // /
	PERCENT // %

	// Logical / bitwise operators
	NOT         // !
	TILDE       // ~
	AND_LOGICAL // &&
	AND         // &
	OR_LOGICAL  // ||
	PIPE        // |
	CARET       // ^
	SHL_OP      // <<
	SHR_OP      // >>

	// Assignment
	ASSIGN         // =
	PLUS_ASSIGN    // +=
	MINUS_ASSIGN   // -=
	STAR_ASSIGN    // *=
	SLASH_ASSIGN   // /=
	PERCENT_ASSIGN // %=
	AND_ASSIGN     // &=
	PIPE_ASSIGN    // |=
	CARET_ASSIGN   // ^=
	SHL_ASSIGN     // <<=
	SHR_ASSIGN     // >>=

	// Comparison
	EQUALS     // ==
	NOT_EQ     // !=
	GREATER    // >
	GREATER_EQ // >=
	LESS       // <
	LESS_EQ    // <=

	numTokenTypes
)

// tokenNames is indexed by TokenType; the array length check below keeps it
// in step with the constant block.
var tokenNames = [...]string{
	ILLEGAL:        "ILLEGAL",
	IDENTIFIER:     "IDENTIFIER",
	INTEGER:        "INTEGER",
	FLOAT:          "FLOAT",
	STRING:         "STRING",
	STRUCT:         "STRUCT",
	ENUM:           "ENUM",
	TRAIT:          "TRAIT",
	IMPL:           "IMPL",
	FN:             "FN",
	LET:            "LET",
	MUT:            "MUT",
	IF:             "IF",
	ELSE:           "ELSE",
	WHILE:          "WHILE",
	FOR:            "FOR",
	IN:             "IN",
	RETURN:         "RETURN",
	YIELD:          "YIELD",
	BREAK:          "BREAK",
	TRUE:           "TRUE",
	FALSE:          "FALSE",
	NULL:           "NULL",
	LPAREN:         "LPAREN",
	RPAREN:         "RPAREN",
	LBRACE:         "LBRACE",
	RBRACE:         "RBRACE",
	COMMA:          "COMMA",
	DOT:            "DOT",
	COLON:          "COLON",
	COLON_COLON:    "COLON_COLON",
	SEMICOLON:      "SEMICOLON",
	PLUS:           "PLUS",
	MINUS:          "MINUS",
	STAR:           "STAR",
	SLASH:          "SLASH",
	PERCENT:        "PERCENT",
	NOT:            "NOT",
	TILDE:          "TILDE",
	AND_LOGICAL:    "AND_LOGICAL",
	AND:            "AND",
	OR_LOGICAL:     "OR_LOGICAL",
	PIPE:           "PIPE",
	CARET:          "CARET",
	SHL_OP:         "SHL_OP",
	SHR_OP:         "SHR_OP",
	ASSIGN:         "ASSIGN",
	PLUS_ASSIGN:    "PLUS_ASSIGN",
	MINUS_ASSIGN:   "MINUS_ASSIGN",
	STAR_ASSIGN:    "STAR_ASSIGN",
	SLASH_ASSIGN:   "SLASH_ASSIGN",
	PERCENT_ASSIGN: "PERCENT_ASSIGN",
	AND_ASSIGN:     "AND_ASSIGN",
	PIPE_ASSIGN:    "PIPE_ASSIGN",
	CARET_ASSIGN:   "CARET_ASSIGN",
	SHL_ASSIGN:     "SHL_ASSIGN",
	SHR_ASSIGN:     "SHR_ASSIGN",
	EQUALS:         "EQUALS",
	NOT_EQ:         "NOT_EQ",
	GREATER:        "GREATER",
	GREATER_EQ:     "GREATER_EQ",
	LESS:           "LESS",
	LESS_EQ:        "LESS_EQ",
}

// Fails to compile if a TokenType is added without a name.
var _ [len(tokenNames) - int(numTokenTypes)]struct{}
var _ [int(numTokenTypes) - len(tokenNames)]struct{}

func (tt TokenType) String() string {
	if int(tt) >= 0 && int(tt) < len(tokenNames) {
		return tokenNames[tt]
	}
	return fmt.Sprintf("TokenType(%d)", int(tt))
}

// IsLiteral reports whether tokens of this type carry a decoded payload.
func (tt TokenType) IsLiteral() bool {
	return tt >= IDENTIFIER && tt <= STRING
}

// IsKeyword reports whether tt is one of the reserved words.
func (tt TokenType) IsKeyword() bool {
	return tt >= STRUCT && tt <= NULL
}

// keywords maps source text to its keyword TokenType. It is filled in at
// package init and only read afterwards.
var keywords = map[string]TokenType{
	"struct": STRUCT,
	"enum":   ENUM,
	"trait":  TRAIT,
	"impl":   IMPL,
	"fn":     FN,
	"let":    LET,
	"mut":    MUT,
	"if":     IF,
	"else":   ELSE,
	"while":  WHILE,
	"for":    FOR,
	"in":     IN,
	"return": RETURN,
	"yield":  YIELD,
	"break":  BREAK,
	"true":   TRUE,
	"false":  FALSE,
	"null":   NULL,
}

// LookupKeyword returns the keyword type for text, if text is reserved.
func LookupKeyword(text string) (TokenType, bool) {
	tt, ok := keywords[text]
	return tt, ok
}

// Location is a 1-based line/column position in the source.
type Location struct {
	Line int
	Col  int
}

func (l Location) String() string {
	return fmt.Sprintf("%d:%d", l.Line, l.Col)
}

// Token is a single lexical unit produced by the Lexer.
//
// Lexeme holds the identifier text, the decoded contents of a string literal,
// or the matched source text for every other type. Int and Float carry the
// numeric payload of INTEGER and FLOAT tokens. End is exclusive: it is the
// position immediately after the last consumed character.
type Token struct {
	Type   TokenType
	Lexeme string
	Int    int64
	Float  float64
	Start  Location
	End    Location
}

func (t Token) String() string {
	switch t.Type {
	case INTEGER:
		return fmt.Sprintf("%-14s %-16d %s-%s", t.Type, t.Int, t.Start, t.End)
	case FLOAT:
		return fmt.Sprintf("%-14s %-16g %s-%s", t.Type, t.Float, t.Start, t.End)
	default:
		return fmt.Sprintf("%-14s %-16q %s-%s", t.Type, t.Lexeme, t.Start, t.End)
	}
}
