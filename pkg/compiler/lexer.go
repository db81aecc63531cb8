package compiler

import (
	"fmt"
	"strconv"
)

// escapes maps the character after a backslash inside a string literal to
// the character it stands for.
var escapes = map[rune]rune{
	'0':  0,
	'n':  '\n',
	'r':  '\r',
	't':  '\t',
	'\\': '\\',
	'"':  '"',
}

// Lexer holds all mutable state for a single scanning pass over src.
//
// Two cursors are kept: start marks the first rune of the lexeme being
// recognised, pos is the next rune to consume. Each carries its Location so
// tokens can be stamped without rescanning.
type Lexer struct {
	src []rune

	start    int
	startLoc Location

	pos int
	loc Location

	tokens []Token
}

// NewLexer returns a Lexer positioned at the beginning of src.
func NewLexer(src string) *Lexer {
	return &Lexer{
		src:      []rune(src),
		startLoc: Location{Line: 1, Col: 1},
		loc:      Location{Line: 1, Col: 1},
	}
}

func (l *Lexer) atEnd() bool {
	return l.pos >= len(l.src)
}

// peek returns the rune at the current position without advancing.
func (l *Lexer) peek() rune {
	if l.atEnd() {
		return 0
	}
	return l.src[l.pos]
}

// peek2 returns the rune one position ahead of the current position.
func (l *Lexer) peek2() rune {
	if l.pos+1 >= len(l.src) {
		return 0
	}
	return l.src[l.pos+1]
}

// advance consumes one rune and returns it, keeping the line/column in step.
func (l *Lexer) advance() rune {
	if l.atEnd() {
		return 0
	}
	r := l.src[l.pos]
	l.pos++
	if r == '\n' {
		l.loc.Line++
		l.loc.Col = 1
	} else {
		l.loc.Col++
	}
	return r
}

// match consumes the next rune only if it equals expected.
func (l *Lexer) match(expected rune) bool {
	if l.atEnd() || l.src[l.pos] != expected {
		return false
	}
	l.advance()
	return true
}

func (l *Lexer) lexeme() string {
	return string(l.src[l.start:l.pos])
}

func (l *Lexer) add(tok Token) {
	tok.Start = l.startLoc
	tok.End = l.loc
	l.tokens = append(l.tokens, tok)
}

func (l *Lexer) emit(tt TokenType) {
	l.add(Token{Type: tt, Lexeme: l.lexeme()})
}

// emitIf emits long if the next rune is next, otherwise short.
func (l *Lexer) emitIf(next rune, long, short TokenType) {
	if l.match(next) {
		l.emit(long)
		return
	}
	l.emit(short)
}

func (l *Lexer) errorf(loc Location, format string, args ...any) error {
	return &LexicalError{Loc: loc, Msg: fmt.Sprintf(format, args...)}
}

// Scan tokenises the whole source. On error no tokens are returned.
func (l *Lexer) Scan() ([]Token, error) {
	l.pos, l.loc = 0, Location{Line: 1, Col: 1}
	l.tokens = nil
	for !l.atEnd() {
		l.start, l.startLoc = l.pos, l.loc
		if err := l.scanToken(); err != nil {
			l.tokens = nil
			return nil, err
		}
	}
	return l.tokens, nil
}

// Tokens returns the tokens produced by the last successful Scan.
func (l *Lexer) Tokens() []Token {
	return l.tokens
}

func (l *Lexer) scanToken() error {
	c := l.advance()
	switch c {
	case '(':
		l.emit(LPAREN)
	case ')':
		l.emit(RPAREN)
	case '{':
		l.emit(LBRACE)
	case '}':
		l.emit(RBRACE)
	case ',':
		l.emit(COMMA)
	case '.':
		l.emit(DOT)
	case ';':
		l.emit(SEMICOLON)
	case '~':
		l.emit(TILDE)
	case ':':
		l.emitIf(':', COLON_COLON, COLON)

	case '+':
		l.emitIf('=', PLUS_ASSIGN, PLUS)
	case '-':
		l.emitIf('=', MINUS_ASSIGN, MINUS)
	case '*':
		l.emitIf('=', STAR_ASSIGN, STAR)
	case '%':
		l.emitIf('=', PERCENT_ASSIGN, PERCENT)
	case '=':
		l.emitIf('=', EQUALS, ASSIGN)
	case '!':
		l.emitIf('=', NOT_EQ, NOT)
	case '^':
		l.emitIf('=', CARET_ASSIGN, CARET)
	case '<':
		if l.match('<') {
			l.emitIf('=', SHL_ASSIGN, SHL_OP)
		} else {
			l.emitIf('=', LESS_EQ, LESS)
		}
	case '>':
		if l.match('>') {
			l.emitIf('=', SHR_ASSIGN, SHR_OP)
		} else {
			l.emitIf('=', GREATER_EQ, GREATER)
		}
	case '&':
		if l.match('&') {
			l.emit(AND_LOGICAL)
		} else {
			l.emitIf('=', AND_ASSIGN, AND)
		}
	case '|':
		if l.match('|') {
			l.emit(OR_LOGICAL)
		} else {
			l.emitIf('=', PIPE_ASSIGN, PIPE)
		}
	case '/':
		if l.match('/') {
			l.skipLineComment()
		} else {
			l.emitIf('=', SLASH_ASSIGN, SLASH)
		}

	case '"':
		return l.scanString()
	case ' ', '\r', '\t', '\n':
		// whitespace; advance already tracked the newline
	default:
		if isDigit(c) {
			return l.scanNumber()
		}
		if isAlpha(c) {
			l.scanIdent()
			return nil
		}
		return l.errorf(l.startLoc, "unexpected character %q", c)
	}
	return nil
}

// skipLineComment discards everything up to, but not including, the next
// newline. The opening "//" must already have been consumed.
func (l *Lexer) skipLineComment() {
	for !l.atEnd() && l.peek() != '\n' {
		l.advance()
	}
}

// scanString collects a string literal. The opening quote has been consumed;
// the token carries the decoded text.
func (l *Lexer) scanString() error {
	var val []rune
	for !l.atEnd() && l.peek() != '"' {
		c := l.advance()
		if c != '\\' {
			val = append(val, c)
			continue
		}
		if l.atEnd() {
			break
		}
		esc, ok := escapes[l.peek()]
		if !ok {
			return l.errorf(l.loc, "invalid escape sequence \\%c", l.peek())
		}
		val = append(val, esc)
		l.advance()
	}

	if l.atEnd() {
		return l.errorf(l.loc, "unterminated string")
	}
	l.advance() // closing "

	l.add(Token{Type: STRING, Lexeme: string(val)})
	return nil
}

// scanNumber collects a decimal integer, or a decimal with a fractional part
// when a '.' is directly followed by a digit. The first digit has been
// consumed.
func (l *Lexer) scanNumber() error {
	for isDigit(l.peek()) {
		l.advance()
	}

	if l.peek() == '.' && isDigit(l.peek2()) {
		l.advance() // .
		for isDigit(l.peek()) {
			l.advance()
		}
		text := l.lexeme()
		f, err := strconv.ParseFloat(text, 64)
		if err != nil {
			return &LexicalError{Loc: l.startLoc, Msg: "malformed float literal", Err: err}
		}
		l.add(Token{Type: FLOAT, Lexeme: text, Float: f})
		return nil
	}

	text := l.lexeme()
	n, err := strconv.ParseInt(text, 10, 64)
	if err != nil {
		return &LexicalError{Loc: l.startLoc, Msg: "malformed integer literal", Err: err}
	}
	l.add(Token{Type: INTEGER, Lexeme: text, Int: n})
	return nil
}

// scanIdent collects an identifier or keyword. The first character has been
// consumed.
func (l *Lexer) scanIdent() {
	for isAlpha(l.peek()) || isDigit(l.peek()) {
		l.advance()
	}
	text := l.lexeme()
	tt := IDENTIFIER
	if kw, ok := LookupKeyword(text); ok {
		tt = kw
	}
	l.add(Token{Type: tt, Lexeme: text})
}

func isDigit(r rune) bool {
	return r >= '0' && r <= '9'
}

func isAlpha(r rune) bool {
	return (r >= 'a' && r <= 'z') || (r >= 'A' && r <= 'Z') || r == '_'
}

// Lex tokenises src. It returns a non-nil error, and no tokens, on the first
// illegal character, bad string literal or out-of-range number.
func Lex(src string) ([]Token, error) {
	return NewLexer(src).Scan()
}
