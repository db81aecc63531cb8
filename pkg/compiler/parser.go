package compiler

import (
	"io"

	"github.com/sirupsen/logrus"
)

// Parser reorders an infix token stream into postfix (RPN) order with the
// shunting-yard algorithm.
//
// Input is drained front to back. Pending operators, function names and open
// parentheses wait on an explicit stack, so nesting depth never grows the Go
// call stack. Output is append-only.
//
// Dispatch per token:
//
//	literal, binding, unknown name  -> output
//	known function                  -> stack
//	operator                        -> pop tighter (or equal, left-assoc) operators, then stack
//	","                             -> pop operators down to "(" or a function
//	"("                             -> stack
//	")"                             -> pop operators down to "(", drop it, then pop a waiting function
//
// A function name met by "," or ")" before its own "(" is an error.
type Parser struct {
	input  []Token
	stack  []Token
	output []Token

	syms         Classifier
	strictCommas bool
	log          logrus.FieldLogger
	trace        bool
}

// Option configures a Parser.
type Option func(*Parser)

// WithStrictCommas rejects commas that are not inside any parenthesis. By
// default such a comma just flushes the pending operators.
func WithStrictCommas() Option {
	return func(p *Parser) {
		p.strictCommas = true
	}
}

// WithLogger traces every step of the algorithm at debug level. The trace is
// only built when log has debug enabled at the time the Parser is created.
func WithLogger(log logrus.FieldLogger) Option {
	return func(p *Parser) {
		if log != nil {
			p.log = log
		}
	}
}

var discardLogger = func() *logrus.Logger {
	l := logrus.New()
	l.SetOutput(io.Discard)
	return l
}()

// debugEnabled reports whether log would keep a debug entry. Loggers other
// than logrus' own are assumed to want everything.
func debugEnabled(log logrus.FieldLogger) bool {
	switch l := log.(type) {
	case *logrus.Logger:
		return l.IsLevelEnabled(logrus.DebugLevel)
	case *logrus.Entry:
		return l.Logger.IsLevelEnabled(logrus.DebugLevel)
	}
	return true
}

// NewParser returns a Parser that will consume tokens when Run is called. A
// nil syms treats every identifier as a plain operand.
func NewParser(tokens []Token, syms Classifier, opts ...Option) *Parser {
	if syms == nil {
		syms = NewSymbolTable(nil, nil)
	}
	p := &Parser{
		input: tokens,
		syms:  syms,
		log:   discardLogger,
	}
	for _, opt := range opts {
		opt(p)
	}
	p.trace = debugEnabled(p.log)
	return p
}

func (p *Parser) top() Token {
	return p.stack[len(p.stack)-1]
}

func (p *Parser) push(tok Token) {
	p.stack = append(p.stack, tok)
}

func (p *Parser) pop() Token {
	tok := p.top()
	p.stack = p.stack[:len(p.stack)-1]
	return tok
}

func (p *Parser) emit(tok Token) {
	p.output = append(p.output, tok)
}

// isFunction reports whether tok names a known function.
func (p *Parser) isFunction(tok Token) bool {
	return tok.Type == IDENTIFIER && p.syms.IsFunction(tok.Lexeme)
}

// popOperators moves operators from the stack to the output until it hits
// something that is not an operator ("(" or a function) or runs empty.
func (p *Parser) popOperators() {
	for len(p.stack) > 0 && p.top().Type.IsOperator() {
		p.emit(p.pop())
	}
}

// pushOperator applies the precedence/associativity rule for op, then stacks
// it.
func (p *Parser) pushOperator(op Token) {
	prec, _ := op.Type.Precedence()
	assoc, _ := op.Type.Associativity()
	for len(p.stack) > 0 {
		top := p.top()
		if !top.Type.IsOperator() {
			break
		}
		topPrec, _ := top.Type.Precedence()
		if topPrec > prec || (topPrec == prec && assoc == AssocLeft) {
			p.emit(p.pop())
			continue
		}
		break
	}
	p.push(op)
}

// checkUncalled fails when popOperators stopped at a function name whose
// "(" never followed, as in "(a + max)".
func (p *Parser) checkUncalled() error {
	if len(p.stack) > 0 && p.isFunction(p.top()) {
		return &StructuralError{Tok: p.top(), Err: ErrUncalledFunction}
	}
	return nil
}

func (p *Parser) step(tok Token) error {
	switch tok.Type {
	case INTEGER, FLOAT, STRING, TRUE, FALSE, NULL:
		p.emit(tok)

	case IDENTIFIER:
		switch {
		case p.syms.IsBinding(tok.Lexeme):
			p.emit(tok)
		case p.syms.IsFunction(tok.Lexeme):
			p.push(tok)
		default:
			p.emit(tok)
		}

	case COMMA:
		p.popOperators()
		if err := p.checkUncalled(); err != nil {
			return err
		}
		if p.strictCommas && (len(p.stack) == 0 || p.top().Type != LPAREN) {
			return &StructuralError{Tok: tok, Err: ErrStrayComma}
		}

	case LPAREN:
		p.push(tok)

	case RPAREN:
		p.popOperators()
		if err := p.checkUncalled(); err != nil {
			return err
		}
		if len(p.stack) == 0 || p.top().Type != LPAREN {
			return &StructuralError{Tok: tok, Err: ErrMismatchedParens}
		}
		p.pop() // (
		if len(p.stack) > 0 && p.isFunction(p.top()) {
			p.emit(p.pop())
		}

	default:
		if !tok.Type.IsOperator() {
			return &InternalError{Tok: tok}
		}
		p.pushOperator(tok)
	}
	return nil
}

// Run drains the input and returns the postfix sequence. On error the
// output is discarded and nil is returned.
func (p *Parser) Run() ([]Token, error) {
	for len(p.input) > 0 {
		tok := p.input[0]
		p.input = p.input[1:]
		if err := p.step(tok); err != nil {
			p.fail(err)
			return nil, err
		}
		if p.trace {
			p.log.WithFields(logrus.Fields{
				"token":  tok.Lexeme,
				"stack":  FormatRPN(p.stack),
				"output": FormatRPN(p.output),
			}).Debug("shunt")
		}
	}

	for len(p.stack) > 0 {
		tok := p.pop()
		if tok.Type == LPAREN {
			err := &StructuralError{Tok: tok, Err: ErrMismatchedParens}
			p.fail(err)
			return nil, err
		}
		p.emit(tok)
	}
	if p.trace {
		p.log.WithField("output", FormatRPN(p.output)).Debug("drained")
	}
	return p.output, nil
}

func (p *Parser) fail(err error) {
	if p.trace {
		p.log.WithError(err).Debug("parse failed")
	}
	p.input, p.stack, p.output = nil, nil, nil
}

// Output returns the postfix sequence produced by the last successful Run.
func (p *Parser) Output() []Token {
	return p.output
}

// Parse reorders tokens into postfix order. syms decides which identifiers
// are functions and which are bindings; a nil syms treats every identifier
// as a plain operand.
func Parse(tokens []Token, syms Classifier, opts ...Option) ([]Token, error) {
	return NewParser(tokens, syms, opts...).Run()
}
