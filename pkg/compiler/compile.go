package compiler

import (
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
)

// Translate lexes src and reorders the result into postfix order. Errors are
// prefixed with the failing stage; the typed error stays reachable through
// errors.As.
func Translate(src string, syms Classifier, opts ...Option) ([]Token, error) {
	tokens, err := Lex(src)
	if err != nil {
		return nil, errors.Wrap(err, "lex")
	}

	p := NewParser(tokens, syms, opts...)
	if p.trace {
		p.log.WithFields(logrus.Fields{"tokens": len(tokens)}).Debug("lexed")
	}

	rpn, err := p.Run()
	if err != nil {
		return nil, errors.Wrap(err, "parse")
	}
	return rpn, nil
}
