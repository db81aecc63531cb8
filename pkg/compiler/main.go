// Package compiler provides the expression front end: a lexer and a
// shunting-yard parser that turns infix expressions into postfix (RPN) token
// sequences for a later evaluation or code generation stage.
//
// Pipeline: source → Lex → Parse → postfix []Token
package compiler
