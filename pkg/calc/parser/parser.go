/*
 * Copyright (c) 2023, Dana Burkart <dana.burkart@gmail.com>
 *
 * SPDX-License-Identifier: BSD-2-Clause
 */

package parser

import (
	"errors"
	"fmt"
	"strconv"

	"github.com/dburkart/reckon/pkg/calc/ast"
	"github.com/dburkart/reckon/pkg/calc/scanner"
	"github.com/dburkart/reckon/pkg/calc/token"
)

// ParseError reports a token the grammar did not allow. Lexical failures
// hit while parsing are carried as Cause.
type ParseError struct {
	Message string
	Pos     int
	Cause   error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("%s at %d", e.Message, e.Pos)
}

func (e *ParseError) Unwrap() error {
	return e.Cause
}

func newParseError(t token.Token, format string, args ...any) *ParseError {
	return &ParseError{Message: fmt.Sprintf(format, args...), Pos: t.Pos}
}

func fromLexError(err error) *ParseError {
	var lexErr *scanner.LexError
	if !errors.As(err, &lexErr) {
		return &ParseError{Message: err.Error(), Cause: err}
	}

	what := fmt.Sprintf("unexpected character '%c'", lexErr.Char)
	if lexErr.Char == 0 {
		what = "unexpected end of input"
	}

	return &ParseError{Message: "syntax error: " + what, Pos: lexErr.Pos, Cause: lexErr}
}

type Parser struct {
	Scanner *scanner.Scanner
	current token.Token
}

// New primes the parser with the first token of s.
func New(s *scanner.Scanner) (*Parser, error) {
	p := &Parser{Scanner: s}

	t, err := s.NextToken()
	if err != nil {
		return nil, fromLexError(err)
	}
	p.current = t

	return p, nil
}

// Parse returns the tree for the expression at the start of the input.
// Tokens following a complete expression are left unread.
func (p *Parser) Parse() (ast.Node, error) {
	return p.expr()
}

// ParseAll is Parse, but fails unless the expression spans all of the input.
func (p *Parser) ParseAll() (ast.Node, error) {
	node, err := p.expr()
	if err != nil {
		return nil, err
	}

	if p.current.Kind != token.TOK_EOF {
		return nil, newParseError(p.current, "unexpected %s '%s' after expression", p.current.Kind, p.current.Text)
	}

	return node, nil
}

// eat consumes the current token if it is of kind expect, and returns it.
func (p *Parser) eat(expect token.TokenKind) (token.Token, error) {
	if p.current.Kind != expect {
		return token.Token{}, newParseError(p.current, "expected %s, found %s", expect, p.current.Kind)
	}

	next, err := p.Scanner.NextToken()
	if err != nil {
		return token.Token{}, fromLexError(err)
	}

	t := p.current
	p.current = next
	return t, nil
}

// expr returns a BinaryOpNode, or the result of term
//
// Grammar:
//
//	expr            = term *( ( "+" / "-" ) term )
func (p *Parser) expr() (ast.Node, error) {
	left, err := p.term()
	if err != nil {
		return nil, err
	}

	for p.current.Kind == token.TOK_PLUS || p.current.Kind == token.TOK_MINUS {
		op, err := p.eat(p.current.Kind)
		if err != nil {
			return nil, err
		}

		right, err := p.term()
		if err != nil {
			return nil, err
		}

		left = ast.MakeBinaryOpNode(left, op, right)
	}

	return left, nil
}

// term returns a BinaryOpNode, or the result of unary. All of the operators
// below share one precedence level and associate to the left.
//
// Grammar:
//
//	term            = unary *( ( "*" / "/" / "//" / "**" / "%" ) unary )
func (p *Parser) term() (ast.Node, error) {
	left, err := p.unary()
	if err != nil {
		return nil, err
	}

	for isTermOperator(p.current.Kind) {
		op, err := p.eat(p.current.Kind)
		if err != nil {
			return nil, err
		}

		right, err := p.unary()
		if err != nil {
			return nil, err
		}

		left = ast.MakeBinaryOpNode(left, op, right)
	}

	return left, nil
}

// unary returns a UnaryOpNode, a parenthesized expression, or a number
//
// Grammar:
//
//	unary           = ( ( "+" / "-" ) unary ) / ( "(" expr ")" ) / number
func (p *Parser) unary() (ast.Node, error) {
	switch p.current.Kind {
	case token.TOK_PLUS, token.TOK_MINUS:
		op, err := p.eat(p.current.Kind)
		if err != nil {
			return nil, err
		}

		operand, err := p.unary()
		if err != nil {
			return nil, err
		}

		return ast.MakeUnaryOpNode(op, operand), nil

	case token.TOK_PAREN_L:
		if _, err := p.eat(token.TOK_PAREN_L); err != nil {
			return nil, err
		}

		node, err := p.expr()
		if err != nil {
			return nil, err
		}

		if _, err := p.eat(token.TOK_PAREN_R); err != nil {
			return nil, err
		}

		return node, nil

	case token.TOK_INTEGER, token.TOK_FLOAT:
		return p.number()
	}

	return nil, newParseError(p.current, "unexpected %s, expected a number or '('", p.current.Kind)
}

// number returns an IntegerNode or a FloatNode
//
// Grammar:
//
//	number          = integer / float
func (p *Parser) number() (ast.Node, error) {
	switch p.current.Kind {
	case token.TOK_INTEGER:
		t, err := p.eat(token.TOK_INTEGER)
		if err != nil {
			return nil, err
		}

		val, err := strconv.ParseInt(t.Text, 10, 64)
		if err != nil {
			return nil, newParseError(t, "integer literal '%s' out of range", t.Text)
		}

		return ast.MakeIntegerNode(t, val), nil

	case token.TOK_FLOAT:
		t, err := p.eat(token.TOK_FLOAT)
		if err != nil {
			return nil, err
		}

		// Overflowing literals round to ±Inf or 0, which is what we want.
		val, err := strconv.ParseFloat(t.Text, 64)
		if err != nil && !errors.Is(err, strconv.ErrRange) {
			return nil, newParseError(t, "invalid float literal '%s'", t.Text)
		}

		return ast.MakeFloatNode(t, val), nil
	}

	return nil, newParseError(p.current, "expected a number, found %s", p.current.Kind)
}

func isTermOperator(k token.TokenKind) bool {
	switch k {
	case token.TOK_STAR, token.TOK_SLASH, token.TOK_SLASH_SLASH, token.TOK_STAR_STAR, token.TOK_PERCENT:
		return true
	}
	return false
}
