/*
 * Copyright (c) 2023, Dana Burkart <dana.burkart@gmail.com>
 *
 * SPDX-License-Identifier: BSD-2-Clause
 */

package token

type TokenKind int

const (
	TOK_EOF TokenKind = iota

	TOK_INTEGER
	TOK_FLOAT

	// Operators
	TOK_PLUS
	TOK_MINUS
	TOK_STAR
	TOK_SLASH
	TOK_SLASH_SLASH
	TOK_STAR_STAR
	TOK_PERCENT

	TOK_PAREN_L
	TOK_PAREN_R
)

func (t TokenKind) ToString() string {
	switch t {
	case TOK_EOF:
		return "TOK_EOF"
	case TOK_INTEGER:
		return "TOK_INTEGER"
	case TOK_FLOAT:
		return "TOK_FLOAT"
	case TOK_PLUS:
		return "TOK_PLUS"
	case TOK_MINUS:
		return "TOK_MINUS"
	case TOK_STAR:
		return "TOK_STAR"
	case TOK_SLASH:
		return "TOK_SLASH"
	case TOK_SLASH_SLASH:
		return "TOK_SLASH_SLASH"
	case TOK_STAR_STAR:
		return "TOK_STAR_STAR"
	case TOK_PERCENT:
		return "TOK_PERCENT"
	case TOK_PAREN_L:
		return "TOK_PAREN_L"
	case TOK_PAREN_R:
		return "TOK_PAREN_R"
	}
	return "TOK_UNKNOWN"
}

func (t TokenKind) String() string {
	return t.ToString()
}

// IsBinaryOperator reports whether t may appear as the operator of a binary
// expression.
func (t TokenKind) IsBinaryOperator() bool {
	switch t {
	case TOK_PLUS, TOK_MINUS, TOK_STAR, TOK_SLASH, TOK_SLASH_SLASH, TOK_STAR_STAR, TOK_PERCENT:
		return true
	}
	return false
}

// IsUnaryOperator reports whether t may prefix an operand.
func (t TokenKind) IsUnaryOperator() bool {
	return t == TOK_PLUS || t == TOK_MINUS
}

// Token is a single lexeme of an input line. Pos is the offset of the first
// character of Text; TOK_EOF tokens carry an empty Text.
type Token struct {
	Kind TokenKind
	Text string
	Pos  int
}

// End returns the offset one past the last character of the token.
func (t Token) End() int {
	return t.Pos + len(t.Text)
}
