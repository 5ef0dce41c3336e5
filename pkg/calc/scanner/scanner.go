/*
 * Copyright (c) 2023, Dana Burkart <dana.burkart@gmail.com>
 *
 * SPDX-License-Identifier: BSD-2-Clause
 */

package scanner

import (
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/dburkart/reckon/pkg/calc/token"
)

// LexError is returned when a character does not begin any valid token.
// Char is 0 when the input ended where a character was required.
type LexError struct {
	Char rune
	Pos  int
}

func (e *LexError) Error() string {
	if e.Char == 0 {
		return fmt.Sprintf("unexpected end of input at %d", e.Pos)
	}
	return fmt.Sprintf("unexpected character '%c' at %d", e.Char, e.Pos)
}

type Scanner struct {
	Input string
	Pos   int
}

func New(input string) *Scanner {
	return &Scanner{Input: input}
}

// NextToken returns the next Token found on Scanner.Input. Once the input is
// exhausted every call returns a TOK_EOF token at len(Input).
func (s *Scanner) NextToken() (token.Token, error) {
	s.skipWhitespace()

	if s.Pos >= len(s.Input) {
		return token.Token{Kind: token.TOK_EOF, Pos: s.Pos}, nil
	}

	c := s.Input[s.Pos]
	if isDigit(c) {
		return s.scanNumber()
	}

	switch {
	case strings.HasPrefix(s.Input[s.Pos:], "**"):
		return s.emit(token.TOK_STAR_STAR, len("**")), nil
	case strings.HasPrefix(s.Input[s.Pos:], "//"):
		return s.emit(token.TOK_SLASH_SLASH, len("//")), nil
	}

	switch c {
	case '+':
		return s.emit(token.TOK_PLUS, 1), nil
	case '-':
		return s.emit(token.TOK_MINUS, 1), nil
	case '*':
		return s.emit(token.TOK_STAR, 1), nil
	case '/':
		return s.emit(token.TOK_SLASH, 1), nil
	case '%':
		return s.emit(token.TOK_PERCENT, 1), nil
	case '(':
		return s.emit(token.TOK_PAREN_L, 1), nil
	case ')':
		return s.emit(token.TOK_PAREN_R, 1), nil
	}

	r, _ := utf8.DecodeRuneInString(s.Input[s.Pos:])
	return token.Token{}, &LexError{Char: r, Pos: s.Pos}
}

// scanNumber consumes an integer or float literal starting at s.Pos.
//
// Grammar:
//
//	integer         = 1*DIGIT
//	float           = 1*DIGIT ( "." *DIGIT [ exponent ] / exponent )
//	exponent        = ( "e" / "E" ) [ "+" / "-" ] 1*DIGIT
func (s *Scanner) scanNumber() (token.Token, error) {
	start := s.Pos
	kind := token.TOK_INTEGER

	s.Pos += s.MatchDigits()

	if s.peek() == '.' {
		kind = token.TOK_FLOAT
		s.Pos++
		s.Pos += s.MatchDigits()
	}

	if c := s.peek(); c == 'e' || c == 'E' {
		kind = token.TOK_FLOAT
		s.Pos++

		if c = s.peek(); c == '+' || c == '-' {
			s.Pos++
		}

		width := s.MatchDigits()
		if width == 0 {
			var r rune
			if s.Pos < len(s.Input) {
				r, _ = utf8.DecodeRuneInString(s.Input[s.Pos:])
			}
			return token.Token{}, &LexError{Char: r, Pos: s.Pos}
		}
		s.Pos += width
	}

	return token.Token{Kind: kind, Text: s.Input[start:s.Pos], Pos: start}, nil
}

// MatchDigits returns the length of the run of ASCII digits at s.Pos.
func (s *Scanner) MatchDigits() int {
	size := 0
	for i := s.Pos; i < len(s.Input) && isDigit(s.Input[i]); i++ {
		size++
	}
	return size
}

func (s *Scanner) emit(kind token.TokenKind, width int) token.Token {
	t := token.Token{Kind: kind, Text: s.Input[s.Pos : s.Pos+width], Pos: s.Pos}
	s.Pos += width
	return t
}

func (s *Scanner) peek() byte {
	if s.Pos >= len(s.Input) {
		return 0
	}
	return s.Input[s.Pos]
}

func (s *Scanner) skipWhitespace() {
	for s.Pos < len(s.Input) && isSpace(s.Input[s.Pos]) {
		s.Pos++
	}
}

// Tokenize drains a new Scanner over input, returning every token up to and
// including the terminating TOK_EOF.
func Tokenize(input string) ([]token.Token, error) {
	s := New(input)
	tokens := []token.Token{}

	for {
		t, err := s.NextToken()
		if err != nil {
			return tokens, err
		}
		tokens = append(tokens, t)
		if t.Kind == token.TOK_EOF {
			return tokens, nil
		}
	}
}

func isDigit(c byte) bool {
	return c >= '0' && c <= '9'
}

func isSpace(c byte) bool {
	switch c {
	case ' ', '\t', '\n', '\f', '\r':
		return true
	}
	return false
}

// IsBlank reports whether s holds nothing but whitespace the scanner skips.
func IsBlank(s string) bool {
	for i := 0; i < len(s); i++ {
		if !isSpace(s[i]) {
			return false
		}
	}
	return true
}
