/*
 * Copyright (c) 2023, Dana Burkart <dana.burkart@gmail.com>
 *
 * SPDX-License-Identifier: BSD-2-Clause
 */

package calc

import (
	"errors"
	"fmt"
	"strings"

	"github.com/dburkart/reckon/pkg/calc/ast"
	"github.com/dburkart/reckon/pkg/calc/interp"
	"github.com/dburkart/reckon/pkg/calc/parser"
	"github.com/dburkart/reckon/pkg/calc/scanner"
	"github.com/dburkart/reckon/pkg/calc/token"
)

const (
	KindLex      = "lex"
	KindParse    = "parse"
	KindInternal = "internal"
	KindUnknown  = "unknown"
)

// Parse returns the syntax tree for a single line of input.
func Parse(line string) (ast.Node, error) {
	p, err := parser.New(scanner.New(line))
	if err != nil {
		return nil, err
	}
	return p.Parse()
}

// ParseStrict is Parse, but rejects input left over after the expression.
func ParseStrict(line string) (ast.Node, error) {
	p, err := parser.New(scanner.New(line))
	if err != nil {
		return nil, err
	}
	return p.ParseAll()
}

// Eval parses and evaluates a single line of input.
func Eval(line string) (float64, error) {
	node, err := Parse(line)
	if err != nil {
		return 0, err
	}
	return interp.Evaluate(node)
}

func EvalStrict(line string) (float64, error) {
	node, err := ParseStrict(line)
	if err != nil {
		return 0, err
	}
	return interp.Evaluate(node)
}

func Tokenize(line string) ([]token.Token, error) {
	return scanner.Tokenize(line)
}

// Kind classifies an error returned by this package. Parse errors caused by
// a lexical failure are reported as KindLex.
func Kind(err error) string {
	var lexErr *scanner.LexError
	var parseErr *parser.ParseError
	var internalErr *interp.InternalError

	switch {
	case errors.As(err, &lexErr):
		return KindLex
	case errors.As(err, &parseErr):
		return KindParse
	case errors.As(err, &internalErr):
		return KindInternal
	}
	return KindUnknown
}

// Position returns the input offset an error refers to.
func Position(err error) (int, bool) {
	var lexErr *scanner.LexError
	var parseErr *parser.ParseError
	var internalErr *interp.InternalError

	switch {
	case errors.As(err, &lexErr):
		return lexErr.Pos, true
	case errors.As(err, &parseErr):
		return parseErr.Pos, true
	case errors.As(err, &internalErr):
		return internalErr.Token.Pos, true
	}
	return 0, false
}

// Diagnostic renders err on a single line, prefixed with its kind.
func Diagnostic(err error) string {
	var lexErr *scanner.LexError
	if errors.As(err, &lexErr) {
		return "lex error: " + lexErr.Error()
	}

	var parseErr *parser.ParseError
	if errors.As(err, &parseErr) {
		return "parse error: " + parseErr.Error()
	}

	var internalErr *interp.InternalError
	if errors.As(err, &internalErr) {
		return internalErr.Error()
	}

	return "error: " + err.Error()
}

// FormatError renders err beneath the input with a caret marking the
// offending offset:
//
//	2 $ 3
//	  ^ lex error: unexpected character '$' at 2
func FormatError(input string, err error) string {
	pos, ok := Position(err)
	if !ok {
		return Diagnostic(err)
	}

	if pos > len(input) {
		pos = len(input)
	}

	errorString := input
	errorString += fmt.Sprintf("\n%s^ ", strings.Repeat(" ", pos))
	errorString += Diagnostic(err)
	return errorString
}
