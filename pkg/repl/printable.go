/*
 * Copyright (c) 2023, Dana Burkart <dana.burkart@gmail.com>
 *
 * SPDX-License-Identifier: BSD-2-Clause
 */

package repl

import (
	"math"
	"math/big"
	"strconv"
	"strings"

	"github.com/dustin/go-humanize"

	"github.com/dburkart/reckon/pkg/calc/token"
)

// Formatter renders evaluation results. A Precision of -1 prints the
// shortest representation that round-trips.
type Formatter struct {
	Precision int
	Humanize  bool
}

var DefaultFormatter = Formatter{Precision: -1}

func (f Formatter) Format(v float64) string {
	switch {
	case math.IsNaN(v):
		return "NaN"
	case math.IsInf(v, 1):
		return "Inf"
	case math.IsInf(v, -1):
		return "-Inf"
	}

	text := strconv.FormatFloat(v, 'f', f.Precision, 64)
	if f.Humanize {
		return group(text)
	}
	return text
}

// group inserts thousands separators into the integer part of a number
// formatted by strconv, keeping the fractional digits as they are.
func group(text string) string {
	whole, frac, hasFrac := strings.Cut(text, ".")
	sign := ""
	if strings.HasPrefix(whole, "-") {
		sign, whole = "-", whole[1:]
	}

	n, ok := new(big.Int).SetString(whole, 10)
	if !ok {
		return text
	}

	grouped := sign + humanize.BigComma(n)
	if hasFrac {
		grouped += "." + frac
	}
	return grouped
}

func (f Formatter) Result(input string, v float64) Result {
	return Result{Input: input, Value: v, Text: f.Format(v)}
}

type Result struct {
	Input string
	Value float64
	Text  string
}

func (r Result) Headers() []string {
	return []string{"input", "result"}
}

func (r Result) Values() [][]string {
	return [][]string{{r.Input, r.Text}}
}

func (r Result) Plain() string {
	return r.Text
}

type Failure struct {
	Input      string
	Kind       string
	Position   int
	Diagnostic string
	// Detail replaces Diagnostic in plain output, e.g. a caret rendering.
	Detail string
}

func (f Failure) Headers() []string {
	return []string{"input", "error", "position", "message"}
}

func (f Failure) Values() [][]string {
	return [][]string{{f.Input, f.Kind, strconv.Itoa(f.Position), f.Diagnostic}}
}

func (f Failure) Plain() string {
	if f.Detail != "" {
		return f.Detail
	}
	return f.Diagnostic
}

type Tokens []token.Token

func (t Tokens) Headers() []string {
	return []string{"kind", "text", "position"}
}

func (t Tokens) Values() [][]string {
	rows := [][]string{}
	for _, tok := range t {
		rows = append(rows, []string{tok.Kind.ToString(), tok.Text, strconv.Itoa(tok.Pos)})
	}
	return rows
}

// Message is free-form text, one row per line.
type Message struct {
	Title string
	Lines []string
}

func (m Message) Headers() []string {
	return []string{m.Title}
}

func (m Message) Values() [][]string {
	rows := [][]string{}
	for _, l := range m.Lines {
		rows = append(rows, []string{l})
	}
	return rows
}

type Stats struct {
	Session     string
	Lines       int
	Ok          int
	LexErrors   int
	ParseErrors int
	Internal    int
}

func (s Stats) Headers() []string {
	return []string{"session", "lines", "ok", "lex_errors", "parse_errors", "internal_errors"}
}

func (s Stats) Values() [][]string {
	return [][]string{{
		s.Session,
		strconv.Itoa(s.Lines),
		strconv.Itoa(s.Ok),
		strconv.Itoa(s.LexErrors),
		strconv.Itoa(s.ParseErrors),
		strconv.Itoa(s.Internal),
	}}
}
