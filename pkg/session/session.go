/*
 * Copyright (c) 2023, Dana Burkart <dana.burkart@gmail.com>
 *
 * SPDX-License-Identifier: BSD-2-Clause
 */

package session

import (
	"bufio"
	"io"
	"math"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/rs/zerolog"

	"github.com/dburkart/reckon/pkg/calc"
	"github.com/dburkart/reckon/pkg/calc/ast"
	"github.com/dburkart/reckon/pkg/calc/scanner"
	"github.com/dburkart/reckon/pkg/metrics"
	"github.com/dburkart/reckon/pkg/repl"
)

type Action int

const (
	// ActionContinue asks the driver for the next line
	ActionContinue Action = iota
	// ActionQuit ends the session successfully
	ActionQuit
	// ActionHalt ends the session after a failed line
	ActionHalt
)

type Config struct {
	// HaltOnError stops the session at the first line that fails
	HaltOnError bool
	// ShowCaret renders failures beneath the input with a caret
	ShowCaret bool
	// Strict rejects input left over after a complete expression
	Strict    bool
	Formatter repl.Formatter
}

// Session processes input lines one at a time. Lines share no state other
// than the counters reported by /stats.
type Session struct {
	ID string

	config  Config
	out     repl.OutputWriter
	log     zerolog.Logger
	metrics metrics.Store
	stats   repl.Stats
	quit    bool
}

func New(config Config, out repl.OutputWriter, log zerolog.Logger, m metrics.Store) *Session {
	id := uuid.NewString()
	m.IncSessions()

	return &Session{
		ID:      id,
		config:  config,
		out:     out,
		log:     log.With().Str("session", id).Logger(),
		metrics: m,
		stats:   repl.Stats{Session: id},
	}
}

// Run processes every line read from r until the input ends or a quit
// directive is read. It returns an error when the session halted on a
// failed line, or when reading failed.
func (s *Session) Run(r io.Reader) error {
	lines := bufio.NewScanner(r)
	lines.Buffer(make([]byte, 0, bufio.MaxScanTokenSize), math.MaxInt)
	n := 0

	for lines.Scan() {
		n++
		action, err := s.Process(lines.Text())

		switch action {
		case ActionQuit:
			s.quit = true
			s.log.Debug().Int("line", n).Msg("quit requested")
			return nil
		case ActionHalt:
			return errors.Wrapf(err, "halted on line %d", n)
		}
	}

	if err := lines.Err(); err != nil {
		return errors.Wrap(err, "unable to read input")
	}

	return nil
}

// Process handles a single line of input, writing its result or diagnostic
// to the session's output.
//
// Offsets in diagnostics refer to line exactly as given. Directives are
// only recognized at the very start of the line.
func (s *Session) Process(line string) (Action, error) {
	line = strings.TrimSuffix(line, "\r")
	if scanner.IsBlank(line) {
		return ActionContinue, nil
	}

	if repl.IsDirective(line) {
		return s.directive(line)
	}

	val, err := s.evaluate(line)
	if err != nil {
		return s.fail(line, err)
	}

	s.out.Write(s.config.Formatter.Result(line, val))
	return ActionContinue, nil
}

func (s *Session) Stats() repl.Stats {
	return s.stats
}

// Quit reports whether Run stopped at a quit directive.
func (s *Session) Quit() bool {
	return s.quit
}

func (s *Session) eval(line string) (float64, error) {
	if s.config.Strict {
		return calc.EvalStrict(line)
	}
	return calc.Eval(line)
}

func (s *Session) parse(line string) (ast.Node, error) {
	if s.config.Strict {
		return calc.ParseStrict(line)
	}
	return calc.Parse(line)
}

func (s *Session) evaluate(line string) (float64, error) {
	start := time.Now()
	val, err := s.eval(line)
	elapsed := time.Since(start)

	outcome := metrics.OutcomeOk
	s.stats.Lines++

	switch calc.Kind(err) {
	case calc.KindLex:
		outcome = metrics.OutcomeLex
		s.stats.LexErrors++
	case calc.KindParse:
		outcome = metrics.OutcomeParse
		s.stats.ParseErrors++
	case calc.KindInternal:
		outcome = metrics.OutcomeInternal
		s.stats.Internal++
	default:
		s.stats.Ok++
	}

	s.metrics.IncLines(outcome)
	s.metrics.ObserveEvalNS(outcome, elapsed.Nanoseconds())

	s.log.Debug().
		Str("input", line).
		Str("outcome", outcome).
		Dur("elapsed", elapsed).
		Float64("result", val).
		Msg("evaluated line")

	return val, err
}

func (s *Session) directive(line string) (Action, error) {
	d, err := repl.ParseDirective(line)
	if err != nil {
		return s.fail(line, err)
	}

	switch d.Name {
	case repl.DirectiveQuit:
		return ActionQuit, nil

	case repl.DirectiveHelp:
		s.out.Write(repl.HelpMessage())

	case repl.DirectiveStats:
		s.out.Write(s.stats)

	case repl.DirectiveTokens:
		tokens, err := calc.Tokenize(d.Args)
		if err != nil {
			return s.fail(d.Args, err)
		}
		s.out.Write(repl.Tokens(tokens))

	case repl.DirectiveAST:
		node, err := s.parse(d.Args)
		if err != nil {
			return s.fail(d.Args, err)
		}
		s.out.Write(repl.Message{
			Title: ast.String(node),
			Lines: strings.Split(strings.TrimSuffix(ast.Dump(node), "\n"), "\n"),
		})
	}

	return ActionContinue, nil
}

func (s *Session) fail(input string, err error) (Action, error) {
	pos, _ := calc.Position(err)
	failure := repl.Failure{
		Input:      input,
		Kind:       calc.Kind(err),
		Position:   pos,
		Diagnostic: calc.Diagnostic(err),
	}
	if s.config.ShowCaret {
		failure.Detail = calc.FormatError(input, err)
	}

	s.out.Write(failure)
	s.log.Warn().Err(err).Str("input", input).Msg("line failed")

	if s.config.HaltOnError {
		return ActionHalt, err
	}
	return ActionContinue, err
}
