/*
 * Copyright (c) 2023, Dana Burkart <dana.burkart@gmail.com>
 *
 * SPDX-License-Identifier: BSD-2-Clause
 */

package session

import (
	"bytes"
	"strings"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dburkart/reckon/pkg/metrics"
	"github.com/dburkart/reckon/pkg/repl"
)

func newSession(config Config, format string) (*Session, *bytes.Buffer) {
	var buf bytes.Buffer
	if config.Formatter == (repl.Formatter{}) {
		config.Formatter = repl.DefaultFormatter
	}
	s := New(config, repl.NewOutputWriter(&buf, format), zerolog.Nop(), metrics.NewStore())
	return s, &buf
}

func TestRunPrintsResults(t *testing.T) {
	s, out := newSession(Config{HaltOnError: true}, repl.FormatPlain)

	err := s.Run(strings.NewReader("2 + 3\n\n7 / 2\n  -7 // 2\n"))
	require.NoError(t, err)

	assert.Equal(t, "5\n3.5\n-4\n", out.String())
	assert.False(t, s.Quit())
	assert.Equal(t, 3, s.Stats().Lines)
	assert.Equal(t, 3, s.Stats().Ok)
}

func TestRunStopsAtQuit(t *testing.T) {
	for _, quit := range []string{"/quit", "/exit", "/quit please"} {
		s, out := newSession(Config{HaltOnError: true}, repl.FormatPlain)

		err := s.Run(strings.NewReader("1\n" + quit + "\n2\n"))
		require.NoError(t, err)
		assert.Equal(t, "1\n", out.String())
		assert.True(t, s.Quit())
	}
}

func TestRunHaltsOnError(t *testing.T) {
	s, out := newSession(Config{HaltOnError: true}, repl.FormatPlain)

	err := s.Run(strings.NewReader("1\n2 $ 3\n4\n"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "halted on line 2")
	assert.Contains(t, err.Error(), "unexpected character '$' at 2")

	assert.Equal(t, "1\nlex error: unexpected character '$' at 2\n", out.String())
	assert.Equal(t, 1, s.Stats().LexErrors)
}

func TestRunContinuesAfterError(t *testing.T) {
	s, out := newSession(Config{}, repl.FormatPlain)

	err := s.Run(strings.NewReader("2 +\n(1\n4\n"))
	require.NoError(t, err)

	want := "parse error: unexpected TOK_EOF, expected a number or '(' at 3\n" +
		"parse error: expected TOK_PAREN_R, found TOK_EOF at 2\n" +
		"4\n"
	assert.Equal(t, want, out.String())

	stats := s.Stats()
	assert.Equal(t, 3, stats.Lines)
	assert.Equal(t, 1, stats.Ok)
	assert.Equal(t, 2, stats.ParseErrors)
}

func TestProcessActions(t *testing.T) {
	s, _ := newSession(Config{}, repl.FormatPlain)

	action, err := s.Process("   ")
	assert.NoError(t, err)
	assert.Equal(t, ActionContinue, action)

	action, err = s.Process("/exit")
	assert.NoError(t, err)
	assert.Equal(t, ActionQuit, action)

	action, err = s.Process("1 +")
	assert.Error(t, err)
	assert.Equal(t, ActionContinue, action)

	s.config.HaltOnError = true
	action, err = s.Process("1 +")
	assert.Error(t, err)
	assert.Equal(t, ActionHalt, action)
}

func TestCaretDiagnostics(t *testing.T) {
	s, out := newSession(Config{ShowCaret: true}, repl.FormatPlain)

	_, err := s.Process("2 $ 3")
	require.Error(t, err)

	assert.Equal(t, "2 $ 3\n  ^ lex error: unexpected character '$' at 2\n", out.String())
}

func TestDirectives(t *testing.T) {
	t.Run("ast", func(t *testing.T) {
		s, out := newSession(Config{}, repl.FormatPlain)

		_, err := s.Process("/ast -2 ** 2")
		require.NoError(t, err)

		want := "BinaryOpNode[**]\n" +
			"    UnaryOpNode[-]\n" +
			"        IntegerNode[2]\n" +
			"    IntegerNode[2]\n"
		assert.Equal(t, want, out.String())
	})

	t.Run("tokens", func(t *testing.T) {
		s, out := newSession(Config{}, repl.FormatCSV)

		_, err := s.Process("/tokens 1//2")
		require.NoError(t, err)

		want := "kind,text,position\n" +
			"TOK_INTEGER,1,0\n" +
			"TOK_SLASH_SLASH,//,1\n" +
			"TOK_INTEGER,2,3\n" +
			"TOK_EOF,,4\n"
		assert.Equal(t, want, out.String())
	})

	t.Run("stats", func(t *testing.T) {
		s, out := newSession(Config{}, repl.FormatCSV)

		s.Process("1")
		s.Process("1 $")
		out.Reset()

		_, err := s.Process("/stats")
		require.NoError(t, err)
		assert.Equal(t, "session,lines,ok,lex_errors,parse_errors,internal_errors\n"+s.ID+",2,1,1,0,0\n", out.String())
	})

	t.Run("help", func(t *testing.T) {
		s, out := newSession(Config{}, repl.FormatPlain)

		_, err := s.Process("/help")
		require.NoError(t, err)
		assert.Contains(t, out.String(), "/quit, /exit")
	})

	t.Run("unknown", func(t *testing.T) {
		s, out := newSession(Config{HaltOnError: true}, repl.FormatPlain)

		action, err := s.Process("/frobnicate")
		require.Error(t, err)
		assert.Equal(t, ActionHalt, action)
		assert.Equal(t, "error: unknown directive '/frobnicate', try /help\n", out.String())
	})

	t.Run("bad expression", func(t *testing.T) {
		s, out := newSession(Config{}, repl.FormatPlain)

		_, err := s.Process("/ast (")
		require.Error(t, err)
		assert.Equal(t, "parse error: unexpected TOK_EOF, expected a number or '(' at 1\n", out.String())

		// directive expressions are not counted as evaluated lines
		assert.Equal(t, 0, s.Stats().Lines)
	})
}

func TestJSONOutputCarriesFailures(t *testing.T) {
	s, out := newSession(Config{}, repl.FormatJSON)

	s.Process("1 / 0")
	s.Process("2 $")

	lines := strings.Split(strings.TrimSpace(out.String()), "\n")
	require.Len(t, lines, 2)
	assert.JSONEq(t, `{"input": "1 / 0", "result": "Inf"}`, lines[0])
	assert.JSONEq(t, `{"input": "2 $", "error": "lex", "position": "2", "message": "lex error: unexpected character '$' at 2"}`, lines[1])
}

func TestOffsetsReferToRawLine(t *testing.T) {
	s, out := newSession(Config{ShowCaret: true}, repl.FormatPlain)

	_, err := s.Process("   2 $ 3")
	require.Error(t, err)
	assert.Equal(t, "   2 $ 3\n     ^ lex error: unexpected character '$' at 5\n", out.String())
}

func TestNonASCIISpaceIsLexError(t *testing.T) {
	s, _ := newSession(Config{}, repl.FormatPlain)

	_, err := s.Process("\u00a02 + 1")
	require.Error(t, err)
	assert.Equal(t, 1, s.Stats().LexErrors)

	action, err := s.Process("\u00a0")
	require.Error(t, err)
	assert.Equal(t, ActionContinue, action)
	assert.Equal(t, 2, s.Stats().LexErrors)
}

func TestQuitOnlyAtLineStart(t *testing.T) {
	s, out := newSession(Config{}, repl.FormatPlain)

	err := s.Run(strings.NewReader("  /quit\n1\n"))
	require.NoError(t, err)
	assert.False(t, s.Quit())
	assert.Equal(t, "parse error: unexpected TOK_SLASH, expected a number or '(' at 2\n1\n", out.String())
}

func TestRunReadsLongLines(t *testing.T) {
	s, out := newSession(Config{HaltOnError: true}, repl.FormatPlain)

	line := "1" + strings.Repeat(" + 1", 20000)
	require.Greater(t, len(line), 64*1024)

	err := s.Run(strings.NewReader(line + "\n"))
	require.NoError(t, err)
	assert.Equal(t, "20001\n", out.String())
}

func TestTrailingInput(t *testing.T) {
	s, out := newSession(Config{}, repl.FormatPlain)

	_, err := s.Process("2 3")
	require.NoError(t, err)
	assert.Equal(t, "2\n", out.String())

	s, out = newSession(Config{Strict: true}, repl.FormatPlain)

	_, err = s.Process("2 3")
	require.Error(t, err)
	assert.Equal(t, "parse error: unexpected TOK_INTEGER '3' after expression at 2\n", out.String())

	out.Reset()
	_, err = s.Process("/ast 1 + 2)")
	require.Error(t, err)
	assert.Equal(t, "parse error: unexpected TOK_PAREN_R ')' after expression at 5\n", out.String())
}
