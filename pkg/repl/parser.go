/*
 * Copyright (c) 2022, Gideon Williams gideon@gideonw.com
 *
 * SPDX-License-Identifier: BSD-2-Clause
 */

package repl

import (
	"fmt"
	"strings"
)

const (
	DirectiveQuit   = "quit"
	DirectiveExit   = "exit"
	DirectiveHelp   = "help"
	DirectiveAST    = "ast"
	DirectiveTokens = "tokens"
	DirectiveStats  = "stats"
)

// Directives lists the directives with their usage, in help order.
var Directives = [][2]string{
	{"/ast <expr>", "print the syntax tree of an expression"},
	{"/tokens <expr>", "print the tokens of an expression"},
	{"/stats", "print counters for this session"},
	{"/help", "print this message"},
	{"/quit, /exit", "leave the session"},
}

type Directive struct {
	Name string
	Args string
}

// IsDirective reports whether a line should be handled by ParseDirective
// rather than evaluated.
func IsDirective(line string) bool {
	return strings.HasPrefix(line, "/")
}

// ParseDirective parses a line beginning with '/'
//
// Any line starting with "/quit" or "/exit" is a quit request, whatever
// follows it. This function assumes there is no '\n'.
func ParseDirective(line string) (Directive, error) {
	if !IsDirective(line) {
		return Directive{}, fmt.Errorf("not a directive: %q", line)
	}

	if strings.HasPrefix(line, "/"+DirectiveQuit) || strings.HasPrefix(line, "/"+DirectiveExit) {
		return Directive{Name: DirectiveQuit}, nil
	}

	// all directives with arguments have a space after them
	cmd, args, _ := strings.Cut(line[1:], " ")
	d := Directive{Name: strings.ToLower(cmd), Args: strings.TrimSpace(args)}

	switch d.Name {
	case DirectiveHelp, DirectiveStats:
		return d, nil
	case DirectiveAST, DirectiveTokens:
		if d.Args == "" {
			return d, fmt.Errorf("/%s requires an expression", d.Name)
		}
		return d, nil
	}

	return d, fmt.Errorf("unknown directive '/%s', try /help", cmd)
}

func HelpMessage() Message {
	m := Message{Title: "usage"}
	for _, d := range Directives {
		m.Lines = append(m.Lines, fmt.Sprintf("%-16s %s", d[0], d[1]))
	}
	m.Lines = append(m.Lines, fmt.Sprintf("%-16s %s", "<expr>", "evaluate an arithmetic expression"))
	return m
}
