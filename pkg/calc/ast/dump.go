/*
 * Copyright (c) 2023, Dana Burkart <dana.burkart@gmail.com>
 *
 * SPDX-License-Identifier: BSD-2-Clause
 */

package ast

import (
	"reflect"
	"strings"
)

type Dumper struct {
	Output string
	indent int
}

func (d *Dumper) Visit(node Node) Visitor {
	if node == nil {
		d.indent -= 1
		return nil
	}

	level := strings.Repeat("    ", d.indent)

	t := reflect.TypeOf(node)
	output := level + t.Elem().Name() + "[" + node.Value() + "]" + "\n"

	d.Output += output
	d.indent += 1

	return d
}

// Dump returns the indented tree rendering of node.
func Dump(node Node) string {
	d := Dumper{}
	Walk(&d, node)
	return d.Output
}

// String renders node as a fully parenthesized infix expression, e.g.
// "((2 + 3) * 4)" or "(-2)".
func String(node Node) string {
	var b strings.Builder
	writeInfix(&b, node)
	return b.String()
}

func writeInfix(b *strings.Builder, node Node) {
	switch n := node.(type) {
	case *BinaryOpNode:
		b.WriteByte('(')
		writeInfix(b, n.Left)
		b.WriteString(" " + n.Op.Text + " ")
		writeInfix(b, n.Right)
		b.WriteByte(')')
	case *UnaryOpNode:
		b.WriteByte('(')
		b.WriteString(n.Operator.Text)
		writeInfix(b, n.Operand)
		b.WriteByte(')')
	default:
		b.WriteString(node.Value())
	}
}
