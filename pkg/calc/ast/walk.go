/*
 * Copyright (c) 2023, Dana Burkart <dana.burkart@gmail.com>
 *
 * SPDX-License-Identifier: BSD-2-Clause
 */

package ast

// Walk traverses node depth first, left operand before right. v.Visit(nil)
// is called after all children of a node have been walked.
func Walk(v Visitor, node Node) {
	if v = v.Visit(node); v == nil {
		return
	}

	switch n := node.(type) {
	case *BinaryOpNode:
		Walk(v, n.Left)
		Walk(v, n.Right)

	case *UnaryOpNode:
		Walk(v, n.Operand)

	case *IntegerNode, *FloatNode:
		// Skip, leaf nodes

	default:
		panic("Unexpected Node passed to Walk")
	}

	v.Visit(nil)
}
