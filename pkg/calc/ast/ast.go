/*
 * Copyright (c) 2023, Dana Burkart <dana.burkart@gmail.com>
 *
 * SPDX-License-Identifier: BSD-2-Clause
 */

package ast

import (
	"github.com/dburkart/reckon/pkg/calc/token"
)

type Node interface {
	Value() string
	Pos() int
}

type Visitor interface {
	Visit(Node) Visitor
}

type (
	BaseNode struct {
		Token token.Token
	}

	IntegerNode struct {
		BaseNode
		Val int64
	}

	FloatNode struct {
		BaseNode
		Val float64
	}

	UnaryOpNode struct {
		BaseNode
		Operator token.Token
		Operand  Node
	}

	BinaryOpNode struct {
		BaseNode
		Left  Node
		Op    token.Token
		Right Node
	}
)

// -- BaseNode

func (b *BaseNode) Value() string {
	return b.Token.Text
}

func (b *BaseNode) Pos() int {
	return b.Token.Pos
}

//-- Constructors

func MakeIntegerNode(t token.Token, val int64) *IntegerNode {
	return &IntegerNode{BaseNode: BaseNode{Token: t}, Val: val}
}

func MakeFloatNode(t token.Token, val float64) *FloatNode {
	return &FloatNode{BaseNode: BaseNode{Token: t}, Val: val}
}

func MakeUnaryOpNode(op token.Token, operand Node) *UnaryOpNode {
	return &UnaryOpNode{BaseNode: BaseNode{Token: op}, Operator: op, Operand: operand}
}

func MakeBinaryOpNode(left Node, op token.Token, right Node) *BinaryOpNode {
	return &BinaryOpNode{BaseNode: BaseNode{Token: op}, Left: left, Op: op, Right: right}
}
