/*
 * Copyright (c) 2023, Dana Burkart <dana.burkart@gmail.com>
 *
 * SPDX-License-Identifier: BSD-2-Clause
 */

package interp

import (
	"fmt"
	"math"

	"github.com/dburkart/reckon/pkg/calc/ast"
	"github.com/dburkart/reckon/pkg/calc/token"
)

// InternalError is returned for trees the parser can never produce, such as
// a binary node carrying a parenthesis as its operator.
type InternalError struct {
	Token   token.Token
	Message string
}

func (e *InternalError) Error() string {
	return fmt.Sprintf("internal error: %s at %d", e.Message, e.Token.Pos)
}

// Evaluate folds node into a single float64. Arithmetic follows IEEE 754:
// division by zero yields ±Inf or NaN rather than an error.
func Evaluate(node ast.Node) (float64, error) {
	switch n := node.(type) {
	case *ast.IntegerNode:
		return float64(n.Val), nil
	case *ast.FloatNode:
		return n.Val, nil
	case *ast.UnaryOpNode:
		return evaluateUnaryOp(n)
	case *ast.BinaryOpNode:
		return evaluateBinaryOp(n)
	case nil:
		return 0, &InternalError{Message: "missing operand"}
	}

	return 0, &InternalError{
		Token:   token.Token{Pos: node.Pos(), Text: node.Value()},
		Message: fmt.Sprintf("unexpected node %T", node),
	}
}

func evaluateUnaryOp(n *ast.UnaryOpNode) (float64, error) {
	operand, err := Evaluate(n.Operand)
	if err != nil {
		return 0, err
	}

	switch n.Operator.Kind {
	case token.TOK_PLUS:
		return operand, nil
	case token.TOK_MINUS:
		return -operand, nil
	}

	return 0, &InternalError{Token: n.Operator, Message: fmt.Sprintf("invalid unary operator %s", n.Operator.Kind)}
}

func evaluateBinaryOp(n *ast.BinaryOpNode) (float64, error) {
	lh, err := Evaluate(n.Left)
	if err != nil {
		return 0, err
	}

	rh, err := Evaluate(n.Right)
	if err != nil {
		return 0, err
	}

	switch n.Op.Kind {
	case token.TOK_PLUS:
		return lh + rh, nil
	case token.TOK_MINUS:
		return lh - rh, nil
	case token.TOK_STAR:
		return lh * rh, nil
	case token.TOK_SLASH:
		return lh / rh, nil
	case token.TOK_SLASH_SLASH:
		return math.Floor(lh / rh), nil
	case token.TOK_STAR_STAR:
		return math.Pow(lh, rh), nil
	case token.TOK_PERCENT:
		return math.Mod(lh, rh), nil
	}

	return 0, &InternalError{Token: n.Op, Message: fmt.Sprintf("invalid binary operator %s", n.Op.Kind)}
}
