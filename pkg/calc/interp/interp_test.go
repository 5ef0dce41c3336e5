/*
 * Copyright (c) 2023, Dana Burkart <dana.burkart@gmail.com>
 *
 * SPDX-License-Identifier: BSD-2-Clause
 */

package interp

import (
	"fmt"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dburkart/reckon/pkg/calc/ast"
	"github.com/dburkart/reckon/pkg/calc/parser"
	"github.com/dburkart/reckon/pkg/calc/scanner"
	"github.com/dburkart/reckon/pkg/calc/token"
)

func evaluate(t *testing.T, input string) float64 {
	t.Helper()

	p, err := parser.New(scanner.New(input))
	require.NoError(t, err)

	node, err := p.Parse()
	require.NoError(t, err)

	val, err := Evaluate(node)
	require.NoError(t, err)

	return val
}

func TestEvaluate(t *testing.T) {
	tests := []struct {
		input string
		want  float64
	}{
		{"42", 42},
		{"2.5", 2.5},
		{"2 + 3", 5},
		{"7 / 2", 3.5},
		{"7 // 2", 3},
		{"-7 // 2", -4},
		{"7.5 // 2", 3},
		{"-7.5 // 2", -4},
		{"8 - 3 - 2", 3},
		{"2 + 3 * 4", 14},
		{"10 - 2 * 3", 4},
		{"(2 + 3) * 4", 20},
		{"--5", 5},
		{"+-+3", -3},
		{"7 % 3", 1},
		{"-7 % 3", -1},
		{"7 % -3", 1},
		{"5.5 % 2", 1.5},
		{"2 ** -1", 0.5},
		{"4 ** 0.5", 2},
		{"1.5e3 + 1", 1501},
		{"((((1))))", 1},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			assert.Equal(t, tt.want, evaluate(t, tt.input))
		})
	}
}

// Power shares the multiplicative level, associates to the left, and binds
// looser than unary minus. These expectations pin that grammar down.
func TestPowerAssociatesLeft(t *testing.T) {
	assert.Equal(t, 4.0, evaluate(t, "-2 ** 2"))
	assert.Equal(t, 64.0, evaluate(t, "2 ** 3 ** 2"))
	assert.Equal(t, 36.0, evaluate(t, "2 * 3 ** 2"))
	assert.Equal(t, 1.0, evaluate(t, "2 ** 3 % 7"))
}

func TestSimpleBinaryOps(t *testing.T) {
	operands := []float64{0, 1, 2, 3.5, 10, 17}
	ops := map[string]func(a, b float64) float64{
		"+": func(a, b float64) float64 { return a + b },
		"-": func(a, b float64) float64 { return a - b },
		"*": func(a, b float64) float64 { return a * b },
		"/": func(a, b float64) float64 { return a / b },
		"%": math.Mod,
	}

	for op, apply := range ops {
		for _, a := range operands {
			for _, b := range operands {
				input := fmt.Sprintf("%v %s %v", a, op, b)
				want := apply(a, b)
				got := evaluate(t, input)

				if math.IsNaN(want) {
					assert.True(t, math.IsNaN(got), "%s: wanted NaN, got %v", input, got)
					continue
				}
				assert.Equal(t, want, got, input)
			}
		}
	}
}

func TestIEEESpecials(t *testing.T) {
	assert.True(t, math.IsInf(evaluate(t, "1 / 0"), 1))
	assert.True(t, math.IsInf(evaluate(t, "-1 / 0"), -1))
	assert.True(t, math.IsInf(evaluate(t, "1 // 0"), 1))
	assert.True(t, math.IsNaN(evaluate(t, "0 / 0")))
	assert.True(t, math.IsNaN(evaluate(t, "5 % 0")))
	assert.True(t, math.IsNaN(evaluate(t, "(-8) ** 0.5")))
	assert.True(t, math.IsInf(evaluate(t, "1e999"), 1))
}

func TestInternalErrors(t *testing.T) {
	one := ast.MakeIntegerNode(token.Token{Kind: token.TOK_INTEGER, Text: "1", Pos: 0}, 1)
	paren := token.Token{Kind: token.TOK_PAREN_L, Text: "(", Pos: 2}

	_, err := Evaluate(ast.MakeBinaryOpNode(one, paren, one))
	var internal *InternalError
	require.ErrorAs(t, err, &internal)
	assert.Equal(t, paren, internal.Token)
	assert.Equal(t, "internal error: invalid binary operator TOK_PAREN_L at 2", err.Error())

	star := token.Token{Kind: token.TOK_STAR, Text: "*", Pos: 0}
	_, err = Evaluate(ast.MakeUnaryOpNode(star, one))
	require.ErrorAs(t, err, &internal)
	assert.Equal(t, star, internal.Token)

	// Errors in an operand surface unchanged through the parent
	plus := token.Token{Kind: token.TOK_PLUS, Text: "+", Pos: 4}
	_, err = Evaluate(ast.MakeBinaryOpNode(one, plus, ast.MakeUnaryOpNode(star, one)))
	require.ErrorAs(t, err, &internal)
	assert.Equal(t, star, internal.Token)

	_, err = Evaluate(ast.MakeUnaryOpNode(token.Token{Kind: token.TOK_MINUS, Text: "-"}, nil))
	require.ErrorAs(t, err, &internal)
}
