// Copyright 2023-2026 The mzncompile Authors.
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//      http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package printer

import (
	"fmt"

	"github.com/mznbuild/mzncompile/ast"
)

// precedence returns the binding precedence of an expression; a higher
// value binds more loosely. A let binds loosest of all; every other
// expression that is not a binary operator is an atom at zero.
func precedence(e ast.Expr) int {
	switch e := e.(type) {
	case *ast.BinOp:
		switch e.Op {
		case ast.BinOpEquiv:
			return 1200
		case ast.BinOpImpl, ast.BinOpRImpl:
			return 1100
		case ast.BinOpOr, ast.BinOpXor:
			return 1000
		case ast.BinOpAnd:
			return 900
		case ast.BinOpLess, ast.BinOpLessEq, ast.BinOpGreater, ast.BinOpGreaterEq,
			ast.BinOpEq, ast.BinOpNotEq:
			return 800
		case ast.BinOpIn, ast.BinOpSubset, ast.BinOpSuperset:
			return 700
		case ast.BinOpUnion, ast.BinOpDiff, ast.BinOpSymDiff:
			return 600
		case ast.BinOpDotDot:
			return 500
		case ast.BinOpPlus, ast.BinOpMinus:
			return 400
		case ast.BinOpMult, ast.BinOpDiv, ast.BinOpIntDiv, ast.BinOpMod,
			ast.BinOpIntersect:
			return 300
		case ast.BinOpConcat:
			return 200
		default:
			panic(fmt.Sprintf("printer: unknown binary operator %d", e.Op))
		}
	case *ast.Let:
		return 1300
	default:
		return 0
	}
}

// needParens decides which operands of a binary op must be parenthesized to
// preserve the tree under the fixed precedence table. Concatenation is
// right-associative; every other operator at equal precedence
// parenthesizes its right operand.
func needParens(bo *ast.BinOp) (left, right bool) {
	p := precedence(bo)
	pl := precedence(bo.Left)
	pr := precedence(bo.Right)
	left = p < pl || (p == pl && p == 200)
	right = p < pr || (p == pr && p != 200)
	return left, right
}
