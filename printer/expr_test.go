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
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mznbuild/mzncompile/ast"
)

func intLit(v int64) *ast.IntLit { return &ast.IntLit{Value: v} }

func ident(name string) *ast.Ident { return &ast.Ident{Name: name} }

func boolLit(v bool) *ast.BoolLit { return &ast.BoolLit{Value: v} }

func dotdot(lo, hi int64) *ast.BinOp { return bin(ast.BinOpDotDot, intLit(lo), intLit(hi)) }

func call(name string, args ...ast.Expr) *ast.Call {
	return &ast.Call{Name: name, Args: args}
}

func bin(op ast.BinOpKind, l, r ast.Expr) *ast.BinOp {
	return &ast.BinOp{Op: op, Left: l, Right: r}
}

func parIntTI() *ast.TypeInst {
	return &ast.TypeInst{Type: ast.ParInt()}
}

func varIntTI() *ast.TypeInst {
	return &ast.TypeInst{Type: ast.Type{Inst: ast.InstVar, Base: ast.BaseInt}}
}

func renderExpr(t *testing.T, e ast.Expr, opts Options) string {
	t.Helper()
	var buf strings.Builder
	require.NoError(t, PrintExpr(&buf, e, opts))
	return buf.String()
}

func TestPrintExpr(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		expr ast.Expr
		want string
	}{
		{"int literal", intLit(42), "42\n"},
		{"negative int literal", intLit(-7), "-7\n"},
		{"float literal", &ast.FloatLit{Value: 2.5}, "2.5\n"},
		{"bool true", boolLit(true), "true\n"},
		{"bool false", boolLit(false), "false\n"},
		{"string literal", &ast.StringLit{Value: "hello"}, "\"hello\"\n"},
		{"identifier", ident("x"), "x\n"},
		{"type-inst identifier", &ast.TIID{Name: "T"}, "$T\n"},
		{"anonymous variable", &ast.AnonVar{}, "_\n"},

		{
			"enumerated set",
			&ast.SetLit{Elems: []ast.Expr{intLit(1), intLit(2), intLit(3)}},
			"{1, 2, 3}\n",
		},
		{"empty set", &ast.SetLit{}, "{}\n"},
		{
			"compact set single range",
			&ast.SetLit{Ranges: []ast.IntRange{{Min: 1, Max: 3}}},
			"1..3\n",
		},
		{
			"compact set multiple ranges expands",
			&ast.SetLit{Ranges: []ast.IntRange{{Min: 1, Max: 2}, {Min: 5, Max: 5}}},
			"{1, 2, 5}\n",
		},

		{
			"1d array",
			&ast.ArrayLit{
				Dims:  []ast.IndexRange{{Min: 1, Max: 3}},
				Elems: []ast.Expr{intLit(1), intLit(2), intLit(3)},
			},
			"[1, 2, 3]\n",
		},
		{
			"1d array with offset base",
			&ast.ArrayLit{
				Dims:  []ast.IndexRange{{Min: 0, Max: 1}},
				Elems: []ast.Expr{intLit(5), intLit(6)},
			},
			"array1d(0..1, [5, 6])\n",
		},
		{
			"2d array keeps rows apart",
			&ast.ArrayLit{
				Dims:  []ast.IndexRange{{Min: 1, Max: 2}, {Min: 1, Max: 2}},
				Elems: []ast.Expr{intLit(1), intLit(2), intLit(3), intLit(4)},
			},
			"[| 1, 2 | \n   3, 4 |]\n",
		},
		{
			"3d array",
			&ast.ArrayLit{
				Dims:  []ast.IndexRange{{Min: 1, Max: 1}, {Min: 1, Max: 1}, {Min: 1, Max: 2}},
				Elems: []ast.Expr{intLit(1), intLit(2)},
			},
			"array3d(1..1, 1..1, 1..2, [1, 2])\n",
		},

		{
			"array access",
			&ast.ArrayAccess{Array: ident("x"), Index: []ast.Expr{intLit(1), intLit(2)}},
			"x[1, 2]\n",
		},

		{
			"list comprehension",
			&ast.Comprehension{
				Body:       call("f", ident("i")),
				Generators: []ast.Generator{{Names: []string{"i"}, In: ident("s")}},
			},
			"[ f(i) | i in s ]\n",
		},
		{
			"list comprehension with where",
			&ast.Comprehension{
				Body:       call("f", ident("i")),
				Generators: []ast.Generator{{Names: []string{"i"}, In: ident("s")}},
				Where:      bin(ast.BinOpGreater, ident("i"), intLit(2)),
			},
			"[ f(i) | i in s where i>2 ]\n",
		},
		{
			"set comprehension",
			&ast.Comprehension{
				Set:        true,
				Body:       bin(ast.BinOpMult, ident("i"), intLit(2)),
				Generators: []ast.Generator{{Names: []string{"i"}, In: ident("s")}},
			},
			"{ i*2 | i in s }\n",
		},

		{
			"if-then-else",
			&ast.IfThenElse{
				Branches: []ast.IfBranch{{Cond: ident("b"), Then: intLit(1)}},
				Else:     intLit(2),
			},
			"if b then 1 else 2 endif\n",
		},
		{
			"if-then-elseif",
			&ast.IfThenElse{
				Branches: []ast.IfBranch{
					{Cond: ident("a"), Then: intLit(1)},
					{Cond: ident("b"), Then: intLit(2)},
				},
				Else: intLit(3),
			},
			"if a then 1  elseif b then 2 else 3 endif\n",
		},

		{
			"multiplication binds tighter",
			bin(ast.BinOpPlus, intLit(1), bin(ast.BinOpMult, intLit(2), intLit(3))),
			"1+2*3\n",
		},
		{
			"parenthesized left operand",
			bin(ast.BinOpMult, bin(ast.BinOpPlus, intLit(1), intLit(2)), intLit(3)),
			"(1+2)*3\n",
		},
		{
			"parenthesized right operand",
			bin(ast.BinOpMinus, intLit(1), bin(ast.BinOpMinus, intLit(2), intLit(3))),
			"1-(2-3)\n",
		},
		{
			"right-associative concatenation",
			bin(ast.BinOpConcat, ident("a"), bin(ast.BinOpConcat, ident("b"), ident("c"))),
			"a++b++c\n",
		},
		{
			"worded operator",
			bin(ast.BinOpIntDiv, ident("a"), ident("b")),
			"a div b\n",
		},
		{
			"set operator",
			bin(ast.BinOpUnion, ident("s"), ident("t")),
			"s union t\n",
		},
		{
			"logic operators",
			bin(ast.BinOpImpl, bin(ast.BinOpAnd, ident("a"), ident("b")), ident("c")),
			"a /\\ b -> c\n",
		},
		{
			"range operator",
			dotdot(1, 10),
			"1..10\n",
		},

		{"not", &ast.UnOp{Op: ast.UnOpNot, Operand: ident("b")}, "not b\n"},
		{"unary minus", &ast.UnOp{Op: ast.UnOpMinus, Operand: intLit(5)}, "-5\n"},
		{
			"unary operand parenthesized",
			&ast.UnOp{Op: ast.UnOpMinus, Operand: bin(ast.BinOpPlus, ident("x"), intLit(1))},
			"-(x+1)\n",
		},
		{
			"nested unary parenthesized",
			&ast.UnOp{Op: ast.UnOpNot, Operand: &ast.UnOp{Op: ast.UnOpNot, Operand: ident("b")}},
			"not (not b)\n",
		},

		{"call", call("f", intLit(1), intLit(2)), "f(1, 2)\n"},
		{"call without arguments", call("f"), "f()\n"},
		{
			"call over list comprehension",
			call("forall", &ast.Comprehension{
				Body:       call("f", ident("i")),
				Generators: []ast.Generator{{Names: []string{"i"}, In: dotdot(1, 10)}},
			}),
			"forall ( i in 1..10 ) ( f(i) )\n",
		},
		{
			"call over comprehension with where",
			call("forall", &ast.Comprehension{
				Body:       &ast.ArrayAccess{Array: ident("x"), Index: []ast.Expr{ident("i")}},
				Generators: []ast.Generator{{Names: []string{"i"}, In: dotdot(1, 10)}},
				Where:      ident("b"),
			}),
			"forall ( i in 1..10 where b ) ( x[i] )\n",
		},
		{
			"call over set comprehension stays a call",
			call("card", &ast.Comprehension{
				Set:        true,
				Body:       ident("i"),
				Generators: []ast.Generator{{Names: []string{"i"}, In: ident("s")}},
			}),
			"card({ i | i in s })\n",
		},

		{
			"variable declaration",
			&ast.VarDecl{TI: varIntTI(), Name: "x", RHS: intLit(1)},
			"var int: x = 1\n",
		},
		{
			"introduced variable declaration",
			&ast.VarDecl{TI: varIntTI(), Name: "x", Introduced: true, RHS: intLit(1)},
			"var int: x ::var_is_introduced  = 1\n",
		},
		{
			"declaration with domain",
			&ast.VarDecl{
				TI:   &ast.TypeInst{Type: ast.Type{Inst: ast.InstVar, Base: ast.BaseInt}, Domain: dotdot(1, 9)},
				Name: "q",
			},
			"var 1..9: q\n",
		},

		{
			"single-binding let folds",
			&ast.Let{
				Bindings: []ast.Expr{&ast.VarDecl{TI: varIntTI(), Name: "x", RHS: intLit(1)}},
				In:       ident("x"),
			},
			"let {var int: x = 1,} in (x)\n",
		},

		{
			"annotation chain",
			&ast.Ident{
				Name: "x",
				Annotated: ast.Annotated{Ann: &ast.Annotation{
					Expr: ident("a1"),
					Next: &ast.Annotation{Expr: ident("a2")},
				}},
			},
			"x :: a1 :: a2\n",
		},

		{"type-inst par int", parIntTI(), "int\n"},
		{"type-inst var int", varIntTI(), "var int\n"},
		{
			"type-inst var set of int",
			&ast.TypeInst{Type: ast.Type{Inst: ast.InstVar, Set: true, Base: ast.BaseInt}},
			"var set of int\n",
		},
		{
			"type-inst any",
			&ast.TypeInst{Type: ast.Type{Inst: ast.InstAny, Base: ast.BaseBool}},
			"any bool\n",
		},
		{
			"type-inst svar",
			&ast.TypeInst{Type: ast.Type{Inst: ast.InstSvar, Base: ast.BaseFloat}},
			"svar float\n",
		},
		{
			"type-inst unknown base",
			&ast.TypeInst{Type: ast.Type{Inst: ast.InstPar, Base: ast.BaseUnknown}},
			"???\n",
		},
		{
			"type-inst bot",
			&ast.TypeInst{Type: ast.Type{Base: ast.BaseBot}},
			"bot\n",
		},
		{
			"type-inst ann",
			&ast.TypeInst{Type: ast.Type{Base: ast.BaseAnn}},
			"ann\n",
		},
		{
			"type-inst string",
			&ast.TypeInst{Type: ast.Type{Base: ast.BaseString}},
			"string\n",
		},
		{
			"array type-inst",
			&ast.TypeInst{
				Type:   ast.Type{Inst: ast.InstVar, Base: ast.BaseInt},
				Ranges: []ast.Expr{dotdot(1, 8)},
				Domain: dotdot(0, 1),
			},
			"array[1..8] of var 0..1\n",
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.want, renderExpr(t, tt.expr, Options{}))
		})
	}
}

func TestPrintExprNarrowWidths(t *testing.T) {
	t.Parallel()

	t.Run("concatenation chain breaks", func(t *testing.T) {
		t.Parallel()
		e := bin(ast.BinOpConcat, ident("a"), bin(ast.BinOpConcat, ident("b"), ident("c")))
		assert.Equal(t, "a++b++c\n", renderExpr(t, e, Options{}))
		assert.Equal(t, "a++\nb++\nc\n", renderExpr(t, e, Options{MaxWidth: 3}))
	})

	t.Run("if-then-else breaks at keywords", func(t *testing.T) {
		t.Parallel()
		e := &ast.IfThenElse{
			Branches: []ast.IfBranch{{Cond: ident("b"), Then: intLit(1)}},
			Else:     intLit(2),
		}
		assert.Equal(t, "if b then 1 else 2 endif\n", renderExpr(t, e, Options{}))
		assert.Equal(t,
			"if b then \n    1 \nelse \n    2 \nendif\n",
			renderExpr(t, e, Options{MaxWidth: 10}))
	})

	t.Run("conjunction chain stays within width", func(t *testing.T) {
		t.Parallel()
		e := bin(ast.BinOpAnd, bin(ast.BinOpAnd, ident("a"), ident("b")), ident("c"))
		got := renderExpr(t, e, Options{MaxWidth: 6})
		assert.Equal(t, "a /\\ \nb /\\ \nc\n", got)
		for _, l := range strings.Split(strings.TrimSuffix(got, "\n"), "\n") {
			assert.LessOrEqual(t, len(l), 6)
		}
	})

	t.Run("two-binding let stays apart", func(t *testing.T) {
		t.Parallel()
		e := &ast.Let{
			Bindings: []ast.Expr{
				&ast.VarDecl{TI: varIntTI(), Name: "x", RHS: intLit(1)},
				bin(ast.BinOpGreater, ident("x"), intLit(0)),
			},
			In: ident("x"),
		}
		assert.Equal(t,
			"let {\n    var int: x = 1, \n    constraint x>0,\n} in (x)\n",
			renderExpr(t, e, Options{}))
	})
}

func TestPrintExprUnknownKindPanics(t *testing.T) {
	t.Parallel()

	assert.Panics(t, func() {
		var buf strings.Builder
		_ = PrintExpr(&buf, nil, Options{})
	})
}
