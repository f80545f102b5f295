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
	"strconv"

	"github.com/mznbuild/mzncompile/ast"
	"github.com/mznbuild/mzncompile/dom"
)

// exprDoc returns the document for e: the expression's own document wrapped
// in an outer list, with the annotation chain appended when present.
func exprDoc(e ast.Expr) dom.Doc {
	dl := dom.NewList("", "", "")
	dl.Append(mapExpr(e))
	if ann := e.Annotations(); ann != nil {
		dl.Append(mapExpr(ann))
	}
	return dl
}

// mapExpr dispatches on the expression kind. An expression outside the
// declared set is a programmer error.
func mapExpr(e ast.Expr) dom.Doc {
	switch e := e.(type) {
	case *ast.IntLit:
		return dom.NewText(strconv.FormatInt(e.Value, 10))
	case *ast.FloatLit:
		return dom.NewText(strconv.FormatFloat(e.Value, 'g', -1, 64))
	case *ast.SetLit:
		return mapSetLit(e)
	case *ast.BoolLit:
		if e.Value {
			return dom.NewText("true")
		}
		return dom.NewText("false")
	case *ast.StringLit:
		return dom.NewText(`"` + e.Value + `"`)
	case *ast.Ident:
		return dom.NewText(e.Name)
	case *ast.TIID:
		return dom.NewText("$" + e.Name)
	case *ast.AnonVar:
		return dom.NewText("_")
	case *ast.ArrayLit:
		return mapArrayLit(e)
	case *ast.ArrayAccess:
		return mapArrayAccess(e)
	case *ast.Comprehension:
		return mapComprehension(e)
	case *ast.IfThenElse:
		return mapIfThenElse(e)
	case *ast.BinOp:
		return mapBinOp(e)
	case *ast.UnOp:
		return mapUnOp(e)
	case *ast.Call:
		return mapCall(e)
	case *ast.VarDecl:
		return mapVarDecl(e)
	case *ast.Let:
		return mapLet(e)
	case *ast.Annotation:
		return mapAnnotation(e)
	case *ast.TypeInst:
		return mapTypeInst(e)
	default:
		panic(fmt.Sprintf("printer: unknown expression kind %T", e))
	}
}

func mapSetLit(sl *ast.SetLit) dom.Doc {
	if !sl.IsCompact() {
		dl := dom.NewList("{", ", ", "}")
		for _, e := range sl.Elems {
			dl.Append(exprDoc(e))
		}
		return dl
	}

	if len(sl.Ranges) == 1 {
		r := sl.Ranges[0]
		dl := dom.NewUnalignedList("", "..", "")
		dl.AppendText(strconv.FormatInt(r.Min, 10))
		dl.AppendText(strconv.FormatInt(r.Max, 10))
		return dl
	}

	// Multiple ranges are expanded to their values.
	dl := dom.NewList("{", ", ", "}")
	for _, r := range sl.Ranges {
		for v := r.Min; v <= r.Max; v++ {
			dl.AppendText(strconv.FormatInt(v, 10))
		}
	}
	return dl
}

func mapArrayLit(al *ast.ArrayLit) dom.Doc {
	n := len(al.Dims)
	switch {
	case n == 1 && al.Dims[0].Min == 1:
		dl := dom.NewList("[", ", ", "]")
		for _, e := range al.Elems {
			dl.Append(exprDoc(e))
		}
		return dl

	case n == 2 && al.Dims[0].Min == 1 && al.Dims[1].Min == 1:
		dl := dom.NewList("[| ", " | ", " |]")
		rows := al.Dims[0].Max
		cols := al.Dims[1].Max
		for i := 0; i < rows; i++ {
			row := dom.NewList("", ", ", "")
			for j := 0; j < cols; j++ {
				row.Append(exprDoc(al.Elems[i*cols+j]))
			}
			dl.Append(row)
			if i != rows-1 {
				dl.AppendBreak(true)
			}
		}
		return dl

	default:
		dl := dom.NewList("", "", "")
		dl.AppendText(fmt.Sprintf("array%dd", n))
		args := dom.NewList("(", ", ", ")")
		for _, d := range al.Dims {
			args.AppendText(fmt.Sprintf("%d..%d", d.Min, d.Max))
		}
		arr := dom.NewList("[", ", ", "]")
		for _, e := range al.Elems {
			arr.Append(exprDoc(e))
		}
		args.Append(arr)
		dl.Append(args)
		return dl
	}
}

func mapArrayAccess(aa *ast.ArrayAccess) dom.Doc {
	dl := dom.NewList("", "", "")
	dl.Append(exprDoc(aa.Array))
	idx := dom.NewList("[", ", ", "]")
	for _, e := range aa.Index {
		idx.Append(exprDoc(e))
	}
	dl.Append(idx)
	return dl
}

func mapComprehension(c *ast.Comprehension) dom.Doc {
	var dl *dom.List
	if c.Set {
		dl = dom.NewList("{ ", " | ", " }")
	} else {
		dl = dom.NewList("[ ", " | ", " ]")
	}
	dl.Append(exprDoc(c.Body))

	head := dom.NewList("", " ", "")
	generators := dom.NewList("", ", ", "")
	for _, g := range c.Generators {
		gen := dom.NewList("", "", "")
		idents := dom.NewList("", ", ", "")
		for _, name := range g.Names {
			idents.AppendText(name)
		}
		gen.Append(idents)
		gen.AppendText(" in ")
		gen.Append(exprDoc(g.In))
		generators.Append(gen)
	}
	head.Append(generators)
	if c.Where != nil {
		head.AppendText("where")
		head.Append(exprDoc(c.Where))
	}
	dl.Append(head)
	return dl
}

func mapIfThenElse(ite *ast.IfThenElse) dom.Doc {
	dl := dom.NewList("", "", "")
	for i, br := range ite.Branches {
		if i == 0 {
			dl.AppendText("if ")
		} else {
			dl.AppendText(" elseif ")
		}
		dl.Append(exprDoc(br.Cond))
		dl.AppendText(" then ")

		then := dom.NewUnalignedList("", "", "")
		then.AppendBreak(false)
		then.Append(exprDoc(br.Then))
		dl.Append(then)
		dl.AppendText(" ")
	}
	dl.AppendBreak(false)
	dl.AppendText("else ")

	els := dom.NewUnalignedList("", "", "")
	els.AppendBreak(false)
	els.Append(exprDoc(ite.Else))
	dl.Append(els)
	dl.AppendText(" ")
	dl.AppendBreak(false)
	dl.AppendText("endif")
	return dl
}

// binOpText maps each binary operator to its textual form. Operators that
// are words rather than symbols carry their surrounding spaces.
func binOpText(op ast.BinOpKind) string {
	switch op {
	case ast.BinOpPlus:
		return "+"
	case ast.BinOpMinus:
		return "-"
	case ast.BinOpMult:
		return "*"
	case ast.BinOpDiv:
		return "/"
	case ast.BinOpIntDiv:
		return " div "
	case ast.BinOpMod:
		return " mod "
	case ast.BinOpLess:
		return "<"
	case ast.BinOpLessEq:
		return "<="
	case ast.BinOpGreater:
		return ">"
	case ast.BinOpGreaterEq:
		return ">="
	case ast.BinOpEq:
		return "=="
	case ast.BinOpNotEq:
		return "!="
	case ast.BinOpIn:
		return " in "
	case ast.BinOpSubset:
		return " subset "
	case ast.BinOpSuperset:
		return " superset "
	case ast.BinOpUnion:
		return " union "
	case ast.BinOpDiff:
		return " diff "
	case ast.BinOpSymDiff:
		return " symdiff "
	case ast.BinOpIntersect:
		return " intersect "
	case ast.BinOpConcat:
		return "++"
	case ast.BinOpEquiv:
		return " <-> "
	case ast.BinOpImpl:
		return " -> "
	case ast.BinOpRImpl:
		return " <- "
	case ast.BinOpOr:
		return ` \/ `
	case ast.BinOpAnd:
		return ` /\ `
	case ast.BinOpXor:
		return " xor "
	case ast.BinOpDotDot:
		return ".."
	default:
		panic(fmt.Sprintf("printer: unknown binary operator %d", op))
	}
}

// linebreakPreferred reports whether a break is inserted between the
// operands of op.
func linebreakPreferred(op ast.BinOpKind) bool {
	return op == ast.BinOpConcat || op == ast.BinOpOr || op == ast.BinOpAnd
}

func mapBinOp(bo *ast.BinOp) dom.Doc {
	parenLeft, parenRight := needParens(bo)

	var opLeft *dom.List
	if parenLeft {
		opLeft = dom.NewList("(", " ", ")")
	} else {
		opLeft = dom.NewList("", " ", "")
	}
	opLeft.Append(exprDoc(bo.Left))

	var opRight *dom.List
	if parenRight {
		opRight = dom.NewList("(", " ", ")")
	} else {
		opRight = dom.NewList("", "", "")
	}
	opRight.Append(exprDoc(bo.Right))

	dl := dom.NewList("", binOpText(bo.Op), "")
	dl.Append(opLeft)
	if linebreakPreferred(bo.Op) {
		dl.AppendBreak(false)
	}
	dl.Append(opRight)
	return dl
}

func mapUnOp(uo *ast.UnOp) dom.Doc {
	dl := dom.NewList("", "", "")
	switch uo.Op {
	case ast.UnOpNot:
		dl.AppendText("not ")
	case ast.UnOpPlus:
		dl.AppendText("+")
	case ast.UnOpMinus:
		dl.AppendText("-")
	default:
		panic(fmt.Sprintf("printer: unknown unary operator %d", uo.Op))
	}

	var operand *dom.List
	switch uo.Operand.(type) {
	case *ast.BinOp, *ast.UnOp:
		operand = dom.NewList("(", " ", ")")
	default:
		operand = dom.NewList("", " ", "")
	}
	operand.Append(exprDoc(uo.Operand))
	dl.Append(operand)
	return dl
}

func mapCall(c *ast.Call) dom.Doc {
	// A call whose sole argument is a list comprehension reads better in
	// generator-outside form: forall([f(i) | i in 1..10]) becomes
	// forall ( i in 1..10 ) ( f(i) ).
	if len(c.Args) == 1 {
		if com, ok := c.Args[0].(*ast.Comprehension); ok && !com.Set {
			dl := dom.NewList("", " ", "")
			dl.AppendText(c.Name)

			args := dom.NewUnalignedList("", " ", "")
			generators := dom.NewList("", ", ", "")
			for _, g := range com.Generators {
				vds := dom.NewList("", ",", "")
				for _, name := range g.Names {
					vds.AppendText(name)
				}
				gen := dom.NewList("", "", "")
				gen.Append(vds)
				gen.AppendText(" in ")
				gen.Append(exprDoc(g.In))
				generators.Append(gen)
			}

			args.AppendText("(")
			args.Append(generators)
			if com.Where != nil {
				args.AppendText("where")
				args.Append(exprDoc(com.Where))
			}
			args.AppendText(")")

			args.AppendText("(")
			args.AppendBreak(false)
			args.Append(exprDoc(com.Body))

			dl.Append(args)
			dl.AppendBreak(false)
			dl.AppendText(")")
			return dl
		}
	}

	dl := dom.NewList(c.Name+"(", ", ", ")")
	for _, a := range c.Args {
		dl.Append(exprDoc(a))
	}
	return dl
}

func mapVarDecl(vd *ast.VarDecl) dom.Doc {
	dl := dom.NewList("", "", "")
	dl.Append(exprDoc(vd.TI))
	dl.AppendText(": ")
	dl.AppendText(vd.Name)
	if vd.Introduced {
		dl.AppendText(" ::var_is_introduced ")
	}
	if vd.RHS != nil {
		dl.AppendText(" = ")
		dl.Append(exprDoc(vd.RHS))
	}
	return dl
}

func mapLet(l *ast.Let) dom.Doc {
	letin := dom.NewUnalignedList("", "", "")
	lets := dom.NewList("", " ", "")
	inexpr := dom.NewList("", "", "")
	// A single binding may fold back onto one line; two or more stay apart.
	ds := len(l.Bindings) > 1

	for i, li := range l.Bindings {
		if i != 0 {
			lets.AppendBreak(ds)
		}
		exp := dom.NewList("", " ", ",")
		if _, ok := li.(*ast.VarDecl); !ok {
			exp.AppendText("constraint")
		}
		exp.Append(exprDoc(li))
		lets.Append(exp)
	}

	inexpr.Append(exprDoc(l.In))
	letin.AppendBreak(ds)
	letin.Append(lets)

	letin2 := dom.NewUnalignedList("", "", "")
	letin2.AppendBreak(false)
	letin2.Append(inexpr)

	dl := dom.NewList("", "", "")
	dl.AppendText("let {")
	dl.Append(letin)
	dl.AppendBreak(ds)
	dl.AppendText("} in (")
	dl.Append(letin2)
	dl.AppendText(")")
	return dl
}

func mapAnnotation(an *ast.Annotation) dom.Doc {
	dl := dom.NewList(" :: ", " :: ", "")
	for a := an; a != nil; a = a.Next {
		dl.Append(exprDoc(a.Expr))
	}
	return dl
}

func mapTypeInst(ti *ast.TypeInst) dom.Doc {
	dl := dom.NewList("", "", "")
	if ti.IsArray() {
		dl.AppendText("array[")
		ran := dom.NewList("", ", ", "")
		for _, r := range ti.Ranges {
			ran.Append(tiExprDoc(ast.ParInt(), r))
		}
		dl.Append(ran)
		dl.AppendText("] of ")
	}
	dl.Append(tiExprDoc(ti.Type, ti.Domain))
	return dl
}

// tiExprDoc renders the base of a type-inst: the inst and set qualifiers,
// then either the domain expression or the textual base type.
func tiExprDoc(t ast.Type, e ast.Expr) dom.Doc {
	dl := dom.NewUnalignedList("", "", "")
	switch t.Inst {
	case ast.InstPar:
	case ast.InstVar:
		dl.AppendText("var ")
	case ast.InstSvar:
		dl.AppendText("svar ")
	case ast.InstAny:
		dl.AppendText("any ")
	}
	if t.Set {
		dl.AppendText("set of ")
	}
	if e == nil {
		switch t.Base {
		case ast.BaseInt:
			dl.AppendText("int")
		case ast.BaseBool:
			dl.AppendText("bool")
		case ast.BaseFloat:
			dl.AppendText("float")
		case ast.BaseString:
			dl.AppendText("string")
		case ast.BaseAnn:
			dl.AppendText("ann")
		case ast.BaseBot:
			dl.AppendText("bot")
		default:
			dl.AppendText("???")
		}
	} else {
		dl.Append(exprDoc(e))
	}
	return dl
}
