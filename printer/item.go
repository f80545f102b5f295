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
	"github.com/mznbuild/mzncompile/dom"
)

// itemDoc returns the document for one top-level item.
func itemDoc(i ast.Item) dom.Doc {
	switch i := i.(type) {
	case ast.Include:
		return dom.NewText(`include "` + i.File + `";`)

	case ast.VarDeclItem:
		dl := dom.NewList("", " ", ";")
		dl.Append(exprDoc(i.Decl))
		return dl

	case ast.Assign:
		dl := dom.NewList("", " = ", ";")
		dl.AppendText(i.Name)
		dl.Append(exprDoc(i.Value))
		return dl

	case ast.Constraint:
		dl := dom.NewList("constraint ", " ", ";")
		dl.Append(exprDoc(i.Expr))
		return dl

	case ast.Solve:
		dl := dom.NewList("", "", ";")
		dl.AppendText("solve")
		if i.Ann != nil {
			dl.Append(exprDoc(i.Ann))
		}
		switch i.Goal {
		case ast.SolveSatisfy:
			dl.AppendText(" satisfy")
		case ast.SolveMinimize:
			dl.AppendText(" minimize ")
			dl.Append(exprDoc(i.Objective))
		case ast.SolveMaximize:
			dl.AppendText(" maximize ")
			dl.Append(exprDoc(i.Objective))
		}
		return dl

	case ast.Output:
		dl := dom.NewList("output ", " ", ";")
		dl.Append(exprDoc(i.Expr))
		return dl

	case ast.Function:
		return functionDoc(i)

	default:
		panic(fmt.Sprintf("printer: unknown item kind %T", i))
	}
}

func functionDoc(fi ast.Function) dom.Doc {
	var dl *dom.List
	switch {
	case fi.TI.Type.IsAnn() && fi.Body == nil:
		dl = dom.NewUnalignedList("annotation ", " ", ";")
	case fi.TI.Type == ast.ParBool():
		dl = dom.NewUnalignedList("test ", "", ";")
	case fi.TI.Type == ast.VarBool():
		dl = dom.NewUnalignedList("predicate ", "", ";")
	default:
		dl = dom.NewUnalignedList("function ", "", ";")
		dl.Append(exprDoc(fi.TI))
		dl.AppendText(": ")
	}

	dl.AppendText(fi.Name)
	if len(fi.Params) > 0 {
		params := dom.NewList("(", ", ", ")")
		for _, p := range fi.Params {
			par := dom.NewList("", "", "")
			par.SetUnbreakable(true)
			par.Append(exprDoc(p))
			params.Append(par)
		}
		dl.Append(params)
	}
	if fi.Ann != nil {
		dl.Append(exprDoc(fi.Ann))
	}
	if fi.Body != nil {
		dl.AppendText(" = ")
		dl.AppendBreak(false)
		dl.Append(exprDoc(fi.Body))
	}
	return dl
}
