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

// Package printer renders MiniZinc ASTs back to source text.
//
// Printing happens in two stages. The mappers translate an expression or
// item into a document tree (package dom) that records text, candidate
// line breaks, grouping, and alignment; operator nodes are parenthesized
// only where the fixed precedence table requires it. The layout engine
// then walks the tree against a column budget, and a simplification pass
// greedily joins lines back together where the budget allows, preferring
// to keep breaks at the outermost structures.
//
// The output is syntactically valid MiniZinc that parses back to an
// equivalent tree; it is not a canonical form, and it need not be
// byte-identical to whatever source the AST came from.
package printer

import (
	"io"

	"github.com/mznbuild/mzncompile/ast"
	"github.com/mznbuild/mzncompile/dom"
)

// Options configures a [Printer].
type Options struct {
	// MaxWidth is the target column width. Defaults to 80. Lines exceed
	// it only when an atom is wider than the budget.
	MaxWidth int

	// IndentationBase is the fallback indentation used when aligning a
	// wrapped string would overflow, and the indentation step applied at
	// breaks inside non-aligned lists. Defaults to 4.
	IndentationBase int

	// DisableSimplify turns off the line-joining pass.
	DisableSimplify bool

	// DisableDeepSimplify stops breaks from being recorded as candidates
	// for the line-joining pass.
	DisableDeepSimplify bool
}

// WithDefaults replaces any unset (read: zero value) fields of an Options
// which specify a default value with that default value.
func (o Options) WithDefaults() Options {
	if o.MaxWidth == 0 {
		o.MaxWidth = 80
	}
	if o.IndentationBase == 0 {
		o.IndentationBase = 4
	}
	return o
}

// Printer renders expressions, items, and models to an output sink.
//
// A Printer owns a single layout engine whose state is reset between
// calls; it must not be used concurrently or re-entrantly. Distinct
// Printer instances share nothing and may run on separate goroutines.
type Printer struct {
	opts Options
	eng  *engine
}

// New returns a Printer with the given options.
func New(opts Options) *Printer {
	opts = opts.WithDefaults()
	return &Printer{opts: opts, eng: newEngine(opts)}
}

// PrintExpr renders a single expression to w.
func (p *Printer) PrintExpr(w io.Writer, e ast.Expr) error {
	return p.print(w, exprDoc(e))
}

// PrintItem renders a single top-level item to w.
func (p *Printer) PrintItem(w io.Writer, i ast.Item) error {
	return p.print(w, itemDoc(i))
}

// PrintModel renders every item of m to w, back to back. Each item is laid
// out independently. An empty model produces no output.
func (p *Printer) PrintModel(w io.Writer, m *ast.Model) error {
	p.eng.reset()
	for _, it := range m.Items {
		if err := p.eng.printRoot(itemDoc(it)); err != nil {
			return err
		}
	}
	return p.eng.flush(w)
}

func (p *Printer) print(w io.Writer, d dom.Doc) error {
	p.eng.reset()
	if err := p.eng.printRoot(d); err != nil {
		return err
	}
	return p.eng.flush(w)
}

// PrintExpr renders a single expression to w with the given options.
func PrintExpr(w io.Writer, e ast.Expr, opts Options) error {
	return New(opts).PrintExpr(w, e)
}

// PrintItem renders a single top-level item to w with the given options.
func PrintItem(w io.Writer, i ast.Item, opts Options) error {
	return New(opts).PrintItem(w, i)
}

// PrintModel renders a model to w with the given options.
func PrintModel(w io.Writer, m *ast.Model, opts Options) error {
	return New(opts).PrintModel(w, m)
}
