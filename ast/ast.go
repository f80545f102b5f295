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

// Package ast defines the MiniZinc abstract syntax tree consumed by the
// printer.
//
// The tree is a plain tagged-variant representation: every [Expr] and every
// [Item] reports a stable discriminator ([ExprKind], [ItemKind]) alongside
// typed fields. Nodes carry no source positions, comments, or resolved type
// information beyond the declared type-insts; the printer needs none of
// those.
//
// The AST is read-only from the printer's point of view. Nothing in this
// package mutates a node after construction.
package ast

// Model is an ordered sequence of top-level items.
type Model struct {
	Items []Item
}

const (
	ItemInvalid ItemKind = iota

	ItemInclude    // See [Include].
	ItemVarDecl    // See [VarDeclItem].
	ItemAssign     // See [Assign].
	ItemConstraint // See [Constraint].
	ItemSolve      // See [Solve].
	ItemOutput     // See [Output].
	ItemFunction   // See [Function].
)

// ItemKind is a discriminator for the top-level item variants.
type ItemKind byte

// Item is a top-level model item.
type Item interface {
	ItemKind() ItemKind
}

// Include is an `include "file";` item.
type Include struct {
	File string
}

// VarDeclItem is a top-level variable declaration item.
type VarDeclItem struct {
	Decl *VarDecl
}

// Assign is a top-level `id = expr;` item.
type Assign struct {
	Name  string
	Value Expr
}

// Constraint is a `constraint expr;` item.
type Constraint struct {
	Expr Expr
}

const (
	SolveSatisfy SolveGoal = iota
	SolveMinimize
	SolveMaximize
)

// SolveGoal enumerates the goal of a [Solve] item.
type SolveGoal byte

// Solve is the model's solve item.
//
// Objective is nil when Goal is [SolveSatisfy].
type Solve struct {
	Ann       *Annotation
	Goal      SolveGoal
	Objective Expr
}

// Output is an `output expr;` item.
type Output struct {
	Expr Expr
}

// Function is a function, predicate, test, or annotation declaration.
//
// The rendered keyword is derived from the declared type-inst: `annotation`
// for an ann-typed item without a body, `test` for par bool, `predicate` for
// var bool, and `function <ti>:` otherwise.
type Function struct {
	TI     *TypeInst
	Name   string
	Params []*VarDecl
	Ann    *Annotation
	Body   Expr
}

func (Include) ItemKind() ItemKind     { return ItemInclude }
func (VarDeclItem) ItemKind() ItemKind { return ItemVarDecl }
func (Assign) ItemKind() ItemKind      { return ItemAssign }
func (Constraint) ItemKind() ItemKind  { return ItemConstraint }
func (Solve) ItemKind() ItemKind       { return ItemSolve }
func (Output) ItemKind() ItemKind      { return ItemOutput }
func (Function) ItemKind() ItemKind    { return ItemFunction }
