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

package ast

const (
	ExprInvalid ExprKind = iota

	ExprIntLit
	ExprFloatLit
	ExprSetLit
	ExprBoolLit
	ExprStringLit
	ExprIdent
	ExprAnonVar
	ExprArrayLit
	ExprArrayAccess
	ExprComprehension
	ExprIfThenElse
	ExprBinOp
	ExprUnOp
	ExprCall
	ExprVarDecl
	ExprLet
	ExprAnnotation
	ExprTypeInst
	ExprTIID
)

// ExprKind is a discriminator for the expression variants.
type ExprKind byte

// Expr is a MiniZinc expression.
//
// Every expression may carry an optional annotation chain, which the printer
// renders after the expression proper.
type Expr interface {
	ExprKind() ExprKind
	Annotations() *Annotation
}

// Annotated carries the optional annotation chain of an expression. It is
// embedded by every expression variant.
type Annotated struct {
	Ann *Annotation
}

// Annotations returns the head of the annotation chain, or nil.
func (a *Annotated) Annotations() *Annotation { return a.Ann }

// IntLit is an integer literal.
type IntLit struct {
	Annotated
	Value int64
}

// FloatLit is a float literal.
type FloatLit struct {
	Annotated
	Value float64
}

// BoolLit is `true` or `false`.
type BoolLit struct {
	Annotated
	Value bool
}

// StringLit is a string literal. Value is stored without the surrounding
// quotes and is assumed to already be escape-ready.
type StringLit struct {
	Annotated
	Value string
}

// Ident is an identifier reference.
type Ident struct {
	Annotated
	Name string
}

// TIID is a type-inst identifier, rendered as `$` followed by the name.
type TIID struct {
	Annotated
	Name string
}

// AnonVar is the anonymous variable `_`.
type AnonVar struct {
	Annotated
}

// IntRange is a closed integer interval.
type IntRange struct {
	Min, Max int64
}

// SetLit is a set literal.
//
// Exactly one of Elems and Ranges is set. Elems holds an enumerated set of
// expressions; Ranges holds the compact representation of an integer set as
// a union of disjoint closed intervals.
type SetLit struct {
	Annotated
	Elems  []Expr
	Ranges []IntRange
}

// IsCompact reports whether the literal uses the compact integer-range
// representation.
func (s *SetLit) IsCompact() bool { return s.Ranges != nil }

// IndexRange is the index set of one array dimension.
type IndexRange struct {
	Min, Max int
}

// ArrayLit is an array literal with its index sets.
//
// Elems is stored in row-major order; its length is the product of the
// dimension extents.
type ArrayLit struct {
	Annotated
	Dims  []IndexRange
	Elems []Expr
}

// ArrayAccess is `array[i1, ..., ik]`.
type ArrayAccess struct {
	Annotated
	Array Expr
	Index []Expr
}

// Generator is one `ids in source` generator of a comprehension.
type Generator struct {
	Names []string
	In    Expr
}

// Comprehension is a list or set comprehension.
type Comprehension struct {
	Annotated
	Set        bool // `{ ... }` rather than `[ ... ]`
	Body       Expr
	Generators []Generator
	Where      Expr // optional
}

// IfBranch is one condition/consequence pair of an [IfThenElse].
type IfBranch struct {
	Cond Expr
	Then Expr
}

// IfThenElse is an if-then-elseif-else-endif chain. Branches is never empty.
type IfThenElse struct {
	Annotated
	Branches []IfBranch
	Else     Expr
}

// BinOp is a binary operator application.
type BinOp struct {
	Annotated
	Op    BinOpKind
	Left  Expr
	Right Expr
}

// UnOp is a unary operator application.
type UnOp struct {
	Annotated
	Op      UnOpKind
	Operand Expr
}

// Call is a call `name(args...)`.
type Call struct {
	Annotated
	Name string
	Args []Expr
}

// VarDecl is a variable declaration, either top-level (via [VarDeclItem]),
// as a let binding, or as a function parameter.
//
// Introduced marks compiler-introduced variables; the printer renders the
// `::var_is_introduced` marker for them.
type VarDecl struct {
	Annotated
	TI         *TypeInst
	Name       string
	Introduced bool
	RHS        Expr // optional
}

// Let is a let expression. Each binding is either a *VarDecl or an
// arbitrary expression, which the printer renders as a constraint.
type Let struct {
	Annotated
	Bindings []Expr
	In       Expr
}

// Annotation is one link of an annotation chain.
type Annotation struct {
	Annotated
	Expr Expr
	Next *Annotation
}

// TypeInst is a type-inst expression.
//
// Ranges is non-nil for array type-insts, holding the type-inst expression
// of each dimension's index set. Domain is the optional domain expression;
// when nil the base type is rendered textually.
type TypeInst struct {
	Annotated
	Type   Type
	Ranges []Expr
	Domain Expr
}

// IsArray reports whether this is an array type-inst.
func (t *TypeInst) IsArray() bool { return t.Ranges != nil }

func (*IntLit) ExprKind() ExprKind        { return ExprIntLit }
func (*FloatLit) ExprKind() ExprKind      { return ExprFloatLit }
func (*SetLit) ExprKind() ExprKind        { return ExprSetLit }
func (*BoolLit) ExprKind() ExprKind       { return ExprBoolLit }
func (*StringLit) ExprKind() ExprKind     { return ExprStringLit }
func (*Ident) ExprKind() ExprKind         { return ExprIdent }
func (*AnonVar) ExprKind() ExprKind       { return ExprAnonVar }
func (*ArrayLit) ExprKind() ExprKind      { return ExprArrayLit }
func (*ArrayAccess) ExprKind() ExprKind   { return ExprArrayAccess }
func (*Comprehension) ExprKind() ExprKind { return ExprComprehension }
func (*IfThenElse) ExprKind() ExprKind    { return ExprIfThenElse }
func (*BinOp) ExprKind() ExprKind         { return ExprBinOp }
func (*UnOp) ExprKind() ExprKind          { return ExprUnOp }
func (*Call) ExprKind() ExprKind          { return ExprCall }
func (*VarDecl) ExprKind() ExprKind       { return ExprVarDecl }
func (*Let) ExprKind() ExprKind           { return ExprLet }
func (*Annotation) ExprKind() ExprKind    { return ExprAnnotation }
func (*TypeInst) ExprKind() ExprKind      { return ExprTypeInst }
func (*TIID) ExprKind() ExprKind          { return ExprTIID }
