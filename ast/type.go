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
	InstPar Inst = iota
	InstVar
	InstSvar
	InstAny
)

// Inst is the instantiation qualifier of a type.
type Inst byte

const (
	BaseUnknown BaseType = iota
	BaseInt
	BaseBool
	BaseFloat
	BaseString
	BaseAnn
	BaseBot
)

// BaseType is the base of a type, ignoring instantiation and set-ness.
type BaseType byte

// Type is the resolved type of a type-inst: an instantiation qualifier, a
// set-of qualifier, and a base type. It is a comparable value type.
type Type struct {
	Inst Inst
	Set  bool
	Base BaseType
}

// ParInt is the type `par int`.
func ParInt() Type { return Type{Inst: InstPar, Base: BaseInt} }

// ParBool is the type `par bool`.
func ParBool() Type { return Type{Inst: InstPar, Base: BaseBool} }

// VarBool is the type `var bool`.
func VarBool() Type { return Type{Inst: InstVar, Base: BaseBool} }

// IsAnn reports whether this is the annotation type.
func (t Type) IsAnn() bool { return t.Base == BaseAnn && !t.Set }
