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
	BinOpInvalid BinOpKind = iota

	BinOpPlus      // +
	BinOpMinus     // -
	BinOpMult      // *
	BinOpDiv       // /
	BinOpIntDiv    // div
	BinOpMod       // mod
	BinOpLess      // <
	BinOpLessEq    // <=
	BinOpGreater   // >
	BinOpGreaterEq // >=
	BinOpEq        // ==
	BinOpNotEq     // !=
	BinOpIn        // in
	BinOpSubset    // subset
	BinOpSuperset  // superset
	BinOpUnion     // union
	BinOpDiff      // diff
	BinOpSymDiff   // symdiff
	BinOpIntersect // intersect
	BinOpConcat    // ++
	BinOpEquiv     // <->
	BinOpImpl      // ->
	BinOpRImpl     // <-
	BinOpOr        // \/
	BinOpAnd       // /\
	BinOpXor       // xor
	BinOpDotDot    // ..
)

// BinOpKind enumerates the binary operator tags.
type BinOpKind byte

const (
	UnOpInvalid UnOpKind = iota

	UnOpNot   // not
	UnOpPlus  // +
	UnOpMinus // -
)

// UnOpKind enumerates the unary operator tags.
type UnOpKind byte
