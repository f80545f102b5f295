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
	"github.com/tidwall/btree"
)

// ledger tracks the lines of one item that are candidates for the
// simplification pass, bucketed by priority.
//
// Priority is the document level the originating break was created at.
// Buckets are kept in an ordered map so that flattening visits priorities
// in a deterministic order: ascending priority, each bucket prepended, so
// the deepest level ends up first in the working vector.
//
// A parent link (deep, shallow) records that the line recorded at a
// shallower level may only be simplified once the deeper line has been.
// When a line fails to simplify, every line whose link chain reaches it is
// discarded too.
//
// The zero value is an empty ledger.
type ledger struct {
	// lines maps priority level to the line indices recorded at it.
	lines btree.Map[int, []int]

	// parents holds (line, parent) pairs: parent may only be simplified
	// if line was.
	parents []parentLink

	// firstAtLevel maps a level to the first line recorded at it; used to
	// infer parent links for lines recorded at deeper levels.
	firstAtLevel btree.Map[int, int]
}

type parentLink struct {
	line, parent int
}

// add records line l at priority p, inferring a parent link from the
// nearest strictly shallower level that has recorded a line.
func (ld *ledger) add(p, l int) {
	par := -1
	ld.firstAtLevel.Descend(p-1, func(_, line int) bool {
		par = line
		return false
	})
	if par != -1 {
		ld.parents = append(ld.parents, parentLink{line: l, parent: par})
	}
	if _, ok := ld.firstAtLevel.Get(p); !ok {
		ld.firstAtLevel.Set(p, l)
	}

	bucket, _ := ld.lines.Get(p)
	ld.lines.Set(p, append(bucket, l))
}

// decrement shifts every stored index at or above l down by one, in the
// working vector, the priority buckets, and the parent links.
func (ld *ledger) decrement(vec *[]int, l int) {
	if vec != nil {
		for i, v := range *vec {
			if v >= l {
				(*vec)[i] = v - 1
			}
		}
	}
	ld.lines.Scan(func(_ int, bucket []int) bool {
		for i, v := range bucket {
			if v >= l {
				bucket[i] = v - 1
			}
		}
		return true
	})
	for i := range ld.parents {
		if ld.parents[i].line >= l {
			ld.parents[i].line--
		}
		if ld.parents[i].parent >= l {
			ld.parents[i].parent--
		}
	}
}

// subtract discards every candidate that appears in other, cascading
// through parent links.
func (ld *ledger) subtract(other *ledger) {
	other.lines.Scan(func(_ int, bucket []int) bool {
		for _, l := range bucket {
			ld.remove(nil, l, false)
		}
		return true
	})
}

// remove discards line i from the working vector and every priority
// bucket. If the removal is due to a failed simplification, every line on
// i's chain of parent links (the lines that may only be simplified if i
// was) is discarded as well.
func (ld *ledger) remove(vec *[]int, i int, success bool) {
	if vec != nil {
		*vec = deleteValue(*vec, i)
	}

	var keys []int
	ld.lines.Scan(func(k int, bucket []int) bool {
		keys = append(keys, k)
		return true
	})
	for _, k := range keys {
		bucket, _ := ld.lines.Get(k)
		ld.lines.Set(k, deleteValue(bucket, i))
	}

	if !success {
		for _, p := range ld.parents {
			if p.line == i && p.parent != i && p.parent != -1 {
				ld.remove(vec, p.parent, false)
			}
		}
	}
}

// flatten collects the remaining candidates into a single working vector,
// deepest priority bucket first.
func (ld *ledger) flatten() []int {
	var vec []int
	ld.lines.Scan(func(_ int, bucket []int) bool {
		vec = append(append([]int(nil), bucket...), vec...)
		return true
	})
	return vec
}

// deleteValue removes every element equal to v, preserving order.
func deleteValue(s []int, v int) []int {
	out := s[:0]
	for _, e := range s {
		if e != v {
			out = append(out, e)
		}
	}
	return out
}
