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

package slicesx

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestGet(t *testing.T) {
	t.Parallel()

	s := []int{1, 2, 3}

	v, ok := Get(s, 1)
	assert.True(t, ok)
	assert.Equal(t, 2, v)

	_, ok = Get(s, -1)
	assert.False(t, ok)
	_, ok = Get(s, 3)
	assert.False(t, ok)
}

func TestGetPointer(t *testing.T) {
	t.Parallel()

	s := []int{1, 2, 3}

	p := GetPointer(s, 2)
	assert.NotNil(t, p)
	*p = 9
	assert.Equal(t, 9, s[2])

	assert.Nil(t, GetPointer(s, -1))
	assert.Nil(t, GetPointer(s, 3))
}

func TestLast(t *testing.T) {
	t.Parallel()

	v, ok := Last([]string{"a", "b"})
	assert.True(t, ok)
	assert.Equal(t, "b", v)

	_, ok = Last([]string(nil))
	assert.False(t, ok)

	assert.Nil(t, LastPointer([]int(nil)))
	p := LastPointer([]int{4, 5})
	assert.NotNil(t, p)
	assert.Equal(t, 5, *p)
}
