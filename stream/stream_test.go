/*
 * Licensed to the Apache Software Foundation (ASF) under one or more
 * contributor license agreements.  See the NOTICE file distributed with
 * this work for additional information regarding copyright ownership.
 * The ASF licenses this file to You under the Apache License, Version 2.0
 * (the "License"); you may not use this file except in compliance with
 * the License.  You may obtain a copy of the License at
 *
 *     http://www.apache.org/licenses/LICENSE-2.0
 *
 * Unless required by applicable law or agreed to in writing, software
 * distributed under the License is distributed on an "AS IS" BASIS,
 * WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
 * See the License for the specific language governing permissions and
 * limitations under the License.
 */

package stream

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

type constUniform float64

func (c constUniform) Float64() float64 { return float64(c) }

func TestFromSlice(t *testing.T) {
	s := FromSlice([]string{"a", "b", "c"})
	assert.Equal(t, []string{"a", "b", "c"}, Collect(s))

	// single pass: a drained stream stays drained
	v, ok := s.Next()
	assert.False(t, ok)
	assert.Equal(t, "", v)
}

func TestFromSliceEmpty(t *testing.T) {
	assert.Empty(t, Collect(FromSlice[int](nil)))
}

func TestFromFuncStopsCallingAfterExhaustion(t *testing.T) {
	calls := 0
	s := FromFunc(func() (int, bool) {
		calls++
		if calls > 2 {
			return 0, false
		}
		return calls, true
	})

	assert.Equal(t, []int{1, 2}, Collect(s))
	_, ok := s.Next()
	assert.False(t, ok)
	assert.Equal(t, 3, calls)
}

func TestRange(t *testing.T) {
	assert.Equal(t, []int{0, 1, 2, 3}, Collect(Range(4)))
	assert.Empty(t, Collect(Range(0)))
	assert.Empty(t, Collect(Range(-3)))
}

func TestLimit(t *testing.T) {
	t.Run("Truncates", func(t *testing.T) {
		src := Range(10)
		assert.Equal(t, []int{0, 1, 2}, Collect(Limit(src, 3)))
		// the rest of the source is untouched
		v, ok := src.Next()
		assert.True(t, ok)
		assert.Equal(t, 3, v)
	})

	t.Run("ShortSource", func(t *testing.T) {
		assert.Equal(t, []int{0, 1}, Collect(Limit(Range(2), 5)))
	})
}

func TestRecords(t *testing.T) {
	recs := Collect(Records(5, constUniform(0.5)))
	assert.Len(t, recs, 5)
	for i, r := range recs {
		assert.Equal(t, i, r.Index)
		assert.Equal(t, int64(12), r.Value) // floor(0.5 * 25)
	}
}
