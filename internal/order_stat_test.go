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

package internal

import (
	"sort"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/streamsample/streamsample/random"
)

func TestQuickSelect(t *testing.T) {
	tests := []struct {
		name     string
		arr      []int
		rank     int
		expected int
	}{
		{name: "median", arr: []int{3, 1, 4, 1, 5, 9, 2, 6}, rank: 4, expected: 4},
		{name: "minimum", arr: []int{3, 1, 4, 1, 5, 9, 2, 6}, rank: 0, expected: 1},
		{name: "maximum", arr: []int{3, 1, 4, 1, 5, 9, 2, 6}, rank: 7, expected: 9},
		{name: "single element", arr: []int{42}, rank: 0, expected: 42},
		{name: "two elements first", arr: []int{5, 3}, rank: 0, expected: 3},
		{name: "two elements second", arr: []int{5, 3}, rank: 1, expected: 5},
		{name: "sorted", arr: []int{1, 2, 3, 4, 5}, rank: 2, expected: 3},
		{name: "reverse sorted", arr: []int{5, 4, 3, 2, 1}, rank: 2, expected: 3},
		{name: "all equal", arr: []int{7, 7, 7, 7}, rank: 3, expected: 7},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := QuickSelect(tt.arr, 0, len(tt.arr)-1, tt.rank)
			assert.Equal(t, tt.expected, got)
		})
	}
}

func TestQuickSelectMatchesSort(t *testing.T) {
	src := random.NewMT19937(3)
	for trial := 0; trial < 50; trial++ {
		n := 1 + int(src.Float64()*200)
		arr := make([]float64, n)
		for i := range arr {
			arr[i] = float64(int(src.Float64() * 20)) // plenty of ties
		}
		sorted := append([]float64(nil), arr...)
		sort.Float64s(sorted)

		rank := int(src.Float64() * float64(n))
		require.Equal(t, sorted[rank], QuickSelect(arr, 0, n-1, rank))
	}
}

func TestQuantile(t *testing.T) {
	durations := []time.Duration{50, 10, 40, 20, 30}

	got, err := Quantile(durations, 0.5)
	require.NoError(t, err)
	assert.Equal(t, time.Duration(30), got)

	got, err = Quantile(durations, 0)
	require.NoError(t, err)
	assert.Equal(t, time.Duration(10), got)

	got, err = Quantile(durations, 1)
	require.NoError(t, err)
	assert.Equal(t, time.Duration(50), got)

	got, err = Quantile(durations, 0.9)
	require.NoError(t, err)
	assert.Equal(t, time.Duration(50), got)

	// input order is preserved
	assert.Equal(t, []time.Duration{50, 10, 40, 20, 30}, durations)

	_, err = Quantile([]int{}, 0.5)
	assert.Error(t, err)
	_, err = Quantile([]int{1}, 1.5)
	assert.Error(t, err)
}
