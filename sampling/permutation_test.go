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

package sampling

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/streamsample/streamsample/random"
	"github.com/streamsample/streamsample/stream"
)

func TestPermutationPinnedDraws(t *testing.T) {
	// i=2 swaps with 0, i=1 swaps with 0: [a b c] -> [c b a] -> [b c a]
	res, err := Sample(Permutation, stream.FromSlice([]string{"a", "b", "c"}), 2, sequence(t, 0))
	require.NoError(t, err)

	assert.Equal(t, []string{"b", "c"}, values(res.Entries))
	assert.Equal(t, Stats{Reads: 3, Draws: 2, Accepted: 2}, res.Stats)
	require.NoError(t, ValidateTrace(Permutation, res.Events))

	assert.Equal(t, []Action{
		ActionInit,
		ActionRead, ActionUpdate,
		ActionRead, ActionUpdate,
		ActionRead, ActionUpdate,
		ActionRand, ActionRand,
		ActionUpdate, ActionUpdate,
	}, actions(res.Events))

	permuted := res.Events[9]
	assert.Equal(t, 3, permuted.Location)
	assert.Equal(t, []string{"b", "c", "a"}, values(permuted.Snapshot.Entries))

	truncated := res.Events[10]
	assert.Equal(t, 4, truncated.Location)
	assert.Equal(t, []string{"b", "c"}, values(truncated.Snapshot.Entries))
}

func TestPermutationMoreCapacityThanItems(t *testing.T) {
	res, err := Sample(Permutation, stream.Range(5), 50, random.NewMT19937(2))
	require.NoError(t, err)
	assert.ElementsMatch(t, []int{0, 1, 2, 3, 4}, values(res.Entries))
	assert.NoError(t, ValidateTrace(Permutation, res.Events))
}

func TestPermutationSampleIsDistinct(t *testing.T) {
	res, err := Sample(Permutation, stream.Range(100), 10, random.NewMT19937(2))
	require.NoError(t, err)

	seen := make(map[int]struct{})
	for _, v := range values(res.Entries) {
		assert.True(t, v >= 0 && v < 100)
		_, dup := seen[v]
		assert.False(t, dup)
		seen[v] = struct{}{}
	}
	assert.Len(t, seen, 10)
	assert.Equal(t, int64(99), res.Stats.Draws)
}

func TestPermutationSingleItem(t *testing.T) {
	res, err := Sample(Permutation, stream.Range(1), 1, random.NewMT19937(2))
	require.NoError(t, err)
	assert.Equal(t, []Entry[int]{{Value: 0}}, res.Entries)
	assert.Equal(t, int64(0), res.Stats.Draws)
	assert.NoError(t, ValidateTrace(Permutation, res.Events))
}

func TestPermutationEmptyStream(t *testing.T) {
	res, err := Sample(Permutation, stream.Range(0), 3, random.NewMT19937(2))
	require.NoError(t, err)
	assert.Empty(t, res.Entries)
	assert.Equal(t, []Action{ActionInit}, actions(res.Events))
}

func TestPermutationInvalidCapacity(t *testing.T) {
	_, err := NewPermutation(stream.Range(3), 0, random.NewMT19937(2))
	assert.ErrorIs(t, err, ErrInvalidCapacity)
}
