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

func TestJumpPinnedDraws(t *testing.T) {
	// fill keys 0.8, 0.3; jump draw 0.5 lands on the next item (M=0.8);
	// its key is 0.8*0.5; jump draw 0.1 with M=0.4 skips the rest
	draws := sequence(t, 0.8, 0.3, 0.5, 0.5, 0.1)

	res, err := Sample(Jump, stream.FromSlice([]int{7, 3, 9, 1, 5}), 2, draws)
	require.NoError(t, err)

	assert.Equal(t, []Entry[int]{{Key: 0.3, Value: 3}, {Key: 0.4, Value: 9}}, res.Entries)
	assert.Equal(t, Stats{Reads: 5, KeyDraws: 3, Draws: 5, Accepted: 3, Skipped: 2}, res.Stats)
	require.NoError(t, ValidateTrace(Jump, res.Events))

	var locations []int
	for _, ev := range res.Events {
		locations = append(locations, ev.Location)
	}
	assert.Equal(t, []int{
		0,
		1, 2, 3, 4, // 7 fills
		1, 2, 3, 4, // 3 fills
		1, 2, 6, 7, 9, 10, 11, // 9 is the forced candidate
		1, 2, 6, 7, 9, // 1 skipped, jump drawn
		1, 2, 6, 9, // 5 skipped
	}, locations)

	jumpDraw := res.Events[12]
	assert.Equal(t, ActionRand, jumpDraw.Action)
	assert.Equal(t, 0.5, jumpDraw.Snapshot.Key)
	assert.Equal(t, int64(1), jumpDraw.Snapshot.Jump)

	secondJump := res.Events[19]
	assert.Equal(t, int64(5), secondJump.Snapshot.Jump)

	candidate := res.Events[14]
	assert.Equal(t, 0.4, candidate.Snapshot.Key)
	assert.Zero(t, candidate.Snapshot.Jump)
}

func TestJumpInvalidCapacity(t *testing.T) {
	_, err := NewJump(stream.Range(5), 0, random.NewMT19937(1))
	assert.ErrorIs(t, err, ErrInvalidCapacity)
}

func TestJumpEmptyStream(t *testing.T) {
	res, err := Sample(Jump, stream.FromSlice[string](nil), 3, random.NewMT19937(1))
	require.NoError(t, err)
	assert.Empty(t, res.Entries)
	assert.Equal(t, []Action{ActionInit}, actions(res.Events))
	assert.Equal(t, Stats{}, res.Stats)
}

func TestJumpFillPhaseMatchesBottomK(t *testing.T) {
	for _, n := range []int{1, 5, 10} {
		bk, err := Sample(BottomK, stream.Range(n), 10, random.NewMT19937(9))
		require.NoError(t, err)
		jp, err := Sample(Jump, stream.Range(n), 10, random.NewMT19937(9))
		require.NoError(t, err)

		assert.Equal(t, bk.Entries, jp.Entries)
		assert.Equal(t, bk.Stats.KeyDraws, jp.Stats.KeyDraws)
	}
}

func TestJumpDrawCountBound(t *testing.T) {
	const k = 10
	for _, n := range []int{k, k + 1, 2 * k, 100, 10000} {
		for seed := uint64(0); seed < 5; seed++ {
			bk, err := NewBottomK(stream.Range(n), k, random.NewMT19937(seed))
			require.NoError(t, err)
			Drain[int](bk)

			counter := random.NewCounting(random.NewMT19937(seed))
			jp, err := NewJump(stream.Range(n), k, counter)
			require.NoError(t, err)
			Drain[int](jp)

			assert.Equal(t, int64(n), bk.Stats().KeyDraws)
			assert.LessOrEqual(t, jp.Stats().KeyDraws, bk.Stats().KeyDraws)
			assert.Equal(t, counter.Draws(), jp.Stats().Draws)
			assert.Equal(t, int64(n), jp.Stats().Reads)
			if n == k {
				assert.Equal(t, int64(k), jp.Stats().KeyDraws)
				assert.Equal(t, int64(k), counter.Draws())
			}
		}
	}

	// far past the fill phase the saving is large
	jp, err := NewJump(stream.Range(100000), k, random.NewMT19937(1))
	require.NoError(t, err)
	Drain[int](jp)
	assert.Less(t, jp.Stats().KeyDraws, int64(1000))
	assert.Greater(t, jp.Stats().Skipped, int64(90000))
}

func TestJumpCapacityInvariant(t *testing.T) {
	run, err := NewJump(stream.Range(2000), 7, random.NewSalsa20(11))
	require.NoError(t, err)

	var events []Event[int]
	for ev := range Events[int](run) {
		require.LessOrEqual(t, run.Reservoir().Len(), 7)
		if ev.Action == ActionRand && ev.Location == jumpCandRand {
			maxKey, _ := run.Reservoir().MaxKey()
			require.Less(t, ev.Snapshot.Key, maxKey)
		}
		events = append(events, ev)
	}
	assert.Len(t, run.Result(), 7)
	assert.NoError(t, ValidateTrace(Jump, events))
}

func TestJumpZeroMaxKeySkipsEverything(t *testing.T) {
	// every key is 0, so the max key is 0 once full and no later item can
	// be admitted: the jump length is MaxJump and no keys are drawn
	run, err := NewJump(stream.Range(10), 2, sequence(t, 0))
	require.NoError(t, err)

	var events []Event[int]
	for ev := range Events[int](run) {
		events = append(events, ev)
	}

	assert.Equal(t, []Entry[int]{{0, 0}, {0, 1}}, run.Result())
	assert.Equal(t, Stats{Reads: 10, KeyDraws: 2, Draws: 3, Accepted: 2, Skipped: 8, Degenerate: 1}, run.Stats())
	assert.NoError(t, ValidateTrace(Jump, events))

	var jumps []int64
	for _, ev := range events {
		if ev.Location == jumpDraw {
			jumps = append(jumps, ev.Snapshot.Jump)
		}
	}
	assert.Equal(t, []int64{MaxJump}, jumps)
}

func TestJumpDeterminism(t *testing.T) {
	a, err := Sample(Jump, stream.Range(1000), 20, random.NewXoshiro(5))
	require.NoError(t, err)
	b, err := Sample(Jump, stream.Range(1000), 20, random.NewXoshiro(5))
	require.NoError(t, err)

	assert.Equal(t, a.Entries, b.Entries)
	assert.Equal(t, EncodeTrace(a.Events, IntEncoder{}), EncodeTrace(b.Events, IntEncoder{}))
}
