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
	"fmt"
	"sort"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/streamsample/streamsample/random"
	"github.com/streamsample/streamsample/stream"
)

func TestInclusionProbability(t *testing.T) {
	const (
		n    = 20
		k    = 5
		reps = 4000
	)
	// expected k/N*reps = 1000 per position, sd ~27
	for _, alg := range Algorithms() {
		t.Run(alg.String(), func(t *testing.T) {
			counts := make([]int, n)
			for rep := 0; rep < reps; rep++ {
				run, err := New(alg, stream.Range(n), k, random.NewMT19937(random.DeriveIndexedSeed(2024, rep)))
				require.NoError(t, err)
				for _, e := range Drain(run) {
					counts[e.Value]++
				}
			}
			for pos, c := range counts {
				assert.InDelta(t, reps*k/n, c, 150, "position %d", pos)
			}
		})
	}
}

func TestSubsetsAreEquallyLikely(t *testing.T) {
	const (
		n    = 5
		k    = 2
		reps = 20000
	)
	// 10 subsets, expected 2000 each, sd ~42
	for _, alg := range Algorithms() {
		t.Run(alg.String(), func(t *testing.T) {
			counts := make(map[string]int)
			for rep := 0; rep < reps; rep++ {
				run, err := New(alg, stream.Range(n), k, random.NewXoshiro(random.DeriveIndexedSeed(31, rep)))
				require.NoError(t, err)
				vals := values(Drain(run))
				sort.Ints(vals)
				counts[fmt.Sprint(vals)]++
			}
			assert.Len(t, counts, 10)
			for subset, c := range counts {
				assert.InDelta(t, reps/10, c, 250, "subset %s", subset)
			}
		})
	}
}

func TestJumpMatchesBottomKKeyDistribution(t *testing.T) {
	// the largest retained key after N items is the k-th order statistic
	// of N uniforms, with mean k/(N+1), for both samplers
	const (
		n    = 400
		k    = 8
		reps = 2000
	)
	for _, alg := range []Algorithm{BottomK, Jump} {
		t.Run(alg.String(), func(t *testing.T) {
			sum := 0.0
			for rep := 0; rep < reps; rep++ {
				run, err := New(alg, stream.Range(n), k, random.NewMT19937(random.DeriveIndexedSeed(5, rep)))
				require.NoError(t, err)
				entries := Drain(run)
				sum += entries[len(entries)-1].Key
			}
			assert.InDelta(t, float64(k)/(n+1), sum/reps, 0.0015)
		})
	}
}
