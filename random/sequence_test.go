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

package random

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSequence(t *testing.T) {
	t.Run("ReplaysAndCycles", func(t *testing.T) {
		seq, err := NewSequence(0.8, 0.3, 0.9)
		require.NoError(t, err)

		got := make([]float64, 0, 7)
		for i := 0; i < 7; i++ {
			got = append(got, seq.Float64())
		}
		assert.Equal(t, []float64{0.8, 0.3, 0.9, 0.8, 0.3, 0.9, 0.8}, got)
	})

	t.Run("CopiesInput", func(t *testing.T) {
		values := []float64{0.1, 0.2}
		seq, err := NewSequence(values...)
		require.NoError(t, err)
		values[0] = 0.7
		assert.Equal(t, 0.1, seq.Float64())
	})

	t.Run("RejectsOutOfRange", func(t *testing.T) {
		for _, bad := range []float64{1.0, -0.1, 2} {
			_, err := NewSequence(0.5, bad)
			assert.ErrorIs(t, err, ErrOutOfRange)
		}
		_, err := NewSequence()
		assert.ErrorIs(t, err, ErrOutOfRange)
	})
}

func TestCounting(t *testing.T) {
	seq, err := NewSequence(0.25)
	require.NoError(t, err)

	c := NewCounting(seq)
	assert.Equal(t, int64(0), c.Draws())
	for i := 0; i < 5; i++ {
		assert.Equal(t, 0.25, c.Float64())
	}
	assert.Equal(t, int64(5), c.Draws())
}

func TestDeriveSeed(t *testing.T) {
	assert.Equal(t, DeriveSeed(1234, "stream"), DeriveSeed(1234, "stream"))
	assert.NotEqual(t, DeriveSeed(1234, "stream"), DeriveSeed(1234, "sampler"))
	assert.NotEqual(t, DeriveSeed(1234, "stream"), DeriveSeed(1235, "stream"))

	seen := make(map[uint64]struct{})
	for i := 0; i < 1000; i++ {
		s := DeriveIndexedSeed(1234, i)
		_, dup := seen[s]
		assert.False(t, dup)
		seen[s] = struct{}{}
	}
}
