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

	"github.com/stretchr/testify/require"

	"github.com/streamsample/streamsample/random"
)

func sequence(t *testing.T, values ...float64) *random.Sequence {
	t.Helper()
	seq, err := random.NewSequence(values...)
	require.NoError(t, err)
	return seq
}

func actions[T any](events []Event[T]) []Action {
	out := make([]Action, len(events))
	for i, ev := range events {
		out[i] = ev.Action
	}
	return out
}

func values[T any](entries []Entry[T]) []T {
	out := make([]T, len(entries))
	for i, e := range entries {
		out[i] = e.Value
	}
	return out
}
