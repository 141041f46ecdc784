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
	"github.com/streamsample/streamsample/random"
	"github.com/streamsample/streamsample/stream"
)

// Program locations of the permutation sampler.
const (
	permInit     = 0
	permRead     = 1
	permAdd      = 2
	permShuffle  = 3
	permTruncate = 4

	// internal states that share a listing line
	permPermuted = 5
	permDone     = 6
)

// PermutationRun reads the whole stream into memory, shuffles it with
// Fisher-Yates and keeps the first k items. Its output is an exact uniform
// sample without replacement, which makes it the reference for the
// streaming samplers. It holds all N items and must not be used on
// unbounded streams. Entries carry key 0.
type PermutationRun[T any] struct {
	cursor[T]
	items []T
	pc    int
	i     int // next Fisher-Yates position, counting down
}

// NewPermutation returns a permutation run over s. It fails with
// ErrInvalidCapacity if k < 1, without reading from s.
func NewPermutation[T any](s stream.Stream[T], k int, src random.Source) (*PermutationRun[T], error) {
	if err := checkCapacity(k); err != nil {
		return nil, err
	}
	r := &PermutationRun[T]{
		cursor: cursor[T]{in: s, src: src, k: k},
	}
	r.entries = r.Result
	return r, nil
}

func (r *PermutationRun[T]) Next() bool {
	for {
		switch r.pc {
		case permInit:
			r.emit(permInit, ActionInit)
			r.pc = permRead
			return true
		case permRead:
			if !r.read() {
				if len(r.items) == 0 {
					r.pc = permDone
					return false
				}
				r.i = len(r.items) - 1
				r.pc = permShuffle
				continue
			}
			r.emit(permRead, ActionRead)
			r.pc = permAdd
			return true
		case permAdd:
			r.items = append(r.items, r.item)
			r.emit(permAdd, ActionUpdate)
			r.pc = permRead
			return true
		case permShuffle:
			if r.i < 1 {
				r.pc = permPermuted
				continue
			}
			u := r.draw()
			j := int(u * float64(r.i+1))
			if j > r.i {
				j = r.i
			}
			r.items[r.i], r.items[j] = r.items[j], r.items[r.i]
			r.i--
			r.emitRand(permShuffle, u, 0)
			return true
		case permPermuted:
			r.emit(permShuffle, ActionUpdate)
			r.pc = permTruncate
			return true
		case permTruncate:
			if len(r.items) > r.k {
				clear(r.items[r.k:])
				r.items = r.items[:r.k]
			}
			r.stats.Accepted = int64(len(r.items))
			r.emit(permTruncate, ActionUpdate)
			r.pc = permDone
			return true
		default:
			return false
		}
	}
}

// Result returns the items held so far in their current order, each with
// key 0.
func (r *PermutationRun[T]) Result() []Entry[T] {
	out := make([]Entry[T], len(r.items))
	for i, v := range r.items {
		out[i] = Entry[T]{Value: v}
	}
	return out
}
