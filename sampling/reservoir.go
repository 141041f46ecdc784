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
)

// Entry is a sampled value together with the random key that admitted it.
type Entry[T any] struct {
	Key   float64 `json:"key" yaml:"key"`
	Value T       `json:"value" yaml:"value"`
}

type slot[T any] struct {
	entry Entry[T]
	seq   uint64 // arrival order, breaks key ties
}

// Reservoir is a bounded collection of at most k entries arranged as a
// max-heap on key, so the eviction candidate is always at the root.
//
// The reservoir never holds more than k entries: offering to a full
// reservoir replaces the root in place instead of growing and shrinking.
type Reservoir[T any] struct {
	k    int
	seq  uint64
	heap []slot[T]
}

// NewReservoir returns an empty reservoir with capacity k.
func NewReservoir[T any](k int) (*Reservoir[T], error) {
	if k < 1 {
		return nil, fmt.Errorf("%w: got %d", ErrInvalidCapacity, k)
	}
	return &Reservoir[T]{
		k:    k,
		heap: make([]slot[T], 0, min(k, 1024)),
	}, nil
}

// K returns the capacity.
func (r *Reservoir[T]) K() int { return r.k }

// Len returns the number of entries held.
func (r *Reservoir[T]) Len() int { return len(r.heap) }

// IsEmpty returns true if the reservoir holds no entries.
func (r *Reservoir[T]) IsEmpty() bool { return len(r.heap) == 0 }

// IsFull returns true if the reservoir holds k entries.
func (r *Reservoir[T]) IsFull() bool { return len(r.heap) >= r.k }

// MaxKey returns the largest key held, or false if the reservoir is empty.
func (r *Reservoir[T]) MaxKey() (float64, bool) {
	if len(r.heap) == 0 {
		return 0, false
	}
	return r.heap[0].entry.Key, true
}

// Peek returns the entry with the largest key without removing it.
func (r *Reservoir[T]) Peek() (Entry[T], bool) {
	if len(r.heap) == 0 {
		return Entry[T]{}, false
	}
	return r.heap[0].entry, true
}

// Insert adds an entry. It fails with ErrReservoirFull when the reservoir
// already holds k entries.
func (r *Reservoir[T]) Insert(key float64, value T) error {
	if r.IsFull() {
		return ErrReservoirFull
	}
	r.heap = append(r.heap, r.newSlot(key, value))
	r.siftUp(len(r.heap) - 1)
	return nil
}

// PopMax removes and returns the entry with the largest key.
func (r *Reservoir[T]) PopMax() (Entry[T], bool) {
	if len(r.heap) == 0 {
		return Entry[T]{}, false
	}
	top := r.heap[0].entry
	last := len(r.heap) - 1
	r.heap[0] = r.heap[last]
	r.heap[last] = slot[T]{}
	r.heap = r.heap[:last]
	r.siftDown(0)
	return top, true
}

// ReplaceMax swaps the entry with the largest key for (key, value) and
// returns the evicted entry. The new key is not compared with the old one;
// callers decide admission.
func (r *Reservoir[T]) ReplaceMax(key float64, value T) (Entry[T], bool) {
	if len(r.heap) == 0 {
		return Entry[T]{}, false
	}
	evicted := r.heap[0].entry
	r.heap[0] = r.newSlot(key, value)
	r.siftDown(0)
	return evicted, true
}

// Offer applies the bottom-k rule: the entry is kept if the reservoir has
// room or if key is smaller than the current maximum, which is then
// evicted. It reports whether the entry was kept.
func (r *Reservoir[T]) Offer(key float64, value T) bool {
	if !r.IsFull() {
		_ = r.Insert(key, value)
		return true
	}
	if key < r.heap[0].entry.Key {
		r.ReplaceMax(key, value)
		return true
	}
	return false
}

// Entries returns a copy of the held entries sorted by ascending key, ties
// in arrival order.
func (r *Reservoir[T]) Entries() []Entry[T] {
	slots := make([]slot[T], len(r.heap))
	copy(slots, r.heap)
	sort.Slice(slots, func(i, j int) bool { return slots[i].less(slots[j]) })

	out := make([]Entry[T], len(slots))
	for i, s := range slots {
		out[i] = s.entry
	}
	return out
}

// Values returns the held values in the order of Entries.
func (r *Reservoir[T]) Values() []T {
	entries := r.Entries()
	out := make([]T, len(entries))
	for i, e := range entries {
		out[i] = e.Value
	}
	return out
}

// Reset empties the reservoir while preserving k.
func (r *Reservoir[T]) Reset() {
	clear(r.heap)
	r.heap = r.heap[:0]
	r.seq = 0
}

func (r *Reservoir[T]) newSlot(key float64, value T) slot[T] {
	s := slot[T]{entry: Entry[T]{Key: key, Value: value}, seq: r.seq}
	r.seq++
	return s
}

// less orders slots by key, then by arrival; the heap root is the greatest.
func (s slot[T]) less(o slot[T]) bool {
	if s.entry.Key != o.entry.Key {
		return s.entry.Key < o.entry.Key
	}
	return s.seq < o.seq
}

// siftDown restores the heap property by moving the slot at i down.
func (r *Reservoir[T]) siftDown(i int) {
	last := len(r.heap) - 1
	child := 2*i + 1
	for child <= last {
		if child2 := child + 1; child2 <= last && r.heap[child].less(r.heap[child2]) {
			child = child2
		}
		if !r.heap[i].less(r.heap[child]) {
			break
		}
		r.heap[i], r.heap[child] = r.heap[child], r.heap[i]
		i = child
		child = 2*i + 1
	}
}

// siftUp restores the heap property by moving the slot at i up.
func (r *Reservoir[T]) siftUp(i int) {
	for i > 0 {
		p := (i - 1) / 2
		if !r.heap[p].less(r.heap[i]) {
			break
		}
		r.heap[i], r.heap[p] = r.heap[p], r.heap[i]
		i = p
	}
}
