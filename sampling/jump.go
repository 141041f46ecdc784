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

// Program locations of the jump sampler. Locations 5 and 8 are listing
// lines that produce no event of their own.
const (
	jumpInit       = 0
	jumpRead       = 1
	jumpCapacity   = 2
	jumpFillRand   = 3
	jumpFillUpdate = 4
	jumpCheck      = 6
	jumpDraw       = 7
	jumpCountdown  = 9
	jumpCandRand   = 10
	jumpCandUpdate = 11
	jumpDone       = -1
)

// JumpRun admits exactly the same items in distribution as BottomKRun but
// only draws keys for items that will enter the reservoir.
//
// With the reservoir full and max key M, each new item's key would fall
// below M with probability M, so the distance to the next admitted item is
// geometric with parameter M. The run draws that distance, passes over the
// intervening items without a key, and gives the landing item a key uniform
// on [0, M), which is the conditional key distribution given admission.
// After the fill phase this costs O(k log(N/k)) expected draws instead of N.
type JumpRun[T any] struct {
	cursor[T]
	res *Reservoir[T]
	pc  int
	// remaining counts items up to and including the next candidate; 0
	// means a new distance must be drawn before the next item is judged.
	remaining int64
}

// NewJump returns a jump-optimized run over s. It fails with
// ErrInvalidCapacity if k < 1, without reading from s.
func NewJump[T any](s stream.Stream[T], k int, src random.Source) (*JumpRun[T], error) {
	if err := checkCapacity(k); err != nil {
		return nil, err
	}
	res, err := NewReservoir[T](k)
	if err != nil {
		return nil, err
	}
	r := &JumpRun[T]{
		cursor: cursor[T]{in: s, src: src, k: k},
		res:    res,
	}
	r.entries = res.Entries
	return r, nil
}

func (r *JumpRun[T]) Next() bool {
	switch r.pc {
	case jumpInit:
		r.emit(jumpInit, ActionInit)
		r.pc = jumpRead
	case jumpRead:
		if !r.read() {
			r.pc = jumpDone
			return false
		}
		r.emit(jumpRead, ActionRead)
		r.pc = jumpCapacity
	case jumpCapacity:
		r.emit(jumpCapacity, ActionBranch)
		if r.res.IsFull() {
			r.pc = jumpCheck
		} else {
			r.pc = jumpFillRand
		}
	case jumpFillRand:
		r.emitRand(jumpFillRand, r.drawKey(), 0)
		r.pc = jumpFillUpdate
	case jumpFillUpdate:
		_ = r.res.Insert(r.key, r.item)
		r.stats.Accepted++
		r.emit(jumpFillUpdate, ActionUpdate)
		r.pc = jumpRead
	case jumpCheck:
		r.emit(jumpCheck, ActionBranch)
		if r.remaining == 0 {
			r.pc = jumpDraw
		} else {
			r.pc = jumpCountdown
		}
	case jumpDraw:
		u := r.draw()
		maxKey, _ := r.res.MaxKey()
		length, class := skipLength(u, maxKey)
		if class.degenerate() {
			r.stats.Degenerate++
		}
		r.remaining = length
		r.emitRand(jumpDraw, u, length)
		r.pc = jumpCountdown
	case jumpCountdown:
		r.remaining--
		r.emit(jumpCountdown, ActionBranch)
		if r.remaining == 0 {
			r.pc = jumpCandRand
		} else {
			r.stats.Skipped++
			r.pc = jumpRead
		}
	case jumpCandRand:
		// the key is conditioned on admission: uniform on [0, M)
		maxKey, _ := r.res.MaxKey()
		r.emitRand(jumpCandRand, maxKey*r.drawKey(), 0)
		r.pc = jumpCandUpdate
	case jumpCandUpdate:
		r.res.ReplaceMax(r.key, r.item)
		r.stats.Accepted++
		r.emit(jumpCandUpdate, ActionUpdate)
		r.pc = jumpRead
	default:
		return false
	}
	return true
}

func (r *JumpRun[T]) Result() []Entry[T] {
	return r.res.Entries()
}

// Reservoir exposes the live reservoir for inspection. It must not be
// modified while the run is in progress.
func (r *JumpRun[T]) Reservoir() *Reservoir[T] {
	return r.res
}
