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

// Program locations of the bottom-k sampler.
const (
	bottomKInit = iota
	bottomKRead
	bottomKRand
	bottomKBranch
	bottomKUpdate
	bottomKDone
)

// BottomKRun keeps the k items with the smallest of N independent uniform
// keys. Since the keys are i.i.d., every item ends up in the sample with
// probability k/N and every k-subset is equally likely.
//
// Each item costs exactly one key draw and O(log k) reservoir work.
type BottomKRun[T any] struct {
	cursor[T]
	res   *Reservoir[T]
	pc    int
	admit bool
}

// NewBottomK returns a bottom-k run over s. It fails with
// ErrInvalidCapacity if k < 1, without reading from s.
func NewBottomK[T any](s stream.Stream[T], k int, src random.Source) (*BottomKRun[T], error) {
	if err := checkCapacity(k); err != nil {
		return nil, err
	}
	res, err := NewReservoir[T](k)
	if err != nil {
		return nil, err
	}
	r := &BottomKRun[T]{
		cursor: cursor[T]{in: s, src: src, k: k},
		res:    res,
	}
	r.entries = res.Entries
	return r, nil
}

func (r *BottomKRun[T]) Next() bool {
	switch r.pc {
	case bottomKInit:
		r.emit(bottomKInit, ActionInit)
		r.pc = bottomKRead
	case bottomKRead:
		if !r.read() {
			r.pc = bottomKDone
			return false
		}
		r.emit(bottomKRead, ActionRead)
		r.pc = bottomKRand
	case bottomKRand:
		r.emitRand(bottomKRand, r.drawKey(), 0)
		r.pc = bottomKBranch
	case bottomKBranch:
		maxKey, _ := r.res.MaxKey()
		r.admit = !r.res.IsFull() || r.key < maxKey
		r.emit(bottomKBranch, ActionBranch)
		if r.admit {
			r.pc = bottomKUpdate
		} else {
			r.pc = bottomKRead
		}
	case bottomKUpdate:
		r.res.Offer(r.key, r.item)
		r.stats.Accepted++
		r.emit(bottomKUpdate, ActionUpdate)
		r.pc = bottomKRead
	default:
		return false
	}
	return true
}

func (r *BottomKRun[T]) Result() []Entry[T] {
	return r.res.Entries()
}

// Reservoir exposes the live reservoir for inspection. It must not be
// modified while the run is in progress.
func (r *BottomKRun[T]) Reservoir() *Reservoir[T] {
	return r.res
}
