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

// Package stream provides single-pass, lazily evaluated item producers.
//
// A Stream is pulled one item at a time and is consumed at most once: after
// Next has reported exhaustion it keeps reporting exhaustion.
package stream

import "math"

// Stream yields items in order until it is exhausted.
type Stream[T any] interface {
	// Next returns the next item, or false once the stream is exhausted.
	Next() (T, bool)
}

// Func adapts a pull function to a Stream. Once f reports exhaustion it is
// never called again.
type Func[T any] struct {
	f    func() (T, bool)
	done bool
}

// FromFunc returns a Stream backed by f.
func FromFunc[T any](f func() (T, bool)) *Func[T] {
	return &Func[T]{f: f}
}

func (s *Func[T]) Next() (T, bool) {
	var zero T
	if s.done {
		return zero, false
	}
	v, ok := s.f()
	if !ok {
		s.done = true
		return zero, false
	}
	return v, true
}

type sliceStream[T any] struct {
	items []T
	pos   int
}

// FromSlice returns a Stream over items. The slice is read lazily and must
// not be modified while the stream is in use.
func FromSlice[T any](items []T) Stream[T] {
	return &sliceStream[T]{items: items}
}

func (s *sliceStream[T]) Next() (T, bool) {
	if s.pos >= len(s.items) {
		var zero T
		return zero, false
	}
	v := s.items[s.pos]
	s.pos++
	return v, true
}

// Range returns the stream 0, 1, ..., n-1.
func Range(n int) Stream[int] {
	i := 0
	return FromFunc(func() (int, bool) {
		if i >= n {
			return 0, false
		}
		i++
		return i - 1, true
	})
}

// Limit returns a stream that yields at most n items of s.
func Limit[T any](s Stream[T], n int) Stream[T] {
	taken := 0
	return FromFunc(func() (T, bool) {
		if taken >= n {
			var zero T
			return zero, false
		}
		taken++
		return s.Next()
	})
}

// Collect drains s into a slice.
func Collect[T any](s Stream[T]) []T {
	var out []T
	for v, ok := s.Next(); ok; v, ok = s.Next() {
		out = append(out, v)
	}
	return out
}

// Record is a generated stream element: its position in the stream and a
// payload value. Samplers only ever look at the position.
type Record struct {
	Index int   `json:"index" yaml:"index"`
	Value int64 `json:"value" yaml:"value"`
}

// Uniform is the draw interface Records needs; random.Source satisfies it.
type Uniform interface {
	Float64() float64
}

// Records returns n records with payloads drawn uniformly from [0, n*n).
func Records(n int, src Uniform) Stream[Record] {
	span := float64(n) * float64(n)
	i := 0
	return FromFunc(func() (Record, bool) {
		if i >= n {
			return Record{}, false
		}
		r := Record{Index: i, Value: int64(math.Floor(src.Float64() * span))}
		i++
		return r, true
	})
}
