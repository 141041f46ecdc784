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

import "fmt"

// Sequence replays a fixed list of draws, starting over once the list is
// exhausted. It pins exact key sequences when a run must be reproduced by
// hand.
type Sequence struct {
	values []float64
	next   int
}

// NewSequence returns a Sequence over values. Every value must be in [0, 1).
func NewSequence(values ...float64) (*Sequence, error) {
	if len(values) == 0 {
		return nil, fmt.Errorf("%w: empty sequence", ErrOutOfRange)
	}
	for i, v := range values {
		if !(v >= 0 && v < 1) {
			return nil, fmt.Errorf("%w: values[%d]=%v", ErrOutOfRange, i, v)
		}
	}
	cp := make([]float64, len(values))
	copy(cp, values)
	return &Sequence{values: cp}, nil
}

func (s *Sequence) Float64() float64 {
	v := s.values[s.next]
	s.next = (s.next + 1) % len(s.values)
	return v
}

// Counting wraps a Source and counts the draws taken from it.
type Counting struct {
	src   Source
	draws int64
}

// NewCounting wraps src.
func NewCounting(src Source) *Counting {
	return &Counting{src: src}
}

func (c *Counting) Float64() float64 {
	c.draws++
	return c.src.Float64()
}

// Draws returns the number of draws taken so far.
func (c *Counting) Draws() int64 {
	return c.draws
}
