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
	"strings"

	"github.com/streamsample/streamsample/random"
	"github.com/streamsample/streamsample/stream"
)

// Algorithm selects a sampler implementation.
type Algorithm int

const (
	// Permutation materializes the stream and shuffles it. It needs O(N)
	// memory and serves as the reference the streaming samplers are
	// checked against.
	Permutation Algorithm = iota
	// BottomK draws one key per item and keeps the k smallest.
	BottomK
	// Jump keeps the k smallest keys like BottomK but skips items that
	// cannot be admitted without drawing a key for them.
	Jump
)

var algorithmNames = [...]string{
	Permutation: "permutation",
	BottomK:     "bottomk",
	Jump:        "jump",
}

func (a Algorithm) String() string {
	if a < 0 || int(a) >= len(algorithmNames) {
		return fmt.Sprintf("Algorithm(%d)", int(a))
	}
	return algorithmNames[a]
}

func (a Algorithm) MarshalText() ([]byte, error) {
	if a < 0 || int(a) >= len(algorithmNames) {
		return nil, fmt.Errorf("%w: %d", ErrUnknownAlgorithm, int(a))
	}
	return []byte(algorithmNames[a]), nil
}

func (a *Algorithm) UnmarshalText(text []byte) error {
	parsed, err := ParseAlgorithm(string(text))
	if err != nil {
		return err
	}
	*a = parsed
	return nil
}

// Algorithms lists every sampler.
func Algorithms() []Algorithm {
	return []Algorithm{Permutation, BottomK, Jump}
}

// ParseAlgorithm converts a name such as "bottomk" into an Algorithm.
func ParseAlgorithm(name string) (Algorithm, error) {
	name = strings.ToLower(strings.TrimSpace(name))
	for i, n := range algorithmNames {
		if n == name {
			return Algorithm(i), nil
		}
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownAlgorithm, name)
}

// Stats counts the work a run has done.
type Stats struct {
	Reads      int64 `json:"reads" yaml:"reads"`           // items pulled from the stream
	KeyDraws   int64 `json:"keyDraws" yaml:"keyDraws"`     // draws used as item keys
	Draws      int64 `json:"draws" yaml:"draws"`           // all draws, including shuffles and jump lengths
	Accepted   int64 `json:"accepted" yaml:"accepted"`     // items placed in the reservoir
	Skipped    int64 `json:"skipped" yaml:"skipped"`       // items passed over without a key draw
	Degenerate int64 `json:"degenerate" yaml:"degenerate"` // jump lengths drawn at a boundary max key
}

// Run is a sampler in progress. Each call to Next performs one step and
// makes its event available through Event, in the manner of bufio.Scanner.
// A run holds no resources, so abandoning it early is always safe.
type Run[T any] interface {
	// Next advances the run by one step. It returns false once the stream
	// is exhausted and no further events remain.
	Next() bool
	// Event returns the event produced by the last successful Next.
	Event() Event[T]
	// Result returns the current sample, sorted by ascending key. After
	// Next has returned false it is the final sample.
	Result() []Entry[T]
	// Stats returns the counters accumulated so far.
	Stats() Stats
}

// New returns a run of alg that samples k items from s using src.
func New[T any](alg Algorithm, s stream.Stream[T], k int, src random.Source) (Run[T], error) {
	switch alg {
	case Permutation:
		return NewPermutation(s, k, src)
	case BottomK:
		return NewBottomK(s, k, src)
	case Jump:
		return NewJump(s, k, src)
	default:
		return nil, fmt.Errorf("%w: %v", ErrUnknownAlgorithm, alg)
	}
}

// Result is a completed run: its full trace and its sample.
type Result[T any] struct {
	Events  []Event[T] `json:"events" yaml:"events"`
	Entries []Entry[T] `json:"entries" yaml:"entries"`
	Stats   Stats      `json:"stats" yaml:"stats"`
}

// Sample runs alg to completion over s, recording every event.
func Sample[T any](alg Algorithm, s stream.Stream[T], k int, src random.Source) (*Result[T], error) {
	run, err := New(alg, s, k, src)
	if err != nil {
		return nil, err
	}
	var events []Event[T]
	for ev := range Events(run) {
		events = append(events, ev)
	}
	return &Result[T]{
		Events:  events,
		Entries: run.Result(),
		Stats:   run.Stats(),
	}, nil
}

// Drain runs run to completion without materializing its events and returns
// the final sample.
func Drain[T any](run Run[T]) []Entry[T] {
	for run.Next() {
	}
	return run.Result()
}

func checkCapacity(k int) error {
	if k < 1 {
		return fmt.Errorf("%w: got %d", ErrInvalidCapacity, k)
	}
	return nil
}

// cursor holds what every sampler shares: its inputs, its counters and the
// fields of the most recent event. Snapshots are built when Event is called,
// which is before the next step can change anything.
type cursor[T any] struct {
	in    stream.Stream[T]
	src   random.Source
	k     int
	stats Stats

	loc    int
	action Action
	item   T
	key    float64
	jump   int64

	entries func() []Entry[T]
}

func (c *cursor[T]) emit(loc int, action Action) {
	c.loc = loc
	c.action = action
}

func (c *cursor[T]) emitRand(loc int, key float64, jump int64) {
	c.key = key
	c.jump = jump
	c.emit(loc, ActionRand)
}

func (c *cursor[T]) read() bool {
	v, ok := c.in.Next()
	if !ok {
		return false
	}
	c.item = v
	c.stats.Reads++
	return true
}

func (c *cursor[T]) draw() float64 {
	c.stats.Draws++
	return c.src.Float64()
}

func (c *cursor[T]) drawKey() float64 {
	c.stats.KeyDraws++
	return c.draw()
}

func (c *cursor[T]) Event() Event[T] {
	ev := Event[T]{Location: c.loc, Action: c.action}
	switch c.action {
	case ActionRead:
		ev.Snapshot.Item = c.item
	case ActionRand:
		ev.Snapshot.Key = c.key
		ev.Snapshot.Jump = c.jump
	case ActionUpdate:
		ev.Snapshot.Entries = c.entries()
	}
	return ev
}

func (c *cursor[T]) Stats() Stats {
	return c.stats
}
