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
	"iter"
)

// Action classifies a trace event.
type Action int

const (
	ActionInit Action = iota + 1
	ActionRead
	ActionRand
	ActionBranch
	ActionUpdate
)

var actionNames = map[Action]string{
	ActionInit:   "init",
	ActionRead:   "read",
	ActionRand:   "rand",
	ActionBranch: "branch",
	ActionUpdate: "update",
}

func (a Action) String() string {
	if name, ok := actionNames[a]; ok {
		return name
	}
	return fmt.Sprintf("Action(%d)", int(a))
}

func (a Action) MarshalText() ([]byte, error) {
	if _, ok := actionNames[a]; !ok {
		return nil, fmt.Errorf("unknown action %d", int(a))
	}
	return []byte(a.String()), nil
}

func (a *Action) UnmarshalText(text []byte) error {
	for k, v := range actionNames {
		if v == string(text) {
			*a = k
			return nil
		}
	}
	return fmt.Errorf("unknown action %q", text)
}

// Snapshot is the state attached to an event. Which fields are meaningful
// depends on the action:
//   - Read: Item, the value just pulled from the stream
//   - Rand: Key, the value just drawn; Jump when the draw was a jump length
//   - Update: Entries, the reservoir contents sorted by ascending key
//   - Init, Branch: nothing
//
// Snapshots never share memory with the running sampler.
type Snapshot[T any] struct {
	Item    T          `json:"item,omitempty" yaml:"item,omitempty"`
	Key     float64    `json:"key,omitempty" yaml:"key,omitempty"`
	Jump    int64      `json:"jump,omitempty" yaml:"jump,omitempty"`
	Entries []Entry[T] `json:"entries,omitempty" yaml:"entries,omitempty"`
}

// Event records one state transition of a sampler. Location indexes the
// line of the algorithm's Program that performed it.
type Event[T any] struct {
	Location int         `json:"location" yaml:"location"`
	Action   Action      `json:"action" yaml:"action"`
	Snapshot Snapshot[T] `json:"snapshot" yaml:"snapshot"`
}

// Events adapts a run to a range-over-func sequence. Breaking out of the
// loop simply stops advancing the run.
func Events[T any](run Run[T]) iter.Seq[Event[T]] {
	return func(yield func(Event[T]) bool) {
		for run.Next() {
			if !yield(run.Event()) {
				return
			}
		}
	}
}

var programs = map[Algorithm][]string{
	Permutation: {
		"reservoir = init_reservoir()",
		"for item in stream:",
		"    add(reservoir, item)",
		"permute(reservoir)",
		"truncate(reservoir, k)",
	},
	BottomK: {
		"reservoir = init_reservoir()",
		"for item in stream:",
		"    key = generate_key()",
		"    if key in lowest_k_keys(reservoir):",
		"        add_to_reservoir(item, key)",
	},
	Jump: {
		"reservoir = init_reservoir()",
		"for item in stream:",
		"    if size(reservoir) < k:",
		"        key = generate_key()",
		"        add_to_reservoir(item, key)",
		"    else:",
		"        if jump == 0:",
		"            jump = generate_jump(max_key(reservoir))",
		"        jump = jump - 1",
		"        if jump == 0:",
		"            key = max_key(reservoir) * generate_key()",
		"            replace_max(reservoir, item, key)",
	},
}

// Program returns the pseudocode listing whose line numbers are the event
// locations emitted by alg.
func Program(alg Algorithm) []string {
	lines := programs[alg]
	out := make([]string, len(lines))
	copy(out, lines)
	return out
}
