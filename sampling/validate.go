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

import "fmt"

type step struct {
	loc    int
	action Action
}

func (s step) String() string {
	return fmt.Sprintf("%s@%d", s.action, s.loc)
}

// machine is the state graph of one sampler's trace.
type machine struct {
	edges    map[step][]step
	terminal map[step]bool
}

var initStep = step{0, ActionInit}

var machines = map[Algorithm]machine{
	Permutation: func() machine {
		read := step{permRead, ActionRead}
		add := step{permAdd, ActionUpdate}
		shuffle := step{permShuffle, ActionRand}
		permuted := step{permShuffle, ActionUpdate}
		truncate := step{permTruncate, ActionUpdate}
		return machine{
			edges: map[step][]step{
				initStep: {read},
				read:     {add},
				add:      {read, shuffle, permuted},
				shuffle:  {shuffle, permuted},
				permuted: {truncate},
			},
			terminal: map[step]bool{initStep: true, truncate: true},
		}
	}(),
	BottomK: func() machine {
		read := step{bottomKRead, ActionRead}
		rand := step{bottomKRand, ActionRand}
		branch := step{bottomKBranch, ActionBranch}
		update := step{bottomKUpdate, ActionUpdate}
		return machine{
			edges: map[step][]step{
				initStep: {read},
				read:     {rand},
				rand:     {branch},
				branch:   {read, update},
				update:   {read},
			},
			terminal: map[step]bool{initStep: true, branch: true, update: true},
		}
	}(),
	Jump: func() machine {
		read := step{jumpRead, ActionRead}
		capacity := step{jumpCapacity, ActionBranch}
		fillRand := step{jumpFillRand, ActionRand}
		fillUpdate := step{jumpFillUpdate, ActionUpdate}
		check := step{jumpCheck, ActionBranch}
		draw := step{jumpDraw, ActionRand}
		countdown := step{jumpCountdown, ActionBranch}
		candRand := step{jumpCandRand, ActionRand}
		candUpdate := step{jumpCandUpdate, ActionUpdate}
		return machine{
			edges: map[step][]step{
				initStep:   {read},
				read:       {capacity},
				capacity:   {fillRand, check},
				fillRand:   {fillUpdate},
				fillUpdate: {read},
				check:      {draw, countdown},
				draw:       {countdown},
				countdown:  {read, candRand},
				candRand:   {candUpdate},
				candUpdate: {read},
			},
			terminal: map[step]bool{initStep: true, fillUpdate: true, countdown: true, candUpdate: true},
		}
	}(),
}

// ValidateTrace checks that events form a complete path through alg's state
// machine: a single Init first, only legal transitions after it, and a
// legal final step. Only locations and actions are inspected.
func ValidateTrace[T any](alg Algorithm, events []Event[T]) error {
	m, ok := machines[alg]
	if !ok {
		return fmt.Errorf("%w: %v", ErrUnknownAlgorithm, alg)
	}
	if len(events) == 0 {
		return fmt.Errorf("%w: empty trace", ErrInvalidTrace)
	}

	prev := step{events[0].Location, events[0].Action}
	if prev != initStep {
		return fmt.Errorf("%w: trace starts with %v", ErrInvalidTrace, prev)
	}
	for i, ev := range events[1:] {
		cur := step{ev.Location, ev.Action}
		if !contains(m.edges[prev], cur) {
			return fmt.Errorf("%w: event %d: %v cannot follow %v", ErrInvalidTrace, i+1, cur, prev)
		}
		prev = cur
	}
	if !m.terminal[prev] {
		return fmt.Errorf("%w: trace ends at %v", ErrInvalidTrace, prev)
	}
	return nil
}

func contains(steps []step, s step) bool {
	for _, x := range steps {
		if x == s {
			return true
		}
	}
	return false
}
