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

// Package random provides the seedable uniform sources that drive every
// sampling run. There is no package-level generator: callers construct a
// Source from a seed and hand it to exactly one run, so a (seed, stream, k)
// triple always reproduces the same sample.
package random

import (
	"errors"
	"fmt"
	"strings"
)

var (
	// ErrUnknownKind is returned when a source name cannot be parsed.
	ErrUnknownKind = errors.New("unknown random source kind")
	// ErrOutOfRange is returned when a fixed draw lies outside [0, 1).
	ErrOutOfRange = errors.New("draw must be in [0, 1)")
)

// Source produces uniform draws in [0, 1).
//
// Implementations are deterministic given their seed and are not safe for
// concurrent use.
type Source interface {
	Float64() float64
}

// Kind names a Source implementation.
type Kind int

const (
	MT19937 Kind = iota
	Xoshiro
	Salsa20
)

var kindNames = [...]string{
	MT19937: "mt19937",
	Xoshiro: "xoshiro",
	Salsa20: "salsa20",
}

func (k Kind) String() string {
	if k < 0 || int(k) >= len(kindNames) {
		return fmt.Sprintf("Kind(%d)", int(k))
	}
	return kindNames[k]
}

func (k Kind) MarshalText() ([]byte, error) {
	if k < 0 || int(k) >= len(kindNames) {
		return nil, fmt.Errorf("%w: %d", ErrUnknownKind, int(k))
	}
	return []byte(kindNames[k]), nil
}

func (k *Kind) UnmarshalText(text []byte) error {
	parsed, err := ParseKind(string(text))
	if err != nil {
		return err
	}
	*k = parsed
	return nil
}

// Kinds lists every supported source kind.
func Kinds() []Kind {
	return []Kind{MT19937, Xoshiro, Salsa20}
}

// ParseKind converts a name such as "mt19937" into a Kind.
func ParseKind(name string) (Kind, error) {
	name = strings.ToLower(strings.TrimSpace(name))
	for i, n := range kindNames {
		if n == name {
			return Kind(i), nil
		}
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownKind, name)
}

// New returns a freshly seeded source of the given kind.
func New(kind Kind, seed uint64) (Source, error) {
	switch kind {
	case MT19937:
		return NewMT19937(seed), nil
	case Xoshiro:
		return NewXoshiro(seed), nil
	case Salsa20:
		return NewSalsa20(seed), nil
	default:
		return nil, fmt.Errorf("%w: %v", ErrUnknownKind, kind)
	}
}

// floatScale maps the top 53 bits of a uint64 onto [0, 1).
const floatScale = 1.0 / (1 << 53)

func uint64ToFloat(u uint64) float64 {
	return float64(u>>11) * floatScale
}
