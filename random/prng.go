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

import "gonum.org/v1/gonum/mathext/prng"

type uint64Source interface {
	Uint64() uint64
}

// bitSource adapts a 64-bit generator to Source.
type bitSource struct {
	src uint64Source
}

func (b bitSource) Float64() float64 {
	return uint64ToFloat(b.src.Uint64())
}

// NewMT19937 returns a Mersenne Twister source seeded with seed.
func NewMT19937(seed uint64) Source {
	mt := prng.NewMT19937()
	mt.Seed(seed)
	return bitSource{src: mt}
}

// NewXoshiro returns a xoshiro256** source seeded with seed.
func NewXoshiro(seed uint64) Source {
	return bitSource{src: prng.NewXoshiro256starstar(seed)}
}
