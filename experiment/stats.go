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

package experiment

import (
	"golang.org/x/exp/constraints"
)

type number interface {
	constraints.Integer | constraints.Float
}

func sum[T number](xs []T) T {
	var total T
	for _, x := range xs {
		total += x
	}
	return total
}

func mean[T number](xs []T) float64 {
	if len(xs) == 0 {
		return 0
	}
	return float64(sum(xs)) / float64(len(xs))
}

// chiSquare returns Pearson's statistic for observed against expected.
// Cells with no expectation are ignored.
func chiSquare[T number](observed []T, expected []float64) float64 {
	var stat float64
	for i, o := range observed {
		e := expected[i]
		if e <= 0 {
			continue
		}
		d := float64(o) - e
		stat += d * d / e
	}
	return stat
}

// split divides [0, n) into at most parts contiguous ranges whose lengths
// differ by at most one, returning the range boundaries.
func split[T constraints.Integer](n, parts T) []T {
	if parts > n {
		parts = n
	}
	if parts < 1 {
		return []T{0, n}
	}
	bounds := make([]T, parts+1)
	for i := T(0); i <= parts; i++ {
		bounds[i] = i * n / parts
	}
	return bounds
}
