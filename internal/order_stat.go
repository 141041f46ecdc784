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

// Package internal holds helpers shared by the experiment and CLI packages.
package internal

import (
	"cmp"
	"errors"
	"math"
)

// QuickSelect partially orders arr[lo..hi] in place so that arr[rank] holds
// the value it would hold if the range were sorted, and returns it.
func QuickSelect[T cmp.Ordered](arr []T, lo, hi, rank int) T {
	for hi > lo {
		p := partition(arr, lo, hi)
		switch {
		case p == rank:
			return arr[rank]
		case p > rank:
			hi = p - 1
		default:
			lo = p + 1
		}
	}
	return arr[rank]
}

// partition places the median of arr[lo], arr[mid], arr[hi] at its final
// position and returns that position.
func partition[T cmp.Ordered](arr []T, lo, hi int) int {
	mid := lo + (hi-lo)/2
	if arr[mid] < arr[lo] {
		arr[mid], arr[lo] = arr[lo], arr[mid]
	}
	if arr[hi] < arr[lo] {
		arr[hi], arr[lo] = arr[lo], arr[hi]
	}
	if arr[hi] < arr[mid] {
		arr[hi], arr[mid] = arr[mid], arr[hi]
	}
	arr[mid], arr[hi] = arr[hi], arr[mid]

	pivot := arr[hi]
	store := lo
	for i := lo; i < hi; i++ {
		if arr[i] < pivot {
			arr[i], arr[store] = arr[store], arr[i]
			store++
		}
	}
	arr[store], arr[hi] = arr[hi], arr[store]
	return store
}

// Quantile returns the q-quantile (0 <= q <= 1) of values using the
// nearest-rank method. values is left untouched.
func Quantile[T cmp.Ordered](values []T, q float64) (T, error) {
	var zero T
	if len(values) == 0 {
		return zero, errors.New("quantile of empty slice")
	}
	if q < 0 || q > 1 || math.IsNaN(q) {
		return zero, errors.New("quantile must be in [0, 1]")
	}
	scratch := make([]T, len(values))
	copy(scratch, values)

	rank := int(math.Ceil(q*float64(len(scratch)))) - 1
	rank = max(rank, 0)
	return QuickSelect(scratch, 0, len(scratch)-1, rank), nil
}
