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

import "math"

// MaxJump is the jump length used when no later item can be admitted.
const MaxJump = math.MaxInt64

// skipClass records how a jump length was derived.
type skipClass int

const (
	skipRegular skipClass = iota
	// skipNever: the max key is at least 1, every item is a candidate.
	skipNever
	// skipAlways: the max key is 0, no item can ever be a candidate.
	skipAlways
	// skipUnbounded: the uniform draw was 0, so the geometric length is
	// infinite.
	skipUnbounded
)

func (c skipClass) degenerate() bool {
	return c != skipRegular
}

// skipLength returns the number of items up to and including the next
// candidate when the reservoir's max key is m, using the uniform draw u.
// Once the reservoir is full each item independently has a key below m with
// probability m, so the length is geometric:
//
//	ceil(log(u) / log(1 - m))
//
// The boundaries where either logarithm is 0 or infinite are resolved
// without dividing; the result is always in [1, MaxJump].
func skipLength(u, m float64) (int64, skipClass) {
	switch {
	case !(m > 0):
		return MaxJump, skipAlways
	case m >= 1:
		return 1, skipNever
	case !(u > 0):
		return MaxJump, skipUnbounded
	}

	j := math.Ceil(math.Log(u) / math.Log1p(-m))
	switch {
	case math.IsNaN(j) || j < 1:
		return 1, skipRegular
	case j >= float64(MaxJump):
		return MaxJump, skipRegular
	}
	return int64(j), skipRegular
}
