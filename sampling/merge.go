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

// Merge combines bottom-k samples of disjoint streams into a bottom-k sample
// of their concatenation: the k entries with the smallest keys across all
// inputs. Inputs must come from BottomK or Jump runs with independent random
// sources. Permutation samples carry no keys and cannot be merged this way.
func Merge[T any](k int, samples ...[]Entry[T]) ([]Entry[T], error) {
	if err := checkCapacity(k); err != nil {
		return nil, err
	}
	res, err := NewReservoir[T](k)
	if err != nil {
		return nil, err
	}
	for _, sample := range samples {
		for _, e := range sample {
			res.Offer(e.Key, e.Value)
		}
	}
	return res.Entries(), nil
}
