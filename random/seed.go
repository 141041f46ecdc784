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

import (
	"encoding/binary"

	"github.com/twmb/murmur3"
)

// DeriveSeed returns a child seed for the named purpose. Distinct labels
// give statistically independent children of the same parent seed.
func DeriveSeed(seed uint64, label string) uint64 {
	return murmur3.SeedSum64(seed, []byte(label))
}

// DeriveIndexedSeed returns the i-th child seed of seed, used to give each
// repetition of an experiment its own source.
func DeriveIndexedSeed(seed uint64, i int) uint64 {
	var scratch [8]byte
	binary.LittleEndian.PutUint64(scratch[:], uint64(i))
	return murmur3.SeedSum64(seed, scratch[:])
}
