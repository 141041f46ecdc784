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

	"golang.org/x/crypto/salsa20"
)

const salsaBlockBytes = 512

// salsaSource draws from the Salsa20 keystream. The 32-byte key is expanded
// from the seed and every refill uses the refill counter as the nonce, so
// the sequence depends only on the seed.
type salsaSource struct {
	key     [32]byte
	counter uint64
	buf     [salsaBlockBytes]byte
	off     int
}

// NewSalsa20 returns a keystream-backed source seeded with seed.
func NewSalsa20(seed uint64) Source {
	s := &salsaSource{off: salsaBlockBytes}
	for i := 0; i < 4; i++ {
		binary.LittleEndian.PutUint64(s.key[i*8:], DeriveIndexedSeed(seed, i))
	}
	return s
}

func (s *salsaSource) refill() {
	var zero [salsaBlockBytes]byte
	var nonce [8]byte
	binary.LittleEndian.PutUint64(nonce[:], s.counter)
	salsa20.XORKeyStream(s.buf[:], zero[:], nonce[:], &s.key)
	s.counter++
	s.off = 0
}

func (s *salsaSource) Float64() float64 {
	if s.off+8 > salsaBlockBytes {
		s.refill()
	}
	u := binary.LittleEndian.Uint64(s.buf[s.off:])
	s.off += 8
	return uint64ToFloat(u)
}
