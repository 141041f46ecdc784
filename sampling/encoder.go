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
	"encoding/binary"
	"math"

	"github.com/cespare/xxhash/v2"

	"github.com/streamsample/streamsample/stream"
)

// ItemEncoder appends a canonical byte form of an item. Built-in encoders
// are provided for common item types; EncoderFunc adapts anything else.
type ItemEncoder[T any] interface {
	AppendItem(dst []byte, item T) []byte
}

// EncoderFunc adapts a function to ItemEncoder.
type EncoderFunc[T any] func(dst []byte, item T) []byte

func (f EncoderFunc[T]) AppendItem(dst []byte, item T) []byte {
	return f(dst, item)
}

// Int64Encoder encodes int64 items as 8 little-endian bytes.
type Int64Encoder struct{}

func (Int64Encoder) AppendItem(dst []byte, item int64) []byte {
	return binary.LittleEndian.AppendUint64(dst, uint64(item))
}

// IntEncoder encodes int items as 8 little-endian bytes.
type IntEncoder struct{}

func (IntEncoder) AppendItem(dst []byte, item int) []byte {
	return binary.LittleEndian.AppendUint64(dst, uint64(item))
}

// Float64Encoder encodes float64 items by their IEEE 754 bits.
type Float64Encoder struct{}

func (Float64Encoder) AppendItem(dst []byte, item float64) []byte {
	return binary.LittleEndian.AppendUint64(dst, math.Float64bits(item))
}

// StringEncoder encodes strings as a 4-byte length followed by the bytes.
type StringEncoder struct{}

func (StringEncoder) AppendItem(dst []byte, item string) []byte {
	dst = binary.LittleEndian.AppendUint32(dst, uint32(len(item)))
	return append(dst, item...)
}

// RecordEncoder encodes stream records as index then value.
type RecordEncoder struct{}

func (RecordEncoder) AppendItem(dst []byte, item stream.Record) []byte {
	dst = binary.LittleEndian.AppendUint64(dst, uint64(item.Index))
	return binary.LittleEndian.AppendUint64(dst, uint64(item.Value))
}

// AppendEvent appends the canonical encoding of ev. Only the snapshot
// fields meaningful for the event's action are encoded.
func AppendEvent[T any](dst []byte, ev Event[T], enc ItemEncoder[T]) []byte {
	dst = binary.LittleEndian.AppendUint32(dst, uint32(ev.Location))
	dst = append(dst, byte(ev.Action))
	switch ev.Action {
	case ActionRead:
		dst = enc.AppendItem(dst, ev.Snapshot.Item)
	case ActionRand:
		dst = binary.LittleEndian.AppendUint64(dst, math.Float64bits(ev.Snapshot.Key))
		dst = binary.LittleEndian.AppendUint64(dst, uint64(ev.Snapshot.Jump))
	case ActionUpdate:
		dst = binary.LittleEndian.AppendUint32(dst, uint32(len(ev.Snapshot.Entries)))
		for _, e := range ev.Snapshot.Entries {
			dst = binary.LittleEndian.AppendUint64(dst, math.Float64bits(e.Key))
			dst = enc.AppendItem(dst, e.Value)
		}
	}
	return dst
}

// EncodeTrace returns the canonical encoding of a whole trace. Two runs
// produced the same trace exactly when their encodings are equal.
func EncodeTrace[T any](events []Event[T], enc ItemEncoder[T]) []byte {
	var buf []byte
	for _, ev := range events {
		buf = AppendEvent(buf, ev, enc)
	}
	return buf
}

// Digest returns the xxhash of the trace's canonical encoding.
func Digest[T any](events []Event[T], enc ItemEncoder[T]) uint64 {
	h := xxhash.New()
	var scratch []byte
	for _, ev := range events {
		scratch = AppendEvent(scratch[:0], ev, enc)
		_, _ = h.Write(scratch)
	}
	return h.Sum64()
}
