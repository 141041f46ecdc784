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

import "errors"

var (
	// ErrInvalidCapacity is returned when a sampler or reservoir is asked
	// for a capacity k <= 0. It is reported before any stream item is read.
	ErrInvalidCapacity = errors.New("k must be at least 1")
	// ErrReservoirFull is returned by Reservoir.Insert when the reservoir
	// already holds k entries.
	ErrReservoirFull = errors.New("reservoir is full")
	// ErrUnknownAlgorithm is returned for an unrecognized algorithm name.
	ErrUnknownAlgorithm = errors.New("unknown sampling algorithm")
	// ErrInvalidTrace is returned by ValidateTrace.
	ErrInvalidTrace = errors.New("invalid trace")
)
