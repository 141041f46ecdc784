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
	"github.com/pkg/errors"

	"github.com/streamsample/streamsample/random"
	"github.com/streamsample/streamsample/sampling"
)

// Config describes an inclusion-frequency experiment.
type Config struct {
	Algorithm   sampling.Algorithm `json:"algorithm" yaml:"algorithm" mapstructure:"algorithm"`
	Source      random.Kind        `json:"source" yaml:"source" mapstructure:"source"`
	Seed        uint64             `json:"seed" yaml:"seed" mapstructure:"seed"`
	N           int                `json:"n" yaml:"n" mapstructure:"n"`
	K           int                `json:"k" yaml:"k" mapstructure:"k"`
	Repetitions int                `json:"repetitions" yaml:"repetitions" mapstructure:"repetitions"`
	Buckets     int                `json:"buckets" yaml:"buckets" mapstructure:"buckets"`
	StdDevs     float64            `json:"stdDevs" yaml:"stdDevs" mapstructure:"std-devs"`
}

// DefaultConfig returns a jump-sampler experiment over 10000 items, keeping
// 50 of them, repeated 100 times.
func DefaultConfig() Config {
	return Config{
		Algorithm:   sampling.Jump,
		Source:      random.MT19937,
		Seed:        1234,
		N:           10000,
		K:           50,
		Repetitions: 100,
		Buckets:     10,
		StdDevs:     3,
	}
}

// Validate reports the first invalid field of c.
func (c Config) Validate() error {
	if _, err := c.Algorithm.MarshalText(); err != nil {
		return errors.WithStack(err)
	}
	if _, err := c.Source.MarshalText(); err != nil {
		return errors.WithStack(err)
	}
	if c.K < 1 {
		return errors.Wrapf(sampling.ErrInvalidCapacity, "k=%d", c.K)
	}
	if c.N < 1 {
		return errors.Errorf("n must be at least 1, got %d", c.N)
	}
	if c.Repetitions < 1 {
		return errors.Errorf("repetitions must be at least 1, got %d", c.Repetitions)
	}
	if c.Buckets < 1 {
		return errors.Errorf("buckets must be at least 1, got %d", c.Buckets)
	}
	if !(c.StdDevs > 0) {
		return errors.Errorf("std devs must be positive, got %v", c.StdDevs)
	}
	return nil
}
