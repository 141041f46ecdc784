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

package cliutil

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/streamsample/streamsample/random"
	"github.com/streamsample/streamsample/sampling"
)

// SamplerOptions are the inputs of a single sampling run.
type SamplerOptions struct {
	Algorithm sampling.Algorithm
	Source    random.Kind
	Seed      uint64
	K         int
	Items     []string
}

// AddSamplerFlags registers the flags SamplerOptionsFrom reads.
func AddSamplerFlags(cmd *cobra.Command) {
	f := cmd.Flags()
	f.String("algorithm", sampling.Jump.String(), "Sampler to run: permutation, bottomk or jump")
	f.IntP("k", "k", 3, "Number of items to keep")
	f.Uint64("seed", 1234, "Seed of the sampler's random source")
	f.String("source", random.MT19937.String(), "Random source: mt19937, xoshiro or salsa20")
	f.StringSlice("items", nil, "Comma-separated stream items")
	f.Int("n", 10, "Stream length when --items is not given; the items are 0..n-1")
}

// SamplerOptionsFrom reads the sampler flags through v, so that config file
// and environment values apply when a flag is not set.
func SamplerOptionsFrom(v *viper.Viper) (SamplerOptions, error) {
	var opts SamplerOptions
	var err error

	if opts.Algorithm, err = sampling.ParseAlgorithm(v.GetString("algorithm")); err != nil {
		return opts, err
	}
	if opts.Source, err = random.ParseKind(v.GetString("source")); err != nil {
		return opts, err
	}
	opts.Seed = v.GetUint64("seed")
	opts.K = v.GetInt("k")
	if opts.K < 1 {
		return opts, fmt.Errorf("%w: got %d", sampling.ErrInvalidCapacity, opts.K)
	}

	opts.Items = SplitItems(v.GetStringSlice("items"))
	if len(opts.Items) == 0 {
		n := v.GetInt("n")
		if n < 0 {
			return opts, fmt.Errorf("n must not be negative, got %d", n)
		}
		opts.Items = make([]string, n)
		for i := range opts.Items {
			opts.Items[i] = strconv.Itoa(i)
		}
	}
	return opts, nil
}

// SplitItems flattens comma-separated values and drops blanks.
func SplitItems(values []string) []string {
	var items []string
	for _, v := range values {
		for _, item := range strings.Split(v, ",") {
			if item = strings.TrimSpace(item); item != "" {
				items = append(items, item)
			}
		}
	}
	return items
}
