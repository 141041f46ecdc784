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

package histogram

import (
	"io"

	"github.com/MakeNowJust/heredoc/v2"
	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/streamsample/streamsample/experiment"
	"github.com/streamsample/streamsample/internal/cliutil"
	"github.com/streamsample/streamsample/random"
	"github.com/streamsample/streamsample/sampling"
)

// configFrom builds an experiment config from the command's flags, any of
// which may also come from the config file or environment.
func configFrom(v *viper.Viper) (experiment.Config, error) {
	cfg := experiment.DefaultConfig()

	alg, err := sampling.ParseAlgorithm(v.GetString("algorithm"))
	if err != nil {
		return cfg, err
	}
	src, err := random.ParseKind(v.GetString("source"))
	if err != nil {
		return cfg, err
	}
	cfg.Algorithm = alg
	cfg.Source = src
	cfg.Seed = v.GetUint64("seed")
	cfg.N = v.GetInt("n")
	cfg.K = v.GetInt("k")
	cfg.Repetitions = v.GetInt("repetitions")
	cfg.Buckets = v.GetInt("buckets")
	cfg.StdDevs = v.GetFloat64("std-devs")
	return cfg, cfg.Validate()
}

func NewHistogramCmd() *cobra.Command {
	var width int
	def := experiment.DefaultConfig()

	cmd := &cobra.Command{
		Use:   "histogram",
		Short: "Measure how often each stream position is sampled",
		Long: heredoc.Doc(`
			Samples the same generated stream many times with independent seeds
			and counts how often each position lands in the sample. A uniform
			sampler keeps every position about repetitions*k/n times; the report
			gives a chi-square test over the histogram buckets and the number of
			positions whose confidence interval misses k/n.
		`),
		Example: heredoc.Doc(`
			$ streamsample histogram
			$ streamsample histogram --algorithm bottomk --n 1000 -k 10 --repetitions 500 --format yaml
		`),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := configFrom(viper.GetViper())
			if err != nil {
				return err
			}
			report, err := experiment.Run(cmd.Context(), cfg, experiment.WithLogger(log.Default()))
			if err != nil {
				return err
			}
			return cliutil.HandleOutput(cmd.OutOrStdout(), viper.GetString("format"), report, func(w io.Writer) error {
				return report.WriteText(w, width)
			})
		},
	}
	f := cmd.Flags()
	f.String("algorithm", def.Algorithm.String(), "Sampler to run: permutation, bottomk or jump")
	f.String("source", def.Source.String(), "Random source: mt19937, xoshiro or salsa20")
	f.Uint64("seed", def.Seed, "Seed of the experiment")
	f.Int("n", def.N, "Stream length")
	f.IntP("k", "k", def.K, "Number of items to keep")
	f.Int("repetitions", def.Repetitions, "Number of sampling runs")
	f.Int("buckets", def.Buckets, "Number of histogram buckets")
	f.Float64("std-devs", def.StdDevs, "Width of the per-position confidence interval")
	f.IntVar(&width, "width", 50, "Length of the longest histogram bar")

	return cmd
}
