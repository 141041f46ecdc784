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

package sample

import (
	"fmt"
	"io"
	"text/tabwriter"

	"github.com/MakeNowJust/heredoc/v2"
	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/streamsample/streamsample/internal/cliutil"
	"github.com/streamsample/streamsample/random"
	"github.com/streamsample/streamsample/sampling"
	"github.com/streamsample/streamsample/stream"
)

type result struct {
	Algorithm sampling.Algorithm       `json:"algorithm" yaml:"algorithm"`
	Source    random.Kind              `json:"source" yaml:"source"`
	Seed      uint64                   `json:"seed" yaml:"seed"`
	K         int                      `json:"k" yaml:"k"`
	Entries   []sampling.Entry[string] `json:"entries" yaml:"entries"`
	Stats     sampling.Stats           `json:"stats" yaml:"stats"`
}

func (r *result) writeText(w io.Writer) error {
	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "KEY\tITEM")
	for _, e := range r.Entries {
		fmt.Fprintf(tw, "%.6f\t%s\n", e.Key, e.Value)
	}
	return tw.Flush()
}

func NewSampleCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "sample",
		Short: "Sample k items from a stream",
		Example: heredoc.Doc(`
			$ streamsample sample --items 7,3,9,1,5 -k 2
			$ streamsample sample --algorithm bottomk --n 1000 -k 10 --seed 42 --format json
		`),
		RunE: func(cmd *cobra.Command, args []string) error {
			opts, err := cliutil.SamplerOptionsFrom(viper.GetViper())
			if err != nil {
				return err
			}
			src, err := random.New(opts.Source, opts.Seed)
			if err != nil {
				return err
			}
			run, err := sampling.New(opts.Algorithm, stream.FromSlice(opts.Items), opts.K, src)
			if err != nil {
				return err
			}

			res := &result{
				Algorithm: opts.Algorithm,
				Source:    opts.Source,
				Seed:      opts.Seed,
				K:         opts.K,
				Entries:   sampling.Drain(run),
				Stats:     run.Stats(),
			}
			log.Debug("Sampled stream",
				"algorithm", opts.Algorithm,
				"reads", res.Stats.Reads,
				"keyDraws", res.Stats.KeyDraws,
				"skipped", res.Stats.Skipped)

			return cliutil.HandleOutput(cmd.OutOrStdout(), viper.GetString("format"), res, res.writeText)
		},
	}
	cliutil.AddSamplerFlags(cmd)

	return cmd
}
