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

package trace

import (
	"fmt"
	"io"
	"strings"

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
	Program   []string                 `json:"program" yaml:"program"`
	Events    []sampling.Event[string] `json:"events" yaml:"events"`
	Entries   []sampling.Entry[string] `json:"entries" yaml:"entries"`
	Stats     sampling.Stats           `json:"stats" yaml:"stats"`
	Digest    string                   `json:"digest" yaml:"digest"`
}

func (r *result) writeText(w io.Writer) error {
	for i, ev := range r.Events {
		line := ""
		if ev.Location >= 0 && ev.Location < len(r.Program) {
			line = strings.TrimSpace(r.Program[ev.Location])
		}
		if _, err := fmt.Fprintf(w, "%4d  %2d  %-6s  %-45s %s\n",
			i, ev.Location, ev.Action, line, describe(ev)); err != nil {
			return err
		}
	}
	_, err := fmt.Fprintf(w, "digest %s\n", r.Digest)
	return err
}

func describe(ev sampling.Event[string]) string {
	s := ev.Snapshot
	switch ev.Action {
	case sampling.ActionRead:
		return "item=" + s.Item
	case sampling.ActionRand:
		if s.Jump != 0 {
			return fmt.Sprintf("u=%.6f jump=%d", s.Key, s.Jump)
		}
		return fmt.Sprintf("key=%.6f", s.Key)
	case sampling.ActionUpdate:
		parts := make([]string, len(s.Entries))
		for i, e := range s.Entries {
			parts[i] = fmt.Sprintf("(%.6f, %s)", e.Key, e.Value)
		}
		return "[" + strings.Join(parts, " ") + "]"
	}
	return ""
}

func NewTraceCmd() *cobra.Command {
	var validate bool

	cmd := &cobra.Command{
		Use:   "trace",
		Short: "Print every step a sampler takes",
		Long: heredoc.Doc(`
			Runs a sampler and prints each event it emits next to the line of
			the algorithm's pseudocode that produced it, followed by a digest
			of the whole trace. Runs with the same inputs print the same digest.
		`),
		Example: heredoc.Doc(`
			$ streamsample trace --algorithm jump --items a,b,c,d,e,f -k 2 --validate
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
			run, err := sampling.Sample(opts.Algorithm, stream.FromSlice(opts.Items), opts.K, src)
			if err != nil {
				return err
			}

			if validate {
				if err := sampling.ValidateTrace(opts.Algorithm, run.Events); err != nil {
					return err
				}
				log.Info("Trace is well formed", "events", len(run.Events))
			}

			res := &result{
				Algorithm: opts.Algorithm,
				Program:   sampling.Program(opts.Algorithm),
				Events:    run.Events,
				Entries:   run.Entries,
				Stats:     run.Stats,
				Digest:    fmt.Sprintf("%016x", sampling.Digest(run.Events, sampling.StringEncoder{})),
			}
			return cliutil.HandleOutput(cmd.OutOrStdout(), viper.GetString("format"), res, res.writeText)
		},
	}
	cliutil.AddSamplerFlags(cmd)
	cmd.Flags().BoolVar(&validate, "validate", false, "Check the trace against the algorithm's state graph")

	return cmd
}
