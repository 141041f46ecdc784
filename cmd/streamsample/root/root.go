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

package root

import (
	"github.com/MakeNowJust/heredoc/v2"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/streamsample/streamsample/cmd/streamsample/root/histogram"
	"github.com/streamsample/streamsample/cmd/streamsample/root/sample"
	"github.com/streamsample/streamsample/cmd/streamsample/root/trace"
	"github.com/streamsample/streamsample/cmd/streamsample/root/version"
	"github.com/streamsample/streamsample/internal/cliutil"
)

func NewRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "streamsample <command> [flags]",
		Short: "Uniform sampling of k items from a stream",
		Long: heredoc.Doc(`
			Runs the permutation, bottom-k and jump samplers over a stream and
			reports their samples, their step-by-step traces and how uniformly
			they include each stream position.
		`),
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if err := viper.BindPFlags(cmd.Flags()); err != nil {
				return err
			}
			if err := cliutil.ValidateFormat(viper.GetString("format")); err != nil {
				return err
			}
			return cliutil.ConfigureLogging(cmd.ErrOrStderr(), viper.GetString("log-level"))
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return cmd.Help()
		},
	}
	cmd.PersistentFlags().String("log-level", "info", "Log level: debug, info, warn or error")
	cmd.PersistentFlags().String("format", cliutil.FormatText, "Output format. Accepts 'text', 'json' or 'yaml'")

	cmd.AddCommand(sample.NewSampleCmd())
	cmd.AddCommand(trace.NewTraceCmd())
	cmd.AddCommand(histogram.NewHistogramCmd())
	cmd.AddCommand(version.NewVersionCmd())

	return cmd
}
