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
	"fmt"
	"io"
	"strings"
	"text/tabwriter"
)

// WriteText prints a human-readable summary of r followed by a bar per
// bucket, the longest bar being width characters.
func (r *Report) WriteText(w io.Writer, width int) error {
	c := r.Config
	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	fmt.Fprintf(tw, "algorithm\t%v\n", c.Algorithm)
	fmt.Fprintf(tw, "source\t%v (seed %d)\n", c.Source, c.Seed)
	fmt.Fprintf(tw, "stream\tn=%d k=%d repetitions=%d\n", c.N, c.K, c.Repetitions)
	fmt.Fprintf(tw, "expected per position\t%.3f\n", r.Expected)
	fmt.Fprintf(tw, "chi-square\t%.3f (df=%d, p=%.4f)\n", r.ChiSquare, r.DegreesOfFreedom, r.PValue)
	fmt.Fprintf(tw, "out of bounds\t%d/%d at %.1f std devs\n", r.OutOfBounds, len(r.Counts), c.StdDevs)
	fmt.Fprintf(tw, "draws\tkey=%d total=%d skipped=%d degenerate=%d\n",
		r.Stats.KeyDraws, r.Stats.Draws, r.Stats.Skipped, r.Stats.Degenerate)
	fmt.Fprintf(tw, "runtime\tmin=%v median=%v p90=%v max=%v\n",
		r.Runtime.Min, r.Runtime.Median, r.Runtime.P90, r.Runtime.Max)
	if err := tw.Flush(); err != nil {
		return err
	}
	if _, err := fmt.Fprintln(w); err != nil {
		return err
	}

	width = max(width, 1)
	var peak uint64
	for _, b := range r.Buckets {
		peak = max(peak, b.Count)
	}
	tw = tabwriter.NewWriter(w, 0, 4, 1, ' ', tabwriter.AlignRight)
	for _, b := range r.Buckets {
		bar := 0
		if peak > 0 {
			bar = int(b.Count * uint64(width) / peak)
		}
		fmt.Fprintf(tw, "%d-%d\t %s\t%d\t(exp %.1f)\t\n",
			b.Start, b.End-1, strings.Repeat("#", bar)+strings.Repeat(" ", width-bar), b.Count, b.Expected)
	}
	return tw.Flush()
}
