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

// Package experiment measures how often each stream position lands in the
// sample over many seeded repetitions, which is how the samplers' uniformity
// and cost are checked outside of unit tests.
package experiment

import (
	"context"
	"io"
	"time"

	"github.com/charmbracelet/log"
	"github.com/pkg/errors"
	"gonum.org/v1/gonum/stat/distuv"

	"github.com/streamsample/streamsample/internal"
	"github.com/streamsample/streamsample/internal/inclusionbounds"
	"github.com/streamsample/streamsample/random"
	"github.com/streamsample/streamsample/sampling"
	"github.com/streamsample/streamsample/stream"
)

// Option configures Run.
type Option func(*options)

type options struct {
	logger *log.Logger
	now    func() time.Time
}

// WithLogger logs per-repetition progress at debug level.
func WithLogger(l *log.Logger) Option {
	return func(o *options) {
		o.logger = l
	}
}

// WithClock replaces time.Now for timing repetitions.
func WithClock(now func() time.Time) Option {
	return func(o *options) {
		o.now = now
	}
}

// Bucket is one bar of the inclusion histogram: positions [Start, End).
type Bucket struct {
	Start    int     `json:"start" yaml:"start"`
	End      int     `json:"end" yaml:"end"`
	Count    uint64  `json:"count" yaml:"count"`
	Expected float64 `json:"expected" yaml:"expected"`
}

// Runtime summarizes the wall time of the repetitions.
type Runtime struct {
	Min    time.Duration `json:"min" yaml:"min"`
	Median time.Duration `json:"median" yaml:"median"`
	P90    time.Duration `json:"p90" yaml:"p90"`
	Max    time.Duration `json:"max" yaml:"max"`
	Mean   time.Duration `json:"mean" yaml:"mean"`
}

// Report is the outcome of an experiment.
type Report struct {
	Config Config `json:"config" yaml:"config"`
	// Counts[i] is the number of repetitions whose sample held position i.
	Counts []uint64 `json:"counts" yaml:"counts"`
	// Expected is the inclusion count every position should approach.
	Expected float64  `json:"expected" yaml:"expected"`
	Buckets  []Bucket `json:"buckets" yaml:"buckets"`
	// ChiSquare is Pearson's statistic over Buckets. Samples are drawn
	// without replacement, so bucket counts are negatively correlated and
	// PValue is conservative.
	ChiSquare        float64 `json:"chiSquare" yaml:"chiSquare"`
	DegreesOfFreedom int     `json:"degreesOfFreedom" yaml:"degreesOfFreedom"`
	PValue           float64 `json:"pValue" yaml:"pValue"`
	// OutOfBounds counts positions whose inclusion interval at
	// Config.StdDevs excludes the nominal rate k/n.
	OutOfBounds int            `json:"outOfBounds" yaml:"outOfBounds"`
	Stats       sampling.Stats `json:"stats" yaml:"stats"`
	Runtime     Runtime        `json:"runtime" yaml:"runtime"`
}

// Rate returns the nominal inclusion probability min(k, n)/n.
func (c Config) Rate() float64 {
	return float64(min(c.K, c.N)) / float64(c.N)
}

// Run executes cfg.Repetitions sampling runs over the same generated stream,
// each with its own sampler seed, and reports how often each position was
// kept. Repetitions run sequentially so a report is reproducible from
// cfg.Seed.
func Run(ctx context.Context, cfg Config, opts ...Option) (*Report, error) {
	if err := cfg.Validate(); err != nil {
		return nil, errors.Wrap(err, "invalid experiment config")
	}
	o := options{
		logger: log.New(io.Discard),
		now:    time.Now,
	}
	for _, opt := range opts {
		opt(&o)
	}

	counts := make([]uint64, cfg.N)
	elapsed := make([]time.Duration, 0, cfg.Repetitions)
	var total sampling.Stats
	streamSeed := random.DeriveSeed(cfg.Seed, "stream")

	for rep := 0; rep < cfg.Repetitions; rep++ {
		if err := ctx.Err(); err != nil {
			return nil, errors.Wrapf(err, "stopped after %d repetitions", rep)
		}
		values, err := random.New(cfg.Source, streamSeed)
		if err != nil {
			return nil, errors.Wrap(err, "stream source")
		}
		src, err := random.New(cfg.Source, random.DeriveIndexedSeed(cfg.Seed, rep))
		if err != nil {
			return nil, errors.Wrap(err, "sampler source")
		}
		run, err := sampling.New(cfg.Algorithm, stream.Records(cfg.N, values), cfg.K, src)
		if err != nil {
			return nil, errors.Wrapf(err, "repetition %d", rep)
		}

		start := o.now()
		entries := sampling.Drain(run)
		d := o.now().Sub(start)
		elapsed = append(elapsed, d)

		for _, e := range entries {
			counts[e.Value.Index]++
		}
		stats := run.Stats()
		total.Reads += stats.Reads
		total.KeyDraws += stats.KeyDraws
		total.Draws += stats.Draws
		total.Accepted += stats.Accepted
		total.Skipped += stats.Skipped
		total.Degenerate += stats.Degenerate

		o.logger.Debug("repetition done", "rep", rep, "keyDraws", stats.KeyDraws, "elapsed", d)
	}

	report := &Report{
		Config:   cfg,
		Counts:   counts,
		Expected: float64(cfg.Repetitions) * cfg.Rate(),
		Stats:    total,
	}
	report.bucketize()
	if err := report.bound(); err != nil {
		return nil, err
	}
	rt, err := summarize(elapsed)
	if err != nil {
		return nil, err
	}
	report.Runtime = rt

	o.logger.Info("experiment done",
		"algorithm", cfg.Algorithm,
		"chiSquare", report.ChiSquare,
		"pValue", report.PValue,
		"outOfBounds", report.OutOfBounds)
	return report, nil
}

func (r *Report) bucketize() {
	bounds := split(len(r.Counts), r.Config.Buckets)
	r.Buckets = make([]Bucket, len(bounds)-1)
	observed := make([]uint64, len(r.Buckets))
	expected := make([]float64, len(r.Buckets))
	for i := range r.Buckets {
		lo, hi := bounds[i], bounds[i+1]
		b := Bucket{
			Start:    lo,
			End:      hi,
			Count:    sum(r.Counts[lo:hi]),
			Expected: r.Expected * float64(hi-lo),
		}
		r.Buckets[i] = b
		observed[i] = b.Count
		expected[i] = b.Expected
	}

	r.ChiSquare = chiSquare(observed, expected)
	r.DegreesOfFreedom = len(r.Buckets) - 1
	r.PValue = 1
	if r.DegreesOfFreedom > 0 {
		r.PValue = distuv.ChiSquared{K: float64(r.DegreesOfFreedom)}.Survival(r.ChiSquare)
	}
}

func (r *Report) bound() error {
	rate := r.Config.Rate()
	trials := uint64(r.Config.Repetitions)
	for i, c := range r.Counts {
		iv, err := inclusionbounds.Estimate(trials, c, r.Config.StdDevs)
		if err != nil {
			return errors.Wrapf(err, "bounds for position %d", i)
		}
		if !iv.Contains(rate) {
			r.OutOfBounds++
		}
	}
	return nil
}

func summarize(elapsed []time.Duration) (Runtime, error) {
	var rt Runtime
	for _, q := range []struct {
		dst *time.Duration
		q   float64
	}{
		{&rt.Min, 0},
		{&rt.Median, 0.5},
		{&rt.P90, 0.9},
		{&rt.Max, 1},
	} {
		v, err := internal.Quantile(elapsed, q.q)
		if err != nil {
			return Runtime{}, errors.Wrap(err, "runtime summary")
		}
		*q.dst = v
	}
	rt.Mean = time.Duration(mean(elapsed))
	return rt, nil
}
