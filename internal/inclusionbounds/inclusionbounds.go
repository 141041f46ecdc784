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

// Package inclusionbounds gives confidence intervals for an item's inclusion
// probability estimated from repeated sampling runs.
//
// If a sampler is run `trials` times and a given stream position lands in
// the sample `hits` times, hits is binomial with unknown success
// probability p. The interval returned here is an approximation of the
// Clopper-Pearson interval for p; it is close to but not strictly
// conservative. A correct sampler's k/N should fall inside the interval for
// all but a small fraction of positions.
//
// The width is given in standard deviations of a normal tail, so 2.0 is
// roughly a 95% two-sided interval.
package inclusionbounds

import (
	"fmt"
	"math"
)

// Interval is a confidence interval on an inclusion probability.
type Interval struct {
	Lower float64 `json:"lower" yaml:"lower"`
	Upper float64 `json:"upper" yaml:"upper"`
}

// Contains reports whether p lies within the interval.
func (iv Interval) Contains(p float64) bool {
	return iv.Lower <= p && p <= iv.Upper
}

// Estimate returns the interval on p after observing hits successes in
// trials runs.
func Estimate(trials, hits uint64, numStdDevs float64) (Interval, error) {
	lo, err := LowerBound(trials, hits, numStdDevs)
	if err != nil {
		return Interval{}, err
	}
	hi, err := UpperBound(trials, hits, numStdDevs)
	if err != nil {
		return Interval{}, err
	}
	return Interval{Lower: lo, Upper: hi}, nil
}

// LowerBound returns the lower end of the interval.
//
// It solves for the p at which the right tail sum_{j>=hits} bino(j; trials, p)
// equals delta, restated through x = 1-p as I_x(trials-hits+1, hits) = 1-delta.
func LowerBound(trials, hits uint64, numStdDevs float64) (float64, error) {
	if err := check(trials, hits); err != nil {
		return 0, err
	}
	delta := tailMass(numStdDevs)
	switch {
	case trials == 0, hits == 0:
		return 0, nil
	case hits == 1:
		return 1 - math.Pow(1-delta, 1/float64(trials)), nil
	case hits == trials:
		return math.Pow(delta, 1/float64(trials)), nil
	}
	x := invIncompleteBeta(float64(trials-hits+1), float64(hits), -numStdDevs)
	return 1 - x, nil
}

// UpperBound returns the upper end of the interval.
//
// It solves for the p at which the left tail sum_{j<=hits} bino(j; trials, p)
// equals delta, restated through x = 1-p as I_x(trials-hits, hits+1) = delta.
func UpperBound(trials, hits uint64, numStdDevs float64) (float64, error) {
	if err := check(trials, hits); err != nil {
		return 0, err
	}
	delta := tailMass(numStdDevs)
	switch {
	case trials == 0, hits == trials:
		return 1, nil
	case hits == 0:
		return 1 - math.Pow(delta, 1/float64(trials)), nil
	case hits == trials-1:
		return math.Pow(1-delta, 1/float64(trials)), nil
	}
	x := invIncompleteBeta(float64(trials-hits), float64(hits+1), numStdDevs)
	return 1 - x, nil
}

func check(trials, hits uint64) error {
	if hits > trials {
		return fmt.Errorf("hits cannot exceed trials: trials=%d, hits=%d", trials, hits)
	}
	return nil
}

// tailMass is the standard normal mass beyond numStdDevs.
func tailMass(numStdDevs float64) float64 {
	return 0.5 * math.Erfc(numStdDevs/math.Sqrt2)
}

// invIncompleteBeta approximates the x with I_x(a, b) = delta, where delta
// is the normal right-tail mass beyond yp standard deviations (Abramowitz
// and Stegun 26.5.22). Variable names follow the book.
func invIncompleteBeta(a, b, yp float64) float64 {
	b2m1 := 2*b - 1
	a2m1 := 2*a - 1
	lambda := (yp*yp - 3) / 6
	h := 2 / (1/a2m1 + 1/b2m1)
	w := yp*math.Sqrt(h+lambda)/h - (1/b2m1-1/a2m1)*(lambda+5.0/6-2/(3*h))
	return a / (a + b*math.Exp(2*w))
}
