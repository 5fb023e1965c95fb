// Copyright 2024 The go-descstats Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package stats

import (
	"math"

	"gonum.org/v1/gonum/floats"
)

// A Summary collects the common descriptive statistics of a sample.
type Summary struct {
	N        int
	Sum      float64
	Mean     float64
	Median   float64
	Min      float64
	Max      float64
	Range    float64
	Variance float64
	StdDev   float64

	// Q1, Q2 and Q3 are the 25th, 50th and 75th percentiles.
	Q1, Q2, Q3 float64
}

// Describe summarizes xs in one call. An empty sample yields the zero
// Summary.
func Describe(xs []float64) Summary {
	if len(xs) == 0 {
		return Summary{}
	}
	s := Summary{
		N:      len(xs),
		Sum:    floats.Sum(xs),
		Mean:   Mean(xs),
		Median: Median(xs),
	}
	s.Min, s.Max, _ = Bounds(xs)
	s.Range = s.Max - s.Min
	s.Variance, _ = Variance(xs)
	s.StdDev = math.Sqrt(s.Variance)
	s.Q1, _ = Percentile(xs, 25)
	s.Q2, _ = Percentile(xs, 50)
	s.Q3, _ = Percentile(xs, 75)
	return s
}
