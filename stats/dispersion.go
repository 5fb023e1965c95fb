// Copyright 2024 The go-descstats Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package stats

import (
	"math"

	"gonum.org/v1/gonum/floats"
)

// MeanAbsoluteDeviation returns the mean distance of xs from its
// mean. It fails with ErrEmptySample.
func MeanAbsoluteDeviation(xs []float64) (float64, error) {
	if len(xs) == 0 {
		return 0, ErrEmptySample
	}
	m := Mean(xs)
	sum := 0.0
	for _, x := range xs {
		sum += math.Abs(x - m)
	}
	return sum / float64(len(xs)), nil
}

// Variance returns the population variance of xs (denominator n, not
// n-1). It fails with ErrEmptySample.
func Variance(xs []float64) (float64, error) {
	if len(xs) == 0 {
		return 0, ErrEmptySample
	}
	m := Mean(xs)
	sum := 0.0
	for _, x := range xs {
		d := x - m
		sum += d * d
	}
	return sum / float64(len(xs)), nil
}

// StdDev returns the population standard deviation of xs,
// propagating Variance failures unchanged.
func StdDev(xs []float64) (float64, error) {
	v, err := Variance(xs)
	if err != nil {
		return 0, err
	}
	return math.Sqrt(v), nil
}

// MedianAbsoluteDeviation returns the median distance of xs from its
// median. It fails with ErrEmptySample.
func MedianAbsoluteDeviation(xs []float64) (float64, error) {
	if len(xs) == 0 {
		return 0, ErrEmptySample
	}
	med := Median(xs)
	devs := make([]float64, len(xs))
	for i, x := range xs {
		devs[i] = math.Abs(x - med)
	}
	return Median(devs), nil
}

// Bounds returns the minimum and maximum values of xs. It fails with
// ErrEmptySample.
func Bounds(xs []float64) (min, max float64, err error) {
	if len(xs) == 0 {
		return 0, 0, ErrEmptySample
	}
	return floats.Min(xs), floats.Max(xs), nil
}

// Range returns the spread between the largest and smallest values of
// xs. An empty sample yields 0.
func Range(xs []float64) float64 {
	min, max, err := Bounds(xs)
	if err != nil {
		return 0
	}
	return max - min
}
