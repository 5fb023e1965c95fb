// Copyright 2024 The go-descstats Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package stats

import "gonum.org/v1/gonum/floats"

// A FrequencyBin is one row of a frequency table: a 1-based bin
// ordinal, the bin's value range, and the number of sample values
// falling inside it.
type FrequencyBin struct {
	Bin   int
	Min   float64 // inclusive
	Max   float64 // exclusive, except for the last bin
	Count int
}

// maxTolerance pulls values within rounding distance of the sample
// maximum into the last bin.
const maxTolerance = 1e-6

// FrequencyTable partitions [min, max] of xs into bins equal-width
// bins and counts the values falling in each. Bins are half-open
// except the last, whose upper bound is inclusive so the maximum is
// always counted. When all values are equal the bin width is zero and
// every value lands in the last bin. It fails with ErrEmptySample or
// ErrInvalidBinCount.
func FrequencyTable(xs []float64, bins int) ([]FrequencyBin, error) {
	if len(xs) == 0 {
		return nil, ErrEmptySample
	}
	if bins < 1 {
		return nil, ErrInvalidBinCount
	}

	min, max := floats.Min(xs), floats.Max(xs)
	width := (max - min) / float64(bins)

	table := make([]FrequencyBin, bins)
	for i := range table {
		table[i] = FrequencyBin{
			Bin: i + 1,
			Min: min + float64(i)*width,
			Max: min + float64(i+1)*width,
		}
	}

	last := bins - 1
	for _, x := range xs {
		if x >= max-maxTolerance {
			table[last].Count++
			continue
		}
		// x < max here, so width > 0.
		idx := int((x - min) / width)
		if idx > last {
			idx = last
		}
		table[idx].Count++
	}
	return table, nil
}

// Histogram returns the per-bin counts of FrequencyTable(xs, bins),
// failing identically.
func Histogram(xs []float64, bins int) ([]int, error) {
	table, err := FrequencyTable(xs, bins)
	if err != nil {
		return nil, err
	}
	counts := make([]int, len(table))
	for i, b := range table {
		counts[i] = b.Count
	}
	return counts, nil
}

// CumulativeDensity returns the running sum of counts and that
// running sum normalized by the final total. The last normalized
// entry is clamped to exactly 1 to absorb rounding drift. It fails
// with ErrEmptySample when counts is empty.
func CumulativeDensity(counts []int) (sums []int, density []float64, err error) {
	if len(counts) == 0 {
		return nil, nil, ErrEmptySample
	}

	sums = make([]int, len(counts))
	run := 0
	for i, c := range counts {
		run += c
		sums[i] = run
	}

	density = make([]float64, len(counts))
	total := float64(run)
	for i, s := range sums {
		density[i] = float64(s) / total
	}
	density[len(density)-1] = 1
	return sums, density, nil
}
