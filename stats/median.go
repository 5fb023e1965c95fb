// Copyright 2024 The go-descstats Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package stats

import "sort"

// Median returns the middle value of xs, or the average of the two
// middle values for an even count. An empty sample yields 0.
func Median(xs []float64) float64 {
	if len(xs) == 0 {
		return 0
	}
	return medianSorted(sortedCopy(xs))
}

// medianSorted requires s to be sorted and nonempty.
func medianSorted(s []float64) float64 {
	n := len(s)
	if n%2 == 1 {
		return s[n/2]
	}
	return (s[n/2-1] + s[n/2]) / 2
}

// TrimmedMedian returns the median of xs after sorting and discarding
// floor(len(xs)*frac/2) values from each end. It fails with
// ErrInvalidTrim when frac is outside (0, 0.5] or the trim would
// discard the entire sample. An empty sample yields 0 without error.
func TrimmedMedian(xs []float64, frac float64) (float64, error) {
	if frac <= 0 || frac > 0.5 {
		return 0, ErrInvalidTrim
	}
	if len(xs) == 0 {
		return 0, nil
	}
	s := sortedCopy(xs)
	k := int(float64(len(s)) * frac / 2)
	if 2*k >= len(s) {
		return 0, ErrInvalidTrim
	}
	return medianSorted(s[k : len(s)-k]), nil
}

// WeightedMedian returns the value of xs at which the cumulative
// weight, walked in ascending value order, first reaches half the
// total weight. It fails with ErrLengthMismatch or ErrNegativeWeight
// when ws is not a valid weight vector for xs. An empty sample yields
// 0.
//
// If rounding drift or an all-zero weight vector keeps the walk from
// reaching the halfway point, the largest value stands in.
func WeightedMedian(xs, ws []float64) (float64, error) {
	if err := checkWeights(xs, ws); err != nil {
		return 0, err
	}
	if len(xs) == 0 {
		return 0, nil
	}

	type pair struct{ x, w float64 }
	pairs := make([]pair, len(xs))
	total := 0.0
	for i, x := range xs {
		pairs[i] = pair{x, ws[i]}
		total += ws[i]
	}
	sort.Slice(pairs, func(i, j int) bool { return pairs[i].x < pairs[j].x })

	half := total / 2
	cum := 0.0
	for _, p := range pairs {
		cum += p.w
		if cum > 0 && cum >= half {
			return p.x, nil
		}
	}
	return pairs[len(pairs)-1].x, nil
}
