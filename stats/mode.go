// Copyright 2024 The go-descstats Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package stats

import "slices"

// Mode returns every value of xs occurring with the maximum observed
// frequency, sorted ascending, together with that frequency. It fails
// with ErrEmptySample.
//
// Values are grouped by exact float64 equality, so computed inputs
// that differ by rounding error count as distinct values.
func Mode(xs []float64) ([]float64, int, error) {
	if len(xs) == 0 {
		return nil, 0, ErrEmptySample
	}

	counts := make(map[float64]int, len(xs))
	for _, x := range xs {
		counts[x]++
	}
	max := 0
	for _, c := range counts {
		if c > max {
			max = c
		}
	}
	modes := make([]float64, 0, len(counts))
	for x, c := range counts {
		if c == max {
			modes = append(modes, x)
		}
	}
	slices.Sort(modes)
	return modes, max, nil
}
