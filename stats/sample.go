// Copyright 2024 The go-descstats Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package stats

import "slices"

// sortedCopy returns the values of xs in ascending order without
// modifying xs.
func sortedCopy(xs []float64) []float64 {
	s := append([]float64(nil), xs...)
	slices.Sort(s)
	return s
}

// checkWeights validates ws as a weight vector for xs.
func checkWeights(xs, ws []float64) error {
	if len(xs) != len(ws) {
		return ErrLengthMismatch
	}
	for _, w := range ws {
		if w < 0 {
			return ErrNegativeWeight
		}
	}
	return nil
}
