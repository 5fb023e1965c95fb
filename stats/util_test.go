// Copyright 2024 The go-descstats Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package stats

import "math"

func aeq(expect, got float64) bool {
	return math.Abs(expect-got) < 0.00001
}

// fixture and fixtureWeights are the shared reference sample.
var (
	fixture        = []float64{1, 2, 3, 4, 5, 6, 7, 8, 9, 10}
	fixtureWeights = []float64{1, 2, 1, 2, 1, 2, 1, 2, 1, 2}
)
