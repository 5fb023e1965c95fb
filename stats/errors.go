// Copyright 2024 The go-descstats Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package stats

import "errors"

var (
	// ErrEmptySample is returned when an operation requires at least
	// one sample value and received none.
	ErrEmptySample = errors.New("sample contains no values")

	// ErrInvalidPercentile is returned when a percentile argument
	// falls outside [0, 100].
	ErrInvalidPercentile = errors.New("percentile must be in [0, 100]")

	// ErrInvalidTrim is returned when a trim fraction is outside its
	// valid range or trimming would discard the entire sample.
	ErrInvalidTrim = errors.New("trim fraction leaves no values")

	// ErrInvalidBinCount is returned when a frequency table or
	// histogram is requested with zero bins.
	ErrInvalidBinCount = errors.New("bin count must be at least 1")

	// ErrLengthMismatch is returned when a sample and its weights
	// differ in length.
	ErrLengthMismatch = errors.New("sample and weights differ in length")

	// ErrNegativeWeight is returned when any weight is negative.
	ErrNegativeWeight = errors.New("weights must be non-negative")
)
