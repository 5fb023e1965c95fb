// Copyright 2024 The go-descstats Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// stats provides descriptive statistics over float64 samples.
//
// Every function takes its sample as a plain []float64, treats it as
// read-only, and sorts a private copy when it needs order statistics.
// Fallible functions return a sentinel error from this package;
// composite functions pass sub-operation errors through unchanged, so
// errors.Is identifies the original failing operation.
package stats // import "github.com/statkit/go-descstats/stats"
