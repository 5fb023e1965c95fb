// Copyright 2024 The go-descstats Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package stats

import (
	"errors"
	"math/rand"
	"testing"
)

func TestMedian(t *testing.T) {
	if got := Median(fixture); !aeq(5.5, got) {
		t.Errorf("Median(fixture) = %v, want 5.5", got)
	}
	if got := Median([]float64{3, 1, 2}); !aeq(2, got) {
		t.Errorf("Median([3 1 2]) = %v, want 2", got)
	}
	if got := Median(nil); got != 0 {
		t.Errorf("Median(nil) = %v, want 0", got)
	}

	// Median must not mutate its input.
	xs := []float64{5, 1, 4}
	Median(xs)
	if xs[0] != 5 || xs[1] != 1 || xs[2] != 4 {
		t.Errorf("Median mutated its input: %v", xs)
	}
}

func TestMedianOrderIndependent(t *testing.T) {
	rng := rand.New(rand.NewSource(1))
	xs := append([]float64(nil), fixture...)
	want := Median(xs)
	for i := 0; i < 10; i++ {
		rng.Shuffle(len(xs), func(i, j int) { xs[i], xs[j] = xs[j], xs[i] })
		if got := Median(xs); !aeq(want, got) {
			t.Fatalf("Median(%v) = %v, want %v", xs, got, want)
		}
	}
}

func TestTrimmedMedian(t *testing.T) {
	// k = floor(10*0.4/2) = 2; the sorted middle is positions 2..7.
	got, err := TrimmedMedian(fixture, 0.4)
	if err != nil {
		t.Fatal(err)
	}
	if !aeq(5.5, got) {
		t.Errorf("TrimmedMedian(fixture, 0.4) = %v, want 5.5", got)
	}

	// Unlike TrimmedMean, this sorts before trimming.
	xs := []float64{100, 1, 2, 3, 100}
	got, err = TrimmedMedian(xs, 0.5)
	if err != nil {
		t.Fatal(err)
	}
	if !aeq(3, got) {
		t.Errorf("TrimmedMedian(%v, 0.5) = %v, want 3", xs, got)
	}

	// Empty input succeeds with 0; an invalid fraction does not.
	got, err = TrimmedMedian(nil, 0.2)
	if err != nil || got != 0 {
		t.Errorf("TrimmedMedian(nil, 0.2) = %v, %v, want 0, nil", got, err)
	}
	for _, frac := range []float64{0, -0.1, 0.6, 1} {
		if _, err := TrimmedMedian(fixture, frac); !errors.Is(err, ErrInvalidTrim) {
			t.Errorf("TrimmedMedian(fixture, %v) err = %v, want ErrInvalidTrim", frac, err)
		}
	}
}

func TestWeightedMedian(t *testing.T) {
	got, err := WeightedMedian(fixture, fixtureWeights)
	if err != nil {
		t.Fatal(err)
	}
	if !aeq(6, got) {
		t.Errorf("WeightedMedian(fixture, weights) = %v, want 6", got)
	}

	// The walk sorts by value, so input order is irrelevant.
	got, err = WeightedMedian([]float64{10, 1, 5}, []float64{1, 1, 1})
	if err != nil {
		t.Fatal(err)
	}
	if !aeq(5, got) {
		t.Errorf("WeightedMedian([10 1 5], ones) = %v, want 5", got)
	}
}

func TestWeightedMedianZeroWeights(t *testing.T) {
	// An all-zero weight vector never reaches half the (zero) total
	// weight, so the walk degrades to the largest value.
	got, err := WeightedMedian([]float64{4, 9, 2}, []float64{0, 0, 0})
	if err != nil {
		t.Fatal(err)
	}
	if !aeq(9, got) {
		t.Errorf("WeightedMedian with zero weights = %v, want 9", got)
	}
}

func TestWeightedMedianInvalid(t *testing.T) {
	if _, err := WeightedMedian([]float64{1}, nil); !errors.Is(err, ErrLengthMismatch) {
		t.Errorf("mismatched lengths: err = %v, want ErrLengthMismatch", err)
	}
	if _, err := WeightedMedian([]float64{1, 2}, []float64{0.5, -0.5}); !errors.Is(err, ErrNegativeWeight) {
		t.Errorf("negative weight: err = %v, want ErrNegativeWeight", err)
	}
	if got, err := WeightedMedian(nil, nil); err != nil || got != 0 {
		t.Errorf("WeightedMedian(nil, nil) = %v, %v, want 0, nil", got, err)
	}
}
