// Copyright 2025 The credible Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package stats

import (
	"sort"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"
)

// Sample is a collection of possibly weighted values drawn from some
// unknown distribution. Here all draws carry equal weight.
type Sample struct {
	// Xs is the slice of sample values.
	Xs []float64

	// Sorted indicates that Xs is sorted in ascending order.
	Sorted bool
}

// Weight returns the total weight of the sample, which for an
// unweighted sample is simply its size.
func (s Sample) Weight() float64 {
	return float64(len(s.Xs))
}

// Copy returns a copy of the sample whose Xs do not alias s's.
func (s Sample) Copy() *Sample {
	return &Sample{Xs: append([]float64(nil), s.Xs...), Sorted: s.Sorted}
}

// Sort sorts the sample in place in ascending order and returns it.
func (s *Sample) Sort() *Sample {
	if !s.Sorted && !sort.Float64sAreSorted(s.Xs) {
		sort.Float64s(s.Xs)
	}
	s.Sorted = true
	return s
}

// Bounds returns the minimum and maximum values of the sample. If the
// sample is empty, it returns (+inf, -inf).
func (s Sample) Bounds() (low, high float64) {
	if len(s.Xs) == 0 {
		return inf, -inf
	}
	if s.Sorted {
		return s.Xs[0], s.Xs[len(s.Xs)-1]
	}
	return floats.Min(s.Xs), floats.Max(s.Xs)
}

// Mean returns the arithmetic mean of the sample.
func (s Sample) Mean() float64 {
	return stat.Mean(s.Xs, nil)
}

// StdDev returns the sample standard deviation (Bessel corrected).
// It is NaN for samples of fewer than two values.
func (s Sample) StdDev() float64 {
	return stat.StdDev(s.Xs, nil)
}

// Quantile returns the p'th empirical quantile of the sample: the
// smallest sample value whose empirical CDF is at least p. p outside
// [0, 1] is clamped.
func (s Sample) Quantile(p float64) float64 {
	xs := s.Xs
	if !s.Sorted {
		xs = append([]float64(nil), xs...)
		sort.Float64s(xs)
	}
	if p < 0 {
		p = 0
	} else if p > 1 {
		p = 1
	}
	return stat.Quantile(p, stat.Empirical, xs, nil)
}

// IQR returns the interquartile range of the sample.
func (s Sample) IQR() float64 {
	if !s.Sorted {
		s = *s.Copy().Sort()
	}
	return s.Quantile(0.75) - s.Quantile(0.25)
}
