// Copyright 2025 The credible Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package stats

import "gonum.org/v1/gonum/floats"

// A QuantileFunc is the quantile function (inverse CDF) of a
// continuous distribution. It maps a cumulative probability p in
// (0, 1) to a value and must be monotonic non-decreasing. Any method
// value d.InvCDF of a Dist d satisfies this.
type QuantileFunc func(p float64) float64

// A Dist is a continuous statistical distribution.
type Dist interface {
	// PDF returns the value of the probability density function
	// of this distribution at x.
	PDF(x float64) float64

	// CDF returns the value of the cumulative distribution
	// function for this distribution at x. This is the integral
	// of the PDF from -inf to x.
	CDF(x float64) float64

	// InvCDF returns the inverse of the CDF for p. That is,
	// InvCDF(CDF(x)) = x. The value of p must be in (0, 1).
	InvCDF(p float64) float64

	// Bounds returns reasonable bounds for this distribution's
	// PDF and CDF. The total weight outside of these bounds
	// should be approximately 0.
	Bounds() (float64, float64)
}

// Grid evaluates d's PDF at n evenly spaced points across d's bounds
// and returns the points and their densities. n must be at least 2.
func Grid(d Dist, n int) (xs, densities []float64) {
	lo, hi := d.Bounds()
	xs = floats.Span(make([]float64, n), lo, hi)
	densities = make([]float64, n)
	for i, x := range xs {
		densities[i] = d.PDF(x)
	}
	return xs, densities
}
