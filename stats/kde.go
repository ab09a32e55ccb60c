// Copyright 2025 The credible Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package stats

import (
	"math"

	"gonum.org/v1/gonum/stat/distuv"

	"github.com/probstats/credible/mathx"
)

// KDE represents options for constructing a kernel density estimate:
// a smooth, non-parametric estimate ƒ̂(x) of the unknown distribution
// underlying a sample. The estimate places a Gaussian kernel at every
// sample value and averages them.
//
// The default (zero) value of KDE is a reasonable default
// configuration. To construct an estimate, create an instance of KDE
// and use the From method to provide data.
type KDE struct {
	// Bandwidth is the standard deviation of the Gaussian
	// kernels.
	//
	// If this is zero, the bandwidth is computed from the
	// provided data by BandwidthScott.
	Bandwidth float64

	// [BoundaryMin, BoundaryMax) specify a bounded support for
	// the estimate. If both are 0 (their default values), they
	// are treated as +/-inf.
	//
	// To specify a half-bounded support, set BoundaryMin to
	// math.Inf(-1) or BoundaryMax to math.Inf(1). Density leaking
	// past a finite boundary is reflected back inside it.
	BoundaryMin float64
	BoundaryMax float64
}

// BandwidthScott is a bandwidth estimator implementing Scott's Rule.
// It scales the smaller of the sample standard deviation and
// IQR/1.349 (a spread estimate robust to outliers; for a Gaussian the
// two agree) by 1.06·n^(-1/5).
//
// Scott, D. W. (1992) Multivariate Density Estimation: Theory,
// Practice, and Visualization.
func BandwidthScott(s Sample) float64 {
	hScale := 1.06 * math.Pow(s.Weight(), -1.0/5)
	stdDev := s.StdDev()
	if iqr := s.IQR() / 1.349; iqr > 0 && iqr < stdDev {
		return hScale * iqr
	}
	return hScale * stdDev
}

// From returns the kernel density estimate for the sample s. The
// returned Dist reads, but does not copy, s.Xs.
func (k KDE) From(s Sample) Dist {
	h := k.Bandwidth
	if h == 0 {
		h = BandwidthScott(s)
	}

	min, max := k.BoundaryMin, k.BoundaryMax
	if min == 0 && max == 0 {
		min, max = math.Inf(-1), math.Inf(1)
	}

	return &kdeDist{
		kernel: distuv.Normal{Mu: 0, Sigma: h},
		xs:     s.Xs,
		h:      h,
		min:    min,
		max:    max,
	}
}

type kdeDist struct {
	kernel   distuv.Normal
	xs       []float64
	h        float64
	min, max float64 // support bounds
}

// eval averages f, shifted to each sample value, at x. Evaluating
// kernels centered on kde.xs all at x is equivalent to evaluating one
// centered kernel at x minus each sample value.
func (kde *kdeDist) eval(f func(float64) float64, x float64) float64 {
	var sum float64
	for _, xi := range kde.xs {
		sum += f(x - xi)
	}
	return sum / float64(len(kde.xs))
}

func (kde *kdeDist) PDF(x float64) float64 {
	if x < kde.min || x >= kde.max {
		return 0
	}
	y := kde.eval(kde.kernel.Prob, x)
	// Reflect mass that leaks past a finite boundary. A single
	// reflection term per side is exact for half-bounded supports
	// and accurate to the kernel tail weight beyond the far
	// boundary for doubly-bounded ones.
	if !math.IsInf(kde.min, -1) {
		y += kde.eval(kde.kernel.Prob, 2*kde.min-x)
	}
	if !math.IsInf(kde.max, 1) {
		y += kde.eval(kde.kernel.Prob, 2*kde.max-x)
	}
	return y
}

func (kde *kdeDist) CDF(x float64) float64 {
	if x < kde.min {
		return 0
	} else if x >= kde.max {
		return 1
	}
	y := kde.eval(kde.kernel.CDF, x)
	if !math.IsInf(kde.min, -1) {
		y -= kde.eval(kde.kernel.CDF, 2*kde.min-x)
	}
	if !math.IsInf(kde.max, 1) {
		y += 1 - kde.eval(kde.kernel.CDF, 2*kde.max-x)
	}
	return y
}

// InvCDF returns the p'th quantile of the estimate for p in (0, 1).
// At or beyond 0 and 1 it returns the support bounds, which may be
// infinite.
func (kde *kdeDist) InvCDF(p float64) float64 {
	if p <= 0 {
		return kde.min
	} else if p >= 1 {
		return kde.max
	}

	// Bracket the quantile, expanding past the nominal bounds for
	// p in the far tails, then bisect.
	lo, hi := kde.Bounds()
	for kde.CDF(lo) > p && lo > kde.min {
		lo -= hi - lo
	}
	for kde.CDF(hi) < p && hi < kde.max {
		hi += hi - lo
	}
	tol := (hi - lo) * 1e-10
	return mathx.Bisect(func(x float64) float64 { return kde.CDF(x) - p }, lo, hi, tol)
}

func (kde *kdeDist) Bounds() (low, high float64) {
	low, high = Sample{Xs: kde.xs}.Bounds()
	if low == high {
		low, high = low-1, high+1
	}
	// Cover the kernel tails of the extreme samples. Four
	// bandwidths leave under 1e-4 of each kernel outside.
	low, high = low-4*kde.h, high+4*kde.h
	return math.Max(low, kde.min), math.Min(high, kde.max)
}
