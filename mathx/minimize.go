// Copyright 2025 The credible Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package mathx provides scalar numerical search routines.
package mathx

// invPhi is 1/φ = (√5-1)/2, the golden-section interval reduction
// factor.
const invPhi = 0.6180339887498949

// MinimizeScalar finds a minimizer of f on the interval [lo, hi] using
// golden-section search. It assumes f has a single minimum on the
// interval; for multimodal f it converges to one of the local minima.
//
// The search stops once the bracketing interval is narrower than tol
// and returns its midpoint. If the interval has not shrunk below tol
// after maxIter iterations, the midpoint of the current bracket is
// returned with ok=false.
//
// Each iteration reduces the bracket by a factor of 1/φ ≈ 0.618, so
// the iterations needed to reach tol is log(tol/(hi-lo))/log(1/φ).
func MinimizeScalar(f func(float64) float64, lo, hi, tol float64, maxIter int) (x float64, ok bool) {
	a, b := lo, hi
	h := b - a
	if h <= tol {
		return (a + b) / 2, true
	}

	// Interior probe points. Reusing the surviving probe each
	// iteration costs one function evaluation per step.
	c := b - invPhi*h
	d := a + invPhi*h
	fc, fd := f(c), f(d)

	for i := 0; i < maxIter; i++ {
		if fc < fd {
			b, d, fd = d, c, fc
			h = b - a
			c = b - invPhi*h
			fc = f(c)
		} else {
			a, c, fc = c, d, fd
			h = b - a
			d = a + invPhi*h
			fd = f(d)
		}
		if h <= tol {
			return (a + b) / 2, true
		}
	}
	return (a + b) / 2, false
}

// Bisect finds a root of f on [lo, hi] by bisection, assuming
// f(lo) and f(hi) have opposite signs. It tolerates discontinuous f:
// if f jumps across zero the returned x brackets the discontinuity to
// within tol.
func Bisect(f func(float64) float64, lo, hi, tol float64) float64 {
	flo := f(lo)
	for hi-lo > tol {
		mid := lo + (hi-lo)/2
		if mid <= lo || mid >= hi {
			break // interval below float resolution
		}
		if fmid := f(mid); (fmid < 0) == (flo < 0) {
			lo, flo = mid, fmid
		} else {
			hi = mid
		}
	}
	return lo + (hi-lo)/2
}
