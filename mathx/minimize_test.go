// Copyright 2025 The credible Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package mathx

import (
	"math"
	"testing"
)

func TestMinimizeScalar(t *testing.T) {
	check := func(name string, f func(float64) float64, lo, hi, want float64) {
		t.Helper()
		x, ok := MinimizeScalar(f, lo, hi, 1e-10, 200)
		if !ok {
			t.Errorf("%s: did not converge", name)
		}
		if math.Abs(x-want) > 1e-8 {
			t.Errorf("%s: want minimum at %v, got %v", name, want, x)
		}
	}

	check("quadratic", func(x float64) float64 { return (x - 2) * (x - 2) }, 0, 5, 2)
	check("quartic", func(x float64) float64 { return math.Pow(x+0.5, 4) }, -3, 3, -0.5)
	check("vee", func(x float64) float64 { return math.Abs(x - 1.25) }, 0, 2, 1.25)
	// A boundary minimum converges to the boundary.
	check("boundary", func(x float64) float64 { return x }, 0, 1, 0)
}

func TestMinimizeScalarIterationCap(t *testing.T) {
	f := func(x float64) float64 { return x * x }
	if _, ok := MinimizeScalar(f, -1, 1, 1e-12, 3); ok {
		t.Errorf("converged in 3 iterations; interval cannot shrink below %v", math.Pow(invPhi, 3)*2)
	}
	if _, ok := MinimizeScalar(f, -1, 1, 1e-12, 100); !ok {
		t.Errorf("failed to converge in 100 iterations")
	}
}

func TestMinimizeScalarDegenerateInterval(t *testing.T) {
	x, ok := MinimizeScalar(func(x float64) float64 { return x * x }, 1, 1+1e-12, 1e-8, 200)
	if !ok || math.Abs(x-1) > 1e-8 {
		t.Errorf("want 1, got %v (ok=%v)", x, ok)
	}
}

func TestBisect(t *testing.T) {
	check := func(name string, f func(float64) float64, lo, hi, want float64) {
		t.Helper()
		x := Bisect(f, lo, hi, 1e-10)
		if math.Abs(x-want) > 1e-8 {
			t.Errorf("%s: want root at %v, got %v", name, want, x)
		}
	}

	check("linear", func(x float64) float64 { return 2*x - 3 }, 0, 10, 1.5)
	check("erf", func(x float64) float64 { return math.Erf(x) - 0.5 }, -6, 6, 0.47693627620447)
	check("cubic", func(x float64) float64 { return x * x * x }, -2, 1, 0)
	// Decreasing f works too.
	check("decreasing", func(x float64) float64 { return 1 - x }, 0, 4, 1)
}
