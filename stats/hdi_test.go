// Copyright 2025 The credible Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package stats

import (
	"errors"
	"math"
	"testing"
)

func TestFindHDINormal(t *testing.T) {
	lo, hi, err := FindHDI(StdNormal.InvCDF, 0.95, nil)
	if err != nil {
		t.Fatal(err)
	}
	if !aeq(-1.959964, lo) || !aeq(1.959964, hi) {
		t.Errorf("want (-1.959964, 1.959964), got (%v, %v)", lo, hi)
	}
	// A symmetric distribution's interval is symmetric about its
	// mean.
	if !aeq(-lo, hi) {
		t.Errorf("want lo == -hi, got (%v, %v)", lo, hi)
	}

	lo, hi, err = FindHDI(NormalDist{Mu: 10, Sigma: 2}.InvCDF, 0.5, nil)
	if err != nil {
		t.Fatal(err)
	}
	// 0.6744898 is the standard normal 75th percentile.
	if !aeq(10-2*0.6744898, lo) || !aeq(10+2*0.6744898, hi) {
		t.Errorf("want (%v, %v), got (%v, %v)", 10-2*0.6744898, 10+2*0.6744898, lo, hi)
	}
}

func TestFindHDIEndpointDensity(t *testing.T) {
	// The defining property of an HDI of a unimodal distribution:
	// the density at the two endpoints is equal.
	dists := map[string]Dist{
		"beta(2,5)":  BetaDist{Alpha: 2, Beta: 5},
		"gamma(3,2)": GammaDist{Alpha: 3, Beta: 2},
		"t(nu=5)":    StudentsTDist{Mu: 0, Sigma: 1, Nu: 5},
	}
	for name, d := range dists {
		for _, width := range []float64{0.5, 0.8, 0.95} {
			lo, hi, err := FindHDI(d.InvCDF, width, nil)
			if err != nil {
				t.Fatalf("%s width %v: %v", name, width, err)
			}
			if lo >= hi {
				t.Errorf("%s width %v: lo %v >= hi %v", name, width, lo, hi)
			}
			if !aeq(d.PDF(lo), d.PDF(hi)) {
				t.Errorf("%s width %v: endpoint densities differ: PDF(%v)=%v, PDF(%v)=%v",
					name, width, lo, d.PDF(lo), hi, d.PDF(hi))
			}
			if got := d.CDF(hi) - d.CDF(lo); !aeq(width, got) {
				t.Errorf("%s width %v: interval holds mass %v", name, width, got)
			}
		}
	}
}

func TestFindHDISkewed(t *testing.T) {
	// The exponential distribution's density decreases from 0, so
	// its HDI starts at 0: [0, -ln(1-width)].
	exp := GammaDist{Alpha: 1, Beta: 1}
	lo, hi, err := FindHDI(exp.InvCDF, 0.95, nil)
	if err != nil {
		t.Fatal(err)
	}
	if !aeq(0, lo) || !aeq(2.9957323, hi) {
		t.Errorf("want (0, 2.9957323), got (%v, %v)", lo, hi)
	}
}

func TestFindHDINested(t *testing.T) {
	// A wider mass strictly contains a narrower one.
	d := BetaDist{Alpha: 2, Beta: 5}
	lo1, hi1, err := FindHDI(d.InvCDF, 0.5, nil)
	if err != nil {
		t.Fatal(err)
	}
	lo2, hi2, err := FindHDI(d.InvCDF, 0.9, nil)
	if err != nil {
		t.Fatal(err)
	}
	if !(lo2 < lo1 && hi1 < hi2) {
		t.Errorf("want (%v, %v) strictly inside (%v, %v)", lo1, hi1, lo2, hi2)
	}
}

func TestFindHDIDeterministic(t *testing.T) {
	d := GammaDist{Alpha: 3, Beta: 2}
	lo1, hi1, err1 := FindHDI(d.InvCDF, 0.95, nil)
	lo2, hi2, err2 := FindHDI(d.InvCDF, 0.95, nil)
	if lo1 != lo2 || hi1 != hi2 || err1 != err2 {
		t.Errorf("identical calls differ: (%v, %v, %v) vs (%v, %v, %v)",
			lo1, hi1, err1, lo2, hi2, err2)
	}
}

func TestFindHDIInvalidWidth(t *testing.T) {
	for _, width := range []float64{0, 1, -0.1, 1.5, math.NaN()} {
		lo, hi, err := FindHDI(StdNormal.InvCDF, width, nil)
		if !errors.Is(err, ErrInvalidArgument) {
			t.Errorf("width %v: want ErrInvalidArgument, got %v", width, err)
		}
		if lo != 0 || hi != 0 {
			t.Errorf("width %v: failed call returned interval (%v, %v)", width, lo, hi)
		}
	}

	if _, _, err := FindHDI(nil, 0.95, nil); !errors.Is(err, ErrInvalidArgument) {
		t.Errorf("nil quantile function: want ErrInvalidArgument, got %v", err)
	}
}

func TestFindHDIConvergenceBudget(t *testing.T) {
	opts := &HDIOptions{MaxIter: 1}
	if _, _, err := FindHDI(StdNormal.InvCDF, 0.95, opts); !errors.Is(err, ErrConvergence) {
		t.Errorf("want ErrConvergence with MaxIter=1, got %v", err)
	}

	// A loose tolerance converges within the same budget.
	opts = &HDIOptions{MaxIter: 1, Tolerance: 0.04}
	if _, _, err := FindHDI(StdNormal.InvCDF, 0.95, opts); err != nil {
		t.Errorf("want convergence with loose tolerance, got %v", err)
	}
}
