// Copyright 2025 The credible Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package stats

import (
	"fmt"
	"math"
	"sort"
)

// An HDIRegion is one member of a highest density region set: a
// contiguous interval together with its local mode and the
// probability mass it holds.
type HDIRegion struct {
	// Mode is the value of peak estimated density within the
	// region.
	Mode float64

	// Lo and Hi are the region's bounds, Lo <= Hi.
	Lo, Hi float64

	// Mass is the estimated probability mass inside the region.
	// The masses of all regions returned together sum to
	// approximately the requested width.
	Mass float64
}

// HDIFromSamples estimates the highest density regions of the
// distribution underlying the sample xs: the set of disjoint
// intervals jointly containing probability mass width such that every
// point inside a region has estimated density at least as high as
// every point outside all of them. Regions are returned in ascending
// order of Lo.
//
// Unlike FindHDI, this does not assume unimodality: a multimodal
// sample yields one region per well-separated mode, and callers must
// handle a variable-length result. How readily nearby modes merge is
// governed by the bandwidth and grid size options.
//
// The estimate is built by evaluating a kernel density estimate of xs
// on a uniform grid, then accumulating grid cells in order of
// decreasing density until their mass reaches width. The selected
// cells' maximal contiguous runs are the regions.
//
// HDIFromSamples fails with ErrInsufficientData for samples of fewer
// than two values, ErrDegenerateDistribution for samples with no
// spread, and ErrInvalidArgument for a width outside (0, 1) or
// non-finite sample values. It is deterministic: identical inputs
// produce identical region sets.
func HDIFromSamples(xs []float64, width float64, opts *HDIOptions) ([]HDIRegion, error) {
	if math.IsNaN(width) || width <= 0 || width >= 1 {
		return nil, fmt.Errorf("%w: width %v is not in (0, 1)", ErrInvalidArgument, width)
	}
	if len(xs) < 2 {
		return nil, fmt.Errorf("%w: need at least 2 samples, got %d", ErrInsufficientData, len(xs))
	}
	for _, x := range xs {
		if math.IsNaN(x) || math.IsInf(x, 0) {
			return nil, fmt.Errorf("%w: non-finite sample value %v", ErrInvalidArgument, x)
		}
	}
	if opts.bandwidth() < 0 {
		return nil, fmt.Errorf("%w: negative bandwidth %v", ErrInvalidArgument, opts.bandwidth())
	}
	gridSize := opts.gridSize()
	if gridSize < 4 {
		return nil, fmt.Errorf("%w: grid size %d is too small", ErrInvalidArgument, gridSize)
	}

	s := Sample{Xs: xs}
	if low, high := s.Bounds(); low == high {
		return nil, fmt.Errorf("%w: sample has zero variance", ErrDegenerateDistribution)
	}
	h := opts.bandwidth()
	if h == 0 {
		if h = BandwidthScott(s); h <= 0 || math.IsNaN(h) {
			return nil, fmt.Errorf("%w: estimated bandwidth %v", ErrDegenerateDistribution, h)
		}
	}

	gx, gy := Grid(KDE{Bandwidth: h}.From(s), gridSize)

	// Cell i spans [gx[i], gx[i+1]]; its mass is its trapezoidal
	// integral. Normalize so the cells partition unit mass, since
	// the grid truncates the estimate's tails.
	dx := gx[1] - gx[0]
	masses := make([]float64, gridSize-1)
	var total float64
	for i := range masses {
		masses[i] = 0.5 * (gy[i] + gy[i+1]) * dx
		total += masses[i]
	}
	for i := range masses {
		masses[i] /= total
	}

	// Accumulate cells in decreasing order of density until they
	// hold the requested mass. Ties break toward the lower cell
	// index to keep the result deterministic.
	cellDensity := func(i int) float64 { return math.Max(gy[i], gy[i+1]) }
	order := make([]int, len(masses))
	for i := range order {
		order[i] = i
	}
	sort.Slice(order, func(a, b int) bool {
		da, db := cellDensity(order[a]), cellDensity(order[b])
		if da != db {
			return da > db
		}
		return order[a] < order[b]
	})
	selected := make([]bool, len(masses))
	var accum float64
	for _, i := range order {
		selected[i] = true
		if accum += masses[i]; accum >= width {
			break
		}
	}

	// The selected cells' maximal contiguous runs are the
	// regions.
	var regions []HDIRegion
	for i := 0; i < len(selected); {
		if !selected[i] {
			i++
			continue
		}
		j := i
		var mass float64
		for ; j < len(selected) && selected[j]; j++ {
			mass += masses[j]
		}
		peak := i
		for k := i + 1; k <= j; k++ {
			if gy[k] > gy[peak] {
				peak = k
			}
		}
		regions = append(regions, HDIRegion{
			Mode: gx[peak],
			Lo:   gx[i],
			Hi:   gx[j],
			Mass: mass,
		})
		i = j
	}
	return regions, nil
}
