// Copyright 2025 The credible Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package stats

import "errors"

// Errors returned by FindHDI and HDIFromSamples. Failures are always
// reported through these; no routine in this package returns a
// partial or best-guess interval alongside an error. Callers match
// them with errors.Is.
var (
	// ErrInvalidArgument indicates a malformed input: a
	// probability mass outside (0, 1), or, on the sample-based
	// path, a sample containing non-finite values.
	ErrInvalidArgument = errors.New("invalid argument")

	// ErrConvergence indicates the interval search exhausted its
	// iteration budget before reaching the requested tolerance.
	ErrConvergence = errors.New("search failed to converge")

	// ErrInsufficientData indicates the sample is too small to
	// estimate a density from.
	ErrInsufficientData = errors.New("insufficient data")

	// ErrDegenerateDistribution indicates the sample has no
	// spread, so its density estimate would collapse to a point.
	ErrDegenerateDistribution = errors.New("degenerate distribution")
)
