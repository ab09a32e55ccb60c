// Copyright 2025 The credible Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package stats computes highest density intervals of continuous
// probability distributions.
//
// A highest density interval (HDI) is the narrowest region containing
// a given probability mass; every point inside it has density at
// least as high as every point outside it. FindHDI locates the
// interval of a unimodal distribution given its quantile function.
// HDIFromSamples estimates the region set of an arbitrary, possibly
// multimodal distribution from a finite sample.
package stats // import "github.com/probstats/credible/stats"

import "math"

var inf = math.Inf(1)
