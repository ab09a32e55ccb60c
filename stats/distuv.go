// Copyright 2025 The credible Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package stats

import "gonum.org/v1/gonum/stat/distuv"

// The named distribution families below adapt gonum's analytic
// distributions to the Dist interface. Construct them as struct
// literals; the zero value is not meaningful (a scale of 0 is not a
// distribution).

// NormalDist is a normal (Gaussian) distribution with mean Mu and
// standard deviation Sigma.
type NormalDist struct {
	Mu, Sigma float64
}

// StdNormal is the standard normal distribution (Mu = 0, Sigma = 1).
var StdNormal = NormalDist{0, 1}

func (d NormalDist) dist() distuv.Normal { return distuv.Normal{Mu: d.Mu, Sigma: d.Sigma} }

func (d NormalDist) PDF(x float64) float64    { return d.dist().Prob(x) }
func (d NormalDist) CDF(x float64) float64    { return d.dist().CDF(x) }
func (d NormalDist) InvCDF(p float64) float64 { return d.dist().Quantile(p) }

func (d NormalDist) Bounds() (float64, float64) {
	const stddevs = 4
	return d.Mu - stddevs*d.Sigma, d.Mu + stddevs*d.Sigma
}

// BetaDist is a beta distribution with shape parameters Alpha and
// Beta, supported on (0, 1).
type BetaDist struct {
	Alpha, Beta float64
}

func (d BetaDist) dist() distuv.Beta { return distuv.Beta{Alpha: d.Alpha, Beta: d.Beta} }

func (d BetaDist) PDF(x float64) float64      { return d.dist().Prob(x) }
func (d BetaDist) CDF(x float64) float64      { return d.dist().CDF(x) }
func (d BetaDist) InvCDF(p float64) float64   { return d.dist().Quantile(p) }
func (d BetaDist) Bounds() (float64, float64) { return 0, 1 }

// StudentsTDist is a location-scale Student's t-distribution with
// location Mu, scale Sigma, and Nu degrees of freedom.
type StudentsTDist struct {
	Mu, Sigma, Nu float64
}

func (d StudentsTDist) dist() distuv.StudentsT {
	return distuv.StudentsT{Mu: d.Mu, Sigma: d.Sigma, Nu: d.Nu}
}

func (d StudentsTDist) PDF(x float64) float64    { return d.dist().Prob(x) }
func (d StudentsTDist) CDF(x float64) float64    { return d.dist().CDF(x) }
func (d StudentsTDist) InvCDF(p float64) float64 { return d.dist().Quantile(p) }

// Bounds uses extreme quantiles rather than a stddev multiple since
// low-Nu t-distributions are heavy tailed.
func (d StudentsTDist) Bounds() (float64, float64) {
	return d.InvCDF(0.0005), d.InvCDF(0.9995)
}

// GammaDist is a gamma distribution with shape Alpha and rate Beta,
// supported on (0, inf).
type GammaDist struct {
	Alpha, Beta float64
}

func (d GammaDist) dist() distuv.Gamma { return distuv.Gamma{Alpha: d.Alpha, Beta: d.Beta} }

func (d GammaDist) PDF(x float64) float64    { return d.dist().Prob(x) }
func (d GammaDist) CDF(x float64) float64    { return d.dist().CDF(x) }
func (d GammaDist) InvCDF(p float64) float64 { return d.dist().Quantile(p) }

func (d GammaDist) Bounds() (float64, float64) {
	return 0, d.InvCDF(0.9995)
}
