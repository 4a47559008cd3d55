// Copyright 2026 The SMTools Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package empirical

import (
	"math"

	"github.com/aclements/go-moremath/vec"

	"github.com/smaerivo/smtools-sub002/mathtools"
)

// A Mode is a local maximum of a kernel density estimate.
type Mode struct {
	X       float64
	Density float64
}

type kdeEstimate struct {
	curve mathtools.FuncTable
	modes []Mode
}

// KDEBandwidth returns Silverman's rule-of-thumb bandwidth for the
// given kernel: C(kernel) * stdDev * N^(-1/5). It is 0 for an empty
// or zero-variance sample, in which case the caller must choose a
// bandwidth explicitly.
func (d *Distribution) KDEBandwidth(kernel mathtools.Kernel) float64 {
	if d.N() == 0 {
		return 0
	}
	return kernel.SilvermanFactor() * d.StdDev() * math.Pow(float64(d.N()), -0.2)
}

// EstimateKDEPDF computes a kernel density estimate of the sample
// over supportPoints equally spaced abscissae in [min, max] and
// derives the density's modes (local maxima). A non-positive
// bandwidth selects Silverman's rule via KDEBandwidth. The estimate
// is retained for KDEPDF lookups and returned.
//
// An empty sample, a degenerate support, or a bandwidth that cannot
// be determined yields an empty curve.
func (d *Distribution) EstimateKDEPDF(kernel mathtools.Kernel, bandwidth float64, supportPoints int, min, max float64) mathtools.FuncTable {
	d.kde = kdeEstimate{}
	if d.N() == 0 || supportPoints < 2 || max <= min {
		return d.kde.curve
	}
	if bandwidth <= 0 {
		bandwidth = d.KDEBandwidth(kernel)
	}
	if bandwidth <= 0 {
		d.warn("KDE bandwidth indeterminate (zero-variance sample); supply one explicitly")
		return d.kde.curve
	}

	xs := vec.Linspace(min, max, supportPoints)
	ys := make([]float64, supportPoints)
	norm := 1 / (float64(d.N()) * bandwidth)
	for i, x := range xs {
		sum := 0.0
		for _, xi := range d.sorted {
			sum += kernel.Eval((x - xi) / bandwidth)
		}
		ys[i] = sum * norm
	}
	d.kde.curve = mathtools.NewFuncTable(xs, ys)

	for _, e := range mathtools.FindExtrema(ys).Maxima {
		d.kde.modes = append(d.kde.modes, Mode{X: xs[e.Index], Density: e.Value})
	}
	return d.kde.curve
}

// KDECurve returns the most recently estimated density curve, empty
// if EstimateKDEPDF has not run since the last data change.
func (d *Distribution) KDECurve() mathtools.FuncTable { return d.kde.curve }

// KDEModes returns the local maxima of the most recently estimated
// density curve, left to right.
func (d *Distribution) KDEModes() []Mode {
	out := make([]Mode, len(d.kde.modes))
	copy(out, d.kde.modes)
	return out
}

// KDEPDF evaluates the most recently estimated density curve at x by
// linear interpolation. Queries outside the observed sample range
// return 0 and interpolated densities are clamped to be
// non-negative.
func (d *Distribution) KDEPDF(x float64) float64 {
	if d.N() == 0 || d.kde.curve.Len() == 0 {
		return 0
	}
	if x < d.Min() || x > d.Max() {
		return 0
	}
	return math.Max(0, d.kde.curve.Interp(x))
}
