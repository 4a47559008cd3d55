// Copyright 2026 The SMTools Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package empirical computes descriptive statistics over a fixed,
// in-memory sample: order statistics, the empirical CDF, percentiles,
// histogram and kernel density estimates of the PDF, and
// moment-based statistics with normality testing.
//
// A Distribution is analysed eagerly on construction and fully
// recomputed on every data change; there is no incremental update.
// Degenerate inputs never panic: an empty sample yields a cleared
// instance whose accessors all return zero sentinels, and statistics
// that are undefined for small samples report NaN and record a
// warning, in the style of analysis warnings elsewhere in this
// module: captured as an []error value to surface to the user, not
// errors that abort analysis.
//
// A Distribution is not safe for concurrent use. Pipelines fanning
// work out over goroutines should construct one instance per unit of
// work.
package empirical

import (
	"math"
	"sort"

	"gonum.org/v1/gonum/floats"

	"github.com/smaerivo/smtools-sub002/mathtools"
)

// percentileSteps is the resolution of the precomputed percentile
// table: ranks 0.0 through 100.0 in steps of 0.1.
const percentileSteps = 1001

// A Distribution holds one analysed sample and all statistics
// derived from it.
type Distribution struct {
	values []float64 // private copy, original order
	sorted []float64 // private copy, ascending
	cdf    []float64 // aligned to sorted

	percentiles []float64 // percentileSteps entries

	moments moments
	hist    histogram
	kde     kdeEstimate

	warnings []error
}

// New constructs a Distribution from values, choosing the histogram
// bin width by the Freedman-Diaconis rule. A nil or empty sample
// yields a cleared instance with N() == 0.
func New(values []float64) *Distribution {
	d := new(Distribution)
	d.SetData(values)
	return d
}

// NewWithBinCount is New with an explicit histogram bin count.
func NewWithBinCount(values []float64, bins int) *Distribution {
	d := new(Distribution)
	d.SetDataWithBinCount(values, bins)
	return d
}

// NewWithBinEdges is New with explicit, ascending histogram bin
// right edges (variable-width bins). The first bin is left-open and
// its centre is reported as -Inf.
func NewWithBinEdges(values, rightEdges []float64) *Distribution {
	d := new(Distribution)
	d.SetDataWithBinEdges(values, rightEdges)
	return d
}

// SetData replaces the sample and recomputes every derived
// statistic. The input is copied; later mutation of the caller's
// slice does not affect the Distribution. A nil or empty sample
// clears the instance.
func (d *Distribution) SetData(values []float64) {
	d.setData(values, binConfig{})
}

// SetDataWithBinCount is SetData with an explicit histogram bin
// count. A non-positive count falls back to the Freedman-Diaconis
// rule.
func (d *Distribution) SetDataWithBinCount(values []float64, bins int) {
	d.setData(values, binConfig{count: bins})
}

// SetDataWithBinEdges is SetData with explicit histogram bin right
// edges.
func (d *Distribution) SetDataWithBinEdges(values, rightEdges []float64) {
	d.setData(values, binConfig{rightEdges: rightEdges})
}

func (d *Distribution) setData(values []float64, cfg binConfig) {
	d.clear()
	if len(values) == 0 {
		return
	}
	d.values = make([]float64, len(values))
	copy(d.values, values)
	d.sorted = make([]float64, len(values))
	copy(d.sorted, values)
	sort.Float64s(d.sorted)

	d.computeCDF()
	d.computePercentiles()
	d.computeMoments()
	d.hist = buildHistogram(d, cfg)
}

func (d *Distribution) clear() {
	*d = Distribution{}
}

// computeCDF fills the cumulative probability array aligned to the
// sorted sample. The product-limit (Kaplan-Meier) estimator with no
// censoring reduces to the plain ECDF with CDF[0] = 0 and
// CDF[N-1] = 1. Lookups always go through the sorted order; see
// CDF.
func (d *Distribution) computeCDF() {
	n := len(d.sorted)
	d.cdf = make([]float64, n)
	if n == 1 {
		d.cdf[0] = 1
		return
	}
	for i := range d.cdf {
		d.cdf[i] = float64(i) / float64(n-1)
	}
}

// computePercentiles fills the 1001-entry percentile table using
// linear rank interpolation over the sorted sample (the Hyndman-Fan
// R-7 convention: rank = p/100*(N-1)).
func (d *Distribution) computePercentiles() {
	n := len(d.sorted)
	d.percentiles = make([]float64, percentileSteps)
	for i := range d.percentiles {
		p := float64(i) / 10 // percentile rank, 0.0 .. 100.0
		h := p / 100 * float64(n-1)
		lo := int(math.Floor(h))
		if lo >= n-1 {
			d.percentiles[i] = d.sorted[n-1]
			continue
		}
		d.percentiles[i] = mathtools.Lerp(h-float64(lo), d.sorted[lo], d.sorted[lo+1])
	}
}

// N returns the sample size. A cleared instance has N() == 0 and
// every other accessor returns a zero sentinel.
func (d *Distribution) N() int { return len(d.values) }

// Values returns a copy of the sample in its original order.
func (d *Distribution) Values() []float64 {
	out := make([]float64, len(d.values))
	copy(out, d.values)
	return out
}

// Sorted returns a copy of the sample sorted ascending.
func (d *Distribution) Sorted() []float64 {
	out := make([]float64, len(d.sorted))
	copy(out, d.sorted)
	return out
}

// Min returns the sample minimum.
func (d *Distribution) Min() float64 {
	if len(d.sorted) == 0 {
		return 0
	}
	return d.sorted[0]
}

// Max returns the sample maximum.
func (d *Distribution) Max() float64 {
	if len(d.sorted) == 0 {
		return 0
	}
	return d.sorted[len(d.sorted)-1]
}

// Range returns Max() - Min().
func (d *Distribution) Range() float64 { return d.Max() - d.Min() }

// Sum returns the sum of the sample values.
func (d *Distribution) Sum() float64 { return floats.Sum(d.values) }

// Percentile returns the precomputed percentile at rank p, where p
// is in [0, 100] with 0.1 resolution. Out-of-range ranks are
// clamped, and ranks between table entries snap to the nearest
// entry.
func (d *Distribution) Percentile(p float64) float64 {
	if len(d.percentiles) == 0 {
		return 0
	}
	p = mathtools.Clip(p, 0, 100)
	i := mathtools.ClipInt(int(math.Round(p*10)), 0, percentileSteps-1)
	return d.percentiles[i]
}

// Median returns the 50th percentile.
func (d *Distribution) Median() float64 { return d.Percentile(50) }

// IQR returns the interquartile range, Percentile(75) -
// Percentile(25).
func (d *Distribution) IQR() float64 {
	return d.Percentile(75) - d.Percentile(25)
}

// CDF evaluates the empirical cumulative distribution function at an
// arbitrary x by bracketing x in the sorted sample and linearly
// interpolating the stored cumulative probabilities. Queries below
// the sample minimum return 0 and queries at or above the maximum
// return 1.
func (d *Distribution) CDF(x float64) float64 {
	if len(d.sorted) == 0 {
		return 0
	}
	if x < d.sorted[0] {
		return 0
	}
	return mathtools.InterpBounds(d.sorted, d.cdf, x)
}

// Warnings returns diagnostics about statistics that are undefined
// or unreliable for this sample (zero variance, N too small for a
// bias correction). They should be reported to the user alongside
// results; they do not prevent analysis.
func (d *Distribution) Warnings() []error { return d.warnings }
