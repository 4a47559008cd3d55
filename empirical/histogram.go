// Copyright 2026 The SMTools Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package empirical

import (
	"math"
	"sort"

	"github.com/smaerivo/smtools-sub002/mathtools"
)

// minAutoBins floors the automatically chosen bin count, keeping the
// histogram numerically stable when the IQR is tiny or N is small.
const minAutoBins = 10

// binConfig selects how the histogram partitions the sample range:
// explicit right edges, an explicit bin count, or (both zero) the
// Freedman-Diaconis rule.
type binConfig struct {
	count      int
	rightEdges []float64
}

type histogram struct {
	counts     []int
	freqs      []float64 // counts[i] / N
	centres    []float64 // -Inf sentinel for a left-open first bin
	rightEdges []float64

	// Finite-centre view used for density interpolation.
	pdfXs, pdfYs []float64
}

// RecalculatePDF rebuilds only the histogram with the given bin
// count, leaving moments and percentiles untouched. A non-positive
// count selects the Freedman-Diaconis rule.
func (d *Distribution) RecalculatePDF(bins int) {
	if d.N() == 0 {
		return
	}
	d.hist = buildHistogram(d, binConfig{count: bins})
}

// RecalculatePDFEdges rebuilds only the histogram over explicit,
// ascending bin right edges.
func (d *Distribution) RecalculatePDFEdges(rightEdges []float64) {
	if d.N() == 0 {
		return
	}
	d.hist = buildHistogram(d, binConfig{rightEdges: rightEdges})
}

// BinCount returns the number of histogram bins.
func (d *Distribution) BinCount() int { return len(d.hist.counts) }

// BinCounts returns a copy of the per-bin observation counts. They
// sum to N.
func (d *Distribution) BinCounts() []int {
	out := make([]int, len(d.hist.counts))
	copy(out, d.hist.counts)
	return out
}

// BinFrequencies returns a copy of the per-bin relative frequencies.
// They sum to 1.
func (d *Distribution) BinFrequencies() []float64 {
	out := make([]float64, len(d.hist.freqs))
	copy(out, d.hist.freqs)
	return out
}

// BinCentres returns a copy of the per-bin centres. With explicit
// right edges the first bin is left-open and its centre is -Inf.
func (d *Distribution) BinCentres() []float64 {
	out := make([]float64, len(d.hist.centres))
	copy(out, d.hist.centres)
	return out
}

// BinRightEdges returns a copy of the per-bin right edges.
func (d *Distribution) BinRightEdges() []float64 {
	out := make([]float64, len(d.hist.rightEdges))
	copy(out, d.hist.rightEdges)
	return out
}

// PDF evaluates the histogram density estimate at x by linear
// interpolation over the finite bin centres. Queries outside the
// observed sample range return 0, and interpolated densities are
// clamped to be non-negative.
func (d *Distribution) PDF(x float64) float64 {
	if d.N() == 0 || len(d.hist.pdfXs) == 0 {
		return 0
	}
	if x < d.Min() || x > d.Max() {
		return 0
	}
	return math.Max(0, mathtools.InterpBounds(d.hist.pdfXs, d.hist.pdfYs, x))
}

// freedmanDiaconisBins derives a bin count from the rule
// width = 2*IQR/N^(1/3), floored at minAutoBins.
func freedmanDiaconisBins(d *Distribution) int {
	width := 2 * d.IQR() / math.Cbrt(float64(d.N()))
	if width <= 0 {
		return minAutoBins
	}
	bins := int(math.Ceil(d.Range() / width))
	if bins < minAutoBins {
		return minAutoBins
	}
	return bins
}

func buildHistogram(d *Distribution, cfg binConfig) histogram {
	if len(cfg.rightEdges) > 0 {
		return buildEdgeHistogram(d, cfg.rightEdges)
	}

	min, max := d.Min(), d.Max()
	if d.Range() == 0 {
		// Degenerate sample: a single bin holding everything.
		h := histogram{
			counts:     []int{d.N()},
			freqs:      []float64{1},
			centres:    []float64{min},
			rightEdges: []float64{max},
		}
		h.pdfXs = []float64{min}
		h.pdfYs = []float64{0}
		return h
	}

	bins := cfg.count
	if bins <= 0 {
		bins = freedmanDiaconisBins(d)
	}
	width := d.Range() / float64(bins)

	h := histogram{
		counts:     make([]int, bins),
		freqs:      make([]float64, bins),
		centres:    make([]float64, bins),
		rightEdges: make([]float64, bins),
	}
	for i := 0; i < bins; i++ {
		h.rightEdges[i] = min + float64(i+1)*width
		h.centres[i] = min + (float64(i)+0.5)*width
	}
	// The last edge is exactly max, immune to rounding.
	h.rightEdges[bins-1] = max

	for _, v := range d.sorted {
		i := sort.SearchFloat64s(h.rightEdges, v)
		h.counts[mathtools.ClipInt(i, 0, bins-1)]++
	}
	for i, c := range h.counts {
		h.freqs[i] = float64(c) / float64(d.N())
	}

	h.pdfXs = h.centres
	h.pdfYs = make([]float64, bins)
	for i, f := range h.freqs {
		h.pdfYs[i] = f / width
	}
	return h
}

// buildEdgeHistogram bins the sample by explicit right edges. Bin i
// covers (edges[i-1], edges[i]]; the first bin is left-open, so its
// centre is the -Inf sentinel and its density support starts at the
// sample minimum.
func buildEdgeHistogram(d *Distribution, rightEdges []float64) histogram {
	bins := len(rightEdges)
	h := histogram{
		counts:     make([]int, bins),
		freqs:      make([]float64, bins),
		centres:    make([]float64, bins),
		rightEdges: make([]float64, bins),
	}
	copy(h.rightEdges, rightEdges)
	sort.Float64s(h.rightEdges)

	h.centres[0] = math.Inf(-1)
	for i := 1; i < bins; i++ {
		h.centres[i] = (h.rightEdges[i-1] + h.rightEdges[i]) / 2
	}

	for _, v := range d.sorted {
		i := sort.SearchFloat64s(h.rightEdges, v)
		h.counts[mathtools.ClipInt(i, 0, bins-1)]++
	}
	for i, c := range h.counts {
		h.freqs[i] = float64(c) / float64(d.N())
	}

	// Density interpolation skips the non-finite first-bin centre;
	// the left-open bin's width is measured from the sample minimum.
	for i := 0; i < bins; i++ {
		var left float64
		if i == 0 {
			left = math.Min(d.Min(), h.rightEdges[0])
		} else {
			left = h.rightEdges[i-1]
		}
		width := h.rightEdges[i] - left
		var density float64
		if width > 0 {
			density = h.freqs[i] / width
		}
		if !math.IsInf(h.centres[i], 0) {
			h.pdfXs = append(h.pdfXs, h.centres[i])
			h.pdfYs = append(h.pdfYs, density)
		}
	}
	return h
}
