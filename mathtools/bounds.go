// Copyright 2026 The SMTools Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package mathtools

// Bounds is an index pair bracketing a target value in a sorted
// array. Lower == Upper at the array edges and for exact hits on the
// last element; callers interpolating between the two indices must
// special-case that to avoid dividing by a zero-width interval.
type Bounds struct {
	Lower, Upper int
}

// SearchBounds returns the tightest index pair (lo, hi) in the
// ascending-sorted array such that sorted[lo] <= target < sorted[hi].
// Targets below the first element map to (0, 0) and targets at or
// above the last element map to (n-1, n-1). An empty array maps to
// (0, 0).
func SearchBounds(sorted []float64, target float64) Bounds {
	n := len(sorted)
	if n == 0 {
		return Bounds{}
	}
	if target < sorted[0] {
		return Bounds{0, 0}
	}
	if target >= sorted[n-1] {
		return Bounds{n - 1, n - 1}
	}
	for i := 1; i < n; i++ {
		if target < sorted[i] {
			return Bounds{i - 1, i}
		}
	}
	// Unreachable: target < sorted[n-1] guarantees the scan hits.
	return Bounds{n - 1, n - 1}
}

// InterpBounds looks up target in the sorted x array and linearly
// interpolates the aligned y array at the resulting bracket. Equal
// bounds (edges, zero-width brackets) return the y value at the
// bracket directly.
func InterpBounds(xs, ys []float64, target float64) float64 {
	if len(xs) == 0 || len(xs) != len(ys) {
		return 0
	}
	b := SearchBounds(xs, target)
	if b.Lower == b.Upper || xs[b.Upper] == xs[b.Lower] {
		return ys[b.Lower]
	}
	t := (target - xs[b.Lower]) / (xs[b.Upper] - xs[b.Lower])
	return Lerp(t, ys[b.Lower], ys[b.Upper])
}
