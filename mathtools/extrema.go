// Copyright 2026 The SMTools Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package mathtools

// An Extremum is a local minimum or maximum of a sequence.
type Extremum struct {
	Index int
	Value float64
}

// Extrema collects the interior local minima and maxima of a
// sequence, each in left-to-right order.
type Extrema struct {
	Minima []Extremum
	Maxima []Extremum
}

// FindExtrema scans seq once from left to right and classifies
// interior points as local minima or maxima. Plateaus (runs of equal
// values) carry the last strict direction forward, so only a genuine
// direction reversal emits an extremum, attributed to the index where
// the reversed run began. Sequences shorter than 3 elements have no
// extrema, and endpoints are never extrema.
func FindExtrema(seq []float64) Extrema {
	var ext Extrema
	if len(seq) < 3 {
		return ext
	}
	dir := 0   // last strict direction: +1 rising, -1 falling
	pivot := 0 // index where the current candidate run began
	for i := 1; i < len(seq); i++ {
		switch {
		case seq[i] > seq[i-1]:
			if dir < 0 {
				ext.Minima = append(ext.Minima, Extremum{pivot, seq[pivot]})
			}
			dir, pivot = 1, i
		case seq[i] < seq[i-1]:
			if dir > 0 {
				ext.Maxima = append(ext.Maxima, Extremum{pivot, seq[pivot]})
			}
			dir, pivot = -1, i
		}
	}
	return ext
}
