// Copyright 2026 The SMTools Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package mathtools

import (
	"reflect"
	"testing"
)

func TestFindExtrema(t *testing.T) {
	check := func(seq []float64, minima, maxima []Extremum) {
		t.Helper()
		got := FindExtrema(seq)
		if !reflect.DeepEqual(got.Minima, minima) {
			t.Errorf("FindExtrema(%v).Minima = %v, want %v", seq, got.Minima, minima)
		}
		if !reflect.DeepEqual(got.Maxima, maxima) {
			t.Errorf("FindExtrema(%v).Maxima = %v, want %v", seq, got.Maxima, maxima)
		}
	}

	// Alternating sequence: maxima at 3 and 4, minimum at 2.
	check([]float64{1, 3, 2, 4, 1},
		[]Extremum{{2, 2}},
		[]Extremum{{1, 3}, {3, 4}})

	// Monotone sequences have no interior extrema.
	check([]float64{1, 2, 3, 4}, nil, nil)
	check([]float64{4, 3, 2, 1}, nil, nil)
	check([]float64{2, 2, 2, 2}, nil, nil)

	// Too short.
	check(nil, nil, nil)
	check([]float64{1}, nil, nil)
	check([]float64{1, 2}, nil, nil)

	// Single peak and single valley.
	check([]float64{1, 5, 1}, nil, []Extremum{{1, 5}})
	check([]float64{5, 1, 5}, []Extremum{{1, 1}}, nil)
}

func TestFindExtremaPlateaus(t *testing.T) {
	check := func(seq []float64, minima, maxima []Extremum) {
		t.Helper()
		got := FindExtrema(seq)
		if !reflect.DeepEqual(got.Minima, minima) {
			t.Errorf("FindExtrema(%v).Minima = %v, want %v", seq, got.Minima, minima)
		}
		if !reflect.DeepEqual(got.Maxima, maxima) {
			t.Errorf("FindExtrema(%v).Maxima = %v, want %v", seq, got.Maxima, maxima)
		}
	}

	// A plateau crossed in the same direction is not an extremum.
	check([]float64{1, 2, 2, 3}, nil, nil)
	check([]float64{3, 2, 2, 1}, nil, nil)

	// A plateau at a genuine reversal is one extremum, at the index
	// where the run began.
	check([]float64{1, 2, 2, 1}, nil, []Extremum{{1, 2}})
	check([]float64{2, 1, 1, 2}, []Extremum{{1, 1}}, nil)
	check([]float64{1, 3, 3, 3, 0, 2}, []Extremum{{4, 0}}, []Extremum{{1, 3}})

	// Leading and trailing plateaus emit nothing.
	check([]float64{2, 2, 1, 2}, []Extremum{{2, 1}}, nil)
	check([]float64{1, 2, 1, 1}, nil, []Extremum{{1, 2}})
}
