// Copyright 2026 The SMTools Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package mathtools

// A FuncTable is an immutable sampled 1D function: two aligned
// sequences of x and y coordinates with x ascending. It is the
// exchange format for kernel-smoothed and density curves.
//
// A FuncTable owns its storage: the constructor copies its arguments
// and the accessors return copies, so no caller can alias the
// internal arrays.
type FuncTable struct {
	xs, ys []float64
}

// NewFuncTable constructs a FuncTable from aligned coordinate
// sequences. Mismatched lengths yield an empty table.
func NewFuncTable(xs, ys []float64) FuncTable {
	if len(xs) != len(ys) {
		return FuncTable{}
	}
	t := FuncTable{
		xs: make([]float64, len(xs)),
		ys: make([]float64, len(ys)),
	}
	copy(t.xs, xs)
	copy(t.ys, ys)
	return t
}

// Len returns the number of sample points.
func (t FuncTable) Len() int { return len(t.xs) }

// At returns the i'th (x, y) sample point.
func (t FuncTable) At(i int) (x, y float64) { return t.xs[i], t.ys[i] }

// Xs returns a copy of the x coordinates.
func (t FuncTable) Xs() []float64 {
	out := make([]float64, len(t.xs))
	copy(out, t.xs)
	return out
}

// Ys returns a copy of the y coordinates.
func (t FuncTable) Ys() []float64 {
	out := make([]float64, len(t.ys))
	copy(out, t.ys)
	return out
}

// Interp evaluates the piecewise-linear interpolant of the table at
// x. Queries outside the sampled range return the nearest endpoint's
// y value; an empty table returns 0.
func (t FuncTable) Interp(x float64) float64 {
	return InterpBounds(t.xs, t.ys, x)
}
