// Copyright 2026 The SMTools Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package empirical

import (
	"math"
	"testing"

	"gonum.org/v1/gonum/stat/distuv"
)

func TestChiSquareTableShape(t *testing.T) {
	if len(chiSquareTable) != len(chiSquareDFs) {
		t.Fatalf("table has %d rows for %d df breakpoints", len(chiSquareTable), len(chiSquareDFs))
	}
	for i, row := range chiSquareTable {
		if len(row) != len(chiSquareAlphas) {
			t.Fatalf("row %d has %d columns, want %d", i, len(row), len(chiSquareAlphas))
		}
		// Critical values grow as the tail shrinks left to right
		// within a row, and with df down a column.
		for j := 1; j < len(row); j++ {
			if row[j] <= row[j-1] {
				t.Errorf("row %d not increasing at column %d", i, j)
			}
		}
		if i > 0 && row[0] <= chiSquareTable[i-1][0] {
			t.Errorf("column 0 not increasing at row %d", i)
		}
	}
}

func TestChiSquareLookup(t *testing.T) {
	check := func(alpha float64, df int, want float64) {
		t.Helper()
		if got := ChiSquare(alpha, df); math.Abs(got-want) > 1e-9 {
			t.Errorf("ChiSquare(%v, %d) = %v, want %v", alpha, df, got, want)
		}
	}
	check(0.05, 2, 5.991)
	check(0.995, 1, 0.0000393)
	check(0.010, 30, 50.892)
	check(0.100, 40, 51.805)
	check(0.005, 100, 140.169)

	// df between decade breakpoints interpolates linearly.
	check(0.100, 35, (40.256+51.805)/2)
	check(0.050, 42, 55.758+0.2*(67.505-55.758))

	// df clips to [1, 100], alpha snaps to the nearest tabulated
	// level.
	check(0.05, 0, 3.841)
	check(0.05, -3, 3.841)
	check(0.05, 1000, 124.342)
	check(0.07, 2, 5.991)    // nearest is 0.05
	check(0.0001, 2, 10.597) // nearest is 0.005
}

// The tabulated values must agree with the chi-square quantile
// function.
func TestChiSquareAgainstDistuv(t *testing.T) {
	for i, df := range chiSquareDFs {
		dist := distuv.ChiSquared{K: float64(df)}
		for j, alpha := range chiSquareAlphas {
			want := dist.Quantile(1 - alpha)
			got := chiSquareTable[i][j]
			if math.Abs(got-want) > 0.005*math.Max(1, want) {
				t.Errorf("table[df=%d][alpha=%v] = %v, distuv says %v", df, alpha, got, want)
			}
		}
	}
}
