// Copyright 2026 The SMTools Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package compare

import (
	"math"
	"math/rand"
	"testing"
)

func TestKolmogorovSmirnovIdentical(t *testing.T) {
	x := []float64{3, 1, 4, 1, 5, 9, 2, 6}
	d, p, err := KolmogorovSmirnov(x, x)
	if err != nil {
		t.Fatal(err)
	}
	if d != 0 {
		t.Errorf("D = %v, want 0", d)
	}
	if p != 1 {
		t.Errorf("p = %v, want 1", p)
	}
	for _, alpha := range []float64{0.005, 0.05, 0.5, 0.995} {
		if !KolmogorovSmirnovTest(x, x, alpha) {
			t.Errorf("identical samples rejected at alpha %v", alpha)
		}
	}
}

func TestKolmogorovSmirnovDisjoint(t *testing.T) {
	// Totally separated samples: D = 1, p ~ 0.
	x := []float64{1, 2, 3, 4, 5, 6, 7, 8, 9, 10}
	y := []float64{101, 102, 103, 104, 105, 106, 107, 108, 109, 110}
	d, p, err := KolmogorovSmirnov(x, y)
	if err != nil {
		t.Fatal(err)
	}
	if d != 1 {
		t.Errorf("D = %v, want 1", d)
	}
	if p > 0.001 {
		t.Errorf("p = %v, want ~0", p)
	}
	if KolmogorovSmirnovTest(x, y, 0.05) {
		t.Errorf("disjoint samples accepted at alpha 0.05")
	}
}

func TestKolmogorovSmirnovStatistic(t *testing.T) {
	// X = {1,2,3,4}, Y = {3,4,5,6}: the ECDFs differ most at value
	// 2, where F1 = 0.5 and F2 = 0.
	x := []float64{1, 2, 3, 4}
	y := []float64{3, 4, 5, 6}
	d, _, err := KolmogorovSmirnov(x, y)
	if err != nil {
		t.Fatal(err)
	}
	if math.Abs(d-0.5) > 1e-12 {
		t.Errorf("D = %v, want 0.5", d)
	}

	// The statistic is symmetric in its arguments, and unaffected by
	// input order.
	d2, _, _ := KolmogorovSmirnov(y, x)
	if d2 != d {
		t.Errorf("D(y, x) = %v, D(x, y) = %v", d2, d)
	}
	shuffled := []float64{4, 1, 3, 2}
	d3, _, _ := KolmogorovSmirnov(shuffled, y)
	if d3 != d {
		t.Errorf("D over shuffled input = %v, want %v", d3, d)
	}
}

func TestKolmogorovSmirnovSameDistribution(t *testing.T) {
	// Two large draws from the same distribution should not be
	// rejected at a tight alpha.
	rng := rand.New(rand.NewSource(7))
	x := make([]float64, 400)
	y := make([]float64, 300)
	for i := range x {
		x[i] = rng.NormFloat64()
	}
	for i := range y {
		y[i] = rng.NormFloat64()
	}
	if !KolmogorovSmirnovTest(x, y, 0.005) {
		t.Errorf("same-distribution samples rejected at alpha 0.005")
	}
}

func TestKolmogorovSmirnovErrors(t *testing.T) {
	if _, _, err := KolmogorovSmirnov(nil, []float64{1}); err == nil {
		t.Errorf("empty x accepted")
	}
	if _, _, err := KolmogorovSmirnov([]float64{1}, nil); err == nil {
		t.Errorf("empty y accepted")
	}
	if KolmogorovSmirnovTest(nil, nil, 0.05) {
		t.Errorf("empty input passed the test")
	}
}

func TestKSProbabilityBounds(t *testing.T) {
	for _, lambda := range []float64{0, 1e-12, 0.3, 0.5, 1, 2, 5} {
		p := ksProbability(lambda)
		if p < 0 || p > 1 {
			t.Errorf("ksProbability(%v) = %v, out of [0, 1]", lambda, p)
		}
	}
	// The tail probability decreases in lambda.
	prev := 1.0
	for lambda := 0.4; lambda < 3; lambda += 0.1 {
		p := ksProbability(lambda)
		if p > prev {
			t.Errorf("ksProbability not decreasing at %v", lambda)
		}
		prev = p
	}
	// Known value: lambda = 1 gives ~0.27.
	if p := ksProbability(1); math.Abs(p-0.27) > 0.01 {
		t.Errorf("ksProbability(1) = %v, want ~0.27", p)
	}
}
