// Copyright 2026 The SMTools Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package compare

import (
	"fmt"
	"math"
	"sort"
)

// ksSeriesTerms bounds the alternating series for the Kolmogorov
// distribution's tail probability.
const ksSeriesTerms = 100

// KolmogorovSmirnov computes the independent two-sample
// Kolmogorov-Smirnov statistic D and its asymptotic two-sided
// p-value for the null hypothesis that x and y are drawn from the
// same continuous distribution. The samples need not be paired or of
// equal length, but must both be non-empty.
//
// Both empirical CDFs are evaluated over the merged set of sample
// values, D is their supremum absolute difference, and the p-value
// follows the Kolmogorov distribution's series approximation with
// the effective size n1*n2/(n1+n2).
func KolmogorovSmirnov(x, y []float64) (d, p float64, err error) {
	n1, n2 := len(x), len(y)
	if n1 == 0 || n2 == 0 {
		return 0, 0, fmt.Errorf("compare: Kolmogorov-Smirnov needs two non-empty samples")
	}

	sx := make([]float64, n1)
	copy(sx, x)
	sort.Float64s(sx)
	sy := make([]float64, n2)
	copy(sy, y)
	sort.Float64s(sy)

	// Shared partition: every value observed in either sample.
	merged := make([]float64, 0, n1+n2)
	merged = append(merged, sx...)
	merged = append(merged, sy...)

	for _, v := range merged {
		// Right-continuous ECDF: fraction of the sample <= v.
		c1 := float64(sort.SearchFloat64s(sx, math.Nextafter(v, math.Inf(1)))) / float64(n1)
		c2 := float64(sort.SearchFloat64s(sy, math.Nextafter(v, math.Inf(1)))) / float64(n2)
		if diff := math.Abs(c1 - c2); diff > d {
			d = diff
		}
	}

	nEff := float64(n1) * float64(n2) / float64(n1+n2)
	sqrtN := math.Sqrt(nEff)
	lambda := (sqrtN + 0.12 + 0.11/sqrtN) * d
	return d, ksProbability(lambda), nil
}

// KolmogorovSmirnovTest reports whether the equal-distribution null
// hypothesis survives at significance level alpha: true when the
// p-value is at least alpha (fail to reject). Invalid input (an
// empty sample) rejects.
func KolmogorovSmirnovTest(x, y []float64, alpha float64) bool {
	_, p, err := KolmogorovSmirnov(x, y)
	if err != nil {
		return false
	}
	return p >= alpha
}

// ksProbability evaluates the Kolmogorov distribution's two-sided
// tail probability 2*Σ (-1)^(j-1) e^(-2λ²j²), clamped to [0, 1].
func ksProbability(lambda float64) float64 {
	if lambda < 1e-9 {
		return 1
	}
	a := -2 * lambda * lambda
	sum, sign := 0.0, 1.0
	for j := 1; j <= ksSeriesTerms; j++ {
		term := sign * math.Exp(a*float64(j)*float64(j))
		sum += term
		if math.Abs(term) < 1e-12*math.Abs(sum) {
			break
		}
		sign = -sign
	}
	p := 2 * sum
	if p < 0 {
		return 0
	}
	if p > 1 {
		return 1
	}
	return p
}
