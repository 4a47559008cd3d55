// Copyright 2026 The SMTools Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package empirical

import (
	"fmt"
	"math"

	"github.com/aclements/go-moremath/mathx"
)

// outlierZ is the |z-score| beyond which an observation is flagged
// as an outlier.
const outlierZ = 3

// zCrit5Pct is the two-tailed normal critical value at the 5%
// significance level, used by the interpretation helpers.
const zCrit5Pct = 1.959963984540054

type moments struct {
	mean     float64
	variance float64 // unbiased (N-1), 0 for N < 2
	stdDev   float64

	skewness float64 // bias-corrected (Fisher-Pearson G1), NaN for N < 3
	skewSE   float64
	skewZ    float64

	kurtosis float64 // bias-corrected excess kurtosis (G2), NaN for N < 4
	kurtSE   float64
	kurtZ    float64

	zScores  []float64 // original sample order
	outliers []bool
}

// computeMoments derives mean, unbiased variance, bias-corrected
// skewness and excess kurtosis with their standard errors and
// z-statistics, and per-observation z-scores. Statistics that are
// undefined for this sample size or for zero variance are set to
// NaN (or 0 for the variance family) and recorded in d.warnings.
func (d *Distribution) computeMoments() {
	n := len(d.values)
	fn := float64(n)
	m := &d.moments

	m.mean = d.Sum() / fn

	m2, m3, m4 := 0.0, 0.0, 0.0 // central moments (biased, /N)
	ss := 0.0                   // sum of squared deviations
	for _, v := range d.values {
		dev := v - m.mean
		dev2 := dev * dev
		ss += dev2
		m2 += dev2
		m3 += dev2 * dev
		m4 += dev2 * dev2
	}
	m2 /= fn
	m3 /= fn
	m4 /= fn

	if n > 1 {
		m.variance = ss / (fn - 1)
		m.stdDev = math.Sqrt(m.variance)
	} else {
		d.warn("variance undefined for N = %d; need N >= 2", n)
	}

	m.zScores = make([]float64, n)
	m.outliers = make([]bool, n)
	if m.stdDev > 0 {
		for i, v := range d.values {
			z := (v - m.mean) / m.stdDev
			m.zScores[i] = z
			m.outliers[i] = math.Abs(z) > outlierZ
		}
	}

	if m2 == 0 && n > 1 {
		d.warn("sample has zero variance; skewness and kurtosis undefined")
	}

	// Fisher-Pearson standardized third moment with the
	// √(n(n-1))/(n-2) small-sample adjustment.
	if n > 2 && m2 > 0 {
		g1 := m3 / math.Pow(m2, 1.5)
		m.skewness = g1 * math.Sqrt(fn*(fn-1)) / (fn - 2)
		m.skewSE = math.Sqrt(6 * fn * (fn - 1) / ((fn - 2) * (fn + 1) * (fn + 3)))
		m.skewZ = m.skewness / m.skewSE
	} else {
		m.skewness = math.NaN()
		m.skewSE = math.NaN()
		m.skewZ = math.NaN()
		if n <= 2 {
			d.warn("skewness undefined for N = %d; need N >= 3", n)
		}
	}

	// Analogous fourth-moment correction for excess kurtosis.
	if n > 3 && m2 > 0 {
		g2 := m4/(m2*m2) - 3
		m.kurtosis = ((fn+1)*g2 + 6) * (fn - 1) / ((fn - 2) * (fn - 3))
		m.kurtSE = 2 * m.skewSE * math.Sqrt((fn*fn-1)/((fn-3)*(fn+5)))
		m.kurtZ = m.kurtosis / m.kurtSE
	} else {
		m.kurtosis = math.NaN()
		m.kurtSE = math.NaN()
		m.kurtZ = math.NaN()
		if n <= 3 {
			d.warn("kurtosis undefined for N = %d; need N >= 4", n)
		}
	}
}

func (d *Distribution) warn(format string, args ...interface{}) {
	d.warnings = append(d.warnings, fmt.Errorf(format, args...))
}

// Mean returns the arithmetic mean of the sample.
func (d *Distribution) Mean() float64 { return d.moments.mean }

// Variance returns the unbiased (N-1 denominator) sample variance,
// or 0 for N < 2.
func (d *Distribution) Variance() float64 { return d.moments.variance }

// StdDev returns the unbiased sample standard deviation.
func (d *Distribution) StdDev() float64 { return d.moments.stdDev }

// Skewness returns the bias-corrected sample skewness. It is NaN
// for N < 3 or a zero-variance sample; see Warnings.
func (d *Distribution) Skewness() float64 { return d.moments.skewness }

// SkewnessStdError returns the standard error of Skewness.
func (d *Distribution) SkewnessStdError() float64 { return d.moments.skewSE }

// SkewnessZ returns Skewness divided by its standard error.
func (d *Distribution) SkewnessZ() float64 { return d.moments.skewZ }

// Kurtosis returns the bias-corrected sample excess kurtosis (0 for
// a normal distribution). It is NaN for N < 4 or a zero-variance
// sample; see Warnings.
func (d *Distribution) Kurtosis() float64 { return d.moments.kurtosis }

// KurtosisStdError returns the standard error of Kurtosis.
func (d *Distribution) KurtosisStdError() float64 { return d.moments.kurtSE }

// KurtosisZ returns Kurtosis divided by its standard error.
func (d *Distribution) KurtosisZ() float64 { return d.moments.kurtZ }

// ZScores returns a copy of the per-observation z-scores in the
// original sample order. All zeros for a zero-variance sample.
func (d *Distribution) ZScores() []float64 {
	out := make([]float64, len(d.moments.zScores))
	copy(out, d.moments.zScores)
	return out
}

// Outliers returns a copy of the per-observation outlier flags
// (|z| > 3) in the original sample order.
func (d *Distribution) Outliers() []bool {
	out := make([]bool, len(d.moments.outliers))
	copy(out, d.moments.outliers)
	return out
}

// JarqueBera returns the Jarque-Bera goodness-of-fit statistic
// N*(S²/6 + K²/24) over the bias-corrected skewness S and excess
// kurtosis K. It is NaN whenever either moment is undefined.
func (d *Distribution) JarqueBera() float64 {
	m := &d.moments
	s, k := m.skewness, m.kurtosis
	return float64(len(d.values)) * (s*s/6 + k*k/24)
}

// JarqueBeraAccepted reports whether the sample passes the
// Jarque-Bera normality test at significance level alpha: the
// statistic is compared against the chi-square critical value with
// 2 degrees of freedom. An undefined statistic is never accepted.
func (d *Distribution) JarqueBeraAccepted(alpha float64) bool {
	jb := d.JarqueBera()
	if math.IsNaN(jb) {
		return false
	}
	return jb <= ChiSquare(alpha, 2)
}

// A Labeler resolves a symbolic interpretation key to a
// human-readable label. It decouples the engine from whatever
// string-resource or locale machinery the application uses.
type Labeler func(key string) string

// Interpretation keys passed to a Labeler.
const (
	LabelSkewnessUndefined     = "skewness.undefined"
	LabelSkewnessSymmetric     = "skewness.symmetric"
	LabelSkewnessModerateLeft  = "skewness.moderate.left"
	LabelSkewnessModerateRight = "skewness.moderate.right"
	LabelSkewnessHighLeft      = "skewness.high.left"
	LabelSkewnessHighRight     = "skewness.high.right"
	LabelKurtosisUndefined     = "kurtosis.undefined"
	LabelKurtosisMeso          = "kurtosis.mesokurtic"
	LabelKurtosisLepto         = "kurtosis.leptokurtic"
	LabelKurtosisPlaty         = "kurtosis.platykurtic"
)

var defaultLabels = map[string]string{
	LabelSkewnessUndefined:     "skewness undefined",
	LabelSkewnessSymmetric:     "approximately symmetric",
	LabelSkewnessModerateLeft:  "moderate left tail",
	LabelSkewnessModerateRight: "moderate right tail",
	LabelSkewnessHighLeft:      "high left tail",
	LabelSkewnessHighRight:     "high right tail",
	LabelKurtosisUndefined:     "kurtosis undefined",
	LabelKurtosisMeso:          "mesokurtic (normal-tailed)",
	LabelKurtosisLepto:         "leptokurtic (heavy-tailed)",
	LabelKurtosisPlaty:         "platykurtic (light-tailed)",
}

// DefaultLabeler resolves interpretation keys to plain English.
func DefaultLabeler(key string) string {
	if s, ok := defaultLabels[key]; ok {
		return s
	}
	return key
}

// SkewnessInterpretation classifies the sample's asymmetry. A
// z-statistic within the 5% two-tailed critical band reads as
// symmetric; beyond it, the magnitude of the corrected skewness
// decides moderate versus high and its sign decides the tail side.
func (d *Distribution) SkewnessInterpretation(l Labeler) string {
	if l == nil {
		l = DefaultLabeler
	}
	m := &d.moments
	if math.IsNaN(m.skewness) {
		return l(LabelSkewnessUndefined)
	}
	if math.Abs(m.skewZ) <= zCrit5Pct {
		return l(LabelSkewnessSymmetric)
	}
	left := mathx.Sign(m.skewness) < 0
	if math.Abs(m.skewness) < 1 {
		if left {
			return l(LabelSkewnessModerateLeft)
		}
		return l(LabelSkewnessModerateRight)
	}
	if left {
		return l(LabelSkewnessHighLeft)
	}
	return l(LabelSkewnessHighRight)
}

// KurtosisInterpretation classifies the sample's tail weight
// relative to the normal distribution using the kurtosis
// z-statistic at the 5% level.
func (d *Distribution) KurtosisInterpretation(l Labeler) string {
	if l == nil {
		l = DefaultLabeler
	}
	m := &d.moments
	if math.IsNaN(m.kurtosis) {
		return l(LabelKurtosisUndefined)
	}
	if math.Abs(m.kurtZ) <= zCrit5Pct {
		return l(LabelKurtosisMeso)
	}
	if mathx.Sign(m.kurtosis) > 0 {
		return l(LabelKurtosisLepto)
	}
	return l(LabelKurtosisPlaty)
}
