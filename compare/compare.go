// Copyright 2026 The SMTools Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package compare quantifies how well two equal-length, paired
// numeric samples agree: pointwise error metrics (MAE, RMSE, MAPE
// and friends), covariance and correlation, and a two-sample
// Kolmogorov-Smirnov test of distributional equality.
package compare

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"

	"github.com/smaerivo/smtools-sub002/empirical"
)

// A Comparator holds the paired-error metrics of two equal-length
// samples X and Y. All metrics are computed once, when the data is
// set.
type Comparator struct {
	x, y []float64

	mae, mse, rmse, sse     float64
	mre, rrmse, rmsep       float64
	maxe, me, mape, eqc     float64
	covariance, correlation float64
}

// New constructs a Comparator over the paired samples x and y. The
// samples must be non-empty and of equal length.
func New(x, y []float64) (*Comparator, error) {
	c := new(Comparator)
	if err := c.SetData(x, y); err != nil {
		return nil, err
	}
	return c, nil
}

// NewFromDistributions compares the raw samples underlying two
// analysed distributions.
func NewFromDistributions(x, y *empirical.Distribution) (*Comparator, error) {
	return New(x.Values(), y.Values())
}

// SetData replaces both samples and recomputes every metric. The
// inputs are copied. Mismatched lengths or empty samples are
// rejected with an error, leaving any prior state intact.
func (c *Comparator) SetData(x, y []float64) error {
	if len(x) == 0 || len(y) == 0 {
		return fmt.Errorf("compare: empty sample")
	}
	if len(x) != len(y) {
		return fmt.Errorf("compare: mismatched sample lengths %d and %d", len(x), len(y))
	}
	c.x = make([]float64, len(x))
	copy(c.x, x)
	c.y = make([]float64, len(y))
	copy(c.y, y)
	c.compute()
	return nil
}

func (c *Comparator) compute() {
	n := float64(len(c.x))

	var absSum, sqSum, relSum, relSqSum, signedSum, maxAbs float64
	var xSqSum, ySqSum float64
	relDefined := true
	for i, xi := range c.x {
		diff := xi - c.y[i]
		abs := math.Abs(diff)
		absSum += abs
		sqSum += diff * diff
		signedSum += diff
		if abs > maxAbs {
			maxAbs = abs
		}
		if xi == 0 {
			relDefined = false
		} else {
			rel := diff / xi
			relSum += math.Abs(rel)
			relSqSum += rel * rel
		}
		xSqSum += xi * xi
		ySqSum += c.y[i] * c.y[i]
	}

	c.mae = absSum / n
	c.mse = sqSum / n
	c.rmse = math.Sqrt(c.mse)
	c.sse = sqSum
	c.maxe = maxAbs
	c.me = signedSum / n

	if relDefined {
		c.mre = relSum / n
		c.rrmse = math.Sqrt(relSqSum / n)
	} else {
		// Some Xi is zero: the relative-error family is singular.
		c.mre = math.NaN()
		c.rrmse = math.NaN()
	}
	c.mape = 100 * c.mre

	// RMSEP normalizes by the mean of X instead of per-point Xi,
	// avoiding the MRE singularity.
	if xSum := floats.Sum(c.x); xSum != 0 {
		c.rmsep = 100 * c.rmse * n / xSum
	} else {
		c.rmsep = math.NaN()
	}

	// Bounded equality coefficient over Euclidean norms; 1 means
	// identical samples. Two all-zero samples are identical.
	if norm := math.Sqrt(xSqSum) + math.Sqrt(ySqSum); norm > 0 {
		c.eqc = 1 - math.Sqrt(sqSum)/norm
	} else {
		c.eqc = 1
	}

	if len(c.x) > 1 {
		c.covariance = stat.Covariance(c.x, c.y, nil)
		c.correlation = stat.Correlation(c.x, c.y, nil)
	} else {
		c.covariance = 0
		c.correlation = math.NaN()
	}
}

// N returns the (shared) sample length, 0 before any successful
// SetData.
func (c *Comparator) N() int { return len(c.x) }

// MAE returns the mean absolute error.
func (c *Comparator) MAE() float64 { return c.mae }

// MSE returns the mean squared error.
func (c *Comparator) MSE() float64 { return c.mse }

// RMSE returns the root mean squared error.
func (c *Comparator) RMSE() float64 { return c.rmse }

// SSE returns the sum of squared errors.
func (c *Comparator) SSE() float64 { return c.sse }

// MRE returns the mean relative error. It is NaN when any Xi is 0.
func (c *Comparator) MRE() float64 { return c.mre }

// RRMSE returns the relative root mean squared error. It is NaN
// when any Xi is 0.
func (c *Comparator) RRMSE() float64 { return c.rrmse }

// RMSEP returns the RMSE as a percentage of the mean of X. It is
// NaN when the X values sum to 0.
func (c *Comparator) RMSEP() float64 { return c.rmsep }

// MaxE returns the maximum absolute error.
func (c *Comparator) MaxE() float64 { return c.maxe }

// ME returns the signed mean error, mean(Xi - Yi).
func (c *Comparator) ME() float64 { return c.me }

// MAPE returns the mean absolute percentage error, 100 * MRE.
func (c *Comparator) MAPE() float64 { return c.mape }

// EQC returns the equality coefficient in [0, 1]:
// 1 - ‖X-Y‖ / (‖X‖ + ‖Y‖). Identical samples score 1.
func (c *Comparator) EQC() float64 { return c.eqc }

// Covariance returns the unbiased (N-1 denominator) sample
// covariance of X and Y.
func (c *Comparator) Covariance() float64 { return c.covariance }

// Correlation returns the Pearson correlation coefficient. It is
// NaN when either marginal variance is 0 or N < 2.
func (c *Comparator) Correlation() float64 { return c.correlation }
