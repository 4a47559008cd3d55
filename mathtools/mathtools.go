// Copyright 2026 The SMTools Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package mathtools provides small, side-effect-free numeric building
// blocks used by the statistics packages: value clipping, linear
// interpolation, smoothing-kernel evaluation, sorted-array bound
// search, local-extrema detection, and a handful of scalar helpers.
//
// All functions operate on float64 arguments and never retain or
// mutate caller-owned slices.
package mathtools

import "math"

// Clip bounds v to the interval [lo, hi].
func Clip(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

// ClipInt is Clip for the discrete domain.
func ClipInt(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

// Lerp returns the linear interpolation from "from" to "to" at
// parameter t, i.e. from*(1-t) + to*t. t is conceptually in [0,1] but
// is deliberately not clamped; extrapolation is the caller's choice.
func Lerp(t, from, to float64) float64 {
	return from*(1-t) + to*t
}

// Deg2Rad converts degrees to radians.
func Deg2Rad(deg float64) float64 {
	return deg * math.Pi / 180
}

// Rad2Deg converts radians to degrees.
func Rad2Deg(rad float64) float64 {
	return rad * 180 / math.Pi
}

// Sinc is the unnormalised cardinal sine sin(x)/x, with Sinc(0) = 1.
func Sinc(x float64) float64 {
	if x == 0 {
		return 1
	}
	return math.Sin(x) / x
}

// Sincn is the normalised cardinal sine sin(πx)/(πx), with
// Sincn(0) = 1.
func Sincn(x float64) float64 {
	return Sinc(math.Pi * x)
}

// IsPrime reports whether n is a prime number.
func IsPrime(n uint64) bool {
	if n < 2 {
		return false
	}
	if n%2 == 0 {
		return n == 2
	}
	if n%3 == 0 {
		return n == 3
	}
	// Trial division over 6k±1 candidates.
	for d := uint64(5); d*d <= n; d += 6 {
		if n%d == 0 || n%(d+2) == 0 {
			return false
		}
	}
	return true
}

// Fac returns n! as a float64. Fac(0) = 1; negative n yields NaN.
// Results overflow to +Inf for n > 170.
func Fac(n int) float64 {
	if n < 0 {
		return math.NaN()
	}
	f := 1.0
	for i := 2; i <= n; i++ {
		f *= float64(i)
	}
	return f
}

// FacApprox returns Stirling's approximation of n!,
// √(2πn)·(n/e)^n. It is defined for any non-negative real n.
func FacApprox(n float64) float64 {
	if n < 0 {
		return math.NaN()
	}
	if n == 0 {
		return 1
	}
	return math.Sqrt(2*math.Pi*n) * math.Pow(n/math.E, n)
}
