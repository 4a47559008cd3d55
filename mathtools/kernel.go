// Copyright 2026 The SMTools Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package mathtools

import (
	"fmt"
	"math"
)

// A Kernel identifies a smoothing-kernel function for density
// estimation. All kernels except Gaussian have compact support and
// evaluate to 0 for |u| > 1.
type Kernel int

const (
	Rectangular Kernel = iota
	Triangular
	Epanechnikov
	Quartic
	Gaussian
	Lanczos
)

var kernelNames = [...]string{
	Rectangular:  "rectangular",
	Triangular:   "triangular",
	Epanechnikov: "epanechnikov",
	Quartic:      "quartic",
	Gaussian:     "gaussian",
	Lanczos:      "lanczos",
}

func (k Kernel) String() string {
	if k < 0 || int(k) >= len(kernelNames) {
		return fmt.Sprintf("Kernel(%d)", int(k))
	}
	return kernelNames[k]
}

// ParseKernel returns the Kernel named by s.
func ParseKernel(s string) (Kernel, error) {
	for k, name := range kernelNames {
		if s == name {
			return Kernel(k), nil
		}
	}
	return 0, fmt.Errorf("unknown kernel %q", s)
}

var invSqrt2Pi = 1 / math.Sqrt(2*math.Pi)

// Eval evaluates the kernel function at u.
func (k Kernel) Eval(u float64) float64 {
	if k != Gaussian && math.Abs(u) > 1 {
		return 0
	}
	switch k {
	case Rectangular:
		return 0.5
	case Triangular:
		return 1 - math.Abs(u)
	case Epanechnikov:
		return 0.75 * (1 - u*u)
	case Quartic:
		t := 1 - u*u
		return (15.0 / 16.0) * t * t
	case Gaussian:
		return invSqrt2Pi * math.Exp(-u*u/2)
	case Lanczos:
		// Lanczos window with a = 2.
		return Sincn(u) * Sincn(u/2)
	}
	return 0
}

// SilvermanFactor returns the kernel-specific constant C used by
// Silverman's rule-of-thumb bandwidth C·σ·n^(-1/5). The values for
// the compact-support kernels are the canonical normal-reference
// constants; Lanczos has no canonical constant and reuses the
// Gaussian one.
func (k Kernel) SilvermanFactor() float64 {
	switch k {
	case Rectangular:
		return 1.84
	case Triangular:
		return 2.58
	case Epanechnikov:
		return 2.34
	case Quartic:
		return 2.78
	}
	return 1.06
}
