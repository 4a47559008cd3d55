// Copyright 2026 The SMTools Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package empirical

import (
	"math"
	"testing"

	"github.com/aclements/go-moremath/stats"
)

var sample8 = []float64{5, 2, 4, 9, 4, 5, 7, 4}

func TestEmptySample(t *testing.T) {
	for _, d := range []*Distribution{New(nil), New([]float64{})} {
		if d.N() != 0 {
			t.Fatalf("N = %d, want 0", d.N())
		}
		// Every accessor returns a zero sentinel, no panics.
		if d.Mean() != 0 || d.Variance() != 0 || d.Min() != 0 || d.Max() != 0 {
			t.Errorf("cleared instance leaks non-zero statistics")
		}
		if d.Percentile(50) != 0 || d.CDF(1) != 0 || d.PDF(1) != 0 || d.KDEPDF(1) != 0 {
			t.Errorf("cleared instance leaks non-zero lookups")
		}
		if d.BinCount() != 0 {
			t.Errorf("cleared instance has histogram bins")
		}
	}
}

func TestSetDataClears(t *testing.T) {
	d := New(sample8)
	if d.N() != 8 {
		t.Fatalf("N = %d, want 8", d.N())
	}
	d.SetData(nil)
	if d.N() != 0 || d.Mean() != 0 || d.BinCount() != 0 {
		t.Errorf("SetData(nil) did not clear the instance")
	}
}

func TestDefensiveCopy(t *testing.T) {
	buf := []float64{1, 2, 3, 4, 5}
	d := New(buf)
	buf[0] = 1e9
	if d.Min() != 1 {
		t.Errorf("mutating the caller's buffer changed the sample: Min = %v", d.Min())
	}
	d.Values()[0] = 1e9
	d.Sorted()[0] = 1e9
	if d.Min() != 1 {
		t.Errorf("mutating an accessor result changed the sample: Min = %v", d.Min())
	}
}

func TestPercentiles(t *testing.T) {
	d := New(sample8)
	check := func(p, want float64) {
		t.Helper()
		if got := d.Percentile(p); math.Abs(got-want) > 1e-12 {
			t.Errorf("Percentile(%v) = %v, want %v", p, got, want)
		}
	}
	check(0, 2)   // minimum
	check(100, 9) // maximum
	check(50, 4.5)
	check(25, 4)
	check(75, 5.5)
	if got := d.IQR(); math.Abs(got-1.5) > 1e-12 {
		t.Errorf("IQR = %v, want 1.5", got)
	}

	// Out-of-range ranks clamp instead of erroring.
	check(-10, 2)
	check(250, 9)

	// Odd N: the median is the exact middle element.
	if got := New([]float64{3, 1, 2}).Median(); got != 2 {
		t.Errorf("Median of {1,2,3} = %v, want 2", got)
	}
	// N = 1: every percentile is the single value.
	one := New([]float64{42})
	check1 := func(p float64) {
		t.Helper()
		if got := one.Percentile(p); got != 42 {
			t.Errorf("Percentile(%v) of single value = %v, want 42", p, got)
		}
	}
	check1(0)
	check1(37.3)
	check1(100)
}

func TestCDF(t *testing.T) {
	d := New(sample8)
	check := func(x, want float64) {
		t.Helper()
		if got := d.CDF(x); math.Abs(got-want) > 1e-12 {
			t.Errorf("CDF(%v) = %v, want %v", x, got, want)
		}
	}
	check(1, 0) // below range
	check(2, 0) // minimum
	check(9, 1) // maximum
	check(99, 1)
	check(5, 5.0/7) // sorted: 2 4 4 4 5 5 7 9

	// Non-decreasing over a sweep of the support.
	prev := -1.0
	for x := 1.0; x <= 10; x += 0.01 {
		got := d.CDF(x)
		if got < prev {
			t.Fatalf("CDF not monotone at %v: %v < %v", x, got, prev)
		}
		prev = got
	}
}

func TestSingleValueCDF(t *testing.T) {
	d := New([]float64{7})
	if got := d.CDF(7); got != 1 {
		t.Errorf("CDF(7) = %v, want 1", got)
	}
	if got := d.CDF(6); got != 0 {
		t.Errorf("CDF(6) = %v, want 0", got)
	}
}

// The engine's mean and standard deviation must agree with an
// independent implementation.
func TestMomentsAgainstMoremath(t *testing.T) {
	d := New(sample8)
	ref := stats.Sample{Xs: sample8}
	if got, want := d.Mean(), ref.Mean(); math.Abs(got-want) > 1e-12 {
		t.Errorf("Mean = %v, want %v", got, want)
	}
	if got, want := d.StdDev(), ref.StdDev(); math.Abs(got-want) > 1e-12 {
		t.Errorf("StdDev = %v, want %v", got, want)
	}
}
