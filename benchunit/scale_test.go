// Copyright 2022 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package benchunit

import (
	"math"
	"testing"
)

func TestScale(t *testing.T) {
	test := func(num float64, want, wantPred string) {
		t.Helper()

		got := Scale(num)
		if got != want {
			t.Errorf("for %v, got %s, want %s", num, got, want)
		}

		// Check what happens when this number is exactly on
		// the crux between two scale factors.
		pred := math.Nextafter(num, 0)
		got = Scale(pred)
		if got != wantPred {
			dir := "-ε"
			if num < 0 {
				dir = "+ε"
			}
			t.Errorf("for %v%s, got %s, want %s", num, dir, got, wantPred)
		}
	}

	// Smoke tests
	test(0, "0.000", "0.000")
	test(1, "1.000", "1.000")
	test(-1, "-1.000", "-1.000")
	// Full range
	test(999950000000, "1.000T", "999.9G")
	test(99995000000, "100.0G", "99.99G")
	test(999950, "1.000M", "999.9k")
	test(99995, "100.0k", "99.99k")
	test(9999.5, "10.00k", "9.999k")
	test(999.95, "1.000k", "999.9")
	test(99.995, "100.0", "99.99")
	test(9.9995, "10.00", "9.999")
	test(.99995, "1.000", "999.9m")
	test(.0099995, "10.00m", "9.999m")
	test(.00099995, "1.000m", "999.9µ")
	test(.000099995, "100.0µ", "99.99µ")
	test(.00000099995, "1.000µ", "999.9n")
	test(.0000000099995, "10.00n", "9.999n")
	test(.00000000099995, "1.000n", "0.9999n")
	test(.0000000000099995, "0.01000n", "0.009999n")

	// Misc
	test(-99995000000000, "-100.0T", "-99.99T")
}

func TestCommonScaleIgnoresNaN(t *testing.T) {
	s := CommonScale([]float64{math.NaN(), 0.002, math.Inf(1), 0})
	if got := s.Format(0.002); got != "2.000m" {
		t.Errorf("got %s, want 2.000m", got)
	}
	s = CommonScale([]float64{math.NaN()})
	if s != (Scaler{3, 1, ""}) {
		t.Errorf("all-NaN scale = %+v", s)
	}
}

func TestNoOpScaler(t *testing.T) {
	test := func(val float64, want string) {
		t.Helper()
		got := NoOpScaler.Format(val)
		if got != want {
			t.Errorf("for %v, got %s, want %s", val, got, want)
		}
	}

	test(1, "1")
	test(123456789, "123456789")
	test(123.456789, "123.456789")
	test(2000, "2000")
}

func TestPrefix(t *testing.T) {
	for _, test := range []struct {
		factor float64
		want   string
		ok     bool
	}{
		{1e-6, "µ", true},
		{1e-3, "m", true},
		{1, "", true},
		{1e3, "k", true},
		{1e12, "T", true},
		{1e-4, "", false},
		{1e15, "", false},
		{2, "", false},
		{0, "", false},
	} {
		got, ok := Prefix(test.factor)
		if got != test.want || ok != test.ok {
			t.Errorf("Prefix(%v) = %q, %v; want %q, %v", test.factor, got, ok, test.want, test.ok)
		}
	}
}

func TestLabel(t *testing.T) {
	for _, test := range []struct {
		quantity, unit string
		mult           float64
		want           string
	}{
		{"time", "s", 1e6, "time, µs"},
		{"time", "s", 1e3, "time, ms"},
		{"time", "s", 1, "time, s"},
		{"time", "s", 1e4, "time, 10⁻⁴ s"},
		{"n", "", 1e-4, "n, 10⁴"},
		{"n", "", 1e-3, "n, 10³"},
		{"n", "", 1, "n"},
		{"n", "", 0.5, "n, 2"},
	} {
		got := Label(test.quantity, test.unit, test.mult)
		if got != test.want {
			t.Errorf("Label(%q, %q, %v) = %q, want %q", test.quantity, test.unit, test.mult, got, test.want)
		}
	}
}

func TestSuperscript(t *testing.T) {
	for n, want := range map[int]string{0: "⁰", 4: "⁴", 12: "¹²", -6: "⁻⁶"} {
		if got := Superscript(n); got != want {
			t.Errorf("Superscript(%d) = %q, want %q", n, got, want)
		}
	}
}
