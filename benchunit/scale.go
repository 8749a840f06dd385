// Copyright 2022 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package benchunit formats measurement values and axis units.
package benchunit

import (
	"fmt"
	"math"
	"strconv"
)

// A Scaler represents a scaling factor for a number and
// its scientific representation.
type Scaler struct {
	Prec   int     // Digits after the decimal point
	Factor float64 // Unscaled value of 1 Prefix (e.g., 1 k => 1000)
	Prefix string  // Unit prefix ("k", "M", "µ", etc)
}

// Format formats val and appends the unit prefix according to the given scale.
// For example, Format(123456789) with a mega Scaler returns "123.5M".
func (s Scaler) Format(val float64) string {
	buf := make([]byte, 0, 20)
	buf = strconv.AppendFloat(buf, val/s.Factor, 'f', s.Prec, 64)
	buf = append(buf, s.Prefix...)
	return string(buf)
}

// NoOpScaler is a Scaler that formats numbers with the smallest
// number of digits necessary to capture the exact value, and no
// prefix. This is intended for when the output will be consumed by
// another program, such as when producing CSV format.
var NoOpScaler = Scaler{-1, 1, ""}

type factor struct {
	exp    int // power of ten
	factor float64
	prefix string
	// Thresholds for 100.0, 10.00, 1.000.
	t100, t10, t1 float64
}

var siFactors = mkSIFactors()
var sigfigs = mkSigfigs()

func mkSIFactors() []factor {
	// Thresholds are parsed from their printed form so they match
	// exactly how AppendFloat will round.
	var factors []factor
	exp := 12
	for _, p := range []string{"T", "G", "M", "k", "", "m", "µ", "n"} {
		t100, _ := strconv.ParseFloat(fmt.Sprintf("99.995e%d", exp), 64)
		t10, _ := strconv.ParseFloat(fmt.Sprintf("9.9995e%d", exp), 64)
		t1, _ := strconv.ParseFloat(fmt.Sprintf(".99995e%d", exp), 64)
		factors = append(factors, factor{exp, math.Pow(10, float64(exp)), p, t100, t10, t1})
		exp -= 3
	}
	return factors
}

// mkSigfigs returns the thresholds for printing 3, 4, ... digits after
// the decimal point, up to 10.
func mkSigfigs() []float64 {
	var ts []float64
	for exp := -1; exp > -9; exp-- {
		thresh, _ := strconv.ParseFloat(fmt.Sprintf("9.9995e%d", exp), 64)
		ts = append(ts, thresh)
	}
	return ts
}

// Scale formats val using at least three significant digits,
// appending an SI prefix.
func Scale(val float64) string {
	return CommonScale([]float64{val}).Format(val)
}

// CommonScale returns a common Scaler to apply to all values in vals.
// This scale will show at least three significant digits for every
// value. NaN and infinite values are ignored.
func CommonScale(vals []float64) Scaler {
	// The common scale is determined by the non-zero value
	// closest to zero.
	var min float64
	for _, v := range vals {
		v = math.Abs(v)
		if v == 0 || math.IsNaN(v) || math.IsInf(v, 0) {
			continue
		}
		if min == 0 || v < min {
			min = v
		}
	}
	if min == 0 {
		return Scaler{3, 1, ""}
	}

	for _, f := range siFactors {
		switch {
		case min >= f.t100:
			return Scaler{1, f.factor, f.prefix}
		case min >= f.t10:
			return Scaler{2, f.factor, f.prefix}
		case min >= f.t1:
			return Scaler{3, f.factor, f.prefix}
		}
	}

	// Below the smallest factor: keep that factor and add
	// digits until there are enough significant figures.
	f := siFactors[len(siFactors)-1]
	val := min / f.factor
	for i, thresh := range sigfigs {
		if val >= thresh || i == len(sigfigs)-1 {
			return Scaler{i + 3, f.factor, f.prefix}
		}
	}
	panic("not reachable")
}

// Prefix returns the SI prefix whose value is factor, such as "µ" for
// 1e-6. It reports false if factor is not a power of 1000 between
// nano and tera.
func Prefix(factor float64) (string, bool) {
	exp, ok := powerOfTen(factor)
	if !ok {
		return "", false
	}
	for _, f := range siFactors {
		if f.exp == exp {
			return f.prefix, true
		}
	}
	return "", false
}

// Label returns an axis label for quantity measured in unit after
// every value has been multiplied by multiplier. For example,
//
//	Label("time", "s", 1e6)  = "time, µs"
//	Label("n", "", 1e-4)     = "n, 10⁴"
//	Label("n", "", 1)        = "n"
//
// When no SI prefix fits, the displayed unit is written as a power of
// ten, or as a plain number when 1/multiplier is not a power of ten.
func Label(quantity, unit string, multiplier float64) string {
	suffix := Unit(unit, multiplier)
	if suffix == "" {
		return quantity
	}
	return quantity + ", " + suffix
}

// Unit returns the display unit of values in unit that have been
// multiplied by multiplier. See Label.
func Unit(unit string, multiplier float64) string {
	per := 1 / multiplier
	exp, ok := powerOfTen(per)
	if !ok {
		return join(strconv.FormatFloat(per, 'g', -1, 64), unit)
	}
	if exp == 0 {
		return unit
	}
	if unit != "" {
		if p, ok := Prefix(per); ok {
			return p + unit
		}
	}
	return join("10"+Superscript(exp), unit)
}

func join(scale, unit string) string {
	if unit == "" {
		return scale
	}
	return scale + " " + unit
}

// powerOfTen reports whether x is 10^exp for an integer exp.
func powerOfTen(x float64) (exp int, ok bool) {
	if !(x > 0) || math.IsInf(x, 0) {
		return 0, false
	}
	e := math.Round(math.Log10(x))
	if math.Abs(x-math.Pow(10, e)) > 1e-9*x {
		return 0, false
	}
	return int(e), true
}

var superDigits = []rune("⁰¹²³⁴⁵⁶⁷⁸⁹")

// Superscript formats n with Unicode superscript digits.
func Superscript(n int) string {
	var out []rune
	if n < 0 {
		out = append(out, '⁻')
		n = -n
	}
	for _, c := range strconv.Itoa(n) {
		out = append(out, superDigits[c-'0'])
	}
	return string(out)
}
