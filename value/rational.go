// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package value implements exact fractions with int64 numerator and
// denominator: construction from integer pairs and from float64 decimals,
// a closed arithmetic over mixed operand types, comparison, and plain,
// mixed-number and superscript/subscript renderings.
//
// A Rational is always reduced to lowest terms with a positive
// denominator. Intermediate results are computed with math/big, so
// arithmetic never wraps silently: a result that does not fit in int64
// is reported as ErrOverflow.
package value // import "github.com/zmath/frac/value"

import (
	"math"
	"math/big"
)

// Rational is an exact fraction. The zero value is 0/1.
// Rationals are immutable values and may be copied freely.
type Rational struct {
	num   int64
	denm1 int64 // Denominator minus one, so the zero value is valid.
	mixed bool  // Render as a mixed number; see String.
}

var bigOne = big.NewInt(1)

// New returns num/den in lowest terms with a positive denominator.
// It returns ErrDivisionByZero if den is zero.
func New(num, den int64) (Rational, error) {
	return fromBig(big.NewInt(num), big.NewInt(den))
}

// MustNew is like New but panics on error.
func MustNew(num, den int64) Rational {
	r, err := New(num, den)
	if err != nil {
		panic(err)
	}
	return r
}

// Int returns n/1.
func Int(n int64) Rational {
	return Rational{num: n}
}

// fromBig reduces num/den and returns it if both parts fit in an int64.
// The arguments are not modified.
func fromBig(num, den *big.Int) (Rational, error) {
	if den.Sign() == 0 {
		return Rational{}, ErrDivisionByZero
	}
	if num.Sign() == 0 {
		return Rational{}, nil
	}
	n := new(big.Int).Set(num)
	d := new(big.Int).Set(den)
	if d.Sign() < 0 {
		n.Neg(n)
		d.Neg(d)
	}
	g := new(big.Int).GCD(nil, nil, new(big.Int).Abs(n), d)
	n.Quo(n, g)
	d.Quo(d, g)
	if !n.IsInt64() || !d.IsInt64() {
		return Rational{}, ErrOverflow
	}
	return Rational{num: n.Int64(), denm1: d.Int64() - 1}, nil
}

// Num returns the numerator of r. It carries the sign.
func (r Rational) Num() int64 {
	return r.num
}

// Den returns the denominator of r. It is always positive.
func (r Rational) Den() int64 {
	return r.denm1 + 1
}

// Mixed reports whether r renders as a mixed number.
func (r Rational) Mixed() bool {
	return r.mixed
}

// SetMixed returns a copy of r with the mixed-number display flag set to on.
// The numeric value is unchanged.
func (r Rational) SetMixed(on bool) Rational {
	r.mixed = on
	return r
}

func (r Rational) bigNum() *big.Int {
	return big.NewInt(r.num)
}

func (r Rational) bigDen() *big.Int {
	return big.NewInt(r.Den())
}

// Rat returns r as a newly allocated big.Rat.
func (r Rational) Rat() *big.Rat {
	return big.NewRat(r.num, r.Den())
}

// Sign returns -1, 0 or 1 according to the sign of r.
func (r Rational) Sign() int {
	switch {
	case r.num < 0:
		return -1
	case r.num > 0:
		return 1
	}
	return 0
}

func (r Rational) IsZero() bool {
	return r.num == 0
}

// IsInt reports whether the denominator of r is 1.
func (r Rational) IsInt() bool {
	return r.denm1 == 0
}

// Neg returns -r. Only -(MinInt64/1) overflows.
func (r Rational) Neg() (Rational, error) {
	z, err := fromBig(new(big.Int).Neg(r.bigNum()), r.bigDen())
	z.mixed = r.mixed
	return z, err
}

// Abs returns |r|.
func (r Rational) Abs() (Rational, error) {
	if r.num >= 0 {
		return r, nil
	}
	return r.Neg()
}

// Inv returns 1/r, or ErrDivisionByZero if r is zero.
func (r Rational) Inv() (Rational, error) {
	z, err := fromBig(r.bigDen(), r.bigNum())
	z.mixed = r.mixed
	return z, err
}

// Float64 returns the nearest float64 to r.
func (r Rational) Float64() float64 {
	f, _ := r.Rat().Float64()
	return f
}

// Int64 returns the integer part of r, truncated toward zero.
func (r Rational) Int64() int64 {
	return r.num / r.Den()
}

// Round returns the float64 value of r rounded to the given number of
// decimal places. Halves round away from zero.
func (r Rational) Round(places int) float64 {
	scale := math.Pow(10, float64(places))
	return math.Round(r.Float64()*scale) / scale
}
