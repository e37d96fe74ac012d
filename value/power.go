// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package value

import (
	"fmt"
	"math"
	"math/big"
)

// Power is the result of exponentiation. Exact reports whether Rational
// is the true value; when it is false, Rational is the approximation
// recovered from float64 by the Converter.
type Power struct {
	Rational
	Exact bool
}

// Pow returns u**e with DefaultConverter.
func Pow(u, e interface{}) (Power, error) {
	r, err := ToRational(u)
	if err != nil {
		return Power{}, err
	}
	return DefaultConverter.Pow(r, e)
}

// Pow returns r**e with DefaultConverter.
func (r Rational) Pow(e interface{}) (Power, error) {
	return DefaultConverter.Pow(r, e)
}

// Pow returns r raised to the power e, which may be of any type accepted
// by ToRational.
//
// An integral exponent is computed exactly with big integers, and a
// negative one inverts the result. For a non-integral exponent a/b,
// num**e and den**e are computed in float64 and the quotient is turned
// back into a Rational by c.FromDecimal; the result is marked Exact only
// if raising it to b reproduces r**a exactly. Thus (4/9)**0.5 is exactly
// 2/3 while 2**0.5 is an approximation.
//
// Zero to a negative power is ErrDivisionByZero, and a negative base
// with a non-integral exponent is ErrInvalidOperand.
func (c Converter) Pow(r Rational, e interface{}) (Power, error) {
	y, err := c.ToRational(e)
	if err != nil {
		return Power{}, err
	}
	if r.IsZero() && y.Sign() < 0 {
		return Power{}, ErrDivisionByZero
	}
	if y.IsInt() {
		z, err := intPow(r, y.num)
		if err != nil {
			return Power{}, err
		}
		z.mixed = r.mixed
		return Power{Rational: z, Exact: true}, nil
	}
	if r.Sign() < 0 {
		return Power{}, fmt.Errorf("%w: %s ** %s", ErrInvalidOperand, r.PlainString(), y.PlainString())
	}
	fe := y.Float64()
	f := math.Pow(float64(r.num), fe) / math.Pow(float64(r.Den()), fe)
	z, err := c.FromDecimal(f)
	if err != nil {
		return Power{}, err
	}
	z.mixed = r.mixed
	return Power{Rational: z, Exact: isRoot(z, r, y)}, nil
}

// intPow returns r**n exactly.
func intPow(r Rational, n int64) (Rational, error) {
	if n < 0 {
		inv, err := r.Inv()
		if err != nil {
			return Rational{}, err
		}
		if n == math.MinInt64 {
			return Rational{}, ErrOverflow
		}
		return intPow(inv, -n)
	}
	// Any base other than 0, 1 and -1 exceeds int64 beyond 63 doublings.
	trivial := r.IsInt() && r.num >= -1 && r.num <= 1
	if n > 63 && !trivial {
		return Rational{}, ErrOverflow
	}
	exp := big.NewInt(n)
	num := new(big.Int).Exp(r.bigNum(), exp, nil)
	den := new(big.Int).Exp(r.bigDen(), exp, nil)
	return fromBig(num, den)
}

// isRoot reports whether z**y.den == r**y.num exactly.
func isRoot(z, r, y Rational) bool {
	lhs, err := intPow(z, y.Den())
	if err != nil {
		return false
	}
	rhs, err := intPow(r, y.num)
	if err != nil {
		return false
	}
	return lhs == rhs
}

// Sqrt returns the square root of r using DefaultConverter.
func (r Rational) Sqrt() (Power, error) {
	return DefaultConverter.Sqrt(r)
}

// Sqrt returns the square root of r. Perfect squares are found exactly
// with integer square roots; anything else is r**(1/2) as computed by
// c.Pow.
func (c Converter) Sqrt(r Rational) (Power, error) {
	if r.Sign() < 0 {
		return Power{}, fmt.Errorf("%w: square root of %s", ErrInvalidOperand, r.PlainString())
	}
	n := new(big.Int).Sqrt(r.bigNum())
	d := new(big.Int).Sqrt(r.bigDen())
	if new(big.Int).Mul(n, n).Cmp(r.bigNum()) == 0 && new(big.Int).Mul(d, d).Cmp(r.bigDen()) == 0 {
		z, err := fromBig(n, d)
		z.mixed = r.mixed
		return Power{Rational: z, Exact: true}, err
	}
	return c.Pow(r, Rational{num: 1, denm1: 1})
}
