// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package value

import (
	"fmt"
	"math"
	"math/big"
)

const (
	// DefaultBound is the largest denominator tried by FromDecimal.
	DefaultBound = 10000
	// DefaultRepeat is the number of decimal places captured as a
	// repeating block when the search fails.
	DefaultRepeat = 5

	// searchEpsilon is the absolute slack allowed when deciding that x*n
	// is an integer. It absorbs the error of values computed in float64,
	// such as the result of math.Pow.
	searchEpsilon = 1e-9
	// ulp64 is the spacing of float64 values near 1.
	ulp64 = 0x1p-52
	// MaxRepeat is the most decimal places whose 10**n-1 fits in int64.
	MaxRepeat = 18
)

// A Converter turns floating-point values into Rationals.
// The zero Converter uses DefaultBound and DefaultRepeat.
type Converter struct {
	Bound  int // Largest denominator tried by the search.
	Repeat int // Decimal places captured by the repeating fallback.
}

// DefaultConverter is used by FromDecimal and by the methods of Rational.
var DefaultConverter = Converter{Bound: DefaultBound, Repeat: DefaultRepeat}

// FromDecimal converts x using DefaultConverter.
func FromDecimal(x float64) (Rational, error) {
	return DefaultConverter.FromDecimal(x)
}

func (c Converter) bound() int {
	if c.Bound <= 0 {
		return DefaultBound
	}
	return c.Bound
}

func (c Converter) repeat() int {
	if c.Repeat <= 0 {
		return DefaultRepeat
	}
	return c.Repeat
}

// FromDecimal returns the fraction for x. It tries each denominator n
// from 1 to c.Bound and returns round(x*n)/n for the first n that makes
// x*n an integer to within rounding error. That recovers x exactly when
// its denominator divides some n <= c.Bound: 0.5 is 1/2, 0.75 is 3/4 and
// 0.1 is 1/10.
//
// If the search fails, the result is an approximation: the first
// c.Repeat decimal places of x are treated as a repeating block, giving
// round(10**c.Repeat*x - x) / (10**c.Repeat - 1). Irrational and
// long-period inputs are not reconstructed exactly.
//
// FromDecimal returns ErrInvalidOperand for NaN and infinities and
// ErrOverflow when the result does not fit in int64.
func (c Converter) FromDecimal(x float64) (Rational, error) {
	if math.IsNaN(x) || math.IsInf(x, 0) {
		return Rational{}, fmt.Errorf("%w: %v", ErrInvalidOperand, x)
	}
	if x == 0 {
		return Rational{}, nil
	}
	bound := c.bound()
	for n := 1; n <= bound; n++ {
		p := x * float64(n)
		k := math.Round(p)
		if nearInt(p, k) {
			return fromFloats(k, float64(n))
		}
	}
	return c.repeating(x)
}

// nearInt reports whether p is within rounding error of the integer k.
// Away from zero the slack is less than one ulp of p, so a float64 that
// holds a fraction exactly is never mistaken for an integer.
func nearInt(p, k float64) bool {
	return math.Abs(p-k) <= math.Max(searchEpsilon, ulp64*math.Abs(p)/2)
}

// repeating is the fallback of FromDecimal. The product x*(10**n-1) is
// formed exactly in a big.Float and rounded half away from zero.
func (c Converter) repeating(x float64) (Rational, error) {
	n := c.repeat()
	if n > MaxRepeat {
		n = MaxRepeat
	}
	den := int64(1)
	for i := 0; i < n; i++ {
		den *= 10
	}
	den--
	p := new(big.Float).SetPrec(128).SetFloat64(x)
	p.Mul(p, new(big.Float).SetInt64(den))
	half := big.NewFloat(0.5)
	if x < 0 {
		half.Neg(half)
	}
	p.Add(p, half)
	num, _ := p.Int(nil)
	if !num.IsInt64() {
		return Rational{}, ErrOverflow
	}
	return New(num.Int64(), den)
}

// fromFloats builds num/den from two integral float64s.
func fromFloats(num, den float64) (Rational, error) {
	if math.Abs(num) >= 1<<63 || den >= 1<<63 {
		return Rational{}, ErrOverflow
	}
	return New(int64(num), int64(den))
}
