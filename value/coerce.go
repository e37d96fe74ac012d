// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package value

import (
	"fmt"
	"math"
	"math/big"

	"github.com/shopspring/decimal"
)

// ToRational converts x using DefaultConverter.
func ToRational(x interface{}) (Rational, error) {
	return DefaultConverter.ToRational(x)
}

// ToRational converts an operand to a Rational. Integers of every size
// become n/1, floats go through c.FromDecimal, and big.Int, big.Rat and
// decimal.Decimal values convert exactly. Any other type yields a
// *TypeMismatchError.
func (c Converter) ToRational(x interface{}) (Rational, error) {
	switch x := x.(type) {
	case Rational:
		return x, nil
	case Power:
		return x.Rational, nil
	case int:
		return Int(int64(x)), nil
	case int8:
		return Int(int64(x)), nil
	case int16:
		return Int(int64(x)), nil
	case int32:
		return Int(int64(x)), nil
	case int64:
		return Int(x), nil
	case uint:
		return fromUint64(uint64(x))
	case uint8:
		return Int(int64(x)), nil
	case uint16:
		return Int(int64(x)), nil
	case uint32:
		return Int(int64(x)), nil
	case uint64:
		return fromUint64(x)
	case float32:
		return c.FromDecimal(float64(x))
	case float64:
		return c.FromDecimal(x)
	case *big.Int:
		if x != nil {
			return fromBig(x, bigOne)
		}
	case *big.Rat:
		if x != nil {
			return fromBig(x.Num(), x.Denom())
		}
	case decimal.Decimal:
		return fromDecimal(x)
	}
	return Rational{}, &TypeMismatchError{Type: fmt.Sprintf("%T", x)}
}

func fromUint64(x uint64) (Rational, error) {
	if x > math.MaxInt64 {
		return Rational{}, ErrOverflow
	}
	return Int(int64(x)), nil
}

// fromDecimal converts d exactly: coefficient * 10**exponent.
func fromDecimal(d decimal.Decimal) (Rational, error) {
	num := d.Coefficient()
	exp := int64(d.Exponent())
	if num.Sign() == 0 {
		return Rational{}, nil
	}
	// Reject scales that cannot reduce into range before building them.
	if exp > 18 || -exp > 19+int64(len(num.Text(10))) {
		return Rational{}, ErrOverflow
	}
	if exp >= 0 {
		return fromBig(num.Mul(num, bigPow10(exp)), bigOne)
	}
	return fromBig(num, bigPow10(-exp))
}

// bigPow10 returns 10**n.
func bigPow10(n int64) *big.Int {
	return new(big.Int).Exp(big.NewInt(10), big.NewInt(n), nil)
}

// FromValues converts each element of xs with DefaultConverter.
// It stops at the first element that fails, reporting its index.
func FromValues(xs ...interface{}) ([]Rational, error) {
	out := make([]Rational, len(xs))
	for i, x := range xs {
		r, err := ToRational(x)
		if err != nil {
			return nil, fmt.Errorf("element %d: %w", i, err)
		}
		out[i] = r
	}
	return out, nil
}
