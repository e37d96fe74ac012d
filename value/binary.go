// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package value

import "math/big"

// Binary operators.

// binaryFn computes u op v. The converter is needed only by the
// operators that go through floating point.
type binaryFn func(c Converter, u, v Rational) (Rational, error)

// To avoid initialization cycles when we refer to the ops from inside
// themselves, we use an init function to initialize the ops.
var binaryOps map[string]binaryFn

func init() {
	binaryOps = map[string]binaryFn{
		"+":  exact(add),
		"-":  exact(sub),
		"*":  exact(mul),
		"/":  exact(quo),
		"//": exact(quo), // Division of fractions is already exact.
		"%":  exact(mod),
		"**": pow,
		"^":  pow,
	}
}

func exact(fn func(u, v Rational) (Rational, error)) binaryFn {
	return func(_ Converter, u, v Rational) (Rational, error) {
		return fn(u, v)
	}
}

func pow(c Converter, u, v Rational) (Rational, error) {
	p, err := c.Pow(u, v)
	return p.Rational, err
}

// IsBinaryOp reports whether op names a binary operator known to Binary.
func IsBinaryOp(op string) bool {
	return binaryOps[op] != nil
}

// Binary computes u op v, converting both operands with c.ToRational.
// The operators are + - * / // % ** and ^, which is a synonym for **.
// The result carries the mixed display flag of u.
func (c Converter) Binary(u interface{}, op string, v interface{}) (Rational, error) {
	fn := binaryOps[op]
	if fn == nil {
		return Rational{}, Errorf("unknown binary operator %q", op)
	}
	x, err := c.ToRational(u)
	if err != nil {
		return Rational{}, err
	}
	y, err := c.ToRational(v)
	if err != nil {
		return Rational{}, err
	}
	z, err := fn(c, x, y)
	if err != nil {
		return Rational{}, err
	}
	z.mixed = x.mixed
	return z, nil
}

// Binary computes u op v with DefaultConverter.
func Binary(u interface{}, op string, v interface{}) (Rational, error) {
	return DefaultConverter.Binary(u, op, v)
}

func Add(u, v interface{}) (Rational, error) { return Binary(u, "+", v) }
func Sub(u, v interface{}) (Rational, error) { return Binary(u, "-", v) }
func Mul(u, v interface{}) (Rational, error) { return Binary(u, "*", v) }
func Div(u, v interface{}) (Rational, error) { return Binary(u, "/", v) }

// Abs returns the absolute value of x after conversion.
func Abs(x interface{}) (Rational, error) {
	r, err := ToRational(x)
	if err != nil {
		return Rational{}, err
	}
	return r.Abs()
}

func add(u, v Rational) (Rational, error) {
	n := new(big.Int).Mul(u.bigNum(), v.bigDen())
	n.Add(n, new(big.Int).Mul(v.bigNum(), u.bigDen()))
	return fromBig(n, new(big.Int).Mul(u.bigDen(), v.bigDen()))
}

func sub(u, v Rational) (Rational, error) {
	n := new(big.Int).Mul(u.bigNum(), v.bigDen())
	n.Sub(n, new(big.Int).Mul(v.bigNum(), u.bigDen()))
	return fromBig(n, new(big.Int).Mul(u.bigDen(), v.bigDen()))
}

func mul(u, v Rational) (Rational, error) {
	n := new(big.Int).Mul(u.bigNum(), v.bigNum())
	return fromBig(n, new(big.Int).Mul(u.bigDen(), v.bigDen()))
}

func quo(u, v Rational) (Rational, error) {
	if v.num == 0 {
		return Rational{}, ErrDivisionByZero
	}
	n := new(big.Int).Mul(u.bigNum(), v.bigDen())
	return fromBig(n, new(big.Int).Mul(u.bigDen(), v.bigNum()))
}

func mod(u, v Rational) (Rational, error) {
	_, r, err := quoRem(u, v)
	return r, err
}

// quoRem returns the Euclidean quotient and remainder of u and v:
// quo is an integer and rem = u - v*quo with 0 <= rem < |v|.
// See the doc for math/big.Int.DivMod.
func quoRem(u, v Rational) (quo, rem Rational, err error) {
	if v.num == 0 {
		return Rational{}, Rational{}, ErrDivisionByZero
	}
	// u/|v| = a/b; floor it, then rem = u - |v|*floor.
	a := new(big.Int).Mul(u.bigNum(), v.bigDen())
	b := new(big.Int).Mul(u.bigDen(), new(big.Int).Abs(v.bigNum()))
	floor := new(big.Int).Div(a, b) // Euclidean, and b > 0, so this is the floor.
	absV := new(big.Int).Abs(v.bigNum())
	// rem = (u.num*v.den - |v.num|*floor*u.den) / (u.den*v.den)
	n := new(big.Int).Mul(absV, floor)
	n.Mul(n, u.bigDen())
	n.Sub(new(big.Int).Mul(u.bigNum(), v.bigDen()), n)
	rem, err = fromBig(n, new(big.Int).Mul(u.bigDen(), v.bigDen()))
	if err != nil {
		return Rational{}, Rational{}, err
	}
	if v.num < 0 {
		floor.Neg(floor)
	}
	quo, err = fromBig(floor, bigOne)
	if err != nil {
		return Rational{}, Rational{}, err
	}
	return quo, rem, nil
}

// The methods below convert x with DefaultConverter and keep the mixed
// display flag of the receiver.

func (r Rational) keep(z Rational, err error) (Rational, error) {
	if err != nil {
		return Rational{}, err
	}
	z.mixed = r.mixed
	return z, nil
}

func (r Rational) apply(fn func(u, v Rational) (Rational, error), x interface{}, swap bool) (Rational, error) {
	y, err := ToRational(x)
	if err != nil {
		return Rational{}, err
	}
	if swap {
		return r.keep(fn(y, r))
	}
	return r.keep(fn(r, y))
}

// Add returns r + x.
func (r Rational) Add(x interface{}) (Rational, error) { return r.apply(add, x, false) }

// RAdd returns x + r.
func (r Rational) RAdd(x interface{}) (Rational, error) { return r.apply(add, x, true) }

// Sub returns r - x.
func (r Rational) Sub(x interface{}) (Rational, error) { return r.apply(sub, x, false) }

// RSub returns x - r.
func (r Rational) RSub(x interface{}) (Rational, error) { return r.apply(sub, x, true) }

// Mul returns r * x.
func (r Rational) Mul(x interface{}) (Rational, error) { return r.apply(mul, x, false) }

// RMul returns x * r.
func (r Rational) RMul(x interface{}) (Rational, error) { return r.apply(mul, x, true) }

// Div returns r / x, or ErrDivisionByZero if x is zero.
func (r Rational) Div(x interface{}) (Rational, error) { return r.apply(quo, x, false) }

// RDiv returns x / r, or ErrDivisionByZero if r is zero.
func (r Rational) RDiv(x interface{}) (Rational, error) { return r.apply(quo, x, true) }

// Mod returns the Euclidean remainder of r / x.
func (r Rational) Mod(x interface{}) (Rational, error) { return r.apply(mod, x, false) }

// QuoRem returns the Euclidean quotient and remainder of r / x:
// quo is an integer and rem = r - x*quo with 0 <= rem < |x|.
func (r Rational) QuoRem(x interface{}) (quo, rem Rational, err error) {
	y, err := ToRational(x)
	if err != nil {
		return Rational{}, Rational{}, err
	}
	return quoRem(r, y)
}
