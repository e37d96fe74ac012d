// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package value

import (
	"fmt"
	"math/big"
)

// Ordering is the result of comparing two values.
type Ordering int

const (
	Less    Ordering = -1
	Equal   Ordering = 0
	Greater Ordering = 1
)

func (o Ordering) String() string {
	switch o {
	case Less:
		return "Less"
	case Equal:
		return "Equal"
	case Greater:
		return "Greater"
	}
	return fmt.Sprintf("Ordering(%d)", int(o))
}

// Symbol returns "<", "=" or ">".
func (o Ordering) Symbol() string {
	switch {
	case o < 0:
		return "<"
	case o > 0:
		return ">"
	}
	return "="
}

// cmp orders u and v by the sign of u.num*v.den - v.num*u.den.
// Cross-multiplying in big integers keeps the comparison exact.
func cmp(u, v Rational) Ordering {
	a := new(big.Int).Mul(u.bigNum(), v.bigDen())
	b := new(big.Int).Mul(v.bigNum(), u.bigDen())
	return Ordering(a.Cmp(b))
}

// Cmp compares r with x after converting x with DefaultConverter.
func (r Rational) Cmp(x interface{}) (Ordering, error) {
	y, err := ToRational(x)
	if err != nil {
		return Equal, err
	}
	return cmp(r, y), nil
}

// Equal reports whether r and x have the same numeric value,
// regardless of how they are displayed.
func (r Rational) Equal(x Rational) bool {
	return r.num == x.num && r.denm1 == x.denm1
}

// Compare converts both operands with DefaultConverter and orders them.
func Compare(u, v interface{}) (Ordering, error) {
	x, err := ToRational(u)
	if err != nil {
		return Equal, err
	}
	y, err := ToRational(v)
	if err != nil {
		return Equal, err
	}
	return cmp(x, y), nil
}

// CompareString describes the ordering of u and v as text,
// such as "1/2 < 2/3".
func CompareString(u, v interface{}) (string, error) {
	x, err := ToRational(u)
	if err != nil {
		return "", err
	}
	y, err := ToRational(v)
	if err != nil {
		return "", err
	}
	return fmt.Sprintf("%s %s %s", x, cmp(x, y).Symbol(), y), nil
}
