// Copyright 2023 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Verify that QuoRem satisfies the identity
//	quo = x div y  such that
//	rem = x - y*quo  with 0 <= rem < |y|
// See doc for math/big.Int.DivMod.

package value

import "testing"

type pair struct {
	x, y Rational
}

var quoRemTests = []pair{
	// We run all the tests with all four signs for 5, 3.
	// The correct results are:
	// 5,3 -> quo 1 rem 2
	// -5,3 -> quo -2 rem 1
	// 5,-3 -> quo -1 rem 2
	// -5,-3 -> quo 2 rem 1
	{Int(5), Int(3)},
	{Int(-5), Int(3)},
	{Int(5), Int(-3)},
	{Int(-5), Int(-3)},
	// Now check that they work with remainder 0.
	// 5,5 -> quo 1 rem 0
	// -5,5 -> quo -1 rem 0
	// 5,-5 -> quo -1 rem 0
	// -5,-5 -> quo 1 rem 0
	{Int(5), Int(5)},
	{Int(-5), Int(5)},
	{Int(5), Int(-5)},
	{Int(-5), Int(-5)},
	// Fractions.
	{MustNew(7, 2), Int(1)},
	{MustNew(-7, 2), Int(1)},
	{MustNew(7, 2), MustNew(-2, 3)},
	{MustNew(-7, 2), MustNew(-2, 3)},
	{MustNew(1, 3), MustNew(1, 2)},
	{Int(0), MustNew(5, 7)},
}

func TestQuoRem(t *testing.T) {
	for _, test := range quoRemTests {
		verifyQuoRem(t, test.x, test.y)
	}
}

func verifyQuoRem(t *testing.T, x, y Rational) {
	t.Helper()
	quo, rem, err := x.QuoRem(y)
	if err != nil {
		t.Fatalf("%s QuoRem %s: %v", x, y, err)
	}
	if !quo.IsInt() {
		t.Errorf("%s QuoRem %s = %s,%s (quotient not an integer)", x, y, quo, rem)
	}
	absY, _ := y.Abs()
	if rem.Sign() < 0 || cmp(rem, absY) >= 0 {
		t.Errorf("%s QuoRem %s = %s,%s (remainder out of range)", x, y, quo, rem)
	}
	yq, _ := y.Mul(quo)
	expect, _ := x.Sub(yq)
	if !rem.Equal(expect) {
		t.Errorf("%s QuoRem %s = %s,%s yielding %s", x, y, quo, rem, expect)
	}
	mod, err := x.Mod(y)
	if err != nil || !mod.Equal(rem) {
		t.Errorf("%s Mod %s = %s, %v; want %s", x, y, mod, err, rem)
	}
}

func TestQuoRemSigns(t *testing.T) {
	var tests = []struct {
		x, y, quo, rem int64
	}{
		{5, 3, 1, 2},
		{-5, 3, -2, 1},
		{5, -3, -1, 2},
		{-5, -3, 2, 1},
	}
	for _, test := range tests {
		quo, rem, err := Int(test.x).QuoRem(test.y)
		if err != nil {
			t.Fatal(err)
		}
		if quo != Int(test.quo) || rem != Int(test.rem) {
			t.Errorf("%d QuoRem %d = %s,%s; want %d,%d", test.x, test.y, quo, rem, test.quo, test.rem)
		}
	}
}

func TestQuoRemByZero(t *testing.T) {
	if _, _, err := Int(1).QuoRem(0); err != ErrDivisionByZero {
		t.Errorf("1 QuoRem 0: got %v; want %v", err, ErrDivisionByZero)
	}
	if _, err := MustNew(1, 2).Mod(Int(0)); err != ErrDivisionByZero {
		t.Errorf("1/2 Mod 0: got %v; want %v", err, ErrDivisionByZero)
	}
}
