// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package value

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPowExact(t *testing.T) {
	var tests = []struct {
		base Rational
		exp  interface{}
		want Rational
	}{
		{Int(2), 10, Int(1024)},
		{Int(2), -2, MustNew(1, 4)},
		{MustNew(2, 3), 3, MustNew(8, 27)},
		{MustNew(2, 3), -2, MustNew(9, 4)},
		{MustNew(-2, 3), 3, MustNew(-8, 27)},
		{Int(0), 0, Int(1)},
		{Int(7), 0, Int(1)},
		{Int(1), 1000, Int(1)},
		{Int(-1), 1001, Int(-1)},
		{Int(2), 62, Int(1 << 62)},
		{Int(3), 2.0, Int(9)},
		{Int(3), MustNew(4, 2), Int(9)},
		{MustNew(4, 9), 0.5, MustNew(2, 3)},
		{MustNew(4, 9), MustNew(-1, 2), MustNew(3, 2)},
		{MustNew(27, 8), MustNew(1, 3), MustNew(3, 2)},
		{Int(16), 0.75, Int(8)},
	}
	for _, test := range tests {
		p, err := test.base.Pow(test.exp)
		require.Nil(t, err, "%s ** %v", test.base, test.exp)
		assert.Equal(t, test.want, p.Rational, "%s ** %v", test.base, test.exp)
		assert.True(t, p.Exact, "%s ** %v", test.base, test.exp)
	}
}

func TestPowInexact(t *testing.T) {
	assert := assert.New(t)

	p, err := Pow(2, 0.5)
	assert.Nil(err)
	assert.False(p.Exact)
	assert.Equal(MustNew(47140, 33333), p.Rational)

	s, err := Int(2).Sqrt()
	assert.Nil(err)
	assert.Equal(p, s)
}

func TestPowErrors(t *testing.T) {
	assert := assert.New(t)

	_, err := Pow(0, -1)
	assert.ErrorIs(err, ErrDivisionByZero)
	_, err = Pow(MustNew(-8, 1), MustNew(1, 3))
	assert.ErrorIs(err, ErrInvalidOperand)
	_, err = Pow(2, 64)
	assert.ErrorIs(err, ErrOverflow)
	_, err = Pow(MustNew(1, 2), -63)
	assert.ErrorIs(err, ErrOverflow)
	_, err = Pow(2, "3")
	assert.ErrorIs(err, ErrTypeMismatch)
	_, err = Pow("2", 3)
	assert.ErrorIs(err, ErrTypeMismatch)
}

func TestPowKeepsMixed(t *testing.T) {
	p, err := MustNew(3, 2).SetMixed(true).Pow(2)
	require.Nil(t, err)
	assert.Equal(t, "2 1/4", p.String())
}

func TestSqrt(t *testing.T) {
	assert := assert.New(t)

	for _, test := range []struct{ in, want Rational }{
		{Int(0), Int(0)},
		{Int(1), Int(1)},
		{MustNew(9, 4), MustNew(3, 2)},
		{Int(144), Int(12)},
		{MustNew(1, 10000), MustNew(1, 100)},
	} {
		p, err := test.in.Sqrt()
		assert.Nil(err)
		assert.True(p.Exact, "sqrt %s", test.in)
		assert.Equal(test.want, p.Rational, "sqrt %s", test.in)
	}
	_, err := Int(-4).Sqrt()
	assert.ErrorIs(err, ErrInvalidOperand)

	// A non-square goes through the converter it is asked on.
	p, err := Converter{Bound: 2, Repeat: 2}.Sqrt(Int(2))
	assert.Nil(err)
	assert.False(p.Exact)
	assert.Equal(MustNew(140, 99), p.Rational)
	p, err = Converter{Bound: 2, Repeat: 2}.Sqrt(MustNew(4, 9))
	assert.Nil(err)
	assert.True(p.Exact)
	assert.Equal(MustNew(2, 3), p.Rational)
}

func TestBinaryPow(t *testing.T) {
	z, err := Binary(MustNew(2, 3), "**", 2)
	require.Nil(t, err)
	assert.Equal(t, MustNew(4, 9), z)
	z, err = Binary(2, "^", -1)
	require.Nil(t, err)
	assert.Equal(t, MustNew(1, 2), z)
	_, err = Binary(1, "?", 2)
	assert.Error(t, err)
	assert.False(t, IsBinaryOp("?"))
	assert.True(t, IsBinaryOp("//"))
}
