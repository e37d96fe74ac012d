// Copyright 2023 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package value

import (
	"math/big"
	"testing"

	"github.com/stretchr/testify/assert"
)

type orderTest struct {
	u, v interface{}
	want Ordering
}

var (
	int1 = Int(1)
	int2 = Int(2)
	int3 = Int(3)

	rat1o7 = MustNew(1, 7)
	rat2o7 = MustNew(2, 7)
	rat3o7 = MustNew(3, 7)

	ratNeg1o2 = MustNew(-1, 2)
)

func TestOrderedCompare(t *testing.T) {
	var tests = []orderTest{
		{int1, int1, Equal},
		{int1, int2, Less},
		{int1, int3, Less},
		{int2, int1, Greater},
		{int2, int2, Equal},
		{int3, int2, Greater},

		{rat1o7, rat1o7, Equal},
		{rat1o7, rat2o7, Less},
		{rat1o7, rat3o7, Less},
		{rat2o7, rat1o7, Greater},
		{rat3o7, rat2o7, Greater},

		{ratNeg1o2, rat1o7, Less},
		{rat1o7, ratNeg1o2, Greater},
		{ratNeg1o2, MustNew(-2, 4), Equal},

		// Mixed types.
		{int1, 1, Equal},
		{rat1o7, 0.5, Less},
		{0.5, MustNew(1, 2), Equal},
		{int3, big.NewRat(22, 7), Less},
		{int64(-1), ratNeg1o2, Less},
		{uint8(2), big.NewInt(2), Equal},

		// Cross products beyond int64.
		{MustNew(9223372036854775806, 9223372036854775807), MustNew(9223372036854775805, 9223372036854775806), Greater},
	}
	for _, test := range tests {
		got, err := Compare(test.u, test.v)
		if err != nil {
			t.Errorf("Compare(%v, %v): %v", test.u, test.v, err)
			continue
		}
		if got != test.want {
			t.Errorf("Compare(%v, %v) = %s; want %s", test.u, test.v, got, test.want)
		}
	}
}

// Exactly one ordering holds, it is antisymmetric, and it agrees with float64.
func TestOrderingConsistency(t *testing.T) {
	for _, a := range samples {
		for _, b := range samples {
			ab, err := a.Cmp(b)
			assert.Nil(t, err)
			ba, err := b.Cmp(a)
			assert.Nil(t, err)
			if ab != -ba {
				t.Errorf("%s cmp %s = %s but %s cmp %s = %s", a, b, ab, b, a, ba)
			}
			fa, fb := a.Float64(), b.Float64()
			switch ab {
			case Less:
				assert.Less(t, fa, fb)
			case Greater:
				assert.Greater(t, fa, fb)
			case Equal:
				assert.Equal(t, fa, fb)
				assert.True(t, a.Equal(b))
			default:
				t.Errorf("%s cmp %s = %d", a, b, ab)
			}
		}
	}
}

func TestCompareString(t *testing.T) {
	assert := assert.New(t)

	s, err := CompareString(MustNew(1, 3), MustNew(1, 2))
	assert.Nil(err)
	assert.Equal("1/3 < 1/2", s)
	s, err = CompareString(0.5, MustNew(2, 4))
	assert.Nil(err)
	assert.Equal("1/2 = 1/2", s)
	s, err = CompareString(MustNew(5, 2).SetMixed(true), 1)
	assert.Nil(err)
	assert.Equal("2 1/2 > 1", s)

	_, err = CompareString(1, "2")
	assert.ErrorIs(err, ErrTypeMismatch)
	_, err = Int(1).Cmp(struct{}{})
	assert.ErrorIs(err, ErrTypeMismatch)
}

func TestOrderingNames(t *testing.T) {
	assert := assert.New(t)

	assert.Equal("Less", Less.String())
	assert.Equal("Equal", Equal.String())
	assert.Equal("Greater", Greater.String())
	assert.Equal("Ordering(7)", Ordering(7).String())
	assert.Equal("<", Less.Symbol())
	assert.Equal("=", Equal.Symbol())
	assert.Equal(">", Greater.Symbol())
}
