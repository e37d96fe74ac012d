// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package value

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParse(t *testing.T) {
	var tests = []struct {
		in    string
		want  Rational
		mixed bool
	}{
		{"3", Int(3), false},
		{"-3/4", MustNew(-3, 4), false},
		{"6/8", MustNew(3, 4), false},
		{"1.5/2", MustNew(3, 4), false},
		{"0.125", MustNew(1, 8), false},
		{"1e-3", MustNew(1, 1000), false},
		{"-2.5E2", Int(-250), false},
		{" 7 ", Int(7), false},
		{"1 1/2", MustNew(3, 2), true},
		{"-2 3/4", MustNew(-11, 4), true},
		{"0 1/3", MustNew(1, 3), true},
	}
	for _, test := range tests {
		got, err := Parse(test.in)
		require.Nil(t, err, "Parse(%q)", test.in)
		assert.True(t, got.Equal(test.want), "Parse(%q) = %s; want %s", test.in, got, test.want)
		assert.Equal(t, test.mixed, got.Mixed(), "Parse(%q) mixed flag", test.in)
	}
}

func TestParseErrors(t *testing.T) {
	for _, in := range []string{"", "abc", "1/", "/2", "1/2/3", "1 2", "1 -1/2", "1.5 1/2", "1 1/2 3", "0x10"} {
		_, err := Parse(in)
		assert.ErrorIs(t, err, ErrSyntax, "Parse(%q)", in)
	}
	_, err := Parse("1/0")
	assert.ErrorIs(t, err, ErrDivisionByZero)
	_, err = Parse("1e30")
	assert.ErrorIs(t, err, ErrOverflow)
	_, err = Parse("1e999999999")
	assert.ErrorIs(t, err, ErrOverflow)
}

func TestDecimal(t *testing.T) {
	assert := assert.New(t)

	assert.Equal("0.3333", MustNew(1, 3).Decimal(4).String())
	assert.Equal("-0.667", MustNew(-2, 3).Decimal(3).String())
	assert.Equal("12", Int(12).Decimal(2).String())
}

func TestText(t *testing.T) {
	type doc struct {
		Half  Rational `json:"half"`
		Whole Rational `json:"whole"`
	}
	data, err := json.Marshal(doc{MustNew(1, 2), MustNew(7, 2).SetMixed(true)})
	require.Nil(t, err)
	assert.Equal(t, `{"half":"1/2","whole":"3 1/2"}`, string(data))

	var d doc
	require.Nil(t, json.Unmarshal(data, &d))
	assert.Equal(t, MustNew(1, 2), d.Half)
	assert.Equal(t, MustNew(7, 2).SetMixed(true), d.Whole)

	err = json.Unmarshal([]byte(`{"half":"1/0"}`), &d)
	assert.ErrorIs(t, err, ErrDivisionByZero)
}
