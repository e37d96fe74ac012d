// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package value

import (
	"fmt"
	"strings"

	"github.com/shopspring/decimal"
)

// Parse converts text to a Rational. It accepts integers ("3"),
// fractions ("-3/4", "1.5/2"), mixed numbers ("1 1/2", "-2 3/4") and
// decimals in plain or exponent form ("0.125", "1e-3"). Decimal text is
// converted exactly, not through float64. A mixed-number input yields a
// value whose mixed display flag is set.
func Parse(s string) (Rational, error) {
	fields := strings.Fields(s)
	switch len(fields) {
	case 1:
		return parseFraction(s, fields[0])
	case 2:
		return parseMixed(s, fields[0], fields[1])
	}
	return Rational{}, fmt.Errorf("%w: %q", ErrSyntax, s)
}

// parseFraction parses "a" or "a/b" where a and b are decimals.
func parseFraction(s, f string) (Rational, error) {
	slash := strings.IndexByte(f, '/')
	if slash < 0 {
		d, err := parseDecimal(s, f)
		if err != nil {
			return Rational{}, err
		}
		return fromDecimal(d)
	}
	num, err := parseDecimal(s, f[:slash])
	if err != nil {
		return Rational{}, err
	}
	den, err := parseDecimal(s, f[slash+1:])
	if err != nil {
		return Rational{}, err
	}
	n, err := fromDecimal(num)
	if err != nil {
		return Rational{}, err
	}
	d, err := fromDecimal(den)
	if err != nil {
		return Rational{}, err
	}
	return quo(n, d)
}

// parseMixed parses "w n/d". The fraction takes the sign of the whole part.
func parseMixed(s, whole, frac string) (Rational, error) {
	if !strings.Contains(frac, "/") || strings.HasPrefix(frac, "-") {
		return Rational{}, fmt.Errorf("%w: %q", ErrSyntax, s)
	}
	w, err := parseFraction(s, whole)
	if err != nil {
		return Rational{}, err
	}
	if !w.IsInt() {
		return Rational{}, fmt.Errorf("%w: %q", ErrSyntax, s)
	}
	f, err := parseFraction(s, frac)
	if err != nil {
		return Rational{}, err
	}
	var z Rational
	if strings.HasPrefix(whole, "-") {
		z, err = sub(w, f)
	} else {
		z, err = add(w, f)
	}
	z.mixed = true
	return z, err
}

func parseDecimal(s, f string) (decimal.Decimal, error) {
	if f == "" {
		return decimal.Decimal{}, fmt.Errorf("%w: %q", ErrSyntax, s)
	}
	d, err := decimal.NewFromString(f)
	if err != nil {
		return decimal.Decimal{}, fmt.Errorf("%w: %q", ErrSyntax, s)
	}
	return d, nil
}

// Decimal returns r as a decimal rounded to the given number of places.
func (r Rational) Decimal(places int32) decimal.Decimal {
	return decimal.New(r.num, 0).DivRound(decimal.New(r.Den(), 0), places)
}

// MarshalText implements encoding.TextMarshaler using String.
func (r Rational) MarshalText() ([]byte, error) {
	return []byte(r.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler using Parse.
func (r *Rational) UnmarshalText(text []byte) error {
	v, err := Parse(string(text))
	if err != nil {
		return err
	}
	*r = v
	return nil
}
