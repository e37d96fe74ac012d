// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package value

import (
	"fmt"
	"strconv"
	"strings"
)

// String returns the mixed form of r if its mixed flag is set,
// and the plain form otherwise.
func (r Rational) String() string {
	if r.mixed {
		return r.MixedString()
	}
	return r.PlainString()
}

// PlainString returns "num/den", or just "num" for integers.
func (r Rational) PlainString() string {
	if r.IsInt() {
		return strconv.FormatInt(r.num, 10)
	}
	return strconv.FormatInt(r.num, 10) + "/" + strconv.FormatInt(r.Den(), 10)
}

// MixedString returns r as a mixed number such as "2 1/2" or "-2 1/2".
// Proper fractions and integers are rendered as by PlainString.
// The whole part is truncated toward zero and the remainder is shown
// without its sign.
func (r Rational) MixedString() string {
	num, den := r.num, r.Den()
	if -den <= num && num <= den {
		return r.PlainString()
	}
	whole, rem := num/den, num%den
	if rem == 0 {
		return strconv.FormatInt(whole, 10)
	}
	if rem < 0 {
		rem = -rem
	}
	return fmt.Sprintf("%d %d/%d", whole, rem, den)
}

// GlyphString returns r with a superscript numerator and subscript
// denominator joined by U+2044 FRACTION SLASH, as in "³⁄₄".
// Integers are rendered as a superscript alone.
func (r Rational) GlyphString() string {
	// The inputs are decimal integers, which always have glyphs.
	num, _ := Superscript(strconv.FormatInt(r.num, 10))
	if r.IsInt() {
		return num
	}
	den, _ := Subscript(strconv.FormatInt(r.Den(), 10))
	return num + fractionSlash + den
}

const fractionSlash = "⁄"

var (
	superscriptDigits = [10]rune{'⁰', '¹', '²', '³', '⁴', '⁵', '⁶', '⁷', '⁸', '⁹'}
	subscriptDigits   = [10]rune{'₀', '₁', '₂', '₃', '₄', '₅', '₆', '₇', '₈', '₉'}
)

const (
	superscriptMinus = '⁻'
	subscriptMinus   = '₋'
)

// Superscript maps each decimal digit and minus sign in s to its
// superscript form. Any other character is an error.
func Superscript(s string) (string, error) {
	return glyphs(s, "superscript", &superscriptDigits, superscriptMinus)
}

// Subscript maps each decimal digit and minus sign in s to its
// subscript form. Any other character is an error.
func Subscript(s string) (string, error) {
	return glyphs(s, "subscript", &subscriptDigits, subscriptMinus)
}

func glyphs(s, kind string, digits *[10]rune, minus rune) (string, error) {
	var b strings.Builder
	for _, c := range s {
		switch {
		case '0' <= c && c <= '9':
			b.WriteRune(digits[c-'0'])
		case c == '-':
			b.WriteRune(minus)
		default:
			return "", fmt.Errorf("%w: no %s glyph for %q", ErrInvalidOperand, kind, c)
		}
	}
	return b.String(), nil
}

// Format implements fmt.Formatter. The verbs are:
//
//	%v %s   String
//	%q      quoted String
//	%d %x %X %o %b  numerator and denominator formatted separately
//	%f %F   exact decimal expansion, rounded to the precision (default 6)
//	%e %E %g %G     the float64 value
//
// Width and the '-' flag pad the whole result.
func (r Rational) Format(s fmt.State, verb rune) {
	switch verb {
	case 'v', 's':
		pad(s, r.String())
	case 'q':
		pad(s, strconv.Quote(r.String()))
	case 'd', 'x', 'X', 'o', 'b':
		// Like applying the format to a vector of num and den.
		str := fmt.Sprintf(fmt.FormatString(s, verb), r.num)
		if !r.IsInt() {
			str += "/" + fmt.Sprintf(fmt.FormatString(s, verb), r.Den())
		}
		fmt.Fprint(s, str)
	case 'f', 'F':
		prec, ok := s.Precision()
		if !ok {
			prec = 6
		}
		str := r.Decimal(int32(prec)).StringFixed(int32(prec))
		if s.Flag('+') && r.num >= 0 {
			str = "+" + str
		}
		pad(s, str)
	case 'e', 'E', 'g', 'G':
		fmt.Fprintf(s, fmt.FormatString(s, verb), r.Float64())
	default:
		fmt.Fprintf(s, "%%!%c(value.Rational=%s)", verb, r.PlainString())
	}
}

// pad writes str to s, honoring the width and '-' flag of s.
func pad(s fmt.State, str string) {
	w, ok := s.Width()
	n := len([]rune(str))
	if !ok || w <= n {
		fmt.Fprint(s, str)
		return
	}
	fill := strings.Repeat(" ", w-n)
	if s.Flag('-') {
		fmt.Fprint(s, str+fill)
		return
	}
	fmt.Fprint(s, fill+str)
}
