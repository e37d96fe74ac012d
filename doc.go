// Copyright 2014 Rob Pike. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

/*
Frac is a calculator for exact fractions.

Every value is a fraction of two 64-bit integers kept in lowest terms with a
positive denominator. Values may be entered as integers (3, -1), fractions
(1/3, -45/67, with no spaces around the slash), mixed numbers (1 1/2) or
decimals (0.75, 1e-3); decimals are converted exactly, so 0.1 is 1/10.
A result that does not fit in 64 bits is an error, never a wrapped value.

Semicolons separate multiple statements on a line. Variables are alphanumeric and
are assigned with the = operator. The variable _ holds the most recent result.
A # starts a comment that runs to the end of the line.

Binary operators, from lowest to highest precedence:

	+ -         Sum and difference
	* /         Product and quotient
	//          Quotient; for fractions it is the same as /
	%           Euclidean remainder, with 0 <= a%b < |b|
	** ^        Power, right-associative

Unary operators and functions bind more loosely than ** and more tightly
than the other binary operators, so -2**2 is -4.

	-           Negation
	abs         Absolute value
	inv         Reciprocal
	int         Integer part, truncating toward zero
	sqrt        Square root; exact for perfect squares
	float       The value rounded through float64 and converted back

A power with a non-integral exponent is computed in floating point and
converted back to a fraction by searching denominators up to a bound
(10000 by default) for one that makes the value integral. If none does,
the first few decimal places (5 by default) are treated as a repeating
block. Such results are approximations.

The statement

	a cmp b

prints the comparison of a and b, such as "1/2 < 2/3".

Special commands begin with a right parenthesis as the first character
of a line:

	)bound [n]          Set or print the largest denominator tried for decimals
	)clear              Delete all variables
	)debug [name]       Toggle a debug flag: cpu inexact panic parse
	)format ["fmt"]     Print results with a fmt verb such as %.4f, %x or %v
	)get [file]         Load variables written by )save (default save.frac)
	)glyph [on|off]     Print fractions with Unicode glyphs, as ³⁄₄
	)help               Print a summary
	)log [level]        Set or print the log level
	)mixed [on|off]     Print improper fractions as mixed numbers, as 1 1/2
	)prompt "text"      Set the prompt
	)repeat [n]         Set or print the digits taken as a repeating block
	)save [file]        Save variables (default save.frac)
	)vars               Print the variables

Settings may also be read from a TOML file given with -config:

	prompt = "frac> "

	[display]
	mixed = true

	[convert]
	bound = 10000
	repeat = 5

	[log]
	level = 1

The convert subcommand prints the fraction for each decimal argument:

	frac convert 0.75 0.333333333

The demo subcommand steps through a tour of frac, one line each time
return is pressed. Typing an expression evaluates it instead, and quit
ends the demo.
*/
package main
