// Copyright 2014 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package exec

import (
	"fmt"

	"github.com/zmath/frac/logger"
	"github.com/zmath/frac/value"
)

// Expr is a node of a parsed expression.
type Expr interface {
	// String returns the expression in an unambiguous form for debugging.
	String() string

	Eval(c *Context) (value.Rational, error)
}

// A Statement is one of the ;-separated elements of an input line:
// an expression, an assignment, or a comparison of two expressions.
type Statement struct {
	Assign string // Variable being assigned, if any.
	Expr   Expr
	Cmp    Expr // Right operand of "cmp", if any.
}

func (s *Statement) String() string {
	switch {
	case s.Assign != "":
		return fmt.Sprintf("(%s = %s)", s.Assign, s.Expr)
	case s.Cmp != nil:
		return fmt.Sprintf("(%s cmp %s)", s.Expr, s.Cmp)
	}
	return s.Expr.String()
}

// Literal is a number from the input.
type Literal struct {
	Value value.Rational
}

func (l Literal) String() string {
	return fmt.Sprintf("<%s>", l.Value.PlainString())
}

func (l Literal) Eval(*Context) (value.Rational, error) {
	return l.Value, nil
}

// VarExpr identifies a variable to be looked up and evaluated.
type VarExpr struct {
	Name string
}

func (e *VarExpr) String() string {
	return fmt.Sprintf("<var %s>", e.Name)
}

func (e *VarExpr) Eval(c *Context) (value.Rational, error) {
	v, ok := c.Lookup(e.Name)
	if !ok {
		return value.Rational{}, value.Errorf("undefined variable %q", e.Name)
	}
	return v, nil
}

// UnaryExpr is a prefix operator or function applied to one operand.
type UnaryExpr struct {
	Op    string
	Right Expr
}

func (e *UnaryExpr) String() string {
	return fmt.Sprintf("(%s %s)", e.Op, e.Right)
}

func (e *UnaryExpr) Eval(c *Context) (value.Rational, error) {
	v, err := e.Right.Eval(c)
	if err != nil {
		return value.Rational{}, err
	}
	fn := unaryFns[e.Op]
	if fn == nil {
		return value.Rational{}, value.Errorf("unknown unary operator %q", e.Op)
	}
	return fn(c, v)
}

// unaryFns are the prefix operators and the functions of one argument.
var unaryFns = map[string]func(c *Context, v value.Rational) (value.Rational, error){
	"-": func(_ *Context, v value.Rational) (value.Rational, error) {
		return v.Neg()
	},
	"abs": func(_ *Context, v value.Rational) (value.Rational, error) {
		return v.Abs()
	},
	"inv": func(_ *Context, v value.Rational) (value.Rational, error) {
		return v.Inv()
	},
	"int": func(_ *Context, v value.Rational) (value.Rational, error) {
		return value.Int(v.Int64()).SetMixed(v.Mixed()), nil
	},
	"float": func(c *Context, v value.Rational) (value.Rational, error) {
		z, err := c.Converter().FromDecimal(v.Float64())
		if err != nil {
			return value.Rational{}, err
		}
		return z.SetMixed(v.Mixed()), nil
	},
	"sqrt": func(c *Context, v value.Rational) (value.Rational, error) {
		p, err := c.Converter().Sqrt(v)
		if err != nil {
			return value.Rational{}, err
		}
		if !p.Exact {
			c.inexact("sqrt %s", v.PlainString())
		}
		return p.Rational, nil
	},
}

// IsFunction reports whether name is a function of one argument.
func IsFunction(name string) bool {
	return name != "-" && unaryFns[name] != nil
}

// BinaryExpr is an infix operator applied to two operands.
type BinaryExpr struct {
	Op    string
	Left  Expr
	Right Expr
}

func (e *BinaryExpr) String() string {
	return fmt.Sprintf("(%s %s %s)", e.Left, e.Op, e.Right)
}

func (e *BinaryExpr) Eval(c *Context) (value.Rational, error) {
	u, err := e.Left.Eval(c)
	if err != nil {
		return value.Rational{}, err
	}
	v, err := e.Right.Eval(c)
	if err != nil {
		return value.Rational{}, err
	}
	conv := c.Converter()
	switch e.Op {
	case "**", "^":
		p, err := conv.Pow(u, v)
		if err != nil {
			return value.Rational{}, err
		}
		if !p.Exact {
			c.inexact("%s ** %s", u.PlainString(), v.PlainString())
		}
		return p.Rational, nil
	}
	return conv.Binary(u, e.Op, v)
}

// inexact notes that a result was approximated through floating point.
func (c *Context) inexact(format string, args ...interface{}) {
	msg := fmt.Sprintf(format, args...)
	logger.Verbosef("inexact result: %s", msg)
	if c.config.Debug("inexact") {
		fmt.Fprintf(c.config.ErrOutput(), "inexact: %s\n", msg)
	}
}
