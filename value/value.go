// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package value

import "fmt"

// Error is the type of the errors returned by this package.
// The sentinel errors below are all of this type and can be
// matched with errors.Is after wrapping.
type Error string

func (err Error) Error() string {
	return string(err)
}

func Errorf(format string, args ...interface{}) Error {
	return Error(fmt.Sprintf(format, args...))
}

const (
	ErrDivisionByZero = Error("division by zero")
	ErrInvalidOperand = Error("invalid operand")
	ErrTypeMismatch   = Error("type mismatch")
	ErrOverflow       = Error("value out of int64 range")
	ErrSyntax         = Error("rational number syntax")
)

// TypeMismatchError reports an operand whose type cannot be turned into
// a Rational. It matches ErrTypeMismatch.
type TypeMismatchError struct {
	Type string // The Go type of the operand, as printed by %T.
}

func (e *TypeMismatchError) Error() string {
	return fmt.Sprintf("expected rational operand, got %s", e.Type)
}

func (e *TypeMismatchError) Is(target error) bool {
	return target == ErrTypeMismatch
}
