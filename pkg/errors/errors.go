// Copyright 2026 The Meridian Authors
//
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file or at
// https://opensource.org/licenses/MIT.

// Package errors defines the closed set of error codes used by the signing
// core. Every failure condition is identified by a (module, code) pair so
// that callers can branch on the condition without string matching, and so
// that codes stay stable across releases.
package errors

import (
	"errors"
	"fmt"
)

// Code identifies an error condition. Codes are declared once, in this
// package, and a (module, code) pair must keep its meaning forever.
type Code struct {
	module  string
	code    uint32
	message string
}

// Define declares a new error code.
func Define(module string, code uint32, message string) Code {
	return Code{module: module, code: code, message: message}
}

// Module returns the name of the module the code belongs to.
func (c Code) Module() string { return c.module }

// Value returns the numeric code within the module.
func (c Code) Value() uint32 { return c.code }

// Error implements error so codes can be used as sentinels with errors.Is.
func (c Code) Error() string {
	return fmt.Sprintf("%s: %s", c.module, c.message)
}

// New returns a new error for the code.
func (c Code) New() *Error {
	return &Error{code: c}
}

// WithFormat returns a new error for the code with a formatted detail
// message. A cause wrapped with %w is preserved for errors.Is/As.
func (c Code) WithFormat(format string, args ...interface{}) *Error {
	err := fmt.Errorf(format, args...)
	return &Error{code: c, detail: err.Error(), cause: errors.Unwrap(err)}
}

// Wrap returns a new error for the code with the given cause.
func (c Code) Wrap(cause error) *Error {
	if cause == nil {
		return &Error{code: c}
	}
	return &Error{code: c, detail: cause.Error(), cause: cause}
}

// Error is an instance of a coded failure.
type Error struct {
	code   Code
	detail string
	cause  error
}

// Code returns the error's code.
func (e *Error) Code() Code { return e.code }

func (e *Error) Error() string {
	if e.detail == "" {
		return e.code.Error()
	}
	return fmt.Sprintf("%s: %s: %s", e.code.module, e.code.message, e.detail)
}

func (e *Error) Unwrap() error { return e.cause }

// Is reports whether target is this error's code or another error with the
// same code.
func (e *Error) Is(target error) bool {
	switch t := target.(type) {
	case Code:
		return e.code == t
	case *Error:
		return e.code == t.code
	default:
		return false
	}
}

// Is is a convenience alias for the standard library's errors.Is.
func Is(err, target error) bool { return errors.Is(err, target) }

// As is a convenience alias for the standard library's errors.As.
func As(err error, target any) bool { return errors.As(err, target) }
