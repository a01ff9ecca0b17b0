// Package dbcoreerr implements the error model shared by the layout, btree,
// and planner cores: an error code plus an optional wrapped cause.
package dbcoreerr

import (
	"errors"
	"fmt"
)

// ErrCode identifies the kind of failure.
type ErrCode int

const (
	// Layout errors (1000-1999)
	ErrCodeEmptyTypeList    ErrCode = 1000 // no attribute types given to a layout factory
	ErrCodeZeroAlignment    ErrCode = 1001 // a type descriptor reports zero alignment
	ErrCodeBlockTooSmall    ErrCode = 1002 // PAX block size cannot hold a single tuple (N < 1)
	ErrCodeLayoutShape      ErrCode = 1003 // host DataLayout builder rejected the emitted shape

	// B+-tree errors (2000-2999)
	ErrCodeUnsortedInput  ErrCode = 2000 // Bulkload input keys are not non-decreasing
	ErrCodeNodeTooSmall   ErrCode = 2001 // NodeSizeInBytes cannot hold fanout >= 2

	// Planner errors (3000-3999)
	ErrCodeUnseededSingleton ErrCode = 3000 // a singleton subset has no PlanTable entry
)

var errCodeMessages = map[ErrCode]string{
	ErrCodeEmptyTypeList: "layout factory requires at least one attribute type",
	ErrCodeZeroAlignment: "type descriptor has zero alignment",
	ErrCodeBlockTooSmall: "block size too small to hold a single tuple",
	ErrCodeLayoutShape:   "emitted layout shape rejected by host DataLayout builder",

	ErrCodeUnsortedInput: "bulkload input keys are not non-decreasing",
	ErrCodeNodeTooSmall:  "node size too small to guarantee fanout >= 2",

	ErrCodeUnseededSingleton: "singleton subset missing from plan table",
}

// Error carries a code, a human-readable message, and an optional cause.
type Error struct {
	Code    ErrCode
	Message string
	Cause   error
}

func (e *Error) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("[%d] %s: %v", e.Code, e.Message, e.Cause)
	}
	return fmt.Sprintf("[%d] %s", e.Code, e.Message)
}

func (e *Error) Unwrap() error { return e.Cause }

// Is reports whether target is an *Error with the same code.
func (e *Error) Is(target error) bool {
	t, ok := target.(*Error)
	if !ok {
		return false
	}
	return e.Code == t.Code
}

// New creates an error carrying code and an optional cause.
func New(code ErrCode, cause error) *Error {
	msg, ok := errCodeMessages[code]
	if !ok {
		msg = "unknown error"
	}
	return &Error{Code: code, Message: msg, Cause: cause}
}

// Newf creates an error with a formatted message. If the final arg is an
// error, it becomes the Cause and is removed from the formatted output.
func Newf(code ErrCode, format string, args ...any) *Error {
	var cause error
	if len(args) > 0 {
		if err, ok := args[len(args)-1].(error); ok {
			cause = err
			args = args[:len(args)-1]
		}
	}
	return &Error{Code: code, Message: fmt.Sprintf(format, args...), Cause: cause}
}

// Code extracts the ErrCode from err, or 0 if err is not an *Error.
func Code(err error) ErrCode {
	var e *Error
	if errors.As(err, &e) {
		return e.Code
	}
	return 0
}

// Is reports whether err is an *Error carrying the given code.
func Is(err error, code ErrCode) bool {
	return Code(err) == code
}
