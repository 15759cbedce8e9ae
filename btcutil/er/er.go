// Copyright (c) 2019 Caleb James DeLisle
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package er is the error handling package used throughout sidechaind.
// Every fallible function returns an er.R rather than a plain error so that
// errors can be identified by code (see ErrorType and ErrorCode) and carry
// a stack trace when ENABLE_STACKTRACE is set in the environment.
package er

import (
	"errors"
	"fmt"
	"os"
	"runtime/debug"
	"strings"
)

var stacktraceDisabled = []string{"No stack, ENABLE_STACKTRACE not set"}

type err struct {
	e      error
	code   *ErrorCode
	bstack []byte
}

// R is the error type returned by sidechaind functions.
type R interface {
	Message() string
	Stack() []string
	String() string
	Wrapped0() error
	Native() error
}

func (e *err) Stack() []string {
	if e.bstack == nil {
		return stacktraceDisabled
	}
	return strings.Split(string(e.bstack), "\n")
}

func (e *err) Message() string {
	return e.e.Error()
}

func (e *err) String() string {
	if e.bstack != nil {
		return fmt.Sprintf("%s\n%s", e.e.Error(), strings.Join(e.Stack(), "\n"))
	}
	return e.e.Error()
}

// Error makes *err usable where a native error is expected, the returned
// string never contains the stack.
func (e *err) Error() string {
	return e.e.Error()
}

func (e *err) Wrapped0() error {
	return e.e
}

func (e *err) Native() error {
	return e
}

func captureStack() []byte {
	if os.Getenv("ENABLE_STACKTRACE") == "" {
		return nil
	}
	return debug.Stack()
}

// Wrapped returns the underlying native error of err, or nil.
func Wrapped(err R) error {
	if err == nil {
		return nil
	}
	return err.Wrapped0()
}

// Native converts an er.R into a plain error, nil stays nil.
func Native(err R) error {
	if err == nil {
		return nil
	}
	return err.Native()
}

// New creates an uncoded error with the given message.
func New(s string) R {
	return &err{
		e:      errors.New(s),
		bstack: captureStack(),
	}
}

// Errorf creates an uncoded error from a format string.
func Errorf(format string, a ...interface{}) R {
	return &err{
		e:      fmt.Errorf(format, a...),
		bstack: captureStack(),
	}
}

// E wraps a native error, returning nil if e is nil.
func E(e error) R {
	if e == nil {
		return nil
	}
	if r, ok := e.(*err); ok {
		return r
	}
	return &err{
		e:      e,
		bstack: captureStack(),
	}
}

// Equals tells whether two errors carry the same code, or when neither
// carries a code, the same message.
func Equals(a, b R) bool {
	if a == nil || b == nil {
		return a == nil && b == nil
	}
	ca, cb := codeOf(a), codeOf(b)
	if ca != nil || cb != nil {
		return ca == cb
	}
	return a.Message() == b.Message()
}

func codeOf(e R) *ErrorCode {
	if x, ok := e.(*err); ok {
		return x.code
	}
	return nil
}
