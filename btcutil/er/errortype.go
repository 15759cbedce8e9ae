// Copyright (c) 2019 Caleb James DeLisle
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package er

import (
	"fmt"
	"strings"
)

type errorType struct {
	ident string
}

// ErrorType is a family of error codes, typically one per package.
// Callers can ask whether an error belongs to a type with Is.
type ErrorType struct {
	t *errorType
}

// ErrorCode identifies one specific error.  Errors are created from a code
// with New or Default and compared against it with Is.
type ErrorCode struct {
	Ident  string
	Detail string
	Number int
	Type   ErrorType
}

// GenericErrorType is the type for codes which don't need a family of
// their own.
var GenericErrorType = NewErrorType("er.GenericErrorType")

// NewErrorType creates a new error type with the given identifier.
func NewErrorType(ident string) ErrorType {
	return ErrorType{t: &errorType{ident: ident}}
}

// Code creates a new error code belonging to this type.
func (e ErrorType) Code(ident string) *ErrorCode {
	return &ErrorCode{Ident: ident, Type: e}
}

// CodeWithDetail creates a code carrying a human readable description which
// is included in every error created from it.
func (e ErrorType) CodeWithDetail(ident string, detail string) *ErrorCode {
	return &ErrorCode{Ident: ident, Detail: detail, Type: e}
}

// CodeWithNumber creates a code carrying a numeric identifier.
func (e ErrorType) CodeWithNumber(ident string, num int) *ErrorCode {
	return &ErrorCode{Ident: ident, Number: num, Type: e}
}

// Is tells whether err was created from any code of this type.
func (e ErrorType) Is(err R) bool {
	c := codeOf(err)
	return c != nil && c.Type.t == e.t
}

// String returns the identifier of the error type.
func (e ErrorType) String() string {
	return e.t.ident
}

// New creates an error from this code.  The info string describes this
// specific occurrence and wrapped, if not nil, is appended as the cause.
func (c *ErrorCode) New(info string, wrapped R) R {
	parts := make([]string, 0, 4)
	parts = append(parts, c.Ident)
	if c.Detail != "" {
		parts = append(parts, c.Detail)
	}
	if info != "" {
		parts = append(parts, info)
	}
	if wrapped != nil {
		parts = append(parts, wrapped.Message())
	}
	return &err{
		e:      fmt.Errorf("%s", strings.Join(parts, ": ")),
		code:   c,
		bstack: captureStack(),
	}
}

// Default creates an error from this code with no additional information.
func (c *ErrorCode) Default() R {
	return c.New("", nil)
}

// Is tells whether err was created from this exact code.
func (c *ErrorCode) Is(err R) bool {
	return err != nil && codeOf(err) == c
}

// String returns the identifier of the code.
func (c *ErrorCode) String() string {
	return c.Ident
}

var loopBreak = GenericErrorType.CodeWithDetail("er.LoopBreak",
	"iteration stopped early")

// LoopBreak may be returned from a ForEach callback to stop iterating
// without the ForEach returning an error.
var LoopBreak = loopBreak.Default()

// IsLoopBreak tells whether err is LoopBreak.
func IsLoopBreak(err R) bool {
	return loopBreak.Is(err)
}
