/*******************************************************************************
* Copyright (C) 2026 the structuredgrant Authors and Fraunhofer IESE
*
* Permission is hereby granted, free of charge, to any person obtaining
* a copy of this software and associated documentation files (the
* "Software"), to deal in the Software without restriction, including
* without limitation the rights to use, copy, modify, merge, publish,
* distribute, sublicense, and/or sell copies of the Software, and to
* permit persons to whom the Software is furnished to do so, subject to
* the following conditions:
*
* The above copyright notice and this permission notice shall be
* included in all copies or substantial portions of the Software.
*
* THE SOFTWARE IS PROVIDED "AS IS", WITHOUT WARRANTY OF ANY KIND,
* EXPRESS OR IMPLIED, INCLUDING BUT NOT LIMITED TO THE WARRANTIES OF
* MERCHANTABILITY, FITNESS FOR A PARTICULAR PURPOSE AND
* NONINFRINGEMENT. IN NO EVENT SHALL THE AUTHORS OR COPYRIGHT HOLDERS BE
* LIABLE FOR ANY CLAIM, DAMAGES OR OTHER LIABILITY, WHETHER IN AN ACTION
* OF CONTRACT, TORT OR OTHERWISE, ARISING FROM, OUT OF OR IN CONNECTION
* WITH THE SOFTWARE OR THE USE OR OTHER DEALINGS IN THE SOFTWARE.
*
* SPDX-License-Identifier: MIT
******************************************************************************/

// Package model defines the typed tree of the structured grant language:
// Principal, Criterion, and Rule, along with their dict/JSON construction
// and serialization.
package model

import "fmt"

// PreconditionViolation is raised when a caller-supplied value violates a
// documented constraint of the data model: an empty Principal, a Criterion
// with zero or more than one shape specified, a malformed field type, and
// so on. There is no recovery path; the caller either corrects the input
// or the call was invalid.
type PreconditionViolation struct {
	Msg string
}

func (e *PreconditionViolation) Error() string {
	return e.Msg
}

// NewPreconditionViolation builds a *PreconditionViolation with a formatted
// message, mirroring the teacher's RequiredError/ParsingError constructors
// in shape: a small struct with an Error() method, built via a helper
// rather than a raw errors.New at every call site.
func NewPreconditionViolation(format string, args ...any) error {
	return &PreconditionViolation{Msg: fmt.Sprintf(format, args...)}
}
