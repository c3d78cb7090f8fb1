/*
 * MIT License
 *
 * Copyright (c) 2020 Nicolas JUHEL
 *
 * Permission is hereby granted, free of charge, to any person obtaining a copy
 * of this software and associated documentation files (the "Software"), to deal
 * in the Software without restriction, including without limitation the rights
 * to use, copy, modify, merge, publish, distribute, sublicense, and/or sell
 * copies of the Software, and to permit persons to whom the Software is
 * furnished to do so, subject to the following conditions:
 *
 * The above copyright notice and this permission notice shall be included in all
 * copies or substantial portions of the Software.
 *
 * THE SOFTWARE IS PROVIDED "AS IS", WITHOUT WARRANTY OF ANY KIND, EXPRESS OR
 * IMPLIED, INCLUDING BUT NOT LIMITED TO THE WARRANTIES OF MERCHANTABILITY,
 * FITNESS FOR A PARTICULAR PURPOSE AND NONINFRINGEMENT. IN NO EVENT SHALL THE
 * AUTHORS OR COPYRIGHT HOLDERS BE LIABLE FOR ANY CLAIM, DAMAGES OR OTHER
 * LIABILITY, WHETHER IN AN ACTION OF CONTRACT, TORT OR OTHERWISE, ARISING FROM,
 * OUT OF OR IN CONNECTION WITH THE SOFTWARE OR THE USE OR OTHER DEALINGS IN THE
 * SOFTWARE.
 *
 */

package ercode

import (
	"fmt"
)

// Error is the flat error type every embsh package returns at its
// fallible boundaries. It carries a stable code and an optional parent,
// but never a hierarchy beyond one level — the taxonomy is flat by
// design.
type Error interface {
	error
	Code() CodeError
	Unwrap() error
}

type ers struct {
	c CodeError
	m string
	p error
}

// New builds an Error with the given code and message, wrapping the
// first non-nil parent if any are given.
func New(code CodeError, msg string, parent ...error) Error {
	var p error
	for _, e := range parent {
		if e != nil {
			p = e
			break
		}
	}
	return &ers{c: code, m: msg, p: p}
}

// Newf is New with printf-style formatting of msg.
func Newf(code CodeError, format string, args ...interface{}) Error {
	return &ers{c: code, m: fmt.Sprintf(format, args...)}
}

func (e *ers) Code() CodeError {
	return e.c
}

func (e *ers) Unwrap() error {
	return e.p
}

func (e *ers) Error() string {
	if e.p != nil {
		return fmt.Sprintf("[%d] %s: %s", e.c.Uint16(), e.m, e.p.Error())
	}
	return fmt.Sprintf("[%d] %s", e.c.Uint16(), e.m)
}

// Is reports whether target carries the same CodeError, comparing codes
// directly rather than falling back to trace or message matching.
func (e *ers) Is(target error) bool {
	if other, ok := target.(Error); ok {
		return e.c == other.Code()
	}
	return false
}
