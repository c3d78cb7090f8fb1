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

// Package ercode provides the flat error-code taxonomy shared by every
// embsh component: the registry, the line editor, and the three
// transports. It is a numeric-code error idiom without the
// HTTP-return-mode, gin binding, or stack-trace-pool machinery a
// general-purpose error package would carry, since embsh needs none of
// it.
package ercode

import (
	"sort"
)

// CodeError is a numeric error classification, stable across releases,
// cheap to compare on a constrained target.
type CodeError uint16

// Message renders a human string for a CodeError.
type Message func(code CodeError) string

const (
	// OK is not itself an error; operations that return a CodeError as a
	// plain status value use OK to mean success.
	OK CodeError = 0

	// UnknownMessage is returned for a CodeError with no registered
	// message function.
	UnknownMessage = "unknown error"
)

// Per-package minimum code offsets. Every package that defines its own
// CodeError constants starts its iota block at its Min value so codes
// never collide across packages sharing this taxonomy.
const (
	MinRegistry CodeError = (iota + 1) * 100
	MinSession
	MinTelnet
	MinConsole
	MinSerial
	MinTTY
)

var idMsgFct = make(map[CodeError]Message)

// RegisterIdFctMessage registers the message function covering every code
// greater than or equal to minCode, until the next registered minimum.
func RegisterIdFctMessage(minCode CodeError, fct Message) {
	idMsgFct[minCode] = fct
}

func sortedMinimums() []CodeError {
	res := make([]CodeError, 0, len(idMsgFct))
	for k := range idMsgFct {
		res = append(res, k)
	}
	sort.Slice(res, func(i, j int) bool { return res[i] < res[j] })
	return res
}

func findMinimum(code CodeError) CodeError {
	var res CodeError
	for _, k := range sortedMinimums() {
		if k <= code && k > res {
			res = k
		}
	}
	return res
}

// Message returns the registered message for code, or UnknownMessage.
func (c CodeError) Message() string {
	if c == OK {
		return ""
	}
	if fct, ok := idMsgFct[findMinimum(c)]; ok {
		if m := fct(c); m != "" {
			return m
		}
	}
	return UnknownMessage
}

// Error builds an Error value from the code, optionally wrapping parents.
func (c CodeError) Error(parent ...error) Error {
	return New(c, c.Message(), parent...)
}

// Uint16 returns the raw numeric value.
func (c CodeError) Uint16() uint16 {
	return uint16(c)
}
