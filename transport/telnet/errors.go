/*
MIT License

Copyright (c) 2019 Nicolas JUHEL

Permission is hereby granted, free of charge, to any person obtaining a copy
of this software and associated documentation files (the "Software"), to deal
in the Software without restriction, including without limitation the rights
to use, copy, modify, merge, publish, distribute, sublicense, and/or sell
copies of the Software, and to permit persons to whom the Software is
furnished to do so, subject to the following conditions:

The above copyright notice and this permission notice shall be included in all
copies or substantial portions of the Software.

THE SOFTWARE IS PROVIDED "AS IS", WITHOUT WARRANTY OF ANY KIND, EXPRESS OR
IMPLIED, INCLUDING BUT NOT LIMITED TO THE WARRANTIES OF MERCHANTABILITY,
FITNESS FOR A PARTICULAR PURPOSE AND NONINFRINGEMENT. IN NO EVENT SHALL THE
AUTHORS OR COPYRIGHT HOLDERS BE LIABLE FOR ANY CLAIM, DAMAGES OR OTHER
LIABILITY, WHETHER IN AN ACTION OF CONTRACT, TORT OR OTHERWISE, ARISING FROM,
OUT OF OR IN CONNECTION WITH THE SOFTWARE OR THE USE OR OTHER DEALINGS IN THE
SOFTWARE.
*/

package telnet

import (
	"github.com/nabbar/embsh/ercode"
)

const (
	codeTooManySessions ercode.CodeError = ercode.MinTelnet + iota
	codeAuthFailed
	codeListenFailed
)

func init() {
	ercode.RegisterIdFctMessage(ercode.MinTelnet, func(c ercode.CodeError) string {
		switch c {
		case codeTooManySessions:
			return "too many concurrent sessions"
		case codeAuthFailed:
			return "authentication failed"
		case codeListenFailed:
			return "failed to bind the listening socket"
		}
		return ""
	})
}

var (
	ErrTooManySessions = codeTooManySessions.Error()
	ErrAuthFailed      = codeAuthFailed.Error()
	ErrListenFailed    = codeListenFailed.Error()
)
