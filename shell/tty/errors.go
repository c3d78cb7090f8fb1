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

package tty

import (
	"github.com/nabbar/embsh/ercode"
)

const (
	codeNotTTY ercode.CodeError = ercode.MinTTY + iota
	codeTTYFailed
	codeDevTTYFail
)

func init() {
	ercode.RegisterIdFctMessage(ercode.MinTTY, func(c ercode.CodeError) string {
		switch c {
		case codeNotTTY:
			return "reader is not a terminal"
		case codeTTYFailed:
			return "terminal raw-mode configuration failed"
		case codeDevTTYFail:
			return "could not open controlling terminal"
		}
		return ""
	})
}

var (
	// ErrorNotTTY reports a reader that is not backed by a terminal
	// device. New does not return it: a non-terminal reader yields a
	// TTYSaver whose IsTerminal reports false.
	ErrorNotTTY = codeNotTTY.Error()

	// ErrorTTYFailed is returned when the terminal accepted being
	// identified as a tty but raw-mode setup failed.
	ErrorTTYFailed = codeTTYFailed.Error()

	// ErrorDevTTYFail reports a failure to open the controlling terminal
	// (/dev/tty). Nothing in this package opens /dev/tty, so New does not
	// return it.
	ErrorDevTTYFail = codeDevTTYFail.Error()
)
