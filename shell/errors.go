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

package shell

import (
	"github.com/nabbar/embsh/ercode"
)

const (
	codeDuplicateName ercode.CodeError = ercode.MinRegistry + iota
	codeRegistryFull
	codeTooManyArgs
	codeUnbalancedQuote
)

func init() {
	ercode.RegisterIdFctMessage(ercode.MinRegistry, func(c ercode.CodeError) string {
		switch c {
		case codeDuplicateName:
			return "a command is already registered under this name"
		case codeRegistryFull:
			return "registry has reached its maximum number of entries"
		case codeTooManyArgs:
			return "input line exceeds the maximum argument count"
		case codeUnbalancedQuote:
			return "input line has an unterminated quote"
		}
		return ""
	})
}

var (
	// ErrDuplicateName is returned by Add when a name is already
	// registered.
	ErrDuplicateName = codeDuplicateName.Error()

	// ErrRegistryFull is returned by Add once the registry's capacity
	// (the maxEntries given to NewSized, DefaultMaxEntries for New) is
	// reached.
	ErrRegistryFull = codeRegistryFull.Error()

	// ErrTooManyArgs is returned by Split when a line tokenizes into more
	// than argCap arguments (DefaultArgCap when argCap <= 0).
	ErrTooManyArgs = codeTooManyArgs.Error()

	// ErrUnbalancedQuote is returned by Split when a quoted argument is
	// never closed.
	ErrUnbalancedQuote = codeUnbalancedQuote.Error()
)
