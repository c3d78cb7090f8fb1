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
	"fmt"
	"io"
)

// PrintfBufSize is the output router's fixed formatting buffer size: 512
// bytes, including the guaranteed terminating NUL reserved at the final
// byte whenever the formatted message overflows it.
const PrintfBufSize = 512

// Printf is the registry's printf-style output router: it formats into
// a PrintfBufSize buffer, truncating on overflow so the final byte is
// always reserved as a guaranteed NUL terminator, and forwards exactly
// one Write call to w — the per-invocation sink a command was handed.
// A nil sink produces no output and reports a negative count, mirroring
// "no sink installed" returning a negative status. Returns the number of
// bytes actually written, or -1 on a write error.
func Printf(w io.Writer, format string, args ...interface{}) int {
	if w == nil {
		return -1
	}

	var buf [PrintfBufSize]byte
	msg := fmt.Sprintf(format, args...)

	n := copy(buf[:PrintfBufSize-1], msg)
	buf[PrintfBufSize-1] = 0

	written, err := w.Write(buf[:n])
	if err != nil {
		return -1
	}
	return written
}
