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

package session

import (
	"github.com/nabbar/embsh/logging"
	"github.com/nabbar/embsh/shell"
)

// ExecuteLine tokenizes the current line buffer and dispatches it:
// exit/quit are handled as built-ins before the registry is consulted.
// On a registry hit, the registry itself becomes the output sink
// (installed implicitly — it writes straight to s, the session's own
// io.Writer, rather than through a thread-local binding a Go goroutine
// has no use for). On a miss, an "unknown command" line is written
// directly to the session.
func (s *Session) ExecuteLine() {
	line := string(s.line)
	s.line = s.line[:0]

	args, err := shell.Split(line, 0)
	if err != nil {
		s.Log.WithFields(logging.Fields{"session": s.ID}).Warn("failed to tokenize line: %v", err)
		s.writeString("unknown command: " + line + "\r\n")
		return
	}
	if len(args) == 0 {
		return
	}

	switch args[0] {
	case "exit", "quit":
		s.writeString("Bye.\r\n")
		s.Active.Store(false)
		return
	}

	if _, ok := s.Reg.Get(args[0]); !ok {
		s.writeString("unknown command: " + args[0] + "\r\n")
		return
	}

	s.Reg.Run(s, s, args)
}
