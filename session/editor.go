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
	"github.com/nabbar/embsh/shell"
)

const (
	ctrlC     = 0x03
	ctrlD     = 0x04
	backspace = 0x08
	del       = 0x7F
	tab       = '\t'
	cr        = '\r'
	lf        = '\n'
)

// ProcessByte feeds one raw byte from the transport through the IAC
// filter, the ESC filter, and keystroke handling, in that order. It
// returns true when a complete line is ready — the caller must then
// call ExecuteLine and re-emit the prompt.
func (s *Session) ProcessByte(b byte) bool {
	filtered, pass := s.filterIAC(b)
	if !pass {
		return false
	}
	b = filtered

	if action, consumed := s.filterESC(b); consumed {
		s.handleEscAction(action)
		return false
	}

	return s.handleKeystroke(b)
}

func (s *Session) handleEscAction(action escAction) {
	switch action {
	case escHistoryUp:
		line, ok := s.hist.up()
		if ok {
			s.replaceLine(line)
		}
	case escHistoryDown:
		line, ok := s.hist.down()
		if ok {
			s.replaceLine(line)
		}
	}
}

func (s *Session) replaceLine(newLine []byte) {
	s.clearLine()
	s.line = append(s.line[:0], newLine...)
	s.writeString(string(s.line))
}

func (s *Session) handleKeystroke(b byte) bool {
	switch {
	case b == ctrlC:
		s.writeString("^C\r\n")
		s.line = s.line[:0]
		s.hist.reset()
		s.EmitPrompt()
		return false

	case b == ctrlD:
		if len(s.line) == 0 {
			s.writeString("\r\nBye.\r\n")
			s.Active.Store(false)
		}
		return false

	case b == backspace || b == del:
		if len(s.line) > 0 {
			s.line = s.line[:len(s.line)-1]
			s.writeString("\b \b")
		}
		return false

	case b == tab:
		s.tabComplete()
		return false

	case b == cr || b == lf:
		return s.handleEnter()

	case b >= 0x20 && b < 0x7F:
		if len(s.line) < s.lineCap-1 {
			s.line = append(s.line, b)
			s.writeString(string(b))
		}
		return false

	default:
		return false
	}
}

func (s *Session) handleEnter() bool {
	s.writeString("\r\n")
	s.hist.reset()

	if len(s.line) == 0 {
		s.EmitPrompt()
		return false
	}

	s.hist.push(s.line)
	return true
}

func (s *Session) tabComplete() {
	match, count := shell.Autocomplete(s.Reg, string(s.line))

	switch count {
	case 0:
		return

	case 1:
		s.clearLine()
		s.line = append(s.line[:0], match...)
		s.line = append(s.line, ' ')
		s.writeString(string(s.line))

	default:
		s.writeString("\r\n")
		for _, name := range s.Reg.Complete(string(s.line)) {
			s.writeString(name + "  ")
		}
		s.writeString("\r\n")
		s.EmitPrompt()
		s.line = append(s.line[:0], match...)
		s.writeString(string(s.line))
	}
}
