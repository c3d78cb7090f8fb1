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

const escByte = 0x1B

// ESCState is the ANSI CSI arrow-key filter's state.
type ESCState uint8

const (
	ESCNone ESCState = iota
	ESCEscaped
	ESCBracket
)

// escAction is what a fully-recognized CSI sequence asks the editor to
// do. Only the up/down arrow keys are wired to a behavior; CSI C/D (right/left)
// are consumed but reserved no-ops since the editor has no interior
// cursor.
type escAction uint8

const (
	escNone escAction = iota
	escHistoryUp
	escHistoryDown
	escNoop
)

// filterESC consumes ANSI escape sequence bytes. It returns the action
// a completed sequence requests, and whether b was consumed by the
// filter (true) or should continue to keystroke handling (false).
func (s *Session) filterESC(b byte) (action escAction, consumed bool) {
	switch s.escState {
	case ESCNone:
		if b == escByte {
			s.escState = ESCEscaped
			return escNone, true
		}
		return escNone, false

	case ESCEscaped:
		if b == '[' {
			s.escState = ESCBracket
			return escNone, true
		}
		s.escState = ESCNone
		return escNone, true

	case ESCBracket:
		s.escState = ESCNone
		switch b {
		case 'A':
			return escHistoryUp, true
		case 'B':
			return escHistoryDown, true
		case 'C', 'D':
			return escNoop, true
		default:
			return escNone, true
		}
	}

	s.escState = ESCNone
	return escNone, true
}
