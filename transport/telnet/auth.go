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
	"crypto/subtle"
	"net"

	"github.com/nabbar/embsh/session"
)

const maxAuthAttempts = 3

// maxPasswordLen silently truncates an entered password past 64 bytes,
// matching the source behavior rather than "fixing" it into a rejected
// attempt — a longer secret and its truncated prefix authenticate
// identically, which is a known, accepted quirk, not a goal.
const maxPasswordLen = 64

// runAuth drives the username/password sub-protocol over conn, up to
// maxAuthAttempts times. It returns true on success.
func runAuth(conn net.Conn, creds *Credentials) bool {
	for attempt := 0; attempt < maxAuthAttempts; attempt++ {
		_, _ = conn.Write([]byte("Username: "))
		user := readEchoedLine(conn, false)

		_, _ = conn.Write([]byte("Password: "))
		pass := readEchoedLine(conn, true)

		if subtle.ConstantTimeCompare([]byte(user), []byte(creds.Username)) == 1 &&
			subtle.ConstantTimeCompare([]byte(pass), []byte(creds.Password)) == 1 {
			_, _ = conn.Write([]byte("Login successful.\r\n"))
			return true
		}

		if attempt < maxAuthAttempts-1 {
			_, _ = conn.Write([]byte("Invalid credentials. Try again.\r\n"))
		}
	}
	return false
}

// readEchoedLine reads bytes from conn until Enter, filtering telnet
// IAC bytes, supporting backspace, and echoing `*` instead of the raw
// byte when mask is true. The returned line is silently truncated to
// maxPasswordLen bytes when mask is true.
func readEchoedLine(conn net.Conn, mask bool) string {
	var line []byte
	iacState := session.IACNormal

	buf := make([]byte, 1)
	for {
		n, err := conn.Read(buf)
		if err != nil || n == 0 {
			return string(line)
		}
		b := buf[0]

		if next, consumed := filterAuthIAC(&iacState, b); !consumed {
			b = next
		} else {
			continue
		}

		switch {
		case b == '\r' || b == '\n':
			if b == '\r' {
				peekCRLFPair(conn)
			}
			return string(line)

		case b == 0x08 || b == 0x7F:
			if len(line) > 0 {
				line = line[:len(line)-1]
				_, _ = conn.Write([]byte("\b \b"))
			}

		case b >= 0x20 && b < 0x7F:
			if mask && len(line) >= maxPasswordLen {
				continue
			}
			line = append(line, b)
			if mask {
				_, _ = conn.Write([]byte{'*'})
			} else {
				_, _ = conn.Write([]byte{b})
			}
		}
	}
}

// filterAuthIAC is iac.go's IAC filter inlined for the auth
// sub-protocol, which runs before a session.Session exists to host it.
func filterAuthIAC(state *session.IACState, b byte) (out byte, consumed bool) {
	switch *state {
	case session.IACNormal:
		if b == 0xFF {
			*state = session.IACSeen
			return 0, true
		}
		return b, false

	case session.IACSeen:
		switch {
		case b >= 0xFB && b <= 0xFE:
			*state = session.IACNego
			return 0, true
		case b == 0xFA:
			*state = session.IACSub
			return 0, true
		case b == 0xFF:
			*state = session.IACNormal
			return 0xFF, false
		default:
			*state = session.IACNormal
			return 0, true
		}

	case session.IACNego:
		*state = session.IACNormal
		return 0, true

	case session.IACSub:
		if b == 0xFF {
			*state = session.IACSeen
		}
		return 0, true
	}

	*state = session.IACNormal
	return 0, true
}
