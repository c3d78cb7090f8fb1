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

// Package serial is the UART transport: it opens a device path, sets
// 8N1 at one of eight supported baud rates, puts the line into raw
// mode, and drives a session.Session off it exactly like the console
// transport does. Grounded on github.com/daedaluz/goserial, which
// already implements the termios plumbing this component needs instead
// of hand-rolling ioctl calls against golang.org/x/sys/unix.
package serial

import (
	goserial "github.com/daedaluz/goserial"

	"github.com/nabbar/embsh/logging"
	"github.com/nabbar/embsh/session"
	"github.com/nabbar/embsh/shell"
)

// baudTable is the fixed lookup from a configured integer baud rate to
// the termios CFlag value the kernel expects, covering the eight rates
// embsh supports.
var baudTable = map[int]goserial.CFlag{
	9600:   goserial.B9600,
	19200:  goserial.B19200,
	38400:  goserial.B38400,
	57600:  goserial.B57600,
	115200: goserial.B115200,
	230400: goserial.B230400,
	460800: goserial.B460800,
	921600: goserial.B921600,
}

// Config carries the serial transport's construction parameters.
type Config struct {
	Device   string
	Baud     int
	Registry shell.Shell
	Prompt   string
	Log      logging.Logger

	// Override bypasses Device/open entirely — used by tests injecting a
	// PTY via goserial.OpenPTY.
	Override *goserial.Port
}

// Serial is the UART transport.
type Serial struct {
	cfg     Config
	port    *goserial.Port
	opened  bool
	sess    *session.Session
}

// New opens cfg.Device (or adopts cfg.Override) at cfg.Baud, puts the
// line into raw mode with VMIN=1 VTIME=0 and no hardware flow control,
// and builds the Session that will drive it.
func New(cfg Config) (*Serial, error) {
	cflag, ok := baudTable[cfg.Baud]
	if !ok {
		return nil, ErrUnsupportedBaud
	}

	s := &Serial{cfg: cfg}

	if cfg.Override != nil {
		s.port = cfg.Override
	} else {
		p, err := goserial.Open(cfg.Device, nil)
		if err != nil {
			return nil, ErrOpenFailed
		}
		s.port = p
		s.opened = true
	}

	if err := configureRaw(s.port, cflag); err != nil {
		if s.opened {
			_ = s.port.Close()
		}
		return nil, err
	}

	s.sess = session.New(session.Config{
		Out:      portWriter{s.port},
		Registry: cfg.Registry,
		Prompt:   cfg.Prompt,
		Log:      cfg.Log,
	})

	return s, nil
}

// portWriter adapts goserial.Port.Write to io.Writer without exposing
// the rest of the Port surface to session.Session.
type portWriter struct{ p *goserial.Port }

func (w portWriter) Write(b []byte) (int, error) { return w.p.Write(b) }

func configureRaw(p *goserial.Port, baud goserial.CFlag) error {
	attrs, err := p.GetAttr()
	if err != nil {
		return err
	}

	attrs.MakeRaw()
	attrs.SetSpeed(baud)
	attrs.Cflag |= goserial.CLOCAL
	attrs.Cflag &^= goserial.CRTSCTS
	attrs.Cc[goserial.VMIN] = 1
	attrs.Cc[goserial.VTIME] = 0

	return p.SetAttr(goserial.TCSANOW, attrs)
}

// Session exposes the driving session, mainly for tests.
func (s *Serial) Session() *session.Session {
	return s.sess
}

// Run reads from the port one byte at a time, feeding the session until
// it becomes inactive or the port read fails. It is meant to be run on
// its own goroutine by the caller, mirroring the console transport's
// Background mode.
func (s *Serial) Run() {
	s.sess.EmitPrompt()

	buf := make([]byte, 1)
	for s.sess.Active.Load() {
		n, err := s.port.Read(buf)
		if err != nil {
			return
		}
		if n == 0 {
			continue
		}
		if s.sess.ProcessByte(buf[0]) {
			s.sess.ExecuteLine()
			if s.sess.Active.Load() {
				s.sess.EmitPrompt()
			}
		}
	}
}

// Stop deactivates the session and closes the device iff this Serial
// opened it itself (an Override'd port, injected by a test, is left
// for the caller to close).
func (s *Serial) Stop() error {
	s.sess.Active.Store(false)
	if s.opened {
		return s.port.Close()
	}
	return nil
}
