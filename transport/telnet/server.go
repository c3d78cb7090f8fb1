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

// Package telnet is the multi-session TCP transport: an accept loop
// spawning one session task per connection, each driving a
// session.Session with telnet option negotiation and an optional
// username/password gate.
package telnet

import (
	"context"
	"net"
	"sync"
	"sync/atomic"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/nabbar/embsh/logging"
	"github.com/nabbar/embsh/session"
	"github.com/nabbar/embsh/shell"
)

const (
	// DefaultAddr is the telnet transport's default listen address.
	DefaultAddr = ":2323"

	// DefaultMaxSessions is SESSION_CAP's default value.
	DefaultMaxSessions = 8

	acceptPollTimeout  = 500 * time.Millisecond
	sessionPollTimeout = 200 * time.Millisecond
)

// Credentials gates the auth sub-protocol. A nil Credentials on Config
// disables authentication entirely.
type Credentials struct {
	Username string
	Password string
}

// Config carries the telnet transport's construction parameters.
type Config struct {
	Addr        string
	MaxSessions int
	Banner      string
	Prompt      string
	Registry    shell.Shell
	Credentials *Credentials
	Log         logging.Logger
}

// Server is the telnet transport. Not safe for concurrent Start/Stop
// calls from multiple goroutines; the session pool itself is.
type Server struct {
	cfg Config
	log logging.Logger

	ln      net.Listener
	running atomic.Bool

	mu    sync.Mutex
	slots []*slot
	grp   *errgroup.Group
}

type slot struct {
	occupied atomic.Bool
	sess     *session.Session
	conn     net.Conn
}

// New builds a Server from cfg, filling in defaults for Addr and
// MaxSessions when unset.
func New(cfg Config) *Server {
	if cfg.Addr == "" {
		cfg.Addr = DefaultAddr
	}
	if cfg.MaxSessions <= 0 {
		cfg.MaxSessions = DefaultMaxSessions
	}

	s := &Server{
		cfg:   cfg,
		log:   logging.Safe(cfg.Log),
		slots: make([]*slot, cfg.MaxSessions),
	}
	for i := range s.slots {
		s.slots[i] = &slot{}
	}
	return s
}

// Start binds the listening socket and spawns the accept task. It
// returns once the socket is bound; the accept loop and all session
// tasks run in the background until Stop is called.
func (s *Server) Start() error {
	ln, err := net.Listen("tcp", s.cfg.Addr)
	if err != nil {
		return ErrListenFailed
	}

	s.ln = ln
	s.running.Store(true)

	grp, _ := errgroup.WithContext(context.Background())
	s.grp = grp
	grp.Go(s.acceptLoop)

	return nil
}

// Addr returns the listener's bound address. Valid only after Start
// returns successfully.
func (s *Server) Addr() string {
	if s.ln == nil {
		return ""
	}
	return s.ln.Addr().String()
}

// Stop clears the running flag, unblocks the accept loop and every
// live session by closing their sockets, then waits for all tasks to
// finish.
func (s *Server) Stop() error {
	s.running.Store(false)

	if s.ln != nil {
		_ = s.ln.Close()
	}

	s.mu.Lock()
	for _, sl := range s.slots {
		if sl.occupied.Load() {
			// A slot is marked occupied by freeSlot before runSession has
			// assigned sess/conn under s.mu — an accept racing shutdown can
			// land here before either field is set.
			if sl.sess != nil {
				sl.sess.Active.Store(false)
			}
			if sl.conn != nil {
				_ = sl.conn.Close()
			}
		}
	}
	s.mu.Unlock()

	if s.grp != nil {
		return s.grp.Wait()
	}
	return nil
}

func (s *Server) acceptLoop() error {
	for s.running.Load() {
		if tc, ok := s.ln.(*net.TCPListener); ok {
			_ = tc.SetDeadline(time.Now().Add(acceptPollTimeout))
		}

		conn, err := s.ln.Accept()
		if err != nil {
			if ne, ok := err.(net.Error); ok && ne.Timeout() {
				continue
			}
			if !s.running.Load() {
				return nil
			}
			continue
		}

		sl := s.freeSlot()
		if sl == nil {
			_, _ = conn.Write([]byte("Too many connections.\r\n"))
			_ = conn.Close()
			continue
		}

		s.grp.Go(func() error {
			return s.runSession(sl, conn)
		})
	}
	return nil
}

func (s *Server) freeSlot() *slot {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, sl := range s.slots {
		if !sl.occupied.Load() {
			sl.occupied.Store(true)
			return sl
		}
	}
	return nil
}

func (s *Server) releaseSlot(sl *slot) {
	s.mu.Lock()
	sl.sess = nil
	sl.conn = nil
	sl.occupied.Store(false)
	s.mu.Unlock()
}

func (s *Server) runSession(sl *slot, conn net.Conn) error {
	defer s.releaseSlot(sl)
	defer conn.Close()

	sess := session.New(session.Config{
		Out:        conn,
		Registry:   s.cfg.Registry,
		TelnetMode: true,
		Prompt:     s.cfg.Prompt,
		Log:        s.log,
	})

	s.mu.Lock()
	sl.sess = sess
	sl.conn = conn
	s.mu.Unlock()

	_, _ = conn.Write([]byte{0xFF, 0xFB, 0x03}) // IAC WILL SGA
	_, _ = conn.Write([]byte{0xFF, 0xFB, 0x01}) // IAC WILL ECHO

	if s.cfg.Banner != "" {
		_, _ = conn.Write([]byte(s.cfg.Banner))
	}

	if s.cfg.Credentials != nil {
		if !runAuth(conn, s.cfg.Credentials) {
			_, _ = conn.Write([]byte("Authentication failed.\r\n"))
			return nil
		}
	}

	sess.EmitPrompt()

	buf := make([]byte, 1)
	for sess.Active.Load() && s.running.Load() {
		_ = conn.SetReadDeadline(time.Now().Add(sessionPollTimeout))

		n, err := conn.Read(buf)
		if err != nil {
			if ne, ok := err.(net.Error); ok && ne.Timeout() {
				continue
			}
			return nil
		}
		if n == 0 {
			continue
		}

		if buf[0] == '\r' {
			peekCRLFPair(conn)
		}

		if sess.ProcessByte(buf[0]) {
			sess.ExecuteLine()
			if sess.Active.Load() {
				sess.EmitPrompt()
			}
		}
	}

	return nil
}

// peekCRLFPair consumes a following LF or NUL byte after a CR, so a
// telnet client's CR-LF or CR-NUL line terminator is treated as a
// single Enter rather than Enter followed by a stray blank keystroke.
func peekCRLFPair(conn net.Conn) {
	_ = conn.SetReadDeadline(time.Now().Add(5 * time.Millisecond))
	defer conn.SetReadDeadline(time.Time{})

	var peek [1]byte
	n, err := conn.Read(peek[:])
	if err != nil || n == 0 {
		return
	}
	if peek[0] != '\n' && peek[0] != 0 {
		// Not part of the CR pairing — there is no portable way to push a
		// byte back onto a net.Conn, so a client sending CR followed
		// immediately by a printable byte (no real telnet client does)
		// would lose that byte. Accepted for this lenient CR handling.
		return
	}
}
