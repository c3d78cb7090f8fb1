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

// Package console is the local single-session transport: it drives a
// session.Session directly off the controlling terminal (or, in tests,
// a plain pipe), optionally putting the terminal into raw mode for the
// duration.
package console

import (
	"bufio"
	"io"

	"github.com/nabbar/embsh/logging"
	"github.com/nabbar/embsh/session"
	"github.com/nabbar/embsh/shell"
	"github.com/nabbar/embsh/shell/tty"
)

// Config carries the console transport's construction parameters.
type Config struct {
	In       io.Reader
	Out      io.Writer
	Registry shell.Shell
	Prompt   string
	Log      logging.Logger

	// Background runs the read loop on its own goroutine; Start returns
	// immediately and Wait blocks until the loop returns (Stop does not
	// wait for it). When false, Start blocks the calling goroutine until
	// the session ends.
	Background bool
}

// Console is the local transport.
type Console struct {
	cfg  Config
	sess *session.Session
	saver tty.TTYSaver

	done chan struct{}
}

// New builds a Console. It attempts to put cfg.In into raw mode via
// shell/tty; a non-terminal reader (a pipe or buffer, as in tests) is
// tolerated and raw-mode setup is silently skipped.
func New(cfg Config) (*Console, error) {
	saver, err := tty.New(cfg.In, false)
	if err != nil {
		return nil, err
	}

	sess := session.New(session.Config{
		Out:      cfg.Out,
		Registry: cfg.Registry,
		Prompt:   cfg.Prompt,
		Log:      cfg.Log,
	})

	return &Console{cfg: cfg, sess: sess, saver: saver, done: make(chan struct{})}, nil
}

// Session exposes the underlying session, mainly for tests asserting on
// its Active flag.
func (c *Console) Session() *session.Session {
	return c.sess
}

// Start begins the read loop. In Background mode it returns
// immediately; otherwise it blocks until the session becomes inactive
// or the input reader reaches EOF.
func (c *Console) Start() error {
	if c.cfg.Background {
		go c.run()
		return nil
	}
	c.run()
	return nil
}

// Stop marks the session inactive and restores the terminal, if raw
// mode was entered. It does not unblock a pending Read on c.cfg.In —
// callers driving In from os.Stdin rely on process exit for that rather
// than an interrupted blocking read.
func (c *Console) Stop() error {
	c.sess.Active.Store(false)
	return c.saver.Restore()
}

// Wait blocks until the background read loop has returned. It is a
// no-op when Start was called in foreground (non-Background) mode.
func (c *Console) Wait() {
	<-c.done
}

func (c *Console) run() {
	defer close(c.done)

	c.sess.EmitPrompt()

	r := bufio.NewReaderSize(c.cfg.In, 1)
	buf := make([]byte, 1)
	for c.sess.Active.Load() {
		n, err := r.Read(buf)
		if err != nil {
			return
		}
		if n == 0 {
			continue
		}

		if c.sess.ProcessByte(buf[0]) {
			c.sess.ExecuteLine()
			if c.sess.Active.Load() {
				c.sess.EmitPrompt()
			}
		}
	}
}
