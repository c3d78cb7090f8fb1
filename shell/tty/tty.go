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

// Package tty prepares and restores terminal state for the console
// transport: a TTYSaver contract built on golang.org/x/term instead of
// hand-rolled ioctl calls, since that library already covers every
// platform embsh targets.
package tty

import (
	"io"
	"os"
	"os/signal"
	"sync"
	"syscall"

	"golang.org/x/term"
)

// TTYSaver prepares a reader's underlying terminal for raw-mode line
// editing and restores it on Restore. A TTYSaver built over a
// non-terminal reader (a pipe, a buffer, a regular file) is always
// valid — IsTerminal reports false and Restore is a no-op.
type TTYSaver interface {
	Restore() error
	IsTerminal() bool
}

type fdReader interface {
	Fd() uintptr
}

type saver struct {
	fd       int
	isTerm   bool
	state    *term.State
	sigCh    chan os.Signal
	stopOnce sync.Once
}

// New prepares r (os.Stdin if r is nil) for raw-mode reading. When
// handleSignals is true and r is a real terminal, New also intercepts
// SIGTERM/SIGINT so Restore can be invoked from a signal path before
// the process exits.
func New(r io.Reader, handleSignals bool) (TTYSaver, error) {
	if r == nil {
		r = os.Stdin
	}

	fr, ok := r.(fdReader)
	if !ok {
		return &saver{fd: -1, isTerm: false}, nil
	}

	fd := int(fr.Fd())
	if !term.IsTerminal(fd) {
		return &saver{fd: fd, isTerm: false}, nil
	}

	st, err := term.MakeRaw(fd)
	if err != nil {
		return nil, ErrorTTYFailed
	}

	s := &saver{fd: fd, isTerm: true, state: st}

	if handleSignals {
		s.sigCh = make(chan os.Signal, 1)
		signal.Notify(s.sigCh, syscall.SIGTERM, syscall.SIGINT)
		go s.watch()
	}

	return s, nil
}

func (s *saver) watch() {
	if _, ok := <-s.sigCh; ok {
		_ = s.Restore()
	}
}

func (s *saver) IsTerminal() bool {
	return s.isTerm
}

func (s *saver) Restore() error {
	var err error
	s.stopOnce.Do(func() {
		if s.sigCh != nil {
			signal.Stop(s.sigCh)
			close(s.sigCh)
		}
		if s.isTerm && s.state != nil {
			err = term.Restore(s.fd, s.state)
		}
	})
	return err
}
