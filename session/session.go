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

// Package session is the line editor: a byte-driven deterministic
// automaton that turns a transport's byte stream into executed
// registry commands. One Session exists per connection and is driven
// by exactly one goroutine — the only field touched from elsewhere is
// Active, an atomic one-way latch transports clear to request shutdown.
package session

import (
	"io"
	"sync/atomic"

	"github.com/google/uuid"

	"github.com/nabbar/embsh/logging"
	"github.com/nabbar/embsh/shell"
)

// DefaultLineCap is LINE_CAP's default value.
const DefaultLineCap = 256

// Config carries the per-session construction parameters a transport
// fills in before handing a Session its byte stream.
type Config struct {
	Out        io.Writer
	Registry   shell.Shell
	TelnetMode bool
	Prompt     string
	LineCap    int
	HistCap    int
	Log        logging.Logger
}

// Session is the per-connection editor state. It is heap-allocated
// rather than held in a fixed-size array, since that discipline belongs
// to a different language's allocator model, not to the semantics a Go
// line editor needs to preserve.
type Session struct {
	ID     string
	Out    io.Writer
	Reg    shell.Shell
	Prompt string
	Log    logging.Logger

	TelnetMode bool
	Active     atomic.Bool

	line    []byte
	lineCap int

	hist *history

	iacState IACState
	escState ESCState
}

// New builds a Session ready to receive bytes via ProcessByte. The
// returned Session starts Active.
func New(cfg Config) *Session {
	lineCap := cfg.LineCap
	if lineCap <= 0 {
		lineCap = DefaultLineCap
	}

	s := &Session{
		ID:         uuid.NewString(),
		Out:        cfg.Out,
		Reg:        cfg.Registry,
		Prompt:     cfg.Prompt,
		Log:        logging.Safe(cfg.Log),
		TelnetMode: cfg.TelnetMode,
		line:       make([]byte, 0, lineCap),
		lineCap:    lineCap,
		hist:       newHistory(cfg.HistCap),
	}
	s.Active.Store(true)
	return s
}

// Write sends p to the session's underlying transport. It is the
// output-sink endpoint the registry writes through while dispatching a
// command on this session's behalf.
func (s *Session) Write(p []byte) (int, error) {
	if !s.Active.Load() {
		return 0, ErrClosed
	}
	if s.Out == nil {
		return len(p), nil
	}
	return s.Out.Write(p)
}

func (s *Session) writeString(str string) {
	_, _ = s.Write([]byte(str))
}

// EmitPrompt writes the configured prompt iff the session is still
// active.
func (s *Session) EmitPrompt() {
	if s.Active.Load() {
		s.writeString(s.Prompt)
	}
}

func (s *Session) clearLine() {
	for range s.line {
		s.writeString("\b \b")
	}
	s.line = s.line[:0]
}
