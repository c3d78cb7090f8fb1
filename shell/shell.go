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

// Package shell is the command registry: a fixed-capacity table of
// named, described, runnable entries, with prefix-namespaced
// registration, exact lookup, prefix auto-complete, iteration, and a
// dispatching Run. New(ttySaver) plus Add/Get/Desc/Walk/Run form the
// whole contract, built as a fixed-capacity, concurrent registry for
// the debug shell's command surface.
package shell

import (
	"fmt"
	"io"
	"sort"
	"sync"

	"github.com/nabbar/embsh/shell/command"
	"github.com/nabbar/embsh/shell/tty"
)

// DefaultMaxEntries is CMD_CAP's default value.
const DefaultMaxEntries = 64

// Shell is the command registry. All methods are safe for concurrent
// use: registration is serialized against lookup/iteration/dispatch by
// a single mutex, matching the stated usage model where registration
// happens once at startup and reads dominate afterward.
type Shell interface {
	// Add registers every command in cmds under prefix+cmd.Name(). An
	// empty prefix registers commands at the top level. Returns
	// ErrDuplicateName or ErrRegistryFull without registering any of the
	// batch if either would occur partway through.
	Add(prefix string, cmds ...command.Command) error

	// Get looks up a command by its full (possibly prefixed) name.
	Get(name string) (command.Command, bool)

	// Desc returns the description registered for name, or "".
	Desc(name string) string

	// Walk calls fn for every registered entry in name order, stopping
	// early if fn returns false.
	Walk(fn func(name string, item command.Command) bool)

	// Run looks args[0] up as a command name and invokes it with
	// args[1:], or writes an "Invalid command" message to errw if no
	// such command is registered. A nil out or errw is tolerated.
	Run(out, errw io.Writer, args []string)

	// Len returns the number of registered entries.
	Len() int

	// Complete returns every registered name having prefix as a prefix,
	// in sorted order.
	Complete(prefix string) []string

	// TTY returns the TTYSaver the registry was constructed with, or nil.
	TTY() tty.TTYSaver
}

type registry struct {
	mu      sync.RWMutex
	entries map[string]command.Command
	order   []string
	max     int
	ttySave tty.TTYSaver
}

// New builds an empty Shell with DefaultMaxEntries capacity. ttySaver
// may be nil — the registry itself never reads or writes through it; it
// is only carried so a `exit`/`quit` built-in command, or a transport
// shutting a session down, can reach it without a side channel. A
// `help` entry listing every registered command is auto-registered
// once, before New returns.
func New(ttySaver tty.TTYSaver) Shell {
	return NewSized(ttySaver, DefaultMaxEntries)
}

// NewSized is New with an explicit capacity, for transports whose
// configuration overrides CMD_CAP. The capacity given is reserved for
// caller-registered commands; the auto-registered `help` built-in does
// not count against it.
func NewSized(ttySaver tty.TTYSaver, maxEntries int) Shell {
	if maxEntries <= 0 {
		maxEntries = DefaultMaxEntries
	}

	r := &registry{
		entries: make(map[string]command.Command),
		max:     maxEntries + 1,
		ttySave: ttySaver,
	}
	_ = r.Add("", newHelpCommand(r))
	return r
}

func (r *registry) Add(prefix string, cmds ...command.Command) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if len(r.entries)+len(cmds) > r.max {
		return ErrRegistryFull
	}

	names := make([]string, 0, len(cmds))
	seen := make(map[string]struct{}, len(cmds))
	for _, c := range cmds {
		full := prefix + c.Name()
		if _, exists := r.entries[full]; exists {
			return ErrDuplicateName
		}
		if _, dup := seen[full]; dup {
			return ErrDuplicateName
		}
		seen[full] = struct{}{}
		names = append(names, full)
	}

	for i, c := range cmds {
		r.entries[names[i]] = c
		r.order = append(r.order, names[i])
	}
	sort.Strings(r.order)

	return nil
}

func (r *registry) Get(name string) (command.Command, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	c, ok := r.entries[name]
	return c, ok
}

func (r *registry) Desc(name string) string {
	r.mu.RLock()
	defer r.mu.RUnlock()

	if c, ok := r.entries[name]; ok {
		return c.Describe()
	}
	return ""
}

func (r *registry) Walk(fn func(name string, item command.Command) bool) {
	r.mu.RLock()
	order := make([]string, len(r.order))
	copy(order, r.order)
	r.mu.RUnlock()

	for _, name := range order {
		r.mu.RLock()
		c, ok := r.entries[name]
		r.mu.RUnlock()
		if !ok {
			continue
		}
		if !fn(name, c) {
			return
		}
	}
}

func (r *registry) Run(out, errw io.Writer, args []string) {
	if len(args) == 0 {
		return
	}

	c, ok := r.Get(args[0])
	if !ok {
		if errw != nil {
			_, _ = fmt.Fprintf(errw, "Invalid command: %s\n", args[0])
		}
		return
	}

	c.Run(out, errw, args[1:])
}

func (r *registry) Len() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.entries)
}

func (r *registry) Complete(prefix string) []string {
	r.mu.RLock()
	defer r.mu.RUnlock()

	res := make([]string, 0)
	for _, name := range r.order {
		if len(name) >= len(prefix) && name[:len(prefix)] == prefix {
			res = append(res, name)
		}
	}
	return res
}

func (r *registry) TTY() tty.TTYSaver {
	return r.ttySave
}
