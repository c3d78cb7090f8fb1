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

// Package command defines the unit of work a Shell registry dispatches:
// a named, described, runnable entry.
package command

import (
	"io"
)

// CommandFunc is the function signature every registered command
// implements.
type CommandFunc func(out, err io.Writer, args []string)

// Command is a single entry a Shell can dispatch by name.
type Command interface {
	Name() string
	Describe() string
	Run(out, err io.Writer, args []string)
}

type cmd struct {
	name string
	desc string
	fn   CommandFunc
}

// New builds a runnable Command.
func New(name, desc string, fn CommandFunc) Command {
	return &cmd{name: name, desc: desc, fn: fn}
}

func (c *cmd) Name() string {
	return c.name
}

func (c *cmd) Describe() string {
	return c.desc
}

func (c *cmd) Run(out, err io.Writer, args []string) {
	if c.fn == nil {
		return
	}
	c.fn(out, err, args)
}

// info is a Command with no behavior — only name and description. It is
// used for documentation-only registry entries (command groups,
// namespace headers in `help` output) and is safely castable to
// Command by callers that only read Name/Describe.
type info struct {
	name string
	desc string
}

// Info builds a non-runnable Command carrying only identity fields.
func Info(name, desc string) Command {
	return &info{name: name, desc: desc}
}

func (i *info) Name() string {
	return i.name
}

func (i *info) Describe() string {
	return i.desc
}

func (i *info) Run(_, _ io.Writer, _ []string) {}
