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

package main

import (
	"io"
	"runtime"
	"strings"

	"github.com/nabbar/embsh/shell"
	"github.com/nabbar/embsh/shell/command"
)

// registerBuiltins adds the demonstration commands every embshd
// instance exposes, beyond the registry's own help built-in (exit and
// quit are handled by the session, not registered here).
func registerBuiltins(sh shell.Shell) error {
	return sh.Add("",
		command.New("echo", "echoes its arguments back", echoCmd),
		command.New("uptime", "prints the process runtime environment", unameCmd),
	)
}

func echoCmd(out, _ io.Writer, args []string) {
	shell.Printf(out, "%s\r\n", strings.Join(args, " "))
}

func unameCmd(out, _ io.Writer, _ []string) {
	shell.Printf(out, "%s/%s go%s\r\n", runtime.GOOS, runtime.GOARCH, runtime.Version())
}
