package shell_test

import (
	"bytes"
	"io"
	"testing"

	goerr "errors"

	"github.com/nabbar/embsh/shell"
	"github.com/nabbar/embsh/shell/command"
)

func echoCmd() command.Command {
	return command.New("echo", "echoes args", func(out, err io.Writer, args []string) {
		for _, a := range args {
			_, _ = out.Write([]byte(a))
		}
	})
}

func TestAdd_GetRoundTrip(t *testing.T) {
	sh := shell.New(nil)

	if err := sh.Add("", echoCmd()); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	c, ok := sh.Get("echo")
	if !ok {
		t.Fatalf("expected echo to be registered")
	}
	if c.Name() != "echo" {
		t.Fatalf("expected name echo, got %q", c.Name())
	}
}

func TestAdd_PrefixNamespacing(t *testing.T) {
	sh := shell.New(nil)

	if err := sh.Add("sys:", echoCmd()); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if _, ok := sh.Get("echo"); ok {
		t.Fatalf("expected unprefixed lookup to miss")
	}
	if _, ok := sh.Get("sys:echo"); !ok {
		t.Fatalf("expected prefixed lookup to hit")
	}
}

func TestAdd_DuplicateNameRejected(t *testing.T) {
	sh := shell.New(nil)
	_ = sh.Add("", echoCmd())

	err := sh.Add("", echoCmd())
	if !goerr.Is(err, shell.ErrDuplicateName) {
		t.Fatalf("expected ErrDuplicateName, got %v", err)
	}
}

func TestAdd_RegistryFullRejected(t *testing.T) {
	sh := shell.NewSized(nil, 1)
	_ = sh.Add("", command.New("a", "", nil))

	err := sh.Add("", command.New("b", "", nil))
	if !goerr.Is(err, shell.ErrRegistryFull) {
		t.Fatalf("expected ErrRegistryFull, got %v", err)
	}
}

func TestRun_UnknownCommandWritesToErr(t *testing.T) {
	sh := shell.New(nil)
	out := &bytes.Buffer{}
	errb := &bytes.Buffer{}

	sh.Run(out, errb, []string{"bogus"})

	if errb.Len() == 0 {
		t.Fatalf("expected error output for unknown command")
	}
	if out.Len() != 0 {
		t.Fatalf("expected no stdout for unknown command")
	}
}

func TestRun_DispatchesToCommand(t *testing.T) {
	sh := shell.New(nil)
	_ = sh.Add("", echoCmd())

	out := &bytes.Buffer{}
	sh.Run(out, nil, []string{"echo", "hi"})

	if out.String() != "hi" {
		t.Fatalf("expected %q, got %q", "hi", out.String())
	}
}

func TestRun_NilWritersTolerated(t *testing.T) {
	sh := shell.New(nil)
	_ = sh.Add("", echoCmd())

	sh.Run(nil, nil, []string{"echo", "hi"})
	sh.Run(nil, nil, []string{"bogus"})
}

func TestWalk_StopsEarly(t *testing.T) {
	sh := shell.New(nil)
	_ = sh.Add("", command.New("a", "", nil), command.New("b", "", nil), command.New("c", "", nil))

	seen := 0
	sh.Walk(func(name string, item command.Command) bool {
		seen++
		return seen < 2
	})

	if seen != 2 {
		t.Fatalf("expected walk to stop after 2 entries, saw %d", seen)
	}
}

func TestDesc_UnknownReturnsEmpty(t *testing.T) {
	sh := shell.New(nil)
	if sh.Desc("nope") != "" {
		t.Fatalf("expected empty description for unknown command")
	}
}

func TestLen(t *testing.T) {
	sh := shell.New(nil)
	before := sh.Len()

	_ = sh.Add("", echoCmd())
	if sh.Len() != before+1 {
		t.Fatalf("expected len %d, got %d", before+1, sh.Len())
	}
}

func TestNew_AutoRegistersHelp(t *testing.T) {
	sh := shell.New(nil)

	c, ok := sh.Get("help")
	if !ok {
		t.Fatalf("expected help to be auto-registered")
	}

	out := &bytes.Buffer{}
	c.Run(out, nil, nil)

	if !bytes.Contains(out.Bytes(), []byte("  help  - lists every registered command\r\n")) {
		t.Fatalf("expected formatted help listing, got %q", out.String())
	}
}
