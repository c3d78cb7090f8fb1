package command_test

import (
	"bytes"
	"io"
	"testing"

	"github.com/nabbar/embsh/shell/command"
)

func TestCommand_NameDescribe(t *testing.T) {
	c := command.New("reboot", "restarts the device", func(out, err io.Writer, args []string) {
		_, _ = out.Write([]byte("ok"))
	})

	if c.Name() != "reboot" {
		t.Fatalf("expected name %q, got %q", "reboot", c.Name())
	}
	if c.Describe() != "restarts the device" {
		t.Fatalf("expected description %q, got %q", "restarts the device", c.Describe())
	}

	out := &bytes.Buffer{}
	errb := &bytes.Buffer{}
	c.Run(out, errb, nil)

	if out.String() != "ok" {
		t.Fatalf("expected Run to write to out, got %q", out.String())
	}
}

func TestCommand_RunForwardsArgs(t *testing.T) {
	var seen []string
	c := command.New("set", "", func(out, err io.Writer, args []string) {
		seen = args
	})

	c.Run(nil, nil, []string{"a", "b"})

	if len(seen) != 2 || seen[0] != "a" || seen[1] != "b" {
		t.Fatalf("expected args to be forwarded, got %v", seen)
	}
}

func TestCommand_NilFuncIsSafe(t *testing.T) {
	c := command.New("noop", "", nil)
	c.Run(nil, nil, nil)
}

func TestInfo_NotRunnableButSafe(t *testing.T) {
	c := command.Info("sys", "namespace for system commands")

	if c.Name() != "sys" {
		t.Fatalf("expected name %q, got %q", "sys", c.Name())
	}
	if c.Describe() != "namespace for system commands" {
		t.Fatalf("expected description, got %q", c.Describe())
	}

	c.Run(nil, nil, nil)
}

func TestInfo_CastableToCommand(t *testing.T) {
	var c command.Command = command.Info("x", "y")
	if c == nil {
		t.Fatalf("expected non-nil Command")
	}
}
