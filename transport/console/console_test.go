package console_test

import (
	"bytes"
	"io"
	"strings"
	"testing"
	"time"

	"github.com/nabbar/embsh/shell"
	"github.com/nabbar/embsh/shell/command"
	"github.com/nabbar/embsh/transport/console"
)

func TestConsole_NonTerminalSkipsRawMode(t *testing.T) {
	reg := shell.New(nil)
	_ = reg.Add("", command.New("echo", "", func(out, err io.Writer, args []string) {
		_, _ = out.Write([]byte(strings.Join(args, " ")))
	}))

	out := &bytes.Buffer{}
	in := strings.NewReader("echo hi\r")

	c, err := console.New(console.Config{In: in, Out: out, Registry: reg, Prompt: "> ", Background: true})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if err := c.Start(); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	time.Sleep(100 * time.Millisecond)

	if !strings.Contains(out.String(), "hi") {
		t.Fatalf("expected command output, got %q", out.String())
	}

	_ = c.Stop()
}
