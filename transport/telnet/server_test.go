package telnet_test

import (
	"bufio"
	"io"
	"net"
	"testing"
	"time"

	"github.com/nabbar/embsh/shell"
	"github.com/nabbar/embsh/shell/command"
	"github.com/nabbar/embsh/transport/telnet"
)

func newRegistry() shell.Shell {
	reg := shell.New(nil)
	_ = reg.Add("", command.New("ping", "", func(out, err io.Writer, args []string) {
		_, _ = out.Write([]byte("pong"))
	}))
	return reg
}

func TestServer_RejectsBeyondMaxSessions(t *testing.T) {
	srv := telnet.New(telnet.Config{Addr: "127.0.0.1:0", MaxSessions: 1, Registry: newRegistry(), Prompt: "> "})
	if err := srv.Start(); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	defer srv.Stop()

	addr := srv.Addr()

	c1, err := net.Dial("tcp", addr)
	if err != nil {
		t.Fatalf("dial 1: %v", err)
	}
	defer c1.Close()

	time.Sleep(50 * time.Millisecond)

	c2, err := net.Dial("tcp", addr)
	if err != nil {
		t.Fatalf("dial 2: %v", err)
	}
	defer c2.Close()

	_ = c2.SetReadDeadline(time.Now().Add(2 * time.Second))
	r := bufio.NewReader(c2)
	line, err := r.ReadString('\n')
	if err != nil {
		t.Fatalf("expected rejection message, got error: %v", err)
	}
	if line != "Too many connections.\r\n" {
		t.Fatalf("expected rejection message, got %q", line)
	}
}

func TestServer_StopUnblocksSessions(t *testing.T) {
	srv := telnet.New(telnet.Config{Addr: "127.0.0.1:0", Registry: newRegistry(), Prompt: "> "})
	if err := srv.Start(); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	conn, err := net.Dial("tcp", srv.Addr())
	if err != nil {
		t.Fatalf("dial: %v", err)
	}
	defer conn.Close()

	time.Sleep(50 * time.Millisecond)

	done := make(chan error, 1)
	go func() { done <- srv.Stop() }()

	select {
	case err := <-done:
		if err != nil {
			t.Fatalf("unexpected error from Stop: %v", err)
		}
	case <-time.After(3 * time.Second):
		t.Fatalf("Stop did not return in time")
	}
}
