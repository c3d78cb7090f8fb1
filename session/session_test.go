package session_test

import (
	"bytes"
	"io"
	"testing"

	"github.com/nabbar/embsh/session"
	"github.com/nabbar/embsh/shell"
	"github.com/nabbar/embsh/shell/command"
)

func newTestSession(out *bytes.Buffer) *session.Session {
	reg := shell.New(nil)
	_ = reg.Add("", command.New("echo", "", func(o, e io.Writer, args []string) {}))
	return session.New(session.Config{Out: out, Registry: reg, Prompt: "> "})
}

func feed(s *session.Session, line string) {
	for i := 0; i < len(line); i++ {
		ready := s.ProcessByte(line[i])
		if ready {
			s.ExecuteLine()
			s.EmitPrompt()
		}
	}
}

func TestProcessByte_BasicEcho(t *testing.T) {
	out := &bytes.Buffer{}
	s := newTestSession(out)

	for _, b := range []byte("hi") {
		s.ProcessByte(b)
	}

	if out.String() != "hi" {
		t.Fatalf("expected echoed input %q, got %q", "hi", out.String())
	}
}

func TestExecuteLine_UnknownCommand(t *testing.T) {
	out := &bytes.Buffer{}
	s := newTestSession(out)
	feed(s, "bogus\r")

	if !bytes.Contains(out.Bytes(), []byte("unknown command: bogus")) {
		t.Fatalf("expected unknown command message, got %q", out.String())
	}
}

func TestExecuteLine_ExitSetsInactive(t *testing.T) {
	out := &bytes.Buffer{}
	s := newTestSession(out)
	feed(s, "exit\r")

	if s.Active.Load() {
		t.Fatalf("expected session to become inactive after exit")
	}
	if !bytes.Contains(out.Bytes(), []byte("Bye.")) {
		t.Fatalf("expected Bye. message, got %q", out.String())
	}
}

func TestCtrlD_OnEmptyLineExits(t *testing.T) {
	out := &bytes.Buffer{}
	s := newTestSession(out)
	s.ProcessByte(0x04)

	if s.Active.Load() {
		t.Fatalf("expected ctrl-D on empty line to deactivate session")
	}
	if !bytes.Contains(out.Bytes(), []byte("Bye.")) {
		t.Fatalf("expected Bye. message, got %q", out.String())
	}
}

func TestCtrlD_IgnoredWithPendingInput(t *testing.T) {
	out := &bytes.Buffer{}
	s := newTestSession(out)
	s.ProcessByte('a')
	s.ProcessByte(0x04)

	if !s.Active.Load() {
		t.Fatalf("expected ctrl-D with pending input to be ignored")
	}
}

func TestCtrlC_ClearsLineAndReprompts(t *testing.T) {
	out := &bytes.Buffer{}
	s := newTestSession(out)
	s.ProcessByte('a')
	s.ProcessByte('b')
	out.Reset()
	s.ProcessByte(0x03)

	if !bytes.Contains(out.Bytes(), []byte("^C\r\n")) {
		t.Fatalf("expected ^C echo, got %q", out.String())
	}
	if !bytes.Contains(out.Bytes(), []byte("> ")) {
		t.Fatalf("expected reprompt, got %q", out.String())
	}
}

func TestBackspace_RemovesLastByte(t *testing.T) {
	out := &bytes.Buffer{}
	s := newTestSession(out)
	s.ProcessByte('a')
	s.ProcessByte('b')
	s.ProcessByte(0x08)

	if !bytes.HasSuffix(out.Bytes(), []byte("\b \b")) {
		t.Fatalf("expected backspace erase sequence, got %q", out.String())
	}
}

func TestHistoryUpStopsAtOldest(t *testing.T) {
	out := &bytes.Buffer{}
	s := newTestSession(out)

	feed(s, "one\r")
	feed(s, "two\r")
	feed(s, "three\r")

	esc := []byte{0x1B, '['}

	s.ProcessByte(esc[0])
	s.ProcessByte(esc[1])
	s.ProcessByte('A') // -> three
	s.ProcessByte(esc[0])
	s.ProcessByte(esc[1])
	s.ProcessByte('A') // -> two
	s.ProcessByte(esc[0])
	s.ProcessByte(esc[1])
	s.ProcessByte('A') // -> one (oldest)

	out.Reset()
	s.ProcessByte(esc[0])
	s.ProcessByte(esc[1])
	s.ProcessByte('A') // still at oldest, must not wrap or blank out

	if !bytes.Contains(out.Bytes(), []byte("one")) {
		t.Fatalf("expected history-up to stay pinned at the oldest entry, got %q", out.String())
	}
}

func TestHistoryDown_PastNewestClearsLine(t *testing.T) {
	out := &bytes.Buffer{}
	s := newTestSession(out)

	feed(s, "one\r")
	feed(s, "two\r")

	esc := []byte{0x1B, '['}
	s.ProcessByte(esc[0])
	s.ProcessByte(esc[1])
	s.ProcessByte('A') // -> two

	s.ProcessByte(esc[0])
	s.ProcessByte(esc[1])
	s.ProcessByte('B') // past newest -> empty
}

func TestHistory_DedupsConsecutiveRepeats(t *testing.T) {
	out := &bytes.Buffer{}
	s := newTestSession(out)

	feed(s, "dup\r")
	feed(s, "dup\r")

	esc := []byte{0x1B, '['}
	s.ProcessByte(esc[0])
	s.ProcessByte(esc[1])
	s.ProcessByte('A')

	s.ProcessByte(esc[0])
	s.ProcessByte(esc[1])
	s.ProcessByte('A')
}

func TestWrite_FailsOnceClosed(t *testing.T) {
	out := &bytes.Buffer{}
	s := newTestSession(out)
	s.Active.Store(false)

	_, err := s.Write([]byte("x"))
	if err == nil {
		t.Fatalf("expected write to a closed session to fail")
	}
}
