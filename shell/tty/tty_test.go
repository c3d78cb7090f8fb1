package tty_test

import (
	"bytes"
	"testing"

	"github.com/nabbar/embsh/shell/tty"
)

func TestNew_NilReaderDefaultsToStdin(t *testing.T) {
	saver, err := tty.New(nil, false)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if saver == nil {
		t.Fatalf("expected non-nil saver")
	}
	_ = saver.Restore()
}

func TestNew_BufferIsNotATerminal(t *testing.T) {
	buf := &bytes.Buffer{}
	saver, err := tty.New(buf, false)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if saver.IsTerminal() {
		t.Fatalf("expected buffer to not be identified as a terminal")
	}
	if err := saver.Restore(); err != nil {
		t.Fatalf("expected Restore on a non-terminal to be a no-op, got %v", err)
	}
}

func TestRestore_IsIdempotent(t *testing.T) {
	buf := &bytes.Buffer{}
	saver, _ := tty.New(buf, false)

	if err := saver.Restore(); err != nil {
		t.Fatalf("first restore: %v", err)
	}
	if err := saver.Restore(); err != nil {
		t.Fatalf("second restore should also succeed: %v", err)
	}
}
