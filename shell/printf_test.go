package shell_test

import (
	"bytes"
	"strings"
	"testing"

	"github.com/nabbar/embsh/shell"
)

type singleWriteCounter struct {
	bytes.Buffer
	calls int
}

func (w *singleWriteCounter) Write(p []byte) (int, error) {
	w.calls++
	return w.Buffer.Write(p)
}

func TestPrintf_FormatsAndWritesOnce(t *testing.T) {
	w := &singleWriteCounter{}

	n := shell.Printf(w, "%s=%d", "x", 42)

	if w.calls != 1 {
		t.Fatalf("expected exactly one Write call, got %d", w.calls)
	}
	if w.String() != "x=42" {
		t.Fatalf("expected %q, got %q", "x=42", w.String())
	}
	if n != len("x=42") {
		t.Fatalf("expected written count %d, got %d", len("x=42"), n)
	}
}

func TestPrintf_TruncatesOverflow(t *testing.T) {
	w := &singleWriteCounter{}
	long := strings.Repeat("a", shell.PrintfBufSize+64)

	shell.Printf(w, "%s", long)

	if w.calls != 1 {
		t.Fatalf("expected exactly one Write call, got %d", w.calls)
	}
	if w.Len() != shell.PrintfBufSize-1 {
		t.Fatalf("expected truncation to %d bytes, got %d", shell.PrintfBufSize-1, w.Len())
	}
}

func TestPrintf_NilSinkReturnsNegative(t *testing.T) {
	if n := shell.Printf(nil, "hi"); n != -1 {
		t.Fatalf("expected -1 for a nil sink, got %d", n)
	}
}
