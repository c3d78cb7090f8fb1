package shell_test

import (
	goerr "errors"
	"strings"
	"testing"

	"github.com/nabbar/embsh/shell"
)

func TestSplit_Basic(t *testing.T) {
	got, err := shell.Split("set foo bar", 0)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	want := []string{"set", "foo", "bar"}
	if len(got) != len(want) {
		t.Fatalf("expected %v, got %v", want, got)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("expected %v, got %v", want, got)
		}
	}
}

func TestSplit_QuotedPreservesWhitespace(t *testing.T) {
	got, err := shell.Split(`set "hello world"`, 0)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(got) != 2 || got[1] != "hello world" {
		t.Fatalf("expected [set, \"hello world\"], got %v", got)
	}
}

func TestSplit_BackslashEscapeInsideQuote(t *testing.T) {
	got, err := shell.Split(`a "a\"b"`, 0)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(got) != 2 || got[1] != `a"b` {
		t.Fatalf("expected [a, a\"b], got %v", got)
	}
}

func TestSplit_UnbalancedQuoteFails(t *testing.T) {
	_, err := shell.Split(`set "unterminated`, 0)
	if !goerr.Is(err, shell.ErrUnbalancedQuote) {
		t.Fatalf("expected ErrUnbalancedQuote, got %v", err)
	}
}

func TestSplit_TooManyArgsFails(t *testing.T) {
	line := strings.Repeat("x ", shell.DefaultArgCap+1)
	_, err := shell.Split(line, 0)
	if !goerr.Is(err, shell.ErrTooManyArgs) {
		t.Fatalf("expected ErrTooManyArgs, got %v", err)
	}
}

func TestSplit_Empty(t *testing.T) {
	got, err := shell.Split("", 0)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(got) != 0 {
		t.Fatalf("expected no args, got %v", got)
	}
}
