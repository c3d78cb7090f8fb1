package ercode_test

import (
	goerr "errors"
	"testing"

	"github.com/nabbar/embsh/ercode"
)

const testMin ercode.CodeError = ercode.MinRegistry

const (
	codeFoo ercode.CodeError = testMin + iota
	codeBar
)

func init() {
	ercode.RegisterIdFctMessage(testMin, func(c ercode.CodeError) string {
		switch c {
		case codeFoo:
			return "foo failed"
		case codeBar:
			return "bar failed"
		}
		return ""
	})
}

func TestCodeError_Message(t *testing.T) {
	if got := codeFoo.Message(); got != "foo failed" {
		t.Fatalf("expected %q, got %q", "foo failed", got)
	}
	if got := ercode.CodeError(99999 % 65536).Message(); got == "foo failed" {
		t.Fatalf("unregistered code should not resolve to a registered message")
	}
}

func TestError_WrapsParent(t *testing.T) {
	parent := goerr.New("disk full")
	e := codeBar.Error(parent)

	if e.Code() != codeBar {
		t.Fatalf("expected code %v, got %v", codeBar, e.Code())
	}
	if !goerr.Is(e, parent) {
		t.Fatalf("expected Unwrap chain to reach parent")
	}
}

func TestError_IsComparesCode(t *testing.T) {
	a := codeFoo.Error()
	b := codeFoo.Error()
	c := codeBar.Error()

	if !goerr.Is(a, b) {
		t.Fatalf("same code errors should match Is()")
	}
	if goerr.Is(a, c) {
		t.Fatalf("different code errors should not match Is()")
	}
}
