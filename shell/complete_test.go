package shell_test

import (
	"testing"

	"github.com/nabbar/embsh/shell"
	"github.com/nabbar/embsh/shell/command"
)

func TestAutocomplete_NoMatch(t *testing.T) {
	sh := shell.New(nil)
	_ = sh.Add("", command.New("help", "", nil))

	match, count := shell.Autocomplete(sh, "zz")
	if count != 0 || match != "" {
		t.Fatalf("expected no match, got %q/%d", match, count)
	}
}

func TestAutocomplete_SingleMatch(t *testing.T) {
	sh := shell.New(nil)
	_ = sh.Add("", command.New("help", "", nil))

	match, count := shell.Autocomplete(sh, "he")
	if count != 1 || match != "help" {
		t.Fatalf("expected single match %q, got %q/%d", "help", match, count)
	}
}

func TestAutocomplete_MultipleMatchesLongestCommonPrefix(t *testing.T) {
	sh := shell.New(nil)
	_ = sh.Add("", command.New("set", "", nil), command.New("setenv", "", nil), command.New("status", "", nil))

	match, count := shell.Autocomplete(sh, "se")
	if count != 2 {
		t.Fatalf("expected 2 matches, got %d", count)
	}
	if match != "set" {
		t.Fatalf("expected longest common prefix %q, got %q", "set", match)
	}
}
