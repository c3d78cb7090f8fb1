package logging_test

import (
	"bytes"
	"strings"
	"testing"

	"github.com/nabbar/embsh/logging"
)

func TestLogger_LevelFiltering(t *testing.T) {
	buf := &bytes.Buffer{}
	l := logging.New(buf, logging.WarnLevel)

	l.Info("should not appear")
	if buf.Len() != 0 {
		t.Fatalf("expected info to be filtered out, got %q", buf.String())
	}

	l.Warn("should appear")
	if !strings.Contains(buf.String(), "should appear") {
		t.Fatalf("expected warn message in output, got %q", buf.String())
	}
}

func TestLogger_WithFields(t *testing.T) {
	buf := &bytes.Buffer{}
	l := logging.New(buf, logging.DebugLevel)
	l = l.WithFields(logging.Fields{"session": "abc123"})
	l.Debug("hello")

	if !strings.Contains(buf.String(), "session=abc123") {
		t.Fatalf("expected field in output, got %q", buf.String())
	}
}

func TestLogger_GetSetLevel(t *testing.T) {
	l := logging.New(nil, logging.ErrorLevel)
	if l.GetLevel() != logging.ErrorLevel {
		t.Fatalf("expected ErrorLevel, got %v", l.GetLevel())
	}
	l.SetLevel(logging.DebugLevel)
	if l.GetLevel() != logging.DebugLevel {
		t.Fatalf("expected DebugLevel after SetLevel, got %v", l.GetLevel())
	}
}

func TestSafe_NilLogger(t *testing.T) {
	var l logging.Logger
	safe := logging.Safe(l)
	safe.Info("noop")
	safe.WithFields(logging.Fields{"a": 1}).Error("noop")
}
