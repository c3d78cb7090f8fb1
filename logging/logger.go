/*
MIT License

Copyright (c) 2019 Nicolas JUHEL

Permission is hereby granted, free of charge, to any person obtaining a copy
of this software and associated documentation files (the "Software"), to deal
in the Software without restriction, including without limitation the rights
to use, copy, modify, merge, publish, distribute, sublicense, and/or sell
copies of the Software, and to permit persons to whom the Software is
furnished to do so, subject to the following conditions:

The above copyright notice and this permission notice shall be included in all
copies or substantial portions of the Software.

THE SOFTWARE IS PROVIDED "AS IS", WITHOUT WARRANTY OF ANY KIND, EXPRESS OR
IMPLIED, INCLUDING BUT NOT LIMITED TO THE WARRANTIES OF MERCHANTABILITY,
FITNESS FOR A PARTICULAR PURPOSE AND NONINFRINGEMENT. IN NO EVENT SHALL THE
AUTHORS OR COPYRIGHT HOLDERS BE LIABLE FOR ANY CLAIM, DAMAGES OR OTHER
LIABILITY, WHETHER IN AN ACTION OF CONTRACT, TORT OR OTHERWISE, ARISING FROM,
OUT OF OR IN CONNECTION WITH THE SOFTWARE OR THE USE OR OTHER DEALINGS IN THE
SOFTWARE.
*/

package logging

import (
	"io"
	"os"

	"github.com/sirupsen/logrus"
)

// Logger is the interface every embsh component accepts at construction.
// A nil Logger is always valid — every call site falls back to a silent
// no-op sink, the same "nil is fine" convention shell.New(nil) uses for
// its TTYSaver.
type Logger interface {
	SetLevel(lvl Level)
	GetLevel() Level

	WithFields(f Fields) Logger

	Debug(msg string, args ...interface{})
	Info(msg string, args ...interface{})
	Warn(msg string, args ...interface{})
	Error(msg string, args ...interface{})
}

type logger struct {
	l *logrus.Logger
	f Fields
}

// New builds a Logger writing to out, formatted as text, filtered at lvl.
func New(out io.Writer, lvl Level) Logger {
	if out == nil {
		out = os.Stderr
	}

	l := logrus.New()
	l.SetOutput(out)
	l.SetLevel(lvl.logrus())
	l.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})

	return &logger{l: l, f: Fields{}}
}

func (g *logger) SetLevel(lvl Level) {
	g.l.SetLevel(lvl.logrus())
}

func (g *logger) GetLevel() Level {
	switch g.l.GetLevel() {
	case logrus.PanicLevel:
		return PanicLevel
	case logrus.FatalLevel:
		return FatalLevel
	case logrus.ErrorLevel:
		return ErrorLevel
	case logrus.WarnLevel:
		return WarnLevel
	case logrus.DebugLevel, logrus.TraceLevel:
		return DebugLevel
	default:
		return InfoLevel
	}
}

func (g *logger) WithFields(f Fields) Logger {
	return &logger{l: g.l, f: g.f.Merge(f)}
}

func (g *logger) entry() *logrus.Entry {
	return g.l.WithFields(logrus.Fields(g.f))
}

func (g *logger) Debug(msg string, args ...interface{}) { g.entry().Debugf(msg, args...) }
func (g *logger) Info(msg string, args ...interface{})  { g.entry().Infof(msg, args...) }
func (g *logger) Warn(msg string, args ...interface{})  { g.entry().Warnf(msg, args...) }
func (g *logger) Error(msg string, args ...interface{}) { g.entry().Errorf(msg, args...) }

// nopLogger is returned by Safe(nil) so every component can unconditionally
// call the Logger methods.
type nopLogger struct{}

func (nopLogger) SetLevel(Level)                        {}
func (nopLogger) GetLevel() Level                        { return NilLevel() }
func (nopLogger) WithFields(Fields) Logger               { return nopLogger{} }
func (nopLogger) Debug(string, ...interface{})           {}
func (nopLogger) Info(string, ...interface{})            {}
func (nopLogger) Warn(string, ...interface{})            {}
func (nopLogger) Error(string, ...interface{})           {}

// NilLevel is not a logrus level — it exists only so nopLogger.GetLevel
// has something harmless to return.
func NilLevel() Level { return Level(255) }

// Safe returns l, or a no-op Logger if l is nil.
func Safe(l Logger) Logger {
	if l == nil {
		return nopLogger{}
	}
	return l
}
