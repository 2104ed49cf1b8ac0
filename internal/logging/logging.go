// Package logging provides the levelled stderr logger used by sealr.
//
// Warnings are shown unless Quiet is set, info needs Verbose or Debug,
// debug output needs Debug. Errors are always shown.
package logging

import (
	"fmt"
	"io"
	"os"

	"github.com/fatih/color"
)

// Logger writes prefixed, coloured messages.
type Logger struct {
	Verbose bool
	Debug   bool
	Quiet   bool

	// Out defaults to os.Stderr.
	Out io.Writer
}

// New creates a Logger writing to out, or to os.Stderr when out is nil.
func New(out io.Writer, verbose, debug, quiet bool) *Logger {
	if out == nil {
		out = os.Stderr
	}

	return &Logger{Verbose: verbose, Debug: debug, Quiet: quiet, Out: out}
}

// Infof logs when Verbose or Debug is set.
func (l *Logger) Infof(msg string, args ...any) {
	if l.Verbose || l.Debug {
		l.printf(color.GreenString("[info] "), msg, args...)
	}
}

// Debugf logs when Debug is set.
func (l *Logger) Debugf(msg string, args ...any) {
	if l.Debug {
		l.printf(color.CyanString("[debug] "), msg, args...)
	}
}

// Warnf logs unless Quiet is set.
func (l *Logger) Warnf(msg string, args ...any) {
	if !l.Quiet {
		l.printf(color.YellowString("[warn] "), msg, args...)
	}
}

// Errorf always logs.
func (l *Logger) Errorf(msg string, args ...any) {
	l.printf(color.RedString("[error] "), msg, args...)
}

func (l *Logger) printf(prefix, msg string, args ...any) {
	out := l.Out
	if out == nil {
		out = os.Stderr
	}

	fmt.Fprintf(out, prefix+msg+"\n", args...)
}
