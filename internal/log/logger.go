// Package log provides output and diagnostic writing for the CLI.
package log

import (
	"fmt"
	"io"
	"os"
)

// Logger writes results to an output writer and diagnostics to an error
// writer. It never touches the filesystem.
type Logger struct {
	out io.Writer
	err io.Writer
}

// New creates a logger. Nil writers default to os.Stdout and os.Stderr.
func New(out, errOut io.Writer) *Logger {
	if out == nil {
		out = os.Stdout
	}
	if errOut == nil {
		errOut = os.Stderr
	}
	return &Logger{out: out, err: errOut}
}

// Println writes a message to the output writer with a newline.
func (l *Logger) Println(args ...interface{}) {
	_, _ = fmt.Fprintln(l.out, args...)
}

// Errorf writes a formatted diagnostic to the error writer, adding a
// trailing newline if the message lacks one.
func (l *Logger) Errorf(format string, args ...interface{}) {
	msg := fmt.Sprintf(format, args...)
	if len(msg) == 0 || msg[len(msg)-1] != '\n' {
		msg += "\n"
	}
	_, _ = fmt.Fprint(l.err, msg)
}

// Global logger instance
var globalLogger *Logger

// Init installs l as the global logger used by Errorf.
func Init(l *Logger) {
	globalLogger = l
}

// Errorf uses the global logger to print formatted error output.
func Errorf(format string, args ...interface{}) {
	if globalLogger != nil {
		globalLogger.Errorf(format, args...)
	} else {
		fmt.Fprintf(os.Stderr, format, args...)
	}
}
