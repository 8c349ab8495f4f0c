// Package logging provides the leveled, optionally colored console logger.
// The change log written by --log-file is a separate record stream (see
// package report); this logger only talks to the terminal.
package logging

import (
	"fmt"
	"io"
	"sync"
	"time"

	"github.com/charmbracelet/lipgloss"

	"github.com/backmassage/unifile/internal/config"
	"github.com/backmassage/unifile/internal/term"
)

// Logger provides leveled, optionally colored logging. ERROR lines go to the
// error writer, everything else to the output writer.
type Logger struct {
	mu      sync.Mutex
	out     io.Writer
	errOut  io.Writer
	verbose bool
	now     func() time.Time
}

// NewLogger configures terminal colors from cfg and returns a Logger writing
// to out, with ERROR lines going to errOut.
func NewLogger(cfg *config.Config, out, errOut io.Writer) *Logger {
	term.Configure(cfg.ColorMode)
	return NewLoggerTo(cfg, out, errOut)
}

// NewLoggerTo returns a Logger writing to the given writers. Colors follow
// whatever [term.Configure] last selected.
func NewLoggerTo(cfg *config.Config, out, errOut io.Writer) *Logger {
	return &Logger{
		out:     out,
		errOut:  errOut,
		verbose: cfg.Verbose,
		now:     time.Now,
	}
}

func (l *Logger) line(level string, style lipgloss.Style, text string) {
	ts := l.now().Format("2006-01-02 15:04:05")
	l.mu.Lock()
	defer l.mu.Unlock()
	out := l.out
	if level == "ERROR" {
		out = l.errOut
	}
	_, _ = io.WriteString(out, ts+" "+style.Render("["+level+"]")+" "+text+"\n")
}

// Info logs at INFO level (blue).
func (l *Logger) Info(format string, args ...interface{}) {
	l.line("INFO", term.Blue, fmt.Sprintf(format, args...))
}

// Success logs at SUCCESS level (green).
func (l *Logger) Success(format string, args ...interface{}) {
	l.line("SUCCESS", term.Green, fmt.Sprintf(format, args...))
}

// Warn logs at WARN level (yellow).
func (l *Logger) Warn(format string, args ...interface{}) {
	l.line("WARN", term.Yellow, fmt.Sprintf(format, args...))
}

// Error logs at ERROR level (red) to the error writer.
func (l *Logger) Error(format string, args ...interface{}) {
	l.line("ERROR", term.Red, fmt.Sprintf(format, args...))
}

// Debug logs at DEBUG level (cyan) only when the logger is verbose.
func (l *Logger) Debug(format string, args ...interface{}) {
	if !l.verbose {
		return
	}
	l.line("DEBUG", term.Cyan, fmt.Sprintf(format, args...))
}

// Verbose reports whether Debug lines are emitted.
func (l *Logger) Verbose() bool { return l.verbose }
