// Package ui renders kickoff's human-readable status output.
package ui

import (
	"fmt"
	"io"
	"time"
)

// ANSI styles for status lines. The label is part of the escape prefix
// so the whole "[INFO]: ..." line is colored.
const (
	Terminator = "\x1b[0m"
	Warning    = "\x1b[1;33m [WARNING]: "
	Info       = "\x1b[1;33m [INFO]: "
	Hint       = "\x1b[3;33m"
	Success    = "\x1b[1;32m [SUCCESS]: "
)

// Printer writes status lines to a single writer (normally stdout).
type Printer struct {
	w     io.Writer
	sleep func(time.Duration)
}

// NewPrinter creates a Printer writing to w.
func NewPrinter(w io.Writer) *Printer {
	return &Printer{w: w, sleep: time.Sleep}
}

// WithSleep replaces the delay used between animation frames.
func (p *Printer) WithSleep(sleep func(time.Duration)) *Printer {
	p.sleep = sleep
	return p
}

// Info prints an informational line.
func (p *Printer) Info(format string, args ...any) {
	p.styled(Info, format, args...)
}

// Warning prints a warning line. Warnings never stop the bootstrap.
func (p *Printer) Warning(format string, args ...any) {
	p.styled(Warning, format, args...)
}

// Success prints a success line.
func (p *Printer) Success(format string, args ...any) {
	p.styled(Success, format, args...)
}

// Hint prints an italic hint line.
func (p *Printer) Hint(format string, args ...any) {
	p.styled(Hint, format, args...)
}

// Plain prints an unstyled line.
func (p *Printer) Plain(format string, args ...any) {
	fmt.Fprintf(p.w, format+"\n", args...)
}

func (p *Printer) styled(style, format string, args ...any) {
	fmt.Fprint(p.w, style+fmt.Sprintf(format, args...)+Terminator+"\n")
}
