package console

import (
	"fmt"
	"io"

	"github.com/fatih/color"
)

// Printer writes tagged, coloured status lines
type Printer struct {
	out     io.Writer
	verbose bool

	infoColor    *color.Color
	successColor *color.Color
	warningColor *color.Color
	errorColor   *color.Color
}

// NewPrinter creates a printer writing to out
func NewPrinter(out io.Writer, verbose bool) *Printer {
	return &Printer{
		out:          out,
		verbose:      verbose,
		infoColor:    color.New(color.FgBlue),
		successColor: color.New(color.FgGreen),
		warningColor: color.New(color.FgYellow),
		errorColor:   color.New(color.FgRed),
	}
}

func (p *Printer) line(c *color.Color, tag, format string, args ...interface{}) {
	fmt.Fprintf(p.out, "%s %s\n", c.Sprint(tag), fmt.Sprintf(format, args...))
}

// Info prints an informational line
func (p *Printer) Info(format string, args ...interface{}) {
	p.line(p.infoColor, "[*]", format, args...)
}

// Success prints a success line
func (p *Printer) Success(format string, args ...interface{}) {
	p.line(p.successColor, "[+]", format, args...)
}

// Warning prints a warning line
func (p *Printer) Warning(format string, args ...interface{}) {
	p.line(p.warningColor, "[!]", format, args...)
}

// Error prints an error line
func (p *Printer) Error(format string, args ...interface{}) {
	p.line(p.errorColor, "[-]", format, args...)
}

// Verbose prints an informational line only in verbose mode
func (p *Printer) Verbose(format string, args ...interface{}) {
	if p.verbose {
		p.Info(format, args...)
	}
}

// Plain prints text without a tag
func (p *Printer) Plain(format string, args ...interface{}) {
	fmt.Fprintf(p.out, format, args...)
}
