// Package ui renders human-readable terminal output and interactive prompts.
package ui

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/mattn/go-colorable"
	"github.com/mattn/go-isatty"
	"github.com/mgutz/ansi"
)

var (
	green  = ansi.ColorFunc("green")
	red    = ansi.ColorFunc("red")
	yellow = ansi.ColorFunc("yellow")
	blue   = ansi.ColorFunc("blue")
	cyan   = ansi.ColorFunc("cyan")
	bold   = ansi.ColorFunc("default+b")
	dim    = ansi.ColorFunc("default+d")
)

// Printer writes status lines and formatted lists, coloring them when the
// destination is a terminal and color has not been disabled.
type Printer struct {
	Out   io.Writer
	Color bool
}

// NewPrinter returns a printer on stdout. Color is enabled when stdout is a
// TTY, the config allows it, and NO_COLOR is unset.
func NewPrinter(colorSetting bool) *Printer {
	enabled := colorSetting &&
		os.Getenv("NO_COLOR") == "" &&
		(isatty.IsTerminal(os.Stdout.Fd()) || isatty.IsCygwinTerminal(os.Stdout.Fd()))
	return &Printer{Out: colorable.NewColorableStdout(), Color: enabled}
}

// NewPlainPrinter returns an uncolored printer on the given writer.
func NewPlainPrinter(out io.Writer) *Printer {
	return &Printer{Out: out}
}

func (p *Printer) paint(f func(string) string, s string) string {
	if !p.Color {
		return s
	}
	return f(s)
}

// Success prints a checkmarked message.
func (p *Printer) Success(format string, args ...any) {
	fmt.Fprintf(p.Out, "%s %s\n", p.paint(green, "✓"), fmt.Sprintf(format, args...))
}

// Error prints a cross-marked message.
func (p *Printer) Error(format string, args ...any) {
	fmt.Fprintf(p.Out, "%s %s\n", p.paint(red, "✗"), fmt.Sprintf(format, args...))
}

// Warning prints a warning message.
func (p *Printer) Warning(format string, args ...any) {
	fmt.Fprintf(p.Out, "%s %s\n", p.paint(yellow, "⚠"), fmt.Sprintf(format, args...))
}

// Info prints an informational message.
func (p *Printer) Info(format string, args ...any) {
	fmt.Fprintf(p.Out, "%s %s\n", p.paint(blue, "ℹ"), fmt.Sprintf(format, args...))
}

// Printf writes formatted output without any prefix.
func (p *Printer) Printf(format string, args ...any) {
	fmt.Fprintf(p.Out, format, args...)
}

// Println writes a plain line.
func (p *Printer) Println(args ...any) {
	fmt.Fprintln(p.Out, args...)
}

// Header prints a bold title with an underline rule.
func (p *Printer) Header(title string) {
	fmt.Fprintln(p.Out, p.paint(bold, title))
	fmt.Fprintln(p.Out, strings.Repeat("─", len([]rune(title))))
}

// Cyan returns s highlighted for emphasis.
func (p *Printer) Cyan(s string) string { return p.paint(cyan, s) }

// Green returns s in success color.
func (p *Printer) Green(s string) string { return p.paint(green, s) }

// Yellow returns s in caution color.
func (p *Printer) Yellow(s string) string { return p.paint(yellow, s) }

// Red returns s in failure color.
func (p *Printer) Red(s string) string { return p.paint(red, s) }

// Dim returns s de-emphasized.
func (p *Printer) Dim(s string) string { return p.paint(dim, s) }
