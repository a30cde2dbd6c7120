package console

import (
	"fmt"
	"io"

	"github.com/fatih/color"
)

// printer writes colored, icon-prefixed lines
type printer struct {
	out     io.Writer
	success *color.Color
	failure *color.Color
	warning *color.Color
	accent  *color.Color
	heading *color.Color
}

func newPrinter(out io.Writer) *printer {
	return &printer{
		out:     out,
		success: color.New(color.FgGreen),
		failure: color.New(color.FgRed),
		warning: color.New(color.FgYellow),
		accent:  color.New(color.FgCyan),
		heading: color.New(color.Bold),
	}
}

func (p *printer) Println(a ...any) {
	fmt.Fprintln(p.out, a...)
}

func (p *printer) Line(icon, text string) {
	fmt.Fprintln(p.out, joinIcon(icon, text))
}

func (p *printer) Success(icon, text string) {
	p.success.Fprintln(p.out, joinIcon(icon, text))
}

func (p *printer) Error(icon, text string) {
	p.failure.Fprintln(p.out, joinIcon(icon, text))
}

func (p *printer) Warn(icon, text string) {
	p.warning.Fprintln(p.out, joinIcon(icon, text))
}

func (p *printer) Accent(icon, text string) {
	p.accent.Fprintln(p.out, joinIcon(icon, text))
}

func (p *printer) Heading(text string) {
	p.heading.Fprintln(p.out, text)
}

func (p *printer) Separator(sep string) {
	fmt.Fprintln(p.out, sep)
}

func joinIcon(icon, text string) string {
	if icon == "" {
		return text
	}
	return icon + " " + text
}
