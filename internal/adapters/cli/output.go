package cli

import (
	"fmt"
	"io"
	"os"

	"github.com/fatih/color"
)

type Output struct {
	out    io.Writer
	errOut io.Writer

	green  *color.Color
	yellow *color.Color
	red    *color.Color
	gray   *color.Color
}

func NewOutput() *Output {
	return NewOutputTo(os.Stdout, os.Stderr, isTerminal())
}

func NewOutputTo(out, errOut io.Writer, colors bool) *Output {
	o := &Output{
		out:    out,
		errOut: errOut,
		green:  color.New(color.FgGreen),
		yellow: color.New(color.FgYellow),
		red:    color.New(color.FgRed),
		gray:   color.New(color.FgHiBlack),
	}
	if colors {
		for _, c := range []*color.Color{o.green, o.yellow, o.red, o.gray} {
			c.EnableColor()
		}
	} else {
		o.DisableColors()
	}
	return o
}

func (o *Output) DisableColors() {
	for _, c := range []*color.Color{o.green, o.yellow, o.red, o.gray} {
		c.DisableColor()
	}
}

func (o *Output) Writer() io.Writer {
	return o.out
}

func (o *Output) Green(text string) string {
	return o.green.Sprint(text)
}

func (o *Output) Yellow(text string) string {
	return o.yellow.Sprint(text)
}

func (o *Output) Red(text string) string {
	return o.red.Sprint(text)
}

func (o *Output) Gray(text string) string {
	return o.gray.Sprint(text)
}

func (o *Output) PrintHeader(msg string) {
	fmt.Fprintln(o.out, msg)
	fmt.Fprintln(o.out)
}

func (o *Output) PrintStep(msg string, args ...any) {
	fmt.Fprintf(o.out, "  "+msg+"\n", args...)
}

func (o *Output) PrintSuccess(msg string, args ...any) {
	formatted := fmt.Sprintf(msg, args...)
	fmt.Fprintf(o.out, "  %s%s\n", o.Green("✓ "), formatted)
}

func (o *Output) PrintWarning(msg string, args ...any) {
	formatted := fmt.Sprintf(msg, args...)
	fmt.Fprintf(o.out, "  %s%s\n", o.Yellow("⚠ "), formatted)
}

func (o *Output) PrintError(msg string, args ...any) {
	formatted := fmt.Sprintf(msg, args...)
	fmt.Fprintf(o.errOut, "  %s%s\n", o.Red("✗ "), formatted)
}

func (o *Output) PrintFile(path string) {
	fmt.Fprintf(o.out, "    %s\n", path)
}

func (o *Output) PrintDone(msg string, args ...any) {
	fmt.Fprintf(o.out, msg+"\n", args...)
}

func isTerminal() bool {
	stat, err := os.Stdout.Stat()
	if err != nil {
		return false
	}
	return (stat.Mode() & os.ModeCharDevice) == os.ModeCharDevice
}
