package shell

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"

	"github.com/katalvlaran/matcalc/matrix"
)

const rule = "==========================================="

var menuLines = []string{
	"Select an option:",
	"1. Add matrices",
	"2. Subtract matrices",
	"3. Multiply matrices",
	"4. Divide matrices",
	"5. Exit",
}

// printer writes prompts, results and errors. Styles are resolved against
// the destination writer, so output to a pipe or buffer stays plain text.
type printer struct {
	out, errOut io.Writer
	title       lipgloss.Style
	fail        lipgloss.Style
	warn        lipgloss.Style
	precision   int
}

func newPrinter(out, errOut io.Writer, color bool, precision int) *printer {
	ro := lipgloss.NewRenderer(out)
	re := lipgloss.NewRenderer(errOut)
	if !color {
		ro.SetColorProfile(termenv.Ascii)
		re.SetColorProfile(termenv.Ascii)
	}
	return &printer{
		out:       out,
		errOut:    errOut,
		title:     ro.NewStyle().Bold(true).Foreground(lipgloss.Color("12")),
		fail:      re.NewStyle().Foreground(lipgloss.Color("9")),
		warn:      re.NewStyle().Foreground(lipgloss.Color("11")),
		precision: precision,
	}
}

func (p *printer) banner() {
	fmt.Fprintln(p.out, rule)
	fmt.Fprintln(p.out, p.title.Render("            MATRIX CALCULATOR"))
	fmt.Fprintln(p.out, rule)
}

func (p *printer) menu() {
	fmt.Fprintln(p.out, strings.Join(menuLines, "\n"))
	fmt.Fprintln(p.out, rule)
	fmt.Fprint(p.out, "Option: ")
}

func (p *printer) promptf(format string, args ...any) {
	fmt.Fprintf(p.out, format, args...)
}

// result prints the header and one matrix row per line.
func (p *printer) result(op Op, m matrix.Matrix) {
	fmt.Fprintf(p.out, "Result of the %s:\n", op)
	d, ok := m.(*matrix.Dense)
	if !ok {
		fmt.Fprint(p.out, m)
		return
	}
	fmt.Fprint(p.out, matrix.Format(d, p.precision))
}

func (p *printer) reportErr(err error) {
	fmt.Fprintln(p.errOut, p.fail.Render(err.Error()))
}

func (p *printer) reportWarn(msg string) {
	fmt.Fprintln(p.errOut, p.warn.Render(msg))
}
