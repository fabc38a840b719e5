package output

import (
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/lipgloss"
)

// Mode selects between styled panels and plain machine-friendly text.
type Mode string

const (
	ModePretty Mode = "pretty"
	ModeData   Mode = "data"
)

// Printer displays titled messages for the CLI. Pretty mode draws themed
// panels; data mode prints a bracketed header and the raw body to stderr so
// stdout stays clean for piping.
type Printer struct {
	mode   Mode
	out    io.Writer
	errOut io.Writer
}

// NewPrinter creates a Printer writing to stdout/stderr.
func NewPrinter(mode Mode) *Printer {
	return &Printer{mode: mode, out: os.Stdout, errOut: os.Stderr}
}

// NewPrinterTo creates a Printer with explicit writers (used in tests).
func NewPrinterTo(mode Mode, out, errOut io.Writer) *Printer {
	return &Printer{mode: mode, out: out, errOut: errOut}
}

func (p *Printer) Success(title, body string) {
	p.display("success", successPanelStyle, successTitleStyle, title, body)
}

func (p *Printer) Warning(title, body string) {
	p.display("warning", warningPanelStyle, warningTitleStyle, title, body)
}

func (p *Printer) Error(title, body string) {
	p.display("error", errorPanelStyle, errorTitleStyle, title, body)
}

func (p *Printer) Info(title, body string) {
	p.display("info", infoPanelStyle, infoTitleStyle, title, body)
}

// Plain prints a message to stdout without any framing, in either mode.
func (p *Printer) Plain(message string) {
	fmt.Fprintln(p.out, message)
}

func (p *Printer) display(theme string, panel, titleStyle lipgloss.Style, title, body string) {
	if p.mode == ModeData {
		if title != "" {
			fmt.Fprintf(p.errOut, "[%s] %s\n", theme, title)
		}
		fmt.Fprintln(p.errOut, body)
		fmt.Fprintln(p.errOut)
		return
	}

	content := body
	if title != "" {
		content = titleStyle.Render(title) + "\n\n" + body
	}
	fmt.Fprintln(p.out, panel.Render(content))
}
