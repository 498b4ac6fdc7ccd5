package diagnostic

import (
	"fmt"
	"io"

	"github.com/fatih/color"
)

// Printer writes diagnostics for humans, colouring them by severity.
type Printer struct {
	NoColor bool
	// Quiet drops infos.
	Quiet bool
}

func (p Printer) style(s DiagnosticSeverity) (*color.Color, string) {
	var c *color.Color

	switch s {
	case DiagnosticError:
		c = color.New(color.FgRed, color.Bold)
	case DiagnosticWarning:
		c = color.New(color.FgYellow, color.Bold)
	default:
		c = color.New(color.FgCyan)
	}

	if p.NoColor {
		c.DisableColor()
	}

	return c, s.String()
}

// Format renders one diagnostic as "location: severity: [CODE] subject: message".
func (p Printer) Format(d Diagnostic) string {
	c, label := p.style(d.Severity)

	head := c.Sprint(label)
	if loc := d.Location(); loc != "" {
		head = loc + ": " + head
	}

	msg := d.Message
	if subject := d.Subject(); subject != "" {
		msg = subject + ": " + msg
	}

	if d.Code != "" {
		msg = fmt.Sprintf("[%s] %s", d.Code, msg)
	}

	return head + ": " + msg
}

// Print writes errors, then warnings, then infos, one per line.
func (p Printer) Print(w io.Writer, d *Diagnostics) {
	for _, group := range [][]Diagnostic{d.Errors, d.Warnings, d.Infos} {
		for _, diag := range group {
			if p.Quiet && diag.Severity == DiagnosticInfo {
				continue
			}

			fmt.Fprintln(w, p.Format(diag))
		}
	}
}
