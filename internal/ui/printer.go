package ui

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/gidocs/urlmap/internal/urlmap"
)

// Printer writes command output to a single destination.
type Printer struct {
	w      io.Writer
	color  bool
	styles styles
}

// NewPrinter creates a Printer for w. In ModeAuto, color is enabled only
// when w is a terminal.
func NewPrinter(w io.Writer, mode Mode) *Printer {
	color := useColor(w, mode)
	return &Printer{
		w:      w,
		color:  color,
		styles: newStyles(newRenderer(w, color)),
	}
}

// Color reports whether the printer emits styled output.
func (p *Printer) Color() bool {
	return p.color
}

// render applies style only when color is enabled
func (p *Printer) render(style lipgloss.Style, s string) string {
	if !p.color {
		return s
	}
	return style.Render(s)
}

// Table prints entries as an aligned two-column table with a header.
func (p *Printer) Table(entries []urlmap.Entry) error {
	nsWidth := len("NAMESPACE")
	urlWidth := len("BASE URL")
	for _, e := range entries {
		nsWidth = max(nsWidth, lipgloss.Width(e.Namespace))
		urlWidth = max(urlWidth, lipgloss.Width(e.BaseURL))
	}

	gap := strings.Repeat(" ", ColumnGap)
	divider := horizontalDivider(min(nsWidth+ColumnGap+urlWidth, TerminalWidth(p.w)))

	var b strings.Builder
	b.WriteString(p.render(p.styles.header, padRight("NAMESPACE", nsWidth)))
	b.WriteString(gap)
	b.WriteString(p.render(p.styles.header, "BASE URL"))
	b.WriteString("\n")
	b.WriteString(p.render(p.styles.divider, divider))
	b.WriteString("\n")

	for _, e := range entries {
		b.WriteString(p.render(p.styles.namespace, padRight(e.Namespace, nsWidth)))
		b.WriteString(gap)
		b.WriteString(p.render(p.styles.url, e.BaseURL))
		b.WriteString("\n")
	}

	b.WriteString(p.render(p.styles.muted, countLabel(len(entries))))
	b.WriteString("\n")

	_, err := io.WriteString(p.w, b.String())
	return err
}

// Plain prints one tab-separated "namespace<TAB>base_url" line per entry.
func (p *Printer) Plain(entries []urlmap.Entry) error {
	var b strings.Builder
	for _, e := range entries {
		b.WriteString(e.Namespace)
		b.WriteString("\t")
		b.WriteString(e.BaseURL)
		b.WriteString("\n")
	}
	_, err := io.WriteString(p.w, b.String())
	return err
}

// URL prints a single resolved URL.
func (p *Printer) URL(u string) error {
	_, err := fmt.Fprintln(p.w, p.render(p.styles.url, u))
	return err
}

// Raw writes data unchanged.
func (p *Printer) Raw(data []byte) error {
	_, err := p.w.Write(data)
	return err
}

// CheckResult prints the outcome of validating one map file.
func (p *Printer) CheckResult(path string, entries int, err error) error {
	var line string
	if err != nil {
		line = p.render(p.styles.failure, FailureMarker) + " " + path + ": " + p.render(p.styles.failure, err.Error())
	} else {
		line = p.render(p.styles.success, SuccessMarker) + " " + path + " " + p.render(p.styles.muted, "("+countLabel(entries)+")")
	}
	_, werr := fmt.Fprintln(p.w, line)
	return werr
}

// countLabel returns "1 namespace" or "N namespaces".
func countLabel(n int) string {
	if n == 1 {
		return "1 namespace"
	}
	return fmt.Sprintf("%d namespaces", n)
}

// padRight pads s with spaces to width display cells.
func padRight(s string, width int) string {
	if w := lipgloss.Width(s); w < width {
		return s + strings.Repeat(" ", width-w)
	}
	return s
}
