package ui

import (
	"io"
	"os"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
	"golang.org/x/term"
)

// Color palette
var (
	PrimaryColor = lipgloss.Color("#7D56F4") // Purple - headers, dividers
	SuccessColor = lipgloss.Color("#43BF6D") // Green - success, checkmarks
	ErrorColor   = lipgloss.Color("#FF5555") // Red - errors, X marks
	MutedColor   = lipgloss.Color("#626262") // Gray - secondary info
	LinkColor    = lipgloss.Color("#5FAFFF") // Blue - URLs
)

// Layout constants
const (
	MinTerminalWidth = 60  // Minimum supported terminal width
	MaxContentWidth  = 120 // Maximum content width before capping
	ColumnGap        = 2   // Spaces between table columns
)

// Status markers
const (
	SuccessMarker = "✓"
	FailureMarker = "✗"
	DividerChar   = "─"
)

// Mode selects whether output is colored.
type Mode string

const (
	ModeAuto  Mode = "auto"
	ModeColor Mode = "color"
	ModePlain Mode = "plain"
)

// styles holds the styles bound to one renderer.
type styles struct {
	header    lipgloss.Style
	namespace lipgloss.Style
	url       lipgloss.Style
	divider   lipgloss.Style
	muted     lipgloss.Style
	success   lipgloss.Style
	failure   lipgloss.Style
}

// newStyles builds the style set on r.
func newStyles(r *lipgloss.Renderer) styles {
	return styles{
		header:    r.NewStyle().Foreground(PrimaryColor).Bold(true),
		namespace: r.NewStyle().Bold(true),
		url:       r.NewStyle().Foreground(LinkColor),
		divider:   r.NewStyle().Foreground(PrimaryColor),
		muted:     r.NewStyle().Foreground(MutedColor),
		success:   r.NewStyle().Foreground(SuccessColor),
		failure:   r.NewStyle().Foreground(ErrorColor),
	}
}

// terminalFile returns w as an *os.File when it is a terminal.
func terminalFile(w io.Writer) (*os.File, bool) {
	f, ok := w.(*os.File)
	if !ok || !term.IsTerminal(int(f.Fd())) {
		return nil, false
	}
	return f, true
}

// IsTerminal reports whether w is a terminal.
func IsTerminal(w io.Writer) bool {
	_, ok := terminalFile(w)
	return ok
}

// useColor decides whether a writer gets colored output under mode.
func useColor(w io.Writer, mode Mode) bool {
	switch mode {
	case ModeColor:
		return true
	case ModePlain:
		return false
	default:
		return IsTerminal(w)
	}
}

// newRenderer returns a renderer for w with color forced on or off.
func newRenderer(w io.Writer, color bool) *lipgloss.Renderer {
	r := lipgloss.NewRenderer(w)
	if color {
		r.SetColorProfile(termenv.TrueColor)
	} else {
		r.SetColorProfile(termenv.Ascii)
	}
	return r
}

// TerminalWidth returns the width of the terminal behind w, clamped to
// [MinTerminalWidth, MaxContentWidth]. Writers that are not terminals get
// MaxContentWidth.
func TerminalWidth(w io.Writer) int {
	f, ok := terminalFile(w)
	if !ok {
		return MaxContentWidth
	}
	width, _, err := term.GetSize(int(f.Fd()))
	if err != nil {
		return MaxContentWidth
	}
	return min(max(width, MinTerminalWidth), MaxContentWidth)
}

// horizontalDivider creates a line of the specified width
func horizontalDivider(width int) string {
	if width <= 0 {
		return ""
	}
	return strings.Repeat(DividerChar, width)
}
