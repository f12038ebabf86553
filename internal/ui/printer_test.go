package ui

import (
	"bytes"
	"errors"
	"os"
	"strings"
	"testing"

	"github.com/gidocs/urlmap/internal/urlmap"
)

var testEntries = []urlmap.Entry{
	{Namespace: "GLib", BaseURL: "https://docs.gtk.org/glib/"},
	{Namespace: "Gio", BaseURL: "https://docs.gtk.org/gio/"},
	{Namespace: "GObject", BaseURL: "https://docs.gtk.org/gobject/"},
}

func TestNewPrinter_Modes(t *testing.T) {
	var buf bytes.Buffer

	if NewPrinter(&buf, ModeAuto).Color() {
		t.Error("auto mode should not color a buffer")
	}
	if NewPrinter(&buf, ModePlain).Color() {
		t.Error("plain mode should not color")
	}
	if !NewPrinter(&buf, ModeColor).Color() {
		t.Error("color mode should color")
	}
}

func TestPrinter_TablePlain(t *testing.T) {
	var buf bytes.Buffer
	p := NewPrinter(&buf, ModePlain)

	if err := p.Table(testEntries); err != nil {
		t.Fatalf("Table() error = %v", err)
	}

	divider := strings.Repeat("─", 9+ColumnGap+29)
	want := "NAMESPACE  BASE URL\n" +
		divider + "\n" +
		"GLib       https://docs.gtk.org/glib/\n" +
		"Gio        https://docs.gtk.org/gio/\n" +
		"GObject    https://docs.gtk.org/gobject/\n" +
		"3 namespaces\n"

	if buf.String() != want {
		t.Errorf("Table() =\n%s\nwant\n%s", buf.String(), want)
	}
}

func TestPrinter_TableEmpty(t *testing.T) {
	var buf bytes.Buffer
	if err := NewPrinter(&buf, ModePlain).Table(nil); err != nil {
		t.Fatalf("Table() error = %v", err)
	}
	if !strings.HasSuffix(buf.String(), "0 namespaces\n") {
		t.Errorf("Table(nil) = %q", buf.String())
	}
}

func TestPrinter_TableColorKeepsContent(t *testing.T) {
	var buf bytes.Buffer
	if err := NewPrinter(&buf, ModeColor).Table(testEntries); err != nil {
		t.Fatalf("Table() error = %v", err)
	}
	for _, e := range testEntries {
		if !strings.Contains(buf.String(), e.BaseURL) {
			t.Errorf("colored table is missing %q", e.BaseURL)
		}
	}
}

func TestPrinter_Plain(t *testing.T) {
	var buf bytes.Buffer
	if err := NewPrinter(&buf, ModeColor).Plain(testEntries[:2]); err != nil {
		t.Fatalf("Plain() error = %v", err)
	}

	want := "GLib\thttps://docs.gtk.org/glib/\nGio\thttps://docs.gtk.org/gio/\n"
	if buf.String() != want {
		t.Errorf("Plain() = %q, want %q", buf.String(), want)
	}
}

func TestPrinter_URL(t *testing.T) {
	var buf bytes.Buffer
	if err := NewPrinter(&buf, ModePlain).URL("https://docs.gtk.org/glib/"); err != nil {
		t.Fatalf("URL() error = %v", err)
	}
	if buf.String() != "https://docs.gtk.org/glib/\n" {
		t.Errorf("URL() = %q", buf.String())
	}
}

func TestPrinter_CheckResult(t *testing.T) {
	var buf bytes.Buffer
	p := NewPrinter(&buf, ModePlain)

	_ = p.CheckResult("ok.yaml", 1, nil)
	_ = p.CheckResult("bad.yaml", 0, errors.New("entry 0: invalid entry"))

	want := "✓ ok.yaml (1 namespace)\n✗ bad.yaml: entry 0: invalid entry\n"
	if buf.String() != want {
		t.Errorf("CheckResult() =\n%q\nwant\n%q", buf.String(), want)
	}
}

func TestTerminalWidth_NonTerminal(t *testing.T) {
	var buf bytes.Buffer
	if got := TerminalWidth(&buf); got != MaxContentWidth {
		t.Errorf("TerminalWidth(buffer) = %d, want %d", got, MaxContentWidth)
	}

	f, err := os.CreateTemp(t.TempDir(), "out")
	if err != nil {
		t.Fatalf("failed to create file: %v", err)
	}
	defer f.Close()
	if got := TerminalWidth(f); got != MaxContentWidth {
		t.Errorf("TerminalWidth(file) = %d, want %d", got, MaxContentWidth)
	}
}

func TestPrinter_TableDividerFollowsWriter(t *testing.T) {
	// A long URL is capped by the destination's width, not by os.Stdout
	long := urlmap.Entry{Namespace: "Long", BaseURL: "https://example.org/" + strings.Repeat("a", 200) + "/"}

	var buf bytes.Buffer
	if err := NewPrinter(&buf, ModePlain).Table([]urlmap.Entry{long}); err != nil {
		t.Fatalf("Table() error = %v", err)
	}

	lines := strings.Split(buf.String(), "\n")
	if got := len([]rune(lines[1])); got != MaxContentWidth {
		t.Errorf("divider width = %d, want %d", got, MaxContentWidth)
	}
}

func TestPadRight(t *testing.T) {
	if got := padRight("Gio", 5); got != "Gio  " {
		t.Errorf("padRight(Gio, 5) = %q", got)
	}
	if got := padRight("GObject", 3); got != "GObject" {
		t.Errorf("padRight(GObject, 3) = %q", got)
	}
}
