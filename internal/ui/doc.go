// Package ui renders urlmap command output for terminals and pipes.
//
// Output is styled with Lipgloss when color is enabled. In "auto" mode color
// is used only when the destination is a terminal, so piping `urlmap list`
// into another program yields plain text.
//
// Example:
//
//	p := ui.NewPrinter(os.Stdout, ui.ModeAuto)
//	p.Table(table.Entries())
package ui
