// Package ui renders st7735-setup output in one of three formats.
//
// Terminal output uses pterm prefix printers for step progress, glamour for
// the closing hint and lipgloss styles (see the styles subpackage) for the
// status view. Text output carries the same information without escape
// codes, and JSON output emits the run result or status as one document.
package ui
