package ui

import (
	"fmt"
	"io"
	"sort"

	"github.com/arthur-debert/st7735-setup/pkg/errors"
	"github.com/pterm/pterm"
)

// RenderError prints err for the user in the given format
func RenderError(w io.Writer, format Format, err error) {
	if err == nil {
		return
	}
	switch Resolve(format, w) {
	case FormatJSON:
		_ = WriteJSON(w, jsonError{
			Error:    err.Error(),
			Code:     errors.GetErrorCode(err),
			ExitCode: errors.ExitCode(err),
			Details:  errors.GetErrorDetails(err),
		})
	case FormatTerminal:
		_, _ = fmt.Fprint(w, pterm.Error.Sprintln(err.Error()))
		for _, line := range detailLines(err) {
			_, _ = fmt.Fprint(w, pterm.FgGray.Sprintln("  " + line))
		}
	default:
		_, _ = fmt.Fprintf(w, "Error: %s\n", err)
		for _, line := range detailLines(err) {
			_, _ = fmt.Fprintf(w, "  %s\n", line)
		}
	}
}

func detailLines(err error) []string {
	details := errors.GetErrorDetails(err)
	keys := make([]string, 0, len(details))
	for k := range details {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	lines := make([]string, 0, len(keys))
	for _, k := range keys {
		lines = append(lines, fmt.Sprintf("%s: %v", k, details[k]))
	}
	return lines
}
