package ui

import (
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/arthur-debert/st7735-setup/pkg/paths"
	"github.com/arthur-debert/st7735-setup/pkg/setup"
	"github.com/arthur-debert/st7735-setup/pkg/ui/styles"
)

type statusRow struct {
	label string
	value string
	style string
}

// RenderStatus prints st in the given format
func RenderStatus(w io.Writer, format Format, st *setup.CheckoutStatus) error {
	format = Resolve(format, w)
	if format == FormatJSON {
		return WriteJSON(w, st)
	}

	rows := statusRows(st)
	var b strings.Builder
	if format == FormatTerminal {
		b.WriteString(styles.Render("Header", "st7735-python checkout"))
		b.WriteString("\n")
		for _, row := range rows {
			b.WriteString(styles.Render("Label", row.label))
			b.WriteString(styles.Render(row.style, row.value))
			b.WriteString("\n")
		}
	} else {
		for _, row := range rows {
			fmt.Fprintf(&b, "%-14s%s\n", row.label, row.value)
		}
	}

	_, err := io.WriteString(w, b.String())
	return err
}

func statusRows(st *setup.CheckoutStatus) []statusRow {
	rows := []statusRow{
		{label: "Repository", value: st.Repository, style: "Value"},
	}

	if !st.Exists {
		rows = append(rows, statusRow{label: "Checkout", value: paths.Tilde(st.Checkout) + " (missing)", style: "Warning"})
	} else {
		rows = append(rows, statusRow{label: "Checkout", value: paths.Tilde(st.Checkout), style: "Path"})

		if st.ManifestPresent {
			rows = append(rows, statusRow{
				label: "Manifest",
				value: fmt.Sprintf("%s (%d requirements)", st.Manifest, len(st.Requirements)),
				style: "Value",
			})
		} else {
			rows = append(rows, statusRow{label: "Manifest", value: st.Manifest + " (missing)", style: "Warning"})
		}

		if st.Package != nil {
			rows = append(rows, statusRow{label: "Package", value: st.Package.Label(), style: "Value"})
		} else {
			rows = append(rows, statusRow{label: "Package", value: "no packaging descriptor", style: "Muted"})
		}

		if len(st.Examples) > 0 {
			rows = append(rows, statusRow{label: "Examples", value: strings.Join(st.Examples, ", "), style: "Value"})
		}
	}

	if st.LastRun == nil {
		rows = append(rows, statusRow{label: "Last run", value: "never", style: "Muted"})
		return rows
	}

	run := st.LastRun
	value := fmt.Sprintf("%s at %s", run.State, run.StartedAt.Local().Format(time.DateTime))
	style := "Success"
	if run.State != string(setup.StateSucceeded) {
		style = "Error"
		if run.FailedStep != "" {
			value += fmt.Sprintf(", step %s, exit %d", run.FailedStep, run.ExitCode)
		}
	}
	if run.DryRun {
		value += " (dry run)"
	}
	rows = append(rows, statusRow{label: "Last run", value: value, style: style})
	if run.Commit != "" {
		rows = append(rows, statusRow{label: "Commit", value: shortCommit(run.Commit), style: "Muted"})
	}
	return rows
}

func shortCommit(commit string) string {
	if len(commit) > 12 {
		return commit[:12]
	}
	return commit
}
