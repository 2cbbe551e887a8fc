package ui

import (
	"fmt"
	"io"
	"time"

	"github.com/arthur-debert/st7735-setup/pkg/setup"
	"github.com/pterm/pterm"
)

// Reporter prints procedure progress. Tool output is streamed by the
// executor between these lines, so every line is written whole.
type Reporter struct {
	out      io.Writer
	format   Format
	dryRun   bool
	markdown *MarkdownRenderer
}

// NewReporter creates a Reporter writing to out. FormatAuto is resolved
// against out.
func NewReporter(out io.Writer, format Format, dryRun bool) *Reporter {
	return &Reporter{
		out:      out,
		format:   Resolve(format, out),
		dryRun:   dryRun,
		markdown: NewMarkdownRenderer(),
	}
}

var _ setup.Reporter = (*Reporter)(nil)

// StepStarted announces a step
func (r *Reporter) StepStarted(index, total int, step setup.Step) {
	title := step.Title
	if r.dryRun {
		title = "(dry run) " + title
	}
	counter := fmt.Sprintf("%d/%d", index+1, total)

	switch r.format {
	case FormatJSON:
	case FormatTerminal:
		printer := pterm.PrefixPrinter{
			Prefix:       pterm.Prefix{Text: counter, Style: pterm.NewStyle(pterm.BgCyan, pterm.FgBlack)},
			MessageStyle: pterm.NewStyle(pterm.Bold),
		}
		r.write(printer.Sprintln(title))
	default:
		r.write(fmt.Sprintf("==> [%s] %s\n", counter, title))
	}
}

// StepFinished reports the outcome of a step
func (r *Reporter) StepFinished(index, total int, step setup.Step, result setup.StepResult) {
	elapsed := result.Duration.Round(time.Millisecond)

	switch r.format {
	case FormatJSON:
	case FormatTerminal:
		switch result.Status {
		case setup.StatusSucceeded:
			r.write(pterm.Success.Sprintfln("%s (%s)", step.Title, elapsed))
		case setup.StatusFailed:
			r.write(pterm.Error.Sprintfln("%s failed", step.Title))
		}
	default:
		if result.Status == setup.StatusFailed {
			r.write(fmt.Sprintf("==> %s failed\n", step.Title))
		}
	}
}

// Hint prints the closing instructions
func (r *Reporter) Hint(hint setup.Hint) {
	switch r.format {
	case FormatJSON:
	case FormatTerminal:
		r.write("\n" + r.markdown.Render(hint.Markdown()))
	default:
		r.write("\n" + hint.Text())
	}
}

func (r *Reporter) write(s string) {
	_, _ = io.WriteString(r.out, s)
}
