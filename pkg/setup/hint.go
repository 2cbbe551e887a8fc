package setup

import (
	"fmt"
	"strings"
)

// Hint is the closing instruction printed after a successful run
type Hint struct {
	ExamplesDir string   `json:"examplesDir"`
	Python      string   `json:"python"`
	Example     string   `json:"example"`
	Samples     []string `json:"samples,omitempty"`
}

// Text renders the hint as plain console text
func (h Hint) Text() string {
	var b strings.Builder
	b.WriteString("Setup complete. To try the display, run:\n\n")
	fmt.Fprintf(&b, "  cd %s\n", h.ExamplesDir)
	fmt.Fprintf(&b, "  %s %s\n", h.Python, h.Example)
	if len(h.Samples) > 0 {
		b.WriteString("\nSample scripts for your panel:\n\n")
		for _, s := range h.Samples {
			fmt.Fprintf(&b, "  %s %s\n", h.Python, s)
		}
	}
	return b.String()
}

// Markdown renders the hint for glamour
func (h Hint) Markdown() string {
	var b strings.Builder
	b.WriteString("## Setup complete\n\nTo try the display, run:\n\n```sh\n")
	fmt.Fprintf(&b, "cd %s\n", h.ExamplesDir)
	fmt.Fprintf(&b, "%s %s\n", h.Python, h.Example)
	b.WriteString("```\n")
	if len(h.Samples) > 0 {
		b.WriteString("\nSample scripts for your panel:\n\n")
		for _, s := range h.Samples {
			fmt.Fprintf(&b, "- `%s %s`\n", h.Python, s)
		}
	}
	return b.String()
}
