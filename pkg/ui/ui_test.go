// pkg/ui/ui_test.go
// TEST TYPE: Unit Test
// DEPENDENCIES: none (bytes.Buffer output)
// PURPOSE: Verify progress, hint, status and error rendering per format

package ui_test

import (
	"bytes"
	"encoding/json"
	"fmt"
	"testing"
	"time"

	"github.com/arthur-debert/st7735-setup/pkg/datastore"
	"github.com/arthur-debert/st7735-setup/pkg/errors"
	"github.com/arthur-debert/st7735-setup/pkg/pyproject"
	"github.com/arthur-debert/st7735-setup/pkg/setup"
	"github.com/arthur-debert/st7735-setup/pkg/ui"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var (
	cloneStep = setup.Step{ID: setup.StepClone, Title: "Clone https://github.com/pimoroni/st7735-python"}
	hint      = setup.Hint{ExamplesDir: "~/projects/st7735-python/examples", Python: "python3", Example: "shapes.py"}
)

func TestReporterText(t *testing.T) {
	var buf bytes.Buffer
	r := ui.NewReporter(&buf, ui.FormatText, false)

	r.StepStarted(2, 6, cloneStep)
	r.StepFinished(2, 6, cloneStep, setup.StepResult{ID: setup.StepClone, Status: setup.StatusSucceeded})
	r.StepFinished(2, 6, cloneStep, setup.StepResult{ID: setup.StepClone, Status: setup.StatusFailed})
	r.Hint(hint)

	out := buf.String()
	assert.Contains(t, out, "==> [3/6] Clone https://github.com/pimoroni/st7735-python\n")
	assert.Contains(t, out, "==> Clone https://github.com/pimoroni/st7735-python failed\n")
	assert.Contains(t, out, "cd ~/projects/st7735-python/examples")
	assert.Contains(t, out, "python3 shapes.py")
}

func TestReporterDryRun(t *testing.T) {
	var buf bytes.Buffer
	ui.NewReporter(&buf, ui.FormatText, true).StepStarted(0, 1, cloneStep)
	assert.Contains(t, buf.String(), "(dry run) Clone")
}

func TestReporterTerminal(t *testing.T) {
	var buf bytes.Buffer
	r := ui.NewReporter(&buf, ui.FormatTerminal, false)

	r.StepStarted(0, 6, cloneStep)
	r.StepFinished(0, 6, cloneStep, setup.StepResult{Status: setup.StatusSucceeded, Duration: 1500 * time.Millisecond})
	r.Hint(hint)

	out := buf.String()
	assert.Contains(t, out, "1/6")
	assert.Contains(t, out, "1.5s")
	assert.Contains(t, out, "shapes.py")
}

func TestReporterJSONIsSilent(t *testing.T) {
	var buf bytes.Buffer
	r := ui.NewReporter(&buf, ui.FormatJSON, false)

	r.StepStarted(0, 1, cloneStep)
	r.StepFinished(0, 1, cloneStep, setup.StepResult{Status: setup.StatusFailed})
	r.Hint(hint)

	assert.Empty(t, buf.String())
}

func TestMarkdownRenderer(t *testing.T) {
	r := &ui.MarkdownRenderer{Style: "notty", Width: 60}
	out := r.Render(hint.Markdown())
	assert.Contains(t, out, "Setup complete")
	assert.Contains(t, out, "cd ~/projects/st7735-python/examples")
}

func TestRenderStatusText(t *testing.T) {
	t.Setenv("HOME", "/home/pi")

	t.Run("missing checkout", func(t *testing.T) {
		var buf bytes.Buffer
		require.NoError(t, ui.RenderStatus(&buf, ui.FormatText, &setup.CheckoutStatus{
			Repository: "https://github.com/pimoroni/st7735-python",
			Checkout:   "/home/pi/projects/st7735-python",
		}))
		out := buf.String()
		assert.Contains(t, out, "Checkout      ~/projects/st7735-python (missing)")
		assert.Contains(t, out, "Last run      never")
		assert.NotContains(t, out, "Manifest")
	})

	t.Run("installed checkout", func(t *testing.T) {
		var buf bytes.Buffer
		require.NoError(t, ui.RenderStatus(&buf, ui.FormatText, &setup.CheckoutStatus{
			Repository:      "https://github.com/pimoroni/st7735-python",
			Checkout:        "/home/pi/projects/st7735-python",
			Exists:          true,
			Manifest:        "requirements.txt",
			ManifestPresent: true,
			Requirements:    []pyproject.Requirement{{Name: "numpy"}, {Name: "spidev"}},
			Package:         &pyproject.Package{Name: "st7735", Version: "1.0.0"},
			Examples:        []string{"scrolling.py", "shapes.py"},
			LastRun: &datastore.RunRecord{
				StartedAt:  time.Date(2026, 1, 2, 3, 4, 5, 0, time.UTC),
				State:      "failed",
				FailedStep: "install-package",
				ExitCode:   2,
				Commit:     "0123456789abcdef",
			},
		}))
		out := buf.String()
		assert.Contains(t, out, "Manifest      requirements.txt (2 requirements)")
		assert.Contains(t, out, "Package       st7735 1.0.0")
		assert.Contains(t, out, "Examples      scrolling.py, shapes.py")
		assert.Contains(t, out, "step install-package, exit 2")
		assert.Contains(t, out, "Commit        0123456789ab\n")
	})
}

func TestRenderStatusTerminal(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, ui.RenderStatus(&buf, ui.FormatTerminal, &setup.CheckoutStatus{
		Repository: "https://github.com/pimoroni/st7735-python",
		Checkout:   "/tmp/projects/st7735-python",
	}))
	assert.Contains(t, buf.String(), "st7735-python checkout")
	assert.Contains(t, buf.String(), "missing")
}

func TestRenderStatusJSON(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, ui.RenderStatus(&buf, ui.FormatJSON, &setup.CheckoutStatus{
		Checkout: "/tmp/projects/st7735-python",
		Exists:   true,
	}))

	var decoded map[string]interface{}
	require.NoError(t, json.Unmarshal(buf.Bytes(), &decoded))
	assert.Equal(t, "/tmp/projects/st7735-python", decoded["checkout"])
	assert.Equal(t, true, decoded["exists"])
}

func TestRenderError(t *testing.T) {
	err := errors.New(errors.ErrManifestMissing, "dependency manifest requirements.txt not found in checkout").
		WithDetail("path", "/home/pi/projects/st7735-python/requirements.txt")

	t.Run("text", func(t *testing.T) {
		var buf bytes.Buffer
		ui.RenderError(&buf, ui.FormatText, err)
		assert.Contains(t, buf.String(), "Error: [MANIFEST_MISSING] dependency manifest")
		assert.Contains(t, buf.String(), "  path: /home/pi/projects/st7735-python/requirements.txt")
	})

	t.Run("json", func(t *testing.T) {
		var buf bytes.Buffer
		ui.RenderError(&buf, ui.FormatJSON, err)

		var decoded map[string]interface{}
		require.NoError(t, json.Unmarshal(buf.Bytes(), &decoded))
		assert.Equal(t, "MANIFEST_MISSING", decoded["code"])
		assert.Equal(t, float64(1), decoded["exitCode"])
	})

	t.Run("terminal", func(t *testing.T) {
		var buf bytes.Buffer
		ui.RenderError(&buf, ui.FormatTerminal, fmt.Errorf("plain failure"))
		assert.Contains(t, buf.String(), "plain failure")
	})

	t.Run("nil", func(t *testing.T) {
		var buf bytes.Buffer
		ui.RenderError(&buf, ui.FormatText, nil)
		assert.Empty(t, buf.String())
	})
}
