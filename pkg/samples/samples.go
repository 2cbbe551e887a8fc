// Package samples renders ready-to-run demo scripts for the configured
// ST7735 panel. The scripts import the st7735 package that the setup
// procedure installs, with the panel's wiring baked in.
package samples

import (
	"bytes"
	"embed"
	"path/filepath"
	"sort"
	"strings"
	"text/template"

	"github.com/arthur-debert/st7735-setup/pkg/config"
	"github.com/arthur-debert/st7735-setup/pkg/errors"
	"github.com/arthur-debert/st7735-setup/pkg/filesystem"
)

//go:embed templates/*.tmpl
var templateFS embed.FS

const templateSuffix = ".py.tmpl"

// Data is what the templates see
type Data struct {
	Display       config.Display
	Message       string
	HoldSeconds   int
	FontPath      string
	FrameInterval float64
}

// DefaultData returns template data for the given panel
func DefaultData(display config.Display) Data {
	return Data{
		Display:       display,
		Message:       "Hello!",
		HoldSeconds:   5,
		FontPath:      "/usr/share/fonts/truetype/dejavu/DejaVuSansMono.ttf",
		FrameInterval: 0.1,
	}
}

var funcs = template.FuncMap{
	"pybool": func(b bool) string {
		if b {
			return "True"
		}
		return "False"
	},
}

// Names lists the scripts that Render produces, sorted
func Names() []string {
	entries, _ := templateFS.ReadDir("templates")
	var names []string
	for _, entry := range entries {
		if strings.HasSuffix(entry.Name(), templateSuffix) {
			names = append(names, strings.TrimSuffix(entry.Name(), ".tmpl"))
		}
	}
	sort.Strings(names)
	return names
}

// Render produces every sample script keyed by file name
func Render(data Data) (map[string][]byte, error) {
	base, err := template.New("samples").Funcs(funcs).ParseFS(templateFS, "templates/*.tmpl")
	if err != nil {
		return nil, errors.Wrap(err, errors.ErrTemplate, "failed to parse sample templates")
	}

	out := make(map[string][]byte)
	for _, name := range Names() {
		var buf bytes.Buffer
		if err := base.ExecuteTemplate(&buf, name+".tmpl", data); err != nil {
			return nil, errors.Wrapf(err, errors.ErrTemplate, "failed to render %s", name)
		}
		out[name] = buf.Bytes()
	}
	return out, nil
}

// Write renders the samples into dir and returns the written paths
func Write(fsys filesystem.FS, dir string, data Data) ([]string, error) {
	rendered, err := Render(data)
	if err != nil {
		return nil, err
	}

	if err := fsys.MkdirAll(dir, 0755); err != nil {
		return nil, errors.Wrapf(err, errors.ErrDirCreate, "failed to create %s", dir)
	}

	var written []string
	for _, name := range Names() {
		path := filepath.Join(dir, name)
		if err := fsys.WriteFile(path, rendered[name], 0755); err != nil {
			return written, errors.Wrapf(err, errors.ErrTemplate, "failed to write %s", path)
		}
		written = append(written, path)
	}
	return written, nil
}
