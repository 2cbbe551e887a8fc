// Package pyproject reads the packaging metadata of the cloned Python
// project: its pyproject.toml descriptor and its requirements manifest.
// Nothing here affects what gets installed; pip stays the authority. The
// metadata only feeds logs, the run history and the status view.
package pyproject

import (
	"os"
	"path/filepath"

	"github.com/arthur-debert/st7735-setup/pkg/filesystem"
	"github.com/pelletier/go-toml/v2"
)

// Descriptor file names, in lookup order
const (
	PyprojectFile = "pyproject.toml"
	SetupPyFile   = "setup.py"
)

// Package summarizes a Python project's packaging descriptor
type Package struct {
	Descriptor     string   `json:"descriptor" yaml:"descriptor"`
	Name           string   `json:"name,omitempty" yaml:"name,omitempty"`
	Version        string   `json:"version,omitempty" yaml:"version,omitempty"`
	Description    string   `json:"description,omitempty" yaml:"description,omitempty"`
	RequiresPython string   `json:"requiresPython,omitempty" yaml:"requiresPython,omitempty"`
	Dependencies   []string `json:"dependencies,omitempty" yaml:"dependencies,omitempty"`
	BuildBackend   string   `json:"buildBackend,omitempty" yaml:"buildBackend,omitempty"`
	Dynamic        []string `json:"dynamic,omitempty" yaml:"dynamic,omitempty"`
}

type pyprojectFile struct {
	Project struct {
		Name           string   `toml:"name"`
		Version        string   `toml:"version"`
		Description    string   `toml:"description"`
		RequiresPython string   `toml:"requires-python"`
		Dependencies   []string `toml:"dependencies"`
		Dynamic        []string `toml:"dynamic"`
	} `toml:"project"`
	BuildSystem struct {
		Requires     []string `toml:"requires"`
		BuildBackend string   `toml:"build-backend"`
	} `toml:"build-system"`
}

// Parse decodes pyproject.toml content
func Parse(data []byte) (*Package, error) {
	var f pyprojectFile
	if err := toml.Unmarshal(data, &f); err != nil {
		return nil, err
	}
	return &Package{
		Descriptor:     PyprojectFile,
		Name:           f.Project.Name,
		Version:        f.Project.Version,
		Description:    f.Project.Description,
		RequiresPython: f.Project.RequiresPython,
		Dependencies:   f.Project.Dependencies,
		BuildBackend:   f.BuildSystem.BuildBackend,
		Dynamic:        f.Project.Dynamic,
	}, nil
}

// Describe inspects dir for a packaging descriptor. It returns nil without
// error when the directory has none.
func Describe(fsys filesystem.FS, dir string) (*Package, error) {
	data, err := fsys.ReadFile(filepath.Join(dir, PyprojectFile))
	switch {
	case err == nil:
		return Parse(data)
	case !os.IsNotExist(err):
		return nil, err
	}

	ok, err := filesystem.Exists(fsys, filepath.Join(dir, SetupPyFile))
	if err != nil || !ok {
		return nil, err
	}
	return &Package{Descriptor: SetupPyFile}, nil
}

// Label renders "name version" for display, falling back to the descriptor
func (p *Package) Label() string {
	if p == nil {
		return ""
	}
	switch {
	case p.Name != "" && p.Version != "":
		return p.Name + " " + p.Version
	case p.Name != "":
		return p.Name
	default:
		return p.Descriptor
	}
}
