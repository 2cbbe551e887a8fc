package paths

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/adrg/xdg"
	"github.com/arthur-debert/st7735-setup/pkg/errors"
	"github.com/arthur-debert/st7735-setup/pkg/logging"
)

// Environment variable names
const (
	// EnvConfigDir overrides the XDG config directory
	EnvConfigDir = "ST7735_SETUP_CONFIG_DIR"

	// EnvHome is the standard home directory variable
	EnvHome = "HOME"
)

// Fixed file names inside the tool's own directories
const (
	ConfigFileName = "config.toml"
	RunsFileName   = "runs.yaml"
	ExamplesDir    = "examples"
)

// Paths resolves every location the setup procedure touches
type Paths struct {
	projectsRoot string
	checkoutName string
}

// New builds Paths from the configured projects root and checkout directory
// name. The root may start with ~ and is made absolute.
func New(projectsRoot, checkoutName string) (*Paths, error) {
	if projectsRoot == "" {
		return nil, errors.New(errors.ErrInvalidInput, "projects root is empty")
	}
	if checkoutName == "" || checkoutName == "." || checkoutName == ".." ||
		strings.ContainsAny(checkoutName, `/\`) {
		return nil, errors.Newf(errors.ErrInvalidInput, "invalid checkout directory name %q", checkoutName)
	}

	absRoot, err := filepath.Abs(ExpandHome(projectsRoot))
	if err != nil {
		return nil, errors.Wrapf(err, errors.ErrInvalidInput, "failed to get absolute path for %s", projectsRoot)
	}

	return &Paths{projectsRoot: absRoot, checkoutName: checkoutName}, nil
}

// ProjectsRoot is the working root that holds the checkout
func (p *Paths) ProjectsRoot() string { return p.projectsRoot }

// CheckoutName is the directory name of the clone
func (p *Paths) CheckoutName() string { return p.checkoutName }

// CheckoutPath is the absolute path of the clone
func (p *Paths) CheckoutPath() string {
	return filepath.Join(p.projectsRoot, p.checkoutName)
}

// ExamplesPath is the upstream examples directory inside the clone
func (p *Paths) ExamplesPath() string {
	return filepath.Join(p.CheckoutPath(), ExamplesDir)
}

// InCheckout joins rel onto the checkout path
func (p *Paths) InCheckout(rel string) string {
	return filepath.Join(p.CheckoutPath(), rel)
}

// ConfigDir returns the directory holding config.toml
func ConfigDir() string {
	if dir := os.Getenv(EnvConfigDir); dir != "" {
		return ExpandHome(dir)
	}
	return filepath.Join(xdg.ConfigHome, logging.AppName)
}

// ConfigFile returns the default user config file path
func ConfigFile() string {
	return filepath.Join(ConfigDir(), ConfigFileName)
}

// StateDir returns the directory for the log file and run history
func StateDir() string {
	return logging.StateDir()
}

// RunsFile returns the run history path
func RunsFile() string {
	return filepath.Join(StateDir(), RunsFileName)
}

// ExpandHome expands a leading ~ to the user's home directory
func ExpandHome(path string) string {
	if path == "" || path[0] != '~' {
		return path
	}

	homeDir := homeDir()
	if homeDir == "" {
		return path
	}

	if len(path) == 1 {
		return homeDir
	}

	// ~user forms are left alone
	if path[1] != '/' && path[1] != filepath.Separator {
		return path
	}

	return filepath.Join(homeDir, path[2:])
}

// Tilde contracts a path under the home directory back to ~/... for display
func Tilde(path string) string {
	homeDir := homeDir()
	if homeDir == "" {
		return path
	}
	if path == homeDir {
		return "~"
	}
	if rel, ok := strings.CutPrefix(path, homeDir+string(filepath.Separator)); ok {
		return "~/" + filepath.ToSlash(rel)
	}
	return path
}

func homeDir() string {
	if home := os.Getenv(EnvHome); home != "" {
		return home
	}
	home, _ := os.UserHomeDir()
	return home
}
