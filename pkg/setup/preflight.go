package setup

import (
	"context"
	"os"
	"path/filepath"

	"github.com/arthur-debert/st7735-setup/pkg/errors"
)

// preflight fails early on the preconditions the rest of the procedure
// would otherwise only discover through a tool error
func (p *Procedure) preflight(ctx context.Context, res *Result) error {
	for _, tool := range []string{p.cfg.Tools.Git, p.cfg.Tools.Pip} {
		path, err := p.lookPath(tool)
		if err != nil {
			return errors.Wrapf(err, errors.ErrToolNotFound, "%s is not installed or not on PATH", tool).
				WithDetail("tool", tool)
		}
		p.logger.Debug().Str("tool", tool).Str("path", path).Msg("Found tool")
	}

	dir, err := nearestExistingDir(p.paths.ProjectsRoot())
	if err != nil {
		return errors.Wrapf(err, errors.ErrNotWritable, "cannot use %s", p.paths.ProjectsRoot())
	}
	if err := probeWritable(dir); err != nil {
		return errors.Wrapf(err, errors.ErrNotWritable, "%s is not writable", dir).WithDetail("path", dir)
	}
	return nil
}

// nearestExistingDir walks up from path to the first ancestor that exists,
// which must be a directory
func nearestExistingDir(path string) (string, error) {
	for {
		info, err := os.Stat(path)
		if err == nil {
			if !info.IsDir() {
				return "", &os.PathError{Op: "stat", Path: path, Err: errNotDir}
			}
			return path, nil
		}
		if !os.IsNotExist(err) {
			return "", err
		}
		parent := filepath.Dir(path)
		if parent == path {
			return "", err
		}
		path = parent
	}
}

var errNotDir = errors.New(errors.ErrNotWritable, "not a directory")

// probeWritable creates and removes a temp file in dir
func probeWritable(dir string) error {
	f, err := os.CreateTemp(dir, ".st7735-setup-probe-*")
	if err != nil {
		return err
	}
	name := f.Name()
	_ = f.Close()
	return os.Remove(name)
}
