package setup

import (
	"context"
	"os"
	"os/exec"
	"path/filepath"
	"strconv"
	"time"

	"github.com/arthur-debert/st7735-setup/pkg/config"
	"github.com/arthur-debert/st7735-setup/pkg/errors"
	"github.com/arthur-debert/st7735-setup/pkg/executor"
	"github.com/arthur-debert/st7735-setup/pkg/filesystem"
	"github.com/arthur-debert/st7735-setup/pkg/logging"
	"github.com/arthur-debert/st7735-setup/pkg/paths"
	"github.com/arthur-debert/st7735-setup/pkg/pyproject"
	"github.com/arthur-debert/st7735-setup/pkg/samples"
	"github.com/rs/zerolog"
)

// Options wires a Procedure to its collaborators
type Options struct {
	Config   *config.Config
	FS       filesystem.FS
	Runner   executor.Runner
	Reporter Reporter
	DryRun   bool

	// LookPath resolves tool names during preflight; defaults to exec.LookPath
	LookPath func(file string) (string, error)
	// Now defaults to time.Now
	Now func() time.Time
}

// Procedure is a configured, runnable setup sequence
type Procedure struct {
	cfg      *config.Config
	paths    *paths.Paths
	fs       filesystem.FS
	runner   executor.Runner
	reporter Reporter
	dryRun   bool
	lookPath func(string) (string, error)
	now      func() time.Time
	logger   zerolog.Logger
}

// New validates options and builds a Procedure
func New(opts Options) (*Procedure, error) {
	if opts.Config == nil {
		return nil, errors.New(errors.ErrInvalidInput, "setup procedure requires a config")
	}
	if opts.Runner == nil {
		return nil, errors.New(errors.ErrInvalidInput, "setup procedure requires a command runner")
	}

	p, err := paths.New(opts.Config.Workspace.Root, opts.Config.Workspace.Dir)
	if err != nil {
		return nil, err
	}

	proc := &Procedure{
		cfg:      opts.Config,
		paths:    p,
		fs:       opts.FS,
		runner:   opts.Runner,
		reporter: opts.Reporter,
		dryRun:   opts.DryRun,
		lookPath: opts.LookPath,
		now:      opts.Now,
		logger:   logging.GetLogger("setup.procedure"),
	}
	if proc.fs == nil {
		proc.fs = filesystem.NewOS()
	}
	if proc.reporter == nil {
		proc.reporter = NopReporter{}
	}
	if proc.lookPath == nil {
		proc.lookPath = exec.LookPath
	}
	if proc.now == nil {
		proc.now = time.Now
	}
	return proc, nil
}

// Paths exposes the resolved locations
func (p *Procedure) Paths() *paths.Paths {
	return p.paths
}

// Steps returns the ordered step list for the current configuration
func (p *Procedure) Steps() []Step {
	var steps []Step
	if p.cfg.Preflight {
		steps = append(steps, Step{ID: StepPreflight, Title: "Check prerequisites", run: p.preflight})
	}
	steps = append(steps,
		Step{ID: StepEnsureRoot, Title: "Ensure " + paths.Tilde(p.paths.ProjectsRoot()) + " exists", run: p.ensureRoot},
		Step{ID: StepRemoveStale, Title: "Remove previous checkout", run: p.removeStale},
		Step{ID: StepClone, Title: "Clone " + p.cfg.Repository.URL, run: p.clone},
		Step{ID: StepInstallDependencies, Title: "Install dependencies from " + p.cfg.Install.Manifest, run: p.installDependencies},
		Step{ID: StepInstallPackage, Title: "Install package", run: p.installPackage},
	)
	if p.cfg.Samples.Enabled {
		steps = append(steps, Step{ID: StepWriteSamples, Title: "Write sample scripts", run: p.writeSamples})
	}
	steps = append(steps, Step{ID: StepHint, Title: "Next steps", run: p.hint})
	return steps
}

// Run executes the steps in order, stopping at the first failure. The
// returned Result is never nil and describes how far the run got.
func (p *Procedure) Run(ctx context.Context) (*Result, error) {
	steps := p.Steps()
	res := newResult(steps)
	res.DryRun = p.dryRun
	res.Repository = p.cfg.Repository.URL
	res.Checkout = p.paths.CheckoutPath()
	res.StartedAt = p.now()
	res.State = StateRunning

	p.logger.Info().
		Bool("dryRun", p.dryRun).
		Str("repository", res.Repository).
		Str("checkout", res.Checkout).
		Int("steps", len(steps)).
		Msg("Starting setup")

	for i, step := range steps {
		p.reporter.StepStarted(i, len(steps), step)
		res.Steps[i].Status = StatusRunning
		logger := p.logger.With().Str("step", string(step.ID)).Logger()
		logger.Debug().Msg("Step started")

		start := p.now()
		err := ctx.Err()
		if err != nil {
			err = errors.Wrap(err, errors.ErrInterrupted, "setup interrupted")
		} else {
			err = step.run(ctx, res)
		}
		res.Steps[i].Duration = p.now().Sub(start)

		if err != nil {
			res.Steps[i].Status = StatusFailed
			res.Steps[i].Error = err.Error()
			res.fail(i, err)
			res.FinishedAt = p.now()
			logger.Error().Err(err).Int("exitCode", res.ExitCode).Msg("Step failed")
			p.reporter.StepFinished(i, len(steps), step, res.Steps[i])
			return res, err
		}

		res.Steps[i].Status = StatusSucceeded
		logger.Debug().Dur("duration", res.Steps[i].Duration).Msg("Step completed")
		p.reporter.StepFinished(i, len(steps), step, res.Steps[i])
	}

	res.State = StateSucceeded
	res.FinishedAt = p.now()
	p.logger.Info().Dur("duration", res.FinishedAt.Sub(res.StartedAt)).Msg("Setup completed")
	return res, nil
}

func (p *Procedure) ensureRoot(ctx context.Context, res *Result) error {
	root := p.paths.ProjectsRoot()
	if p.dryRun {
		p.logger.Info().Str("path", root).Msg("Dry run mode - would ensure directory exists")
		return nil
	}
	if err := p.fs.MkdirAll(root, 0755); err != nil {
		return errors.Wrapf(err, errors.ErrDirCreate, "failed to create %s", root).WithDetail("path", root)
	}
	return nil
}

func (p *Procedure) removeStale(ctx context.Context, res *Result) error {
	checkout := p.paths.CheckoutPath()
	exists, err := filesystem.Exists(p.fs, checkout)
	if err != nil {
		return errors.Wrapf(err, errors.ErrDirRemove, "failed to inspect %s", checkout).WithDetail("path", checkout)
	}
	if !exists {
		p.logger.Debug().Str("path", checkout).Msg("No previous checkout")
		return nil
	}

	res.RemovedStale = true
	if p.dryRun {
		p.logger.Info().Str("path", checkout).Msg("Dry run mode - would remove previous checkout")
		return nil
	}

	p.logger.Info().Str("path", checkout).Msg("Removing previous checkout")
	if err := p.fs.RemoveAll(checkout); err != nil {
		return errors.Wrapf(err, errors.ErrDirRemove, "failed to remove %s", checkout).WithDetail("path", checkout)
	}
	return nil
}

func (p *Procedure) clone(ctx context.Context, res *Result) error {
	args := []string{"clone"}
	if p.cfg.Repository.Depth > 0 {
		args = append(args, "--depth", strconv.Itoa(p.cfg.Repository.Depth))
	}
	if p.cfg.Repository.Branch != "" {
		args = append(args, "--branch", p.cfg.Repository.Branch)
	}
	args = append(args, p.cfg.Repository.URL, p.paths.CheckoutName())

	err := p.runner.Run(ctx, executor.Command{
		Name:    p.cfg.Tools.Git,
		Args:    args,
		Dir:     p.paths.ProjectsRoot(),
		Timeout: p.cfg.Timeouts.Clone,
	})
	if err != nil {
		return errors.Wrapf(err, errors.ErrClone, "failed to clone %s", p.cfg.Repository.URL)
	}

	if !p.dryRun {
		res.Commit = p.headCommit(ctx)
	}
	return nil
}

// headCommit is best effort; a missing commit only degrades the run history
func (p *Procedure) headCommit(ctx context.Context) string {
	commit, err := p.runner.Output(ctx, executor.Command{
		Name: p.cfg.Tools.Git,
		Args: []string{"rev-parse", "HEAD"},
		Dir:  p.paths.CheckoutPath(),
	})
	if err != nil {
		p.logger.Warn().Err(err).Msg("Could not determine cloned commit")
		return ""
	}
	p.logger.Info().Str("commit", commit).Msg("Cloned repository")
	return commit
}

func (p *Procedure) installDependencies(ctx context.Context, res *Result) error {
	manifest := p.paths.InCheckout(p.cfg.Install.Manifest)

	if !p.dryRun {
		data, err := p.fs.ReadFile(manifest)
		if os.IsNotExist(err) {
			return errors.Wrapf(err, errors.ErrManifestMissing,
				"dependency manifest %s not found in checkout", p.cfg.Install.Manifest).
				WithDetail("path", manifest)
		}
		if err != nil {
			return errors.Wrapf(err, errors.ErrDependencyInstall, "failed to read %s", manifest)
		}
		res.Requirements = pyproject.ParseRequirements(data)
		p.logger.Info().Int("requirements", len(res.Requirements)).Str("manifest", manifest).Msg("Installing dependencies")
	}

	err := p.runner.Run(ctx, p.pipCommand("-r", p.cfg.Install.Manifest))
	if err != nil {
		return errors.Wrapf(err, errors.ErrDependencyInstall, "failed to install dependencies from %s", p.cfg.Install.Manifest)
	}
	return nil
}

func (p *Procedure) installPackage(ctx context.Context, res *Result) error {
	if !p.dryRun {
		pkg, err := pyproject.Describe(p.fs, p.paths.CheckoutPath())
		if err != nil {
			p.logger.Warn().Err(err).Msg("Could not read packaging descriptor")
		}
		res.Package = pkg
		if pkg != nil {
			p.logger.Info().Str("package", pkg.Label()).Str("descriptor", pkg.Descriptor).Msg("Installing package")
		}
	}

	err := p.runner.Run(ctx, p.pipCommand(p.cfg.Install.Target))
	if err != nil {
		return errors.Wrapf(err, errors.ErrPackageInstall, "failed to install %s", p.cfg.Install.Target)
	}
	return nil
}

func (p *Procedure) pipCommand(args ...string) executor.Command {
	full := append([]string{"install"}, p.cfg.Tools.PipArgs...)
	full = append(full, args...)
	return executor.Command{
		Name:    p.cfg.Tools.Pip,
		Args:    full,
		Dir:     p.paths.CheckoutPath(),
		Timeout: p.cfg.Timeouts.Install,
	}
}

func (p *Procedure) writeSamples(ctx context.Context, res *Result) error {
	dir := p.cfg.Samples.Dir
	if p.dryRun {
		for _, name := range samples.Names() {
			res.Samples = append(res.Samples, filepath.Join(dir, name))
		}
		p.logger.Info().Str("dir", dir).Msg("Dry run mode - would write sample scripts")
		return nil
	}

	written, err := samples.Write(p.fs, dir, samples.DefaultData(p.cfg.Display))
	res.Samples = written
	if err != nil {
		return err
	}
	p.logger.Info().Strs("files", written).Msg("Wrote sample scripts")
	return nil
}

func (p *Procedure) hint(ctx context.Context, res *Result) error {
	h := Hint{
		ExamplesDir: paths.Tilde(p.paths.ExamplesPath()),
		Python:      p.cfg.Hint.Python,
		Example:     p.cfg.Hint.Example,
	}
	for _, s := range res.Samples {
		h.Samples = append(h.Samples, paths.Tilde(s))
	}
	res.Hint = &h
	p.reporter.Hint(h)
	return nil
}
