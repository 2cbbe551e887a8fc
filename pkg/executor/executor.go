package executor

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"os"
	"os/exec"
	"sort"
	"strings"
	"time"

	"github.com/arthur-debert/st7735-setup/pkg/errors"
	"github.com/arthur-debert/st7735-setup/pkg/logging"
	"github.com/rs/zerolog"
)

// Command describes one external tool invocation
type Command struct {
	Name    string
	Args    []string
	Dir     string
	Env     map[string]string
	Timeout time.Duration
}

// String renders the command line for logs and dry-run output
func (c Command) String() string {
	parts := make([]string, 0, len(c.Args)+1)
	parts = append(parts, c.Name)
	for _, arg := range c.Args {
		if arg == "" || strings.ContainsAny(arg, " \t'\"") {
			arg = "'" + strings.ReplaceAll(arg, "'", `'\''`) + "'"
		}
		parts = append(parts, arg)
	}
	return strings.Join(parts, " ")
}

// Runner runs external commands
type Runner interface {
	// Run streams the child's output to the console and waits for it
	Run(ctx context.Context, cmd Command) error
	// Output captures the child's stdout and returns it trimmed
	Output(ctx context.Context, cmd Command) (string, error)
}

// CommandExecutor is the os/exec backed Runner
type CommandExecutor struct {
	logger zerolog.Logger
	stdout io.Writer
	stderr io.Writer
	dryRun bool
}

// NewCommandExecutor creates a new command executor writing child output to
// stdout and stderr. In dry-run mode Run only logs.
func NewCommandExecutor(stdout, stderr io.Writer, dryRun bool) *CommandExecutor {
	return &CommandExecutor{
		logger: logging.GetLogger("executor"),
		stdout: stdout,
		stderr: stderr,
		dryRun: dryRun,
	}
}

// Run implements Runner
func (e *CommandExecutor) Run(ctx context.Context, c Command) error {
	if c.Name == "" {
		return errors.New(errors.ErrInvalidInput, "command name is empty")
	}

	logging.LogCommand(e.logger, c.Name, c.Args, c.Dir)

	if e.dryRun {
		e.logger.Info().Str("command", c.String()).Msg("Dry run mode - command would be executed")
		return nil
	}

	ctx, cancel := withTimeout(ctx, c.Timeout)
	defer cancel()

	cmd, err := e.prepare(ctx, c)
	if err != nil {
		return err
	}

	tail := newTailBuffer(4096)
	cmd.Stdout = e.stdout
	cmd.Stderr = io.MultiWriter(e.stderr, tail)

	start := time.Now()
	err = cmd.Run()
	if err != nil {
		e.logger.Error().
			Err(err).
			Str("command", c.String()).
			Str("dir", c.Dir).
			Str("stderr", tail.String()).
			Dur("duration", time.Since(start)).
			Msg("Command execution failed")
		return e.wrap(ctx, c, err)
	}

	e.logger.Info().
		Str("command", c.String()).
		Dur("duration", time.Since(start)).
		Msg("Command executed successfully")
	return nil
}

// Output implements Runner. It runs even in dry-run mode since it is only
// used for read-only queries.
func (e *CommandExecutor) Output(ctx context.Context, c Command) (string, error) {
	if c.Name == "" {
		return "", errors.New(errors.ErrInvalidInput, "command name is empty")
	}

	logging.LogCommand(e.logger, c.Name, c.Args, c.Dir)

	ctx, cancel := withTimeout(ctx, c.Timeout)
	defer cancel()

	cmd, err := e.prepare(ctx, c)
	if err != nil {
		return "", err
	}

	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	if err := cmd.Run(); err != nil {
		e.logger.Debug().
			Err(err).
			Str("command", c.String()).
			Str("stderr", stderr.String()).
			Msg("Command query failed")
		return "", e.wrap(ctx, c, err)
	}

	return strings.TrimSpace(stdout.String()), nil
}

func (e *CommandExecutor) prepare(ctx context.Context, c Command) (*exec.Cmd, error) {
	cmd := exec.CommandContext(ctx, c.Name, c.Args...)
	// grandchildren holding the output pipes must not block Wait after a kill
	cmd.WaitDelay = 2 * time.Second

	if c.Dir != "" {
		info, err := os.Stat(c.Dir)
		if err != nil || !info.IsDir() {
			return nil, errors.Newf(errors.ErrCommandExecute,
				"working directory does not exist: %s", c.Dir).WithDetail("command", c.String())
		}
		cmd.Dir = c.Dir
	}

	cmd.Env = os.Environ()
	keys := make([]string, 0, len(c.Env))
	for key := range c.Env {
		keys = append(keys, key)
	}
	sort.Strings(keys)
	for _, key := range keys {
		cmd.Env = append(cmd.Env, fmt.Sprintf("%s=%s", key, c.Env[key]))
	}

	return cmd, nil
}

func (e *CommandExecutor) wrap(ctx context.Context, c Command, err error) error {
	var wrapped *errors.SetupError
	switch ctx.Err() {
	case context.DeadlineExceeded:
		wrapped = errors.Wrapf(err, errors.ErrCommandExecute, "%s timed out after %s", c.Name, c.Timeout)
	case context.Canceled:
		wrapped = errors.Wrapf(fmt.Errorf("%w: %w", ctx.Err(), err), errors.ErrInterrupted, "%s interrupted", c.Name)
	default:
		wrapped = errors.Wrapf(err, errors.ErrCommandExecute, "failed to execute command: %s", c.Name)
	}
	return wrapped.WithDetail("command", c.String()).WithDetail("exitCode", errors.ExitCode(err))
}

func withTimeout(ctx context.Context, timeout time.Duration) (context.Context, context.CancelFunc) {
	if timeout > 0 {
		return context.WithTimeout(ctx, timeout)
	}
	return context.WithCancel(ctx)
}

// Verify interface compliance
var _ Runner = (*CommandExecutor)(nil)
