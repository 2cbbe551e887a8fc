// Package executor runs the external tools (git, pip) the setup procedure
// depends on.
//
// Commands run synchronously and block until the child exits. Their stdout
// and stderr are streamed to the console unchanged, so the user sees each
// tool's own progress and error output. A failing child yields an error that
// wraps the *exec.ExitError, which lets the caller exit with the child's
// status.
package executor
