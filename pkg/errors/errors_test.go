// pkg/errors/errors_test.go
// TEST TYPE: Unit Test
// DEPENDENCIES: sh (for ExitCode)
// PURPOSE: Test error creation, wrapping, and utility functions

package errors_test

import (
	"context"
	stderrors "errors"
	"fmt"
	"os/exec"
	"testing"

	"github.com/arthur-debert/st7735-setup/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew(t *testing.T) {
	tests := []struct {
		name    string
		code    errors.ErrorCode
		message string
		wantStr string
	}{
		{
			name:    "manifest_missing",
			code:    errors.ErrManifestMissing,
			message: "requirements.txt not found",
			wantStr: "[MANIFEST_MISSING] requirements.txt not found",
		},
		{
			name:    "invalid_config",
			code:    errors.ErrConfigValid,
			message: "repository.url is empty",
			wantStr: "[CONFIG_INVALID] repository.url is empty",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := errors.New(tt.code, tt.message)

			assert.Equal(t, tt.code, err.Code)
			assert.Equal(t, tt.message, err.Message)
			assert.NotNil(t, err.Details)
			assert.Equal(t, tt.wantStr, err.Error())
		})
	}
}

func TestNewf(t *testing.T) {
	err := errors.Newf(errors.ErrDirCreate, "cannot create %s with mode %o", "/tmp/x", 0755)
	assert.Equal(t, "cannot create /tmp/x with mode 755", err.Message)
}

func TestWrap(t *testing.T) {
	t.Run("nil_error_stays_nil", func(t *testing.T) {
		assert.Nil(t, errors.Wrap(nil, errors.ErrClone, "clone failed"))
		assert.Nil(t, errors.Wrapf(nil, errors.ErrClone, "clone %s failed", "x"))
	})

	t.Run("wrapped_error_is_reachable", func(t *testing.T) {
		base := stderrors.New("network unreachable")
		err := errors.Wrap(base, errors.ErrClone, "clone failed")

		assert.Equal(t, "[CLONE] clone failed: network unreachable", err.Error())
		assert.True(t, stderrors.Is(err, base))
		assert.Equal(t, base, stderrors.Unwrap(err))
	})

	t.Run("is_matches_on_code", func(t *testing.T) {
		err := errors.Wrapf(stderrors.New("boom"), errors.ErrPackageInstall, "pip install %s", ".")
		assert.True(t, stderrors.Is(err, errors.New(errors.ErrPackageInstall, "")))
		assert.False(t, stderrors.Is(err, errors.New(errors.ErrClone, "")))
	})
}

func TestErrorCodes(t *testing.T) {
	inner := errors.New(errors.ErrCommandExecute, "pip exited")
	outer := errors.Wrap(inner, errors.ErrDependencyInstall, "install dependencies")
	wrapped := fmt.Errorf("step failed: %w", outer)

	assert.True(t, errors.IsErrorCode(wrapped, errors.ErrDependencyInstall))
	assert.False(t, errors.IsErrorCode(wrapped, errors.ErrCommandExecute))
	assert.True(t, errors.HasErrorCode(wrapped, errors.ErrCommandExecute))
	assert.False(t, errors.HasErrorCode(wrapped, errors.ErrClone))
	assert.Equal(t, errors.ErrDependencyInstall, errors.GetErrorCode(wrapped))
	assert.Equal(t, errors.ErrUnknown, errors.GetErrorCode(stderrors.New("plain")))
}

func TestWithDetail(t *testing.T) {
	err := errors.New(errors.ErrDirRemove, "remove failed").
		WithDetail("path", "/home/pi/projects/st7735-python")

	details := errors.GetErrorDetails(fmt.Errorf("ctx: %w", err))
	require.NotNil(t, details)
	assert.Equal(t, "/home/pi/projects/st7735-python", details["path"])
	assert.Nil(t, errors.GetErrorDetails(stderrors.New("plain")))
}

func TestExitCode(t *testing.T) {
	runErr := exec.Command("sh", "-c", "exit 3").Run()
	require.Error(t, runErr)

	tests := []struct {
		name string
		err  error
		want int
	}{
		{"nil", nil, 0},
		{"plain_error", stderrors.New("boom"), 1},
		{"setup_error", errors.New(errors.ErrManifestMissing, "missing"), 1},
		{"raw_exit_error", runErr, 3},
		{"interrupted", errors.Wrap(context.Canceled, errors.ErrInterrupted, "interrupted"), 130},
		{"wrapped_exit_error", errors.Wrap(errors.Wrap(runErr, errors.ErrCommandExecute, "git"), errors.ErrClone, "clone"), 3},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, errors.ExitCode(tt.err))
		})
	}
}
