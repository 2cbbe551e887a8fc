package datastore

import (
	"fmt"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/arthur-debert/st7735-setup/pkg/errors"
	"github.com/arthur-debert/st7735-setup/pkg/filesystem"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sampleRun(n int) RunRecord {
	start := time.Date(2026, 10, 16, 9, 0, n, 0, time.UTC)
	return RunRecord{
		StartedAt:  start,
		FinishedAt: start.Add(42 * time.Second),
		State:      "succeeded",
		Repository: "https://github.com/pimoroni/st7735-python",
		Checkout:   "/home/pi/projects/st7735-python",
		Commit:     fmt.Sprintf("%040d", n),
		Package:    "st7735",
		Steps: []StepRecord{
			{ID: "ensure-root", Status: "succeeded", Duration: "1ms"},
			{ID: "clone", Status: "succeeded", Duration: "3.2s"},
		},
	}
}

func TestEmptyHistory(t *testing.T) {
	store := New(filesystem.NewOS(), filepath.Join(t.TempDir(), "state", "runs.yaml"))

	runs, err := store.Runs()
	require.NoError(t, err)
	assert.Empty(t, runs)

	last, err := store.LastRun()
	require.NoError(t, err)
	assert.Nil(t, last)
}

func TestRecordAndReadBack(t *testing.T) {
	path := filepath.Join(t.TempDir(), "state", "runs.yaml")
	store := New(filesystem.NewOS(), path)

	first := sampleRun(1)
	second := sampleRun(2)
	second.State = "failed"
	second.FailedStep = "clone"
	second.ExitCode = 128
	second.Error = "[CLONE] clone failed"

	require.NoError(t, store.RecordRun(first))
	require.NoError(t, store.RecordRun(second))

	runs, err := store.Runs()
	require.NoError(t, err)
	require.Len(t, runs, 2)
	assert.True(t, first.StartedAt.Equal(runs[0].StartedAt))

	last, err := store.LastRun()
	require.NoError(t, err)
	require.NotNil(t, last)
	assert.Equal(t, "failed", last.State)
	assert.Equal(t, "clone", last.FailedStep)
	assert.Equal(t, 128, last.ExitCode)
	assert.Equal(t, second.Steps, last.Steps)

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), "version: 1")
	assert.Contains(t, string(data), "failedStep: clone")
}

func TestHistoryIsTrimmed(t *testing.T) {
	store := NewWithCapacity(filesystem.NewOS(), filepath.Join(t.TempDir(), "runs.yaml"), 3)

	for i := 0; i < 5; i++ {
		require.NoError(t, store.RecordRun(sampleRun(i)))
	}

	runs, err := store.Runs()
	require.NoError(t, err)
	require.Len(t, runs, 3)
	assert.Equal(t, fmt.Sprintf("%040d", 2), runs[0].Commit)
	assert.Equal(t, fmt.Sprintf("%040d", 4), runs[2].Commit)
}

func TestCorruptHistory(t *testing.T) {
	path := filepath.Join(t.TempDir(), "runs.yaml")
	require.NoError(t, os.WriteFile(path, []byte("runs: [unterminated"), 0644))
	store := New(filesystem.NewOS(), path)

	_, err := store.Runs()
	assert.True(t, errors.IsErrorCode(err, errors.ErrStateRead))

	require.NoError(t, store.RecordRun(sampleRun(7)), "a corrupt history is replaced")
	runs, err := store.Runs()
	require.NoError(t, err)
	assert.Len(t, runs, 1)
}

func TestRecordWriteFailure(t *testing.T) {
	dir := t.TempDir()
	blocker := filepath.Join(dir, "file")
	require.NoError(t, os.WriteFile(blocker, nil, 0644))

	store := New(filesystem.NewOS(), filepath.Join(blocker, "runs.yaml"))
	err := store.RecordRun(sampleRun(1))
	assert.True(t, errors.IsErrorCode(err, errors.ErrStateWrite))
}
