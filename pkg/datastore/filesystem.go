package datastore

import (
	"os"
	"path/filepath"

	"github.com/arthur-debert/st7735-setup/pkg/errors"
	"github.com/arthur-debert/st7735-setup/pkg/filesystem"
	"gopkg.in/yaml.v3"
)

const historyVersion = 1

type filesystemDataStore struct {
	fs      filesystem.FS
	path    string
	maxRuns int
}

// New creates a DataStore persisting to the YAML file at path
func New(fs filesystem.FS, path string) DataStore {
	return NewWithCapacity(fs, path, DefaultMaxRuns)
}

// NewWithCapacity is New with a custom history length
func NewWithCapacity(fs filesystem.FS, path string, maxRuns int) DataStore {
	if maxRuns < 1 {
		maxRuns = 1
	}
	return &filesystemDataStore{fs: fs, path: path, maxRuns: maxRuns}
}

func (s *filesystemDataStore) RecordRun(run RunRecord) error {
	runs, err := s.Runs()
	if err != nil {
		// A corrupt history is replaced rather than blocking new records
		runs = nil
	}

	runs = append(runs, run)
	if over := len(runs) - s.maxRuns; over > 0 {
		runs = runs[over:]
	}

	data, err := yaml.Marshal(historyFile{Version: historyVersion, Runs: runs})
	if err != nil {
		return errors.Wrap(err, errors.ErrStateWrite, "failed to encode run history")
	}

	if err := s.fs.MkdirAll(filepath.Dir(s.path), 0755); err != nil {
		return errors.Wrapf(err, errors.ErrStateWrite, "failed to create %s", filepath.Dir(s.path))
	}
	if err := s.fs.WriteFile(s.path, data, 0644); err != nil {
		return errors.Wrapf(err, errors.ErrStateWrite, "failed to write %s", s.path)
	}
	return nil
}

func (s *filesystemDataStore) Runs() ([]RunRecord, error) {
	data, err := s.fs.ReadFile(s.path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, errors.Wrapf(err, errors.ErrStateRead, "failed to read %s", s.path)
	}

	var history historyFile
	if err := yaml.Unmarshal(data, &history); err != nil {
		return nil, errors.Wrapf(err, errors.ErrStateRead, "failed to parse %s", s.path)
	}
	return history.Runs, nil
}

func (s *filesystemDataStore) LastRun() (*RunRecord, error) {
	runs, err := s.Runs()
	if err != nil || len(runs) == 0 {
		return nil, err
	}
	last := runs[len(runs)-1]
	return &last, nil
}
