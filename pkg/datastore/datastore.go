package datastore

import "time"

// DefaultMaxRuns is how many runs the history keeps
const DefaultMaxRuns = 20

// DataStore records and lists setup runs
type DataStore interface {
	// RecordRun appends a run, trimming the history to its capacity
	RecordRun(run RunRecord) error

	// Runs returns the stored runs, oldest first
	Runs() ([]RunRecord, error)

	// LastRun returns the newest run, or nil when there is none
	LastRun() (*RunRecord, error)
}

// StepRecord is the outcome of one procedure step
type StepRecord struct {
	ID       string `yaml:"id" json:"id"`
	Status   string `yaml:"status" json:"status"`
	Duration string `yaml:"duration,omitempty" json:"duration,omitempty"`
	Error    string `yaml:"error,omitempty" json:"error,omitempty"`
}

// RunRecord is one invocation of the setup procedure
type RunRecord struct {
	StartedAt  time.Time    `yaml:"startedAt" json:"startedAt"`
	FinishedAt time.Time    `yaml:"finishedAt" json:"finishedAt"`
	State      string       `yaml:"state" json:"state"`
	FailedStep string       `yaml:"failedStep,omitempty" json:"failedStep,omitempty"`
	ExitCode   int          `yaml:"exitCode" json:"exitCode"`
	DryRun     bool         `yaml:"dryRun,omitempty" json:"dryRun,omitempty"`
	Repository string       `yaml:"repository" json:"repository"`
	Checkout   string       `yaml:"checkout" json:"checkout"`
	Commit     string       `yaml:"commit,omitempty" json:"commit,omitempty"`
	Package    string       `yaml:"package,omitempty" json:"package,omitempty"`
	Steps      []StepRecord `yaml:"steps" json:"steps"`
	Error      string       `yaml:"error,omitempty" json:"error,omitempty"`
}

type historyFile struct {
	Version int         `yaml:"version"`
	Runs    []RunRecord `yaml:"runs"`
}
