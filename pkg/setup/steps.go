package setup

import (
	"context"
	"time"
)

// StepID identifies a procedure step
type StepID string

const (
	StepPreflight           StepID = "preflight"
	StepEnsureRoot          StepID = "ensure-root"
	StepRemoveStale         StepID = "remove-stale"
	StepClone               StepID = "clone"
	StepInstallDependencies StepID = "install-dependencies"
	StepInstallPackage      StepID = "install-package"
	StepWriteSamples        StepID = "write-samples"
	StepHint                StepID = "hint"
)

// Status is the lifecycle of a single step
type Status string

const (
	StatusPending   Status = "pending"
	StatusRunning   Status = "running"
	StatusSucceeded Status = "succeeded"
	StatusFailed    Status = "failed"
	StatusSkipped   Status = "skipped"
)

// State is the lifecycle of a whole run
type State string

const (
	StateNotStarted State = "not-started"
	StateRunning    State = "running"
	StateSucceeded  State = "succeeded"
	StateFailed     State = "failed"
)

// Step is one unit of the procedure
type Step struct {
	ID    StepID
	Title string
	run   func(ctx context.Context, res *Result) error
}

// StepResult is what happened to one step
type StepResult struct {
	ID       StepID        `json:"id"`
	Title    string        `json:"title"`
	Status   Status        `json:"status"`
	Duration time.Duration `json:"duration"`
	Error    string        `json:"error,omitempty"`
}
