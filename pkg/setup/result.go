package setup

import (
	"time"

	"github.com/arthur-debert/st7735-setup/pkg/datastore"
	"github.com/arthur-debert/st7735-setup/pkg/errors"
	"github.com/arthur-debert/st7735-setup/pkg/pyproject"
)

// Result is the outcome of one run
type Result struct {
	State        State                   `json:"state"`
	DryRun       bool                    `json:"dryRun"`
	StartedAt    time.Time               `json:"startedAt"`
	FinishedAt   time.Time               `json:"finishedAt"`
	Repository   string                  `json:"repository"`
	Checkout     string                  `json:"checkout"`
	RemovedStale bool                    `json:"removedStale"`
	Commit       string                  `json:"commit,omitempty"`
	Package      *pyproject.Package      `json:"package,omitempty"`
	Requirements []pyproject.Requirement `json:"requirements,omitempty"`
	Samples      []string                `json:"samples,omitempty"`
	Hint         *Hint                   `json:"hint,omitempty"`
	Steps        []StepResult            `json:"steps"`
	FailedStep   StepID                  `json:"failedStep,omitempty"`
	ExitCode     int                     `json:"exitCode"`
	Error        string                  `json:"error,omitempty"`
}

func newResult(steps []Step) *Result {
	res := &Result{State: StateNotStarted}
	for _, step := range steps {
		res.Steps = append(res.Steps, StepResult{ID: step.ID, Title: step.Title, Status: StatusPending})
	}
	return res
}

// Step returns the result for id, or nil if the run has no such step
func (r *Result) Step(id StepID) *StepResult {
	for i := range r.Steps {
		if r.Steps[i].ID == id {
			return &r.Steps[i]
		}
	}
	return nil
}

// Succeeded reports whether every step ran to completion
func (r *Result) Succeeded() bool {
	return r.State == StateSucceeded
}

func (r *Result) fail(index int, err error) {
	r.State = StateFailed
	r.FailedStep = r.Steps[index].ID
	r.ExitCode = errors.ExitCode(err)
	r.Error = err.Error()
	for i := index + 1; i < len(r.Steps); i++ {
		r.Steps[i].Status = StatusSkipped
	}
}

// Record converts the result for the run history
func (r *Result) Record() datastore.RunRecord {
	rec := datastore.RunRecord{
		StartedAt:  r.StartedAt,
		FinishedAt: r.FinishedAt,
		State:      string(r.State),
		FailedStep: string(r.FailedStep),
		ExitCode:   r.ExitCode,
		DryRun:     r.DryRun,
		Repository: r.Repository,
		Checkout:   r.Checkout,
		Commit:     r.Commit,
		Package:    r.Package.Label(),
		Error:      r.Error,
	}
	for _, step := range r.Steps {
		sr := datastore.StepRecord{
			ID:     string(step.ID),
			Status: string(step.Status),
			Error:  step.Error,
		}
		if step.Duration > 0 {
			sr.Duration = step.Duration.Round(time.Millisecond).String()
		}
		rec.Steps = append(rec.Steps, sr)
	}
	return rec
}
