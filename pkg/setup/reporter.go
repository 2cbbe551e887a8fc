package setup

// Reporter receives progress as the procedure runs
type Reporter interface {
	StepStarted(index, total int, step Step)
	StepFinished(index, total int, step Step, result StepResult)
	Hint(hint Hint)
}

// NopReporter discards all progress
type NopReporter struct{}

func (NopReporter) StepStarted(int, int, Step) {}

func (NopReporter) StepFinished(int, int, Step, StepResult) {}

func (NopReporter) Hint(Hint) {}

var _ Reporter = NopReporter{}
