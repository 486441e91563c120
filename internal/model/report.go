package model

import "time"

// LogEntry is a single progress message emitted during a run.
type LogEntry struct {
	Time    time.Time `yaml:"time"`
	Message string    `yaml:"message"`
}

// StepName identifies one of the fixed removal steps.
type StepName string

// Steps of a removal run, in execution order.
const (
	StepDefaultFileTypes   StepName = "default file types"
	StepDefaultDirectories StepName = "default directories"
	StepUserDirectories    StepName = "user directories"
	StepProjectFiles       StepName = "project files"
	StepSolutionFiles      StepName = "solution files"
)

// Tally counts the items a batch operation matched, changed (deleted or
// rewritten) and failed on.
type Tally struct {
	Matched int `yaml:"matched"`
	Changed int `yaml:"changed"`
	Failed  int `yaml:"failed"`
}

// Add accumulates other into t.
func (t *Tally) Add(other Tally) {
	t.Matched += other.Matched
	t.Changed += other.Changed
	t.Failed += other.Failed
}

// StepResult counts what a single step touched.
type StepResult struct {
	Name  StepName `yaml:"name"`
	Tally `yaml:",inline"`
}

// Summary describes a finished run. A run always finishes; Aborted tells
// whether the sequence ended early at the top-level error boundary.
type Summary struct {
	RunID    string       `yaml:"run_id"`
	Root     Path         `yaml:"root"`
	Started  time.Time    `yaml:"started"`
	Finished time.Time    `yaml:"finished"`
	Steps    []StepResult `yaml:"steps"`
	Aborted  bool         `yaml:"aborted"`
}

// Step returns the result recorded for name, if any.
func (s Summary) Step(name StepName) (StepResult, bool) {
	for _, step := range s.Steps {
		if step.Name == name {
			return step, true
		}
	}

	return StepResult{}, false
}

// RunReport bundles a summary with every log entry of the run.
type RunReport struct {
	Version int        `yaml:"version"`
	Summary Summary    `yaml:"summary"`
	Entries []LogEntry `yaml:"entries"`
}

// CurrentReportVersion is written into every saved report.
const CurrentReportVersion = 1
