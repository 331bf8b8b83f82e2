package parity

import "github.com/google/uuid"

// Report is the outcome of one verification run over a set of suites.
type Report struct {
	// RunID correlates this run across the logs and reports of the
	// different language implementations.
	RunID string

	Suites []SuiteResult
	Passed int
	Failed int
}

// Run executes every suite and aggregates the results under a fresh run ID.
func Run(suites []*Suite) *Report {
	report := &Report{RunID: uuid.NewString()}
	for _, suite := range suites {
		sr := RunSuite(suite)
		report.Suites = append(report.Suites, sr)
		report.Passed += sr.Passed
		report.Failed += sr.Failed
	}
	return report
}

// OK reports whether every case of every suite passed.
func (r *Report) OK() bool {
	return r.Failed == 0
}
