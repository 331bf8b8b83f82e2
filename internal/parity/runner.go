package parity

import (
	"fmt"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
)

// CaseResult records the outcome of one executed case.
type CaseResult struct {
	Suite  string
	Name   string
	Op     string
	Passed bool

	// Diff is the go-cmp difference between expected and actual result,
	// empty when the case passed or failed with an error.
	Diff string

	// Err describes an evaluation error (unknown op, malformed args, or an
	// unexpected arithmetic error), empty otherwise.
	Err string
}

// SuiteResult aggregates the outcomes of one suite.
type SuiteResult struct {
	Name     string
	Passed   int
	Failed   int
	Failures []CaseResult
}

// RunSuite executes every case of the suite against this implementation.
func RunSuite(suite *Suite) SuiteResult {
	result := SuiteResult{Name: suite.Name}
	for i, c := range suite.Cases {
		cr := runCase(suite.Name, i, c)
		if cr.Passed {
			result.Passed++
			continue
		}
		result.Failed++
		result.Failures = append(result.Failures, cr)
	}
	return result
}

func runCase(suiteName string, i int, c Case) CaseResult {
	name := c.Name
	if name == "" {
		name = fmt.Sprintf("%s#%d", c.Op, i)
	}
	result := CaseResult{Suite: suiteName, Name: name, Op: c.Op}

	got, err := Evaluate(c.Op, c.Args)
	if c.WantError {
		if err == nil {
			result.Err = "want an error, got none"
			return result
		}
		result.Passed = true
		return result
	}
	if err != nil {
		result.Err = err.Error()
		return result
	}

	diff := cmp.Diff(normalize(c.Want), normalize(got), cmpopts.EquateNaNs())
	if diff != "" {
		result.Diff = diff
		return result
	}
	result.Passed = true
	return result
}

// normalize widens numeric values and flattens string slices so that a
// YAML-decoded expectation and a Go result compare structurally: every
// integer becomes int64, every float float64, and every sequence a []any of
// normalized elements.
func normalize(v any) any {
	switch t := v.(type) {
	case int:
		return int64(t)
	case int8:
		return int64(t)
	case int16:
		return int64(t)
	case int32:
		return int64(t)
	case uint64:
		return int64(t)
	case float32:
		return float64(t)
	case []string:
		seq := make([]any, len(t))
		for i, e := range t {
			seq[i] = e
		}
		return seq
	case []any:
		seq := make([]any, len(t))
		for i, e := range t {
			seq[i] = normalize(e)
		}
		return seq
	default:
		return v
	}
}
