package models

// TestResult captures the outcome of one test execution.
//
// Results are derived from the runner's output and never mutated after
// construction.
type TestResult struct {
	Passed  int
	Failed  int
	Ignored int
	Total   int

	// Duration in seconds
	Duration float64

	// Output is the combined stdout+stderr of the runner
	Output string

	// ExitCode of the runner process. 124 marks a timeout, 127 a missing runner.
	ExitCode int
}

// Success reports whether the tests passed (exit code 0).
func (r *TestResult) Success() bool {
	return r.ExitCode == 0
}
