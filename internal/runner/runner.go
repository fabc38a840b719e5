package runner

import (
	"bytes"
	"context"
	"fmt"
	"os"
	"os/exec"
	"strings"
	"time"

	"github.com/snekfx/testgo/internal/models"
)

// Runner invokes the language-native test command for a repository.
//
// Execution failures (missing runner, timeout, unexpected process failure)
// are captured into the TestResult, never raised; callers always receive a
// structured outcome.
type Runner struct {
	root     string
	cmd      []string
	env      []string
	lookPath func(string) (string, error)
}

// Option configures runner behavior.
type Option func(*Runner)

// WithLookPath overrides binary resolution (used in tests).
func WithLookPath(fn func(string) (string, error)) Option {
	return func(r *Runner) {
		r.lookPath = fn
	}
}

// WithEnv appends environment variables for the runner process.
func WithEnv(vars ...string) Option {
	return func(r *Runner) {
		r.env = append(r.env, vars...)
	}
}

// New creates a Runner for the repository root and native runner command
// (e.g. "cargo test").
func New(repoRoot, runnerCmd string, options ...Option) *Runner {
	r := &Runner{
		root:     repoRoot,
		cmd:      strings.Fields(runnerCmd),
		lookPath: exec.LookPath,
	}

	for _, option := range options {
		option(r)
	}

	return r
}

// Run executes the test command with optional category/module filtering and
// a hard timeout.
//
// Both filters name the exact test target; a single filter is passed as a
// positional term, relying on the native runner's own matching semantics.
func (r *Runner) Run(ctx context.Context, category, module string, timeout time.Duration) models.TestResult {
	if len(r.cmd) == 0 {
		return models.TestResult{
			Output:   "Error: no runner command configured",
			ExitCode: 127,
		}
	}

	args := buildArgs(r.cmd, category, module)

	if _, err := r.lookPath(args[0]); err != nil {
		return models.TestResult{
			Output:   fmt.Sprintf("Error: %s command not found. Is the toolchain installed?", args[0]),
			ExitCode: 127,
		}
	}

	// Prefer a hard-timeout wrapper process; fall back to context timeout.
	timeoutBin := r.findTimeoutBin()

	var cmd *exec.Cmd
	if timeoutBin != "" {
		wrapped := append([]string{fmt.Sprintf("%ds", int(timeout.Seconds()))}, args...)
		cmd = exec.CommandContext(ctx, timeoutBin, wrapped...)
	} else {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, timeout)
		defer cancel()
		cmd = exec.CommandContext(ctx, args[0], args[1:]...)
	}

	cmd.Dir = r.root
	if len(r.env) > 0 {
		cmd.Env = append(os.Environ(), r.env...)
	}

	var buf bytes.Buffer
	cmd.Stdout = &buf
	cmd.Stderr = &buf

	err := cmd.Run()
	output := buf.String()

	exitCode := 0
	if err != nil {
		exitErr, ok := err.(*exec.ExitError)
		if !ok {
			return models.TestResult{
				Output:   fmt.Sprintf("Error executing %s: %v", args[0], err),
				ExitCode: 1,
			}
		}
		exitCode = exitErr.ExitCode()
	}

	// 124 from the wrapper and a dead context both mean the timeout fired.
	if exitCode == 124 || ctx.Err() == context.DeadlineExceeded {
		return models.TestResult{
			Duration: timeout.Seconds(),
			Output:   output + fmt.Sprintf("\n\nTest execution timed out after %d seconds", int(timeout.Seconds())),
			ExitCode: 124,
		}
	}

	passed, failed, ignored := parseCounts(output)

	return models.TestResult{
		Passed:   passed,
		Failed:   failed,
		Ignored:  ignored,
		Total:    passed + failed + ignored,
		Duration: parseDuration(output),
		Output:   output,
		ExitCode: exitCode,
	}
}

// buildArgs composes the runner invocation from the configured command and
// the category/module filters.
func buildArgs(cmd []string, category, module string) []string {
	args := append([]string{}, cmd...)

	switch {
	case category != "" && module != "":
		args = append(args, "--test", category+"_"+module)
	case category != "":
		args = append(args, category)
	case module != "":
		args = append(args, module)
	}

	return args
}

// findTimeoutBin locates a timeout wrapper: GNU timeout first, then gtimeout
// (macOS/BSD). Empty when neither is installed.
func (r *Runner) findTimeoutBin() string {
	for _, name := range []string{"timeout", "gtimeout"} {
		if path, err := r.lookPath(name); err == nil {
			return path
		}
	}
	return ""
}
