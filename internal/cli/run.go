package cli

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/snekfx/testgo/internal/config"
	"github.com/snekfx/testgo/internal/filesystem"
	"github.com/snekfx/testgo/internal/report"
	"github.com/snekfx/testgo/internal/repo"
	"github.com/snekfx/testgo/internal/runner"
	"github.com/snekfx/testgo/internal/validate"
)

// RunCommand handles the run command
type RunCommand struct {
	fs filesystem.FileSystem
}

// NewRunCommand creates a new run command
func NewRunCommand(fs filesystem.FileSystem) *cobra.Command {
	cmd := &RunCommand{fs: fs}

	cobraCmd := &cobra.Command{
		Use:   "run [category] [module]",
		Short: "Validate test organization, then run tests",
		Long: `Validates test organization against the naming convention and, when
the organization is clean (or explicitly overridden), runs the
language-native test command.

Optional positional filters narrow the run: a category alone runs every
test in that category, category plus module runs the single wrapper.`,
		Example: `  # Run the full suite
  testgo run

  # Run all sanity tests
  testgo run sanity

  # Run one test wrapper
  testgo run sanity math

  # Run despite violations
  testgo run --override`,
		Args: cobra.MaximumNArgs(2),
		RunE: cmd.Run,
	}

	return cobraCmd
}

// Run executes the run command, returning an ExitError carrying the process
// exit code: 1 for blocking violations, 2 for test failures, 124 for
// timeout, 127 for environment errors.
func (c *RunCommand) Run(cmd *cobra.Command, args []string) error {
	printer := printerFromFlags(cmd)

	ctx, err := repo.NewContext(c.fs)
	if err != nil {
		printer.Error("✗ Error", err.Error())
		return &ExitError{Code: 127}
	}

	lang := targetLanguage(cmd, ctx)

	skipEnforcement, _ := cmd.Flags().GetBool("skip-enforcement")
	override, _ := cmd.Flags().GetBool("override")

	if !skipEnforcement {
		violations := validate.New(c.fs, ctx.Config).Validate(ctx.Root, lang)

		if !violations.IsValid() {
			reportText, err := report.FormatViolations(violations, lang)
			if err != nil {
				return err
			}
			printer.Warning("⚠ Test Organization Violations", reportText)

			if !override {
				printer.Error("✗ Validation Failed", fmt.Sprintf(
					"Found %d test organization violation(s).\n\n"+
						"Fix violations or use --override to run anyway.",
					violations.Total()))
				return &ExitError{Code: 1}
			}

			printer.Warning("⚠ Override Mode", "Running tests despite violations (--override mode)")
		}
	}

	lc := ctx.Config.Lang(lang)

	timeout, _ := cmd.Flags().GetInt("timeout")
	if timeout <= 0 {
		timeout = lc.Timeout
	}
	if timeout <= 0 {
		timeout = config.DefaultTimeout
	}

	var category, module string
	if len(args) > 0 {
		category = args[0]
	}
	if len(args) > 1 {
		module = args[1]
	}

	printer.Info("ℹ Info", fmt.Sprintf("Running %s tests... (timeout: %ds)", lang, timeout))

	var opts []runner.Option
	if parallel, _ := cmd.Flags().GetInt("parallel"); parallel > 0 {
		opts = append(opts, runner.WithEnv(fmt.Sprintf("TEST_THREADS=%d", parallel)))
	}

	r := runner.New(ctx.Root, lc.RunnerCmd, opts...)
	result := r.Run(cmd.Context(), category, module, time.Duration(timeout)*time.Second)

	body := report.FormatResult(result)

	if result.Success() {
		printer.Success("✓ Test Results", body)
		return nil
	}

	printer.Error("✗ Test Results", body)

	switch result.ExitCode {
	case 124, 127:
		return &ExitError{Code: result.ExitCode}
	default:
		return &ExitError{Code: 2}
	}
}
