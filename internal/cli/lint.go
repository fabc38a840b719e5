package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/snekfx/testgo/internal/filesystem"
	"github.com/snekfx/testgo/internal/report"
	"github.com/snekfx/testgo/internal/repo"
	"github.com/snekfx/testgo/internal/validate"
)

// LintCommand handles the lint command
type LintCommand struct {
	fs filesystem.FileSystem

	// forceDetailed always shows the full report (violations alias)
	forceDetailed bool
}

// NewLintCommand creates a new lint command
func NewLintCommand(fs filesystem.FileSystem) *cobra.Command {
	cmd := &LintCommand{fs: fs}

	cobraCmd := &cobra.Command{
		Use:   "lint",
		Short: "Check test organization without running tests",
		RunE:  cmd.Run,
	}

	cobraCmd.Flags().Bool("violations", false, "Show the detailed violation report")

	return cobraCmd
}

// NewViolationsCommand creates the violations command, an alias for
// `lint --violations`.
func NewViolationsCommand(fs filesystem.FileSystem) *cobra.Command {
	cmd := &LintCommand{fs: fs, forceDetailed: true}

	return &cobra.Command{
		Use:   "violations",
		Short: "Show the detailed violation report",
		RunE:  cmd.Run,
	}
}

// Run executes the lint command: exit 0 when the organization is clean,
// 1 when violations exist, 127 on environment errors.
func (c *LintCommand) Run(cmd *cobra.Command, args []string) error {
	printer := printerFromFlags(cmd)

	ctx, err := repo.NewContext(c.fs)
	if err != nil {
		printer.Error("✗ Error", err.Error())
		return &ExitError{Code: 127}
	}

	lang := targetLanguage(cmd, ctx)

	violations := validate.New(c.fs, ctx.Config).Validate(ctx.Root, lang)

	if violations.IsValid() {
		printer.Success("✓ Validation Passed", fmt.Sprintf(
			"No test organization violations found!\n\n"+
				"Project: %s\n"+
				"Language: %s\n"+
				"Test root: %s",
			projectLabel(ctx), lang, ctx.Config.TestRoot))
		return nil
	}

	detailed := c.forceDetailed
	if !detailed {
		detailed, _ = cmd.Flags().GetBool("violations")
	}

	if detailed {
		reportText, err := report.FormatViolations(violations, lang)
		if err != nil {
			return err
		}
		printer.Warning("⚠ Test Organization Violations", reportText)
		return &ExitError{Code: 1}
	}

	summary := report.Summary(violations)
	printer.Warning("⚠ Validation Failed", fmt.Sprintf(
		"Found %d test organization violation(s):\n\n"+
			"• Naming issues: %d\n"+
			"• Missing sanity tests: %d\n"+
			"• Missing UAT tests: %d\n"+
			"• Missing category entries: %d\n"+
			"• Unauthorized root files: %d\n"+
			"• Invalid directories: %d\n"+
			"• Missing hub integration tests: %d\n\n"+
			"Run 'testgo lint --violations' for detailed report",
		summary["total"],
		summary["naming"],
		summary["missing_sanity"],
		summary["missing_uat"],
		summary["missing_category_entries"],
		summary["unauthorized_root"],
		summary["invalid_directories"],
		summary["missing_hub_integration"]))

	return &ExitError{Code: 1}
}
