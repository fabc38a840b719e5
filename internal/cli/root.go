package cli

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/snekfx/testgo/internal/filesystem"
	"github.com/snekfx/testgo/internal/models"
	"github.com/snekfx/testgo/internal/output"
	"github.com/snekfx/testgo/internal/repo"
)

// NewRootCommand creates the root command
func NewRootCommand(fs filesystem.FileSystem) *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "testgo",
		Short: "Enforce test organization standards and run tests",
		Long: `A CLI tool for enforcing test organization standards across
rust, python, nodejs, and shell projects.

Tests follow the <category>_<module> naming convention across nine fixed
categories. Running tests validates the organization first; violations
block execution unless overridden.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			// Default to `testgo run` when no subcommand is provided.
			return (&RunCommand{fs: fs}).Run(cmd, nil)
		},
	}

	rootCmd.PersistentFlags().String("view", "pretty", "Output view: pretty or data")
	rootCmd.PersistentFlags().Bool("no-boxy", false, "Disable styled panels (same as --view data)")
	rootCmd.PersistentFlags().Bool("override", false, "Run tests despite organization violations")
	rootCmd.PersistentFlags().Bool("skip-enforcement", false, "Skip organization validation entirely")
	rootCmd.PersistentFlags().Int("timeout", 0, "Test timeout in seconds (default from config)")
	rootCmd.PersistentFlags().Int("parallel", 0, "Worker count exported to the native runner")
	rootCmd.PersistentFlags().String("language", "", "Target language (default: detected primary)")

	rootCmd.AddCommand(NewRunCommand(fs))
	rootCmd.AddCommand(NewLintCommand(fs))
	rootCmd.AddCommand(NewViolationsCommand(fs))
	rootCmd.AddCommand(NewCheckCommand(fs))
	rootCmd.AddCommand(NewDocsCommand(fs))
	rootCmd.AddCommand(NewInitCommand(fs))

	return rootCmd
}

// Execute runs the root command and returns the process exit code.
func Execute() int {
	fs := filesystem.NewOSFileSystem()

	rootCmd := NewRootCommand(fs)

	err := rootCmd.Execute()
	if err == nil {
		return 0
	}

	var exitErr *ExitError
	if errors.As(err, &exitErr) {
		return exitErr.Code
	}

	fmt.Fprintln(os.Stderr, "Error:", err)
	return 1
}

// printerFromFlags builds the Printer for the selected output mode.
func printerFromFlags(cmd *cobra.Command) *output.Printer {
	view, _ := cmd.Flags().GetString("view")
	noBoxy, _ := cmd.Flags().GetBool("no-boxy")

	mode := output.ModePretty
	if noBoxy || view == "data" {
		mode = output.ModeData
	}

	return output.NewPrinter(mode)
}

// targetLanguage resolves the language to operate on: the --language flag
// when valid, otherwise the detected primary.
func targetLanguage(cmd *cobra.Command, ctx *repo.Context) models.Language {
	flag, _ := cmd.Flags().GetString("language")
	if models.IsLanguage(flag) {
		return models.Language(flag)
	}
	return ctx.Primary
}

// projectLabel names the project for display: configured name or the
// repository directory.
func projectLabel(ctx *repo.Context) string {
	if ctx.Config.ProjectName != "" {
		return ctx.Config.ProjectName
	}
	return filepath.Base(ctx.Root)
}
