package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/snekfx/testgo/internal/filesystem"
	"github.com/snekfx/testgo/internal/repo"
)

// CheckCommand handles the check command
type CheckCommand struct {
	fs filesystem.FileSystem
}

// NewCheckCommand creates a new check command
func NewCheckCommand(fs filesystem.FileSystem) *cobra.Command {
	cmd := &CheckCommand{fs: fs}

	return &cobra.Command{
		Use:   "check",
		Short: "Check repository configuration",
		RunE:  cmd.Run,
	}
}

// Run executes the check command: exit 0 when the configuration is valid,
// 127 otherwise.
func (c *CheckCommand) Run(cmd *cobra.Command, args []string) error {
	printer := printerFromFlags(cmd)

	ctx, err := repo.NewContext(c.fs)
	if err != nil {
		printer.Error("✗ Error", err.Error())
		return &ExitError{Code: 127}
	}

	if ctx.IsValid() {
		printer.Success("✓ Configuration Check", fmt.Sprintf(
			"Configuration valid!\n\n"+
				"Project: %s\n"+
				"Languages: %s\n"+
				"Primary: %s\n"+
				"Test root: %s\n"+
				"Module root: %s",
			projectLabel(ctx),
			strings.Join(ctx.Languages, ", "),
			ctx.Primary,
			ctx.Config.TestRoot,
			ctx.Config.ModuleRoot))
		return nil
	}

	var items []string
	for _, e := range ctx.Errors {
		items = append(items, "  • "+e)
	}

	printer.Error("✗ Configuration Errors", fmt.Sprintf(
		"Configuration has %d error(s):\n\n%s",
		len(ctx.Errors), strings.Join(items, "\n")))

	return &ExitError{Code: 127}
}
