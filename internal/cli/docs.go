package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/snekfx/testgo/internal/docs"
	"github.com/snekfx/testgo/internal/filesystem"
	"github.com/snekfx/testgo/internal/repo"
)

// DocsCommand handles the docs command
type DocsCommand struct {
	fs filesystem.FileSystem
}

// NewDocsCommand creates a new docs command
func NewDocsCommand(fs filesystem.FileSystem) *cobra.Command {
	cmd := &DocsCommand{fs: fs}

	return &cobra.Command{
		Use:   "docs [feature]",
		Short: "Display feature documentation",
		Long: `Displays feature documentation from docs/feats/.

Without arguments, lists every documented feature. With a feature name,
shows that feature's full documentation.`,
		Args: cobra.MaximumNArgs(1),
		RunE: cmd.Run,
	}
}

// Run executes the docs command.
func (c *DocsCommand) Run(cmd *cobra.Command, args []string) error {
	printer := printerFromFlags(cmd)

	ctx, err := repo.NewContext(c.fs)
	if err != nil {
		printer.Error("✗ Error", err.Error())
		return &ExitError{Code: 127}
	}

	store := docs.NewStore(c.fs, ctx.Root)

	if len(args) == 1 {
		doc, err := store.Get(args[0])
		if err != nil {
			printer.Error("✗ Documentation", err.Error())
			return &ExitError{Code: 1}
		}

		printer.Info(doc.Title, doc.Body)
		return nil
	}

	list, err := store.List()
	if err != nil {
		printer.Error("✗ Documentation", err.Error())
		return &ExitError{Code: 1}
	}

	if len(list) == 0 {
		printer.Info("ℹ Documentation", "No feature documentation found in "+docs.DefaultDir+"/")
		return nil
	}

	var lines []string
	for _, doc := range list {
		line := fmt.Sprintf("%-20s %s", doc.Name, doc.Title)
		if doc.Description != "" {
			line += " - " + doc.Description
		}
		lines = append(lines, line)
	}

	printer.Info("ℹ Feature Documentation", strings.Join(lines, "\n"))
	return nil
}
