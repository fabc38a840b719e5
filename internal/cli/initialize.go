package cli

import (
	"bytes"
	"errors"
	"fmt"
	"path/filepath"

	"github.com/BurntSushi/toml"
	tea "github.com/charmbracelet/bubbletea"
	huh "github.com/charmbracelet/huh"
	"github.com/spf13/cobra"

	"github.com/snekfx/testgo/internal/config"
	"github.com/snekfx/testgo/internal/filesystem"
	"github.com/snekfx/testgo/internal/models"
	"github.com/snekfx/testgo/internal/repo"
)

// specFile mirrors the .spec.toml layout written by init.
type specFile struct {
	Tests specTests `toml:"tests"`
}

type specTests struct {
	ProjectName string   `toml:"project_name,omitempty"`
	Languages   []string `toml:"languages"`
	TestRoot    string   `toml:"test_root"`
	ModuleRoot  string   `toml:"module_root"`
}

// InitCommand handles the init command
type InitCommand struct {
	fs filesystem.FileSystem
}

// NewInitCommand creates a new init command
func NewInitCommand(fs filesystem.FileSystem) *cobra.Command {
	cmd := &InitCommand{fs: fs}

	cobraCmd := &cobra.Command{
		Use:   "init",
		Short: "Create a .spec.toml for this repository",
		Long: `Creates a .spec.toml at the repository root.

Languages default to what the repository manifests declare; pass
--languages to skip the interactive form.`,
		RunE: cmd.Run,
	}

	cobraCmd.Flags().String("name", "", "Project name (default: detected from manifests)")
	cobraCmd.Flags().StringSlice("languages", nil, "Languages to configure (rust, python, nodejs, shell)")

	return cobraCmd
}

// Run executes the init command.
func (c *InitCommand) Run(cmd *cobra.Command, args []string) error {
	printer := printerFromFlags(cmd)

	cwd, err := c.fs.Getwd()
	if err != nil {
		return fmt.Errorf("failed to get working directory: %w", err)
	}

	root, err := repo.FindRoot(c.fs, cwd)
	if err != nil {
		// No repository marker yet; initialize the working directory.
		root = cwd
	}

	specPath := filepath.Join(root, config.SpecFileName)
	if c.fs.Exists(specPath) {
		printer.Error("✗ Init Failed", config.SpecFileName+" already exists. Remove it first to re-initialize.")
		return &ExitError{Code: 1}
	}

	name, _ := cmd.Flags().GetString("name")
	if name == "" {
		name = repo.ProjectName(c.fs, root)
	}
	if name == "" {
		name = filepath.Base(root)
	}

	languages, _ := cmd.Flags().GetStringSlice("languages")
	if len(languages) == 0 {
		selected, err := c.promptLanguages(config.DetectLanguages(c.fs, root))
		if err != nil {
			if errors.Is(err, huh.ErrUserAborted) {
				return nil
			}
			return err
		}
		languages = selected
	}

	if len(languages) == 0 {
		printer.Error("✗ Init Failed", "No languages selected.")
		return &ExitError{Code: 1}
	}
	for _, lang := range languages {
		if !models.IsLanguage(lang) {
			printer.Error("✗ Init Failed", fmt.Sprintf("Invalid language: %s (valid: rust, python, nodejs, shell)", lang))
			return &ExitError{Code: 1}
		}
	}

	spec := specFile{
		Tests: specTests{
			ProjectName: name,
			Languages:   languages,
			TestRoot:    "tests",
			ModuleRoot:  "src",
		},
	}

	var buf bytes.Buffer
	if err := toml.NewEncoder(&buf).Encode(spec); err != nil {
		return fmt.Errorf("failed to encode %s: %w", config.SpecFileName, err)
	}

	if err := c.fs.WriteFile(specPath, buf.Bytes(), 0644); err != nil {
		return fmt.Errorf("failed to write %s: %w", config.SpecFileName, err)
	}

	printer.Success("✓ Initialized", fmt.Sprintf(
		"Created %s\n\nProject: %s\nLanguages: %v", specPath, name, languages))
	return nil
}

// promptLanguages runs the interactive language multi-select, pre-selecting
// the detected languages.
func (c *InitCommand) promptLanguages(detected []string) ([]string, error) {
	selected := append([]string{}, detected...)

	opts := make([]huh.Option[string], 0, len(models.Languages))
	for _, lang := range models.Languages {
		opts = append(opts, huh.NewOption(string(lang), string(lang)))
	}

	keyMap := huh.NewDefaultKeyMap()
	keyMap.MultiSelect.Filter.SetEnabled(false)
	keyMap.MultiSelect.Toggle.SetKeys(" ")
	keyMap.MultiSelect.Toggle.SetHelp("space", "toggle selection")
	keyMap.MultiSelect.Submit.SetKeys("enter")
	keyMap.MultiSelect.Submit.SetHelp("enter", "continue")

	form := huh.NewForm(
		huh.NewGroup(
			huh.NewMultiSelect[string]().
				Options(opts...).
				Value(&selected),
		).
			Title("Language Selection").
			Description("Select the languages to enforce test organization for."),
	).
		WithShowHelp(true).
		WithProgramOptions(tea.WithAltScreen()).
		WithKeyMap(keyMap)

	if err := form.Run(); err != nil {
		return nil, err
	}

	return selected, nil
}
