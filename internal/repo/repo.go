package repo

import (
	"fmt"
	"path/filepath"

	"github.com/snekfx/testgo/internal/config"
	"github.com/snekfx/testgo/internal/filesystem"
	"github.com/snekfx/testgo/internal/models"
)

// manifestFiles are secondary repository-root indicators after .git.
var manifestFiles = []string{
	"Cargo.toml",
	"pyproject.toml",
	"package.json",
	"setup.py",
}

// Context carries detected repository information.
type Context struct {
	// Root is the repository root directory
	Root string

	// Config is the loaded or default configuration
	Config *config.Config

	// Languages configured for the project
	Languages []string

	// Primary language, by source file count
	Primary models.Language

	// Errors from configuration validation (empty if valid)
	Errors []string
}

// IsValid reports whether the repository context has no validation errors.
func (c *Context) IsValid() bool {
	return len(c.Errors) == 0
}

// FindRoot finds the repository root by walking up the directory tree,
// looking for a .git directory or a project manifest.
func FindRoot(fs filesystem.FileSystem, start string) (string, error) {
	dir := filepath.Clean(start)
	for {
		if fs.Exists(filepath.Join(dir, ".git")) {
			return dir, nil
		}

		for _, manifest := range manifestFiles {
			if fs.Exists(filepath.Join(dir, manifest)) {
				return dir, nil
			}
		}

		parent := filepath.Dir(dir)
		if parent == dir {
			return "", fmt.Errorf("not in a repository: testgo requires a git repository or a project manifest")
		}
		dir = parent
	}
}

// NewContext detects the repository from the working directory, loads (or
// defaults) the configuration, and validates it.
func NewContext(fs filesystem.FileSystem) (*Context, error) {
	cwd, err := fs.Getwd()
	if err != nil {
		return nil, fmt.Errorf("failed to get working directory: %w", err)
	}
	return NewContextFrom(fs, cwd)
}

// NewContextFrom detects the repository starting at the given directory.
func NewContextFrom(fs filesystem.FileSystem, start string) (*Context, error) {
	root, err := FindRoot(fs, start)
	if err != nil {
		return nil, err
	}

	cfg, err := config.Load(fs, root)
	if err != nil {
		return nil, err
	}
	if cfg == nil {
		cfg = config.Default(fs, root)
	}

	errs := config.Validate(cfg, fs, root)

	return &Context{
		Root:      root,
		Config:    cfg,
		Languages: cfg.Languages,
		Primary:   PrimaryLanguage(fs, root, cfg.Languages),
		Errors:    errs,
	}, nil
}
