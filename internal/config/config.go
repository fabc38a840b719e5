package config

import (
	"path/filepath"

	"github.com/snekfx/testgo/internal/filesystem"
	"github.com/snekfx/testgo/internal/models"
)

// SpecFileName is the configuration file looked up at the repository root.
const SpecFileName = ".spec.toml"

// DefaultTimeout is the per-run timeout in seconds when none is configured.
const DefaultTimeout = 600

// LanguageConfig holds per-language discovery and runner settings.
type LanguageConfig struct {
	// ModulePatterns are glob patterns relative to the module root, applied
	// in priority order: the first pattern is the primary convention, later
	// patterns are legacy/flat conventions.
	ModulePatterns []string

	// Exclusions are module-name patterns (prefix*, *suffix, or exact)
	Exclusions []string

	// RunnerCmd is the native test command (e.g. "cargo test")
	RunnerCmd string

	// Timeout in seconds for one test run
	Timeout int
}

// Config is the resolved testgo configuration.
//
// Loaded from .spec.toml; the [tests] section takes priority over legacy
// top-level keys. Defaults are applied after loading.
type Config struct {
	ProjectName string
	Languages   []string

	// TestRoot is the test directory, relative to the repository root
	TestRoot string

	// ModuleRoot is the source directory modules are discovered under
	ModuleRoot string

	// Exclude holds global module-name exclusion patterns
	Exclude []string

	Rust   LanguageConfig
	Python LanguageConfig
	Nodejs LanguageConfig
	Shell  LanguageConfig

	// SourcePath is the path the config was loaded from, empty for defaults
	SourcePath string
}

// Lang returns the language-specific configuration.
func (c *Config) Lang(l models.Language) *LanguageConfig {
	switch l {
	case models.LanguagePython:
		return &c.Python
	case models.LanguageNodejs:
		return &c.Nodejs
	case models.LanguageShell:
		return &c.Shell
	default:
		return &c.Rust
	}
}

// ApplyDefaults fills in unset fields with per-language defaults.
func (c *Config) ApplyDefaults() {
	if c.TestRoot == "" {
		c.TestRoot = "tests"
	}
	if c.ModuleRoot == "" {
		c.ModuleRoot = "src"
	}
	if len(c.Languages) == 0 {
		c.Languages = []string{string(models.LanguageRust)}
	}

	if len(c.Rust.ModulePatterns) == 0 {
		c.Rust.ModulePatterns = []string{"*/mod.rs", "*.rs"}
	}
	if len(c.Rust.Exclusions) == 0 {
		c.Rust.Exclusions = []string{"_*", "dev_*", "prelude*", "dummy_*", "lib.rs", "main.rs"}
	}
	if c.Rust.RunnerCmd == "" {
		c.Rust.RunnerCmd = "cargo test"
	}
	if c.Rust.Timeout == 0 {
		c.Rust.Timeout = DefaultTimeout
	}

	if len(c.Python.ModulePatterns) == 0 {
		c.Python.ModulePatterns = []string{"*/__init__.py", "*.py"}
	}
	if len(c.Python.Exclusions) == 0 {
		c.Python.Exclusions = []string{"__pycache__", "*.pyc", "_*", "dev_*", "test_*", "conftest.py"}
	}
	if c.Python.RunnerCmd == "" {
		c.Python.RunnerCmd = "pytest"
	}
	if c.Python.Timeout == 0 {
		c.Python.Timeout = DefaultTimeout
	}

	if len(c.Nodejs.ModulePatterns) == 0 {
		c.Nodejs.ModulePatterns = []string{"*/index.js", "*.js"}
	}
	if len(c.Nodejs.Exclusions) == 0 {
		c.Nodejs.Exclusions = []string{"node_modules", "dist", "build", "_*", "dev_*", "*.test.js", "*.spec.js"}
	}
	if c.Nodejs.RunnerCmd == "" {
		c.Nodejs.RunnerCmd = "npm test"
	}
	if c.Nodejs.Timeout == 0 {
		c.Nodejs.Timeout = DefaultTimeout
	}

	if len(c.Shell.ModulePatterns) == 0 {
		c.Shell.ModulePatterns = []string{"*.sh"}
	}
	if len(c.Shell.Exclusions) == 0 {
		c.Shell.Exclusions = []string{"_*", "dev_*", "*.bak"}
	}
	if c.Shell.RunnerCmd == "" {
		c.Shell.RunnerCmd = "bash"
	}
	if c.Shell.Timeout == 0 {
		c.Shell.Timeout = DefaultTimeout
	}
}

// Default builds a configuration with auto-detected languages.
func Default(fs filesystem.FileSystem, repoRoot string) *Config {
	cfg := &Config{
		ProjectName: filepath.Base(repoRoot),
		Languages:   DetectLanguages(fs, repoRoot),
	}
	cfg.ApplyDefaults()
	return cfg
}

// DetectLanguages detects project languages from manifest files.
func DetectLanguages(fs filesystem.FileSystem, repoRoot string) []string {
	var languages []string

	if fs.Exists(filepath.Join(repoRoot, "Cargo.toml")) {
		languages = append(languages, string(models.LanguageRust))
	}

	for _, manifest := range []string{"pyproject.toml", "setup.py", "setup.cfg"} {
		if fs.Exists(filepath.Join(repoRoot, manifest)) {
			languages = append(languages, string(models.LanguagePython))
			break
		}
	}

	if fs.Exists(filepath.Join(repoRoot, "package.json")) {
		languages = append(languages, string(models.LanguageNodejs))
	}

	if hasShellTests(fs, filepath.Join(repoRoot, "tests")) {
		languages = append(languages, string(models.LanguageShell))
	}

	if len(languages) == 0 {
		return []string{string(models.LanguageRust)}
	}
	return languages
}

func hasShellTests(fs filesystem.FileSystem, testDir string) bool {
	if !fs.Exists(testDir) {
		return false
	}

	if matches, err := fs.Glob(filepath.Join(testDir, "*.sh")); err == nil && len(matches) > 0 {
		return true
	}
	matches, err := fs.Glob(filepath.Join(testDir, "*", "*.sh"))
	return err == nil && len(matches) > 0
}

// Validate checks the configuration against project requirements and returns
// structural errors (empty when valid).
func Validate(cfg *Config, fs filesystem.FileSystem, repoRoot string) []string {
	var errs []string

	for _, lang := range cfg.Languages {
		if !models.IsLanguage(lang) {
			errs = append(errs, "invalid language: "+lang+" (valid: rust, python, nodejs, shell)")
		}
	}

	for _, lang := range cfg.Languages {
		switch models.Language(lang) {
		case models.LanguageRust:
			if !fs.Exists(filepath.Join(repoRoot, "Cargo.toml")) {
				errs = append(errs, "rust language configured but Cargo.toml not found")
			}
		case models.LanguagePython:
			found := false
			for _, manifest := range []string{"pyproject.toml", "setup.py", "setup.cfg"} {
				if fs.Exists(filepath.Join(repoRoot, manifest)) {
					found = true
					break
				}
			}
			if !found {
				errs = append(errs, "python language configured but no manifest found (need one of: pyproject.toml, setup.py, setup.cfg)")
			}
		case models.LanguageNodejs:
			if !fs.Exists(filepath.Join(repoRoot, "package.json")) {
				errs = append(errs, "nodejs language configured but package.json not found")
			}
		}
	}

	if !fs.Exists(filepath.Join(repoRoot, cfg.TestRoot)) {
		errs = append(errs, "test directory not found: "+cfg.TestRoot)
	}
	if !fs.Exists(filepath.Join(repoRoot, cfg.ModuleRoot)) {
		errs = append(errs, "module directory not found: "+cfg.ModuleRoot)
	}

	return errs
}
