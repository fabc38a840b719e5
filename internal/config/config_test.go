package config

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/snekfx/testgo/internal/filesystem"
)

func TestApplyDefaults(t *testing.T) {
	cfg := &Config{}
	cfg.ApplyDefaults()

	require.Equal(t, "tests", cfg.TestRoot)
	require.Equal(t, "src", cfg.ModuleRoot)
	require.Equal(t, []string{"rust"}, cfg.Languages)

	require.Equal(t, []string{"*/mod.rs", "*.rs"}, cfg.Rust.ModulePatterns)
	require.Equal(t, "cargo test", cfg.Rust.RunnerCmd)
	require.Equal(t, DefaultTimeout, cfg.Rust.Timeout)
	require.Contains(t, cfg.Rust.Exclusions, "dev_*")

	require.Equal(t, "pytest", cfg.Python.RunnerCmd)
	require.Equal(t, "npm test", cfg.Nodejs.RunnerCmd)
	require.Equal(t, "bash", cfg.Shell.RunnerCmd)
}

func TestApplyDefaultsKeepsExplicitValues(t *testing.T) {
	cfg := &Config{
		TestRoot: "qa",
		Rust:     LanguageConfig{RunnerCmd: "cargo nextest run", Timeout: 30},
	}
	cfg.ApplyDefaults()

	require.Equal(t, "qa", cfg.TestRoot)
	require.Equal(t, "cargo nextest run", cfg.Rust.RunnerCmd)
	require.Equal(t, 30, cfg.Rust.Timeout)
}

func TestLoadNoSpecFile(t *testing.T) {
	fs := filesystem.NewMockFileSystem()
	fs.AddDir("/repo")

	cfg, err := Load(fs, "/repo")
	require.NoError(t, err)
	require.Nil(t, cfg)
}

func TestLoadTestsSection(t *testing.T) {
	fs := filesystem.NewMockFileSystem()
	fs.AddFile("/repo/.spec.toml", []byte(`
project_name = "legacy-name"

[tests]
test_root = "qa"
exclude = ["vendored_*"]

[tests.rust]
runner_cmd = "cargo nextest run"
timeout = 120
`))

	cfg, err := Load(fs, "/repo")
	require.NoError(t, err)
	require.NotNil(t, cfg)

	require.Equal(t, "legacy-name", cfg.ProjectName)
	require.Equal(t, "qa", cfg.TestRoot)
	require.Equal(t, []string{"vendored_*"}, cfg.Exclude)
	require.Equal(t, "cargo nextest run", cfg.Rust.RunnerCmd)
	require.Equal(t, 120, cfg.Rust.Timeout)
	require.Equal(t, "/repo/.spec.toml", cfg.SourcePath)
}

func TestLoadLegacyKeys(t *testing.T) {
	fs := filesystem.NewMockFileSystem()
	fs.AddFile("/repo/.spec.toml", []byte(`
project_name = "oldproj"
languages = ["rust", "shell"]
test_root = "tests"
features_root = "lib"

[rust]
runner_cmd = "cargo test --workspace"
`))

	cfg, err := Load(fs, "/repo")
	require.NoError(t, err)

	require.Equal(t, "oldproj", cfg.ProjectName)
	require.Equal(t, []string{"rust", "shell"}, cfg.Languages)
	require.Equal(t, "lib", cfg.ModuleRoot, "features_root is the legacy alias")
	require.Equal(t, "cargo test --workspace", cfg.Rust.RunnerCmd)
}

func TestLoadTestsSectionTakesPriority(t *testing.T) {
	fs := filesystem.NewMockFileSystem()
	fs.AddFile("/repo/.spec.toml", []byte(`
test_root = "old"

[tests]
test_root = "new"

[rust]
runner_cmd = "legacy"

[tests.rust]
runner_cmd = "preferred"
`))

	cfg, err := Load(fs, "/repo")
	require.NoError(t, err)

	require.Equal(t, "new", cfg.TestRoot)
	require.Equal(t, "preferred", cfg.Rust.RunnerCmd)
}

func TestLoadInvalidToml(t *testing.T) {
	fs := filesystem.NewMockFileSystem()
	fs.AddFile("/repo/.spec.toml", []byte("not = [valid"))

	_, err := Load(fs, "/repo")
	require.Error(t, err)
}

func TestDetectLanguages(t *testing.T) {
	fs := filesystem.NewMockFileSystem()
	fs.AddFile("/repo/Cargo.toml", []byte("[package]\nname = \"proj\""))
	fs.AddFile("/repo/pyproject.toml", []byte("[project]\nname = \"proj\""))
	fs.AddFile("/repo/tests/run.sh", []byte("#!/bin/bash"))

	languages := DetectLanguages(fs, "/repo")
	require.Equal(t, []string{"rust", "python", "shell"}, languages)
}

func TestDetectLanguagesDefaultsToRust(t *testing.T) {
	fs := filesystem.NewMockFileSystem()
	fs.AddDir("/repo")

	require.Equal(t, []string{"rust"}, DetectLanguages(fs, "/repo"))
}

func TestValidateReportsStructuralErrors(t *testing.T) {
	fs := filesystem.NewMockFileSystem()
	fs.AddDir("/repo")

	cfg := &Config{Languages: []string{"rust", "cobol"}}
	cfg.ApplyDefaults()

	errs := Validate(cfg, fs, "/repo")

	require.Contains(t, errs, "invalid language: cobol (valid: rust, python, nodejs, shell)")
	require.Contains(t, errs, "rust language configured but Cargo.toml not found")
	require.Contains(t, errs, "test directory not found: tests")
	require.Contains(t, errs, "module directory not found: src")
}

func TestValidateCleanConfig(t *testing.T) {
	fs := filesystem.NewMockFileSystem()
	fs.AddFile("/repo/Cargo.toml", []byte("[package]\nname = \"proj\""))
	fs.AddDir("/repo/tests")
	fs.AddDir("/repo/src")

	cfg := &Config{Languages: []string{"rust"}}
	cfg.ApplyDefaults()

	require.Empty(t, Validate(cfg, fs, "/repo"))
}
