package config

import (
	"fmt"
	"path/filepath"

	"github.com/BurntSushi/toml"
	"github.com/snekfx/testgo/internal/filesystem"
)

// rawLang mirrors a per-language TOML section.
type rawLang struct {
	ModulePatterns []string `toml:"module_patterns"`
	Exclusions     []string `toml:"exclusions"`
	RunnerCmd      string   `toml:"runner_cmd"`
	Timeout        int      `toml:"timeout"`
}

// rawTests mirrors the [tests] section.
type rawTests struct {
	TestRoot string   `toml:"test_root"`
	Exclude  []string `toml:"exclude"`
	Rust     *rawLang `toml:"rust"`
	Python   *rawLang `toml:"python"`
	Nodejs   *rawLang `toml:"nodejs"`
	Shell    *rawLang `toml:"shell"`
}

// rawSpec mirrors the .spec.toml file. Top-level keys are the legacy format;
// the [tests] section takes priority where both are present.
type rawSpec struct {
	ProjectName string   `toml:"project_name"`
	Languages   []string `toml:"languages"`
	TestRoot    string   `toml:"test_root"`
	ModuleRoot  string   `toml:"module_root"`
	// features_root is the historical name for module_root
	FeaturesRoot string   `toml:"features_root"`
	Exclude      []string `toml:"exclude"`

	Tests  rawTests `toml:"tests"`
	Rust   *rawLang `toml:"rust"`
	Python *rawLang `toml:"python"`
	Nodejs *rawLang `toml:"nodejs"`
	Shell  *rawLang `toml:"shell"`
}

// Load reads .spec.toml from the repository root.
//
// Returns (nil, nil) when no .spec.toml exists; callers fall back to Default.
func Load(fs filesystem.FileSystem, repoRoot string) (*Config, error) {
	specPath := filepath.Join(repoRoot, SpecFileName)
	if !fs.Exists(specPath) {
		return nil, nil
	}

	data, err := fs.ReadFile(specPath)
	if err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", SpecFileName, err)
	}

	var raw rawSpec
	if err := toml.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("failed to parse %s: %w", SpecFileName, err)
	}

	cfg := &Config{
		ProjectName: raw.ProjectName,
		Languages:   raw.Languages,
		TestRoot:    firstNonEmpty(raw.Tests.TestRoot, raw.TestRoot),
		ModuleRoot:  firstNonEmpty(raw.ModuleRoot, raw.FeaturesRoot),
		SourcePath:  specPath,
	}

	if len(raw.Tests.Exclude) > 0 {
		cfg.Exclude = raw.Tests.Exclude
	} else {
		cfg.Exclude = raw.Exclude
	}

	cfg.Rust = mergeLang(raw.Tests.Rust, raw.Rust)
	cfg.Python = mergeLang(raw.Tests.Python, raw.Python)
	cfg.Nodejs = mergeLang(raw.Tests.Nodejs, raw.Nodejs)
	cfg.Shell = mergeLang(raw.Tests.Shell, raw.Shell)

	cfg.ApplyDefaults()

	return cfg, nil
}

// mergeLang picks the [tests.<lang>] section over the legacy [<lang>] section.
func mergeLang(preferred, legacy *rawLang) LanguageConfig {
	section := preferred
	if section == nil {
		section = legacy
	}
	if section == nil {
		return LanguageConfig{}
	}

	return LanguageConfig{
		ModulePatterns: section.ModulePatterns,
		Exclusions:     section.Exclusions,
		RunnerCmd:      section.RunnerCmd,
		Timeout:        section.Timeout,
	}
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}
	return ""
}
