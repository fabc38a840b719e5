package validate

import (
	"path/filepath"
	"strings"

	"github.com/snekfx/testgo/internal/config"
	"github.com/snekfx/testgo/internal/discovery"
	"github.com/snekfx/testgo/internal/filesystem"
	"github.com/snekfx/testgo/internal/models"
)

// bucketDirs are the escape-hatch directory names allowed in the test root
// besides the nine categories.
var bucketDirs = []string{"sh", "_archive", "_adhoc"}

// Validator checks test organization against the convention.
type Validator struct {
	fs  filesystem.FileSystem
	cfg *config.Config

	// CachePath locates the dependency cache consulted by the hub
	// integration check. Empty disables the check. Defaults to the blade
	// cache under the user home; override for tests or alternate layouts.
	CachePath string
}

// New creates a Validator with the default dependency-cache location.
func New(fs filesystem.FileSystem, cfg *config.Config) *Validator {
	v := &Validator{fs: fs, cfg: cfg}
	if home, err := fs.UserHomeDir(); err == nil {
		v.CachePath = filepath.Join(home, ".local", "data", "snek", "blade", "deps_cache.tsv")
	}
	return v
}

// Validate runs all organization checks for a language and returns the
// categorized violations. It is a pure function of the filesystem state at
// call time; every pass recomputes from scratch.
func (v *Validator) Validate(repoRoot string, lang models.Language) *models.Violations {
	violations := &models.Violations{}

	d := discovery.New(v.fs, v.cfg)
	modules := d.Modules(repoRoot, lang)
	tests := d.Tests(repoRoot, lang)

	testDir := filepath.Join(repoRoot, v.cfg.TestRoot)
	ext := lang.SourceExt()

	v.checkNaming(violations, repoRoot, testDir, ext)
	v.checkModuleCoverage(violations, modules, tests)
	v.checkCategoryEntries(violations, tests, testDir)
	v.checkUnauthorizedRoot(violations, repoRoot, testDir, ext)
	v.checkDirectories(violations, repoRoot, testDir)

	violations.MissingHubIntegration = v.missingHubIntegration(repoRoot, lang)

	return violations
}

// checkNaming flags flat test-root files that are neither a category entry
// nor a valid <category>_<module> name.
func (v *Validator) checkNaming(violations *models.Violations, repoRoot, testDir, ext string) {
	for _, path := range v.rootFiles(testDir, ext) {
		stem := fileStem(path)
		if skip(stem) || models.IsCategory(stem) {
			continue
		}

		if _, _, ok := discovery.SplitTestName(stem); !ok {
			violations.Naming = append(violations.Naming, relPath(repoRoot, path))
		}
	}
}

// checkModuleCoverage requires a sanity and a UAT test per discovered module,
// across all three physical layouts.
func (v *Validator) checkModuleCoverage(violations *models.Violations, modules []models.Module, tests []models.TestFile) {
	for _, module := range modules {
		if !hasTest(tests, "sanity", module.Name) {
			violations.MissingSanity = append(violations.MissingSanity, module.Name)
		}
	}

	for _, module := range modules {
		if !hasTest(tests, "uat", module.Name) {
			violations.MissingUAT = append(violations.MissingUAT, module.Name)
		}
	}
}

// checkCategoryEntries requires an entry file per category; a <category>.sh
// script in the test root satisfies the requirement too.
func (v *Validator) checkCategoryEntries(violations *models.Violations, tests []models.TestFile, testDir string) {
	found := make(map[string]bool)
	for _, t := range tests {
		if t.IsCategoryEntry {
			found[t.Category] = true
		}
	}

	for _, category := range models.Categories {
		if found[category] {
			continue
		}
		if v.fs.Exists(filepath.Join(testDir, category+".sh")) {
			continue
		}
		violations.MissingCategoryEntries = append(violations.MissingCategoryEntries, category)
	}
}

// checkUnauthorizedRoot flags any flat test-root file (test extension or
// shell script) outside the allowed patterns. Superset of the naming check.
func (v *Validator) checkUnauthorizedRoot(violations *models.Violations, repoRoot, testDir, ext string) {
	paths := v.rootFiles(testDir, ext)
	if ext != "sh" {
		paths = append(paths, v.rootFiles(testDir, "sh")...)
	}

	for _, path := range paths {
		stem := fileStem(path)
		if skip(stem) || models.IsCategory(stem) {
			continue
		}

		if _, _, ok := discovery.SplitTestName(stem); !ok {
			violations.UnauthorizedRoot = append(violations.UnauthorizedRoot, relPath(repoRoot, path))
		}
	}
}

// checkDirectories flags test-root subdirectories that are neither a
// category nor one of the escape-hatch buckets.
func (v *Validator) checkDirectories(violations *models.Violations, repoRoot, testDir string) {
	entries, err := v.fs.ReadDir(testDir)
	if err != nil {
		return
	}

	for _, entry := range entries {
		if !entry.IsDir() {
			continue
		}

		name := entry.Name()
		if models.IsCategory(name) || isBucketDir(name) {
			continue
		}

		violations.InvalidDirectories = append(violations.InvalidDirectories,
			relPath(repoRoot, filepath.Join(testDir, name)))
	}
}

func (v *Validator) rootFiles(testDir, ext string) []string {
	matches, err := v.fs.Glob(filepath.Join(testDir, "*."+ext))
	if err != nil {
		return nil
	}
	return matches
}

func hasTest(tests []models.TestFile, category, module string) bool {
	for _, t := range tests {
		if t.Category == category && t.Module == module {
			return true
		}
	}
	return false
}

func isBucketDir(name string) bool {
	for _, b := range bucketDirs {
		if b == name {
			return true
		}
	}
	return false
}

func skip(stem string) bool {
	return strings.HasPrefix(stem, "_") || strings.HasPrefix(stem, "dev_")
}

func relPath(repoRoot, path string) string {
	rel, err := filepath.Rel(repoRoot, path)
	if err != nil {
		return path
	}
	return filepath.ToSlash(rel)
}

func fileStem(path string) string {
	base := filepath.Base(path)
	return strings.TrimSuffix(base, filepath.Ext(base))
}
