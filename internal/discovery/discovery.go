package discovery

import (
	"path/filepath"
	"sort"
	"strings"

	"github.com/snekfx/testgo/internal/config"
	"github.com/snekfx/testgo/internal/filesystem"
	"github.com/snekfx/testgo/internal/models"
)

// Discoverer maps the repository file tree onto modules and test files.
//
// Discovery is tolerant of partially-initialized repositories: a missing
// module root or test root yields empty results, never an error.
type Discoverer struct {
	fs  filesystem.FileSystem
	cfg *config.Config
}

// New creates a Discoverer for the given configuration.
func New(fs filesystem.FileSystem, cfg *config.Config) *Discoverer {
	return &Discoverer{fs: fs, cfg: cfg}
}

// Modules discovers source modules for a language.
//
// Module patterns apply in priority order: the first pattern is the primary
// convention (a per-directory entry file such as mod.rs), later patterns are
// legacy flat conventions. When two tiers yield the same name, the earlier
// tier wins and the later duplicate is suppressed. The result is sorted by
// name.
func (d *Discoverer) Modules(repoRoot string, lang models.Language) []models.Module {
	moduleDir := filepath.Join(repoRoot, d.cfg.ModuleRoot)
	if !d.fs.Exists(moduleDir) {
		return nil
	}

	lc := d.cfg.Lang(lang)
	exclusions := append(append([]string{}, lc.Exclusions...), d.cfg.Exclude...)

	var modules []models.Module
	seen := make(map[string]bool)

	for _, pattern := range lc.ModulePatterns {
		matches, err := d.fs.Glob(filepath.Join(moduleDir, filepath.FromSlash(pattern)))
		if err != nil {
			continue
		}

		// A pattern whose basename is a fixed entry file (mod.rs,
		// __init__.py, ...) names modules by directory; otherwise the file
		// stem is the module name.
		entryStyle := !strings.Contains(filepath.Base(pattern), "*")

		for _, match := range matches {
			var name string
			if entryStyle {
				name = filepath.Base(filepath.Dir(match))
			} else {
				name = fileStem(match)
			}

			// lib.rs and main.rs are crate roots, never modules
			if !entryStyle && lang == models.LanguageRust && (name == "lib" || name == "main") {
				continue
			}

			if Excluded(name, exclusions) {
				continue
			}
			if seen[name] {
				continue
			}
			seen[name] = true

			modules = append(modules, models.Module{
				Name:     name,
				Path:     match,
				Language: lang,
				Public:   d.publicSignal(lang, match),
			})
		}
	}

	sort.Slice(modules, func(i, j int) bool {
		return modules[i].Name < modules[j].Name
	})

	return modules
}

// Tests discovers test files for a language.
//
// Three physical layouts map onto the same logical test:
//  1. flat wrapper:  tests/<category>_<module>.<ext>
//  2. category entry: tests/<category>.<ext>
//  3. directory style: tests/<category>/<module>.<ext>, where the stem may
//     also carry a redundant <category>_ prefix
//
// The result is sorted by (category, module).
func (d *Discoverer) Tests(repoRoot string, lang models.Language) []models.TestFile {
	testDir := filepath.Join(repoRoot, d.cfg.TestRoot)
	if !d.fs.Exists(testDir) {
		return nil
	}

	ext := lang.SourceExt()

	var tests []models.TestFile

	matches, _ := d.fs.Glob(filepath.Join(testDir, "*."+ext))
	for _, match := range matches {
		stem := fileStem(match)
		if skipStem(stem) {
			continue
		}

		if models.IsCategory(stem) {
			tests = append(tests, models.TestFile{
				Path:            match,
				Language:        lang,
				Category:        stem,
				IsCategoryEntry: true,
			})
			continue
		}

		category, module, ok := SplitTestName(stem)
		if !ok {
			continue
		}
		tests = append(tests, models.TestFile{
			Path:     match,
			Language: lang,
			Category: category,
			Module:   module,
		})
	}

	for _, category := range models.Categories {
		matches, _ := d.fs.Glob(filepath.Join(testDir, category, "*."+ext))
		for _, match := range matches {
			stem := fileStem(match)
			if skipStem(stem) {
				continue
			}

			// Category comes from the directory; a redundant prefix on the
			// stem is stripped, a bare stem is the module name as-is.
			module := strings.TrimPrefix(stem, category+"_")

			tests = append(tests, models.TestFile{
				Path:     match,
				Language: lang,
				Category: category,
				Module:   module,
			})
		}
	}

	sort.Slice(tests, func(i, j int) bool {
		if tests[i].Category != tests[j].Category {
			return tests[i].Category < tests[j].Category
		}
		return tests[i].Module < tests[j].Module
	})

	return tests
}

// SplitTestName splits a flat test stem into (category, module). The stem
// splits on the first underscore only; ok is false when the stem doesn't
// split or the first part isn't a recognized category.
func SplitTestName(stem string) (category, module string, ok bool) {
	parts := strings.SplitN(stem, "_", 2)
	if len(parts) != 2 {
		return "", "", false
	}
	if !models.IsCategory(parts[0]) {
		return "", "", false
	}
	return parts[0], parts[1], true
}

// publicSignal is the visibility heuristic: a substring scan for a
// public-export signal. Read failures default to public (fail open).
func (d *Discoverer) publicSignal(lang models.Language, path string) bool {
	data, err := d.fs.ReadFile(path)
	if err != nil {
		return true
	}
	content := string(data)

	switch lang {
	case models.LanguageRust:
		return strings.Contains(content, "pub ") || strings.Contains(content, "pub(")
	case models.LanguagePython:
		return strings.Contains(content, "__all__") ||
			strings.Contains(content, "def ") ||
			strings.Contains(content, "class ")
	case models.LanguageNodejs:
		return strings.Contains(content, "export") || strings.Contains(content, "module.exports")
	default:
		return true
	}
}

func fileStem(path string) string {
	base := filepath.Base(path)
	return strings.TrimSuffix(base, filepath.Ext(base))
}
