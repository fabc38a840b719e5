package report

import (
	"bytes"
	"fmt"
	"strings"
	"text/template"

	"github.com/Masterminds/sprig/v3"

	"github.com/snekfx/testgo/internal/models"
)

// violationsTemplate renders the sectioned violation report. Section bodies
// are pre-formatted lines; the template owns the frame (header, separators,
// summary block).
const violationsTemplate = `📋 Test Organization Violations Report ({{ .Total }} total)
{{ repeat 80 "=" }}

{{ range .Sections }}{{ .Heading }}
{{ repeat 80 "-" }}
{{ range .Lines }}{{ . }}
{{ end }}
{{ end }}VIOLATION SUMMARY & FIXES

Total Violations: {{ .Total }}
• Naming issues: {{ .Counts.Naming }}
• Missing sanity tests: {{ .Counts.MissingSanity }}
• Missing UAT tests: {{ .Counts.MissingUAT }}
• Missing category entries: {{ .Counts.MissingCategoryEntries }}
• Unauthorized root files: {{ .Counts.UnauthorizedRoot }}
• Invalid directories: {{ .Counts.InvalidDirectories }}
• Missing hub integration tests: {{ .Counts.MissingHubIntegration }}

QUICK FIXES:
• Run 'testgo lint --violations' for detailed analysis
• Use 'testgo --override' for emergency bypass
• Follow naming pattern: <category>_<module>.{{ .Ext }}
• Create missing sanity tests for all modules`

type section struct {
	Heading string
	Lines   []string
}

type counts struct {
	Naming                 int
	MissingSanity          int
	MissingUAT             int
	MissingCategoryEntries int
	UnauthorizedRoot       int
	InvalidDirectories     int
	MissingHubIntegration  int
}

type reportData struct {
	Total    int
	Ext      string
	Sections []section
	Counts   counts
}

// Summary returns per-bucket violation counts plus the total.
func Summary(v *models.Violations) map[string]int {
	return map[string]int{
		"naming":                   len(v.Naming),
		"missing_sanity":           len(v.MissingSanity),
		"missing_uat":              len(v.MissingUAT),
		"missing_category_entries": len(v.MissingCategoryEntries),
		"unauthorized_root":        len(v.UnauthorizedRoot),
		"invalid_directories":      len(v.InvalidDirectories),
		"missing_hub_integration":  len(v.MissingHubIntegration),
		"total":                    v.Total(),
	}
}

// FormatViolations renders the full violation report with one section per
// non-empty bucket and a trailing summary block.
func FormatViolations(v *models.Violations, lang models.Language) (string, error) {
	ext := lang.SourceExt()

	data := reportData{
		Total: v.Total(),
		Ext:   ext,
		Counts: counts{
			Naming:                 len(v.Naming),
			MissingSanity:          len(v.MissingSanity),
			MissingUAT:             len(v.MissingUAT),
			MissingCategoryEntries: len(v.MissingCategoryEntries),
			UnauthorizedRoot:       len(v.UnauthorizedRoot),
			InvalidDirectories:     len(v.InvalidDirectories),
			MissingHubIntegration:  len(v.MissingHubIntegration),
		},
	}

	if len(v.Naming) > 0 {
		lines := []string{
			"Issue: Test wrapper files don't follow naming pattern",
			fmt.Sprintf("Required: <category>_<module>.%s (e.g., sanity_com.%s, uat_math.%s)", ext, ext, ext),
			"Valid categories: " + strings.Join(models.Categories, ", "),
			"",
		}
		lines = append(lines, numbered(v.Naming)...)
		lines = append(lines, "",
			fmt.Sprintf("Fix: Rename files to match pattern (e.g., com_sanity.%s → sanity_com.%s)", ext, ext))
		data.Sections = append(data.Sections, section{
			Heading: fmt.Sprintf("🏷️  NAMING VIOLATIONS (%d files)", len(v.Naming)),
			Lines:   lines,
		})
	}

	if len(v.MissingSanity) > 0 {
		lines := []string{
			"Issue: Modules without required sanity tests",
			"Required: Every module must have sanity tests for core functionality",
			"",
		}
		for i, module := range v.MissingSanity {
			lines = append(lines, fmt.Sprintf("  %3d. Module '%s' (create: tests/sanity_%s.%s)", i+1, module, module, ext))
		}
		lines = append(lines, "", "Fix: Create sanity test files for each module")
		data.Sections = append(data.Sections, section{
			Heading: fmt.Sprintf("🚨 MISSING SANITY TESTS (%d modules)", len(v.MissingSanity)),
			Lines:   lines,
		})
	}

	if len(v.MissingUAT) > 0 {
		lines := []string{
			"Issue: Modules without required visual UAT/ceremony tests",
			"Required: Every module must have UAT tests for visual demonstrations",
			"",
		}
		for i, module := range v.MissingUAT {
			lines = append(lines, fmt.Sprintf("  %3d. Module '%s' (create: tests/uat_%s.%s)", i+1, module, module, ext))
		}
		lines = append(lines, "", "Fix: Create UAT test files with visual demonstrations for each module")
		data.Sections = append(data.Sections, section{
			Heading: fmt.Sprintf("🎭 MISSING UAT TESTS (%d modules)", len(v.MissingUAT)),
			Lines:   lines,
		})
	}

	if len(v.MissingCategoryEntries) > 0 {
		lines := []string{
			"Issue: Missing category-level test orchestrators",
			fmt.Sprintf("Required: Each category needs an entry file (e.g., smoke.%s, unit.%s)", ext, ext),
			"",
		}
		for i, category := range v.MissingCategoryEntries {
			lines = append(lines, fmt.Sprintf("  %3d. Category '%s' (create: tests/%s.%s)", i+1, category, category, ext))
		}
		lines = append(lines, "", "Fix: Create category entry files for cross-module integration tests")
		data.Sections = append(data.Sections, section{
			Heading: fmt.Sprintf("📋 MISSING CATEGORY ENTRY FILES (%d categories)", len(v.MissingCategoryEntries)),
			Lines:   lines,
		})
	}

	if len(v.UnauthorizedRoot) > 0 {
		lines := []string{
			"Issue: Files in tests/ root that don't follow organization rules",
			fmt.Sprintf("Allowed: <category>.%s or <category>_<module>.%s only", ext, ext),
			"",
		}
		lines = append(lines, numbered(v.UnauthorizedRoot)...)
		lines = append(lines, "",
			"Fix: Rename to pattern, move to tests/_adhoc/, or move to tests/_archive/")
		data.Sections = append(data.Sections, section{
			Heading: fmt.Sprintf("🚫 UNAUTHORIZED ROOT FILES (%d files)", len(v.UnauthorizedRoot)),
			Lines:   lines,
		})
	}

	if len(v.InvalidDirectories) > 0 {
		lines := []string{
			"Issue: Test directories don't match approved organization",
			"Valid: " + strings.Join(models.Categories, "/, ") + "/, sh/, _archive/, _adhoc/",
			"",
		}
		lines = append(lines, numbered(v.InvalidDirectories)...)
		lines = append(lines, "",
			"Fix: Move tests to approved category directories or rename to _archive/")
		data.Sections = append(data.Sections, section{
			Heading: fmt.Sprintf("📁 INVALID DIRECTORIES (%d directories)", len(v.InvalidDirectories)),
			Lines:   lines,
		})
	}

	if len(v.MissingHubIntegration) > 0 {
		lines := []string{
			"Issue: Hub packages missing integration tests",
			fmt.Sprintf("Pattern: tests/integration/hub_<package>.%s", ext),
			"Purpose: Lightweight sanity check that hub package is accessible",
			"",
		}
		for i, pkg := range v.MissingHubIntegration {
			lines = append(lines, fmt.Sprintf("  %3d. %s", i+1, pkg))
			lines = append(lines, fmt.Sprintf("       Expected: tests/integration/hub_%s.%s", pkg, ext))
		}
		lines = append(lines, "",
			"Fix: Create hub integration tests for each package:",
			"  // tests/integration/hub_chrono.rs",
			"  #[test]",
			"  fn hub_chrono_available() {",
			"      use myproject::deps::chrono::Utc;",
			"      let now = Utc::now();",
			"      assert!(now.timestamp() > 0);",
			"  }")
		data.Sections = append(data.Sections, section{
			Heading: fmt.Sprintf("🔌 MISSING HUB INTEGRATION TESTS (%d packages)", len(v.MissingHubIntegration)),
			Lines:   lines,
		})
	}

	return render("violations", violationsTemplate, data)
}

// FormatResult renders the test-result body shown after a run.
func FormatResult(r models.TestResult) string {
	var b strings.Builder

	if r.Success() {
		b.WriteString("Tests passed!\n\n")
	} else {
		b.WriteString("Tests failed!\n\n")
	}

	fmt.Fprintf(&b, "Passed: %d\n", r.Passed)
	fmt.Fprintf(&b, "Failed: %d\n", r.Failed)
	fmt.Fprintf(&b, "Ignored: %d\n", r.Ignored)
	fmt.Fprintf(&b, "Duration: %.2fs", r.Duration)

	if !r.Success() {
		fmt.Fprintf(&b, "\n\nExit code: %d", r.ExitCode)
	}

	return b.String()
}

func numbered(items []string) []string {
	lines := make([]string, 0, len(items))
	for i, item := range items {
		lines = append(lines, fmt.Sprintf("  %3d. %s", i+1, item))
	}
	return lines
}

func render(name, tmplStr string, data any) (string, error) {
	tmpl, err := template.New(name).Funcs(sprig.TxtFuncMap()).Parse(tmplStr)
	if err != nil {
		return "", fmt.Errorf("failed to parse %s template: %w", name, err)
	}

	var buf bytes.Buffer
	if err := tmpl.Execute(&buf, data); err != nil {
		return "", fmt.Errorf("failed to render %s template: %w", name, err)
	}

	return buf.String(), nil
}
