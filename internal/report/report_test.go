package report

import (
	"strings"
	"testing"

	"github.com/gkampitakis/go-snaps/snaps"
	"github.com/stretchr/testify/require"

	"github.com/snekfx/testgo/internal/models"
)

func sampleViolations() *models.Violations {
	return &models.Violations{
		Naming:                 []string{"tests/math_sanity.rs", "tests/misc.rs"},
		MissingSanity:          []string{"com"},
		MissingUAT:             []string{"com", "math"},
		MissingCategoryEntries: []string{"chaos", "bench"},
		UnauthorizedRoot:       []string{"tests/run_all.sh"},
		InvalidDirectories:     []string{"tests/helpers"},
		MissingHubIntegration:  []string{"serde"},
	}
}

func TestFormatViolationsSnapshot(t *testing.T) {
	out, err := FormatViolations(sampleViolations(), models.LanguageRust)
	require.NoError(t, err)

	snaps.MatchSnapshot(t, out)
}

func TestFormatViolationsSections(t *testing.T) {
	out, err := FormatViolations(sampleViolations(), models.LanguageRust)
	require.NoError(t, err)

	require.Contains(t, out, "Test Organization Violations Report (10 total)")
	require.Contains(t, out, "NAMING VIOLATIONS (2 files)")
	require.Contains(t, out, "MISSING SANITY TESTS (1 modules)")
	require.Contains(t, out, "MISSING UAT TESTS (2 modules)")
	require.Contains(t, out, "MISSING CATEGORY ENTRY FILES (2 categories)")
	require.Contains(t, out, "UNAUTHORIZED ROOT FILES (1 files)")
	require.Contains(t, out, "INVALID DIRECTORIES (1 directories)")
	require.Contains(t, out, "MISSING HUB INTEGRATION TESTS (1 packages)")

	require.Contains(t, out, "    1. tests/math_sanity.rs")
	require.Contains(t, out, "Module 'com' (create: tests/sanity_com.rs)")
	require.Contains(t, out, "Expected: tests/integration/hub_serde.rs")
	require.Contains(t, out, "Total Violations: 10")
	require.Contains(t, out, strings.Repeat("=", 80))
}

func TestFormatViolationsEmptyBucketsOmitted(t *testing.T) {
	v := &models.Violations{Naming: []string{"tests/misc.rs"}}

	out, err := FormatViolations(v, models.LanguageRust)
	require.NoError(t, err)

	require.Contains(t, out, "NAMING VIOLATIONS (1 files)")
	require.NotContains(t, out, "MISSING UAT TESTS")
	require.NotContains(t, out, "INVALID DIRECTORIES")
	require.Contains(t, out, "• Missing UAT tests: 0")
}

func TestFormatViolationsUsesLanguageExtension(t *testing.T) {
	v := &models.Violations{MissingSanity: []string{"parser"}}

	out, err := FormatViolations(v, models.LanguagePython)
	require.NoError(t, err)

	require.Contains(t, out, "create: tests/sanity_parser.py")
}

func TestSummary(t *testing.T) {
	summary := Summary(sampleViolations())

	require.Equal(t, 2, summary["naming"])
	require.Equal(t, 1, summary["missing_sanity"])
	require.Equal(t, 2, summary["missing_uat"])
	require.Equal(t, 2, summary["missing_category_entries"])
	require.Equal(t, 1, summary["unauthorized_root"])
	require.Equal(t, 1, summary["invalid_directories"])
	require.Equal(t, 1, summary["missing_hub_integration"])
	require.Equal(t, 10, summary["total"])
}

func TestFormatResultPassed(t *testing.T) {
	out := FormatResult(models.TestResult{
		Passed:   12,
		Ignored:  1,
		Total:    13,
		Duration: 3.214,
	})

	require.Contains(t, out, "Tests passed!")
	require.Contains(t, out, "Passed: 12")
	require.Contains(t, out, "Duration: 3.21s")
	require.NotContains(t, out, "Exit code")
}

func TestFormatResultFailed(t *testing.T) {
	out := FormatResult(models.TestResult{
		Passed:   10,
		Failed:   2,
		Total:    12,
		Duration: 1.5,
		ExitCode: 101,
	})

	require.Contains(t, out, "Tests failed!")
	require.Contains(t, out, "Failed: 2")
	require.Contains(t, out, "Exit code: 101")
}
