package validate

import (
	"path/filepath"
	"sort"
	"strings"

	"github.com/snekfx/testgo/internal/models"
)

// hubMarkerFile signals that the repository re-exports third-party
// dependencies through a centralizing hub module.
const hubMarkerFile = "deps.rs"

// missingHubIntegration returns hub packages without an integration test.
//
// The check is best-effort: it applies only when the repository carries the
// hub marker file, and any failure to read or parse the dependency cache
// degrades to an empty result. It must never be fatal.
func (v *Validator) missingHubIntegration(repoRoot string, lang models.Language) []string {
	if !v.fs.Exists(filepath.Join(repoRoot, v.cfg.ModuleRoot, hubMarkerFile)) {
		return nil
	}

	packages := v.hubPackages()
	if len(packages) == 0 {
		return nil
	}

	integrationDir := filepath.Join(repoRoot, v.cfg.TestRoot, "integration")

	var missing []string
	for _, pkg := range packages {
		testFile := filepath.Join(integrationDir, "hub_"+pkg+"."+lang.SourceExt())
		if !v.fs.Exists(testFile) {
			missing = append(missing, pkg)
		}
	}

	return missing
}

// hubPackages reads the reexported package names from the dependency cache.
//
// The cache is a tab-separated file sorted by id prefix. The scan is a
// two-phase fold: first locate the hub boundary record (second field "hub",
// line mentioning Cargo.toml), then accumulate field 3 of every row whose id
// shares the boundary prefix, stopping at the first row that breaks it.
func (v *Validator) hubPackages() []string {
	if v.CachePath == "" {
		return nil
	}

	data, err := v.fs.ReadFile(v.CachePath)
	if err != nil {
		return nil
	}

	lines := strings.Split(string(data), "\n")

	// Phase 1: find the hub boundary record.
	boundaryID := ""
	start := 0
	for i, line := range lines {
		fields := strings.Split(strings.TrimSpace(line), "\t")
		if len(fields) < 2 {
			continue
		}
		if fields[1] == "hub" && strings.Contains(line, "Cargo.toml") {
			boundaryID = fields[0]
			start = i + 1
			break
		}
	}
	if boundaryID == "" {
		return nil
	}

	// Phase 2: accumulate until the id prefix breaks.
	var packages []string
	for _, line := range lines[start:] {
		fields := strings.Split(strings.TrimSpace(line), "\t")
		if len(fields) < 2 {
			continue
		}
		if !strings.HasPrefix(fields[0], boundaryID) {
			break
		}
		if len(fields) >= 3 && fields[0] != boundaryID {
			packages = append(packages, fields[2])
		}
	}

	return sortedUnique(packages)
}

func sortedUnique(values []string) []string {
	seen := make(map[string]bool, len(values))
	var result []string
	for _, v := range values {
		if seen[v] {
			continue
		}
		seen[v] = true
		result = append(result, v)
	}
	sort.Strings(result)
	return result
}
