package models

// Violations holds categorized test organization violations.
//
// Each list is independent and append-only within a single validation pass;
// every pass recomputes from scratch.
type Violations struct {
	// Naming: test-root files that don't follow <category>_<module> naming
	Naming []string

	// MissingSanity: modules without sanity tests
	MissingSanity []string

	// MissingUAT: modules without UAT tests
	MissingUAT []string

	// MissingCategoryEntries: categories without an entry file
	MissingCategoryEntries []string

	// UnauthorizedRoot: test-root files outside the allowed patterns
	UnauthorizedRoot []string

	// InvalidDirectories: test-root subdirectories that aren't a category or bucket
	InvalidDirectories []string

	// MissingHubIntegration: hub packages without integration tests
	MissingHubIntegration []string
}

// Total returns the total violation count.
func (v *Violations) Total() int {
	return len(v.Naming) +
		len(v.MissingSanity) +
		len(v.MissingUAT) +
		len(v.MissingCategoryEntries) +
		len(v.UnauthorizedRoot) +
		len(v.InvalidDirectories) +
		len(v.MissingHubIntegration)
}

// IsValid reports whether there are no violations.
func (v *Violations) IsValid() bool {
	return v.Total() == 0
}
