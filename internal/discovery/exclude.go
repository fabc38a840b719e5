package discovery

import "strings"

// Excluded reports whether a module name matches any exclusion pattern.
//
// Three pattern shapes are supported: trailing-wildcard prefix match
// ("prefix*"), leading-wildcard suffix match ("*suffix"), and exact match.
// The literal name "dev" is exempt from the exact pattern "dev_*"; no other
// pattern carries an exemption.
func Excluded(name string, patterns []string) bool {
	for _, pattern := range patterns {
		switch {
		case strings.HasSuffix(pattern, "*"):
			prefix := strings.TrimSuffix(pattern, "*")
			if strings.HasPrefix(name, prefix) {
				if pattern == "dev_*" && name == "dev" {
					continue
				}
				return true
			}
		case strings.HasPrefix(pattern, "*"):
			if strings.HasSuffix(name, strings.TrimPrefix(pattern, "*")) {
				return true
			}
		case pattern == name:
			return true
		}
	}
	return false
}

// skipStem reports whether a test-file stem is suppressed from discovery.
// Underscore and dev_ prefixes mark scratch files in any layout.
func skipStem(stem string) bool {
	return strings.HasPrefix(stem, "_") || strings.HasPrefix(stem, "dev_")
}
