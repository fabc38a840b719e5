package models

// Categories lists the nine fixed test categories.
//
// Category entry files and per-module test names are both derived from this
// enumeration; the set is fixed and not configurable.
var Categories = []string{
	"sanity",
	"smoke",
	"unit",
	"integration",
	"e2e",
	"uat",
	"chaos",
	"bench",
	"regression",
}

// IsCategory reports whether name is one of the nine test categories.
func IsCategory(name string) bool {
	for _, c := range Categories {
		if c == name {
			return true
		}
	}
	return false
}
