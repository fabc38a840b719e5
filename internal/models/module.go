package models

// Module represents a discovered unit of source code.
type Module struct {
	// Name is the module identifier, derived from its directory or file stem
	Name string

	// Path is the filesystem location of the defining file
	Path string

	// Language the module belongs to
	Language Language

	// Public is a heuristic: true unless the file content carries no
	// public-export signal. This is a substring scan, not a parse.
	Public bool
}

// TestFile represents a discovered test artifact.
type TestFile struct {
	// Path is the test file location
	Path string

	// Language the test belongs to
	Language Language

	// Category is one of the nine categories, or empty if unparsed
	Category string

	// Module is the module name the test targets, or empty for category entries
	Module string

	// IsCategoryEntry marks whole-category orchestrator files (stem == category)
	IsCategoryEntry bool
}
