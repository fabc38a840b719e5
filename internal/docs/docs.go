package docs

import (
	"bytes"
	"fmt"
	"path/filepath"
	"sort"
	"strings"

	"github.com/adrg/frontmatter"

	"github.com/snekfx/testgo/internal/filesystem"
)

// DefaultDir is the feature-documentation directory relative to the
// repository root.
const DefaultDir = "docs/feats"

// Doc is a feature document: markdown with frontmatter metadata.
type Doc struct {
	Name        string
	Title       string `yaml:"title"`
	Module      string `yaml:"module"`
	Description string `yaml:"description"`
	Body        string
}

// Store reads feature documentation from a repository.
type Store struct {
	fs  filesystem.FileSystem
	dir string
}

// NewStore creates a Store over the docs directory of a repository root.
func NewStore(fs filesystem.FileSystem, repoRoot string) *Store {
	return &Store{fs: fs, dir: filepath.Join(repoRoot, DefaultDir)}
}

// List returns all feature docs sorted by name. A missing docs directory
// yields an empty list.
func (s *Store) List() ([]Doc, error) {
	matches, err := s.fs.Glob(filepath.Join(s.dir, "*.md"))
	if err != nil {
		return nil, nil
	}

	var docs []Doc
	for _, path := range matches {
		doc, err := s.load(path)
		if err != nil {
			return nil, err
		}
		docs = append(docs, doc)
	}

	sort.Slice(docs, func(i, j int) bool {
		return docs[i].Name < docs[j].Name
	})

	return docs, nil
}

// Get returns the feature doc with the given name.
func (s *Store) Get(name string) (Doc, error) {
	path := filepath.Join(s.dir, name+".md")
	if !s.fs.Exists(path) {
		return Doc{}, fmt.Errorf("no documentation for feature %q", name)
	}
	return s.load(path)
}

func (s *Store) load(path string) (Doc, error) {
	data, err := s.fs.ReadFile(path)
	if err != nil {
		return Doc{}, fmt.Errorf("failed to read doc %s: %w", path, err)
	}

	var doc Doc
	rest, err := frontmatter.Parse(bytes.NewReader(data), &doc)
	if err != nil {
		return Doc{}, fmt.Errorf("failed to parse frontmatter in %s: %w", path, err)
	}

	base := filepath.Base(path)
	doc.Name = strings.TrimSuffix(base, filepath.Ext(base))
	doc.Body = strings.TrimSpace(string(rest))

	if doc.Title == "" {
		doc.Title = doc.Name
	}

	return doc, nil
}
