package docs

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/snekfx/testgo/internal/filesystem"
)

const discoveryDoc = `---
title: Module Discovery
module: discovery
description: How modules are found
---

# Discovery

Modules are discovered from the module root.
`

func TestStoreList(t *testing.T) {
	fs := filesystem.NewMockFileSystem()
	fs.AddFile("/repo/docs/feats/discovery.md", []byte(discoveryDoc))
	fs.AddFile("/repo/docs/feats/categories.md", []byte("---\ntitle: Categories\n---\nNine fixed categories.\n"))

	store := NewStore(fs, "/repo")
	docs, err := store.List()
	require.NoError(t, err)

	require.Len(t, docs, 2)
	require.Equal(t, "categories", docs[0].Name)
	require.Equal(t, "discovery", docs[1].Name)
	require.Equal(t, "Module Discovery", docs[1].Title)
	require.Equal(t, "How modules are found", docs[1].Description)
	require.Contains(t, docs[1].Body, "# Discovery")
}

func TestStoreListEmpty(t *testing.T) {
	fs := filesystem.NewMockFileSystem()
	fs.AddDir("/repo")

	store := NewStore(fs, "/repo")
	docs, err := store.List()
	require.NoError(t, err)
	require.Empty(t, docs)
}

func TestStoreGet(t *testing.T) {
	fs := filesystem.NewMockFileSystem()
	fs.AddFile("/repo/docs/feats/discovery.md", []byte(discoveryDoc))

	store := NewStore(fs, "/repo")
	doc, err := store.Get("discovery")
	require.NoError(t, err)
	require.Equal(t, "discovery", doc.Name)
	require.Equal(t, "discovery", doc.Module)
}

func TestStoreGetMissing(t *testing.T) {
	fs := filesystem.NewMockFileSystem()
	fs.AddDir("/repo")

	store := NewStore(fs, "/repo")
	_, err := store.Get("nope")
	require.Error(t, err)
	require.Contains(t, err.Error(), "no documentation for feature")
}

func TestStoreTitleFallsBackToName(t *testing.T) {
	fs := filesystem.NewMockFileSystem()
	fs.AddFile("/repo/docs/feats/runner.md", []byte("Plain body, no frontmatter.\n"))

	store := NewStore(fs, "/repo")
	doc, err := store.Get("runner")
	require.NoError(t, err)
	require.Equal(t, "runner", doc.Title)
}
