package repo

import (
	"bytes"
	"io/fs"
	"path/filepath"
	"strings"

	gitignore "github.com/denormal/go-gitignore"
	"github.com/snekfx/testgo/internal/filesystem"
	"github.com/snekfx/testgo/internal/models"
)

// PrimaryLanguage detects the primary language by counting source files.
//
// Files matched by the root .gitignore are not counted, so vendored or
// generated trees don't skew the detection. Ties resolve to the earlier
// language in the configured list.
func PrimaryLanguage(filesys filesystem.FileSystem, repoRoot string, languages []string) models.Language {
	if len(languages) == 0 {
		return models.LanguageRust
	}
	if len(languages) == 1 {
		return models.Language(languages[0])
	}

	counts := countSourceFiles(filesys, repoRoot, languages)

	best := models.Language(languages[0])
	bestCount := -1
	for _, lang := range languages {
		l := models.Language(lang)
		if counts[l] > bestCount {
			best = l
			bestCount = counts[l]
		}
	}
	return best
}

func countSourceFiles(filesys filesystem.FileSystem, repoRoot string, languages []string) map[models.Language]int {
	// nodejs counts .ts alongside .js
	extLangs := make(map[string]models.Language)
	for _, lang := range languages {
		l := models.Language(lang)
		extLangs["."+l.SourceExt()] = l
		if l == models.LanguageNodejs {
			extLangs[".ts"] = l
		}
	}

	ignore := loadRootGitIgnore(filesys, repoRoot)

	counts := make(map[models.Language]int)
	_ = filesys.WalkDir(repoRoot, func(path string, entry fs.DirEntry, walkErr error) error {
		if walkErr != nil {
			return nil
		}
		if path == repoRoot {
			return nil
		}

		rel, relErr := filepath.Rel(repoRoot, path)
		if relErr != nil {
			return nil
		}
		rel = filepath.ToSlash(rel)

		if entry.IsDir() && filepath.Base(path) == ".git" {
			return filepath.SkipDir
		}

		if ignore != nil {
			if match := ignore.Relative(rel, entry.IsDir()); match != nil && match.Ignore() {
				if entry.IsDir() {
					return filepath.SkipDir
				}
				return nil
			}
		}

		if entry.IsDir() {
			return nil
		}

		if lang, ok := extLangs[strings.ToLower(filepath.Ext(path))]; ok {
			counts[lang]++
		}
		return nil
	})

	return counts
}

func loadRootGitIgnore(filesys filesystem.FileSystem, repoRoot string) gitignore.GitIgnore {
	ignorePath := filepath.Join(repoRoot, ".gitignore")
	if !filesys.Exists(ignorePath) {
		return nil
	}

	data, err := filesys.ReadFile(ignorePath)
	if err != nil {
		return nil
	}

	return gitignore.New(bytes.NewReader(data), repoRoot, nil)
}
