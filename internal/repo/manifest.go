package repo

import (
	"encoding/json"
	"path/filepath"

	"github.com/BurntSushi/toml"
	"github.com/snekfx/testgo/internal/filesystem"
)

// ProjectName reads the project name from manifest files, trying Cargo.toml,
// pyproject.toml, then package.json. Returns "" when none declares a name.
func ProjectName(fs filesystem.FileSystem, repoRoot string) string {
	if name := cargoName(fs, filepath.Join(repoRoot, "Cargo.toml")); name != "" {
		return name
	}
	if name := pyprojectName(fs, filepath.Join(repoRoot, "pyproject.toml")); name != "" {
		return name
	}
	return packageJSONName(fs, filepath.Join(repoRoot, "package.json"))
}

func cargoName(fs filesystem.FileSystem, path string) string {
	data, err := fs.ReadFile(path)
	if err != nil {
		return ""
	}

	var manifest struct {
		Package struct {
			Name string `toml:"name"`
		} `toml:"package"`
	}
	if err := toml.Unmarshal(data, &manifest); err != nil {
		return ""
	}
	return manifest.Package.Name
}

func pyprojectName(fs filesystem.FileSystem, path string) string {
	data, err := fs.ReadFile(path)
	if err != nil {
		return ""
	}

	var manifest struct {
		Project struct {
			Name string `toml:"name"`
		} `toml:"project"`
	}
	if err := toml.Unmarshal(data, &manifest); err != nil {
		return ""
	}
	return manifest.Project.Name
}

func packageJSONName(fs filesystem.FileSystem, path string) string {
	data, err := fs.ReadFile(path)
	if err != nil {
		return ""
	}

	var manifest struct {
		Name string `json:"name"`
	}
	if err := json.Unmarshal(data, &manifest); err != nil {
		return ""
	}
	return manifest.Name
}
