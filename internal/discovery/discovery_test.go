package discovery

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/snekfx/testgo/internal/config"
	"github.com/snekfx/testgo/internal/filesystem"
	"github.com/snekfx/testgo/internal/models"
)

func testConfig() *config.Config {
	cfg := &config.Config{}
	cfg.ApplyDefaults()
	return cfg
}

func TestModulesEntryAndFlatTiers(t *testing.T) {
	fs := filesystem.NewMockFileSystem()
	fs.AddFile("/repo/src/math/mod.rs", []byte("pub fn add() {}"))
	fs.AddFile("/repo/src/com.rs", []byte("pub fn send() {}"))
	fs.AddFile("/repo/src/lib.rs", []byte("pub mod math;"))
	fs.AddFile("/repo/src/main.rs", []byte("fn main() {}"))
	fs.AddFile("/repo/src/_scratch.rs", []byte(""))
	fs.AddFile("/repo/src/dev_tools.rs", []byte(""))

	d := New(fs, testConfig())
	modules := d.Modules("/repo", models.LanguageRust)

	require.Len(t, modules, 2)
	require.Equal(t, "com", modules[0].Name)
	require.Equal(t, "math", modules[1].Name)
	require.Equal(t, "/repo/src/math/mod.rs", modules[1].Path)
}

func TestModulesEarlierTierWins(t *testing.T) {
	fs := filesystem.NewMockFileSystem()
	fs.AddFile("/repo/src/math/mod.rs", []byte("pub fn add() {}"))
	fs.AddFile("/repo/src/math.rs", []byte("pub mod math;"))

	d := New(fs, testConfig())
	modules := d.Modules("/repo", models.LanguageRust)

	require.Len(t, modules, 1)
	require.Equal(t, "/repo/src/math/mod.rs", modules[0].Path)
}

func TestModulesDevDirectoryNotExcluded(t *testing.T) {
	fs := filesystem.NewMockFileSystem()
	fs.AddFile("/repo/src/dev/mod.rs", []byte("pub fn tools() {}"))
	fs.AddFile("/repo/src/dev_tools/mod.rs", []byte("pub fn tools() {}"))

	d := New(fs, testConfig())
	modules := d.Modules("/repo", models.LanguageRust)

	require.Len(t, modules, 1)
	require.Equal(t, "dev", modules[0].Name)
}

func TestModulesMissingRootIsEmpty(t *testing.T) {
	fs := filesystem.NewMockFileSystem()

	d := New(fs, testConfig())
	require.Empty(t, d.Modules("/repo", models.LanguageRust))
}

func TestModulesVisibilitySignal(t *testing.T) {
	fs := filesystem.NewMockFileSystem()
	fs.AddFile("/repo/src/math/mod.rs", []byte("pub fn add() {}"))
	fs.AddFile("/repo/src/internal_only/mod.rs", []byte("fn helper() {}"))

	d := New(fs, testConfig())
	modules := d.Modules("/repo", models.LanguageRust)

	require.Len(t, modules, 2)
	require.False(t, modules[0].Public, "internal_only should not look public")
	require.True(t, modules[1].Public, "math should look public")
}

func TestModulesIdempotent(t *testing.T) {
	fs := filesystem.NewMockFileSystem()
	fs.AddFile("/repo/src/math/mod.rs", []byte("pub fn add() {}"))
	fs.AddFile("/repo/src/com.rs", []byte("pub fn send() {}"))

	d := New(fs, testConfig())
	first := d.Modules("/repo", models.LanguageRust)
	second := d.Modules("/repo", models.LanguageRust)

	require.Equal(t, first, second)
}

func TestTestsFlatAndCategoryEntry(t *testing.T) {
	fs := filesystem.NewMockFileSystem()
	fs.AddFile("/repo/tests/sanity.rs", []byte(""))
	fs.AddFile("/repo/tests/sanity_math.rs", []byte(""))
	fs.AddFile("/repo/tests/_helper.rs", []byte(""))
	fs.AddFile("/repo/tests/notes.rs", []byte(""))

	d := New(fs, testConfig())
	tests := d.Tests("/repo", models.LanguageRust)

	require.Len(t, tests, 2)

	require.Equal(t, "sanity", tests[0].Category)
	require.Empty(t, tests[0].Module)
	require.True(t, tests[0].IsCategoryEntry)

	require.Equal(t, "sanity", tests[1].Category)
	require.Equal(t, "math", tests[1].Module)
	require.False(t, tests[1].IsCategoryEntry)
}

func TestTestsDirectoryStyle(t *testing.T) {
	fs := filesystem.NewMockFileSystem()
	fs.AddFile("/repo/tests/uat/math.rs", []byte(""))
	fs.AddFile("/repo/tests/uat/uat_com.rs", []byte(""))

	d := New(fs, testConfig())
	tests := d.Tests("/repo", models.LanguageRust)

	require.Len(t, tests, 2)
	require.Equal(t, "com", tests[0].Module)
	require.Equal(t, "math", tests[1].Module)
	for _, tf := range tests {
		require.Equal(t, "uat", tf.Category)
	}
}

func TestTestsModuleNameKeepsUnderscores(t *testing.T) {
	fs := filesystem.NewMockFileSystem()
	fs.AddFile("/repo/tests/e2e_api_client.rs", []byte(""))

	d := New(fs, testConfig())
	tests := d.Tests("/repo", models.LanguageRust)

	require.Len(t, tests, 1)
	require.Equal(t, "e2e", tests[0].Category)
	require.Equal(t, "api_client", tests[0].Module)
}

func TestTestsMissingRootIsEmpty(t *testing.T) {
	fs := filesystem.NewMockFileSystem()

	d := New(fs, testConfig())
	require.Empty(t, d.Tests("/repo", models.LanguageRust))
}

func TestSplitTestName(t *testing.T) {
	tests := []struct {
		stem     string
		category string
		module   string
		ok       bool
	}{
		{"sanity_math", "sanity", "math", true},
		{"e2e_api_client", "e2e", "api_client", true},
		{"sanity", "", "", false},
		{"bogus_math", "", "", false},
		{"", "", "", false},
	}

	for _, tt := range tests {
		category, module, ok := SplitTestName(tt.stem)
		if category != tt.category || module != tt.module || ok != tt.ok {
			t.Errorf("SplitTestName(%q) = (%q, %q, %v), want (%q, %q, %v)",
				tt.stem, category, module, ok, tt.category, tt.module, tt.ok)
		}
	}
}
