package cli

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/snekfx/testgo/internal/filesystem"
)

func TestNewRootCommandWiring(t *testing.T) {
	fs := filesystem.NewMockFileSystem()
	rootCmd := NewRootCommand(fs)

	var names []string
	for _, sub := range rootCmd.Commands() {
		names = append(names, sub.Name())
	}

	for _, want := range []string{"run", "lint", "violations", "check", "docs", "init"} {
		require.Contains(t, names, want)
	}

	for _, flag := range []string{"view", "no-boxy", "override", "skip-enforcement", "timeout", "parallel", "language"} {
		require.NotNil(t, rootCmd.PersistentFlags().Lookup(flag), "missing persistent flag %s", flag)
	}
}
