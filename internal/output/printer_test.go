package output

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestPrinterDataMode(t *testing.T) {
	var out, errOut bytes.Buffer
	p := NewPrinterTo(ModeData, &out, &errOut)

	p.Warning("⚠ Validation Failed", "Found 3 violation(s)")

	require.Empty(t, out.String(), "data mode writes messages to stderr")
	require.Equal(t, "[warning] ⚠ Validation Failed\nFound 3 violation(s)\n\n", errOut.String())
}

func TestPrinterDataModeNoTitle(t *testing.T) {
	var out, errOut bytes.Buffer
	p := NewPrinterTo(ModeData, &out, &errOut)

	p.Info("", "plain body")

	require.Equal(t, "plain body\n\n", errOut.String())
}

func TestPrinterPrettyMode(t *testing.T) {
	var out, errOut bytes.Buffer
	p := NewPrinterTo(ModePretty, &out, &errOut)

	p.Success("✓ Test Results", "Tests passed!")

	require.Empty(t, errOut.String())
	require.Contains(t, out.String(), "✓ Test Results")
	require.Contains(t, out.String(), "Tests passed!")
}

func TestPrinterPlain(t *testing.T) {
	var out, errOut bytes.Buffer
	p := NewPrinterTo(ModeData, &out, &errOut)

	p.Plain("hello")

	require.Equal(t, "hello\n", out.String())
}
