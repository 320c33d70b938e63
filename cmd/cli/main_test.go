package main

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/specialistvlad/optmap/internal/cli"
	"github.com/stretchr/testify/require"
)

func TestRun_ShowWithEnvironment(t *testing.T) {
	t.Parallel()

	// --- Arrange ---
	tempDir := t.TempDir()
	filePath := filepath.Join(tempDir, "main.hcl")
	err := os.WriteFile(filePath, []byte("pp {\n  width = 80\n}\n"), 0600)
	require.NoError(t, err, "failed to set up test file")

	out := &bytes.Buffer{}
	errOut := &bytes.Buffer{}
	environ := []string{"OPTMAP_PP__UNICODE=true"}

	// --- Act ---
	err = run(out, errOut, []string{"show", filePath}, environ)

	// --- Assert ---
	require.NoError(t, err)
	require.Equal(t, "[pp.unicode := true, pp.width := 80]\n", out.String())
}

func TestRun_Help(t *testing.T) {
	t.Parallel()

	// --- Arrange ---
	out := &bytes.Buffer{}

	// --- Act ---
	err := run(out, &bytes.Buffer{}, []string{"-h"}, nil)

	// --- Assert ---
	require.NoError(t, err, "run() should return a nil error for help")
	require.Contains(t, out.String(), "Usage:", "Expected help text to be printed to the output buffer")
}

func TestRun_ParseError(t *testing.T) {
	t.Parallel()

	// --- Arrange ---
	args := []string{"show", "--this-is-not-a-valid-flag"}

	// --- Act ---
	err := run(&bytes.Buffer{}, &bytes.Buffer{}, args, nil)

	// --- Assert ---
	require.Error(t, err, "run() should return an error when argument parsing fails")
	var exitErr *cli.ExitError
	require.True(t, errors.As(err, &exitErr))
	require.Equal(t, cli.CodeUsage, exitErr.Code)
	require.Contains(t, err.Error(), "unknown flag: --this-is-not-a-valid-flag")
}
