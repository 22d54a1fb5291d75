package main

import (
	"bytes"
	"errors"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/vk/taskorder/internal/cli"
	"github.com/vk/taskorder/internal/scheduler"
	"github.com/vk/taskorder/internal/testutil"
)

func TestRun_ShouldExit(t *testing.T) {
	t.Parallel()

	// --- Arrange ---
	// The "-h" (help) flag should cause cli.Parse to return `shouldExit=true`.
	args := []string{"-h"}
	out := &bytes.Buffer{}

	// --- Act ---
	err := run(out, &bytes.Buffer{}, args)

	// --- Assert ---
	require.NoError(t, err, "run() should return a nil error when shouldExit is true")
	require.Contains(t, out.String(), "Usage:", "Expected help text to be printed to the output buffer")
}

func TestRun_ParseError(t *testing.T) {
	t.Parallel()

	// --- Arrange ---
	args := []string{"--this-is-not-a-valid-flag"}
	out := &bytes.Buffer{}

	// --- Act ---
	err := run(out, &bytes.Buffer{}, args)

	// --- Assert ---
	require.Error(t, err, "run() should return an error when argument parsing fails")
	var exitErr *cli.ExitError
	require.True(t, errors.As(err, &exitErr))
	require.Equal(t, 2, exitErr.Code)
	require.Contains(t, err.Error(), "flag provided but not defined: -this-is-not-a-valid-flag")
}

func TestRun_Schedule(t *testing.T) {
	t.Parallel()

	// --- Arrange ---
	dir := testutil.WriteFiles(t, map[string]string{
		"pipeline.hcl": `
locals {
  first = 1
}

task "deploy" {
  priority   = local.first
  depends_on = ["test"]
}

task "test" {
  priority = local.first + 1
}
`,
	})
	out := &bytes.Buffer{}
	logs := &testutil.SafeBuffer{}

	// --- Act ---
	err := run(out, logs, []string{"--input", dir})

	// --- Assert ---
	require.NoError(t, err)
	require.Equal(t, "1. test priority 2\n2. deploy priority 1\n", out.String())
}

func TestRun_CycleError(t *testing.T) {
	t.Parallel()

	// --- Arrange ---
	dir := testutil.WriteFiles(t, map[string]string{
		"cycle.yaml": "tasks:\n  - id: a\n    depends_on: [b]\n  - id: b\n    depends_on: [a]\n",
	})

	// --- Act ---
	err := run(&bytes.Buffer{}, &bytes.Buffer{}, []string{filepath.Join(dir, "cycle.yaml")})

	// --- Assert ---
	require.Error(t, err)
	require.True(t, errors.Is(err, scheduler.ErrCycleDetected))
	var exitErr *cli.ExitError
	require.False(t, errors.As(err, &exitErr), "scheduling failures are not usage errors")
	require.Contains(t, err.Error(), "cycle detected involving 'a': a -> b -> a")
}
