package cli

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const passingScenario = `name: unique-grid
description: forced deductions converge
puzzle: |
  XX,XX,XX
  03,00,00
  07,00,00

  XX,04,06
  XX,00,00
  XX,00,00
expect:
  status: unique
  cells:
    - {x: 1, y: 1, digit: 1}
`

const failingScenario = `name: wrong-expectation
description: ambiguous puzzle expected unique
puzzle: |
  XX,XX,XX
  04,00,00
  06,00,00

  XX,05,05
  XX,00,00
  XX,00,00
expect:
  status: unique
`

func writeScenarioDir(t *testing.T, scenarios map[string]string) string {
	t.Helper()
	dir := t.TempDir()
	for name, content := range scenarios {
		require.NoError(t, os.WriteFile(filepath.Join(dir, name), []byte(content), 0644))
	}
	return dir
}

func executeTest(t *testing.T, format string, args ...string) (string, error) {
	t.Helper()
	cmd := NewTestCommand(&RootOptions{Format: format})
	buf := &bytes.Buffer{}
	cmd.SetOut(buf)
	cmd.SetErr(&bytes.Buffer{})
	cmd.SetArgs(args)
	err := cmd.Execute()
	return buf.String(), err
}

func TestTestCommand_AllPass(t *testing.T) {
	dir := writeScenarioDir(t, map[string]string{"unique.yaml": passingScenario})

	out, err := executeTest(t, "text", dir)
	require.NoError(t, err)
	assert.Contains(t, out, "✓ unique-grid")
	assert.Contains(t, out, "1 passed, 0 failed, 1 total")
	assert.Contains(t, out, "All scenarios passed")
}

func TestTestCommand_FailureSetsExitCode(t *testing.T) {
	dir := writeScenarioDir(t, map[string]string{
		"unique.yaml": passingScenario,
		"wrong.yaml":  failingScenario,
	})

	out, err := executeTest(t, "text", dir)
	require.Error(t, err)
	assert.Equal(t, ExitFailure, GetExitCode(err))
	assert.Contains(t, out, "✗ wrong-expectation")
	assert.Contains(t, out, "1 passed, 1 failed, 2 total")
}

func TestTestCommand_MissingDirectory(t *testing.T) {
	_, err := executeTest(t, "text", filepath.Join(t.TempDir(), "nope"))
	require.Error(t, err)
	assert.Equal(t, ExitCommandError, GetExitCode(err))
}

func TestTestCommand_EmptyDirectory(t *testing.T) {
	out, err := executeTest(t, "text", t.TempDir())
	require.NoError(t, err)
	assert.Contains(t, out, "No scenarios found.")
}

func TestTestCommand_Filter(t *testing.T) {
	dir := writeScenarioDir(t, map[string]string{
		"unique.yaml": passingScenario,
		"wrong.yaml":  failingScenario,
	})

	out, err := executeTest(t, "text", dir, "--filter", "unique")
	require.NoError(t, err)
	assert.Contains(t, out, "1 passed, 0 failed, 1 total")
}

func TestTestCommand_JSONOutput(t *testing.T) {
	dir := writeScenarioDir(t, map[string]string{"wrong.yaml": failingScenario})

	out, err := executeTest(t, "json", dir)
	require.Error(t, err)
	assert.Equal(t, ExitFailure, GetExitCode(err))

	var resp CLIResponse
	require.NoError(t, json.Unmarshal([]byte(out), &resp))
	assert.Equal(t, "error", resp.Status)
	require.NotNil(t, resp.Error)
	assert.Equal(t, "E_TEST_FAILED", resp.Error.Code)
}

func TestTestCommand_UpdateWritesGolden(t *testing.T) {
	dir := writeScenarioDir(t, map[string]string{"unique.yaml": passingScenario})

	out, err := executeTest(t, "text", dir, "--update")
	require.NoError(t, err)
	assert.Contains(t, out, "golden updated")

	golden, err := os.ReadFile(filepath.Join(dir, "golden", "unique-grid.golden"))
	require.NoError(t, err)
	assert.Equal(t, "# # # \n# 1 2 \n# 3 4 \n", string(golden))

	// A second run compares against the fresh golden and passes.
	out, err = executeTest(t, "text", dir)
	require.NoError(t, err)
	assert.Contains(t, out, "✓ unique-grid")
}

func TestFindScenarioFiles(t *testing.T) {
	dir := t.TempDir()
	for _, name := range []string{"a.yaml", "b.yml", "c.txt"} {
		require.NoError(t, os.WriteFile(filepath.Join(dir, name), []byte("x"), 0644))
	}

	files, err := findScenarioFiles(dir, "")
	require.NoError(t, err)
	assert.Len(t, files, 2)

	files, err = findScenarioFiles(dir, "a")
	require.NoError(t, err)
	require.Len(t, files, 1)
	assert.Equal(t, "a.yaml", filepath.Base(files[0]))

	_, err = findScenarioFiles(dir, "[")
	require.Error(t, err)
}
