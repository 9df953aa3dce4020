package cli_test

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/commitgate/commitgate/internal/adapters/inbound/cli"
	"github.com/commitgate/commitgate/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeTree(t *testing.T, files map[string]string) string {
	t.Helper()
	dir := t.TempDir()
	for rel, content := range files {
		abs := filepath.Join(dir, filepath.FromSlash(rel))
		require.NoError(t, os.MkdirAll(filepath.Dir(abs), 0o755))
		require.NoError(t, os.WriteFile(abs, []byte(content), 0o644))
	}
	return dir
}

func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()
	cmd := cli.NewRootCmdForTest()
	buf := new(bytes.Buffer)
	cmd.SetOut(buf)
	cmd.SetErr(buf)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return buf.String(), err
}

func TestVersionCommand(t *testing.T) {
	out, err := execute(t, "version")
	require.NoError(t, err)
	assert.Contains(t, out, "commitgate dev (none)")
}

func TestRunCommand_CleanTree(t *testing.T) {
	dir := writeTree(t, map[string]string{
		"conf.yaml": "name: gate\n",
		"mod.py":    "x = 1\n",
	})

	out, err := execute(t, "run", "--path", dir, "--all")
	require.NoError(t, err)
	assert.Contains(t, out, "PASSED")
}

func TestRunCommand_FailsOnViolation(t *testing.T) {
	dir := writeTree(t, map[string]string{"bad.yaml": "a: [\n"})

	out, err := execute(t, "run", "--path", dir, "--all")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "gate failed")
	assert.Contains(t, out, "FAILED")
	assert.Contains(t, out, "E901")
}

func TestRunCommand_ExplicitFiles(t *testing.T) {
	dir := writeTree(t, map[string]string{
		"good.yaml": "name: gate\n",
		"bad.yaml":  "a: [\n",
	})

	_, err := execute(t, "run", "--path", dir, "--files", "good.yaml")
	assert.NoError(t, err)
}

func TestRunCommand_RewritesAndFails(t *testing.T) {
	dir := writeTree(t, map[string]string{"dirty.py": "x = 1  \n"})

	out, err := execute(t, "run", "--path", dir, "--all")
	require.Error(t, err)
	assert.Contains(t, out, "file(s) rewritten")

	data, err := os.ReadFile(filepath.Join(dir, "dirty.py"))
	require.NoError(t, err)
	assert.Equal(t, "x = 1\n", string(data))

	// Second run over the rewritten tree is clean.
	_, err = execute(t, "run", "--path", dir, "--all")
	assert.NoError(t, err)
}

func TestRunCommand_JSONOutput(t *testing.T) {
	dir := writeTree(t, map[string]string{"conf.yaml": "name: gate\n"})

	out, err := execute(t, "run", "--path", dir, "--all", "--json")
	require.NoError(t, err)

	var result domain.RunResult
	require.NoError(t, json.Unmarshal([]byte(out), &result))
	assert.Equal(t, dir, result.Root)
	assert.Len(t, result.Results, 20)
}

func TestRunCommand_RejectsPositionalArgs(t *testing.T) {
	_, err := execute(t, "run", "extra")
	assert.Error(t, err)
}

func TestListCommand(t *testing.T) {
	dir := writeTree(t, map[string]string{})

	out, err := execute(t, "list", "--path", dir)
	require.NoError(t, err)
	assert.Contains(t, out, "Configured hooks")
	assert.Contains(t, out, "check-yaml")
	assert.Contains(t, out, "trailing-whitespace")
}

func TestListCommand_JSON(t *testing.T) {
	dir := writeTree(t, map[string]string{})

	out, err := execute(t, "list", "--path", dir, "--json")
	require.NoError(t, err)

	var cfg domain.GateConfig
	require.NoError(t, json.Unmarshal([]byte(out), &cfg))
	assert.Len(t, cfg.Hooks, 20)
}

func TestValidateCommand_OK(t *testing.T) {
	dir := writeTree(t, map[string]string{
		".commitgate.yaml": "hooks:\n  - id: check-yaml\n    types: [yaml]\n",
	})

	out, err := execute(t, "validate", "--path", dir)
	require.NoError(t, err)
	assert.Contains(t, out, "configuration OK (1 hooks)")
}

func TestValidateCommand_Invalid(t *testing.T) {
	dir := writeTree(t, map[string]string{
		".commitgate.yaml": "hooks:\n  - id: make-coffee\n",
	})

	_, err := execute(t, "validate", "--path", dir)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "make-coffee")
}
