package e2e_test

import (
	"encoding/json"
	"os"
	"os/exec"
	"path/filepath"
	"testing"

	"github.com/commitgate/commitgate/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var binaryPath string

func TestMain(m *testing.M) {
	// Build binary before running tests
	dir, err := os.MkdirTemp("", "commitgate-e2e")
	if err != nil {
		panic(err)
	}
	defer os.RemoveAll(dir)

	binaryPath = filepath.Join(dir, "commitgate")
	cmd := exec.Command("go", "build", "-o", binaryPath, "../../cmd/commitgate")
	if out, err := cmd.CombinedOutput(); err != nil {
		panic("build failed: " + string(out))
	}

	os.Exit(m.Run())
}

// fixtureCopy clones a testdata tree into a temp dir so fixer hooks rewrite
// the copy, never the checked-in fixture.
func fixtureCopy(t *testing.T, name string) string {
	t.Helper()
	src, err := filepath.Abs(filepath.Join("../../testdata/trees", name))
	require.NoError(t, err)
	dst := t.TempDir()

	err = filepath.WalkDir(src, func(path string, d os.DirEntry, err error) error {
		if err != nil {
			return err
		}
		rel, err := filepath.Rel(src, path)
		if err != nil {
			return err
		}
		target := filepath.Join(dst, rel)
		if d.IsDir() {
			return os.MkdirAll(target, 0o755)
		}
		data, err := os.ReadFile(path)
		if err != nil {
			return err
		}
		return os.WriteFile(target, data, 0o644)
	})
	require.NoError(t, err)
	return dst
}

func run(t *testing.T, args ...string) (string, int) {
	t.Helper()
	cmd := exec.Command(binaryPath, args...)
	out, err := cmd.CombinedOutput()
	exitCode := 0
	if err != nil {
		if exitErr, ok := err.(*exec.ExitError); ok {
			exitCode = exitErr.ExitCode()
		}
	}
	return string(out), exitCode
}

// --- Run Tests ---

func TestE2E_RunCleanTree(t *testing.T) {
	dir := fixtureCopy(t, "clean")
	out, code := run(t, "run", "--path", dir, "--all")
	assert.Equal(t, 0, code)
	assert.Contains(t, out, "commitgate")
	assert.Contains(t, out, "PASSED")
}

func TestE2E_RunDirtyTreeFails(t *testing.T) {
	dir := fixtureCopy(t, "dirty")
	out, code := run(t, "run", "--path", dir, "--all")
	assert.Equal(t, 1, code)
	assert.Contains(t, out, "FAILED")
	assert.Contains(t, out, "E901")
	assert.Contains(t, out, "C103")
}

func TestE2E_RunRewritesConverge(t *testing.T) {
	dir := fixtureCopy(t, "dirty")
	require.NoError(t, os.Remove(filepath.Join(dir, "bad.yaml")))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "dirty.py"), []byte("x = 1  \n"), 0o644))

	_, code := run(t, "run", "--path", dir, "--all")
	assert.Equal(t, 1, code, "first run rewrites and fails")

	_, code = run(t, "run", "--path", dir, "--all")
	assert.Equal(t, 0, code, "second run over the rewritten tree passes")
}

func TestE2E_RunJSON(t *testing.T) {
	dir := fixtureCopy(t, "clean")
	out, code := run(t, "run", "--path", dir, "--all", "--json")
	assert.Equal(t, 0, code)

	var result domain.RunResult
	require.NoError(t, json.Unmarshal([]byte(out), &result))
	assert.Len(t, result.Results, 20)
	for _, hr := range result.Results {
		assert.NotEqual(t, domain.OutcomeFail, hr.Outcome, hr.Hook.ID)
	}
}

// --- Config Tests ---

func TestE2E_List(t *testing.T) {
	dir := fixtureCopy(t, "clean")
	out, code := run(t, "list", "--path", dir)
	assert.Equal(t, 0, code)
	assert.Contains(t, out, "Configured hooks")
	assert.Contains(t, out, "check-yaml")
}

func TestE2E_Validate(t *testing.T) {
	dir := fixtureCopy(t, "clean")
	out, code := run(t, "validate", "--path", dir)
	assert.Equal(t, 0, code)
	assert.Contains(t, out, "configuration OK")
}

func TestE2E_ValidateBadConfig(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, ".commitgate.yaml"),
		[]byte("hooks:\n  - id: make-coffee\n"), 0o644))

	_, code := run(t, "validate", "--path", dir)
	assert.Equal(t, 1, code)
}

func TestE2E_Version(t *testing.T) {
	out, code := run(t, "version")
	assert.Equal(t, 0, code)
	assert.Contains(t, out, "commitgate")
}
