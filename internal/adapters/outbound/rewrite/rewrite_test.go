package rewrite_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/commitgate/commitgate/internal/adapters/outbound/rewrite"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRewrite_ReplacesContent(t *testing.T) {
	path := filepath.Join(t.TempDir(), "f.py")
	require.NoError(t, os.WriteFile(path, []byte("old\n"), 0o644))

	require.NoError(t, rewrite.New().Rewrite(path, []byte("new\n")))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "new\n", string(data))
}

func TestRewrite_PreservesFileMode(t *testing.T) {
	path := filepath.Join(t.TempDir(), "script.py")
	require.NoError(t, os.WriteFile(path, []byte("old\n"), 0o755))

	require.NoError(t, rewrite.New().Rewrite(path, []byte("new\n")))

	info, err := os.Stat(path)
	require.NoError(t, err)
	assert.Equal(t, os.FileMode(0o755), info.Mode().Perm())
}

func TestRewrite_MissingFile(t *testing.T) {
	err := rewrite.New().Rewrite(filepath.Join(t.TempDir(), "absent.py"), []byte("x\n"))
	assert.Error(t, err)
}

func TestRewrite_LeavesNoTempFilesBehind(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "f.py")
	require.NoError(t, os.WriteFile(path, []byte("old\n"), 0o644))

	require.NoError(t, rewrite.New().Rewrite(path, []byte("new\n")))

	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.Equal(t, "f.py", entries[0].Name())
}
