package hooks_test

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/commitgate/commitgate/internal/domain"
	"github.com/commitgate/commitgate/internal/domain/hooks"
	"github.com/stretchr/testify/require"
)

// plainRewriter writes straight to disk. The production rewriter's atomic
// rename behavior has its own tests.
type plainRewriter struct{}

func (plainRewriter) Rewrite(path string, content []byte) error {
	return os.WriteFile(path, content, 0o644)
}

// writeTree materializes a map of relative path to content in a temp dir.
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

// runHook invokes one built-in hook over the given paths.
func runHook(t *testing.T, id, root string, spec domain.HookSpec, paths ...string) hooks.Result {
	t.Helper()
	fn, ok := hooks.Lookup(id)
	require.True(t, ok, "unknown hook %s", id)
	spec.ID = id
	return fn(context.Background(), hooks.Request{
		Root:     root,
		Spec:     spec,
		Files:    domain.NewFileSet(paths),
		Rewriter: plainRewriter{},
	})
}

func readBack(t *testing.T, root, rel string) string {
	t.Helper()
	data, err := os.ReadFile(filepath.Join(root, filepath.FromSlash(rel)))
	require.NoError(t, err)
	return string(data)
}
