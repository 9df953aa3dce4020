package hooks_test

import (
	"strings"
	"testing"

	"github.com/commitgate/commitgate/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUnusedSuppressions_RemovesDeadAnnotation(t *testing.T) {
	root := writeTree(t, map[string]string{
		"clean.py": "x = 1  # noqa: W291\n",
	})

	res := runHook(t, "unused-suppressions", root, domain.HookSpec{}, "clean.py")
	require.NoError(t, res.Err)
	assert.Equal(t, []string{"clean.py"}, res.Fixed)
	require.Len(t, res.Diagnostics, 1)
	assert.Equal(t, "U101", res.Diagnostics[0].Code)
	assert.Equal(t, "x = 1\n", readBack(t, root, "clean.py"))
}

func TestUnusedSuppressions_KeepsFiringCode(t *testing.T) {
	long := "x = '" + strings.Repeat("a", 120) + "'  # noqa: E501\n"
	root := writeTree(t, map[string]string{"long.py": long})

	res := runHook(t, "unused-suppressions", root, domain.HookSpec{}, "long.py")
	require.NoError(t, res.Err)
	assert.Empty(t, res.Fixed)
	assert.Equal(t, long, readBack(t, root, "long.py"))
}

func TestUnusedSuppressions_PrunesToFiringSubset(t *testing.T) {
	long := "x = '" + strings.Repeat("a", 120) + "'"
	root := writeTree(t, map[string]string{
		"long.py": long + "  # noqa: E501, W291\n",
	})

	res := runHook(t, "unused-suppressions", root, domain.HookSpec{}, "long.py")
	require.NoError(t, res.Err)
	assert.Equal(t, []string{"long.py"}, res.Fixed)
	assert.Equal(t, long+"  # noqa: E501\n", readBack(t, root, "long.py"))
}

func TestUnusedSuppressions_KeepsForeignCodes(t *testing.T) {
	// F401 belongs to a different tool; we cannot prove it unused.
	content := "import os  # noqa: F401\n"
	root := writeTree(t, map[string]string{"imports.py": content})

	res := runHook(t, "unused-suppressions", root, domain.HookSpec{}, "imports.py")
	require.NoError(t, res.Err)
	assert.Empty(t, res.Fixed)
	assert.Equal(t, content, readBack(t, root, "imports.py"))
}

func TestUnusedSuppressions_BlanketRemovedWhenNothingFires(t *testing.T) {
	root := writeTree(t, map[string]string{
		"blanket.py": "x = 1  # noqa\n",
	})

	res := runHook(t, "unused-suppressions", root, domain.HookSpec{}, "blanket.py")
	require.NoError(t, res.Err)
	assert.Equal(t, "x = 1\n", readBack(t, root, "blanket.py"))
}

func TestUnusedSuppressions_BlanketKeptWhileFiring(t *testing.T) {
	content := "x = '" + strings.Repeat("a", 120) + "'  # noqa\n"
	root := writeTree(t, map[string]string{"blanket.py": content})

	// The annotated line is over length, so something is being suppressed
	// and the blanket stays.
	res := runHook(t, "unused-suppressions", root, domain.HookSpec{}, "blanket.py")
	require.NoError(t, res.Err)
	assert.Empty(t, res.Fixed)
	assert.Equal(t, content, readBack(t, root, "blanket.py"))
}

func TestUnusedSuppressions_PlainLinesUntouched(t *testing.T) {
	content := "x = 1\n# a comment mentioning noqa policy\n"
	root := writeTree(t, map[string]string{"plain.py": content})

	res := runHook(t, "unused-suppressions", root, domain.HookSpec{}, "plain.py")
	require.NoError(t, res.Err)
	assert.Empty(t, res.Fixed)
	assert.Equal(t, content, readBack(t, root, "plain.py"))
}
