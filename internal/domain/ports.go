package domain

import "context"

// ConfigLoader loads the gate configuration for a working tree.
type ConfigLoader interface {
	Load(root string) (GateConfig, error)
}

// TreeScanner walks a working tree and returns candidate file paths when no
// version-control information is available.
type TreeScanner interface {
	Scan(root string) ([]string, error)
}

// RepoInfo reports version-control state for a working tree. The gate uses
// it to build the default file set and to attach added-file status, which
// the naming/placement policy hooks require.
type RepoInfo interface {
	IsRepo(root string) bool
	Files(root string) (FileSet, error)
}

// FileRewriter rewrites a file in place for fixer hooks. Implementations
// must not leave a partially written file behind on failure.
type FileRewriter interface {
	Rewrite(path string, content []byte) error
}

// TreeWatcher reports paths changed under a working tree until the context
// is cancelled.
type TreeWatcher interface {
	Watch(ctx context.Context, root string) (<-chan string, error)
}
