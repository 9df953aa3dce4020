package gitinfo

import (
	"errors"
	"fmt"
	"sort"

	"github.com/commitgate/commitgate/internal/domain"
	"github.com/go-git/go-git/v5"
	"github.com/go-git/go-git/v5/plumbing"
	"github.com/go-git/go-git/v5/plumbing/object"
)

// GitInfoAdapter implements domain.RepoInfo using go-git.
type GitInfoAdapter struct{}

func New() *GitInfoAdapter {
	return &GitInfoAdapter{}
}

func (g *GitInfoAdapter) IsRepo(root string) bool {
	_, err := git.PlainOpen(root)
	return err == nil
}

// Files returns every file under version control: the HEAD tree plus files
// staged as added, the latter flagged Added for the naming/placement
// policy hooks. Files staged for deletion are dropped.
func (g *GitInfoAdapter) Files(root string) (domain.FileSet, error) {
	repo, err := git.PlainOpen(root)
	if err != nil {
		return nil, fmt.Errorf("opening git repo: %w", err)
	}

	tracked := make(map[string]bool)
	if err := headTreeFiles(repo, tracked); err != nil {
		return nil, err
	}

	wt, err := repo.Worktree()
	if err != nil {
		return nil, fmt.Errorf("opening worktree: %w", err)
	}
	status, err := wt.Status()
	if err != nil {
		return nil, fmt.Errorf("reading worktree status: %w", err)
	}

	added := make(map[string]bool)
	for path, st := range status {
		switch st.Staging {
		case git.Added:
			added[path] = true
			tracked[path] = true
		case git.Deleted:
			delete(tracked, path)
		}
	}

	paths := make([]string, 0, len(tracked))
	for p := range tracked {
		paths = append(paths, p)
	}
	sort.Strings(paths)

	fs := make(domain.FileSet, len(paths))
	for i, p := range paths {
		fs[i] = domain.File{Path: p, Added: added[p]}
	}
	return fs, nil
}

// headTreeFiles collects the file paths of the HEAD commit tree. An
// unborn branch (fresh repo, nothing committed) contributes nothing.
func headTreeFiles(repo *git.Repository, into map[string]bool) error {
	head, err := repo.Head()
	if err != nil {
		if errors.Is(err, plumbing.ErrReferenceNotFound) {
			return nil
		}
		return fmt.Errorf("getting HEAD: %w", err)
	}

	commit, err := repo.CommitObject(head.Hash())
	if err != nil {
		return fmt.Errorf("loading HEAD commit: %w", err)
	}
	tree, err := commit.Tree()
	if err != nil {
		return fmt.Errorf("loading HEAD tree: %w", err)
	}

	return tree.Files().ForEach(func(f *object.File) error {
		into[f.Name] = true
		return nil
	})
}
