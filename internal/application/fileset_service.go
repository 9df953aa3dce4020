package application

import (
	"fmt"
	"sort"

	"github.com/commitgate/commitgate/internal/domain"
)

// FileSetService builds the File Set for a gate run. The gate itself never
// discovers files; this service is the caller-side collaborator that
// supplies the set, with added-file status attached when version control
// is available.
type FileSetService struct {
	repo    domain.RepoInfo
	scanner domain.TreeScanner
}

// NewFileSetService creates a FileSetService.
func NewFileSetService(repo domain.RepoInfo, scanner domain.TreeScanner) *FileSetService {
	return &FileSetService{repo: repo, scanner: scanner}
}

// Resolve produces the file set for root. Explicit paths win when given;
// otherwise the set defaults to all files under version control, with
// added-file status from the worktree. walkAll (or the absence of a
// repository) falls back to a filesystem walk with no added status.
func (s *FileSetService) Resolve(root string, explicit []string, walkAll bool) (domain.FileSet, error) {
	if len(explicit) > 0 {
		fs := domain.NewFileSet(explicit)
		s.annotateAdded(root, fs)
		return fs, nil
	}

	if !walkAll && s.repo.IsRepo(root) {
		fs, err := s.repo.Files(root)
		if err != nil {
			return nil, fmt.Errorf("listing repository files: %w", err)
		}
		return fs, nil
	}

	paths, err := s.scanner.Scan(root)
	if err != nil {
		return nil, fmt.Errorf("scanning %s: %w", root, err)
	}
	sort.Strings(paths)
	return domain.NewFileSet(paths), nil
}

// annotateAdded fills Added flags on an explicit file set from worktree
// status, so the naming/placement hooks see the same signal as a default
// run. Best effort: outside a repository nothing is marked added.
func (s *FileSetService) annotateAdded(root string, fs domain.FileSet) {
	if !s.repo.IsRepo(root) {
		return
	}
	tracked, err := s.repo.Files(root)
	if err != nil {
		return
	}
	added := make(map[string]bool, len(tracked))
	for _, f := range tracked {
		if f.Added {
			added[f.Path] = true
		}
	}
	for i := range fs {
		fs[i].Added = added[fs[i].Path]
	}
}
