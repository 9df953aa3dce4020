package scanner

import (
	"os"
	"path/filepath"
)

var skipDirs = map[string]bool{
	".git":         true,
	".hg":          true,
	"vendor":       true,
	"node_modules": true,
	"dist":         true,
	"bin":          true,
	"__pycache__":  true,
}

// FileScanner implements domain.TreeScanner by walking the filesystem. It
// is the fallback file-set source when no version-control information is
// available; hook-level excludes still apply downstream.
type FileScanner struct{}

func New() *FileScanner {
	return &FileScanner{}
}

func (s *FileScanner) Scan(root string) ([]string, error) {
	absRoot, err := filepath.Abs(root)
	if err != nil {
		return nil, err
	}

	var files []string
	err = filepath.WalkDir(absRoot, func(path string, d os.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			if skipDirs[d.Name()] {
				return filepath.SkipDir
			}
			return nil
		}
		if !d.Type().IsRegular() {
			return nil
		}
		rel, err := filepath.Rel(absRoot, path)
		if err != nil {
			return err
		}
		files = append(files, filepath.ToSlash(rel))
		return nil
	})
	return files, err
}
