package watcher

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/fsnotify/fsnotify"
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

// FSWatcher implements domain.TreeWatcher on top of fsnotify. It watches
// every directory under the root (fsnotify is not recursive) and picks up
// directories created while watching.
type FSWatcher struct{}

func New() *FSWatcher {
	return &FSWatcher{}
}

func (w *FSWatcher) Watch(ctx context.Context, root string) (<-chan string, error) {
	absRoot, err := filepath.Abs(root)
	if err != nil {
		return nil, err
	}

	fsw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("creating watcher: %w", err)
	}
	if err := addDirs(fsw, absRoot); err != nil {
		fsw.Close()
		return nil, err
	}

	out := make(chan string)
	go func() {
		defer close(out)
		defer fsw.Close()
		for {
			select {
			case <-ctx.Done():
				return
			case ev, ok := <-fsw.Events:
				if !ok {
					return
				}
				if ev.Op.Has(fsnotify.Create) {
					if info, err := os.Stat(ev.Name); err == nil && info.IsDir() {
						_ = addDirs(fsw, ev.Name)
						continue
					}
				}
				rel, err := filepath.Rel(absRoot, ev.Name)
				if err != nil || strings.HasPrefix(rel, "..") {
					continue
				}
				// Temp files from atomic rewrites are not tree changes.
				if strings.HasPrefix(filepath.Base(rel), ".") && strings.Contains(rel, ".rewrite-") {
					continue
				}
				select {
				case out <- filepath.ToSlash(rel):
				case <-ctx.Done():
					return
				}
			case _, ok := <-fsw.Errors:
				if !ok {
					return
				}
			}
		}
	}()

	return out, nil
}

func addDirs(fsw *fsnotify.Watcher, root string) error {
	return filepath.WalkDir(root, func(path string, d os.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if !d.IsDir() {
			return nil
		}
		if skipDirs[d.Name()] {
			return filepath.SkipDir
		}
		return fsw.Add(path)
	})
}
