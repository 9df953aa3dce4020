package application

import (
	"context"
	"fmt"
	"time"

	"github.com/commitgate/commitgate/internal/domain"
	"go.uber.org/zap"
)

// WatchService reruns the gate whenever the working tree changes, after a
// quiet period so editor save bursts coalesce into one run.
type WatchService struct {
	run     *RunService
	files   *FileSetService
	watcher domain.TreeWatcher
	logger  *zap.Logger
}

// NewWatchService creates a WatchService.
func NewWatchService(run *RunService, files *FileSetService, watcher domain.TreeWatcher, logger *zap.Logger) *WatchService {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &WatchService{run: run, files: files, watcher: watcher, logger: logger}
}

// Watch runs the gate once, then again after each debounced batch of
// changes, invoking onRun with every result. Returns when ctx is done.
func (s *WatchService) Watch(ctx context.Context, root string, debounce time.Duration, onRun func(*domain.RunResult)) error {
	if debounce <= 0 {
		debounce = 500 * time.Millisecond
	}

	events, err := s.watcher.Watch(ctx, root)
	if err != nil {
		return fmt.Errorf("watching %s: %w", root, err)
	}

	if err := s.runOnce(ctx, root, onRun); err != nil {
		return err
	}

	timer := time.NewTimer(debounce)
	if !timer.Stop() {
		<-timer.C
	}
	pending := false

	for {
		select {
		case <-ctx.Done():
			return nil
		case path, ok := <-events:
			if !ok {
				return nil
			}
			s.logger.Debug("tree changed", zap.String("path", path))
			if pending && !timer.Stop() {
				<-timer.C
			}
			timer.Reset(debounce)
			pending = true
		case <-timer.C:
			pending = false
			if err := s.runOnce(ctx, root, onRun); err != nil {
				return err
			}
		}
	}
}

func (s *WatchService) runOnce(ctx context.Context, root string, onRun func(*domain.RunResult)) error {
	fs, err := s.files.Resolve(root, nil, false)
	if err != nil {
		return err
	}
	result, err := s.run.Run(ctx, root, fs)
	if err != nil {
		return err
	}
	onRun(result)
	return nil
}
