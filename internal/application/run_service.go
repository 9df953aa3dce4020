package application

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/commitgate/commitgate/internal/domain"
	"github.com/commitgate/commitgate/internal/domain/hooks"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

// RunService executes the commit gate: it filters the file set per hook and
// runs every configured hook, producing a RunResult. Hooks are independent;
// one failing never prevents the others from running and reporting.
type RunService struct {
	configLoader domain.ConfigLoader
	rewriter     domain.FileRewriter
	logger       *zap.Logger
}

// NewRunService creates a RunService with all required dependencies.
func NewRunService(loader domain.ConfigLoader, rewriter domain.FileRewriter, logger *zap.Logger) *RunService {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &RunService{configLoader: loader, rewriter: rewriter, logger: logger}
}

// Run loads the gate configuration for root and executes it over files.
func (s *RunService) Run(ctx context.Context, root string, files domain.FileSet) (*domain.RunResult, error) {
	cfg, err := s.configLoader.Load(root)
	if err != nil {
		return nil, fmt.Errorf("loading config: %w", err)
	}
	return s.RunWithConfig(ctx, root, files, cfg)
}

// RunWithConfig executes an explicit configuration over files.
//
// Fixers run first, sequentially in configured order, so two hooks never
// rewrite the same file concurrently and checkers always re-validate the
// rewritten state. Checkers then run concurrently, bounded by
// settings.jobs, with diagnostics buffered per hook.
func (s *RunService) RunWithConfig(ctx context.Context, root string, files domain.FileSet, cfg domain.GateConfig) (*domain.RunResult, error) {
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}

	matchers := make([]*domain.Matcher, len(cfg.Hooks))
	for i, h := range cfg.Hooks {
		m, err := domain.CompileMatcher(h, cfg.Settings.Exclude)
		if err != nil {
			return nil, err
		}
		matchers[i] = m
	}

	result := &domain.RunResult{
		Root:      root,
		Results:   make([]domain.HookResult, len(cfg.Hooks)),
		Timestamp: time.Now(),
	}
	timeout := cfg.Settings.EffectiveTimeout()

	// Stage 1: fixers, sequential.
	for i, h := range cfg.Hooks {
		if h.EffectiveStage() != domain.StageFixer {
			continue
		}
		result.Results[i] = s.runHook(ctx, root, h, matchers[i].Filter(files), timeout)
	}

	// Stage 2: checkers, concurrent with a worker bound. runHook never
	// returns an error; per-hook failures live in the HookResult.
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(cfg.Settings.EffectiveJobs())
	for i, h := range cfg.Hooks {
		if h.EffectiveStage() != domain.StageChecker {
			continue
		}
		g.Go(func() error {
			result.Results[i] = s.runHook(gctx, root, h, matchers[i].Filter(files), timeout)
			return nil
		})
	}
	_ = g.Wait()

	s.logger.Debug("gate run complete",
		zap.String("root", root),
		zap.Int("hooks", len(cfg.Hooks)),
		zap.Bool("failed", result.Failed()))

	return result, nil
}

// runHook executes a single hook over its already-filtered file set and
// classifies the outcome. An empty selection is a skip, treated as pass
// with no diagnostics.
func (s *RunService) runHook(ctx context.Context, root string, spec domain.HookSpec, matched domain.FileSet, timeout time.Duration) domain.HookResult {
	start := time.Now()
	hr := domain.HookResult{Hook: spec, Matched: len(matched)}

	if len(matched) == 0 {
		hr.Outcome = domain.OutcomeSkipped
		hr.Duration = time.Since(start)
		return hr
	}

	fn, ok := hooks.Lookup(spec.ID)
	if !ok {
		// Validate catches this before a run; a miss here is a programming error.
		hr.Outcome = domain.OutcomeError
		hr.Diagnostics = []domain.Diagnostic{{Message: fmt.Sprintf("no implementation for hook %q", spec.ID)}}
		hr.Duration = time.Since(start)
		return hr
	}

	hctx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	// The hook runs in its own goroutine so a hung implementation cannot
	// block the gate past the deadline; hooks also observe ctx between
	// files for prompt cooperative cancellation.
	done := make(chan hooks.Result, 1)
	go func() {
		done <- invoke(hctx, fn, hooks.Request{
			Root:     root,
			Spec:     spec,
			Files:    matched,
			Rewriter: s.rewriter,
		})
	}()

	var res hooks.Result
	timedOut := false
	select {
	case res = <-done:
	case <-hctx.Done():
		timedOut = true
	}

	hr.Duration = time.Since(start)
	hr.Diagnostics = res.Diagnostics
	hr.FixedFiles = res.Fixed

	if errors.Is(res.Err, context.DeadlineExceeded) {
		// Cooperative cancellation between files reports the same way as a
		// hard timeout.
		timedOut = true
		res.Err = nil
	}

	switch {
	case timedOut:
		hr.Outcome = domain.OutcomeError
		hr.Diagnostics = append(hr.Diagnostics, domain.Diagnostic{
			Message: fmt.Sprintf("hook timed out after %s", timeout),
		})
		s.logger.Warn("hook timed out", zap.String("hook", spec.ID), zap.Duration("timeout", timeout))
	case res.Err != nil:
		hr.Outcome = domain.OutcomeError
		hr.Diagnostics = append(hr.Diagnostics, domain.Diagnostic{
			Message: "hook execution failed: " + res.Err.Error(),
		})
		s.logger.Warn("hook execution failed", zap.String("hook", spec.ID), zap.Error(res.Err))
	case len(res.Fixed) > 0:
		// Fixed still fails this run: the rewritten files must be
		// re-submitted so the recorded state matches what was checked.
		hr.Outcome = domain.OutcomeFixed
	case len(res.Diagnostics) > 0:
		hr.Outcome = domain.OutcomeFail
	default:
		hr.Outcome = domain.OutcomePass
	}

	return hr
}

// invoke runs the hook function, converting a panic into a tool-execution
// failure so a broken hook aborts only its own run.
func invoke(ctx context.Context, fn hooks.Func, req hooks.Request) (res hooks.Result) {
	defer func() {
		if r := recover(); r != nil {
			res = hooks.Result{Err: fmt.Errorf("hook panicked: %v", r)}
		}
	}()
	return fn(ctx, req)
}
