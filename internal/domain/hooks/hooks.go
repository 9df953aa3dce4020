// Package hooks implements the built-in checkers and fixers the gate can
// run. Each hook is a pure function over its matched file set: it reads the
// files it was given, reports diagnostics, and (for fixers) hands rewritten
// content to the rewriter. Hooks never discover files themselves.
package hooks

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"unicode/utf8"

	"github.com/commitgate/commitgate/internal/domain"
)

// Request carries one hook invocation over an already-filtered file set.
type Request struct {
	Root     string
	Spec     domain.HookSpec
	Files    domain.FileSet
	Rewriter domain.FileRewriter
}

// Result is what a hook reports back. Err signals a tool-execution failure
// (the hook itself broke), which is distinct from policy violations carried
// in Diagnostics.
type Result struct {
	Diagnostics []domain.Diagnostic
	Fixed       []string
	Err         error
}

// Func is a single hook implementation.
type Func func(ctx context.Context, req Request) Result

var registry = map[string]Func{
	"check-yaml":      checkYAML,
	"check-toml":      checkTOML,
	"check-json":      checkJSON,
	"check-go-syntax": checkGoSyntax,

	"trailing-whitespace": trailingWhitespace,
	"end-of-file-fixer":   endOfFileFixer,
	"excess-blank-lines":  excessBlankLines,
	"mixed-indentation":   mixedIndentation,

	"check-merge-conflict":     checkMergeConflict,
	"detect-private-key":       detectPrivateKey,
	"unicode-replacement-char": unicodeReplacementChar,
	"debug-statements":         debugStatements,
	"bare-error-handler":       bareErrorHandler,
	"blanket-suppression":      blanketSuppression,

	"changelog-fragment": changelogFragment,
	"file-naming":        fileNaming,

	"import-order":        importOrder,
	"rewrite-rules":       rewriteRules,
	"unused-suppressions": unusedSuppressions,

	"style-rules": styleRules,
}

// Lookup returns the implementation for a hook ID.
func Lookup(id string) (Func, bool) {
	fn, ok := registry[id]
	return fn, ok
}

// errResult wraps a tool-execution failure.
func errResult(err error) Result {
	return Result{Err: err}
}

// readText reads a file under the working tree and requires valid UTF-8.
// A file the hook cannot decode is a tool-execution failure, fatal to this
// hook's run but not to the others.
func readText(root, path string) ([]byte, error) {
	data, err := os.ReadFile(filepath.Join(root, filepath.FromSlash(path)))
	if err != nil {
		return nil, fmt.Errorf("reading %s: %w", path, err)
	}
	if !utf8.Valid(data) {
		return nil, fmt.Errorf("cannot decode %s as UTF-8", path)
	}
	return data, nil
}

// cancelled reports context expiry as a tool-execution failure so the run
// service can attribute it to this hook.
func cancelled(ctx context.Context) (Result, bool) {
	if err := ctx.Err(); err != nil {
		return errResult(err), true
	}
	return Result{}, false
}
