package hooks

import (
	"context"
	"fmt"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/commitgate/commitgate/internal/domain"
)

// Hygiene fixers: whitespace and newline policy. All of them rewrite files
// in place and reach a fixed point, so a second application reports clean.

// fixEachFile runs a content transform over every file in the request and
// rewrites the ones that change. diag describes what was wrong per line
// range changed; we report one diagnostic per rewritten file.
func fixEachFile(ctx context.Context, req Request, code, what string, transform func(string) string) Result {
	var res Result
	for _, f := range req.Files {
		if r, done := cancelled(ctx); done {
			return r
		}
		data, err := readText(req.Root, f.Path)
		if err != nil {
			return errResult(err)
		}

		fixed := transform(string(data))
		if fixed == string(data) {
			continue
		}
		abs := filepath.Join(req.Root, filepath.FromSlash(f.Path))
		if err := req.Rewriter.Rewrite(abs, []byte(fixed)); err != nil {
			return errResult(fmt.Errorf("rewriting %s: %w", f.Path, err))
		}
		res.Fixed = append(res.Fixed, f.Path)
		res.Diagnostics = append(res.Diagnostics, domain.Diagnostic{
			File:    f.Path,
			Code:    code,
			Message: what,
		})
	}
	return res
}

func trailingWhitespace(ctx context.Context, req Request) Result {
	return fixEachFile(ctx, req, "W291", "trailing whitespace removed", func(content string) string {
		lines, finalNL := splitLines(content)
		for i, line := range lines {
			lines[i] = strings.TrimRight(line, " \t")
		}
		return joinLines(lines, finalNL)
	})
}

func endOfFileFixer(ctx context.Context, req Request) Result {
	return fixEachFile(ctx, req, "W292", "missing or excess final newline fixed", func(content string) string {
		if content == "" {
			return ""
		}
		trimmed := strings.TrimRight(content, "\n")
		if trimmed == "" {
			// Whitespace-only file collapses to a single newline.
			return "\n"
		}
		return trimmed + "\n"
	})
}

// maxConsecutiveBlank is the blank-line run length excess-blank-lines
// collapses to.
const maxConsecutiveBlank = 2

func excessBlankLines(ctx context.Context, req Request) Result {
	return fixEachFile(ctx, req, "E303", "excess blank lines collapsed", func(content string) string {
		lines, finalNL := splitLines(content)
		var out []string
		blanks := 0
		for _, line := range lines {
			if isBlank(line) {
				blanks++
				if blanks > maxConsecutiveBlank {
					continue
				}
			} else {
				blanks = 0
			}
			out = append(out, line)
		}
		return joinLines(out, finalNL)
	})
}

func mixedIndentation(ctx context.Context, req Request) Result {
	width, err := strconv.Atoi(req.Spec.Arg("indent-width", "4"))
	if err != nil || width <= 0 {
		return errResult(fmt.Errorf("invalid indent-width %q", req.Spec.Arg("indent-width", "4")))
	}
	indent := strings.Repeat(" ", width)

	return fixEachFile(ctx, req, "E101", "tab indentation replaced with spaces", func(content string) string {
		lines, finalNL := splitLines(content)
		for i, line := range lines {
			lines[i] = expandLeadingTabs(line, indent)
		}
		return joinLines(lines, finalNL)
	})
}

// expandLeadingTabs replaces tabs in the leading whitespace only; tabs
// embedded in content (string literals, tables) are left alone.
func expandLeadingTabs(line, indent string) string {
	i := 0
	for i < len(line) && (line[i] == ' ' || line[i] == '\t') {
		i++
	}
	lead := strings.ReplaceAll(line[:i], "\t", indent)
	return lead + line[i:]
}
