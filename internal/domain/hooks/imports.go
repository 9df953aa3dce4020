package hooks

import (
	"context"
	"regexp"
	"sort"
	"strings"
)

// importOrder normalizes import statement ordering. It sorts each maximal
// contiguous block of single-line import statements, and the interior of
// grouped go import blocks, lexicographically. Sorting is idempotent, so
// the fixer reaches a fixed point in one application.

var importLineRe = regexp.MustCompile(`^\s*(import\s+\S|from\s+\S+\s+import\s)`)

func importOrder(ctx context.Context, req Request) Result {
	return fixEachFile(ctx, req, "I100", "import ordering normalized", func(content string) string {
		lines, finalNL := splitLines(content)
		sortImportRuns(lines)
		sortGoImportGroups(lines)
		return joinLines(lines, finalNL)
	})
}

// sortImportRuns sorts contiguous runs of single-line import statements.
func sortImportRuns(lines []string) {
	start := -1
	flush := func(end int) {
		if start >= 0 && end-start > 1 {
			sort.Strings(lines[start:end])
		}
		start = -1
	}
	for i, line := range lines {
		if importLineRe.MatchString(line) && !strings.HasSuffix(strings.TrimRight(line, " \t"), "(") {
			if start < 0 {
				start = i
			}
			continue
		}
		flush(i)
	}
	flush(len(lines))
}

// sortGoImportGroups sorts each blank-line-separated group inside a grouped
// go import declaration.
func sortGoImportGroups(lines []string) {
	inBlock := false
	start := -1
	flush := func(end int) {
		if start >= 0 && end-start > 1 {
			sort.Strings(lines[start:end])
		}
		start = -1
	}
	for i, line := range lines {
		trimmed := strings.TrimSpace(line)
		switch {
		case !inBlock && (trimmed == "import (" || strings.HasPrefix(trimmed, "import (")):
			inBlock = true
		case inBlock && trimmed == ")":
			flush(i)
			inBlock = false
		case inBlock && trimmed == "":
			flush(i)
		case inBlock:
			if start < 0 {
				start = i
			}
		}
	}
}
