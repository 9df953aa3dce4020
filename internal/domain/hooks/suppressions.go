package hooks

import (
	"context"
	"sort"
	"strings"
)

// unusedSuppressions removes noqa annotations whose listed rule codes would
// not fire on the annotated line. It re-evaluates the line with the
// annotation stripped: codes that still fire are kept, the rest are
// dropped, and an annotation left with nothing to suppress is removed
// entirely. Blanket annotations are removed when no supported code fires
// at all.
func unusedSuppressions(ctx context.Context, req Request) Result {
	maxLen := defaultMaxLineLength

	return fixEachFile(ctx, req, "U101", "unused suppression annotations removed", func(content string) string {
		lines, finalNL := splitLines(content)
		for i, line := range lines {
			lines[i] = pruneSuppression(line, maxLen)
		}
		return joinLines(lines, finalNL)
	})
}

// pruneSuppression rewrites one line's noqa annotation down to the codes
// that actually fire, or strips it.
func pruneSuppression(line string, maxLen int) string {
	loc := suppressionAnnotationRe.FindStringIndex(line)
	if loc == nil {
		return line
	}
	listed, blanket := parseSuppression(line)

	bare := strings.TrimRight(line[:loc[0]], " \t")
	firing := make(map[string]bool)
	for _, v := range lineStyleCodes(bare, maxLen) {
		firing[v.Code] = true
	}

	if blanket {
		if len(firing) == 0 {
			return bare
		}
		return line
	}

	var keep []string
	for c := range listed {
		// Codes outside the style engine's vocabulary are kept: we cannot
		// prove them unused.
		if firing[c] || !isSupportedStyleCode(c) {
			keep = append(keep, c)
		}
	}
	if len(keep) == 0 {
		return bare
	}
	if len(keep) == len(listed) {
		return line
	}
	sort.Strings(keep)
	return bare + "  # noqa: " + strings.Join(keep, ", ")
}
