package hooks

import "strings"

// splitLines splits content into lines without their terminators, reporting
// whether the content ended with a final newline so fixers can preserve it.
func splitLines(content string) (lines []string, hadFinalNewline bool) {
	if content == "" {
		return nil, false
	}
	hadFinalNewline = strings.HasSuffix(content, "\n")
	trimmed := strings.TrimSuffix(content, "\n")
	return strings.Split(trimmed, "\n"), hadFinalNewline
}

// joinLines is the inverse of splitLines.
func joinLines(lines []string, finalNewline bool) string {
	if len(lines) == 0 {
		if finalNewline {
			return "\n"
		}
		return ""
	}
	s := strings.Join(lines, "\n")
	if finalNewline {
		s += "\n"
	}
	return s
}

// isBlank reports whether a line contains only whitespace.
func isBlank(line string) bool {
	return strings.TrimRight(line, " \t") == ""
}
