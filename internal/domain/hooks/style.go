package hooks

import (
	"context"
	"fmt"
	"regexp"
	"sort"
	"strconv"
	"strings"
	"unicode/utf8"

	"github.com/commitgate/commitgate/internal/domain"
)

// styleRules is a whitespace/line-length checker restricted to an explicit
// list of rule codes, not a full style catalog. Supported codes:
//
//	E101  indentation mixes tabs and spaces
//	W191  indentation contains tabs
//	W291  trailing whitespace
//	W293  whitespace on blank line
//	W391  blank line at end of file
//	E501  line too long
//
// Lines may carry a "# noqa: CODE[,CODE...]" annotation to suppress the
// named codes; a blanket "# noqa" suppresses them all (and is itself the
// blanket-suppression hook's problem).

const defaultMaxLineLength = 110

var supportedStyleCodes = []string{"E101", "W191", "W291", "W293", "W391", "E501"}

type styleViolation struct {
	Line int
	Code string
	Msg  string
}

// lineStyleCodes returns the codes violated by a single line.
func lineStyleCodes(line string, maxLen int) []styleViolation {
	var out []styleViolation

	lead := leadingWhitespace(line)
	blank := isBlank(line)

	if strings.Contains(lead, "\t") && strings.Contains(lead, " ") {
		out = append(out, styleViolation{Code: "E101", Msg: "indentation contains mixed spaces and tabs"})
	}
	if strings.Contains(lead, "\t") && !blank {
		out = append(out, styleViolation{Code: "W191", Msg: "indentation contains tabs"})
	}
	if blank && line != "" {
		out = append(out, styleViolation{Code: "W293", Msg: "whitespace on blank line"})
	} else if strings.TrimRight(line, " \t") != line {
		out = append(out, styleViolation{Code: "W291", Msg: "trailing whitespace"})
	}
	if n := utf8.RuneCountInString(line); n > maxLen {
		out = append(out, styleViolation{Code: "E501", Msg: fmt.Sprintf("line too long (%d > %d characters)", n, maxLen)})
	}
	return out
}

func leadingWhitespace(line string) string {
	i := 0
	for i < len(line) && (line[i] == ' ' || line[i] == '\t') {
		i++
	}
	return line[:i]
}

// fileStyleViolations evaluates a whole file, honoring noqa annotations.
func fileStyleViolations(content string, selected map[string]bool, maxLen int) []styleViolation {
	lines, _ := splitLines(content)
	var out []styleViolation

	for i, line := range lines {
		suppressed, blanket := parseSuppression(line)
		for _, v := range lineStyleCodes(line, maxLen) {
			if !selected[v.Code] || blanket || suppressed[v.Code] {
				continue
			}
			v.Line = i + 1
			out = append(out, v)
		}
	}

	// W391: trailing blank lines at end of file.
	if selected["W391"] && len(lines) > 0 && isBlank(lines[len(lines)-1]) {
		out = append(out, styleViolation{
			Line: len(lines),
			Code: "W391",
			Msg:  "blank line at end of file",
		})
	}

	return out
}

var suppressionAnnotationRe = regexp.MustCompile(`\s*#\s*noqa(:\s*([A-Za-z0-9, ]+))?\s*$`)

// parseSuppression extracts a trailing noqa annotation. blanket is true for
// a bare "# noqa" with no code list.
func parseSuppression(line string) (codes map[string]bool, blanket bool) {
	m := suppressionAnnotationRe.FindStringSubmatch(line)
	if m == nil {
		return nil, false
	}
	if m[1] == "" {
		return nil, true
	}
	codes = make(map[string]bool)
	for _, c := range strings.Split(m[2], ",") {
		c = strings.TrimSpace(strings.ToUpper(c))
		if c != "" {
			codes[c] = true
		}
	}
	return codes, false
}

func styleArgs(spec domain.HookSpec) (selected map[string]bool, maxLen int, count bool, err error) {
	selected = make(map[string]bool)
	raw := spec.Arg("select", strings.Join(supportedStyleCodes, ","))
	for _, c := range strings.Split(raw, ",") {
		c = strings.TrimSpace(strings.ToUpper(c))
		if c == "" {
			continue
		}
		if !isSupportedStyleCode(c) {
			return nil, 0, false, fmt.Errorf("unsupported style rule code %q", c)
		}
		selected[c] = true
	}

	maxLen = defaultMaxLineLength
	if v := spec.Arg("max-line-length", ""); v != "" {
		maxLen, err = strconv.Atoi(v)
		if err != nil || maxLen <= 0 {
			return nil, 0, false, fmt.Errorf("invalid max-line-length %q", v)
		}
	}

	count = spec.Arg("count", "") == "true"
	return selected, maxLen, count, nil
}

func isSupportedStyleCode(code string) bool {
	for _, c := range supportedStyleCodes {
		if c == code {
			return true
		}
	}
	return false
}

func styleRules(ctx context.Context, req Request) Result {
	selected, maxLen, count, err := styleArgs(req.Spec)
	if err != nil {
		return errResult(err)
	}

	var res Result
	perCode := make(map[string]int)
	total := 0

	for _, f := range req.Files {
		if r, done := cancelled(ctx); done {
			return r
		}
		data, err := readText(req.Root, f.Path)
		if err != nil {
			return errResult(err)
		}
		for _, v := range fileStyleViolations(string(data), selected, maxLen) {
			res.Diagnostics = append(res.Diagnostics, domain.Diagnostic{
				File:    f.Path,
				Line:    v.Line,
				Code:    v.Code,
				Message: v.Msg,
			})
			perCode[v.Code]++
			total++
		}
	}

	if count && total > 0 {
		codes := make([]string, 0, len(perCode))
		for c := range perCode {
			codes = append(codes, c)
		}
		sort.Strings(codes)
		parts := make([]string, len(codes))
		for i, c := range codes {
			parts[i] = fmt.Sprintf("%s: %d", c, perCode[c])
		}
		res.Diagnostics = append(res.Diagnostics, domain.Diagnostic{
			Code:    "COUNT",
			Message: fmt.Sprintf("%s (%d total)", strings.Join(parts, ", "), total),
		})
	}

	return res
}
