package hooks

import (
	"context"
	"fmt"
	"regexp"
	"strings"

	"github.com/commitgate/commitgate/internal/domain"
)

// Content policy checkers: forbid specific substrings or patterns. These
// never rewrite; every match fails the hook with file:line context.

// checkEachLine runs a per-line predicate over every file and reports one
// diagnostic per offending line.
func checkEachLine(ctx context.Context, req Request, check func(line string) (code, msg string, bad bool)) Result {
	var res Result
	for _, f := range req.Files {
		if r, done := cancelled(ctx); done {
			return r
		}
		data, err := readText(req.Root, f.Path)
		if err != nil {
			return errResult(err)
		}

		lines, _ := splitLines(string(data))
		for i, line := range lines {
			if code, msg, bad := check(line); bad {
				res.Diagnostics = append(res.Diagnostics, domain.Diagnostic{
					File:    f.Path,
					Line:    i + 1,
					Code:    code,
					Message: msg,
				})
			}
		}
	}
	return res
}

var conflictMarkers = []string{"<<<<<<< ", ">>>>>>> ", "||||||| "}

func checkMergeConflict(ctx context.Context, req Request) Result {
	return checkEachLine(ctx, req, func(line string) (string, string, bool) {
		for _, m := range conflictMarkers {
			if strings.HasPrefix(line, m) {
				return "C100", fmt.Sprintf("merge conflict marker %q", strings.TrimSpace(m)), true
			}
		}
		if line == "=======" {
			return "C100", `merge conflict marker "======="`, true
		}
		return "", "", false
	})
}

// keyRule is a secret-material pattern the gate refuses to let through.
type keyRule struct {
	id      string
	desc    string
	pattern *regexp.Regexp
}

var keyRules = []keyRule{
	{
		id:      "private-key",
		desc:    "private key material",
		pattern: regexp.MustCompile(`-----BEGIN (?:RSA |DSA |EC |OPENSSH |ENCRYPTED |PGP )?PRIVATE KEY(?:[- ]BLOCK)?-----`),
	},
	{
		id:      "putty-key",
		desc:    "PuTTY private key material",
		pattern: regexp.MustCompile(`PuTTY-User-Key-File-\d`),
	},
}

func detectPrivateKey(ctx context.Context, req Request) Result {
	return checkEachLine(ctx, req, func(line string) (string, string, bool) {
		for _, r := range keyRules {
			if r.pattern.MatchString(line) {
				return "C101", r.desc + " detected (" + r.id + ")", true
			}
		}
		return "", "", false
	})
}

func unicodeReplacementChar(ctx context.Context, req Request) Result {
	return checkEachLine(ctx, req, func(line string) (string, string, bool) {
		if strings.ContainsRune(line, '�') {
			return "C102", "unicode replacement character U+FFFD (mis-decoded text)", true
		}
		return "", "", false
	})
}

var defaultDebugPatterns = []string{
	`\bpdb\.set_trace\(`,
	`\bipdb\.set_trace\(`,
	`\bbreakpoint\(\)`,
}

func debugStatements(ctx context.Context, req Request) Result {
	patterns := defaultDebugPatterns
	if raw := req.Spec.Arg("patterns", ""); raw != "" {
		patterns = strings.Split(raw, ";")
	}
	res := make([]*regexp.Regexp, 0, len(patterns))
	for _, p := range patterns {
		re, err := regexp.Compile(p)
		if err != nil {
			return errResult(fmt.Errorf("invalid debug pattern %q: %w", p, err))
		}
		res = append(res, re)
	}

	return checkEachLine(ctx, req, func(line string) (string, string, bool) {
		for _, re := range res {
			if m := re.FindString(line); m != "" {
				return "C103", "debugging statement " + strings.TrimSpace(m), true
			}
		}
		return "", "", false
	})
}

var bareExceptRe = regexp.MustCompile(`^\s*except\s*:`)

func bareErrorHandler(ctx context.Context, req Request) Result {
	return checkEachLine(ctx, req, func(line string) (string, string, bool) {
		if bareExceptRe.MatchString(line) {
			return "C104", "bare error handler (catch a specific exception type)", true
		}
		return "", "", false
	})
}

var suppressionRes = []*regexp.Regexp{
	regexp.MustCompile(`#\s*noqa\b`),
	regexp.MustCompile(`//\s*nolint\b`),
}

// blanketSuppression flags suppression annotations carrying no explicit
// rule code: a blanket "# noqa" or "//nolint" hides every future violation
// on that line, not just the one it was written for.
func blanketSuppression(ctx context.Context, req Request) Result {
	return checkEachLine(ctx, req, func(line string) (string, string, bool) {
		for _, re := range suppressionRes {
			loc := re.FindStringIndex(line)
			if loc == nil {
				continue
			}
			rest := line[loc[1]:]
			if !strings.HasPrefix(rest, ":") {
				return "C105", "blanket suppression without rule code: " + strings.TrimSpace(line[loc[0]:]), true
			}
			if strings.TrimSpace(strings.TrimPrefix(rest, ":")) == "" {
				return "C105", "suppression with empty rule code list", true
			}
		}
		return "", "", false
	})
}
