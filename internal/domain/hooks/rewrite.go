package hooks

import (
	"context"
	"fmt"
	"regexp"
	"strings"
)

// rewriteRules upgrades syntax to a configured minimum-idiom form by
// applying pattern→replacement pairs until a fixed point. Rules come from
// the hook's "rules" argument as pattern=replacement pairs separated by
// semicolons, e.g.
//
//	typing\.List\[=list[;typing\.Dict\[=dict[
//
// Each rule must be contractive or self-stabilizing; the applier caps the
// number of passes to guard against a rule that never converges.

const maxRewritePasses = 10

type rewriteRule struct {
	pattern     *regexp.Regexp
	replacement string
}

func parseRewriteRules(raw string) ([]rewriteRule, error) {
	if raw == "" {
		return nil, nil
	}
	var rules []rewriteRule
	for _, pair := range strings.Split(raw, ";") {
		pat, repl, ok := strings.Cut(pair, "=")
		if !ok {
			return nil, fmt.Errorf("rewrite rule %q is not pattern=replacement", pair)
		}
		re, err := regexp.Compile(pat)
		if err != nil {
			return nil, fmt.Errorf("invalid rewrite pattern %q: %w", pat, err)
		}
		rules = append(rules, rewriteRule{pattern: re, replacement: repl})
	}
	return rules, nil
}

func rewriteRules(ctx context.Context, req Request) Result {
	rules, err := parseRewriteRules(req.Spec.Arg("rules", ""))
	if err != nil {
		return errResult(err)
	}
	if len(rules) == 0 {
		return Result{}
	}

	return fixEachFile(ctx, req, "U100", "syntax upgraded to minimum idiom", func(content string) string {
		for pass := 0; pass < maxRewritePasses; pass++ {
			next := content
			for _, r := range rules {
				next = r.pattern.ReplaceAllString(next, r.replacement)
			}
			if next == content {
				break
			}
			content = next
		}
		return content
	})
}
