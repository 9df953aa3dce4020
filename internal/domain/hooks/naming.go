package hooks

import (
	"context"
	"fmt"
	"path"
	"strings"

	"github.com/commitgate/commitgate/internal/domain"
	"github.com/fatih/camelcase"
)

// fileNaming checks that source file basenames are snake_case. A camelCase
// or PascalCase basename splits into more than one word without containing
// an underscore, which is how we detect it without hard-coding per-language
// conventions.
func fileNaming(ctx context.Context, req Request) Result {
	var res Result
	for _, f := range req.Files {
		if r, done := cancelled(ctx); done {
			return r
		}
		base := path.Base(f.Path)
		stem := strings.TrimSuffix(base, path.Ext(base))
		if stem == "" || strings.Contains(stem, "_") || strings.Contains(stem, "-") {
			continue
		}
		words := camelcase.Split(stem)
		if len(words) <= 1 {
			continue
		}
		res.Diagnostics = append(res.Diagnostics, domain.Diagnostic{
			File: f.Path,
			Code: "N101",
			Message: fmt.Sprintf("file name %q is not snake_case (suggest %q)",
				base, strings.ToLower(strings.Join(words, "_"))+path.Ext(base)),
		})
	}
	return res
}
