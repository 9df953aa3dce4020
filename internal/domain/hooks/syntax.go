package hooks

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"go/parser"
	"go/scanner"
	"go/token"
	"io"
	"regexp"
	"strconv"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/commitgate/commitgate/internal/domain"
	"gopkg.in/yaml.v3"
)

// Structural file validators: confirm a file parses under its declared
// format, failing with a syntax-location diagnostic on parse error.

func checkYAML(ctx context.Context, req Request) Result {
	var res Result
	for _, f := range req.Files {
		if r, done := cancelled(ctx); done {
			return r
		}
		data, err := readText(req.Root, f.Path)
		if err != nil {
			return errResult(err)
		}

		dec := yaml.NewDecoder(bytes.NewReader(data))
		for {
			var doc any
			err := dec.Decode(&doc)
			if err == nil {
				continue
			}
			if errors.Is(err, io.EOF) {
				break
			}
			res.Diagnostics = append(res.Diagnostics, domain.Diagnostic{
				File:    f.Path,
				Line:    yamlErrorLine(err),
				Code:    "E901",
				Message: "invalid yaml: " + strings.TrimPrefix(err.Error(), "yaml: "),
			})
			break
		}
	}
	return res
}

var yamlLineRe = regexp.MustCompile(`line (\d+)`)

// yamlErrorLine digs the line number out of a yaml error string; the
// library does not expose positions structurally.
func yamlErrorLine(err error) int {
	m := yamlLineRe.FindStringSubmatch(err.Error())
	if m == nil {
		return 0
	}
	n, _ := strconv.Atoi(m[1])
	return n
}

func checkTOML(ctx context.Context, req Request) Result {
	var res Result
	for _, f := range req.Files {
		if r, done := cancelled(ctx); done {
			return r
		}
		data, err := readText(req.Root, f.Path)
		if err != nil {
			return errResult(err)
		}

		var doc any
		if err := toml.Unmarshal(data, &doc); err != nil {
			diag := domain.Diagnostic{
				File:    f.Path,
				Code:    "E902",
				Message: "invalid toml: " + err.Error(),
			}
			var pe toml.ParseError
			if errors.As(err, &pe) {
				diag.Line = pe.Position.Line
				diag.Message = "invalid toml: " + pe.Message
			}
			res.Diagnostics = append(res.Diagnostics, diag)
		}
	}
	return res
}

func checkJSON(ctx context.Context, req Request) Result {
	var res Result
	for _, f := range req.Files {
		if r, done := cancelled(ctx); done {
			return r
		}
		data, err := readText(req.Root, f.Path)
		if err != nil {
			return errResult(err)
		}

		var doc any
		if err := json.Unmarshal(data, &doc); err != nil {
			diag := domain.Diagnostic{
				File:    f.Path,
				Code:    "E903",
				Message: "invalid json: " + err.Error(),
			}
			var se *json.SyntaxError
			if errors.As(err, &se) {
				diag.Line, diag.Col = offsetToPosition(data, se.Offset)
			}
			res.Diagnostics = append(res.Diagnostics, diag)
		}
	}
	return res
}

// offsetToPosition converts a byte offset into 1-based line and column.
func offsetToPosition(data []byte, offset int64) (line, col int) {
	line, col = 1, 1
	for i := int64(0); i < offset && i < int64(len(data)); i++ {
		if data[i] == '\n' {
			line++
			col = 1
		} else {
			col++
		}
	}
	return line, col
}

func checkGoSyntax(ctx context.Context, req Request) Result {
	var res Result
	fset := token.NewFileSet()
	for _, f := range req.Files {
		if r, done := cancelled(ctx); done {
			return r
		}
		data, err := readText(req.Root, f.Path)
		if err != nil {
			return errResult(err)
		}

		_, err = parser.ParseFile(fset, f.Path, data, parser.AllErrors)
		if err == nil {
			continue
		}

		var list scanner.ErrorList
		if errors.As(err, &list) && len(list) > 0 {
			first := list[0]
			res.Diagnostics = append(res.Diagnostics, domain.Diagnostic{
				File:    f.Path,
				Line:    first.Pos.Line,
				Col:     first.Pos.Column,
				Code:    "E904",
				Message: "invalid go syntax: " + first.Msg,
			})
			continue
		}
		res.Diagnostics = append(res.Diagnostics, domain.Diagnostic{
			File:    f.Path,
			Code:    "E904",
			Message: "invalid go syntax: " + err.Error(),
		})
	}
	return res
}
