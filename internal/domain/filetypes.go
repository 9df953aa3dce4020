package domain

import (
	"path"
	"strings"
)

// ValidFileTypes enumerates the file-type filters hooks may declare.
var ValidFileTypes = []string{
	"text", "go", "python", "yaml", "toml", "json", "rst", "markdown",
}

var typeExtensions = map[string][]string{
	"go":       {".go"},
	"python":   {".py"},
	"yaml":     {".yaml", ".yml"},
	"toml":     {".toml"},
	"json":     {".json"},
	"rst":      {".rst"},
	"markdown": {".md", ".markdown"},
}

// FileType classifies a path by extension. Unrecognized extensions are
// plain "text".
func FileType(p string) string {
	ext := strings.ToLower(path.Ext(p))
	for t, exts := range typeExtensions {
		for _, e := range exts {
			if ext == e {
				return t
			}
		}
	}
	return "text"
}

// matchesAnyType reports whether the path satisfies at least one declared
// type filter. "text" matches every file: the gate only ever sees text
// files, binary content is excluded by configuration.
func matchesAnyType(p string, types []string) bool {
	ft := FileType(p)
	for _, t := range types {
		if t == "text" || t == ft {
			return true
		}
	}
	return false
}

// IsValidFileType reports whether the named type filter is recognized.
func IsValidFileType(name string) bool {
	for _, t := range ValidFileTypes {
		if t == name {
			return true
		}
	}
	return false
}
