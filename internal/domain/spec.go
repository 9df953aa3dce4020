package domain

import (
	"fmt"
	"regexp"
)

// HookSpec identifies a single check or fixer. Immutable once loaded for a
// run; a configuration revision is reloaded entirely, never patched.
type HookSpec struct {
	ID      string            `yaml:"id"                json:"id"`
	Name    string            `yaml:"name,omitempty"    json:"name,omitempty"`
	Source  string            `yaml:"source,omitempty"  json:"source,omitempty"`
	Rev     string            `yaml:"rev,omitempty"     json:"rev,omitempty"`
	Args    map[string]string `yaml:"args,omitempty"    json:"args,omitempty"`
	Include string            `yaml:"include,omitempty" json:"include,omitempty"`
	Exclude string            `yaml:"exclude,omitempty" json:"exclude,omitempty"`
	Types   []string          `yaml:"types,omitempty"   json:"types,omitempty"`
	Stage   Stage             `yaml:"stage,omitempty"   json:"stage,omitempty"`
}

// DisplayName returns the human-facing hook name, falling back to the ID.
func (h HookSpec) DisplayName() string {
	if h.Name != "" {
		return h.Name
	}
	return h.ID
}

// Arg returns the named argument or fallback when unset.
func (h HookSpec) Arg(name, fallback string) string {
	if v, ok := h.Args[name]; ok {
		return v
	}
	return fallback
}

// Matcher is the compiled include/exclude/type filter of one hook.
// A hook only ever observes files matching include AND NOT exclude;
// exclude takes precedence even when include also matches.
type Matcher struct {
	include *regexp.Regexp
	exclude *regexp.Regexp
	global  *regexp.Regexp
	types   []string
}

// CompileMatcher compiles a hook's filter patterns. globalExclude applies to
// every hook on top of the hook's own exclude (vendored and generated
// content is never checked or rewritten regardless of other matches).
func CompileMatcher(spec HookSpec, globalExclude string) (*Matcher, error) {
	m := &Matcher{types: spec.Types}

	var err error
	if spec.Include != "" {
		if m.include, err = regexp.Compile(spec.Include); err != nil {
			return nil, fmt.Errorf("hook %s: invalid include pattern: %w", spec.ID, err)
		}
	}
	if spec.Exclude != "" {
		if m.exclude, err = regexp.Compile(spec.Exclude); err != nil {
			return nil, fmt.Errorf("hook %s: invalid exclude pattern: %w", spec.ID, err)
		}
	}
	if globalExclude != "" {
		if m.global, err = regexp.Compile(globalExclude); err != nil {
			return nil, fmt.Errorf("invalid global exclude pattern: %w", err)
		}
	}
	return m, nil
}

// Matches reports whether a single path passes the filter.
func (m *Matcher) Matches(path string) bool {
	if m.global != nil && m.global.MatchString(path) {
		return false
	}
	if m.exclude != nil && m.exclude.MatchString(path) {
		return false
	}
	if m.include != nil && !m.include.MatchString(path) {
		return false
	}
	if len(m.types) > 0 && !matchesAnyType(path, m.types) {
		return false
	}
	return true
}

// Filter selects the subset of the file set the hook observes, preserving
// order. Filtering is idempotent: Filter(Filter(fs)) == Filter(fs).
func (m *Matcher) Filter(fs FileSet) FileSet {
	var out FileSet
	for _, f := range fs {
		if m.Matches(f.Path) {
			out = append(out, f)
		}
	}
	return out
}
