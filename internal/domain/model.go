package domain

import "time"

// Outcome classifies the result of running one hook over its matched files.
type Outcome string

const (
	OutcomePass    Outcome = "pass"
	OutcomeSkipped Outcome = "skipped"
	OutcomeFail    Outcome = "fail"
	OutcomeFixed   Outcome = "fixed"
	OutcomeError   Outcome = "error"
)

// Failing reports whether the outcome fails the overall run. Fixed counts as
// a failure: the rewritten files must be re-submitted and re-checked.
func (o Outcome) Failing() bool {
	return o == OutcomeFail || o == OutcomeFixed || o == OutcomeError
}

// Stage determines execution ordering. Fixers rewrite files in place and run
// sequentially before checkers, so no two hooks ever write the same file
// concurrently.
type Stage string

const (
	StageFixer   Stage = "fixer"
	StageChecker Stage = "checker"
)

// File is a single path under evaluation, with its VCS added status as
// supplied by the caller. Paths are slash-separated and relative to the
// gate's working-tree root.
type File struct {
	Path  string `json:"path"`
	Added bool   `json:"added,omitempty"`
}

// FileSet is the ordered collection of files under consideration for a run.
// The gate never discovers files itself; the set is supplied externally.
type FileSet []File

// Paths returns the bare paths of the set, preserving order.
func (fs FileSet) Paths() []string {
	out := make([]string, len(fs))
	for i, f := range fs {
		out[i] = f.Path
	}
	return out
}

// NewFileSet wraps bare paths into a FileSet with no added status.
func NewFileSet(paths []string) FileSet {
	fs := make(FileSet, len(paths))
	for i, p := range paths {
		fs[i] = File{Path: p}
	}
	return fs
}

// Diagnostic is a single violation or failure message with location context.
type Diagnostic struct {
	File    string `json:"file"`
	Line    int    `json:"line,omitempty"`
	Col     int    `json:"col,omitempty"`
	Code    string `json:"code,omitempty"`
	Message string `json:"message"`
}

// HookResult records the outcome of one hook for one run.
type HookResult struct {
	Hook        HookSpec      `json:"hook"`
	Outcome     Outcome       `json:"outcome"`
	Diagnostics []Diagnostic  `json:"diagnostics,omitempty"`
	FixedFiles  []string      `json:"fixed_files,omitempty"`
	Matched     int           `json:"matched"`
	Duration    time.Duration `json:"duration_ns"`
}

// RunResult maps the configured hooks, in order, to their outcomes.
// Produced fresh each invocation; the gate persists nothing itself.
type RunResult struct {
	Root      string       `json:"root"`
	Results   []HookResult `json:"results"`
	Timestamp time.Time    `json:"timestamp"`
}

// Failed reports whether any hook fails the run.
func (r *RunResult) Failed() bool {
	for _, hr := range r.Results {
		if hr.Outcome.Failing() {
			return true
		}
	}
	return false
}

// Counts returns the number of results per outcome.
func (r *RunResult) Counts() map[Outcome]int {
	counts := make(map[Outcome]int, 5)
	for _, hr := range r.Results {
		counts[hr.Outcome]++
	}
	return counts
}
