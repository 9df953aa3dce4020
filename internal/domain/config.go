package domain

import (
	"fmt"
	"regexp"
	"time"
)

// ValidHookIDs enumerates the built-in hooks the gate knows how to run.
var ValidHookIDs = []string{
	// structural file validators
	"check-yaml", "check-toml", "check-json", "check-go-syntax",
	// hygiene fixers
	"trailing-whitespace", "end-of-file-fixer",
	"excess-blank-lines", "mixed-indentation",
	// content policy checkers
	"check-merge-conflict", "detect-private-key",
	"unicode-replacement-char", "debug-statements",
	"bare-error-handler", "blanket-suppression",
	// naming/placement policy checkers
	"changelog-fragment", "file-naming",
	// style rewriters
	"import-order", "rewrite-rules", "unused-suppressions",
	// rule-code subset checker
	"style-rules",
}

// FixerHookIDs lists the hooks that rewrite files in place.
var FixerHookIDs = []string{
	"trailing-whitespace", "end-of-file-fixer",
	"excess-blank-lines", "mixed-indentation",
	"import-order", "rewrite-rules", "unused-suppressions",
}

// Settings holds run-level configuration shared by all hooks.
type Settings struct {
	// Jobs bounds how many checker hooks run concurrently. Fixers always
	// run sequentially. Zero means one worker per CPU.
	Jobs int `yaml:"jobs,omitempty" json:"jobs,omitempty"`

	// HookTimeout bounds a single hook invocation. A hook exceeding it is
	// recorded as a tool-execution failure; the other hooks still run.
	HookTimeout time.Duration `yaml:"hook_timeout,omitempty" json:"hook_timeout,omitempty"`

	// Exclude is a path pattern excluded for every hook, on top of each
	// hook's own exclude. Used for vendored and generated content the
	// project does not own.
	Exclude string `yaml:"exclude,omitempty" json:"exclude,omitempty"`
}

// GateConfig is the full gate configuration: an ordered list of hook
// entries plus run settings. Two entries with the same ID but different
// argument sets are independent hooks.
type GateConfig struct {
	Settings Settings   `yaml:"settings,omitempty" json:"settings,omitempty"`
	Hooks    []HookSpec `yaml:"hooks"              json:"hooks"`
}

const (
	DefaultJobs        = 4
	DefaultHookTimeout = 60 * time.Second

	// Vendored source trees, generated parser tables, license text, and
	// bulk data fixtures are never checked or rewritten.
	defaultExclude = `(^|/)(extern|cextern|licenses)/|_parsetab\.py$|_lextab\.py$|(^|/)data/`
)

// DefaultConfig returns the built-in gate configuration used when no
// .commitgate.yaml is present.
func DefaultConfig() GateConfig {
	return GateConfig{
		Settings: Settings{
			Jobs:        DefaultJobs,
			HookTimeout: DefaultHookTimeout,
			Exclude:     defaultExclude,
		},
		Hooks: []HookSpec{
			{ID: "trailing-whitespace", Stage: StageFixer, Types: []string{"text"}},
			{ID: "end-of-file-fixer", Stage: StageFixer, Types: []string{"text"}},
			{ID: "excess-blank-lines", Stage: StageFixer, Types: []string{"text"}},
			{ID: "mixed-indentation", Stage: StageFixer, Types: []string{"python", "yaml"},
				Args: map[string]string{"indent-width": "4"}},
			{ID: "import-order", Stage: StageFixer, Types: []string{"python", "go"}},
			{ID: "rewrite-rules", Stage: StageFixer, Types: []string{"python"},
				Args: map[string]string{
					"rules": `typing\.List\[=list[;typing\.Dict\[=dict[;typing\.Tuple\[=tuple[`,
				}},
			{ID: "unused-suppressions", Stage: StageFixer, Types: []string{"python"}},

			{ID: "check-yaml", Types: []string{"yaml"}},
			{ID: "check-toml", Types: []string{"toml"}},
			{ID: "check-json", Types: []string{"json"}},
			{ID: "check-go-syntax", Types: []string{"go"}},
			{ID: "check-merge-conflict"},
			{ID: "detect-private-key"},
			{ID: "unicode-replacement-char", Types: []string{"text"}},
			{ID: "debug-statements", Types: []string{"python"}},
			{ID: "bare-error-handler", Types: []string{"python"}},
			{ID: "blanket-suppression", Types: []string{"python", "go"}},
			{ID: "changelog-fragment", Include: `^docs/changes/`},
			{ID: "file-naming", Types: []string{"python", "go"},
				Exclude: `(^|/)setup\.py$`},
			{ID: "style-rules", Types: []string{"python"},
				Args: map[string]string{
					"select":          "E101,W191,W291,W293,W391,E501",
					"max-line-length": "110",
					"count":           "true",
				}},
		},
	}
}

// EffectiveJobs returns the configured worker count with the default applied.
func (s Settings) EffectiveJobs() int {
	if s.Jobs > 0 {
		return s.Jobs
	}
	return DefaultJobs
}

// EffectiveTimeout returns the per-hook timeout with the default applied.
func (s Settings) EffectiveTimeout() time.Duration {
	if s.HookTimeout > 0 {
		return s.HookTimeout
	}
	return DefaultHookTimeout
}

// Validate checks the configuration for unknown hooks, invalid patterns,
// and invalid type filters, returning a descriptive error.
func (c GateConfig) Validate() error {
	if len(c.Hooks) == 0 {
		return fmt.Errorf("no hooks configured (must have at least one)")
	}

	if c.Settings.Exclude != "" {
		if _, err := regexp.Compile(c.Settings.Exclude); err != nil {
			return fmt.Errorf("invalid settings.exclude pattern: %w", err)
		}
	}
	if c.Settings.Jobs < 0 {
		return fmt.Errorf("settings.jobs must be >= 0 (got %d)", c.Settings.Jobs)
	}
	if c.Settings.HookTimeout < 0 {
		return fmt.Errorf("settings.hook_timeout must be >= 0 (got %s)", c.Settings.HookTimeout)
	}

	for i, h := range c.Hooks {
		if h.ID == "" {
			return fmt.Errorf("hooks[%d]: missing id", i)
		}
		if !isValidHookID(h.ID) {
			return fmt.Errorf("hooks[%d]: unknown hook %q", i, h.ID)
		}
		if h.Include != "" {
			if _, err := regexp.Compile(h.Include); err != nil {
				return fmt.Errorf("hooks[%d] (%s): invalid include pattern: %w", i, h.ID, err)
			}
		}
		if h.Exclude != "" {
			if _, err := regexp.Compile(h.Exclude); err != nil {
				return fmt.Errorf("hooks[%d] (%s): invalid exclude pattern: %w", i, h.ID, err)
			}
		}
		for _, t := range h.Types {
			if !IsValidFileType(t) {
				return fmt.Errorf("hooks[%d] (%s): unknown file type %q", i, h.ID, t)
			}
		}
		if h.Stage != "" && h.Stage != StageFixer && h.Stage != StageChecker {
			return fmt.Errorf("hooks[%d] (%s): unknown stage %q", i, h.ID, h.Stage)
		}
		if h.Stage == StageFixer && !isFixerHook(h.ID) {
			return fmt.Errorf("hooks[%d] (%s): hook cannot run as a fixer", i, h.ID)
		}
	}

	return nil
}

// EffectiveStage returns the stage a hook runs in, inferring it from the
// hook ID when the entry does not declare one.
func (h HookSpec) EffectiveStage() Stage {
	if h.Stage != "" {
		return h.Stage
	}
	if isFixerHook(h.ID) {
		return StageFixer
	}
	return StageChecker
}

func isValidHookID(id string) bool {
	for _, v := range ValidHookIDs {
		if v == id {
			return true
		}
	}
	return false
}

func isFixerHook(id string) bool {
	for _, v := range FixerHookIDs {
		if v == id {
			return true
		}
	}
	return false
}
