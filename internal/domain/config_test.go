package domain_test

import (
	"testing"
	"time"

	"github.com/commitgate/commitgate/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultConfig_IsValid(t *testing.T) {
	cfg := domain.DefaultConfig()
	require.NoError(t, cfg.Validate())
	assert.Len(t, cfg.Hooks, 20)
}

func TestDefaultConfig_FixersDeclaredFirst(t *testing.T) {
	cfg := domain.DefaultConfig()

	seenChecker := false
	for _, h := range cfg.Hooks {
		if h.EffectiveStage() == domain.StageChecker {
			seenChecker = true
			continue
		}
		assert.False(t, seenChecker, "fixer %s listed after a checker", h.ID)
	}
}

func TestValidate_NoHooks(t *testing.T) {
	cfg := domain.GateConfig{}
	err := cfg.Validate()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "no hooks")
}

func TestValidate_UnknownHookID(t *testing.T) {
	cfg := domain.GateConfig{Hooks: []domain.HookSpec{{ID: "fix-everything"}}}
	err := cfg.Validate()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "fix-everything")
}

func TestValidate_MissingID(t *testing.T) {
	cfg := domain.GateConfig{Hooks: []domain.HookSpec{{Include: `\.py$`}}}
	err := cfg.Validate()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "missing id")
}

func TestValidate_BadIncludePattern(t *testing.T) {
	cfg := domain.GateConfig{Hooks: []domain.HookSpec{{ID: "check-yaml", Include: `([`}}}
	err := cfg.Validate()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "include pattern")
}

func TestValidate_BadExcludePattern(t *testing.T) {
	cfg := domain.GateConfig{Hooks: []domain.HookSpec{{ID: "check-yaml", Exclude: `([`}}}
	err := cfg.Validate()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "exclude pattern")
}

func TestValidate_BadGlobalExclude(t *testing.T) {
	cfg := domain.GateConfig{
		Settings: domain.Settings{Exclude: `([`},
		Hooks:    []domain.HookSpec{{ID: "check-yaml"}},
	}
	err := cfg.Validate()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "settings.exclude")
}

func TestValidate_UnknownFileType(t *testing.T) {
	cfg := domain.GateConfig{Hooks: []domain.HookSpec{{ID: "check-yaml", Types: []string{"fortran"}}}}
	err := cfg.Validate()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "fortran")
}

func TestValidate_UnknownStage(t *testing.T) {
	cfg := domain.GateConfig{Hooks: []domain.HookSpec{{ID: "check-yaml", Stage: "cleanup"}}}
	err := cfg.Validate()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unknown stage")
}

func TestValidate_CheckerCannotBeFixer(t *testing.T) {
	cfg := domain.GateConfig{Hooks: []domain.HookSpec{{ID: "check-yaml", Stage: domain.StageFixer}}}
	err := cfg.Validate()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "cannot run as a fixer")
}

func TestValidate_NegativeSettings(t *testing.T) {
	cfg := domain.GateConfig{
		Settings: domain.Settings{Jobs: -1},
		Hooks:    []domain.HookSpec{{ID: "check-yaml"}},
	}
	assert.Error(t, cfg.Validate())

	cfg = domain.GateConfig{
		Settings: domain.Settings{HookTimeout: -time.Second},
		Hooks:    []domain.HookSpec{{ID: "check-yaml"}},
	}
	assert.Error(t, cfg.Validate())
}

func TestValidate_DuplicateIDsAllowed(t *testing.T) {
	cfg := domain.GateConfig{Hooks: []domain.HookSpec{
		{ID: "style-rules", Args: map[string]string{"select": "E501"}},
		{ID: "style-rules", Args: map[string]string{"select": "W291"}},
	}}
	assert.NoError(t, cfg.Validate())
}

func TestSettings_Effective(t *testing.T) {
	var s domain.Settings
	assert.Equal(t, domain.DefaultJobs, s.EffectiveJobs())
	assert.Equal(t, domain.DefaultHookTimeout, s.EffectiveTimeout())

	s = domain.Settings{Jobs: 8, HookTimeout: 5 * time.Second}
	assert.Equal(t, 8, s.EffectiveJobs())
	assert.Equal(t, 5*time.Second, s.EffectiveTimeout())
}

func TestHookSpec_EffectiveStage(t *testing.T) {
	assert.Equal(t, domain.StageFixer, domain.HookSpec{ID: "trailing-whitespace"}.EffectiveStage())
	assert.Equal(t, domain.StageChecker, domain.HookSpec{ID: "check-yaml"}.EffectiveStage())
	assert.Equal(t, domain.StageChecker,
		domain.HookSpec{ID: "trailing-whitespace", Stage: domain.StageChecker}.EffectiveStage())
}
