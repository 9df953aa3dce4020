package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/commitgate/commitgate/internal/domain"
)

const maxDiagnosticsPerHook = 20

// RenderRunResult renders a gate run as a styled TUI string.
func RenderRunResult(result *domain.RunResult) string {
	var b strings.Builder

	verdict := passStyle.Render("PASSED")
	if result.Failed() {
		verdict = failStyle.Render("FAILED")
	}
	title := headerStyle.Render("commitgate")
	subtitle := dimStyle.Render("Commit Gate")
	b.WriteString(boxStyle.Render(title + "\n" + subtitle + "\n\n" + lipgloss.NewStyle().Bold(true).Render(verdict)))
	b.WriteString("\n\n")

	for _, hr := range result.Results {
		renderHookResult(&b, hr)
	}

	b.WriteString("\n  " + separatorLine + "\n")
	counts := result.Counts()
	b.WriteString("  " + dimStyle.Render(fmt.Sprintf(
		"%d passed · %d skipped · %d fixed · %d failed · %d errored",
		counts[domain.OutcomePass], counts[domain.OutcomeSkipped],
		counts[domain.OutcomeFixed], counts[domain.OutcomeFail],
		counts[domain.OutcomeError])))
	b.WriteString("\n")

	if anyFixed(result) {
		b.WriteString("  " + dimStyle.Render("Files were rewritten in place; review and re-run the gate.") + "\n")
	}

	return b.String()
}

func renderHookResult(b *strings.Builder, hr domain.HookResult) {
	style := outcomeStyle(hr.Outcome)
	name := titleStyle.Render(hr.Hook.DisplayName())
	detail := fmt.Sprintf("%-7s", hr.Outcome)
	line := fmt.Sprintf("  %s %-36s %s", style.Render(outcomeGlyph(hr.Outcome)), name, style.Render(detail))

	switch {
	case hr.Outcome == domain.OutcomeSkipped:
		line += "  " + faintStyle.Render("(no files)")
	case len(hr.FixedFiles) > 0:
		line += "  " + dimStyle.Render(fmt.Sprintf("%d file(s) rewritten", len(hr.FixedFiles)))
	default:
		line += "  " + faintStyle.Render(fmt.Sprintf("(%d files)", hr.Matched))
	}
	b.WriteString(line + "\n")

	for i, d := range hr.Diagnostics {
		if i == maxDiagnosticsPerHook {
			b.WriteString("      " + dimStyle.Render(fmt.Sprintf("… and %d more", len(hr.Diagnostics)-i)) + "\n")
			break
		}
		b.WriteString("      " + renderDiagnostic(d) + "\n")
	}
}

func renderDiagnostic(d domain.Diagnostic) string {
	loc := d.File
	if d.Line > 0 {
		loc = fmt.Sprintf("%s:%d", d.File, d.Line)
	}
	var parts []string
	if loc != "" {
		parts = append(parts, fileStyle.Render(loc))
	}
	if d.Code != "" {
		parts = append(parts, warnStyle.Render(d.Code))
	}
	parts = append(parts, d.Message)
	return strings.Join(parts, "  ")
}

// RenderHookList renders the configured hooks for `commitgate list`.
func RenderHookList(cfg domain.GateConfig) string {
	var b strings.Builder
	b.WriteString("  " + titleStyle.Render("Configured hooks") + "\n\n")
	for _, h := range cfg.Hooks {
		stage := faintStyle.Render(string(h.EffectiveStage()))
		b.WriteString(fmt.Sprintf("  %s %-28s %s\n", dimStyle.Render("●"), h.DisplayName(), stage))
		if len(h.Types) > 0 {
			b.WriteString("      " + faintStyle.Render("types: "+strings.Join(h.Types, ", ")) + "\n")
		}
		if h.Include != "" {
			b.WriteString("      " + faintStyle.Render("include: "+h.Include) + "\n")
		}
		if h.Exclude != "" {
			b.WriteString("      " + faintStyle.Render("exclude: "+h.Exclude) + "\n")
		}
	}
	return b.String()
}

func anyFixed(result *domain.RunResult) bool {
	for _, hr := range result.Results {
		if hr.Outcome == domain.OutcomeFixed {
			return true
		}
	}
	return false
}
