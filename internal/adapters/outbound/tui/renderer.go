package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/commitgate/commitgate/internal/domain"
)

// ── warm amber palette ──
var (
	accent    = lipgloss.Color("#D97706") // amber
	fg        = lipgloss.Color("#E8E6E3") // warm light gray
	dim       = lipgloss.Color("#6B7280") // muted gray
	faint     = lipgloss.Color("#3F3F46") // very dim
	success   = lipgloss.Color("#22C55E") // green
	danger    = lipgloss.Color("#EF4444") // red
	warning   = lipgloss.Color("#F59E0B") // amber-yellow
	skipColor = lipgloss.Color("#4B5563") // dark gray
)

var (
	headerStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(accent).
			Align(lipgloss.Center)

	boxStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(accent).
			Padding(1, 4).
			Align(lipgloss.Center).
			Width(68)

	dimStyle   = lipgloss.NewStyle().Foreground(dim)
	faintStyle = lipgloss.NewStyle().Foreground(faint)
	passStyle  = lipgloss.NewStyle().Foreground(success)
	failStyle  = lipgloss.NewStyle().Foreground(danger)
	warnStyle  = lipgloss.NewStyle().Foreground(warning)
	skipStyle  = lipgloss.NewStyle().Foreground(skipColor)
	fileStyle  = lipgloss.NewStyle().Foreground(dim)
	titleStyle = lipgloss.NewStyle().Bold(true).Foreground(fg)

	separatorLine = faintStyle.Render(strings.Repeat("─", 64))
)

func outcomeStyle(o domain.Outcome) lipgloss.Style {
	switch o {
	case domain.OutcomePass:
		return passStyle
	case domain.OutcomeSkipped:
		return skipStyle
	case domain.OutcomeFixed:
		return warnStyle
	default:
		return failStyle
	}
}

func outcomeGlyph(o domain.Outcome) string {
	switch o {
	case domain.OutcomePass:
		return "✓"
	case domain.OutcomeSkipped:
		return "·"
	case domain.OutcomeFixed:
		return "±"
	case domain.OutcomeError:
		return "!"
	default:
		return "✗"
	}
}
