package results

import (
	"fmt"
	"image/color"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/wichai/compass/internal/catalog"
	"github.com/wichai/compass/internal/router"
	"github.com/wichai/compass/internal/screen"
	"github.com/wichai/compass/internal/scoring"
	"github.com/wichai/compass/internal/submission"
	"github.com/wichai/compass/internal/ui/layout"
	"github.com/wichai/compass/internal/ui/theme"
)

// ResultsScreen displays dimension and overall scores for one assessment.
type ResultsScreen struct {
	result scoring.Result
	record submission.Submission
}

var _ screen.Screen = (*ResultsScreen)(nil)
var _ screen.KeyHintProvider = (*ResultsScreen)(nil)

// New creates a ResultsScreen.
func New(result scoring.Result, record submission.Submission) *ResultsScreen {
	return &ResultsScreen{result: result, record: record}
}

func (s *ResultsScreen) Init() tea.Cmd {
	return nil
}

func (s *ResultsScreen) Title() string {
	return "Results"
}

func (s *ResultsScreen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "Enter", Description: "Home"},
	}
}

func (s *ResultsScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	if kmsg, ok := msg.(tea.KeyMsg); ok {
		switch kmsg.String() {
		case "enter", "esc":
			return s, func() tea.Msg { return router.PopScreenMsg{} }
		}
	}
	return s, nil
}

func (s *ResultsScreen) View(width, height int) string {
	var b strings.Builder

	b.WriteString(lipgloss.NewStyle().
		Width(width).
		Align(lipgloss.Center).
		Foreground(theme.Primary).
		Bold(true).
		Render("Assessment complete"))
	b.WriteString("\n\n")

	if s.record.UserName != nil {
		b.WriteString(lipgloss.NewStyle().
			Width(width).
			Align(lipgloss.Center).
			Foreground(theme.TextDim).
			Render(*s.record.UserName))
		b.WriteString("\n\n")
	}

	divider := lipgloss.NewStyle().Foreground(theme.Border).Render(
		strings.Repeat("─", min(width-8, 60)))
	b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, divider))
	b.WriteString("\n\n")

	for _, d := range catalog.AllDimensions() {
		ds := s.result.Dimension(d)
		b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center,
			renderDimensionLine(d.DisplayName(), ds, width)))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, divider))
	b.WriteString("\n\n")

	overall := s.result.Overall
	overallLine := fmt.Sprintf("Overall  %d / %d  (%.0f%%)  %s",
		overall.Score, overall.MaxScore, overall.Percentage,
		overall.Level.DisplayName())
	b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center,
		lipgloss.NewStyle().
			Foreground(levelColor(overall.Level)).
			Bold(true).
			Render(overallLine)))
	b.WriteString("\n")

	return b.String()
}

// renderDimensionLine formats one dimension row with a fixed-width bar.
func renderDimensionLine(name string, ds scoring.DimensionScore, width int) string {
	const barWidth = 20
	filled := int(float64(barWidth) * ds.Percentage / 100)
	if filled > barWidth {
		filled = barWidth
	}
	if filled < 0 {
		filled = 0
	}

	bar := theme.ProgressFilled.Render(strings.Repeat(" ", filled)) +
		theme.ProgressEmpty.Render(strings.Repeat(" ", barWidth-filled))

	label := lipgloss.NewStyle().Foreground(theme.Text).
		Render(fmt.Sprintf("%-14s", name))
	score := lipgloss.NewStyle().Foreground(theme.TextDim).
		Render(fmt.Sprintf("%2d/%d  %3.0f%%", ds.Score, ds.MaxScore, ds.Percentage))
	level := lipgloss.NewStyle().Foreground(levelColor(ds.Level)).
		Render(ds.Level.DisplayName())

	return fmt.Sprintf("%s %s  %s  %s", label, bar, score, level)
}

// levelColor maps a qualitative level to its theme color.
func levelColor(l scoring.Level) color.Color {
	switch l {
	case scoring.LevelExcellent:
		return theme.Success
	case scoring.LevelGood:
		return theme.Secondary
	case scoring.LevelModerate:
		return theme.Accent
	case scoring.LevelNeedsImprovement:
		return theme.Warning
	case scoring.LevelCritical:
		return theme.Error
	default:
		return theme.Text
	}
}

func min(a, b int) int {
	if a < b {
		return a
	}
	return b
}
