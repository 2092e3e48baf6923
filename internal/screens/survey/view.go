package survey

import (
	"fmt"
	"strings"

	"charm.land/lipgloss/v2"

	"github.com/wichai/compass/internal/scoring"
	"github.com/wichai/compass/internal/ui/components"
	"github.com/wichai/compass/internal/ui/theme"
)

func (s *SurveyScreen) View(width, height int) string {
	if s.errMsg != "" {
		return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center,
			lipgloss.NewStyle().Foreground(theme.Error).Render(s.errMsg))
	}

	switch s.stage {
	case stageRole:
		return s.renderRole(width, height)
	case stageName:
		return s.renderName(width, height)
	case stageQuestion:
		return s.renderQuestion(width, height)
	case stageSaving:
		return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center,
			theme.Hint.Render("Saving your assessment..."))
	}
	return ""
}

func (s *SurveyScreen) renderRole(width, height int) string {
	content := s.choice.View()
	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, content)
}

func (s *SurveyScreen) renderName(width, height int) string {
	var b strings.Builder
	b.WriteString(lipgloss.NewStyle().Foreground(theme.Text).Bold(true).
		Render("What is your name?"))
	b.WriteString("\n")
	b.WriteString(theme.Hint.Render("Leave blank to stay anonymous"))
	b.WriteString("\n\n")
	b.WriteString(s.nameInput.View())
	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, b.String())
}

func (s *SurveyScreen) renderQuestion(width, height int) string {
	q := s.questions[s.current]

	progress := scoring.Progress{Answered: s.current, Total: len(s.questions)}
	barWidth := min(width-8, 60)
	bar := components.NewProgressBar(
		fmt.Sprintf("Question %d of %d", s.current+1, len(s.questions)),
		progress.Fraction(), false, barWidth)

	dimension := theme.Hint.Render(q.Dimension.DisplayName())

	var b strings.Builder
	b.WriteString(bar.View())
	b.WriteString("\n\n")
	b.WriteString(dimension)
	b.WriteString("\n\n")
	b.WriteString(s.choice.View())

	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, b.String())
}

func min(a, b int) int {
	if a < b {
		return a
	}
	return b
}
