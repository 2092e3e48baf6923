package history

import (
	"context"
	"fmt"
	"strings"
	"time"

	tea "charm.land/bubbletea/v2"

	"charm.land/lipgloss/v2"

	"github.com/wichai/compass/internal/catalog"
	"github.com/wichai/compass/internal/router"
	"github.com/wichai/compass/internal/screen"
	"github.com/wichai/compass/internal/scoring"
	"github.com/wichai/compass/internal/store"
	"github.com/wichai/compass/internal/submission"
	"github.com/wichai/compass/internal/ui/layout"
	"github.com/wichai/compass/internal/ui/theme"
)

type historyLoadedMsg struct {
	Records []submission.Submission
	Err     error
}

type deleteDoneMsg struct {
	ID  int
	Err error
}

// HistoryScreen lists past assessments stored on this machine.
type HistoryScreen struct {
	repo     store.SubmissionRepo
	records  []submission.Submission
	selected int
	expanded map[int]bool
	loaded   bool
	errMsg   string
}

var _ screen.Screen = (*HistoryScreen)(nil)
var _ screen.KeyHintProvider = (*HistoryScreen)(nil)

// New creates a new HistoryScreen.
func New(repo store.SubmissionRepo) *HistoryScreen {
	return &HistoryScreen{
		repo:     repo,
		expanded: make(map[int]bool),
	}
}

func (s *HistoryScreen) Init() tea.Cmd {
	return func() tea.Msg {
		records, err := s.repo.All(context.Background())
		return historyLoadedMsg{Records: records, Err: err}
	}
}

func (s *HistoryScreen) Title() string {
	return "Past Results"
}

func (s *HistoryScreen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "Enter", Description: "Details"},
		{Key: "↑↓", Description: "Navigate"},
		{Key: "D", Description: "Delete"},
		{Key: "Esc", Description: "Back"},
	}
}

func (s *HistoryScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case historyLoadedMsg:
		if msg.Err != nil {
			s.errMsg = msg.Err.Error()
		} else {
			s.records = msg.Records
		}
		s.loaded = true
		return s, nil

	case deleteDoneMsg:
		if msg.Err != nil {
			s.errMsg = msg.Err.Error()
			return s, nil
		}
		kept := s.records[:0]
		for _, r := range s.records {
			if r.ID != msg.ID {
				kept = append(kept, r)
			}
		}
		s.records = kept
		if s.selected >= len(s.records) && s.selected > 0 {
			s.selected--
		}
		s.expanded = make(map[int]bool)
		return s, nil

	case tea.KeyMsg:
		switch msg.String() {
		case "esc":
			return s, func() tea.Msg { return router.PopScreenMsg{} }
		case "up", "k":
			if s.selected > 0 {
				s.selected--
			}
			return s, nil
		case "down", "j":
			if s.selected < len(s.records)-1 {
				s.selected++
			}
			return s, nil
		case "enter":
			if len(s.records) > 0 {
				s.expanded[s.selected] = !s.expanded[s.selected]
			}
			return s, nil
		case "d":
			return s, s.deleteSelected()
		}
	}

	return s, nil
}

func (s *HistoryScreen) deleteSelected() tea.Cmd {
	if s.selected < 0 || s.selected >= len(s.records) {
		return nil
	}
	id := s.records[s.selected].ID
	repo := s.repo
	return func() tea.Msg {
		_, err := repo.Delete(context.Background(), id)
		return deleteDoneMsg{ID: id, Err: err}
	}
}

func (s *HistoryScreen) View(width, height int) string {
	if s.errMsg != "" {
		return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center,
			lipgloss.NewStyle().Foreground(theme.Error).Render(s.errMsg))
	}
	if !s.loaded {
		return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center,
			theme.Hint.Render("Loading..."))
	}
	if len(s.records) == 0 {
		return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center,
			theme.Hint.Render("No assessments yet"))
	}

	var b strings.Builder
	for i, rec := range s.records {
		b.WriteString(s.renderRecord(i, rec))
		if s.expanded[i] {
			b.WriteString(renderBreakdown(rec))
		}
	}

	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, b.String())
}

func (s *HistoryScreen) renderRecord(i int, rec submission.Submission) string {
	name := "anonymous"
	if rec.UserName != nil {
		name = *rec.UserName
	}
	level := scoring.ClassifyOverall(
		float64(rec.OverallScore) / float64(catalog.MaxOverallScore) * 100)

	line := fmt.Sprintf("%s  %-22s %-20s %2d/%d  %s",
		rec.CreatedAt.Local().Format(time.DateOnly),
		rec.Role.DisplayName(),
		name,
		rec.OverallScore, catalog.MaxOverallScore,
		level.DisplayName())

	if i == s.selected {
		return theme.Selected.Render("  ▸ "+line) + "\n"
	}
	return theme.Unselected.Render("    "+line) + "\n"
}

// renderBreakdown shows the per-dimension scores of one record.
func renderBreakdown(rec submission.Submission) string {
	var b strings.Builder
	for _, d := range catalog.AllDimensions() {
		score := rec.DimensionScore(d)
		pct := float64(score) / float64(catalog.MaxDimensionScore) * 100
		level := scoring.ClassifyDimension(pct)
		b.WriteString(lipgloss.NewStyle().Foreground(theme.TextDim).Render(
			fmt.Sprintf("        %-14s %2d/%d  %s",
				d.DisplayName(), score, catalog.MaxDimensionScore, level.DisplayName())))
		b.WriteString("\n")
	}
	return b.String()
}
