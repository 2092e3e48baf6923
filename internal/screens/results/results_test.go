package results

import (
	"strings"
	"testing"

	tea "charm.land/bubbletea/v2"

	"github.com/wichai/compass/internal/catalog"
	"github.com/wichai/compass/internal/router"
	"github.com/wichai/compass/internal/scoring"
	"github.com/wichai/compass/internal/submission"
)

func fullResult(t *testing.T) (scoring.Result, submission.Submission) {
	t.Helper()
	answers := scoring.AnswerSet{}
	for _, q := range catalog.Questions() {
		answers[q.ID] = catalog.OptionA
	}
	rec := submission.FromAnswers(submission.RoleFounder, "Ann", "test", answers)
	return scoring.ScoreAll(answers), rec
}

func TestViewShowsAllDimensionsAndOverall(t *testing.T) {
	result, rec := fullResult(t)
	s := New(result, rec)

	view := s.View(100, 40)
	for _, d := range catalog.AllDimensions() {
		if !strings.Contains(view, d.DisplayName()) {
			t.Errorf("view missing dimension %q", d.DisplayName())
		}
	}
	if !strings.Contains(view, "Overall") {
		t.Error("view missing overall line")
	}
	if !strings.Contains(view, "Excellent") {
		t.Error("view missing level label for a perfect score")
	}
	if !strings.Contains(view, "Ann") {
		t.Error("view missing respondent name")
	}
}

func TestEnterReturnsHome(t *testing.T) {
	result, rec := fullResult(t)
	s := New(result, rec)

	_, cmd := s.Update(tea.KeyPressMsg{Code: tea.KeyEnter})
	if cmd == nil {
		t.Fatal("expected a command from enter")
	}
	if _, ok := cmd().(router.PopScreenMsg); !ok {
		t.Fatal("expected PopScreenMsg")
	}
}
