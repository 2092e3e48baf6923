package survey

import (
	"testing"

	tea "charm.land/bubbletea/v2"

	"github.com/wichai/compass/internal/catalog"
	"github.com/wichai/compass/internal/router"
	"github.com/wichai/compass/internal/scoring"
)

func keyPress(r rune) tea.KeyPressMsg {
	return tea.KeyPressMsg{Code: r, Text: string(r)}
}

func specialKey(code rune) tea.KeyPressMsg {
	return tea.KeyPressMsg{Code: code}
}

// advanceToQuestions walks a fresh survey through role and name stages.
func advanceToQuestions(t *testing.T, s *SurveyScreen) {
	t.Helper()
	s.Update(specialKey(tea.KeyEnter)) // confirm role
	if s.stage != stageName {
		t.Fatalf("expected name stage after role, got %d", s.stage)
	}
	s.Update(specialKey(tea.KeyEnter)) // skip name
	if s.stage != stageQuestion {
		t.Fatalf("expected question stage after name, got %d", s.stage)
	}
}

func TestFullRunProducesCompleteAnswerSet(t *testing.T) {
	s := New(nil)
	advanceToQuestions(t, s)

	var saveCmd tea.Cmd
	for i := 0; i < catalog.TotalQuestions; i++ {
		_, saveCmd = s.Update(specialKey(tea.KeyEnter))
	}

	if s.stage != stageSaving {
		t.Fatalf("expected saving stage after last answer, got %d", s.stage)
	}
	if !scoring.ProgressOf(s.Answers()).Complete() {
		t.Fatalf("answer set incomplete: %d answered", scoring.ProgressOf(s.Answers()).Answered)
	}
	if saveCmd == nil {
		t.Fatal("expected a save command after the last answer")
	}

	// With no repo the save resolves immediately; the survey then hands
	// off to the results screen.
	msg := saveCmd()
	done, ok := msg.(saveDoneMsg)
	if !ok {
		t.Fatalf("expected saveDoneMsg, got %T", msg)
	}
	_, cmd := s.Update(done)
	if cmd == nil {
		t.Fatal("expected a command after save completes")
	}
	if _, ok := cmd().(router.ReplaceScreenMsg); !ok {
		t.Fatal("expected ReplaceScreenMsg to the results screen")
	}
}

func TestLetterKeysSelectOptions(t *testing.T) {
	s := New(nil)
	advanceToQuestions(t, s)

	s.Update(keyPress('d'))
	s.Update(specialKey(tea.KeyEnter))

	firstID := catalog.Questions()[0].ID
	if got := s.Answers()[firstID]; got != catalog.OptionD {
		t.Errorf("answer for %s = %q, want D", firstID, got)
	}
}

func TestBackNavigationRestoresAnswer(t *testing.T) {
	s := New(nil)
	advanceToQuestions(t, s)

	s.Update(keyPress('b'))
	s.Update(specialKey(tea.KeyEnter))
	if s.current != 1 {
		t.Fatalf("expected to be on question 2, got %d", s.current+1)
	}

	s.Update(specialKey(tea.KeyLeft))
	if s.current != 0 {
		t.Fatalf("expected to be back on question 1, got %d", s.current+1)
	}
	if got := s.choice.Choice().Key; got != "B" {
		t.Errorf("restored selection = %q, want B", got)
	}

	// Changing the answer overwrites the earlier one.
	s.Update(keyPress('c'))
	s.Update(specialKey(tea.KeyEnter))
	firstID := catalog.Questions()[0].ID
	if got := s.Answers()[firstID]; got != catalog.OptionC {
		t.Errorf("answer for %s = %q, want C", firstID, got)
	}
}

func TestLanguageToggleKeepsQuestionPosition(t *testing.T) {
	s := New(nil)
	advanceToQuestions(t, s)

	s.Update(specialKey(tea.KeyEnter))
	if s.current != 1 {
		t.Fatalf("expected question 2, got %d", s.current+1)
	}

	s.Update(keyPress('l'))
	if s.lang != catalog.LangTH {
		t.Errorf("expected Thai after toggle, got %q", s.lang)
	}
	if s.current != 1 {
		t.Errorf("language toggle moved position to %d", s.current+1)
	}

	prompt := catalog.Questions()[1].Prompt
	if s.choice.Prompt != prompt.In(catalog.LangTH) {
		t.Error("selector prompt not rebuilt in Thai")
	}
}

func TestNameStored(t *testing.T) {
	s := New(nil)
	s.Update(specialKey(tea.KeyEnter)) // role

	for _, r := range "Ann" {
		s.Update(keyPress(r))
	}
	s.Update(specialKey(tea.KeyEnter))

	if s.userName != "Ann" {
		t.Errorf("userName = %q, want Ann", s.userName)
	}
}
