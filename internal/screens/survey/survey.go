package survey

import (
	"context"
	"time"

	tea "charm.land/bubbletea/v2"

	"github.com/wichai/compass/internal/catalog"
	"github.com/wichai/compass/internal/router"
	"github.com/wichai/compass/internal/screen"
	"github.com/wichai/compass/internal/screens/results"
	"github.com/wichai/compass/internal/scoring"
	"github.com/wichai/compass/internal/store"
	"github.com/wichai/compass/internal/submission"
	"github.com/wichai/compass/internal/ui/components"
	"github.com/wichai/compass/internal/ui/layout"
)

type stage int

const (
	stageRole stage = iota
	stageName
	stageQuestion
	stageSaving
)

// saveDoneMsg is sent when the completed assessment has been persisted.
type saveDoneMsg struct {
	Saved *submission.Submission
	Err   error
}

// SurveyScreen walks the respondent through role, optional name and the
// twelve questions, then persists the result and shows the results screen.
type SurveyScreen struct {
	repo store.SubmissionRepo
	lang catalog.Language

	stage     stage
	choice    components.MultiChoice
	nameInput components.TextInput

	questions []catalog.Question
	current   int
	answers   scoring.AnswerSet
	role      submission.Role
	userName  string

	errMsg string
}

var _ screen.Screen = (*SurveyScreen)(nil)
var _ screen.KeyHintProvider = (*SurveyScreen)(nil)
var _ screen.LangLabelProvider = (*SurveyScreen)(nil)

// New creates a SurveyScreen. repo may be nil; results are then shown
// without being saved.
func New(repo store.SubmissionRepo) *SurveyScreen {
	s := &SurveyScreen{
		repo:      repo,
		lang:      catalog.LangEN,
		stage:     stageRole,
		nameInput: components.NewTextInput("Your name (optional)", 80),
		questions: catalog.Questions(),
		answers:   scoring.AnswerSet{},
	}
	s.choice = roleChoice()
	return s
}

// roleChoice builds the role selector shown on the first stage.
func roleChoice() components.MultiChoice {
	keys := []string{"A", "B", "C", "D"}
	roles := submission.AllRoles()
	choices := make([]components.Choice, 0, len(roles))
	for i, r := range roles {
		choices = append(choices, components.Choice{
			Key:  keys[i],
			Text: r.DisplayName(),
		})
	}
	return components.NewMultiChoice("What is your role in the family business?", choices, "")
}

func (s *SurveyScreen) Init() tea.Cmd {
	return nil
}

func (s *SurveyScreen) Title() string {
	return "Assessment"
}

func (s *SurveyScreen) LangLabel() string {
	if s.lang == catalog.LangTH {
		return "ไทย"
	}
	return "EN"
}

func (s *SurveyScreen) KeyHints() []layout.KeyHint {
	switch s.stage {
	case stageName:
		return []layout.KeyHint{
			{Key: "Enter", Description: "Continue"},
			{Key: "Esc", Description: "Back"},
		}
	case stageQuestion:
		hints := []layout.KeyHint{
			{Key: "↑↓", Description: "Navigate"},
			{Key: "Enter", Description: "Answer"},
			{Key: "L", Description: "Language"},
		}
		if s.current > 0 {
			hints = append(hints, layout.KeyHint{Key: "←", Description: "Previous"})
		}
		return hints
	case stageSaving:
		return nil
	}
	return []layout.KeyHint{
		{Key: "↑↓", Description: "Navigate"},
		{Key: "Enter", Description: "Select"},
		{Key: "L", Description: "Language"},
	}
}

func (s *SurveyScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	if done, ok := msg.(saveDoneMsg); ok {
		return s.handleSaved(done)
	}

	switch s.stage {
	case stageRole:
		return s.updateRole(msg)
	case stageName:
		return s.updateName(msg)
	case stageQuestion:
		return s.updateQuestion(msg)
	}
	return s, nil
}

func (s *SurveyScreen) updateRole(msg tea.Msg) (screen.Screen, tea.Cmd) {
	if kmsg, ok := msg.(tea.KeyMsg); ok && kmsg.String() == "l" {
		s.toggleLanguage()
		return s, nil
	}

	var cmd tea.Cmd
	s.choice, cmd = s.choice.Update(msg)
	if s.choice.Chosen() {
		s.role = submission.AllRoles()[s.choice.Selected]
		s.stage = stageName
		return s, s.nameInput.Init()
	}
	return s, cmd
}

func (s *SurveyScreen) updateName(msg tea.Msg) (screen.Screen, tea.Cmd) {
	if kmsg, ok := msg.(tea.KeyMsg); ok {
		switch kmsg.String() {
		case "enter":
			s.userName = s.nameInput.Value()
			s.stage = stageQuestion
			s.rebuildChoice()
			return s, nil
		case "esc":
			s.stage = stageRole
			s.choice = roleChoice()
			return s, nil
		}
	}

	var cmd tea.Cmd
	s.nameInput, cmd = s.nameInput.Update(msg)
	return s, cmd
}

func (s *SurveyScreen) updateQuestion(msg tea.Msg) (screen.Screen, tea.Cmd) {
	kmsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return s, nil
	}

	switch kmsg.String() {
	case "l":
		s.toggleLanguage()
		s.rebuildChoice()
		return s, nil
	case "left", "h":
		if s.current > 0 {
			s.current--
			s.rebuildChoice()
		}
		return s, nil
	}

	var cmd tea.Cmd
	s.choice, cmd = s.choice.Update(msg)
	if s.choice.Chosen() {
		q := s.questions[s.current]
		s.answers[q.ID] = catalog.OptionKey(s.choice.Choice().Key)

		if s.current+1 < len(s.questions) {
			s.current++
			s.rebuildChoice()
			return s, nil
		}
		s.stage = stageSaving
		return s, s.save()
	}
	return s, cmd
}

// rebuildChoice loads the selector for the current question, restoring a
// previous answer when revisiting.
func (s *SurveyScreen) rebuildChoice() {
	q := s.questions[s.current]
	choices := make([]components.Choice, 0, len(q.Options))
	for _, key := range catalog.OptionKeys() {
		opt, ok := q.Options[key]
		if !ok {
			continue
		}
		choices = append(choices, components.Choice{
			Key:  string(key),
			Text: opt.Text.In(s.lang),
		})
	}
	preselect := ""
	if prev, ok := s.answers[q.ID]; ok {
		preselect = string(prev)
	}
	s.choice = components.NewMultiChoice(q.Prompt.In(s.lang), choices, preselect)
}

func (s *SurveyScreen) toggleLanguage() {
	if s.lang == catalog.LangEN {
		s.lang = catalog.LangTH
	} else {
		s.lang = catalog.LangEN
	}
}

// save persists the completed assessment off the UI thread.
func (s *SurveyScreen) save() tea.Cmd {
	rec := submission.FromAnswers(s.role, s.userName, "terminal", s.answers)
	repo := s.repo
	return func() tea.Msg {
		if repo == nil {
			return saveDoneMsg{Saved: &rec}
		}
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		saved, err := repo.Create(ctx, rec)
		if err != nil {
			return saveDoneMsg{Err: err}
		}
		return saveDoneMsg{Saved: &saved}
	}
}

func (s *SurveyScreen) handleSaved(msg saveDoneMsg) (screen.Screen, tea.Cmd) {
	if msg.Err != nil {
		s.errMsg = "Could not save your assessment: " + msg.Err.Error()
		return s, nil
	}
	result := scoring.ScoreAll(s.answers)
	return s, func() tea.Msg {
		return router.ReplaceScreenMsg{Screen: results.New(result, *msg.Saved)}
	}
}

// Answers exposes the collected answer set.
func (s *SurveyScreen) Answers() scoring.AnswerSet {
	return s.answers
}
