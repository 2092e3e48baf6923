package components

import (
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/wichai/compass/internal/ui/theme"
)

// Choice is one selectable option with its letter key.
type Choice struct {
	Key  string
	Text string
}

// MultiChoice is a survey-style option selector. There is no right or
// wrong answer; Enter confirms whichever option is highlighted.
type MultiChoice struct {
	Prompt   string
	Choices  []Choice
	Selected int
	chosen   bool
}

// NewMultiChoice creates a selector. preselect is the key of a previous
// answer when the respondent navigates back to a question; empty means
// start at the first option.
func NewMultiChoice(prompt string, choices []Choice, preselect string) MultiChoice {
	selected := 0
	for i, c := range choices {
		if preselect != "" && c.Key == preselect {
			selected = i
			break
		}
	}
	return MultiChoice{
		Prompt:   prompt,
		Choices:  choices,
		Selected: selected,
	}
}

// Update handles keyboard navigation. Letter keys jump straight to the
// matching option.
func (m MultiChoice) Update(msg tea.Msg) (MultiChoice, tea.Cmd) {
	kmsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	switch key := kmsg.String(); key {
	case "up", "k":
		if m.Selected > 0 {
			m.Selected--
		}
	case "down", "j":
		if m.Selected < len(m.Choices)-1 {
			m.Selected++
		}
	case "enter":
		m.chosen = true
	default:
		for i, c := range m.Choices {
			if strings.EqualFold(key, c.Key) {
				m.Selected = i
				break
			}
		}
	}

	return m, nil
}

// Chosen reports whether the highlighted option was confirmed, and
// resets the flag so the selector can be reused for the next question.
func (m *MultiChoice) Chosen() bool {
	if !m.chosen {
		return false
	}
	m.chosen = false
	return true
}

// Choice returns the currently highlighted option.
func (m MultiChoice) Choice() Choice {
	if m.Selected < 0 || m.Selected >= len(m.Choices) {
		return Choice{}
	}
	return m.Choices[m.Selected]
}

// View renders the prompt and its options.
func (m MultiChoice) View() string {
	questionStyle := lipgloss.NewStyle().Foreground(theme.Text).Bold(true)
	s := questionStyle.Render(m.Prompt) + "\n\n"

	for i, c := range m.Choices {
		prefix := "  "
		if i == m.Selected {
			prefix = "▸ "
		}
		line := fmt.Sprintf("%s%s)  %s", prefix, c.Key, c.Text)

		if i == m.Selected {
			s += theme.Selected.Render(line) + "\n"
		} else {
			s += theme.Unselected.Render(line) + "\n"
		}
	}

	return s
}
