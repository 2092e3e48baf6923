package home

import (
	"context"
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/wichai/compass/internal/router"
	"github.com/wichai/compass/internal/screen"
	"github.com/wichai/compass/internal/screens/history"
	"github.com/wichai/compass/internal/screens/survey"
	"github.com/wichai/compass/internal/store"
	"github.com/wichai/compass/internal/ui/components"
	"github.com/wichai/compass/internal/ui/theme"
)

// HomeScreen is the main entry screen of the application.
type HomeScreen struct {
	menu       components.Menu
	savedCount int
}

var _ screen.Screen = (*HomeScreen)(nil)

// New creates a new HomeScreen.
func New(repo store.SubmissionRepo) *HomeScreen {
	var savedCount int
	if repo != nil {
		if records, err := repo.All(context.Background()); err == nil {
			savedCount = len(records)
		}
	}

	items := []components.MenuItem{
		{Label: "Start assessment", Action: func() tea.Cmd {
			return func() tea.Msg {
				return router.PushScreenMsg{Screen: survey.New(repo)}
			}
		}},
		{Label: "Past results", Action: func() tea.Cmd {
			return func() tea.Msg {
				return router.PushScreenMsg{Screen: history.New(repo)}
			}
		}, Disabled: repo == nil},
		{Label: "Exit", Action: func() tea.Cmd {
			return tea.Quit
		}},
	}

	return &HomeScreen{
		menu:       components.NewMenu(items),
		savedCount: savedCount,
	}
}

func (h *HomeScreen) Init() tea.Cmd {
	return nil
}

func (h *HomeScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	var cmd tea.Cmd
	h.menu, cmd = h.menu.Update(msg)
	return h, cmd
}

func (h *HomeScreen) View(width, height int) string {
	var sections []string

	sections = append(sections, theme.Title.Width(width).Render("Family Wealth Compass"))
	sections = append(sections, theme.Subtitle.Width(width).Render(
		"Twelve questions across governance, legacy, relationships and strategy"))
	sections = append(sections, "")

	if h.savedCount > 0 {
		noun := "assessments"
		if h.savedCount == 1 {
			noun = "assessment"
		}
		sections = append(sections, lipgloss.NewStyle().
			Width(width).
			Align(lipgloss.Center).
			Foreground(theme.TextDim).
			Render(fmt.Sprintf("%d saved %s", h.savedCount, noun)))
		sections = append(sections, "")
	}

	menu := lipgloss.PlaceHorizontal(width, lipgloss.Center, h.menu.View())
	sections = append(sections, menu)

	content := strings.Join(sections, "\n")
	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, content)
}

func (h *HomeScreen) Title() string {
	return "Home"
}
