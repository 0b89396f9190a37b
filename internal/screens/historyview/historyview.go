package historyview

import (
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/wesboland/bolandindex/internal/assessment"
	"github.com/wesboland/bolandindex/internal/identity"
	"github.com/wesboland/bolandindex/internal/router"
	"github.com/wesboland/bolandindex/internal/screen"
	"github.com/wesboland/bolandindex/internal/ui/layout"
	"github.com/wesboland/bolandindex/internal/ui/theme"
)

// HistoryScreen lists the signed-in user's saved scores, newest first.
type HistoryScreen struct {
	svc *identity.Service
}

var _ screen.Screen = (*HistoryScreen)(nil)
var _ screen.KeyHintProvider = (*HistoryScreen)(nil)

// New creates a HistoryScreen.
func New(svc *identity.Service) *HistoryScreen {
	return &HistoryScreen{svc: svc}
}

func (h *HistoryScreen) Init() tea.Cmd {
	return nil
}

func (h *HistoryScreen) Title() string {
	return "Score History"
}

func (h *HistoryScreen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "Esc", Description: "Back"},
	}
}

func (h *HistoryScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	if kmsg, ok := msg.(tea.KeyMsg); ok {
		switch kmsg.String() {
		case "esc", "enter":
			return h, func() tea.Msg { return router.PopScreenMsg{} }
		}
	}
	return h, nil
}

func (h *HistoryScreen) View(width, height int) string {
	u := h.svc.Current()

	var sections []string

	if u == nil || len(u.History) == 0 {
		sections = append(sections,
			lipgloss.NewStyle().Foreground(theme.TextDim).
				Render("No saved scores yet. Take the assessment to start your history."))
	} else {
		sections = append(sections,
			lipgloss.NewStyle().Foreground(theme.Text).Bold(true).
				Render(fmt.Sprintf("Saved scores for %s", u.Email)))
		sections = append(sections, "")

		for _, s := range u.History {
			rank := assessment.Classify(s.Total)
			line := fmt.Sprintf("%-14s  %3d / 250   %s", s.Date, s.Total, rank)
			sections = append(sections,
				lipgloss.NewStyle().Foreground(theme.Text).Render(line))
		}

		sections = append(sections, "")
		sections = append(sections,
			lipgloss.NewStyle().Foreground(theme.TextDim).
				Render(fmt.Sprintf("Last %d attempts are kept.", identity.HistoryCap)))
	}

	content := strings.Join(sections, "\n")
	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, content)
}
