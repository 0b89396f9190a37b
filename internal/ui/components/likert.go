package components

import (
	"fmt"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/wesboland/bolandindex/internal/assessment"
	"github.com/wesboland/bolandindex/internal/ui/theme"
)

// Likert is an agreement-scale selector. There is no right answer;
// every option carries a weight that feeds the score.
type Likert struct {
	Statement string
	Choices   []assessment.Choice
	Selected  int
	Submitted bool
}

// NewLikert creates a selector for one statement.
func NewLikert(statement string) Likert {
	return Likert{
		Statement: statement,
		Choices:   assessment.Choices(),
	}
}

// Init returns nil.
func (l Likert) Init() tea.Cmd {
	return nil
}

// Update handles keyboard navigation and selection. Number keys 1-5
// jump straight to a choice.
func (l Likert) Update(msg tea.Msg) (Likert, tea.Cmd) {
	if l.Submitted {
		return l, nil
	}

	kmsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return l, nil
	}

	switch key := kmsg.String(); key {
	case "up", "k":
		if l.Selected > 0 {
			l.Selected--
		}
	case "down", "j":
		if l.Selected < len(l.Choices)-1 {
			l.Selected++
		}
	case "1", "2", "3", "4", "5":
		l.Selected = int(key[0] - '1')
	case "enter":
		l.Submitted = true
	}

	return l, nil
}

// View renders the statement and the agreement scale.
func (l Likert) View() string {
	statementStyle := lipgloss.NewStyle().Foreground(theme.Text).Bold(true)
	s := statementStyle.Render(l.Statement) + "\n\n"

	for i, c := range l.Choices {
		prefix := "  "
		if i == l.Selected {
			prefix = "▸ "
		}
		line := fmt.Sprintf("%s%d)  %s", prefix, i+1, c.Label)

		if i == l.Selected {
			s += lipgloss.NewStyle().Foreground(theme.Primary).Bold(true).Render(line) + "\n"
		} else {
			s += lipgloss.NewStyle().Foreground(theme.Text).Render(line) + "\n"
		}
	}

	return s
}

// Weight returns the weight of the submitted choice, or 0 if nothing
// has been submitted yet.
func (l Likert) Weight() int {
	if !l.Submitted {
		return 0
	}
	return l.Choices[l.Selected].Weight
}
