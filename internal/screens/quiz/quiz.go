package quiz

import (
	"context"
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/wesboland/bolandindex/internal/assessment"
	"github.com/wesboland/bolandindex/internal/identity"
	"github.com/wesboland/bolandindex/internal/router"
	"github.com/wesboland/bolandindex/internal/screen"
	"github.com/wesboland/bolandindex/internal/screens/results"
	"github.com/wesboland/bolandindex/internal/ui/components"
	"github.com/wesboland/bolandindex/internal/ui/layout"
	"github.com/wesboland/bolandindex/internal/ui/theme"
)

// QuizScreen walks through the question bank one statement at a time.
// Esc abandons the attempt; nothing is recorded until the last answer.
type QuizScreen struct {
	svc     *identity.Service
	attempt *assessment.Attempt
	likert  components.Likert
}

var _ screen.Screen = (*QuizScreen)(nil)
var _ screen.KeyHintProvider = (*QuizScreen)(nil)

// New creates a fresh attempt starting at the first question.
func New(svc *identity.Service) *QuizScreen {
	attempt := assessment.NewAttempt()
	return &QuizScreen{
		svc:     svc,
		attempt: attempt,
		likert:  components.NewLikert(attempt.Current().Text),
	}
}

func (q *QuizScreen) Init() tea.Cmd {
	return nil
}

func (q *QuizScreen) Title() string {
	return "Assessment"
}

func (q *QuizScreen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "↑/↓", Description: "Choose"},
		{Key: "1-5", Description: "Jump"},
		{Key: "Enter", Description: "Answer"},
		{Key: "Esc", Description: "Abandon"},
	}
}

func (q *QuizScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	if kmsg, ok := msg.(tea.KeyMsg); ok && kmsg.String() == "esc" {
		return q, func() tea.Msg { return router.PopScreenMsg{} }
	}

	var cmd tea.Cmd
	q.likert, cmd = q.likert.Update(msg)

	if q.likert.Submitted {
		done := q.attempt.Answer(q.likert.Weight())
		if done {
			return q, q.finish()
		}
		q.likert = components.NewLikert(q.attempt.Current().Text)
	}

	return q, cmd
}

func (q *QuizScreen) finish() tea.Cmd {
	scores := q.attempt.Scores()

	// Results are shown even if saving fails; the error surfaces there.
	_, err := q.svc.RecordScore(context.Background(), scores)

	svc := q.svc
	resultsScreen := results.New(svc, scores, err, func() screen.Screen {
		return New(svc)
	})
	return func() tea.Msg {
		return router.ReplaceScreenMsg{Screen: resultsScreen}
	}
}

func (q *QuizScreen) View(width, height int) string {
	// One frame can render between the last answer and the results screen.
	if q.attempt.Done() {
		return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center,
			lipgloss.NewStyle().Foreground(theme.TextDim).Render("Scoring your answers..."))
	}

	current, total := q.attempt.Progress()
	question := q.attempt.Current()

	header := lipgloss.NewStyle().Foreground(theme.TextDim).Render(
		fmt.Sprintf("Question %d/%d · %s", current, total, question.Category))

	bar := components.NewProgressBar("", float64(current-1)/float64(total), false, min(width-8, 60))

	var sections []string
	sections = append(sections, header)
	sections = append(sections, bar.View())
	sections = append(sections, "")
	sections = append(sections, q.likert.View())

	content := strings.Join(sections, "\n")
	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, content)
}

func min(a, b int) int {
	if a < b {
		return a
	}
	return b
}
