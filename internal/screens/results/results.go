package results

import (
	"context"
	"fmt"
	"image/color"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/wesboland/bolandindex/internal/assessment"
	"github.com/wesboland/bolandindex/internal/identity"
	"github.com/wesboland/bolandindex/internal/router"
	"github.com/wesboland/bolandindex/internal/screen"
	"github.com/wesboland/bolandindex/internal/share"
	"github.com/wesboland/bolandindex/internal/ui/components"
	"github.com/wesboland/bolandindex/internal/ui/layout"
	"github.com/wesboland/bolandindex/internal/ui/theme"
)

// ResultsScreen shows a completed attempt: total, rank, radar chart,
// recent history and the share surface.
type ResultsScreen struct {
	svc     *identity.Service
	scores  assessment.Scores
	total   int
	rank    assessment.Rank
	radar   components.Radar
	shared  share.Content
	retake  func() screen.Screen
	saveErr error
	status  string
}

var _ screen.Screen = (*ResultsScreen)(nil)
var _ screen.KeyHintProvider = (*ResultsScreen)(nil)

// New creates a ResultsScreen. saveErr, when non-nil, is surfaced as a
// notice; the results still render. retake produces a fresh quiz.
func New(svc *identity.Service, scores assessment.Scores, saveErr error, retake func() screen.Screen) *ResultsScreen {
	total := scores.Total()
	rank := assessment.Classify(total)
	return &ResultsScreen{
		svc:     svc,
		scores:  scores,
		total:   total,
		rank:    rank,
		radar:   components.NewRadar(scores),
		shared:  share.ForScore(total, rank),
		retake:  retake,
		saveErr: saveErr,
	}
}

func (r *ResultsScreen) Init() tea.Cmd {
	return nil
}

func (r *ResultsScreen) Title() string {
	return "Your Results"
}

func (r *ResultsScreen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "r", Description: "Retake"},
		{Key: "c", Description: "Copy Link"},
		{Key: "s", Description: "Sign Out"},
		{Key: "Esc", Description: "Home"},
	}
}

func (r *ResultsScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	kmsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return r, nil
	}

	switch kmsg.String() {
	case "enter", "esc":
		return r, func() tea.Msg { return router.PopScreenMsg{} }
	case "r":
		if r.retake != nil {
			next := r.retake()
			return r, func() tea.Msg {
				return router.ReplaceScreenMsg{Screen: next}
			}
		}
	case "c":
		if err := r.shared.CopyToClipboard(); err != nil {
			r.status = "Clipboard unavailable"
		} else {
			r.status = "Share link copied to clipboard"
		}
	case "s":
		_ = r.svc.SignOut(context.Background())
		return r, func() tea.Msg { return router.PopScreenMsg{} }
	}

	return r, nil
}

func (r *ResultsScreen) View(width, height int) string {
	var b strings.Builder

	center := func(s string) {
		b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, s))
		b.WriteString("\n")
	}

	center(lipgloss.NewStyle().Foreground(theme.Text).Bold(true).Render("Your Boland Index"))
	b.WriteString("\n")

	center(lipgloss.NewStyle().Foreground(theme.Primary).Bold(true).
		Render(fmt.Sprintf("%d / 250", r.total)))
	center(lipgloss.NewStyle().Foreground(rankColor(r.rank)).Bold(true).
		Render(string(r.rank)))
	b.WriteString("\n")

	if r.saveErr != nil {
		center(lipgloss.NewStyle().Foreground(theme.Error).
			Render("Could not save this score to your history"))
		b.WriteString("\n")
	}

	for _, line := range strings.Split(r.radar.View(), "\n") {
		center(line)
	}
	b.WriteString("\n")

	if history := r.history(); len(history) > 1 {
		center(lipgloss.NewStyle().Foreground(theme.TextDim).Render("Recent scores"))
		for i, h := range history {
			if i >= 5 {
				break
			}
			center(lipgloss.NewStyle().Foreground(theme.Text).
				Render(fmt.Sprintf("%s    %d · %s", h.Date, h.Total, assessment.Classify(h.Total))))
		}
		b.WriteString("\n")
	}

	center(lipgloss.NewStyle().Foreground(theme.TextDim).Render("Share your result:"))
	center(lipgloss.NewStyle().Foreground(theme.Secondary).Render(r.shared.TweetURL()))
	center(lipgloss.NewStyle().Foreground(theme.Secondary).Render(r.shared.LinkedInURL()))

	if r.status != "" {
		b.WriteString("\n")
		center(lipgloss.NewStyle().Foreground(theme.Success).Render(r.status))
	}

	return b.String()
}

func (r *ResultsScreen) history() []identity.SavedScore {
	u := r.svc.Current()
	if u == nil {
		return nil
	}
	return u.History
}

// rankColor maps a rank to its theme color.
func rankColor(rank assessment.Rank) color.Color {
	switch rank {
	case assessment.RankDeveloping:
		return theme.RankDeveloping
	case assessment.RankSolid:
		return theme.RankSolid
	case assessment.RankExcellent:
		return theme.RankExcellent
	case assessment.RankOptimal:
		return theme.RankOptimal
	default:
		return theme.Text
	}
}
