package landing

import (
	"context"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/wesboland/bolandindex/internal/identity"
	"github.com/wesboland/bolandindex/internal/router"
	"github.com/wesboland/bolandindex/internal/screen"
	"github.com/wesboland/bolandindex/internal/screens/auth"
	"github.com/wesboland/bolandindex/internal/screens/guideview"
	"github.com/wesboland/bolandindex/internal/screens/historyview"
	"github.com/wesboland/bolandindex/internal/screens/quiz"
	"github.com/wesboland/bolandindex/internal/ui/components"
	"github.com/wesboland/bolandindex/internal/ui/layout"
	"github.com/wesboland/bolandindex/internal/ui/theme"
)

const banner = `▀█▀ █ █ █▀▀   █▄▄ █▀█ █   ▄▀█ █▄ █ █▀▄   █ █▄ █ █▀▄ █▀▀ ▀▄▀
 █  █▀█ ██▄   █▄█ █▄█ █▄▄ █▀█ █ ▀█ █▄▀   █ █ ▀█ █▄▀ ██▄ █ █`

const tagline = "A composite measure of the five pillars of longevity"

// LandingScreen is the main menu.
type LandingScreen struct {
	svc      *identity.Service
	menu     components.Menu
	signedIn bool
}

var _ screen.Screen = (*LandingScreen)(nil)
var _ screen.KeyHintProvider = (*LandingScreen)(nil)

// New creates a LandingScreen over the identity service.
func New(svc *identity.Service) *LandingScreen {
	l := &LandingScreen{svc: svc}
	l.rebuildMenu()
	return l
}

func (l *LandingScreen) rebuildMenu() {
	l.signedIn = l.svc.Current() != nil

	signLabel := "Sign In"
	if l.signedIn {
		signLabel = "Sign Out"
	}

	items := []components.MenuItem{
		{Label: "Begin Assessment", Action: func() tea.Cmd {
			// Works signed out too: the score is shown but not saved.
			return func() tea.Msg {
				return router.PushScreenMsg{Screen: quiz.New(l.svc)}
			}
		}},
		{Label: signLabel, Action: func() tea.Cmd {
			if l.svc.Current() != nil {
				return l.signOut()
			}
			return func() tea.Msg {
				return router.PushScreenMsg{Screen: auth.New(l.svc)}
			}
		}},
		{Label: "Longevity Guide", Action: func() tea.Cmd {
			return func() tea.Msg {
				return router.PushScreenMsg{Screen: guideview.New()}
			}
		}},
		{Label: "Score History", Disabled: !l.signedIn, Action: func() tea.Cmd {
			return func() tea.Msg {
				return router.PushScreenMsg{Screen: historyview.New(l.svc)}
			}
		}},
		{Label: "Exit", Action: func() tea.Cmd {
			return tea.Quit
		}},
	}

	l.menu = components.NewMenu(items)
}

func (l *LandingScreen) signOut() tea.Cmd {
	_ = l.svc.SignOut(context.Background())
	l.rebuildMenu()
	return nil
}

func (l *LandingScreen) Init() tea.Cmd {
	return nil
}

func (l *LandingScreen) Title() string {
	return "Home"
}

func (l *LandingScreen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "↑/↓", Description: "Navigate"},
		{Key: "Enter", Description: "Select"},
		{Key: "Ctrl+C", Description: "Quit"},
	}
}

func (l *LandingScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	// Sign-in state can change while this screen is buried in the stack.
	if (l.svc.Current() != nil) != l.signedIn {
		l.rebuildMenu()
	}

	var cmd tea.Cmd
	l.menu, cmd = l.menu.Update(msg)
	return l, cmd
}

func (l *LandingScreen) View(width, height int) string {
	var sections []string

	sections = append(sections,
		lipgloss.NewStyle().Foreground(theme.Primary).Bold(true).Render(banner))
	sections = append(sections, "")
	sections = append(sections,
		lipgloss.NewStyle().Foreground(theme.TextDim).Render(tagline))
	sections = append(sections, "")

	if u := l.svc.Current(); u != nil {
		sections = append(sections,
			lipgloss.NewStyle().Foreground(theme.Text).Render("Signed in as ")+
				lipgloss.NewStyle().Foreground(theme.Secondary).Render(u.Email))
		sections = append(sections, "")
	}

	sections = append(sections, l.menu.View())

	content := strings.Join(sections, "\n")
	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, content)
}
