package auth

import (
	"context"
	"errors"
	"strings"
	"time"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/wesboland/bolandindex/internal/identity"
	"github.com/wesboland/bolandindex/internal/router"
	"github.com/wesboland/bolandindex/internal/screen"
	"github.com/wesboland/bolandindex/internal/ui/components"
	"github.com/wesboland/bolandindex/internal/ui/layout"
	"github.com/wesboland/bolandindex/internal/ui/theme"
)

const successDwell = 1200 * time.Millisecond

type successTickMsg struct{}

// AuthScreen collects an email and signs the user in. After the success
// interstitial it pops back to the landing screen.
type AuthScreen struct {
	svc   *identity.Service
	input components.TextInput

	success  bool
	greeting string
	email    string
}

var _ screen.Screen = (*AuthScreen)(nil)
var _ screen.KeyHintProvider = (*AuthScreen)(nil)

// New creates an AuthScreen.
func New(svc *identity.Service) *AuthScreen {
	return &AuthScreen{
		svc:   svc,
		input: components.NewTextInput("name@example.com", 254),
	}
}

func (a *AuthScreen) Init() tea.Cmd {
	return a.input.Init()
}

func (a *AuthScreen) Title() string {
	return "Sign In"
}

func (a *AuthScreen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "Enter", Description: "Sign In"},
		{Key: "Esc", Description: "Back"},
	}
}

func (a *AuthScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	if a.success {
		switch msg.(type) {
		case successTickMsg, tea.KeyPressMsg:
			return a, func() tea.Msg { return router.PopScreenMsg{} }
		}
		return a, nil
	}

	if kmsg, ok := msg.(tea.KeyMsg); ok {
		switch kmsg.String() {
		case "esc":
			return a, func() tea.Msg { return router.PopScreenMsg{} }
		case "enter":
			return a, a.signIn()
		}
	}

	var cmd tea.Cmd
	a.input, cmd = a.input.Update(msg)
	return a, cmd
}

func (a *AuthScreen) signIn() tea.Cmd {
	u, created, err := a.svc.SignIn(context.Background(), a.input.Value())
	if err != nil {
		if errors.Is(err, identity.ErrInvalidEmail) {
			a.input.SetError("Enter a valid email address")
		} else {
			a.input.SetError("Could not save your profile, try again")
		}
		return nil
	}

	a.success = true
	a.email = u.Email
	if created {
		a.greeting = "Welcome!"
	} else {
		a.greeting = "Welcome back!"
	}
	return tea.Tick(successDwell, func(time.Time) tea.Msg {
		return successTickMsg{}
	})
}

func (a *AuthScreen) View(width, height int) string {
	var sections []string

	if a.success {
		sections = append(sections,
			lipgloss.NewStyle().Foreground(theme.Success).Bold(true).Render(a.greeting))
		sections = append(sections, "")
		sections = append(sections,
			lipgloss.NewStyle().Foreground(theme.Text).Render("Signed in as ")+
				lipgloss.NewStyle().Foreground(theme.Secondary).Render(a.email))
	} else {
		sections = append(sections,
			lipgloss.NewStyle().Foreground(theme.Text).Bold(true).
				Render("Enter your email to track your scores"))
		sections = append(sections, "")
		sections = append(sections,
			lipgloss.NewStyle().Foreground(theme.TextDim).
				Render("Your results stay on this machine, keyed by email."))
		sections = append(sections, "")
		sections = append(sections, a.input.View())
	}

	content := strings.Join(sections, "\n")
	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, content)
}
