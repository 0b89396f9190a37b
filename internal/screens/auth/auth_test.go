package auth

import (
	"context"
	"strings"
	"testing"

	tea "charm.land/bubbletea/v2"

	"github.com/wesboland/bolandindex/internal/identity"
	"github.com/wesboland/bolandindex/internal/notify"
	"github.com/wesboland/bolandindex/internal/router"
	"github.com/wesboland/bolandindex/internal/store"
)

func testService() *identity.Service {
	return identity.NewService(store.NewMemoryRepo(), notify.Nop{})
}

func update(a *AuthScreen, msg tea.Msg) (*AuthScreen, tea.Cmd) {
	updated, cmd := a.Update(msg)
	return updated.(*AuthScreen), cmd
}

func typeString(a *AuthScreen, text string) *AuthScreen {
	for _, r := range text {
		a, _ = update(a, tea.KeyPressMsg{Code: r, Text: string(r)})
	}
	return a
}

func TestAuthScreen_Title(t *testing.T) {
	a := New(testService())
	if a.Title() != "Sign In" {
		t.Errorf("Title = %q, want %q", a.Title(), "Sign In")
	}
}

func TestAuthScreen_InvalidEmail_ShowsError(t *testing.T) {
	svc := testService()
	a := New(svc)

	a = typeString(a, "not-an-email")
	a, _ = update(a, tea.KeyPressMsg{Code: tea.KeyEnter})

	if svc.Current() != nil {
		t.Error("invalid email signed the user in")
	}
	if !strings.Contains(a.View(80, 24), "valid email") {
		t.Error("expected a visible validation message")
	}
}

func TestAuthScreen_ValidEmail_SignsIn(t *testing.T) {
	svc := testService()
	a := New(svc)

	a = typeString(a, "alice@example.com")
	a, cmd := update(a, tea.KeyPressMsg{Code: tea.KeyEnter})

	if svc.Current() == nil || svc.Current().Email != "alice@example.com" {
		t.Fatalf("current = %v, want alice", svc.Current())
	}
	if cmd == nil {
		t.Error("expected the interstitial timer command")
	}
	if !strings.Contains(a.View(80, 24), "Welcome!") {
		t.Error("expected the new-user interstitial")
	}
}

func TestAuthScreen_ReturningEmail_WelcomesBack(t *testing.T) {
	svc := testService()
	if _, _, err := svc.SignIn(context.Background(), "alice@example.com"); err != nil {
		t.Fatalf("SignIn: %v", err)
	}
	if err := svc.SignOut(context.Background()); err != nil {
		t.Fatalf("SignOut: %v", err)
	}

	a := New(svc)
	a = typeString(a, "alice@example.com")
	a, _ = update(a, tea.KeyPressMsg{Code: tea.KeyEnter})

	if !strings.Contains(a.View(80, 24), "Welcome back!") {
		t.Error("expected the returning-user interstitial")
	}
}

func TestAuthScreen_SuccessThenKeyPops(t *testing.T) {
	svc := testService()
	a := New(svc)

	a = typeString(a, "alice@example.com")
	a, _ = update(a, tea.KeyPressMsg{Code: tea.KeyEnter})
	_, cmd := update(a, tea.KeyPressMsg{Code: tea.KeyEnter})

	if cmd == nil {
		t.Fatal("expected a navigation command after the interstitial")
	}
	if _, ok := cmd().(router.PopScreenMsg); !ok {
		t.Error("expected PopScreenMsg back to the landing screen")
	}
}

func TestAuthScreen_Esc_Pops(t *testing.T) {
	a := New(testService())
	_, cmd := update(a, tea.KeyPressMsg{Code: tea.KeyEscape})
	if cmd == nil {
		t.Fatal("expected a command on Esc")
	}
	if _, ok := cmd().(router.PopScreenMsg); !ok {
		t.Error("expected PopScreenMsg on Esc")
	}
}
