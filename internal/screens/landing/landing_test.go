package landing

import (
	"context"
	"strings"
	"testing"

	tea "charm.land/bubbletea/v2"

	"github.com/wesboland/bolandindex/internal/identity"
	"github.com/wesboland/bolandindex/internal/notify"
	"github.com/wesboland/bolandindex/internal/router"
	"github.com/wesboland/bolandindex/internal/screen"
	"github.com/wesboland/bolandindex/internal/screens/auth"
	"github.com/wesboland/bolandindex/internal/screens/quiz"
	"github.com/wesboland/bolandindex/internal/store"
)

func testService() *identity.Service {
	return identity.NewService(store.NewMemoryRepo(), notify.Nop{})
}

func TestLandingScreen_SignedOut_BeginGoesStraightToQuiz(t *testing.T) {
	l := New(testService())

	_, cmd := l.Update(tea.KeyPressMsg{Code: tea.KeyEnter})
	if cmd == nil {
		t.Fatal("expected a command on Begin Assessment")
	}
	msg, ok := cmd().(router.PushScreenMsg)
	if !ok {
		t.Fatal("expected PushScreenMsg")
	}
	if _, ok := msg.Screen.(*quiz.QuizScreen); !ok {
		t.Errorf("pushed %T, want the quiz without a sign-in detour", msg.Screen)
	}
}

func TestLandingScreen_SignInItemGoesToAuth(t *testing.T) {
	l := New(testService())

	var s screen.Screen = l
	s, _ = s.Update(tea.KeyPressMsg{Code: tea.KeyDown})
	_, cmd := s.Update(tea.KeyPressMsg{Code: tea.KeyEnter})
	if cmd == nil {
		t.Fatal("expected a command on Sign In")
	}
	msg, ok := cmd().(router.PushScreenMsg)
	if !ok {
		t.Fatal("expected PushScreenMsg")
	}
	if _, ok := msg.Screen.(*auth.AuthScreen); !ok {
		t.Errorf("pushed %T, want the sign-in screen", msg.Screen)
	}
}

func TestLandingScreen_SignedIn_BeginGoesToQuiz(t *testing.T) {
	svc := testService()
	if _, _, err := svc.SignIn(context.Background(), "alice@example.com"); err != nil {
		t.Fatalf("SignIn: %v", err)
	}

	l := New(svc)
	_, cmd := l.Update(tea.KeyPressMsg{Code: tea.KeyEnter})
	if cmd == nil {
		t.Fatal("expected a command on Begin Assessment")
	}
	msg, ok := cmd().(router.PushScreenMsg)
	if !ok {
		t.Fatal("expected PushScreenMsg")
	}
	if _, ok := msg.Screen.(*quiz.QuizScreen); !ok {
		t.Errorf("pushed %T, want the quiz", msg.Screen)
	}
}

func TestLandingScreen_ShowsSignedInEmail(t *testing.T) {
	svc := testService()
	if _, _, err := svc.SignIn(context.Background(), "alice@example.com"); err != nil {
		t.Fatalf("SignIn: %v", err)
	}

	view := New(svc).View(100, 40)
	if !strings.Contains(view, "alice@example.com") {
		t.Error("view missing the signed-in email")
	}
}

func TestLandingScreen_RefreshesAfterExternalSignIn(t *testing.T) {
	svc := testService()
	l := New(svc)

	// Sign in while the landing screen is buried in the stack.
	if _, _, err := svc.SignIn(context.Background(), "alice@example.com"); err != nil {
		t.Fatalf("SignIn: %v", err)
	}

	updated, _ := l.Update(tea.KeyPressMsg{Code: tea.KeyDown})
	if !strings.Contains(updated.View(100, 40), "alice@example.com") {
		t.Error("menu did not refresh after sign-in")
	}
}
