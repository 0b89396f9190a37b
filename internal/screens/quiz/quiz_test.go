package quiz

import (
	"context"
	"strings"
	"testing"

	tea "charm.land/bubbletea/v2"

	"github.com/wesboland/bolandindex/internal/assessment"
	"github.com/wesboland/bolandindex/internal/identity"
	"github.com/wesboland/bolandindex/internal/notify"
	"github.com/wesboland/bolandindex/internal/router"
	"github.com/wesboland/bolandindex/internal/screen"
	"github.com/wesboland/bolandindex/internal/store"
)

func keyPress(r rune) tea.KeyPressMsg {
	return tea.KeyPressMsg{Code: r, Text: string(r)}
}

func signedInService(t *testing.T) *identity.Service {
	t.Helper()
	svc := identity.NewService(store.NewMemoryRepo(), notify.Nop{})
	if _, _, err := svc.SignIn(context.Background(), "quiz@example.com"); err != nil {
		t.Fatalf("SignIn: %v", err)
	}
	return svc
}

func TestQuizScreen_Title(t *testing.T) {
	q := New(signedInService(t))
	if q.Title() != "Assessment" {
		t.Errorf("Title = %q, want %q", q.Title(), "Assessment")
	}
}

func TestQuizScreen_ShowsProgress(t *testing.T) {
	q := New(signedInService(t))
	view := q.View(80, 24)
	if !strings.Contains(view, "Question 1/50") {
		t.Errorf("view missing progress indicator:\n%s", view)
	}
}

func TestQuizScreen_AnswerAdvances(t *testing.T) {
	q := New(signedInService(t))

	q.Update(keyPress('3'))
	updated, _ := q.Update(tea.KeyPressMsg{Code: tea.KeyEnter})

	view := updated.View(80, 24)
	if !strings.Contains(view, "Question 2/50") {
		t.Errorf("view did not advance to question 2:\n%s", view)
	}
}

func TestQuizScreen_Esc_Abandons(t *testing.T) {
	q := New(signedInService(t))
	_, cmd := q.Update(tea.KeyPressMsg{Code: tea.KeyEscape})
	if cmd == nil {
		t.Fatal("expected a command on Esc")
	}
	if _, ok := cmd().(router.PopScreenMsg); !ok {
		t.Error("expected PopScreenMsg on Esc")
	}
}

func TestQuizScreen_CompletionRecordsAndShowsResults(t *testing.T) {
	svc := signedInService(t)
	q := New(svc)

	var current screen.Screen = q
	var cmd tea.Cmd
	for i := 0; i < assessment.QuestionsPerCategory*5; i++ {
		current, _ = current.Update(keyPress('5'))
		current, cmd = current.Update(tea.KeyPressMsg{Code: tea.KeyEnter})
	}

	if cmd == nil {
		t.Fatal("expected a command after the last answer")
	}
	if _, ok := cmd().(router.ReplaceScreenMsg); !ok {
		t.Error("expected ReplaceScreenMsg to the results screen")
	}

	history := svc.Current().History
	if len(history) != 1 {
		t.Fatalf("history length = %d, want 1", len(history))
	}
	if history[0].Total != 250 {
		t.Errorf("recorded total = %d, want 250 for all top answers", history[0].Total)
	}
}

func TestQuizScreen_AnonymousCompletionScoresWithoutSaving(t *testing.T) {
	repo := store.NewMemoryRepo()
	svc := identity.NewService(repo, notify.Nop{})
	q := New(svc)

	var current screen.Screen = q
	var cmd tea.Cmd
	for i := 0; i < assessment.QuestionsPerCategory*5; i++ {
		current, _ = current.Update(keyPress('4'))
		current, cmd = current.Update(tea.KeyPressMsg{Code: tea.KeyEnter})
	}

	if cmd == nil {
		t.Fatal("expected a command after the last answer")
	}
	if _, ok := cmd().(router.ReplaceScreenMsg); !ok {
		t.Error("expected ReplaceScreenMsg to the results screen")
	}
	if svc.Current() != nil {
		t.Error("completing the quiz signed somebody in")
	}
}
