package results

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

func testScores(perCategory int) assessment.Scores {
	s := assessment.NewScores()
	for _, c := range assessment.AllCategories() {
		s[c] = perCategory
	}
	return s
}

func testService(t *testing.T) *identity.Service {
	t.Helper()
	svc := identity.NewService(store.NewMemoryRepo(), notify.Nop{})
	if _, _, err := svc.SignIn(context.Background(), "results@example.com"); err != nil {
		t.Fatalf("SignIn: %v", err)
	}
	return svc
}

func TestResultsScreen_ShowsTotalAndRank(t *testing.T) {
	r := New(testService(t), testScores(40), nil, nil)

	view := r.View(100, 40)
	if !strings.Contains(view, "200 / 250") {
		t.Error("view missing the total")
	}
	if !strings.Contains(view, "Excellent") {
		t.Error("view missing the rank")
	}
}

func TestResultsScreen_ShowsSaveFailureNotice(t *testing.T) {
	r := New(testService(t), testScores(40), context.DeadlineExceeded, nil)

	view := r.View(100, 40)
	if !strings.Contains(view, "Could not save") {
		t.Error("expected a save failure notice")
	}
}

func TestResultsScreen_ShowsHistoryWithMultipleEntries(t *testing.T) {
	svc := testService(t)
	ctx := context.Background()
	if _, err := svc.RecordScore(ctx, testScores(30)); err != nil {
		t.Fatalf("RecordScore: %v", err)
	}
	if _, err := svc.RecordScore(ctx, testScores(40)); err != nil {
		t.Fatalf("RecordScore: %v", err)
	}

	r := New(svc, testScores(40), nil, nil)
	if !strings.Contains(r.View(100, 40), "Recent scores") {
		t.Error("expected the recent scores list")
	}
}

type stubScreen struct{}

func (stubScreen) Init() tea.Cmd                             { return nil }
func (s stubScreen) Update(tea.Msg) (screen.Screen, tea.Cmd) { return s, nil }
func (stubScreen) View(int, int) string                      { return "" }
func (stubScreen) Title() string                             { return "stub" }

func TestResultsScreen_Retake_ReplacesWithFreshQuiz(t *testing.T) {
	retaken := false
	r := New(testService(t), testScores(40), nil, func() screen.Screen {
		retaken = true
		return stubScreen{}
	})

	_, cmd := r.Update(tea.KeyPressMsg{Code: 'r', Text: "r"})
	if cmd == nil {
		t.Fatal("expected a command on retake")
	}
	if _, ok := cmd().(router.ReplaceScreenMsg); !ok {
		t.Error("expected ReplaceScreenMsg for the retake")
	}
	if !retaken {
		t.Error("retake factory was not invoked")
	}
}

func TestResultsScreen_SignOut_ClearsSessionAndPops(t *testing.T) {
	svc := testService(t)
	r := New(svc, testScores(40), nil, nil)

	_, cmd := r.Update(tea.KeyPressMsg{Code: 's', Text: "s"})
	if svc.Current() != nil {
		t.Error("still signed in after sign-out")
	}
	if cmd == nil {
		t.Fatal("expected a command on sign-out")
	}
	if _, ok := cmd().(router.PopScreenMsg); !ok {
		t.Error("expected PopScreenMsg after sign-out")
	}
}
