package identity

import (
	"context"
	"errors"
	"testing"

	"github.com/wesboland/bolandindex/internal/assessment"
)

// fakeRepo is an in-memory UserRepo for service tests.
type fakeRepo struct {
	users   map[string]*User
	session string

	putErr error
}

func newFakeRepo() *fakeRepo {
	return &fakeRepo{users: make(map[string]*User)}
}

func (r *fakeRepo) Get(_ context.Context, email string) (*User, error) {
	u, ok := r.users[email]
	if !ok {
		return nil, nil
	}
	cp := *u
	cp.History = append([]SavedScore(nil), u.History...)
	return &cp, nil
}

func (r *fakeRepo) Put(_ context.Context, u *User) error {
	if r.putErr != nil {
		return r.putErr
	}
	cp := *u
	cp.History = append([]SavedScore(nil), u.History...)
	r.users[u.Email] = &cp
	return nil
}

func (r *fakeRepo) Session(ctx context.Context) (*User, error) {
	if r.session == "" {
		return nil, nil
	}
	return r.Get(ctx, r.session)
}

func (r *fakeRepo) SetSession(_ context.Context, email string) error {
	r.session = email
	return nil
}

func (r *fakeRepo) ClearSession(context.Context) error {
	r.session = ""
	return nil
}

// recordingNotifier captures emitted events in order.
type recordingNotifier struct {
	events []string
	emails []string
	totals []int
	ranks  []assessment.Rank
}

func (n *recordingNotifier) Signup(email string) {
	n.events = append(n.events, "signup")
	n.emails = append(n.emails, email)
}

func (n *recordingNotifier) ScoreUpdate(email string, total int, rank assessment.Rank, _ assessment.Scores) {
	n.events = append(n.events, "score_update")
	n.emails = append(n.emails, email)
	n.totals = append(n.totals, total)
	n.ranks = append(n.ranks, rank)
}

func evenScores(perCategory int) assessment.Scores {
	s := assessment.NewScores()
	for _, c := range assessment.AllCategories() {
		s[c] = perCategory
	}
	return s
}

func TestSignInRejectsInvalidEmail(t *testing.T) {
	repo := newFakeRepo()
	var n recordingNotifier
	svc := NewService(repo, &n)
	ctx := context.Background()

	for _, bad := range []string{"", "   ", "alice", "alice.example.com"} {
		u, _, err := svc.SignIn(ctx, bad)
		if !errors.Is(err, ErrInvalidEmail) {
			t.Errorf("SignIn(%q) error = %v, want ErrInvalidEmail", bad, err)
		}
		if u != nil {
			t.Errorf("SignIn(%q) returned a user", bad)
		}
	}

	if svc.Current() != nil {
		t.Error("invalid sign-in changed the current user")
	}
	if repo.session != "" {
		t.Error("invalid sign-in set the session")
	}
	if len(n.events) != 0 {
		t.Errorf("invalid sign-in emitted events: %v", n.events)
	}
}

func TestSignInCreatesAndNotifies(t *testing.T) {
	repo := newFakeRepo()
	var n recordingNotifier
	svc := NewService(repo, &n)
	ctx := context.Background()

	u, created, err := svc.SignIn(ctx, "alice@example.com")
	if err != nil {
		t.Fatalf("SignIn: %v", err)
	}
	if !created {
		t.Error("created = false for a first-time email")
	}
	if u.Email != "alice@example.com" {
		t.Errorf("email = %q", u.Email)
	}
	if len(u.History) != 0 {
		t.Errorf("new user has history: %v", u.History)
	}
	if repo.session != "alice@example.com" {
		t.Errorf("session = %q", repo.session)
	}
	if len(n.events) != 1 || n.events[0] != "signup" {
		t.Errorf("events = %v, want [signup]", n.events)
	}
}

func TestSignInTrimsWhitespace(t *testing.T) {
	repo := newFakeRepo()
	svc := NewService(repo, &recordingNotifier{})

	u, _, err := svc.SignIn(context.Background(), "  alice@example.com  ")
	if err != nil {
		t.Fatalf("SignIn: %v", err)
	}
	if u.Email != "alice@example.com" {
		t.Errorf("email = %q, want trimmed", u.Email)
	}
}

func TestSignInReturningUserKeepsHistoryAndStillNotifies(t *testing.T) {
	repo := newFakeRepo()
	repo.users["alice@example.com"] = &User{
		Email:   "alice@example.com",
		History: []SavedScore{{ID: "old", Date: "Jan 2, 2026", Total: 180}},
	}

	var n recordingNotifier
	svc := NewService(repo, &n)

	u, created, err := svc.SignIn(context.Background(), "alice@example.com")
	if err != nil {
		t.Fatalf("SignIn: %v", err)
	}
	if created {
		t.Error("created = true for a pre-existing email")
	}
	if len(u.History) != 1 || u.History[0].ID != "old" {
		t.Errorf("history = %v, want the existing entry", u.History)
	}
	// Signup fires on every sign-in, not only the first.
	if len(n.events) != 1 || n.events[0] != "signup" {
		t.Errorf("events = %v, want [signup]", n.events)
	}
}

func TestSignOutKeepsRecord(t *testing.T) {
	repo := newFakeRepo()
	svc := NewService(repo, &recordingNotifier{})
	ctx := context.Background()

	if _, _, err := svc.SignIn(ctx, "alice@example.com"); err != nil {
		t.Fatalf("SignIn: %v", err)
	}
	if err := svc.SignOut(ctx); err != nil {
		t.Fatalf("SignOut: %v", err)
	}

	if svc.Current() != nil {
		t.Error("still signed in after SignOut")
	}
	if repo.session != "" {
		t.Errorf("session = %q, want cleared", repo.session)
	}
	if _, ok := repo.users["alice@example.com"]; !ok {
		t.Error("sign-out deleted the user record")
	}
}

func TestRecordScoreWithoutSessionIsNoop(t *testing.T) {
	repo := newFakeRepo()
	var n recordingNotifier
	svc := NewService(repo, &n)

	saved, err := svc.RecordScore(context.Background(), evenScores(40))
	if err != nil {
		t.Fatalf("RecordScore: %v", err)
	}
	if saved != nil {
		t.Errorf("saved = %v, want nil without a session", saved)
	}
	if len(n.events) != 0 {
		t.Errorf("events = %v, want none", n.events)
	}
}

func TestRecordScorePersistsAndNotifies(t *testing.T) {
	repo := newFakeRepo()
	var n recordingNotifier
	svc := NewService(repo, &n)
	ctx := context.Background()

	if _, _, err := svc.SignIn(ctx, "alice@example.com"); err != nil {
		t.Fatalf("SignIn: %v", err)
	}

	scores := evenScores(40)
	saved, err := svc.RecordScore(ctx, scores)
	if err != nil {
		t.Fatalf("RecordScore: %v", err)
	}
	if saved == nil {
		t.Fatal("saved = nil")
	}
	if saved.ID == "" {
		t.Error("saved score has no ID")
	}
	if saved.Date == "" {
		t.Error("saved score has no date")
	}
	if saved.Total != 200 {
		t.Errorf("total = %d, want 200", saved.Total)
	}

	stored := repo.users["alice@example.com"]
	if len(stored.History) != 1 || stored.History[0].ID != saved.ID {
		t.Errorf("persisted history = %v", stored.History)
	}

	want := []string{"signup", "score_update"}
	if len(n.events) != 2 || n.events[0] != want[0] || n.events[1] != want[1] {
		t.Errorf("events = %v, want %v", n.events, want)
	}
	if n.totals[0] != 200 || n.ranks[0] != assessment.RankExcellent {
		t.Errorf("score_update carried total=%d rank=%s", n.totals[0], n.ranks[0])
	}
}

func TestRecordScoreSnapshotsScores(t *testing.T) {
	repo := newFakeRepo()
	svc := NewService(repo, &recordingNotifier{})
	ctx := context.Background()

	if _, _, err := svc.SignIn(ctx, "alice@example.com"); err != nil {
		t.Fatalf("SignIn: %v", err)
	}

	scores := evenScores(40)
	saved, err := svc.RecordScore(ctx, scores)
	if err != nil {
		t.Fatalf("RecordScore: %v", err)
	}

	scores[assessment.CategorySleep] = 1
	if saved.Scores[assessment.CategorySleep] != 40 {
		t.Error("saved score shares backing storage with the live scores")
	}
}

func TestRecordScoreNewestFirstAndCapped(t *testing.T) {
	repo := newFakeRepo()
	svc := NewService(repo, &recordingNotifier{})
	ctx := context.Background()

	if _, _, err := svc.SignIn(ctx, "alice@example.com"); err != nil {
		t.Fatalf("SignIn: %v", err)
	}

	var ids []string
	for i := 0; i < HistoryCap+3; i++ {
		saved, err := svc.RecordScore(ctx, evenScores(30+i))
		if err != nil {
			t.Fatalf("RecordScore #%d: %v", i, err)
		}
		ids = append(ids, saved.ID)
	}

	history := svc.Current().History
	if len(history) != HistoryCap {
		t.Fatalf("history length = %d, want %d", len(history), HistoryCap)
	}
	// Newest first: the last recorded ID leads, the earliest three are gone.
	if history[0].ID != ids[len(ids)-1] {
		t.Error("newest entry is not first")
	}
	for _, h := range history {
		for _, dropped := range ids[:3] {
			if h.ID == dropped {
				t.Errorf("evicted entry %s still present", dropped)
			}
		}
	}
}

func TestRecordScorePersistFailureStillReturnsScore(t *testing.T) {
	repo := newFakeRepo()
	svc := NewService(repo, &recordingNotifier{})
	ctx := context.Background()

	if _, _, err := svc.SignIn(ctx, "alice@example.com"); err != nil {
		t.Fatalf("SignIn: %v", err)
	}

	repo.putErr = errors.New("disk full")
	saved, err := svc.RecordScore(ctx, evenScores(40))
	if err == nil {
		t.Error("expected a persistence error")
	}
	if saved == nil {
		t.Error("saved = nil, want the score even when persistence fails")
	}
}

func TestResumeRestoresSession(t *testing.T) {
	repo := newFakeRepo()
	repo.users["alice@example.com"] = &User{Email: "alice@example.com"}
	repo.session = "alice@example.com"

	svc := NewService(repo, &recordingNotifier{})
	if err := svc.Resume(context.Background()); err != nil {
		t.Fatalf("Resume: %v", err)
	}
	if svc.Current() == nil || svc.Current().Email != "alice@example.com" {
		t.Errorf("current = %v, want alice", svc.Current())
	}
}
