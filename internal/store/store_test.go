package store

import (
	"context"
	"testing"

	"github.com/wesboland/bolandindex/internal/assessment"
	"github.com/wesboland/bolandindex/internal/identity"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()
	s, err := Open("file::memory:?cache=shared")
	if err != nil {
		t.Fatalf("open test store: %v", err)
	}
	t.Cleanup(func() { s.Close() })
	return s
}

func testScores(n int) assessment.Scores {
	s := assessment.NewScores()
	for _, c := range assessment.AllCategories() {
		s[c] = n
	}
	return s
}

func TestOpenClose(t *testing.T) {
	s := openTestStore(t)
	if s.Client() == nil {
		t.Fatal("expected non-nil ent client")
	}
}

func TestPragmasApplied(t *testing.T) {
	s := openTestStore(t)
	db := s.DB()

	tests := []struct {
		pragma string
		want   string
	}{
		// WAL mode falls back to "memory" for in-memory databases,
		// so journal_mode is only meaningful with file-based DBs.
		{"foreign_keys", "1"},
		{"synchronous", "1"}, // NORMAL = 1
	}

	for _, tt := range tests {
		var got string
		err := db.QueryRow("PRAGMA " + tt.pragma).Scan(&got)
		if err != nil {
			t.Errorf("PRAGMA %s: %v", tt.pragma, err)
			continue
		}
		if got != tt.want {
			t.Errorf("PRAGMA %s = %q, want %q", tt.pragma, got, tt.want)
		}
	}
}

func TestUserRepoGetAbsent(t *testing.T) {
	s := openTestStore(t)
	repo := s.UserRepo()

	u, err := repo.Get(context.Background(), "nobody@example.com")
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if u != nil {
		t.Fatalf("expected nil for absent record, got %+v", u)
	}
}

func TestUserRepoPutGetRoundtrip(t *testing.T) {
	s := openTestStore(t)
	repo := s.UserRepo()
	ctx := context.Background()

	in := &identity.User{
		Email: "alice@example.com",
		History: []identity.SavedScore{
			{ID: "id-1", Date: "Jan 2, 2026", Total: 200, Scores: testScores(40)},
		},
	}
	if err := repo.Put(ctx, in); err != nil {
		t.Fatalf("put: %v", err)
	}

	out, err := repo.Get(ctx, "alice@example.com")
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if out == nil {
		t.Fatal("expected stored record")
	}
	if out.Email != in.Email {
		t.Errorf("email = %q, want %q", out.Email, in.Email)
	}
	if len(out.History) != 1 {
		t.Fatalf("history length = %d, want 1", len(out.History))
	}
	if out.History[0].Total != 200 {
		t.Errorf("total = %d, want 200", out.History[0].Total)
	}
	if out.History[0].Scores[assessment.CategorySleep] != 40 {
		t.Errorf("sleep score = %d, want 40", out.History[0].Scores[assessment.CategorySleep])
	}
}

func TestUserRepoPutReplaces(t *testing.T) {
	s := openTestStore(t)
	repo := s.UserRepo()
	ctx := context.Background()

	u := &identity.User{Email: "bob@example.com"}
	if err := repo.Put(ctx, u); err != nil {
		t.Fatalf("put: %v", err)
	}

	u.History = []identity.SavedScore{
		{ID: "id-2", Date: "Feb 3, 2026", Total: 150, Scores: testScores(30)},
	}
	if err := repo.Put(ctx, u); err != nil {
		t.Fatalf("put update: %v", err)
	}

	out, err := repo.Get(ctx, "bob@example.com")
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if len(out.History) != 1 {
		t.Fatalf("history length = %d, want 1", len(out.History))
	}

	// Still a single row per email.
	count, err := s.Client().UserRecord.Query().Count(ctx)
	if err != nil {
		t.Fatalf("count: %v", err)
	}
	if count != 1 {
		t.Errorf("user records = %d, want 1", count)
	}
}

func TestSessionSlotLifecycle(t *testing.T) {
	s := openTestStore(t)
	repo := s.UserRepo()
	ctx := context.Background()

	// Empty at start.
	u, err := repo.Session(ctx)
	if err != nil {
		t.Fatalf("session (empty): %v", err)
	}
	if u != nil {
		t.Fatal("expected no session")
	}

	if err := repo.Put(ctx, &identity.User{Email: "carol@example.com"}); err != nil {
		t.Fatalf("put: %v", err)
	}
	if err := repo.SetSession(ctx, "carol@example.com"); err != nil {
		t.Fatalf("set session: %v", err)
	}

	u, err = repo.Session(ctx)
	if err != nil {
		t.Fatalf("session: %v", err)
	}
	if u == nil || u.Email != "carol@example.com" {
		t.Fatalf("session = %+v, want carol@example.com", u)
	}

	// Re-pointing the slot keeps a single row.
	if err := repo.Put(ctx, &identity.User{Email: "dave@example.com"}); err != nil {
		t.Fatalf("put: %v", err)
	}
	if err := repo.SetSession(ctx, "dave@example.com"); err != nil {
		t.Fatalf("set session again: %v", err)
	}
	count, err := s.Client().SessionSlot.Query().Count(ctx)
	if err != nil {
		t.Fatalf("count slots: %v", err)
	}
	if count != 1 {
		t.Errorf("session slots = %d, want 1", count)
	}

	// Clearing the slot leaves the records intact.
	if err := repo.ClearSession(ctx); err != nil {
		t.Fatalf("clear session: %v", err)
	}
	u, err = repo.Session(ctx)
	if err != nil {
		t.Fatalf("session (cleared): %v", err)
	}
	if u != nil {
		t.Fatal("expected cleared session")
	}
	rec, err := repo.Get(ctx, "carol@example.com")
	if err != nil {
		t.Fatalf("get after clear: %v", err)
	}
	if rec == nil {
		t.Fatal("per-email record should survive sign-out")
	}
}

func TestEmailKeysAreCaseSensitive(t *testing.T) {
	s := openTestStore(t)
	repo := s.UserRepo()
	ctx := context.Background()

	if err := repo.Put(ctx, &identity.User{Email: "Eve@example.com"}); err != nil {
		t.Fatalf("put: %v", err)
	}
	u, err := repo.Get(ctx, "eve@example.com")
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if u != nil {
		t.Error("lookup is not exact-match: lowercased email found a record")
	}
}
