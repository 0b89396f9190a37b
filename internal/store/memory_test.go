package store

import (
	"context"
	"testing"

	"github.com/wesboland/bolandindex/internal/assessment"
	"github.com/wesboland/bolandindex/internal/identity"
)

func TestMemoryRepoRoundtrip(t *testing.T) {
	repo := NewMemoryRepo()
	ctx := context.Background()

	u, err := repo.Get(ctx, "a@b.c")
	if err != nil || u != nil {
		t.Fatalf("get absent = (%+v, %v), want (nil, nil)", u, err)
	}

	in := &identity.User{
		Email: "a@b.c",
		History: []identity.SavedScore{
			{ID: "x", Date: "Mar 1, 2026", Total: 100, Scores: testScores(20)},
		},
	}
	if err := repo.Put(ctx, in); err != nil {
		t.Fatalf("put: %v", err)
	}

	out, err := repo.Get(ctx, "a@b.c")
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if out.History[0].Total != 100 {
		t.Errorf("total = %d, want 100", out.History[0].Total)
	}
}

func TestMemoryRepoReturnsCopies(t *testing.T) {
	repo := NewMemoryRepo()
	ctx := context.Background()

	in := &identity.User{
		Email: "a@b.c",
		History: []identity.SavedScore{
			{ID: "x", Date: "Mar 1, 2026", Total: 100, Scores: testScores(20)},
		},
	}
	if err := repo.Put(ctx, in); err != nil {
		t.Fatalf("put: %v", err)
	}

	// Mutating what Get returned must not leak into the stored record.
	got, _ := repo.Get(ctx, "a@b.c")
	got.History[0].Scores[assessment.CategorySleep] = 999

	again, _ := repo.Get(ctx, "a@b.c")
	if again.History[0].Scores[assessment.CategorySleep] == 999 {
		t.Error("repo leaked a live reference to stored scores")
	}
}

func TestMemoryRepoSession(t *testing.T) {
	repo := NewMemoryRepo()
	ctx := context.Background()

	if err := repo.Put(ctx, &identity.User{Email: "a@b.c"}); err != nil {
		t.Fatalf("put: %v", err)
	}
	if err := repo.SetSession(ctx, "a@b.c"); err != nil {
		t.Fatalf("set session: %v", err)
	}

	u, err := repo.Session(ctx)
	if err != nil || u == nil || u.Email != "a@b.c" {
		t.Fatalf("session = (%+v, %v), want a@b.c", u, err)
	}

	if err := repo.ClearSession(ctx); err != nil {
		t.Fatalf("clear: %v", err)
	}
	u, _ = repo.Session(ctx)
	if u != nil {
		t.Error("session not cleared")
	}
}
