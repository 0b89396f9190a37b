package store

import (
	"context"
	"fmt"
	"os"

	"github.com/wesboland/bolandindex/ent"
	entschema "github.com/wesboland/bolandindex/ent/schema"
	"github.com/wesboland/bolandindex/ent/userrecord"

	"github.com/wesboland/bolandindex/internal/assessment"
	"github.com/wesboland/bolandindex/internal/identity"
)

// EntUserRepo implements identity.UserRepo on top of the ent client.
type EntUserRepo struct {
	client *ent.Client
}

var _ identity.UserRepo = (*EntUserRepo)(nil)

func (r *EntUserRepo) Get(ctx context.Context, email string) (*identity.User, error) {
	rec, err := r.client.UserRecord.Query().
		Where(userrecord.Email(email)).
		Only(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, nil
		}
		// A row that cannot be read back (e.g. malformed history JSON)
		// is treated as absent so sign-in falls back to a fresh record
		// instead of wedging the session.
		fmt.Fprintf(os.Stderr, "warning: unreadable record for %s: %v\n", email, err)
		return nil, nil
	}
	return recordToUser(rec), nil
}

func (r *EntUserRepo) Put(ctx context.Context, u *identity.User) error {
	history := historyToData(u.History)

	existing, err := r.client.UserRecord.Query().
		Where(userrecord.Email(u.Email)).
		Only(ctx)
	if err != nil {
		if !ent.IsNotFound(err) {
			return fmt.Errorf("query user record: %w", err)
		}
		_, err = r.client.UserRecord.Create().
			SetEmail(u.Email).
			SetHistory(history).
			Save(ctx)
		if err != nil {
			return fmt.Errorf("create user record: %w", err)
		}
		return nil
	}

	_, err = existing.Update().
		SetHistory(history).
		Save(ctx)
	if err != nil {
		return fmt.Errorf("update user record: %w", err)
	}
	return nil
}

func (r *EntUserRepo) Session(ctx context.Context) (*identity.User, error) {
	slot, err := r.client.SessionSlot.Query().First(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("query session slot: %w", err)
	}
	return r.Get(ctx, slot.Email)
}

func (r *EntUserRepo) SetSession(ctx context.Context, email string) error {
	// Full-record replace: drop any previous slot, then write the new one.
	if _, err := r.client.SessionSlot.Delete().Exec(ctx); err != nil {
		return fmt.Errorf("clear session slot: %w", err)
	}
	_, err := r.client.SessionSlot.Create().
		SetEmail(email).
		Save(ctx)
	if err != nil {
		return fmt.Errorf("set session slot: %w", err)
	}
	return nil
}

func (r *EntUserRepo) ClearSession(ctx context.Context) error {
	if _, err := r.client.SessionSlot.Delete().Exec(ctx); err != nil {
		return fmt.Errorf("clear session slot: %w", err)
	}
	return nil
}

func recordToUser(rec *ent.UserRecord) *identity.User {
	u := &identity.User{
		Email:   rec.Email,
		History: make([]identity.SavedScore, 0, len(rec.History)),
	}
	for _, h := range rec.History {
		scores := assessment.NewScores()
		for k, v := range h.Scores {
			scores[assessment.Category(k)] = v
		}
		u.History = append(u.History, identity.SavedScore{
			ID:     h.ID,
			Date:   h.Date,
			Total:  h.Total,
			Scores: scores,
		})
	}
	return u
}

func historyToData(history []identity.SavedScore) []entschema.SavedScoreData {
	out := make([]entschema.SavedScoreData, 0, len(history))
	for _, h := range history {
		scores := make(map[string]int, len(h.Scores))
		for k, v := range h.Scores {
			scores[string(k)] = v
		}
		out = append(out, entschema.SavedScoreData{
			ID:     h.ID,
			Date:   h.Date,
			Total:  h.Total,
			Scores: scores,
		})
	}
	return out
}
