package identity

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/wesboland/bolandindex/internal/assessment"
	"github.com/wesboland/bolandindex/internal/notify"
)

// ErrInvalidEmail is returned by SignIn for input that cannot be an
// email address. The check is intentionally minimal: anything with an
// "@" passes, matching the local-identity model.
var ErrInvalidEmail = errors.New("enter a valid email address")

// savedScoreDate is the display format frozen into each saved score.
const savedScoreDate = "Jan 2, 2006"

// Service manages the signed-in user and their score history. It is
// not safe for concurrent use; the TUI drives it from a single
// goroutine.
type Service struct {
	repo     UserRepo
	notifier notify.Notifier
	current  *User
}

// NewService creates a Service. Pass notify.Nop{} to disable events.
func NewService(repo UserRepo, notifier notify.Notifier) *Service {
	return &Service{repo: repo, notifier: notifier}
}

// Resume restores the user from the persisted session slot, if any.
// Called once at startup; a broken session is treated as signed out.
func (s *Service) Resume(ctx context.Context) error {
	u, err := s.repo.Session(ctx)
	if err != nil {
		return err
	}
	s.current = u
	return nil
}

// Current returns the signed-in user, or nil.
func (s *Service) Current() *User {
	return s.current
}

// SignIn signs in as email, creating a record on first use; created
// reports whether a new record was made. It emits a signup event on
// every successful sign-in, new record or not. On ErrInvalidEmail no
// state changes and nothing is emitted.
func (s *Service) SignIn(ctx context.Context, email string) (u *User, created bool, err error) {
	email = strings.TrimSpace(email)
	if !strings.Contains(email, "@") {
		return nil, false, ErrInvalidEmail
	}

	u, err = s.repo.Get(ctx, email)
	if err != nil {
		return nil, false, err
	}
	if u == nil {
		u = &User{Email: email}
		created = true
	}

	if err := s.repo.Put(ctx, u); err != nil {
		return nil, false, err
	}
	if err := s.repo.SetSession(ctx, email); err != nil {
		return nil, false, err
	}

	s.current = u
	s.notifier.Signup(email)
	return u, created, nil
}

// SignOut clears the session. The user's record and history survive and
// come back on the next sign-in with the same email.
func (s *Service) SignOut(ctx context.Context) error {
	s.current = nil
	return s.repo.ClearSession(ctx)
}

// RecordScore saves a completed attempt to the current user's history
// and emits a score_update event. With nobody signed in it does nothing.
// The newest entry goes first; entries past the cap fall off the end.
func (s *Service) RecordScore(ctx context.Context, scores assessment.Scores) (*SavedScore, error) {
	if s.current == nil {
		return nil, nil
	}

	total := scores.Total()
	saved := SavedScore{
		ID:     uuid.NewString(),
		Date:   time.Now().Format(savedScoreDate),
		Total:  total,
		Scores: scores.Clone(),
	}

	history := make([]SavedScore, 0, len(s.current.History)+1)
	history = append(history, saved)
	history = append(history, s.current.History...)
	if len(history) > HistoryCap {
		history = history[:HistoryCap]
	}
	s.current.History = history

	if err := s.repo.Put(ctx, s.current); err != nil {
		return &saved, err
	}
	if err := s.repo.SetSession(ctx, s.current.Email); err != nil {
		return &saved, err
	}

	s.notifier.ScoreUpdate(s.current.Email, total, assessment.Classify(total), scores)
	return &saved, nil
}
