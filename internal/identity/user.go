package identity

import (
	"context"

	"github.com/wesboland/bolandindex/internal/assessment"
)

// HistoryCap is the maximum number of saved scores retained per user.
// Newer entries evict the oldest once the cap is exceeded.
const HistoryCap = 10

// SavedScore is one completed attempt, frozen at completion time.
type SavedScore struct {
	ID     string            `json:"id"`
	Date   string            `json:"date"`
	Total  int               `json:"total"`
	Scores assessment.Scores `json:"scores"`
}

// User is a locally-identified participant. The email is the only
// identity: no password, no verification, exact string match.
type User struct {
	Email   string       `json:"email"`
	History []SavedScore `json:"history"`
}

// UserRepo is the persistence boundary for user records and the current
// session slot. Every write replaces the full record, so the backend can
// be a key-value store, a file, or a database.
type UserRepo interface {
	// Get returns the record for email, or nil if none exists. A record
	// that cannot be decoded is reported as absent rather than an error.
	Get(ctx context.Context, email string) (*User, error)

	// Put stores the record under its email, replacing any previous one.
	Put(ctx context.Context, u *User) error

	// Session returns the user behind the current session slot, or nil
	// when signed out.
	Session(ctx context.Context) (*User, error)

	// SetSession points the session slot at email.
	SetSession(ctx context.Context, email string) error

	// ClearSession empties the session slot. Per-email records survive.
	ClearSession(ctx context.Context) error
}
