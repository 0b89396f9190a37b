package notify

import "github.com/wesboland/bolandindex/internal/assessment"

// Notifier is the outbound event sink. Both calls are fire-and-forget:
// they must never block the caller and never surface transport failures.
// Events are delivered in emission order, so a signup always precedes
// that session's score updates.
type Notifier interface {
	// Signup reports a sign-in. It fires whether or not the email had an
	// existing record.
	Signup(email string)

	// ScoreUpdate reports a completed, persisted attempt.
	ScoreUpdate(email string, total int, rank assessment.Rank, scores assessment.Scores)
}

// Nop discards all events. Used when no webhook is configured.
type Nop struct{}

var _ Notifier = Nop{}

func (Nop) Signup(string) {}

func (Nop) ScoreUpdate(string, int, assessment.Rank, assessment.Scores) {}
