package assessment

// Attempt is one run through the question bank. It tracks the question
// pointer and the running scores. A fresh Attempt starts at the first
// question with all categories at zero; there is no partial save — an
// attempt either completes or is abandoned.
type Attempt struct {
	index  int
	scores Scores
	done   bool
}

// NewAttempt starts a new attempt at the first question with zeroed scores.
func NewAttempt() *Attempt {
	return &Attempt{scores: NewScores()}
}

// Current returns the question at the pointer, or the zero Question once
// the attempt is complete.
func (a *Attempt) Current() Question {
	if a.done {
		return Question{}
	}
	return questionBank[a.index]
}

// Progress returns the 1-based position of the current question and the
// bank size. After completion the position equals the bank size.
func (a *Attempt) Progress() (current, total int) {
	if a.done {
		return len(questionBank), len(questionBank)
	}
	return a.index + 1, len(questionBank)
}

// Answer records a choice weight against the current question's category
// and advances the pointer. Answering the last question completes the
// attempt instead of advancing. Returns true once the attempt is complete.
//
// Input always comes from the fixed choice set, so there is no invalid
// weight or skipped question to handle.
func (a *Attempt) Answer(weight int) (done bool) {
	if a.done {
		return true
	}
	q := questionBank[a.index]
	a.scores[q.Category] += weight

	if a.index == len(questionBank)-1 {
		a.done = true
		return true
	}
	a.index++
	return false
}

// Done reports whether every question has been answered.
func (a *Attempt) Done() bool {
	return a.done
}

// Scores returns a snapshot copy of the accumulated scores. Callers never
// see the live map, so a SavedScore can't alias in-progress state.
func (a *Attempt) Scores() Scores {
	return a.scores.Clone()
}

// Total returns the running total score.
func (a *Attempt) Total() int {
	return a.scores.Total()
}
