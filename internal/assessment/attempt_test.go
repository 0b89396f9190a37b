package assessment

import (
	"math/rand"
	"testing"
)

func TestAttemptTotalEqualsSumOfWeights(t *testing.T) {
	rng := rand.New(rand.NewSource(7))

	for trial := 0; trial < 20; trial++ {
		a := NewAttempt()
		sum := 0
		for !a.Done() {
			w := rng.Intn(MaxWeight) + 1
			sum += w
			a.Answer(w)
		}
		if a.Total() != sum {
			t.Fatalf("trial %d: total = %d, want %d", trial, a.Total(), sum)
		}
	}
}

func TestAttemptCompletesAtLastQuestion(t *testing.T) {
	a := NewAttempt()
	n := len(Bank())

	for i := 0; i < n-1; i++ {
		if done := a.Answer(3); done {
			t.Fatalf("attempt done after %d answers, want %d", i+1, n)
		}
	}
	if !a.Answer(3) {
		t.Fatal("attempt not done after answering the last question")
	}
	if !a.Done() {
		t.Fatal("Done() = false after completion")
	}

	// Answering past the end is a no-op on the scores.
	total := a.Total()
	a.Answer(5)
	if a.Total() != total {
		t.Errorf("total changed after completion: %d -> %d", total, a.Total())
	}
}

func TestAttemptProgress(t *testing.T) {
	a := NewAttempt()
	cur, total := a.Progress()
	if cur != 1 || total != 50 {
		t.Errorf("initial progress = %d/%d, want 1/50", cur, total)
	}

	a.Answer(3)
	cur, _ = a.Progress()
	if cur != 2 {
		t.Errorf("progress after one answer = %d, want 2", cur)
	}
}

func TestAttemptScoresAreSnapshot(t *testing.T) {
	a := NewAttempt()
	a.Answer(5)

	snap := a.Scores()
	a.Answer(5)

	if snap.Total() == a.Total() {
		t.Error("snapshot tracked the live attempt; expected a value copy")
	}
}

func TestAttemptAccumulatesIntoQuestionCategory(t *testing.T) {
	a := NewAttempt()
	q := a.Current()
	a.Answer(4)

	scores := a.Scores()
	if scores[q.Category] != 4 {
		t.Errorf("scores[%q] = %d, want 4", q.Category, scores[q.Category])
	}
	for _, c := range AllCategories() {
		if c != q.Category && scores[c] != 0 {
			t.Errorf("scores[%q] = %d, want 0", c, scores[c])
		}
	}
}

func TestNewAttemptResetsState(t *testing.T) {
	a := NewAttempt()
	for !a.Done() {
		a.Answer(5)
	}

	// A retake is a fresh attempt: pointer back to the first question,
	// every category back to zero.
	b := NewAttempt()
	cur, _ := b.Progress()
	if cur != 1 {
		t.Errorf("fresh attempt starts at question %d, want 1", cur)
	}
	for _, c := range AllCategories() {
		if b.Scores()[c] != 0 {
			t.Errorf("fresh attempt scores[%q] = %d, want 0", c, b.Scores()[c])
		}
	}
}

func TestScoresCeilingAndFloor(t *testing.T) {
	low, high := NewAttempt(), NewAttempt()
	for !low.Done() {
		low.Answer(MinWeight)
	}
	for !high.Done() {
		high.Answer(MaxWeight)
	}

	if low.Total() != 50 {
		t.Errorf("floor total = %d, want 50", low.Total())
	}
	if high.Total() != 250 {
		t.Errorf("ceiling total = %d, want 250", high.Total())
	}
	if Classify(high.Total()) != RankOptimal {
		t.Errorf("ceiling rank = %q, want %q", Classify(high.Total()), RankOptimal)
	}
	for _, c := range AllCategories() {
		if high.Scores()[c] != 50 {
			t.Errorf("ceiling scores[%q] = %d, want 50", c, high.Scores()[c])
		}
	}
}

func TestScoresHasExactlyFiveKeys(t *testing.T) {
	s := NewScores()
	if len(s) != 5 {
		t.Fatalf("scores has %d keys, want 5", len(s))
	}
	for _, c := range AllCategories() {
		if _, ok := s[c]; !ok {
			t.Errorf("scores missing category %q", c)
		}
	}
}

func TestScoresClone(t *testing.T) {
	s := NewScores()
	s[CategorySleep] = 10

	c := s.Clone()
	c[CategorySleep] = 99

	if s[CategorySleep] != 10 {
		t.Errorf("clone mutated the original: %d", s[CategorySleep])
	}
}
