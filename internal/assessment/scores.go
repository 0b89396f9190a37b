package assessment

// Scores maps every category to its accumulated points. A Scores value
// always carries exactly the five fixed category keys; mutation is
// additive only and happens through Attempt.Answer.
type Scores map[Category]int

// NewScores returns a zeroed score map with all five category keys.
func NewScores() Scores {
	s := make(Scores, len(AllCategories()))
	for _, c := range AllCategories() {
		s[c] = 0
	}
	return s
}

// Total returns the sum across all categories. The total is fully
// determined by the per-category values; there is no independent state.
func (s Scores) Total() int {
	total := 0
	for _, v := range s {
		total += v
	}
	return total
}

// Clone returns a value copy, detached from the in-progress map.
func (s Scores) Clone() Scores {
	out := make(Scores, len(s))
	for k, v := range s {
		out[k] = v
	}
	return out
}
