package assessment

import "testing"

func TestClassify(t *testing.T) {
	tests := []struct {
		total int
		want  Rank
	}{
		{50, RankDeveloping},
		{100, RankDeveloping},
		{129, RankDeveloping},
		{130, RankSolid},
		{150, RankSolid},
		{179, RankSolid},
		{180, RankExcellent},
		{200, RankExcellent},
		{224, RankExcellent},
		{225, RankOptimal},
		{240, RankOptimal},
		{250, RankOptimal},
	}

	for _, tt := range tests {
		got := Classify(tt.total)
		if got != tt.want {
			t.Errorf("Classify(%d) = %q, want %q", tt.total, got, tt.want)
		}
	}
}

func TestClassifyMonotonic(t *testing.T) {
	order := map[Rank]int{
		RankDeveloping: 0,
		RankSolid:      1,
		RankExcellent:  2,
		RankOptimal:    3,
	}

	prev := RankDeveloping
	for total := 50; total <= 250; total++ {
		got := Classify(total)
		if order[got] < order[prev] {
			t.Fatalf("Classify(%d) = %q is below Classify(%d) = %q", total, got, total-1, prev)
		}
		prev = got
	}
}

func TestClassifyPartitionsFullRange(t *testing.T) {
	// Every total in the reachable range maps to exactly one of the four
	// tiers, with no gaps at the threshold boundaries.
	seen := make(map[Rank]bool)
	for total := 50; total <= 250; total++ {
		seen[Classify(total)] = true
	}
	if len(seen) != 4 {
		t.Errorf("reachable tiers = %d, want 4 (%v)", len(seen), seen)
	}
}

func TestAllRanksOrder(t *testing.T) {
	ranks := AllRanks()
	if len(ranks) != 4 {
		t.Fatalf("expected 4 ranks, got %d", len(ranks))
	}
	if ranks[0] != RankDeveloping || ranks[3] != RankOptimal {
		t.Errorf("unexpected order: %v", ranks)
	}
}
