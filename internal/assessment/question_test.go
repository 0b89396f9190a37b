package assessment

import "testing"

// The rank thresholds are hard-coded against this exact bank shape.
// If these tests fail, the thresholds in rank.go no longer partition the
// reachable total range and must be recalibrated together with the bank.
func TestBankShape(t *testing.T) {
	bank := Bank()

	wantLen := len(AllCategories()) * QuestionsPerCategory
	if len(bank) != wantLen {
		t.Fatalf("bank length = %d, want %d", len(bank), wantLen)
	}

	perCategory := make(map[Category]int)
	for i, q := range bank {
		if q.Text == "" {
			t.Errorf("question %d has empty text", i)
		}
		perCategory[q.Category]++
	}

	for _, c := range AllCategories() {
		if perCategory[c] != QuestionsPerCategory {
			t.Errorf("category %q has %d questions, want %d", c, perCategory[c], QuestionsPerCategory)
		}
	}
	if len(perCategory) != 5 {
		t.Errorf("bank spans %d categories, want 5", len(perCategory))
	}
}

func TestBankOrderIsStable(t *testing.T) {
	a, b := Bank(), Bank()
	for i := range a {
		if a[i] != b[i] {
			t.Fatalf("bank order changed between calls at index %d", i)
		}
	}
}

func TestChoiceWeights(t *testing.T) {
	choices := Choices()
	if len(choices) != 5 {
		t.Fatalf("expected 5 choices, got %d", len(choices))
	}
	for i, c := range choices {
		want := i + 1
		if c.Weight != want {
			t.Errorf("choice %q weight = %d, want %d", c.Label, c.Weight, want)
		}
	}
	if choices[0].Weight != MinWeight || choices[4].Weight != MaxWeight {
		t.Errorf("choice weights do not span [%d,%d]", MinWeight, MaxWeight)
	}
}
