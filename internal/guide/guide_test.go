package guide

import (
	"testing"

	"github.com/wesboland/bolandindex/internal/assessment"
)

func TestSectionsCoverAllCategories(t *testing.T) {
	sections := Sections()
	cats := assessment.AllCategories()
	if len(sections) != len(cats) {
		t.Fatalf("got %d sections, want %d", len(sections), len(cats))
	}
	for i, s := range sections {
		if s.Category != cats[i] {
			t.Errorf("section %d covers %s, want %s", i, s.Category, cats[i])
		}
		if s.Title == "" {
			t.Errorf("section %d has no title", i)
		}
		if len(s.Points) == 0 {
			t.Errorf("section %q has no points", s.Title)
		}
	}
}

func TestReferenceIndexesResolve(t *testing.T) {
	for _, s := range Sections() {
		for _, p := range s.Points {
			if p.Heading == "" || p.Body == "" {
				t.Errorf("section %q has an empty point", s.Title)
			}
			for _, r := range p.Refs {
				if r < 1 || r > len(References) {
					t.Errorf("point %q cites [%d], out of range 1..%d", p.Heading, r, len(References))
				}
			}
		}
	}
}
