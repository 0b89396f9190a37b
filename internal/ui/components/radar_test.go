package components

import (
	"strings"
	"testing"

	"github.com/wesboland/bolandindex/internal/assessment"
)

func radarScores(n int) assessment.Scores {
	s := assessment.NewScores()
	for _, c := range assessment.AllCategories() {
		s[c] = n
	}
	return s
}

func TestRadarViewContainsLegend(t *testing.T) {
	view := NewRadar(radarScores(40)).View()

	for _, c := range assessment.AllCategories() {
		if !strings.Contains(view, string(c)) {
			t.Errorf("legend missing category %q", c)
		}
	}
	if !strings.Contains(view, "40/50") {
		t.Error("legend missing score value")
	}
}

func TestRadarHandlesZeroAndMaxScores(t *testing.T) {
	// Neither extreme may panic or draw outside the grid.
	for _, n := range []int{0, maxAxis} {
		view := NewRadar(radarScores(n)).View()
		if view == "" {
			t.Errorf("empty view for uniform score %d", n)
		}
	}
}

func TestRadarClampsOutOfRangeScores(t *testing.T) {
	s := radarScores(40)
	s[assessment.CategorySleep] = maxAxis + 20

	view := NewRadar(s).View()
	if !strings.Contains(view, "50/50") {
		t.Error("out-of-range score not clamped to the axis maximum")
	}
}

func TestDrawLineEndpoints(t *testing.T) {
	grid := map[[2]int]rune{}
	set := func(x, y int, c rune) { grid[[2]int{x, y}] = c }

	drawLine(0, 0, 4, 2, '*', set)

	if grid[[2]int{0, 0}] != '*' {
		t.Error("line missing start point")
	}
	if grid[[2]int{4, 2}] != '*' {
		t.Error("line missing end point")
	}
	if len(grid) < 5 {
		t.Errorf("line too sparse: %d cells", len(grid))
	}
}
