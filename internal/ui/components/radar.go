package components

import (
	"fmt"
	"math"
	"strings"

	"charm.land/lipgloss/v2"

	"github.com/wesboland/bolandindex/internal/assessment"
	"github.com/wesboland/bolandindex/internal/ui/theme"
)

// Radar renders the five category scores as a pentagon chart on a
// character grid. Each axis runs from the center (0) to the outer
// ring (the per-category maximum).
type Radar struct {
	Scores assessment.Scores
	Radius int
}

// NewRadar creates a radar chart with the default radius.
func NewRadar(scores assessment.Scores) Radar {
	return Radar{Scores: scores, Radius: 8}
}

// maxAxis is the per-category ceiling each axis is normalized against.
const maxAxis = assessment.QuestionsPerCategory * assessment.MaxWeight

// axisAngle returns the angle of axis i of n, starting at twelve
// o'clock and going clockwise.
func axisAngle(i, n int) float64 {
	return -math.Pi/2 + 2*math.Pi*float64(i)/float64(n)
}

// View renders the chart with a per-category legend below it.
func (r Radar) View() string {
	cats := assessment.AllCategories()
	n := len(cats)

	// Cells are taller than wide; stretch x to keep the pentagon round.
	const xScale = 2.0
	w := int(float64(r.Radius)*xScale)*2 + 1
	h := r.Radius*2 + 1
	cx, cy := w/2, h/2

	grid := make([][]rune, h)
	for y := range grid {
		grid[y] = make([]rune, w)
		for x := range grid[y] {
			grid[y][x] = ' '
		}
	}

	set := func(x, y int, c rune) {
		if x >= 0 && x < w && y >= 0 && y < h {
			grid[y][x] = c
		}
	}

	point := func(i int, frac float64) (int, int) {
		a := axisAngle(i, n)
		x := cx + int(math.Round(math.Cos(a)*frac*float64(r.Radius)*xScale))
		y := cy + int(math.Round(math.Sin(a)*frac*float64(r.Radius)))
		return x, y
	}

	// Axis spokes with markers at the outer ring.
	for i := range cats {
		tx, ty := point(i, 1)
		drawLine(cx, cy, tx, ty, '·', set)
		set(tx, ty, '+')
	}

	// Score polygon: edges first, then vertices on top.
	verts := make([][2]int, n)
	for i, c := range cats {
		frac := float64(r.Scores[c]) / float64(maxAxis)
		if frac > 1 {
			frac = 1
		}
		vx, vy := point(i, frac)
		verts[i] = [2]int{vx, vy}
	}
	for i := range verts {
		a, b := verts[i], verts[(i+1)%n]
		drawLine(a[0], a[1], b[0], b[1], '*', set)
	}
	for _, v := range verts {
		set(v[0], v[1], '●')
	}
	set(cx, cy, '+')

	rows := make([]string, h)
	for y, row := range grid {
		rows[y] = strings.TrimRight(string(row), " ")
	}
	chart := lipgloss.NewStyle().Foreground(theme.Secondary).Render(strings.Join(rows, "\n"))

	return chart + "\n\n" + r.legend(cats)
}

// legend lists each category with a mini bar and its score.
func (r Radar) legend(cats []assessment.Category) string {
	labelStyle := lipgloss.NewStyle().Foreground(theme.Text)
	barStyle := lipgloss.NewStyle().Foreground(theme.Primary).Bold(true)
	dimStyle := lipgloss.NewStyle().Foreground(theme.TextDim)

	labelWidth := 0
	for _, c := range cats {
		if len(c) > labelWidth {
			labelWidth = len(c)
		}
	}

	var b strings.Builder
	for i, c := range cats {
		if i > 0 {
			b.WriteString("\n")
		}
		score := r.Scores[c]
		if score < 0 {
			score = 0
		}
		if score > maxAxis {
			score = maxAxis
		}
		filled := score * 10 / maxAxis

		b.WriteString(labelStyle.Render(fmt.Sprintf("%-*s", labelWidth, string(c))))
		b.WriteString("  ")
		b.WriteString(barStyle.Render(strings.Repeat("█", filled)))
		b.WriteString(dimStyle.Render(strings.Repeat("░", 10-filled)))
		b.WriteString(dimStyle.Render(fmt.Sprintf("  %d/%d", score, maxAxis)))
	}
	return b.String()
}

// drawLine plots a Bresenham line between two grid points.
func drawLine(x0, y0, x1, y1 int, c rune, set func(int, int, rune)) {
	dx := abs(x1 - x0)
	dy := -abs(y1 - y0)
	sx := 1
	if x0 > x1 {
		sx = -1
	}
	sy := 1
	if y0 > y1 {
		sy = -1
	}
	err := dx + dy

	for {
		set(x0, y0, c)
		if x0 == x1 && y0 == y1 {
			return
		}
		e2 := 2 * err
		if e2 >= dy {
			err += dy
			x0 += sx
		}
		if e2 <= dx {
			err += dx
			y0 += sy
		}
	}
}

func abs(n int) int {
	if n < 0 {
		return -n
	}
	return n
}
