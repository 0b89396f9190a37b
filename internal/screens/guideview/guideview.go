package guideview

import (
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/wesboland/bolandindex/internal/guide"
	"github.com/wesboland/bolandindex/internal/router"
	"github.com/wesboland/bolandindex/internal/screen"
	"github.com/wesboland/bolandindex/internal/ui/layout"
	"github.com/wesboland/bolandindex/internal/ui/theme"
)

// GuideScreen shows the longevity guide as a scrollable page.
type GuideScreen struct {
	offset int
	lines  []string
	width  int
}

var _ screen.Screen = (*GuideScreen)(nil)
var _ screen.KeyHintProvider = (*GuideScreen)(nil)

// New creates a GuideScreen.
func New() *GuideScreen {
	return &GuideScreen{}
}

func (g *GuideScreen) Init() tea.Cmd {
	return nil
}

func (g *GuideScreen) Title() string {
	return "Longevity Guide"
}

func (g *GuideScreen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "↑/↓", Description: "Scroll"},
		{Key: "Esc", Description: "Back"},
	}
}

func (g *GuideScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	kmsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return g, nil
	}

	switch kmsg.String() {
	case "esc":
		return g, func() tea.Msg { return router.PopScreenMsg{} }
	case "up", "k":
		if g.offset > 0 {
			g.offset--
		}
	case "down", "j":
		g.offset++
	case "pgup":
		g.offset -= 10
		if g.offset < 0 {
			g.offset = 0
		}
	case "pgdown":
		g.offset += 10
	case "home", "g":
		g.offset = 0
	}

	return g, nil
}

func (g *GuideScreen) View(width, height int) string {
	if g.lines == nil || g.width != width {
		g.lines = g.render(width)
		g.width = width
	}

	maxOffset := len(g.lines) - height
	if maxOffset < 0 {
		maxOffset = 0
	}
	if g.offset > maxOffset {
		g.offset = maxOffset
	}

	end := g.offset + height
	if end > len(g.lines) {
		end = len(g.lines)
	}

	return strings.Join(g.lines[g.offset:end], "\n")
}

// render lays out the full guide as wrapped lines for the given width.
func (g *GuideScreen) render(width int) []string {
	textWidth := width - 8
	if textWidth > 72 {
		textWidth = 72
	}
	if textWidth < 20 {
		textWidth = 20
	}
	indent := "    "

	body := lipgloss.NewStyle().Foreground(theme.Text).Width(textWidth)
	dim := lipgloss.NewStyle().Foreground(theme.TextDim).Width(textWidth)
	heading := lipgloss.NewStyle().Foreground(theme.Secondary).Bold(true)

	var out []string
	add := func(block string) {
		for _, l := range strings.Split(block, "\n") {
			out = append(out, indent+l)
		}
	}

	add(lipgloss.NewStyle().Foreground(theme.Primary).Bold(true).
		Width(textWidth).Render(guide.Title))
	out = append(out, "")
	add(dim.Render(guide.Intro))
	out = append(out, "")

	for _, section := range guide.Sections() {
		add(heading.Render(section.Title))
		out = append(out, "")
		for _, p := range section.Points {
			refs := ""
			for _, r := range p.Refs {
				refs += fmt.Sprintf(" [%d]", r)
			}
			add(body.Render("• " + p.Heading + ": " + p.Body + refs))
			out = append(out, "")
		}
	}

	add(heading.Render("References"))
	out = append(out, "")
	for i, ref := range guide.References {
		add(dim.Render(fmt.Sprintf("(%d) %s", i+1, ref)))
	}

	return out
}
