package card

import (
	"strings"

	"github.com/akyairhashvil/profilecard/internal/util"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
)

// VisibleLength is the terminal width of s once styling escapes are removed.
func VisibleLength(s string) int {
	return ansi.StringWidth(s)
}

// Renderer draws fixed-width bordered lines.
type Renderer struct {
	Width  int
	Theme  Theme
	border lipgloss.Border
}

func NewRenderer(width int, theme Theme) Renderer {
	return Renderer{
		Width:  width,
		Theme:  theme,
		border: lipgloss.RoundedBorder(),
	}
}

// Line wraps content in the side borders, right-padded so the visible width
// between the borders is exactly r.Width. Content wider than that is cut.
func (r Renderer) Line(content string) string {
	if VisibleLength(content) > r.Width {
		content = ansi.Truncate(content, r.Width, "")
	}
	padding := util.Clamp(r.Width-VisibleLength(content), 0, r.Width)
	return r.Theme.Border.Render(r.border.Left) +
		content +
		strings.Repeat(" ", padding) +
		r.Theme.Border.Render(r.border.Right)
}

func (r Renderer) Top() string {
	return r.Theme.Border.Render(r.border.TopLeft + strings.Repeat(r.border.Top, r.Width) + r.border.TopRight)
}

func (r Renderer) Bottom() string {
	return r.Theme.Border.Render(r.border.BottomLeft + strings.Repeat(r.border.Bottom, r.Width) + r.border.BottomRight)
}

func (r Renderer) Empty() string {
	return r.Line(strings.Repeat(" ", r.Width))
}

// Divider is a heavy rule inset by one space on each side.
func (r Renderer) Divider() string {
	return r.rule("━")
}

func (r Renderer) ThinDivider() string {
	return r.rule("-")
}

func (r Renderer) rule(glyph string) string {
	n := util.Clamp(r.Width-2, 0, r.Width)
	return r.Line(" " + r.Theme.Subtle.Render(strings.Repeat(glyph, n)) + " ")
}
