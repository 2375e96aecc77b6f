// Package card formats display fields and assembles them into a
// fixed-width, bordered terminal card.
package card

import (
	"strings"
	"unicode/utf8"

	"github.com/akyairhashvil/profilecard/internal/config"
)

// Entry is one feed slot on the card with its settled value.
type Entry struct {
	Icon  string
	Label string
	Value string
	Wrap  bool
}

// Card is everything needed to draw one profile.
type Card struct {
	Title      string
	Contacts   []config.Contact
	Entries    []Entry
	Footer     string
	LineLength int
}

// Assemble maps values onto the profile's feeds by position. A missing value
// takes the feed's fallback.
func Assemble(p config.Profile, values []string) Card {
	c := Card{
		Title:      p.Name,
		Contacts:   p.Contacts,
		Footer:     p.Footer,
		LineLength: p.LineLength(),
		Entries:    make([]Entry, 0, len(p.Feeds)),
	}
	for i, f := range p.Feeds {
		value := f.Fallback
		if i < len(values) && values[i] != "" {
			value = values[i]
		}
		c.Entries = append(c.Entries, Entry{
			Icon:  f.Icon,
			Label: f.Label,
			Value: value,
			Wrap:  f.Wrap,
		})
	}
	return c
}

// Render returns the card top to bottom, including a leading and trailing
// blank line.
func (r Renderer) Render(c Card) []string {
	t := r.Theme
	lines := []string{
		"",
		r.Top(),
		r.Empty(),
		r.Line(" " + t.Title.Render(c.Title)),
		r.Divider(),
		r.Empty(),
	}

	labelWidth := 0
	for _, ct := range c.Contacts {
		labelWidth = max(labelWidth, utf8.RuneCountInString(ct.Label))
	}
	for _, ct := range c.Contacts {
		value := t.Value.Render(ct.Value)
		if ct.Link {
			value = t.Link.Render(ct.Value)
		}
		pad := strings.Repeat(" ", labelWidth-utf8.RuneCountInString(ct.Label))
		lines = append(lines, r.Line(" "+ct.Icon+"  "+t.Heading.Render(ct.Label)+pad+" :: "+value))
	}
	if len(c.Contacts) > 0 {
		lines = append(lines, r.Empty())
	}

	lines = append(lines, r.ThinDivider())
	for _, e := range c.Entries {
		lines = append(lines, r.Line(" "+e.Icon+" "+t.Heading.Render(e.Label)))
		if e.Wrap {
			for _, l := range Wrap(e.Value, c.LineLength, config.MaxWrapLines) {
				lines = append(lines, r.Line("   "+l))
			}
			continue
		}
		lines = append(lines, r.Line("   "+Truncate(e.Value, c.LineLength)))
	}
	lines = append(lines, r.Divider())

	if c.Footer != "" {
		lines = append(lines, r.Line(" "+t.Subtle.Render(">")+" "+t.Subtle.Render("Run")+" "+
			t.Accent.Render(c.Footer)+" "+t.Subtle.Render("anytime to see this card")))
	}
	return append(lines, r.Bottom(), "")
}

// Text joins the rendered card into the exact bytes written to stdout.
func (r Renderer) Text(c Card) string {
	return strings.Join(r.Render(c), "\n") + "\n"
}
