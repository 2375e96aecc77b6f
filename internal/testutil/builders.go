package testutil

import (
	"github.com/akyairhashvil/profilecard/internal/config"
)

// ProfileBuilder provides fluent API for creating test profiles.
type ProfileBuilder struct {
	profile config.Profile
}

func NewProfile() *ProfileBuilder {
	return &ProfileBuilder{
		profile: config.Profile{
			Name:    "Test Person",
			Theme:   "mono",
			Width:   config.Width,
			Padding: config.Padding,
			Footer:  "profilecard",
		},
	}
}

func (b *ProfileBuilder) WithName(name string) *ProfileBuilder {
	b.profile.Name = name
	return b
}

func (b *ProfileBuilder) WithWidth(width, padding int) *ProfileBuilder {
	b.profile.Width = width
	b.profile.Padding = padding
	return b
}

func (b *ProfileBuilder) WithContact(label, value string) *ProfileBuilder {
	b.profile.Contacts = append(b.profile.Contacts, config.Contact{Icon: "*", Label: label, Value: value})
	return b
}

// WithFeed adds a feed of the given kind; prefix or path is filled from arg
// depending on the kind.
func (b *ProfileBuilder) WithFeed(label, kind, url, fallback, arg string) *ProfileBuilder {
	f := config.Feed{Icon: "#", Label: label, Kind: kind, URL: url, Fallback: fallback}
	if kind == config.KindJSONPath {
		f.Path = arg
	} else {
		f.Prefix = arg
	}
	b.profile.Feeds = append(b.profile.Feeds, f)
	return b
}

// Wrapped marks the most recently added feed as multi-line.
func (b *ProfileBuilder) Wrapped() *ProfileBuilder {
	if n := len(b.profile.Feeds); n > 0 {
		b.profile.Feeds[n-1].Wrap = true
	}
	return b
}

func (b *ProfileBuilder) WithFooter(cmd string) *ProfileBuilder {
	b.profile.Footer = cmd
	return b
}

func (b *ProfileBuilder) Build() config.Profile {
	return b.profile
}
