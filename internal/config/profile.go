package config

import (
	"errors"
	"fmt"
	"net/url"
	"os"
	"path/filepath"
	"strings"

	"github.com/akyairhashvil/profilecard/internal/util"
	"gopkg.in/yaml.v3"
)

// Feed kinds understood by the source extractors.
const (
	KindMetaDescription = "meta-description"
	KindHTMLTitle       = "html-title"
	KindJSONPath        = "json-path"
	KindRSSDescription  = "rss-description"
)

// DefaultFallback is shown for a feed that declares no fallback of its own.
const DefaultFallback = "Something interesting"

var (
	ErrInvalidProfile = errors.New("invalid profile")
	ErrUnknownKind    = errors.New("unknown feed kind")
)

// Profile describes one card: who it belongs to, what it shows and how it looks.
type Profile struct {
	Name     string    `yaml:"name"`
	Theme    string    `yaml:"theme,omitempty"`
	Width    int       `yaml:"width,omitempty"`
	Padding  int       `yaml:"padding,omitempty"`
	Contacts []Contact `yaml:"contacts,omitempty"`
	Feeds    []Feed    `yaml:"feeds,omitempty"`
	Footer   string    `yaml:"footer,omitempty"`
}

// Contact is a static labelled row, e.g. an email address.
type Contact struct {
	Icon  string `yaml:"icon"`
	Label string `yaml:"label"`
	Value string `yaml:"value"`
	Link  bool   `yaml:"link,omitempty"`
}

// Feed is one remote source contributing a single display field.
type Feed struct {
	Icon     string `yaml:"icon"`
	Label    string `yaml:"label"`
	Kind     string `yaml:"kind"`
	URL      string `yaml:"url"`
	Prefix   string `yaml:"prefix,omitempty"`
	Path     string `yaml:"path,omitempty"`
	Fallback string `yaml:"fallback"`
	Wrap     bool   `yaml:"wrap,omitempty"`
}

// LineLength is the value width available on this card.
func (p Profile) LineLength() int {
	return p.Width - p.Padding
}

// Default returns the built-in card.
func Default() Profile {
	return Profile{
		Name:    "dale lane",
		Theme:   DefaultTheme,
		Width:   Width,
		Padding: Padding,
		Contacts: []Contact{
			{Icon: "🏢", Label: "Work", Value: "Chief Architect @ IBM"},
			{Icon: "🦋", Label: "Bluesky", Value: "@dalelane.co.uk"},
			{Icon: "📬", Label: "Email", Value: "email@dalelane.co.uk", Link: true},
			{Icon: "🌐", Label: "Web", Value: "https://dalelane.co.uk", Link: true},
		},
		Feeds: []Feed{
			{
				Icon:     "📖",
				Label:    "Reading",
				Kind:     KindMetaDescription,
				URL:      "https://www.goodreads.com/user/show/1370155-dale-lane",
				Prefix:   "currently reading ",
				Fallback: "Books!",
			},
			{
				Icon:     "🎮",
				Label:    "Playing",
				Kind:     KindJSONPath,
				URL:      "https://backloggd-api.vercel.app/user/dalelane",
				Path:     "content.recentlyPlayed.0.name",
				Fallback: "Video games!",
			},
			{
				Icon:     "🎹",
				Label:    "Listening",
				Kind:     KindHTMLTitle,
				URL:      "https://badges.lastfm.workers.dev/last-played?user=dalelane",
				Prefix:   "last played: ",
				Fallback: "Music!",
			},
			{
				Icon:     "🤐",
				Label:    "Saying",
				Kind:     KindRSSDescription,
				URL:      "https://bsky.app/profile/did:plc:mecl54mdisxz3xv5da7yxr53/rss",
				Fallback: "Something interesting",
				Wrap:     true,
			},
		},
		Footer: "npx dalelane",
	}
}

// Load reads a YAML profile from path, fills defaults and validates it.
func Load(path string) (Profile, error) {
	var p Profile
	data, err := os.ReadFile(path)
	if err != nil {
		return p, fmt.Errorf("read profile %s: %w", path, err)
	}
	if err := yaml.Unmarshal(data, &p); err != nil {
		return p, fmt.Errorf("parse profile %s: %w", path, err)
	}
	p.applyDefaults()
	if err := p.Validate(); err != nil {
		return p, fmt.Errorf("profile %s: %w", path, err)
	}
	return p, nil
}

// Write stores p as YAML at path, creating parent directories.
func Write(path string, p Profile) error {
	data, err := yaml.Marshal(p)
	if err != nil {
		return fmt.Errorf("marshal profile: %w", err)
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("create config dir: %w", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("write profile %s: %w", path, err)
	}
	return nil
}

// Resolve picks the profile to render. An explicit path must load; otherwise
// the profile at defaultPath is used when present, else the built-in card.
func Resolve(explicit, defaultPath string) (Profile, string, error) {
	if explicit != "" {
		explicit = util.ExpandPath(explicit)
		p, err := Load(explicit)
		return p, explicit, err
	}
	if defaultPath != "" {
		if _, err := os.Stat(defaultPath); err == nil {
			p, err := Load(defaultPath)
			return p, defaultPath, err
		}
	}
	return Default(), "", nil
}

func (p *Profile) applyDefaults() {
	if p.Width == 0 {
		p.Width = Width
	}
	if p.Padding == 0 {
		p.Padding = Padding
	}
	if p.Theme == "" {
		p.Theme = DefaultTheme
	}
	for i := range p.Feeds {
		if strings.TrimSpace(p.Feeds[i].Fallback) == "" {
			p.Feeds[i].Fallback = DefaultFallback
		}
	}
}

// Validate reports the first problem that would stop p from rendering.
func (p Profile) Validate() error {
	if strings.TrimSpace(p.Name) == "" {
		return fmt.Errorf("%w: name is required", ErrInvalidProfile)
	}
	if p.LineLength() <= 0 {
		return fmt.Errorf("%w: width %d leaves no room after padding %d", ErrInvalidProfile, p.Width, p.Padding)
	}
	for i, f := range p.Feeds {
		if f.Label == "" {
			return fmt.Errorf("%w: feed %d has no label", ErrInvalidProfile, i)
		}
		if !knownKind(f.Kind) {
			return fmt.Errorf("feed %q: %w %q", f.Label, ErrUnknownKind, f.Kind)
		}
		if f.Kind == KindJSONPath && f.Path == "" {
			return fmt.Errorf("%w: feed %q needs a path", ErrInvalidProfile, f.Label)
		}
		u, err := url.Parse(f.URL)
		if err != nil || (u.Scheme != "http" && u.Scheme != "https") || u.Host == "" {
			return fmt.Errorf("%w: feed %q has bad url %q", ErrInvalidProfile, f.Label, f.URL)
		}
	}
	return nil
}

func knownKind(kind string) bool {
	switch kind {
	case KindMetaDescription, KindHTMLTitle, KindJSONPath, KindRSSDescription:
		return true
	}
	return false
}
