package config

import "time"

// Card geometry.
const (
	// Width is the number of visible cells between the left and right border glyphs.
	Width = 72

	// Padding is the allowance reserved for the leading marker of value lines.
	Padding = 5

	// LineLength is the maximum number of characters shown for a feed value.
	LineLength = Width - Padding

	// MaxWrapLines limits wrapped feed values before the continuation marker.
	MaxWrapLines = 2

	// Ellipsis marks truncated or continued text.
	Ellipsis = "…"
)

// Network limits.
const (
	// MaxRedirects caps how many 302 hops a single fetch will follow.
	MaxRedirects = 5

	// RequestTimeout bounds one fetch including its redirects.
	RequestTimeout = 10 * time.Second

	// MaxBodyBytes limits how much of a response body is read.
	MaxBodyBytes = 2 << 20

	UserAgent = "Mozilla/5.0 (compatible; profilecard/1.0)"
)

// Application settings.
const (
	AppName        = "profilecard"
	ConfigFileName = "card.yaml"
	DefaultTheme   = "default"
)
