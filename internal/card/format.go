package card

import (
	"strings"
	"unicode/utf8"

	"github.com/akyairhashvil/profilecard/internal/config"
	"github.com/charmbracelet/x/ansi"
)

// Truncate cuts s to limit terminal cells and appends an ellipsis when
// anything was cut. It does not look for word boundaries.
func Truncate(s string, limit int) string {
	if limit < 0 {
		limit = 0
	}
	if VisibleLength(s) <= limit {
		return s
	}
	return ansi.Truncate(s, limit, "") + config.Ellipsis
}

// Wrap splits s into at most maxLines lines of at most limit cells, breaking
// at the last space at or before limit, or mid-word when there is none. A
// final ellipsis line is added when text is left over.
func Wrap(s string, limit, maxLines int) []string {
	remaining := strings.ReplaceAll(strings.TrimSpace(s), "\n", "")
	if limit <= 0 {
		limit = 1
	}

	var lines []string
	for remaining != "" && len(lines) < maxLines {
		if VisibleLength(remaining) <= limit {
			lines = append(lines, remaining)
			remaining = ""
			break
		}
		head, rest := splitLine(remaining, limit)
		lines = append(lines, strings.TrimSpace(head))
		remaining = strings.TrimSpace(rest)
	}

	if remaining != "" {
		lines = append(lines, config.Ellipsis)
	}
	return lines
}

// splitLine breaks s at the last space within the first limit+1 cells, so a
// space sitting exactly at limit still counts. Without one it cuts at limit.
func splitLine(s string, limit int) (head, rest string) {
	window := ansi.Truncate(s, limit+1, "")
	if i := strings.LastIndexByte(window, ' '); i > 0 {
		return s[:i], s[i:]
	}
	head = ansi.Truncate(s, limit, "")
	if head == "" {
		// a single glyph wider than limit
		_, size := utf8.DecodeRuneInString(s)
		head = s[:size]
	}
	return head, s[len(head):]
}
