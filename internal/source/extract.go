package source

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/akyairhashvil/profilecard/internal/config"
	"github.com/mmcdole/gofeed/rss"
	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"
)

var ErrNoMatch = errors.New("no match")

// Extractor pulls one display string out of a response body.
type Extractor interface {
	Extract(body string) (string, error)
}

type ExtractorFunc func(body string) (string, error)

func (f ExtractorFunc) Extract(body string) (string, error) { return f(body) }

// NewExtractor builds the extractor for a feed's kind.
func NewExtractor(f config.Feed) (Extractor, error) {
	switch f.Kind {
	case config.KindMetaDescription:
		return ExtractorFunc(func(body string) (string, error) {
			v, err := metaDescription(body)
			return afterPrefix(v, f.Prefix), err
		}), nil
	case config.KindHTMLTitle:
		return ExtractorFunc(func(body string) (string, error) {
			v, err := htmlTitle(body)
			return afterPrefix(v, f.Prefix), err
		}), nil
	case config.KindJSONPath:
		return ExtractorFunc(func(body string) (string, error) {
			return jsonPath(body, f.Path)
		}), nil
	case config.KindRSSDescription:
		return ExtractorFunc(rssDescription), nil
	}
	return nil, fmt.Errorf("%w %q", config.ErrUnknownKind, f.Kind)
}

// metaDescription returns the content of <meta name="description">.
func metaDescription(body string) (string, error) {
	z := html.NewTokenizer(strings.NewReader(body))
	for {
		switch z.Next() {
		case html.ErrorToken:
			if errors.Is(z.Err(), io.EOF) {
				return "", ErrNoMatch
			}
			return "", z.Err()
		case html.StartTagToken, html.SelfClosingTagToken:
			tok := z.Token()
			if tok.DataAtom != atom.Meta {
				continue
			}
			var name, content string
			hasContent := false
			for _, a := range tok.Attr {
				switch strings.ToLower(a.Key) {
				case "name":
					name = a.Val
				case "content":
					content = a.Val
					hasContent = true
				}
			}
			if strings.EqualFold(name, "description") && hasContent && content != "" {
				return content, nil
			}
		}
	}
}

// htmlTitle returns the text of the first <title> element.
func htmlTitle(body string) (string, error) {
	z := html.NewTokenizer(strings.NewReader(body))
	inTitle := false
	var title strings.Builder
	for {
		switch z.Next() {
		case html.ErrorToken:
			if inTitle && title.Len() > 0 {
				return title.String(), nil
			}
			if errors.Is(z.Err(), io.EOF) {
				return "", ErrNoMatch
			}
			return "", z.Err()
		case html.StartTagToken:
			if z.Token().DataAtom == atom.Title {
				inTitle = true
			}
		case html.TextToken:
			if inTitle {
				title.Write(z.Text())
			}
		case html.EndTagToken:
			if inTitle && z.Token().DataAtom == atom.Title {
				if title.Len() == 0 {
					return "", ErrNoMatch
				}
				return title.String(), nil
			}
		}
	}
}

// jsonPath walks a dotted path through a JSON document; numeric segments
// index arrays. The leaf must be a string or a number.
func jsonPath(body, path string) (string, error) {
	var node any
	if err := json.Unmarshal([]byte(body), &node); err != nil {
		return "", fmt.Errorf("decode json: %w", err)
	}
	for _, seg := range strings.Split(path, ".") {
		switch n := node.(type) {
		case map[string]any:
			v, ok := n[seg]
			if !ok {
				return "", fmt.Errorf("%w: key %q", ErrNoMatch, seg)
			}
			node = v
		case []any:
			i, err := strconv.Atoi(seg)
			if err != nil || i < 0 || i >= len(n) {
				return "", fmt.Errorf("%w: index %q", ErrNoMatch, seg)
			}
			node = n[i]
		default:
			return "", fmt.Errorf("%w: %q is not a container", ErrNoMatch, seg)
		}
	}
	switch v := node.(type) {
	case string:
		return v, nil
	case float64:
		return strconv.FormatFloat(v, 'f', -1, 64), nil
	}
	return "", fmt.Errorf("%w: leaf is %T", ErrNoMatch, node)
}

// rssDescription returns the decoded description of the first feed item.
func rssDescription(body string) (string, error) {
	var p rss.Parser
	feed, err := p.Parse(strings.NewReader(body))
	if err != nil {
		return "", fmt.Errorf("parse rss: %w", err)
	}
	if len(feed.Items) == 0 || strings.TrimSpace(feed.Items[0].Description) == "" {
		return "", ErrNoMatch
	}
	return feed.Items[0].Description, nil
}

// afterPrefix returns the text following the first case-insensitive match of
// prefix, or s unchanged when prefix does not occur.
func afterPrefix(s, prefix string) string {
	if prefix == "" || len(prefix) > len(s) {
		return s
	}
	for i := 0; i+len(prefix) <= len(s); i++ {
		if strings.EqualFold(s[i:i+len(prefix)], prefix) {
			return s[i+len(prefix):]
		}
	}
	return s
}
