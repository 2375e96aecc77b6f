// Package fetch retrieves raw response bodies over HTTP, following a bounded
// number of 302 redirects.
package fetch

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/akyairhashvil/profilecard/internal/config"
	"go.uber.org/zap"
)

type Client struct {
	HTTP         *http.Client
	MaxRedirects int
	Timeout      time.Duration
	UserAgent    string
	MaxBodyBytes int64
	logger       *zap.Logger
}

type Option func(*Client)

func WithTimeout(d time.Duration) Option {
	return func(c *Client) { c.Timeout = d }
}

func WithMaxRedirects(n int) Option {
	return func(c *Client) { c.MaxRedirects = n }
}

func WithLogger(l *zap.Logger) Option {
	return func(c *Client) {
		if l != nil {
			c.logger = l
		}
	}
}

// WithHTTPClient uses a copy of h; its redirect policy is replaced so 302s
// reach Get.
func WithHTTPClient(h *http.Client) Option {
	return func(c *Client) {
		if h != nil {
			cp := *h
			c.HTTP = &cp
		}
	}
}

func New(opts ...Option) *Client {
	c := &Client{
		HTTP:         &http.Client{},
		MaxRedirects: config.MaxRedirects,
		Timeout:      config.RequestTimeout,
		UserAgent:    config.UserAgent,
		MaxBodyBytes: config.MaxBodyBytes,
		logger:       zap.NewNop(),
	}
	for _, opt := range opts {
		opt(c)
	}
	c.HTTP.CheckRedirect = func(*http.Request, []*http.Request) error {
		return http.ErrUseLastResponse
	}
	return c
}

// Get returns the body of a 200 response for url. A 302 with a Location
// header is followed, up to MaxRedirects times; any other status is an error.
func (c *Client) Get(ctx context.Context, url string) (string, error) {
	if c.Timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, c.Timeout)
		defer cancel()
	}

	target := url
	for hop := 0; ; hop++ {
		body, next, err := c.getOnce(ctx, target)
		if err != nil {
			return "", wrapErr("get", url, err)
		}
		if next == "" {
			return body, nil
		}
		if hop >= c.MaxRedirects {
			return "", wrapErr("get", url, ErrTooManyRedirects)
		}
		c.logger.Debug("following redirect", zap.String("from", target), zap.String("to", next))
		target = next
	}
}

// getOnce performs a single request. It returns either the body, or the
// absolute redirect target when the response is a 302.
func (c *Client) getOnce(ctx context.Context, url string) (body, next string, err error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return "", "", fmt.Errorf("failed to create request: %w", err)
	}
	if c.UserAgent != "" {
		req.Header.Set("User-Agent", c.UserAgent)
	}

	resp, err := c.HTTP.Do(req)
	if err != nil {
		return "", "", err
	}
	defer resp.Body.Close()

	switch resp.StatusCode {
	case http.StatusOK:
		data, err := io.ReadAll(io.LimitReader(resp.Body, c.MaxBodyBytes))
		if err != nil {
			return "", "", fmt.Errorf("failed to read response: %w", err)
		}
		return string(data), "", nil
	case http.StatusFound:
		loc, err := resp.Location()
		if err != nil {
			if errors.Is(err, http.ErrNoLocation) {
				return "", "", ErrBadRedirect
			}
			return "", "", fmt.Errorf("%w: %v", ErrBadRedirect, err)
		}
		return "", loc.String(), nil
	default:
		return "", "", &StatusError{Code: resp.StatusCode}
	}
}
