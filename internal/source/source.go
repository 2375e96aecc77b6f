// Package source turns configured feeds into display fields. Every source
// settles to a usable string: failures are swallowed and replaced by the
// feed's fallback.
package source

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/akyairhashvil/profilecard/internal/config"
	"github.com/akyairhashvil/profilecard/internal/models"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

// Getter fetches the raw body behind a URL.
type Getter interface {
	Get(ctx context.Context, url string) (string, error)
}

type Source struct {
	Slot      int
	Feed      config.Feed
	Extractor Extractor
}

// FromProfile builds one source per feed, keeping the feed order as slots.
func FromProfile(p config.Profile) ([]Source, error) {
	sources := make([]Source, 0, len(p.Feeds))
	for i, f := range p.Feeds {
		ex, err := NewExtractor(f)
		if err != nil {
			return nil, fmt.Errorf("feed %q: %w", f.Label, err)
		}
		sources = append(sources, Source{Slot: i, Feed: f, Extractor: ex})
	}
	return sources, nil
}

// FetchDisplayField fetches and extracts one source. It never fails: any
// transport or parse error, or an empty value, yields the fallback and is
// logged at debug level.
func FetchDisplayField(ctx context.Context, g Getter, src Source, logger *zap.Logger) models.Result {
	if logger == nil {
		logger = zap.NewNop()
	}
	start := time.Now()
	res := models.Result{Slot: src.Slot, Label: src.Feed.Label}

	value, err := fetchValue(ctx, g, src)
	res.Elapsed = time.Since(start)
	if err != nil {
		res.Value = src.Feed.Fallback
		res.Fallback = true
		res.Err = err
	} else {
		res.Value = value
	}
	logger.Debug("source settled",
		zap.String("source", src.Feed.Label),
		zap.String("url", src.Feed.URL),
		zap.String("status", res.Status()),
		zap.Duration("elapsed", res.Elapsed),
		zap.Error(err))
	return res
}

func fetchValue(ctx context.Context, g Getter, src Source) (value string, err error) {
	// a panicking extractor counts as a parse failure
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("extract %s: panic: %v", src.Feed.Kind, r)
		}
	}()

	body, err := g.Get(ctx, src.Feed.URL)
	if err != nil {
		return "", err
	}
	value, err = src.Extractor.Extract(body)
	if err != nil {
		return "", fmt.Errorf("extract %s: %w", src.Feed.Kind, err)
	}
	value = strings.TrimSpace(value)
	if value == "" {
		return "", fmt.Errorf("extract %s: %w", src.Feed.Kind, ErrNoMatch)
	}
	return value, nil
}

// FetchAll starts every source at once and waits for all of them. The
// returned values line up with sources regardless of completion order. notify,
// when set, is called once per settled source from that source's goroutine.
func FetchAll(ctx context.Context, g Getter, sources []Source, logger *zap.Logger, notify func(models.Result)) []string {
	if logger == nil {
		logger = zap.NewNop()
	}
	values := make([]string, len(sources))

	var eg errgroup.Group
	for i, src := range sources {
		i, src := i, src
		eg.Go(func() error {
			res := FetchDisplayField(ctx, g, src, logger)
			values[i] = res.Value
			if notify != nil {
				notify(res)
			}
			return nil
		})
	}
	_ = eg.Wait()
	return values
}
