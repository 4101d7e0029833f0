// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package scrape retrieves news results with a headless Chromium controlled
// through rod. It implements the news.Provider interface: one Retrieve call
// navigates the search results page for the configured term, waits for the
// client-side render, and parses the article cards out of the DOM.
package scrape

import (
	"context"
	"fmt"
	"log/slog"
	"net/url"
	"os"
	"strings"
	"time"

	"github.com/go-rod/rod"
	"github.com/go-rod/stealth"

	"github.com/pdiddy/newswire/pkg/types"
)

const (
	newsBase          = "https://news.google.com"
	defaultNavTimeout = 60 * time.Second
)

// Options configure the browser environment the scraper runs in. They are
// deployment concerns (which Chromium, where, how long to wait for a page);
// the retrieval parameters themselves arrive per call in the ScrapeConfig.
type Options struct {
	// BrowserBin is the path to a Chrome/Chromium binary. Empty means the
	// launcher's managed browser.
	BrowserBin string

	// RemoteURL is the DevTools WebSocket URL of an already-running browser.
	// When set, no local browser is launched.
	RemoteURL string

	// NavTimeout bounds navigation and rendering of the results page.
	// Default 60s.
	NavTimeout time.Duration

	// Headful runs the browser with a visible window, for debugging.
	Headful bool

	// Logger overrides the default stderr logger.
	Logger *slog.Logger
}

// Scraper is a browser-backed news.Provider.
type Scraper struct {
	opts Options
}

// New returns a Scraper with defaults applied.
func New(opts Options) *Scraper {
	if opts.NavTimeout <= 0 {
		opts.NavTimeout = defaultNavTimeout
	}
	return &Scraper{opts: opts}
}

// logger builds the run logger at the verbosity the config dictates. At the
// default error level a successful run writes nothing.
func (s *Scraper) logger(cfg types.ScrapeConfig) *slog.Logger {
	if s.opts.Logger != nil {
		return s.opts.Logger
	}
	return slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: cfg.LogLevel}))
}

// Retrieve scrapes the search results page for cfg.SearchTerm and returns at
// most cfg.Limit articles in page order.
func (s *Scraper) Retrieve(ctx context.Context, cfg types.ScrapeConfig) ([]types.Article, error) {
	log := s.logger(cfg)

	browser, cleanup, err := s.connect(cfg.BrowserArgs)
	if err != nil {
		return nil, err
	}
	defer cleanup()

	page, err := stealth.Page(browser)
	if err != nil {
		return nil, fmt.Errorf("create page: %w", err)
	}

	target := searchURL(cfg.SearchTerm, cfg.Timeframe)
	navCtx, cancel := context.WithTimeout(ctx, s.opts.NavTimeout)
	defer cancel()

	if err := page.Context(navCtx).Navigate(target); err != nil {
		return nil, fmt.Errorf("navigate %s: %w", target, err)
	}
	if err := page.Context(navCtx).WaitLoad(); err != nil {
		log.Error("scrape: page load incomplete", "url", target, "error", err)
	}

	// Results render client-side after load; block until the first article
	// card appears. A timeout here usually means a consent wall or an empty
	// result set, so fall through and parse whatever is there.
	if err := waitForArticles(navCtx, page); err != nil {
		log.Error("scrape: no article cards rendered", "url", target, "error", err)
	}

	html, err := page.Context(navCtx).HTML()
	if err != nil {
		return nil, fmt.Errorf("read results page: %w", err)
	}

	articles, err := parseArticles(strings.NewReader(html), cfg)
	if err != nil {
		return nil, err
	}

	log.Debug("scrape: done", "term", cfg.SearchTerm, "articles", len(articles))
	return articles, nil
}

func waitForArticles(ctx context.Context, page *rod.Page) error {
	_, err := page.Context(ctx).Element("article")
	return err
}

// searchURL builds the results-page URL. The lookback window rides in the
// query as a when: operator (e.g. "budget 2024 when:7d").
func searchURL(term, timeframe string) string {
	q := term
	if timeframe != "" {
		q += " when:" + timeframe
	}
	v := url.Values{
		"q":    {q},
		"hl":   {"en-US"},
		"gl":   {"US"},
		"ceid": {"US:en"},
	}
	return newsBase + "/search?" + v.Encode()
}
