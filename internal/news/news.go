// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package news implements the retrieval contract around the scrape provider:
// resolve the search term from the invocation, build the fixed scrape
// configuration, invoke the provider exactly once, and emit the outcome as
// JSON. The provider itself is a black box behind the Provider interface;
// see internal/scrape for the browser-backed implementation.
package news

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/pdiddy/newswire/pkg/types"
)

// ErrMissingTerm is returned when the invocation carries no search term.
// The message text is part of the CLI's output contract.
var ErrMissingTerm = errors.New("No search term provided.")

// Provider retrieves recent news articles for a scrape configuration.
// Implementations may fail for any reason (network, browser automation,
// page structure); callers only surface the error message.
type Provider interface {
	Retrieve(ctx context.Context, cfg types.ScrapeConfig) ([]types.Article, error)
}

// ResolveTerm extracts the search term from the positional arguments.
// The first argument is the term, taken verbatim; anything after it is
// ignored. An absent or empty term yields ErrMissingTerm.
func ResolveTerm(args []string) (string, error) {
	if len(args) == 0 || args[0] == "" {
		return "", ErrMissingTerm
	}
	return args[0], nil
}

// DefaultConfig returns the scrape configuration for term. Every field
// except the search term is fixed: readable URLs, a 7-day lookback, at most
// 15 results, sandbox disabled for restricted server environments, and
// error-only logging.
func DefaultConfig(term string) types.ScrapeConfig {
	return types.ScrapeConfig{
		SearchTerm:  term,
		URLStyle:    types.URLStyleReadable,
		Timeframe:   "7d",
		Limit:       15,
		BrowserArgs: []string{"--no-sandbox", "--disable-setuid-sandbox"},
		LogLevel:    slog.LevelError,
	}
}

// Fetch invokes the provider once with the fixed configuration for term and
// returns its articles untouched. There is no retry, timeout, or partial
// result: the call either yields the full result set or an error wrapped
// with the scraper-failure prefix the CLI emits.
func Fetch(ctx context.Context, p Provider, term string) ([]types.Article, error) {
	articles, err := p.Retrieve(ctx, DefaultConfig(term))
	if err != nil {
		// Prefix is part of the CLI's output contract.
		return nil, fmt.Errorf("Scraper failed: %w", err)
	}
	return articles, nil
}
