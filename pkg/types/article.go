// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package types defines shared data structures for the newswire scraper.
package types

import (
	"log/slog"
	"time"
)

// Article is one news result as scraped from the results page. The scrape
// layer fills it in; everything downstream treats it as an opaque record and
// serializes it unchanged.
type Article struct {
	// Title is the headline as rendered on the results page.
	Title string `json:"title"`

	// Link is the article URL: the publisher's URL when the redirect link
	// could be decoded, otherwise the absolute news.google.com URL.
	Link string `json:"link"`

	// Image is the thumbnail URL, if the result carries one.
	Image string `json:"image,omitempty"`

	// Source is the publisher name (e.g. "Reuters").
	Source string `json:"source"`

	// Time is the human-readable age shown on the page (e.g. "2 days ago").
	Time string `json:"time,omitempty"`

	// Datetime is the machine-readable publication time, when present.
	Datetime time.Time `json:"datetime,omitzero"`
}

// URLStyle selects how article links are emitted.
type URLStyle string

const (
	// URLStyleReadable decodes redirect links into publisher URLs.
	URLStyleReadable URLStyle = "readable"

	// URLStyleRaw keeps the news.google.com redirect links as-is.
	URLStyleRaw URLStyle = "raw"
)

// ScrapeConfig holds the retrieval parameters passed to the provider.
// One config is built per invocation and never mutated; every field except
// SearchTerm has a fixed value (see news.DefaultConfig).
type ScrapeConfig struct {
	// SearchTerm is the query, verbatim from the invocation.
	SearchTerm string `json:"search_term"`

	// URLStyle selects readable (decoded) or raw article links.
	URLStyle URLStyle `json:"url_style"`

	// Timeframe is the lookback window in search-operator form (e.g. "7d").
	Timeframe string `json:"timeframe"`

	// Limit caps the number of results returned.
	Limit int `json:"limit"`

	// BrowserArgs are extra Chromium launch flags. The defaults disable the
	// sandbox so the browser starts inside restricted server environments.
	BrowserArgs []string `json:"browser_args"`

	// LogLevel is the provider's log verbosity.
	LogLevel slog.Level `json:"log_level"`
}
