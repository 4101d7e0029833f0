// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package scrape

import (
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/PuerkitoBio/goquery"

	"github.com/pdiddy/newswire/pkg/types"
)

// parseArticles extracts article records from the rendered results page, in
// page order, capped at cfg.Limit.
func parseArticles(r io.Reader, cfg types.ScrapeConfig) ([]types.Article, error) {
	doc, err := goquery.NewDocumentFromReader(r)
	if err != nil {
		return nil, fmt.Errorf("parse results page: %w", err)
	}

	var articles []types.Article
	doc.Find("article").EachWithBreak(func(_ int, sel *goquery.Selection) bool {
		a, ok := parseArticle(sel, cfg.URLStyle)
		if !ok {
			return true
		}
		articles = append(articles, a)
		return cfg.Limit <= 0 || len(articles) < cfg.Limit
	})
	return articles, nil
}

// parseArticle reads one article card. Cards without a redirect link or a
// title are navigation chrome, not results, and are skipped.
func parseArticle(sel *goquery.Selection, style types.URLStyle) (types.Article, bool) {
	link := sel.Find(`a[href^="./articles/"], a[href^="./read/"], a[href^="./rss/articles/"]`).First()
	href, ok := link.Attr("href")
	if !ok {
		return types.Article{}, false
	}

	// The headline is the anchor text; older markup nests it in a heading.
	title := strings.TrimSpace(link.Text())
	if title == "" {
		title = strings.TrimSpace(sel.Find("h3, h4").First().Text())
	}
	if title == "" {
		return types.Article{}, false
	}

	a := types.Article{
		Title:  title,
		Link:   resolveLink(href, style),
		Source: strings.TrimSpace(sel.Find("div[data-n-tid]").First().Text()),
	}
	if a.Source == "" {
		a.Source = strings.TrimSpace(sel.Find("a[data-n-tid]").First().Text())
	}

	if ts := sel.Find("time").First(); ts.Length() > 0 {
		a.Time = strings.TrimSpace(ts.Text())
		if dt, hasAttr := ts.Attr("datetime"); hasAttr {
			if parsed, err := time.Parse(time.RFC3339, dt); err == nil {
				a.Datetime = parsed
			}
		}
	}

	if img := sel.Find("figure img").First(); img.Length() > 0 {
		a.Image = absoluteURL(imageSrc(img))
	}

	return a, true
}

func imageSrc(img *goquery.Selection) string {
	if src, ok := img.Attr("src"); ok && src != "" {
		return src
	}
	if srcset, ok := img.Attr("srcset"); ok {
		if fields := strings.Fields(srcset); len(fields) > 0 {
			return fields[0]
		}
	}
	return ""
}

// resolveLink maps a card's relative href to the emitted article URL. In
// readable style the redirect token is decoded to the publisher URL where
// possible; otherwise (and always in raw style) the absolute
// news.google.com URL is used.
func resolveLink(href string, style types.URLStyle) string {
	if style == types.URLStyleReadable {
		if u, ok := decodePublisherURL(href); ok {
			return u
		}
	}
	return absoluteURL(href)
}

func absoluteURL(href string) string {
	switch {
	case href == "":
		return ""
	case strings.HasPrefix(href, "./"):
		return newsBase + strings.TrimPrefix(href, ".")
	case strings.HasPrefix(href, "//"):
		return "https:" + href
	default:
		return href
	}
}
