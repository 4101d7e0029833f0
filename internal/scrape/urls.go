// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package scrape

import (
	"bytes"
	"encoding/base64"
	"net/url"
	"strings"
)

// decodePublisherURL recovers the publisher URL embedded in an
// "articles/<token>" redirect link. The token is base64url carrying a short
// binary prefix, the URL as printable bytes, then trailing framing bytes.
// Newer "read/<token>" links are opaque server-side references and cannot be
// decoded offline, so they report false and keep the redirect URL.
func decodePublisherURL(href string) (string, bool) {
	token, ok := articleToken(href)
	if !ok {
		return "", false
	}

	raw, err := base64.RawURLEncoding.DecodeString(strings.TrimRight(token, "="))
	if err != nil {
		return "", false
	}

	idx := bytes.Index(raw, []byte("http"))
	if idx < 0 {
		return "", false
	}

	// The URL runs from "http" to the first non-printable framing byte.
	rest := raw[idx:]
	end := len(rest)
	for i := 0; i < len(rest); i++ {
		if rest[i] < 0x20 || rest[i] > 0x7e {
			end = i
			break
		}
	}

	u, err := url.Parse(string(rest[:end]))
	if err != nil || (u.Scheme != "http" && u.Scheme != "https") || u.Host == "" {
		return "", false
	}
	return u.String(), true
}

// articleToken pulls the base64 token out of an articles/ link, dropping any
// query string or fragment.
func articleToken(href string) (string, bool) {
	const marker = "articles/"
	i := strings.Index(href, marker)
	if i < 0 {
		return "", false
	}
	token := href[i+len(marker):]
	if j := strings.IndexAny(token, "?#"); j >= 0 {
		token = token[:j]
	}
	if token == "" {
		return "", false
	}
	return token, true
}
