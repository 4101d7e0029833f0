// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package scrape

import (
	"encoding/base64"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDecodePublisherURL(t *testing.T) {
	good := encodeArticleToken("https://example.com/politics/story-123")

	tests := []struct {
		name   string
		href   string
		want   string
		wantOK bool
	}{
		{"relative articles link", "./articles/" + good, "https://example.com/politics/story-123", true},
		{"query string trimmed", "./articles/" + good + "?hl=en-US&gl=US", "https://example.com/politics/story-123", true},
		{"rss articles link", "./rss/articles/" + good, "https://example.com/politics/story-123", true},
		{"read link is opaque", "./read/" + good, "", false},
		{"not base64", "./articles/%%%not-base64%%%", "", false},
		{"no embedded url", "./articles/" + base64.RawURLEncoding.EncodeToString([]byte{0x08, 0x13, 0x22, 0x00}), "", false},
		{"empty token", "./articles/", "", false},
		{"unrelated link", "#top", "", false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := decodePublisherURL(tt.href)
			assert.Equal(t, tt.wantOK, ok)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestDecodePublisherURLStopsAtFraming(t *testing.T) {
	// The decoder must cut the URL at the first non-printable byte even when
	// a second (AMP) URL follows in the payload.
	payload := append([]byte{0x08, 0x13, 0x22, 0x20}, []byte("https://example.com/story")...)
	payload = append(payload, 0xd2, 0x01, 0x00)
	payload = append(payload, []byte("https://example-com.cdn.ampproject.org/c/s/example.com/story")...)
	href := "./articles/" + base64.RawURLEncoding.EncodeToString(payload)

	got, ok := decodePublisherURL(href)
	assert.True(t, ok)
	assert.Equal(t, "https://example.com/story", got)
}

func TestDecodePublisherURLRejectsNonHTTPScheme(t *testing.T) {
	payload := append([]byte{0x08, 0x13, 0x22, 0x10}, []byte("httpfoo://nope")...)
	payload = append(payload, 0x00)
	href := "./articles/" + base64.RawURLEncoding.EncodeToString(payload)

	_, ok := decodePublisherURL(href)
	assert.False(t, ok)
}
