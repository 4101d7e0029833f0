package scrape

import (
	"net/url"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSearchURL(t *testing.T) {
	raw := searchURL("budget 2024", "7d")

	u, err := url.Parse(raw)
	require.NoError(t, err)
	assert.Equal(t, "news.google.com", u.Host)
	assert.Equal(t, "/search", u.Path)

	q := u.Query()
	assert.Equal(t, "budget 2024 when:7d", q.Get("q"))
	assert.Equal(t, "en-US", q.Get("hl"))
	assert.Equal(t, "US", q.Get("gl"))
	assert.Equal(t, "US:en", q.Get("ceid"))
}

func TestSearchURLNoTimeframe(t *testing.T) {
	u, err := url.Parse(searchURL("elections", ""))
	require.NoError(t, err)
	assert.Equal(t, "elections", u.Query().Get("q"))
}

func TestSplitLaunchFlag(t *testing.T) {
	tests := []struct {
		arg       string
		wantName  string
		wantValue string
	}{
		{"--no-sandbox", "no-sandbox", ""},
		{"--disable-setuid-sandbox", "disable-setuid-sandbox", ""},
		{"--lang=en-US", "lang", "en-US"},
		{"-single-dash", "single-dash", ""},
		{"bare", "bare", ""},
		{"--", "", ""},
	}
	for _, tt := range tests {
		name, value := splitLaunchFlag(tt.arg)
		assert.Equal(t, tt.wantName, name, "splitLaunchFlag(%q) name", tt.arg)
		assert.Equal(t, tt.wantValue, value, "splitLaunchFlag(%q) value", tt.arg)
	}
}

func TestNewAppliesDefaults(t *testing.T) {
	s := New(Options{})
	assert.Equal(t, defaultNavTimeout, s.opts.NavTimeout)

	s = New(Options{NavTimeout: 5 * time.Second})
	assert.Equal(t, 5*time.Second, s.opts.NavTimeout)
}
