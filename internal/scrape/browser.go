// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package scrape

import (
	"fmt"
	"strings"

	"github.com/go-rod/rod"
	"github.com/go-rod/rod/lib/launcher"
	"github.com/go-rod/rod/lib/launcher/flags"
)

// connect attaches to the remote browser if one is configured, otherwise
// launches a local Chromium with the configured launch flags. The returned
// cleanup func closes the browser and, for local launches, reaps the process
// and its temp profile.
func (s *Scraper) connect(args []string) (*rod.Browser, func(), error) {
	if s.opts.RemoteURL != "" {
		b := rod.New().ControlURL(s.opts.RemoteURL)
		if err := b.Connect(); err != nil {
			return nil, nil, fmt.Errorf("connect browser at %s: %w", s.opts.RemoteURL, err)
		}
		return b, func() { b.Close() }, nil
	}

	l := launcher.New().Headless(!s.opts.Headful)
	if s.opts.BrowserBin != "" {
		l = l.Bin(s.opts.BrowserBin)
	}
	for _, arg := range args {
		name, value := splitLaunchFlag(arg)
		if name == "" {
			continue
		}
		if value == "" {
			l = l.Set(flags.Flag(name))
		} else {
			l = l.Set(flags.Flag(name), value)
		}
	}

	u, err := l.Launch()
	if err != nil {
		return nil, nil, fmt.Errorf("launch browser: %w", err)
	}

	b := rod.New().ControlURL(u)
	if err := b.Connect(); err != nil {
		l.Cleanup()
		return nil, nil, fmt.Errorf("connect browser: %w", err)
	}

	cleanup := func() {
		b.Close()
		l.Cleanup()
	}
	return b, cleanup, nil
}

// splitLaunchFlag converts a command-line style browser flag ("--no-sandbox",
// "--lang=en-US") into a launcher flag name and optional value.
func splitLaunchFlag(arg string) (name, value string) {
	name = strings.TrimLeft(arg, "-")
	if i := strings.IndexByte(name, '='); i >= 0 {
		return name[:i], name[i+1:]
	}
	return name, ""
}
