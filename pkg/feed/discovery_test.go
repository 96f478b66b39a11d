package feed

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDiscover(t *testing.T) {
	tests := []struct {
		name    string
		html    string
		baseURL string
		want    string
		found   bool
	}{
		{
			name:    "relative href resolves against base",
			html:    `<html><head><link rel="alternate" type="application/rss+xml" href="/feed"></head></html>`,
			baseURL: "http://site.com",
			want:    "http://site.com/feed",
			found:   true,
		},
		{
			name:    "absolute href passes through",
			html:    `<html><head><link rel="alternate" type="application/rss+xml" href="https://cdn.site.com/rss.xml"></head></html>`,
			baseURL: "http://site.com",
			want:    "https://cdn.site.com/rss.xml",
			found:   true,
		},
		{
			name:    "protocol-relative href takes base scheme",
			html:    `<html><head><link rel="alternate" type="application/rss+xml" href="//site.com/feed"></head></html>`,
			baseURL: "https://site.com/blog",
			want:    "https://site.com/feed",
			found:   true,
		},
		{
			name: "rss wins over atom",
			html: `<html><head>
				<link rel="alternate" type="application/atom+xml" href="/atom.xml">
				<link rel="alternate" type="application/rss+xml" href="/rss.xml">
			</head></html>`,
			baseURL: "http://site.com",
			want:    "http://site.com/rss.xml",
			found:   true,
		},
		{
			name:    "atom wins over generic feed",
			html:    `<html><head><link rel="alternate" type="application/feed+json" href="/feed.json"><link rel="alternate" type="application/atom+xml" href="/atom.xml"></head></html>`,
			baseURL: "http://site.com",
			want:    "http://site.com/atom.xml",
			found:   true,
		},
		{
			name:    "json feed accepted as last resort",
			html:    `<html><head><link rel="alternate" type="application/feed+json" href="/feed.json"></head></html>`,
			baseURL: "http://site.com",
			want:    "http://site.com/feed.json",
			found:   true,
		},
		{
			name:    "first of equal priority wins",
			html:    `<html><head><link rel="alternate" type="application/rss+xml" href="/a.xml"><link rel="alternate" type="application/rss+xml" href="/b.xml"></head></html>`,
			baseURL: "http://site.com",
			want:    "http://site.com/a.xml",
			found:   true,
		},
		{
			name:    "stylesheet alternate ignored",
			html:    `<html><head><link rel="alternate" type="text/css" href="/style.css"></head></html>`,
			baseURL: "http://site.com",
			found:   false,
		},
		{
			name:    "empty href ignored",
			html:    `<html><head><link rel="alternate" type="application/rss+xml" href=""></head></html>`,
			baseURL: "http://site.com",
			found:   false,
		},
		{
			name:    "no links at all",
			html:    `<html><head><title>plain page</title></head><body></body></html>`,
			baseURL: "http://site.com",
			found:   false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, found := Discover([]byte(tt.html), tt.baseURL)
			assert.Equal(t, tt.found, found)
			if tt.found {
				assert.Equal(t, tt.want, got)
			}
		})
	}
}

func TestResolveURL_BaseWithoutScheme(t *testing.T) {
	got := resolveURL("//site.com/feed", "site.com")
	assert.Equal(t, "http://site.com/feed", got, "scheme defaults to http")
}
