package feed

import (
	"bytes"
	"net/url"
	"strings"

	"github.com/PuerkitoBio/goquery"
)

// Discover scans an HTML document for feed autodiscovery links and returns
// the best candidate feed URL resolved against baseURL. Priority order:
// RSS first, Atom second, any remaining "feed" alternate link last.
func Discover(body []byte, baseURL string) (string, bool) {
	doc, err := goquery.NewDocumentFromReader(bytes.NewReader(body))
	if err != nil {
		return "", false
	}

	var rssHref, atomHref, feedHref string
	doc.Find("link[rel='alternate']").Each(func(_ int, sel *goquery.Selection) {
		href, ok := sel.Attr("href")
		if !ok || strings.TrimSpace(href) == "" {
			return
		}
		linkType, _ := sel.Attr("type")
		linkType = strings.ToLower(strings.TrimSpace(linkType))
		switch {
		case strings.Contains(linkType, "rss"):
			if rssHref == "" {
				rssHref = href
			}
		case strings.Contains(linkType, "atom"):
			if atomHref == "" {
				atomHref = href
			}
		case strings.Contains(linkType, "feed"):
			if feedHref == "" {
				feedHref = href
			}
		}
	})

	candidate := rssHref
	if candidate == "" {
		candidate = atomHref
	}
	if candidate == "" {
		candidate = feedHref
	}
	if candidate == "" {
		return "", false
	}

	return resolveURL(candidate, baseURL), true
}

// resolveURL makes a discovered href absolute. Protocol-relative URLs take
// the scheme of baseURL, defaulting to http when the base has none.
func resolveURL(href, baseURL string) string {
	if strings.HasPrefix(href, "//") {
		scheme := "http"
		if base, err := url.Parse(baseURL); err == nil && base.Scheme != "" {
			scheme = base.Scheme
		}
		return scheme + ":" + href
	}

	ref, err := url.Parse(href)
	if err != nil {
		return href
	}
	if ref.IsAbs() {
		return href
	}

	base, err := url.Parse(baseURL)
	if err != nil {
		return href
	}
	return base.ResolveReference(ref).String()
}
